package utils

// CountElement 统计v在s中出现的次数
func CountElement[T comparable](s []T, v T) int {
	count := 0
	for _, e := range s {
		if e == v {
			count++
		}
	}
	return count
}

// RemoveElements 移除最多count个v, 返回新切片
func RemoveElements[T comparable](s []T, v T, count int) []T {
	res := make([]T, 0, len(s))
	for _, e := range s {
		if e == v && count > 0 {
			count--
			continue
		}
		res = append(res, e)
	}
	return res
}

func Contains[T comparable](s []T, v T) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}
