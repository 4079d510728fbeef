package mahjong

import "slices"

const tileKindCount = int(ColorEnd) * 9

func tileIndex(t Tile) int {
	return int(t.Color())*9 + t.Point()
}

// IsWinning 手牌加所胡牌能否拆成一对将加若干刻子顺子
// 副露已是完整的刻杠, 只看暗牌部分
func IsWinning(hand []Tile, winTile Tile) bool {
	tiles := slices.Clone(hand)
	if winTile != TileNull {
		tiles = append(tiles, winTile)
	}
	if len(tiles)%3 != 2 {
		return false
	}

	var counts [tileKindCount]int
	for _, t := range tiles {
		if !t.IsValid() {
			return false
		}
		counts[tileIndex(t)]++
	}
	for i := 0; i < tileKindCount; i++ {
		if counts[i] < 2 {
			continue
		}
		counts[i] -= 2
		ok := canFormMelds(&counts)
		counts[i] += 2
		if ok {
			return true
		}
	}
	return false
}

// canFormMelds 最小下标的牌只能做刻子或顺子头, 逐一回溯
func canFormMelds(counts *[tileKindCount]int) bool {
	i := 0
	for ; i < tileKindCount; i++ {
		if counts[i] > 0 {
			break
		}
	}
	if i == tileKindCount {
		return true
	}

	if counts[i] >= 3 {
		counts[i] -= 3
		ok := canFormMelds(counts)
		counts[i] += 3
		if ok {
			return true
		}
	}
	if i%9 <= 6 && counts[i+1] > 0 && counts[i+2] > 0 {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		ok := canFormMelds(counts)
		counts[i]++
		counts[i+1]++
		counts[i+2]++
		return ok
	}
	return false
}

// isAllTriplets 将牌一对其余全是刻子, 副露天然满足
func isAllTriplets(hand []Tile, winTile Tile) bool {
	tiles := slices.Clone(hand)
	if winTile != TileNull {
		tiles = append(tiles, winTile)
	}
	if len(tiles)%3 != 2 {
		return false
	}

	var counts [tileKindCount]int
	for _, t := range tiles {
		counts[tileIndex(t)]++
	}
	pairs := 0
	for _, c := range counts {
		switch c {
		case 0, 3:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 1
}

// canWinOn 缺门牌没打完不能胡, 胡缺门牌也不行
func canWinOn(p *Player, hand []Tile, winTile Tile) bool {
	if p.missingColor == ColorUndefined {
		return false
	}
	if winTile.Color() == p.missingColor {
		return false
	}
	if CountColor(hand, p.missingColor) > 0 {
		return false
	}
	return IsWinning(hand, winTile)
}

// allWinTiles 枚举所有听的牌
func allWinTiles(hand []Tile) []Tile {
	var res []Tile
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 0; p < PointCountByColor[c]; p++ {
			t := MakeTile(c, p)
			if CountElement(hand, t) >= SameTileCountByColor[c] {
				continue
			}
			if IsWinning(hand, t) {
				res = append(res, t)
			}
		}
	}
	return res
}
