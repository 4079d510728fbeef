package mahjong

import (
	"fmt"
	"slices"
)

// 番型
const (
	FanPingHu     = "平胡"
	FanDuiDuiHu   = "对对胡"
	FanQingYiSe   = "清一色"
	FanQingDui    = "清对"
	FanJinGouDiao = "金钩钓"
	FanQingJinGou = "清金钩钓"
	FanGen        = "根"
	FanMenQing    = "门清"
	FanZiMo       = "自摸"
	FanGangShang  = "杠上"
	FanHaiDi      = "海底"
	FanTianHu     = "天胡"
	FanDiHu       = "地胡"
)

// WinContext 结算时机相关的加番条件
type WinContext struct {
	SelfDrawn bool // 自摸
	AfterKon  bool // 杠上花或杠上炮
	LastTile  bool // 海底
	TianHu    bool // 庄家首摸即胡
	DiHu      bool // 闲家首摸即胡
}

// FanResult 番数及构成
type FanResult struct {
	Fan   int64
	Types []string
}

// CalcFan 算番, hand为去掉所胡牌之后的暗牌
// 番型互斥关系沿袭川麻惯例: 金钩钓吃掉对对胡, 清对吃掉清一色加对对胡
func CalcFan(hand []Tile, melds []Meld, winTile Tile, ctx WinContext) FanResult {
	fan := int64(1)
	var types []string

	all := slices.Clone(hand)
	all = append(all, winTile)
	for _, m := range melds {
		all = append(all, m.Tiles()...)
	}

	pure := isOneColor(all)
	triplets := isAllTriplets(hand, winTile)
	goldenHook := len(hand) == 1

	switch {
	case triplets && goldenHook && pure:
		fan += 4
		types = append(types, FanQingJinGou)
	case triplets && goldenHook:
		fan++
		types = append(types, FanJinGouDiao)
	case triplets && pure:
		fan += 3
		types = append(types, FanQingDui)
	case triplets:
		fan++
		types = append(types, FanDuiDuiHu)
	case pure:
		fan += 2
		types = append(types, FanQingYiSe)
	default:
		types = append(types, FanPingHu)
	}

	if gen := countGen(all); gen > 0 {
		fan += int64(gen)
		types = append(types, fmt.Sprintf("%s x%d", FanGen, gen))
	}

	exposed := false
	for _, m := range melds {
		if m.IsExposed() {
			exposed = true
			break
		}
	}
	if !exposed {
		fan++
		types = append(types, FanMenQing)
	}
	if ctx.SelfDrawn {
		fan++
		types = append(types, FanZiMo)
	}
	if ctx.AfterKon {
		fan++
		types = append(types, FanGangShang)
	}
	if ctx.LastTile {
		fan++
		types = append(types, FanHaiDi)
	}
	if ctx.TianHu {
		fan += 5
		types = append(types, FanTianHu)
	} else if ctx.DiHu {
		fan += 5
		types = append(types, FanDiHu)
	}

	return FanResult{Fan: fan, Types: types}
}

func isOneColor(tiles []Tile) bool {
	if len(tiles) == 0 {
		return false
	}
	color := tiles[0].Color()
	for _, t := range tiles[1:] {
		if t.Color() != color {
			return false
		}
	}
	return true
}

// countGen 含杠在内凑满四张的种类数
func countGen(all []Tile) int {
	var counts [tileKindCount]int
	for _, t := range all {
		counts[tileIndex(t)]++
	}
	gen := 0
	for _, c := range counts {
		if c == 4 {
			gen++
		}
	}
	return gen
}
