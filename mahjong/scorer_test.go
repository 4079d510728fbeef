package mahjong

import (
	"slices"
	"testing"
)

func TestCalcFan(t *testing.T) {
	tests := []struct {
		name     string
		hand     string
		melds    []Meld
		winTile  string
		ctx      WinContext
		wantFan  int64
		wantType string
	}{
		{
			name:     "平胡门清自摸",
			hand:     "1万,2万,3万,4条,5条,6条,7筒,7筒,7筒,9筒,9筒,1条,2条",
			winTile:  "3条",
			ctx:      WinContext{SelfDrawn: true},
			wantFan:  3, // 底1+门清1+自摸1
			wantType: FanPingHu,
		},
		{
			name:     "点炮平胡碰过",
			hand:     "1万,2万,3万,4条,5条,6条,9筒,9筒,1条,2条",
			melds:    []Meld{{Type: GroupTypePon, Tile: nameToTile("7筒"), From: 1}},
			winTile:  "3条",
			wantFan:  1,
			wantType: FanPingHu,
		},
		{
			name:     "对对胡",
			hand:     "1万,1万,1万,3条,3条,3条,5筒,5筒,5筒,8筒,8筒,9万,9万",
			winTile:  "9万",
			wantFan:  3, // 底1+对对1+门清1
			wantType: FanDuiDuiHu,
		},
		{
			name:     "清一色",
			hand:     "1筒,2筒,3筒,4筒,5筒,6筒,7筒,7筒,7筒,9筒,9筒,2筒,3筒",
			winTile:  "4筒",
			wantFan:  4, // 底1+清一色2+门清1
			wantType: FanQingYiSe,
		},
		{
			name: "清对带根",
			hand: "1筒,1筒,3筒,3筒,3筒,9筒,9筒",
			melds: []Meld{
				{Type: GroupTypeAnKon, Tile: nameToTile("5筒"), From: 0},
				{Type: GroupTypeAnKon, Tile: nameToTile("8筒"), From: 0},
			},
			winTile: "1筒",
			wantFan: 7, // 底1+清对3+根2+门清1
		},
		{
			name: "金钩钓",
			hand: "9万",
			melds: []Meld{
				{Type: GroupTypePon, Tile: nameToTile("1万"), From: 1},
				{Type: GroupTypePon, Tile: nameToTile("3条"), From: 2},
				{Type: GroupTypePon, Tile: nameToTile("5筒"), From: 3},
				{Type: GroupTypePon, Tile: nameToTile("7筒"), From: 1},
			},
			winTile:  "9万",
			wantFan:  2, // 底1+金钩钓1
			wantType: FanJinGouDiao,
		},
		{
			name: "清金钩钓自摸",
			hand: "9筒",
			melds: []Meld{
				{Type: GroupTypePon, Tile: nameToTile("1筒"), From: 1},
				{Type: GroupTypePon, Tile: nameToTile("3筒"), From: 2},
				{Type: GroupTypePon, Tile: nameToTile("5筒"), From: 3},
				{Type: GroupTypePon, Tile: nameToTile("7筒"), From: 1},
			},
			winTile:  "9筒",
			ctx:      WinContext{SelfDrawn: true},
			wantFan:  6, // 底1+清金钩钓4+自摸1
			wantType: FanQingJinGou,
		},
		{
			name: "暗杠不破门清且算根",
			hand: "4条,5条,6条,9筒,9筒,1条,2条,3条,7万,8万",
			melds: []Meld{
				{Type: GroupTypeAnKon, Tile: nameToTile("2筒"), From: 0},
			},
			winTile:  "9万",
			wantFan:  3, // 底1+根1+门清1
			wantType: FanMenQing,
		},
		{
			name:     "杠上花海底",
			hand:     "1万,2万,3万,9筒,9筒,1条,2条",
			melds:    []Meld{{Type: GroupTypeZhiKon, Tile: nameToTile("5筒"), From: 2}},
			winTile:  "3条",
			ctx:      WinContext{SelfDrawn: true, AfterKon: true, LastTile: true},
			wantFan:  5, // 底1+根1+自摸1+杠上1+海底1
			wantType: FanGangShang,
		},
		{
			name:     "天胡",
			hand:     "1万,2万,3万,4条,5条,6条,7筒,7筒,7筒,9筒,9筒,1条,2条",
			winTile:  "3条",
			ctx:      WinContext{SelfDrawn: true, TianHu: true},
			wantFan:  8, // 底1+门清1+自摸1+天胡5
			wantType: FanTianHu,
		},
		{
			name:     "地胡",
			hand:     "1万,2万,3万,4条,5条,6条,7筒,7筒,7筒,9筒,9筒,1条,2条",
			winTile:  "3条",
			ctx:      WinContext{SelfDrawn: true, DiHu: true},
			wantFan:  8,
			wantType: FanDiHu,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcFan(namesToTiles(tt.hand), tt.melds, nameToTile(tt.winTile), tt.ctx)
			if got.Fan != tt.wantFan {
				t.Errorf("fan = %d (%v), want %d", got.Fan, got.Types, tt.wantFan)
			}
			if tt.wantType != "" && !containsType(got.Types, tt.wantType) {
				t.Errorf("types = %v, want containing %s", got.Types, tt.wantType)
			}
		})
	}
}

func containsType(types []string, want string) bool {
	for _, s := range types {
		if s == want || len(s) > len(want) && s[:len(want)] == want {
			return true
		}
	}
	return false
}

func TestCalcFanExclusions(t *testing.T) {
	// 金钩钓吃掉对对胡, 不叠加
	hand := namesToTiles("9万")
	melds := []Meld{
		{Type: GroupTypePon, Tile: nameToTile("1万"), From: 1},
		{Type: GroupTypePon, Tile: nameToTile("3条"), From: 2},
		{Type: GroupTypePon, Tile: nameToTile("5筒"), From: 3},
		{Type: GroupTypePon, Tile: nameToTile("7筒"), From: 1},
	}
	got := CalcFan(hand, melds, nameToTile("9万"), WinContext{})
	if containsType(got.Types, FanDuiDuiHu) {
		t.Errorf("golden hook must supersede 对对胡, got %v", got.Types)
	}

	// 清对吃掉清一色
	hand = namesToTiles("1筒,1筒,3筒,3筒,3筒,5筒,5筒,5筒,8筒,8筒,8筒,9筒,9筒")
	got = CalcFan(hand, nil, nameToTile("1筒"), WinContext{})
	if !slices.Contains(got.Types, FanQingDui) || slices.Contains(got.Types, FanQingYiSe) {
		t.Errorf("expected single 清对, got %v", got.Types)
	}
}

func TestCountGen(t *testing.T) {
	all := namesToTiles("5筒,5筒,5筒,5筒,8条,8条,8条,8条,1万")
	if got := countGen(all); got != 2 {
		t.Errorf("countGen = %d, want 2", got)
	}
}
