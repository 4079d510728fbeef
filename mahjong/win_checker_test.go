package mahjong

import "testing"

func TestIsWinning(t *testing.T) {
	tests := []struct {
		name    string
		hand    string
		winTile string
		want    bool
	}{
		{
			name:    "单将",
			hand:    "1万",
			winTile: "1万",
			want:    true,
		},
		{
			name:    "顺子加将",
			hand:    "1万,2万,3万,5万",
			winTile: "5万",
			want:    true,
		},
		{
			name:    "标准十四张",
			hand:    "1万,2万,3万,4条,5条,6条,7筒,7筒,7筒,9筒,9筒,1条,2条",
			winTile: "3条",
			want:    true,
		},
		{
			name:    "对对胡",
			hand:    "1万,1万,1万,3条,3条,3条,5筒,5筒,5筒,8筒,8筒,9万,9万",
			winTile: "9万",
			want:    true,
		},
		{
			name:    "差一张不成和",
			hand:    "1万,2万,3万,4条,5条,6条,7筒,7筒,7筒,9筒,9筒,1条,5条",
			winTile: "3条",
			want:    false,
		},
		{
			name:    "两对不是和",
			hand:    "1万,1万,2万,2万",
			winTile: "3万",
			want:    false,
		},
		{
			name:    "七对不算特殊牌型",
			hand:    "1万,1万,4万,4万,7万,7万,2条,2条,5条,5条,8条,8条,1筒",
			winTile: "1筒",
			want:    false,
		},
		{
			name:    "四张同牌拆二二不成将",
			hand:    "1万,1万,1万,1万",
			winTile: "2万",
			want:    false,
		},
		{
			name:    "四张拆刻子带顺子",
			hand:    "1万,1万,1万,1万,2万,3万,5万",
			winTile: "5万",
			want:    true,
		},
		{
			name:    "张数不对",
			hand:    "1万,2万",
			winTile: "3万",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsWinning(namesToTiles(tt.hand), nameToTile(tt.winTile))
			if got != tt.want {
				t.Errorf("IsWinning(%s + %s) = %v, want %v", tt.hand, tt.winTile, got, tt.want)
			}
		})
	}
}

func TestIsAllTriplets(t *testing.T) {
	tests := []struct {
		name    string
		hand    string
		winTile string
		want    bool
	}{
		{"刻子加将", "1万,1万,1万,3条,3条,3条,9万", "9万", true},
		{"张数不符", "1万,1万,1万,3条,3条,3条,9万,9万", "9万", false},
		{"含顺子", "1万,2万,3万,9万", "9万", false},
		{"单吊", "9万", "9万", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isAllTriplets(namesToTiles(tt.hand), nameToTile(tt.winTile))
			if got != tt.want {
				t.Errorf("isAllTriplets(%s + %s) = %v, want %v", tt.hand, tt.winTile, got, tt.want)
			}
		})
	}
}

func TestCanWinOnMissingSuit(t *testing.T) {
	p := NewPlayer("a", 0)
	p.missingColor = ColorDot
	p.handTiles = namesToTiles("1万,2万,3万,5万")

	if !canWinOn(p, p.handTiles, nameToTile("5万")) {
		t.Fatal("clean hand should win on 5万")
	}
	if canWinOn(p, p.handTiles, nameToTile("5筒")) {
		t.Error("winning on the missing suit must be rejected")
	}

	p.handTiles = namesToTiles("1万,2万,3万,5筒")
	if canWinOn(p, p.handTiles, nameToTile("5筒")) {
		t.Error("holding the missing suit must block the win")
	}
}

func TestAllWinTiles(t *testing.T) {
	hand := namesToTiles("1万,2万,3万,5万")
	got := allWinTiles(hand)
	if len(got) != 1 || got[0] != nameToTile("5万") {
		t.Errorf("allWinTiles = %s, want 5万", TilesName(got))
	}

	// 两面听
	hand = namesToTiles("2条,3条,7筒,7筒")
	got = allWinTiles(hand)
	want := []Tile{nameToTile("1条"), nameToTile("4条")}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("allWinTiles = %s, want 1条, 4条", TilesName(got))
	}
}
