package mahjong

// Meld 副露组, 碰杠只存一张面值
type Meld struct {
	Type EGroupType `json:"type"`
	Tile Tile       `json:"tile"`
	From int32      `json:"from"` // 被碰/被杠的座位, 暗杠补杠为自身
}

func (m Meld) IsKon() bool {
	return m.Type == GroupTypeZhiKon || m.Type == GroupTypeAnKon || m.Type == GroupTypeBuKon
}

// IsExposed 暗杠不破门清
func (m Meld) IsExposed() bool {
	return m.Type != GroupTypeAnKon
}

func (m Meld) TileCount() int {
	if m.IsKon() {
		return 4
	}
	return 3
}

func (m Meld) Tiles() []Tile {
	return MakeTiles(m.Tile, m.TileCount())
}
