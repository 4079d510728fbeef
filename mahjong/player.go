package mahjong

import "slices"

// Player 单局内一个座位的全部私有状态
type Player struct {
	id           string
	seat         int32
	handTiles    []Tile
	melds        []Meld
	buriedTiles  []Tile
	missingColor EColor
	score        int64
	isHu         bool
	handLocked   bool
	huTiles      []Tile
	lastDrawn    Tile
	drawCount    int
}

func NewPlayer(id string, seat int32) *Player {
	return &Player{
		id:           id,
		seat:         seat,
		handTiles:    make([]Tile, 0, TileCountInitBanker),
		melds:        make([]Meld, 0, 4),
		missingColor: ColorUndefined,
		score:        ScoreInit,
		lastDrawn:    TileNull,
	}
}

func (p *Player) Clone() *Player {
	c := *p
	c.handTiles = slices.Clone(p.handTiles)
	c.melds = slices.Clone(p.melds)
	c.buriedTiles = slices.Clone(p.buriedTiles)
	c.huTiles = slices.Clone(p.huTiles)
	return &c
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) Seat() int32 {
	return p.seat
}

func (p *Player) HandTiles() []Tile {
	return p.handTiles
}

func (p *Player) Melds() []Meld {
	return p.melds
}

func (p *Player) BuriedTiles() []Tile {
	return p.buriedTiles
}

func (p *Player) MissingColor() EColor {
	return p.missingColor
}

func (p *Player) Score() int64 {
	return p.score
}

func (p *Player) IsHu() bool {
	return p.isHu
}

func (p *Player) HandLocked() bool {
	return p.handLocked
}

func (p *Player) HuTiles() []Tile {
	return p.huTiles
}

func (p *Player) LastDrawn() Tile {
	return p.lastDrawn
}

func (p *Player) addTile(tile Tile) {
	p.handTiles = append(p.handTiles, tile)
	SortTiles(p.handTiles)
}

func (p *Player) drawTile(tile Tile) {
	p.addTile(tile)
	p.lastDrawn = tile
	p.drawCount++
}

func (p *Player) removeTiles(tile Tile, count int) bool {
	if CountElement(p.handTiles, tile) < count {
		return false
	}
	p.handTiles = RemoveElements(p.handTiles, tile, count)
	return true
}

func (p *Player) hasColor(color EColor) bool {
	return CountColor(p.handTiles, color) > 0
}

// ponMeldIndex 补杠找碰组
func (p *Player) ponMeldIndex(tile Tile) int {
	for i, m := range p.melds {
		if m.Type == GroupTypePon && m.Tile == tile {
			return i
		}
	}
	return -1
}

func (p *Player) markHu(tile Tile) {
	p.isHu = true
	p.handLocked = true
	p.huTiles = append(p.huTiles, tile)
}
