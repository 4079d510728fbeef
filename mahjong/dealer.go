package mahjong

import "math/rand"

// Dealer 洗牌发牌, 随机源由外部注入
type Dealer struct {
	rnd   *rand.Rand
	tiles []Tile
}

func NewDealer(rnd *rand.Rand) *Dealer {
	return &Dealer{rnd: rnd}
}

// Shuffle 逐张随机插入成墙
func (d *Dealer) Shuffle() {
	pool := make([]Tile, 0, TileCountTotal)
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 0; p < PointCountByColor[c]; p++ {
			pool = append(pool, MakeTiles(MakeTile(c, p), SameTileCountByColor[c])...)
		}
	}
	d.tiles = make([]Tile, 0, len(pool))
	for _, tile := range pool {
		pos := d.rnd.Intn(len(d.tiles) + 1)
		d.tiles = append(d.tiles, TileNull)
		copy(d.tiles[pos+1:], d.tiles[pos:])
		d.tiles[pos] = tile
	}
}

// TakePreset 从牌墙中抽走指定的牌, 供配牌调试用
func (d *Dealer) TakePreset(tiles []Tile) bool {
	for _, tile := range tiles {
		idx := -1
		for i, t := range d.tiles {
			if t == tile {
				idx = i
				break
			}
		}
		if idx < 0 {
			return false
		}
		d.tiles = append(d.tiles[:idx], d.tiles[idx+1:]...)
	}
	return true
}

// Deal 自墙头取n张
func (d *Dealer) Deal(n int) []Tile {
	if n > len(d.tiles) {
		n = len(d.tiles)
	}
	res := d.tiles[:n]
	d.tiles = d.tiles[n:]
	return res
}

func (d *Dealer) Rest() []Tile {
	return d.tiles
}
