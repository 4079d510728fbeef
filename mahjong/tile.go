package mahjong

import (
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/neozhong/xzdd/utils"
)

// Tile 以 color<<8|point<<4|1 编码, 整数序即(花色,点数)序
type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color) << 8) | (point << 4) | 1)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) IsValid() bool {
	if t <= 0 {
		return false
	}
	c, p := t.Info()
	return c >= ColorBegin && c < ColorEnd && p >= 0 && p < PointCountByColor[c]
}

// Rank 对外点数, 1起
func (t Tile) Rank() int {
	return t.Point() + 1
}

func (t Tile) Name() string {
	c, p := t.Info()
	switch c {
	case ColorCharacter:
		return strconv.Itoa(p+1) + "万"
	case ColorBamboo:
		return strconv.Itoa(p+1) + "条"
	case ColorDot:
		return strconv.Itoa(p+1) + "筒"
	default:
		return ""
	}
}

var lastRuneToColor = map[rune]EColor{
	'万': ColorCharacter,
	'条': ColorBamboo,
	'筒': ColorDot,
}

var colorNames = map[EColor]string{
	ColorCharacter: "WAN",
	ColorBamboo:    "TIAO",
	ColorDot:       "TONG",
}

func ColorName(c EColor) string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return ""
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}

func SortTiles(tiles []Tile) {
	slices.Sort(tiles)
}

// AllTiles 全部108张的面值与张数
func AllTiles() map[Tile]int {
	tiles := make(map[Tile]int)
	for c := ColorBegin; c < ColorEnd; c++ {
		for p := 0; p < PointCountByColor[c]; p++ {
			tiles[MakeTile(c, p)] = SameTileCountByColor[c]
		}
	}
	return tiles
}

func MakeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}

func CountElement(tiles []Tile, tile Tile) int {
	return utils.CountElement(tiles, tile)
}

func RemoveElements(tiles []Tile, tile Tile, count int) []Tile {
	return utils.RemoveElements(tiles, tile, count)
}

func CountColor(tiles []Tile, color EColor) int {
	count := 0
	for _, t := range tiles {
		if t.Color() == color {
			count++
		}
	}
	return count
}

func namesToTiles(names string) []Tile {
	parts := strings.Split(names, ",")
	res := make([]Tile, 0, len(parts))
	for _, name := range parts {
		res = append(res, nameToTile(strings.TrimSpace(name)))
	}
	return res
}

func nameToTile(name string) Tile {
	if len(name) < 2 {
		return TileNull
	}
	r, size := utf8.DecodeLastRuneInString(name)
	color, ok := lastRuneToColor[r]
	if !ok {
		return TileNull
	}
	num, err := strconv.Atoi(name[:len(name)-size])
	if err != nil || num < 1 || num > PointCountByColor[color] {
		return TileNull
	}
	return MakeTile(color, num-1)
}
