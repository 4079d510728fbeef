package mahjong

import (
	"fmt"

	"github.com/spf13/viper"
)

// Manual 配牌调试, 从 ./initcard/<名字>.yaml 按座位读取起手牌
// 文件格式:
//
//	seat0: 1万,1万,1万,2万,3万, ...
//	seat2: 9筒,9筒, ...
//
// 未配置的座位正常随机发牌
type Manual struct {
	hands map[int32][]Tile
}

func LoadManual(name string) (*Manual, error) {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("yaml")
	v.AddConfigPath("./initcard")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	m := &Manual{hands: make(map[int32][]Tile)}
	for seat := int32(0); seat < NP4; seat++ {
		key := fmt.Sprintf("seat%d", seat)
		if !v.IsSet(key) {
			continue
		}
		tiles := namesToTiles(v.GetString(key))
		for _, t := range tiles {
			if !t.IsValid() {
				return nil, newSetupError("manual %s: bad tile in %s", name, key)
			}
		}
		m.hands[seat] = tiles
	}
	return m, nil
}

func (m *Manual) HandFor(seat int32) ([]Tile, bool) {
	tiles, ok := m.hands[seat]
	return tiles, ok
}
