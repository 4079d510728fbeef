package mahjong

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MeldView 副露对外展示
type MeldView struct {
	Type  string   `json:"type"`
	Tiles []string `json:"tiles"`
	From  int32    `json:"from"`
}

// DiscardView 牌河记录对外展示
type DiscardView struct {
	Seat int32  `json:"seat"`
	Tile string `json:"tile"`
	Turn int    `json:"turn"`
}

// PlayerView 座位对外展示, 非本家只给手牌张数
type PlayerView struct {
	ID          string     `json:"id"`
	Seat        int32      `json:"seat"`
	HandTiles   []string   `json:"hand_tiles,omitempty"`
	HandCount   int        `json:"hand_count"`
	Melds       []MeldView `json:"melds"`
	BuriedTiles []string   `json:"buried_tiles"`
	MissingSuit string     `json:"missing_suit,omitempty"`
	Score       int64      `json:"score"`
	IsHu        bool       `json:"is_hu"`
	HuTiles     []string   `json:"hu_tiles,omitempty"`
}

// GameView 某座位视角下的全局快照
type GameView struct {
	GameID      string        `json:"game_id"`
	Phase       string        `json:"phase"`
	CurrentSeat int32         `json:"current_seat"`
	DealerSeat  int32         `json:"dealer_seat"`
	WallCount   int           `json:"wall_count"`
	BaseScore   int64         `json:"base_score"`
	Turn        int           `json:"turn"`
	Discards    []DiscardView `json:"discards"`
	Players     []PlayerView  `json:"players"`
}

// BuildView 生成指定座位可见的状态投影
func BuildView(state *GameState, seat int32) (*GameView, error) {
	if state.Player(seat) == nil {
		return nil, newActionError(seat, ActionNone, "no such seat")
	}

	v := &GameView{
		GameID:      state.gameID,
		Phase:       state.phase.String(),
		CurrentSeat: state.curSeat,
		DealerSeat:  state.dealerSeat,
		WallCount:   len(state.wall),
		BaseScore:   state.baseScore,
		Turn:        state.turnCount,
		Discards:    make([]DiscardView, 0, len(state.discards)),
		Players:     make([]PlayerView, 0, len(state.players)),
	}
	for _, d := range state.discards {
		v.Discards = append(v.Discards, DiscardView{Seat: d.Seat, Tile: d.Tile.Name(), Turn: d.Turn})
	}
	for _, p := range state.players {
		pv := PlayerView{
			ID:          p.id,
			Seat:        p.seat,
			HandCount:   len(p.handTiles),
			Melds:       make([]MeldView, 0, len(p.melds)),
			BuriedTiles: tileNames(p.buriedTiles),
			MissingSuit: ColorName(p.missingColor),
			Score:       p.score,
			IsHu:        p.isHu,
			HuTiles:     tileNames(p.huTiles),
		}
		if p.seat == seat {
			pv.HandTiles = tileNames(p.handTiles)
		}
		for _, m := range p.melds {
			pv.Melds = append(pv.Melds, MeldView{Type: m.Type.String(), Tiles: tileNames(m.Tiles()), From: m.From})
		}
		v.Players = append(v.Players, pv)
	}
	return v, nil
}

func (v *GameView) Marshal() ([]byte, error) {
	return json.Marshal(v)
}

func tileNames(tiles []Tile) []string {
	res := make([]string, 0, len(tiles))
	for _, t := range tiles {
		res = append(res, t.Name())
	}
	return res
}
