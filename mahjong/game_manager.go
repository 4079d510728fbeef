package mahjong

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

type startOptions struct {
	dealerSeat int32
	baseScore  int64
	manual     *Manual
}

type StartOption func(*startOptions)

func WithDealer(seat int32) StartOption {
	return func(o *startOptions) { o.dealerSeat = seat }
}

func WithBaseScore(base int64) StartOption {
	return func(o *startOptions) { o.baseScore = base }
}

// WithManual 按配牌文件发起手牌
func WithManual(m *Manual) StartOption {
	return func(o *startOptions) { o.manual = m }
}

// CreateGame 建局, 四个不重复的玩家ID按传入顺序入座
func CreateGame(gameID string, playerIDs []string) (*GameState, error) {
	if len(playerIDs) != NP4 {
		return nil, newSetupError("need %d players, got %d", NP4, len(playerIDs))
	}
	seen := make(map[string]struct{}, NP4)
	for _, id := range playerIDs {
		if id == "" {
			return nil, newSetupError("empty player id")
		}
		if _, ok := seen[id]; ok {
			return nil, newSetupError("duplicate player id %s", id)
		}
		seen[id] = struct{}{}
	}

	players := make([]*Player, NP4)
	for i, id := range playerIDs {
		players[i] = NewPlayer(id, int32(i))
	}
	return &GameState{
		gameID:     gameID,
		phase:      PhasePreparing,
		players:    players,
		dealerSeat: 0,
		curSeat:    SeatNull,
		baseScore:  1,
		konSeat:    SeatNull,
	}, nil
}

// StartGame 洗牌发牌进入定缺阶段, 庄家14张闲家13张
func StartGame(state *GameState, rnd *rand.Rand, opts ...StartOption) (*GameState, error) {
	if state.phase != PhasePreparing {
		return nil, newStateError(state.phase, "start_game requires PREPARING")
	}
	o := &startOptions{dealerSeat: state.dealerSeat, baseScore: state.baseScore}
	for _, opt := range opts {
		opt(o)
	}
	if o.dealerSeat < 0 || o.dealerSeat >= NP4 {
		return nil, newSetupError("dealer seat %d out of range", o.dealerSeat)
	}
	if o.baseScore <= 0 {
		return nil, newSetupError("base score %d must be positive", o.baseScore)
	}

	s := state.Clone()
	s.dealerSeat = o.dealerSeat
	s.baseScore = o.baseScore

	dealer := NewDealer(rnd)
	dealer.Shuffle()

	if o.manual != nil {
		for seat := int32(0); seat < NP4; seat++ {
			preset, ok := o.manual.HandFor(seat)
			if !ok {
				continue
			}
			if !dealer.TakePreset(preset) {
				return nil, newSetupError("manual hand for seat %d exceeds tile counts", seat)
			}
			for _, t := range preset {
				s.players[seat].addTile(t)
			}
		}
	}

	for i := int32(0); i < NP4; i++ {
		seat := GetNextSeat(s.dealerSeat, i, NP4)
		want := TileCountInitNormal
		if seat == s.dealerSeat {
			want = TileCountInitBanker
		}
		p := s.players[seat]
		if len(p.handTiles) > want {
			return nil, newSetupError("manual hand for seat %d has %d tiles, max %d", seat, len(p.handTiles), want)
		}
		for _, t := range dealer.Deal(want - len(p.handTiles)) {
			p.addTile(t)
		}
	}

	s.wall = dealer.Rest()
	s.phase = PhaseBurying
	s.curSeat = s.dealerSeat
	logrus.WithFields(logrus.Fields{
		"game":   s.gameID,
		"dealer": s.dealerSeat,
		"wall":   len(s.wall),
	}).Info("game started")
	return s, nil
}

// EndGame 外层会话结束本局时调用
func EndGame(state *GameState) (*GameState, error) {
	if state.phase == PhaseEnded {
		return nil, newStateError(state.phase, "game already ended")
	}
	s := state.Clone()
	s.endGame()
	return s, nil
}
