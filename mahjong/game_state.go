package mahjong

import (
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// DiscardRecord 弃牌河记录
type DiscardRecord struct {
	Seat int32 `json:"seat"`
	Tile Tile  `json:"tile"`
	Turn int   `json:"turn"`
}

// GameState 一局的全部状态, 所有操作克隆后修改, 失败不产生副作用
type GameState struct {
	gameID     string
	phase      EPhase
	players    []*Player
	wall       []Tile
	discards   []DiscardRecord
	curSeat    int32
	dealerSeat int32
	baseScore  int64
	turnCount  int
	konSeat    int32 // 刚杠完未弃牌的座位, 用于杠上花/杠上炮
	waiting    bool  // 弃牌后等待响应
}

func (s *GameState) Clone() *GameState {
	c := *s
	c.players = make([]*Player, len(s.players))
	for i, p := range s.players {
		c.players[i] = p.Clone()
	}
	c.wall = slices.Clone(s.wall)
	c.discards = slices.Clone(s.discards)
	return &c
}

func (s *GameState) GameID() string {
	return s.gameID
}

func (s *GameState) Phase() EPhase {
	return s.phase
}

func (s *GameState) Players() []*Player {
	return s.players
}

func (s *GameState) Player(seat int32) *Player {
	if seat < 0 || int(seat) >= len(s.players) {
		return nil
	}
	return s.players[seat]
}

func (s *GameState) Wall() []Tile {
	return s.wall
}

func (s *GameState) WallCount() int {
	return len(s.wall)
}

func (s *GameState) Discards() []DiscardRecord {
	return s.discards
}

func (s *GameState) CurrentSeat() int32 {
	return s.curSeat
}

func (s *GameState) DealerSeat() int32 {
	return s.dealerSeat
}

func (s *GameState) BaseScore() int64 {
	return s.baseScore
}

func (s *GameState) TurnCount() int {
	return s.turnCount
}

// WaitingResponses 上一张弃牌是否还在等待其他家响应
func (s *GameState) WaitingResponses() bool {
	return s.waiting
}

func (s *GameState) drawTile(seat int32) (Tile, bool) {
	if len(s.wall) == 0 {
		return TileNull, false
	}
	tile := s.wall[0]
	s.wall = s.wall[1:]
	s.players[seat].drawTile(tile)
	return tile, true
}

func (s *GameState) huCount() int {
	count := 0
	for _, p := range s.players {
		if p.isHu {
			count++
		}
	}
	return count
}

// lastDiscard 等待响应中的那张弃牌
func (s *GameState) lastDiscard() (DiscardRecord, bool) {
	if !s.waiting || len(s.discards) == 0 {
		return DiscardRecord{}, false
	}
	return s.discards[len(s.discards)-1], true
}

// removeLastDiscard 点炮胡走弃牌
func (s *GameState) removeLastDiscard() {
	if len(s.discards) > 0 {
		s.discards = s.discards[:len(s.discards)-1]
	}
}

// VerifyZeroSum 总分恒为400, 违反只记日志不报错
func (s *GameState) VerifyZeroSum() bool {
	var total int64
	for _, p := range s.players {
		total += p.score
	}
	if total != ScoreTotal {
		scores := make([]int64, len(s.players))
		for i, p := range s.players {
			scores[i] = p.score
		}
		logger.Log.Errorf("game %s: score sum %d != %d, scores %v", s.gameID, total, ScoreTotal, scores)
		return false
	}
	return true
}

func (s *GameState) endGame() {
	s.phase = PhaseEnded
	s.waiting = false
}

// checkEnd 三家胡或牌墙摸空即终局
func (s *GameState) checkEnd() bool {
	if s.huCount() >= HuCountToEnd {
		s.endGame()
		return true
	}
	return false
}
