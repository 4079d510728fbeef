package mahjong

import (
	"github.com/sirupsen/logrus"
	"github.com/topfreegames/pitaya/v3/pkg/logger"

	"github.com/neozhong/xzdd/utils"
)

// BuryTiles 定缺, 埋三张同花色的牌, 四家齐后进入行牌阶段
func BuryTiles(state *GameState, seat int32, tiles []Tile) (*GameState, error) {
	if state.phase != PhaseBurying {
		return nil, newStateError(state.phase, "bury requires BURYING")
	}
	p := state.Player(seat)
	if p == nil {
		return nil, newActionError(seat, ActionNone, "no such seat")
	}
	if p.missingColor != ColorUndefined {
		return nil, newActionError(seat, ActionNone, "already buried")
	}
	if len(tiles) != TileCountBury {
		return nil, newActionError(seat, ActionNone, "must bury %d tiles, got %d", TileCountBury, len(tiles))
	}
	color := tiles[0].Color()
	for _, t := range tiles {
		if !t.IsValid() {
			return nil, newActionError(seat, ActionNone, "invalid tile %d", t)
		}
		if t.Color() != color {
			return nil, newActionError(seat, ActionNone, "buried tiles must share one suit")
		}
	}

	s := state.Clone()
	sp := s.players[seat]
	for _, t := range tiles {
		if !sp.removeTiles(t, 1) {
			return nil, newActionError(seat, ActionNone, "tile %s not in hand", t.Name())
		}
	}
	sp.buriedTiles = append(sp.buriedTiles, tiles...)
	sp.missingColor = color

	done := true
	for _, q := range s.players {
		if q.missingColor == ColorUndefined {
			done = false
			break
		}
	}
	if done {
		s.phase = PhasePlaying
		s.curSeat = s.dealerSeat
		logrus.WithField("game", s.gameID).Info("all buried, playing")
	}
	return s, nil
}

// DiscardTile 当前玩家弃一张牌并开启响应窗口
// 胡过的人只能打刚摸的, 缺门牌没打完必须先打缺门
func DiscardTile(state *GameState, seat int32, tile Tile) (*GameState, error) {
	if state.phase != PhasePlaying {
		return nil, newStateError(state.phase, "discard requires PLAYING")
	}
	if state.waiting {
		return nil, newStateError(state.phase, "responses pending")
	}
	if seat != state.curSeat {
		return nil, newActionError(seat, ActionDiscard, "not current seat %d", state.curSeat)
	}
	p := state.Player(seat)
	if CountElement(p.handTiles, tile) == 0 {
		return nil, newActionError(seat, ActionDiscard, "tile %s not in hand", tile.Name())
	}
	if p.handLocked && tile != p.lastDrawn {
		return nil, newActionError(seat, ActionDiscard, "hand locked, must discard drawn %s", p.lastDrawn.Name())
	}
	if p.hasColor(p.missingColor) && tile.Color() != p.missingColor {
		return nil, newActionError(seat, ActionDiscard, "must discard missing suit %s first", ColorName(p.missingColor))
	}

	s := state.Clone()
	sp := s.players[seat]
	sp.removeTiles(tile, 1)
	sp.lastDrawn = TileNull
	s.discards = append(s.discards, DiscardRecord{Seat: seat, Tile: tile, Turn: s.turnCount})
	s.turnCount++
	s.waiting = true
	return s, nil
}

// DeclareAction 施加一个申报的动作
// discardSeat为SeatNull时是本家回合的自摸胡或暗杠补杠, 否则是对弃牌的响应
func DeclareAction(state *GameState, seat int32, action EAction, target Tile, discardSeat int32) (*GameState, error) {
	if state.phase != PhasePlaying {
		return nil, newStateError(state.phase, "actions require PLAYING")
	}
	if state.Player(seat) == nil {
		return nil, newActionError(seat, action, "no such seat")
	}

	if discardSeat == SeatNull {
		switch action {
		case ActionHu:
			return declareSelfHu(state, seat)
		case ActionAnKon:
			return declareAnKon(state, seat, target)
		case ActionBuKon:
			return declareBuKon(state, seat, target)
		default:
			return nil, newActionError(seat, action, "not a self-turn action")
		}
	}

	switch action {
	case ActionHu:
		return declareDiscardHu(state, seat, target, discardSeat)
	case ActionZhiKon:
		return declareZhiKon(state, seat, target, discardSeat)
	case ActionPon:
		return declarePon(state, seat, target, discardSeat)
	default:
		return nil, newActionError(seat, action, "not a response action")
	}
}

// CollectResponses 汇总一张弃牌的全部响应并按优先级裁决
// 同张多家胡全部成立, 无人响应则下家摸牌
func CollectResponses(state *GameState, responses []PlayerResponse) (*GameState, error) {
	if state.phase != PhasePlaying {
		return nil, newStateError(state.phase, "responses require PLAYING")
	}
	record, ok := state.lastDiscard()
	if !ok {
		return nil, newStateError(state.phase, "no discard awaiting responses")
	}

	best := ActionPass
	var huSeats []int32
	var claim PlayerResponse
	for _, r := range responses {
		if r.Seat == record.Seat {
			continue
		}
		if r.Action == ActionHu {
			huSeats = append(huSeats, r.Seat)
		}
		if ActionPriority(r.Action) > ActionPriority(best) {
			best = r.Action
			claim = r
		}
	}

	switch {
	case best == ActionHu:
		return settleMultiHu(state, huSeats, record)
	case best == ActionZhiKon || best == ActionPon:
		return DeclareAction(state, claim.Seat, claim.Action, record.Tile, record.Seat)
	default:
		s := state.Clone()
		s.waiting = false
		s.konSeat = SeatNull
		s.advanceTurn(record.Seat)
		return s, nil
	}
}

// settleMultiHu 一炮多响, 自点炮者下家起按座次逐家结算
// 放炮者付各家番分之和, 只有最后一家结算完才轮转摸牌
func settleMultiHu(state *GameState, huSeats []int32, record DiscardRecord) (*GameState, error) {
	ordered := make([]int32, 0, len(huSeats))
	for step := int32(1); step < NP4; step++ {
		seat := GetNextSeat(record.Seat, step, NP4)
		if utils.Contains(huSeats, seat) {
			ordered = append(ordered, seat)
		}
	}
	for _, seat := range ordered {
		p := state.Player(seat)
		if !canWinOn(p, p.handTiles, record.Tile) {
			return nil, newActionError(seat, ActionHu, "hand cannot win on %s", record.Tile.Name())
		}
	}

	s := state.Clone()
	s.removeLastDiscard()
	ctx := WinContext{
		AfterKon: s.konSeat == record.Seat,
		LastTile: len(s.wall) == 0,
	}
	for _, seat := range ordered {
		settleHu(s, s.players[seat], record.Tile, ctx, record.Seat)
	}
	s.waiting = false
	s.konSeat = SeatNull
	if !s.checkEnd() {
		s.advanceTurn(record.Seat)
	}
	return s, nil
}

func declareSelfHu(state *GameState, seat int32) (*GameState, error) {
	if state.waiting {
		return nil, newStateError(state.phase, "responses pending")
	}
	if seat != state.curSeat {
		return nil, newActionError(seat, ActionHu, "not current seat %d", state.curSeat)
	}
	p := state.Player(seat)
	if len(p.handTiles)%3 != 2 {
		return nil, newActionError(seat, ActionHu, "hand not ready to win")
	}
	winTile := selfWinTile(p)
	if winTile == TileNull {
		return nil, newActionError(seat, ActionHu, "hand is not a winning hand")
	}

	s := state.Clone()
	sp := s.players[seat]
	sp.removeTiles(winTile, 1)
	ctx := WinContext{
		SelfDrawn: true,
		AfterKon:  s.konSeat == seat,
		LastTile:  len(s.wall) == 0,
		TianHu:    seat == s.dealerSeat && s.turnCount == 0,
		DiHu:      seat != s.dealerSeat && sp.drawCount == 1 && len(sp.melds) == 0,
	}
	settleHu(s, sp, winTile, ctx, SeatNull)
	sp.lastDrawn = TileNull
	s.konSeat = SeatNull
	if !s.checkEnd() {
		s.advanceTurn(seat)
	}
	return s, nil
}

// selfWinTile 取所胡的那张, 优先刚摸的牌
func selfWinTile(p *Player) Tile {
	if p.lastDrawn != TileNull {
		hand := RemoveElements(p.handTiles, p.lastDrawn, 1)
		if canWinOn(p, hand, p.lastDrawn) {
			return p.lastDrawn
		}
		return TileNull
	}
	tried := make(map[Tile]struct{})
	for _, t := range p.handTiles {
		if _, ok := tried[t]; ok {
			continue
		}
		tried[t] = struct{}{}
		hand := RemoveElements(p.handTiles, t, 1)
		if canWinOn(p, hand, t) {
			return t
		}
	}
	return TileNull
}

func declareDiscardHu(state *GameState, seat int32, target Tile, discardSeat int32) (*GameState, error) {
	record, ok := state.lastDiscard()
	if !ok {
		return nil, newStateError(state.phase, "no discard awaiting responses")
	}
	if record.Seat != discardSeat || record.Tile != target {
		return nil, newActionError(seat, ActionHu, "response does not match discard")
	}
	if seat == discardSeat {
		return nil, newActionError(seat, ActionHu, "cannot respond to own discard")
	}
	p := state.Player(seat)
	if !canWinOn(p, p.handTiles, target) {
		return nil, newActionError(seat, ActionHu, "hand cannot win on %s", target.Name())
	}

	s := state.Clone()
	sp := s.players[seat]
	s.removeLastDiscard()
	ctx := WinContext{
		AfterKon: s.konSeat == discardSeat,
		LastTile: len(s.wall) == 0,
	}
	settleHu(s, sp, target, ctx, discardSeat)
	s.waiting = false
	s.konSeat = SeatNull
	if !s.checkEnd() {
		s.advanceTurn(discardSeat)
	}
	return s, nil
}

// settleHu 算番转分, 自摸三家各付, 点炮只有放炮者付
func settleHu(s *GameState, winner *Player, winTile Tile, ctx WinContext, discardSeat int32) {
	result := CalcFan(winner.handTiles, winner.melds, winTile, ctx)
	amount := result.Fan * s.baseScore
	if ctx.SelfDrawn {
		for _, q := range s.players {
			if q.seat == winner.seat {
				continue
			}
			q.score -= amount
			winner.score += amount
		}
	} else {
		s.players[discardSeat].score -= amount
		winner.score += amount
	}
	winner.markHu(winTile)

	logger.Log.Infof("game %s: seat %d hu %s, fan %d %v",
		s.gameID, winner.seat, winTile.Name(), result.Fan, result.Types)
	s.VerifyZeroSum()
}

func declareAnKon(state *GameState, seat int32, target Tile) (*GameState, error) {
	if state.waiting {
		return nil, newStateError(state.phase, "responses pending")
	}
	if seat != state.curSeat {
		return nil, newActionError(seat, ActionAnKon, "not current seat %d", state.curSeat)
	}
	p := state.Player(seat)
	if p.handLocked {
		return nil, newActionError(seat, ActionAnKon, "hand locked")
	}
	if target.Color() == p.missingColor {
		return nil, newActionError(seat, ActionAnKon, "cannot meld missing suit")
	}
	if CountElement(p.handTiles, target) < 4 {
		return nil, newActionError(seat, ActionAnKon, "need 4 of %s in hand", target.Name())
	}

	s := state.Clone()
	sp := s.players[seat]
	sp.removeTiles(target, 4)
	sp.melds = append(sp.melds, Meld{Type: GroupTypeAnKon, Tile: target, From: seat})
	settleKon(s, seat, SeatNull, KonScoreAn)
	s.konSeat = seat
	s.drawAfterKon(seat)
	return s, nil
}

func declareBuKon(state *GameState, seat int32, target Tile) (*GameState, error) {
	if state.waiting {
		return nil, newStateError(state.phase, "responses pending")
	}
	if seat != state.curSeat {
		return nil, newActionError(seat, ActionBuKon, "not current seat %d", state.curSeat)
	}
	p := state.Player(seat)
	if p.handLocked {
		return nil, newActionError(seat, ActionBuKon, "hand locked")
	}
	idx := p.ponMeldIndex(target)
	if idx < 0 {
		return nil, newActionError(seat, ActionBuKon, "no pon of %s to upgrade", target.Name())
	}
	if CountElement(p.handTiles, target) < 1 {
		return nil, newActionError(seat, ActionBuKon, "4th %s not in hand", target.Name())
	}

	s := state.Clone()
	sp := s.players[seat]
	sp.removeTiles(target, 1)
	sp.melds[idx].Type = GroupTypeBuKon
	settleKon(s, seat, SeatNull, KonScoreBu)
	s.konSeat = seat
	s.drawAfterKon(seat)
	return s, nil
}

func declareZhiKon(state *GameState, seat int32, target Tile, discardSeat int32) (*GameState, error) {
	record, ok := state.lastDiscard()
	if !ok {
		return nil, newStateError(state.phase, "no discard awaiting responses")
	}
	if record.Seat != discardSeat || record.Tile != target {
		return nil, newActionError(seat, ActionZhiKon, "response does not match discard")
	}
	if seat == discardSeat {
		return nil, newActionError(seat, ActionZhiKon, "cannot respond to own discard")
	}
	p := state.Player(seat)
	if p.handLocked {
		return nil, newActionError(seat, ActionZhiKon, "hand locked")
	}
	if target.Color() == p.missingColor {
		return nil, newActionError(seat, ActionZhiKon, "cannot meld missing suit")
	}
	if CountElement(p.handTiles, target) < 3 {
		return nil, newActionError(seat, ActionZhiKon, "need 3 of %s in hand", target.Name())
	}

	s := state.Clone()
	sp := s.players[seat]
	s.removeLastDiscard()
	sp.removeTiles(target, 3)
	sp.melds = append(sp.melds, Meld{Type: GroupTypeZhiKon, Tile: target, From: discardSeat})
	settleKon(s, seat, discardSeat, KonScoreZhi)
	s.waiting = false
	s.konSeat = seat
	s.curSeat = seat
	s.drawAfterKon(seat)
	return s, nil
}

func declarePon(state *GameState, seat int32, target Tile, discardSeat int32) (*GameState, error) {
	record, ok := state.lastDiscard()
	if !ok {
		return nil, newStateError(state.phase, "no discard awaiting responses")
	}
	if record.Seat != discardSeat || record.Tile != target {
		return nil, newActionError(seat, ActionPon, "response does not match discard")
	}
	if seat == discardSeat {
		return nil, newActionError(seat, ActionPon, "cannot respond to own discard")
	}
	p := state.Player(seat)
	if p.handLocked {
		return nil, newActionError(seat, ActionPon, "hand locked")
	}
	if target.Color() == p.missingColor {
		return nil, newActionError(seat, ActionPon, "cannot meld missing suit")
	}
	if CountElement(p.handTiles, target) < 2 {
		return nil, newActionError(seat, ActionPon, "need 2 of %s in hand", target.Name())
	}

	s := state.Clone()
	sp := s.players[seat]
	s.removeLastDiscard()
	sp.removeTiles(target, 2)
	sp.melds = append(sp.melds, Meld{Type: GroupTypePon, Tile: target, From: discardSeat})
	s.waiting = false
	s.konSeat = SeatNull
	s.curSeat = seat
	return s, nil
}

// settleKon 刮风下雨, 直杠点杠者付, 暗杠补杠其余三家各付
func settleKon(s *GameState, seat, fromSeat int32, amount int64) {
	winner := s.players[seat]
	if fromSeat != SeatNull {
		s.players[fromSeat].score -= amount
		winner.score += amount
	} else {
		for _, q := range s.players {
			if q.seat == seat {
				continue
			}
			q.score -= amount
			winner.score += amount
		}
	}
	logger.Log.Infof("game %s: seat %d kon settles %d", s.gameID, seat, amount)
	s.VerifyZeroSum()
}

// drawAfterKon 杠后补牌, 摸空流局
func (s *GameState) drawAfterKon(seat int32) {
	if _, ok := s.drawTile(seat); !ok {
		s.endGame()
	}
}

// advanceTurn 轮转到下家并摸牌
func (s *GameState) advanceTurn(from int32) {
	next := GetNextSeat(from, 1, NP4)
	s.curSeat = next
	if _, ok := s.drawTile(next); !ok {
		s.endGame()
	}
}
