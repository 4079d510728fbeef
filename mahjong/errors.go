package mahjong

import "fmt"

// InvalidActionError 玩家操作不合法, 牌局状态不变
type InvalidActionError struct {
	Seat   int32
	Action EAction
	Reason string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid action %s by seat %d: %s", e.Action, e.Seat, e.Reason)
}

func newActionError(seat int32, action EAction, format string, args ...any) error {
	return &InvalidActionError{Seat: seat, Action: action, Reason: fmt.Sprintf(format, args...)}
}

// InvalidGameStateError 当前阶段不允许该操作
type InvalidGameStateError struct {
	Phase  EPhase
	Reason string
}

func (e *InvalidGameStateError) Error() string {
	return fmt.Sprintf("invalid game state %s: %s", e.Phase, e.Reason)
}

func newStateError(phase EPhase, format string, args ...any) error {
	return &InvalidGameStateError{Phase: phase, Reason: fmt.Sprintf(format, args...)}
}

// InvalidSetupError 建局参数不合法
type InvalidSetupError struct {
	Reason string
}

func (e *InvalidSetupError) Error() string {
	return fmt.Sprintf("invalid setup: %s", e.Reason)
}

func newSetupError(format string, args ...any) error {
	return &InvalidSetupError{Reason: fmt.Sprintf(format, args...)}
}
