package mahjong

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9}
var SameTileCountByColor = [ColorEnd]int{4, 4, 4}

const (
	TileNull Tile  = -1
	SeatNull int32 = -1
)

const (
	NP4 = 4
	NP3 = 3
	NP2 = 2
)

const (
	TileCountTotal      = 108
	TileCountInitBanker = 14
	TileCountInitNormal = 13
	TileCountBury       = 3
)

const (
	ScoreInit     int64 = 100
	ScoreTotal    int64 = ScoreInit * NP4
	KonScoreZhi   int64 = 2 // 直杠: 点杠者支付
	KonScoreAn    int64 = 2 // 暗杠: 每家支付
	KonScoreBu    int64 = 1 // 补杠: 每家支付
	HuCountToEnd        = 3 // 血战到底: 三家胡牌即终局
)

type EPhase int

const (
	PhasePreparing EPhase = iota
	PhaseBurying
	PhasePlaying
	PhaseEnded
)

var phaseNames = map[EPhase]string{
	PhasePreparing: "PREPARING",
	PhaseBurying:   "BURYING",
	PhasePlaying:   "PLAYING",
	PhaseEnded:     "ENDED",
}

func (p EPhase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "UNKNOWN"
}

type EAction int

const (
	ActionNone EAction = iota
	ActionPass
	ActionPon
	ActionZhiKon // 直杠(点杠)
	ActionAnKon  // 暗杠
	ActionBuKon  // 补杠
	ActionHu
	ActionDiscard
	ActionDraw
)

var actionNames = map[EAction]string{
	ActionNone:    "None",
	ActionPass:    "Pass",
	ActionPon:     "Pon",
	ActionZhiKon:  "ZhiKon",
	ActionAnKon:   "AnKon",
	ActionBuKon:   "BuKon",
	ActionHu:      "Hu",
	ActionDiscard: "Discard",
	ActionDraw:    "Draw",
}

func (a EAction) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionPriority 响应优先级: 胡 > 杠 > 碰 > 过
func ActionPriority(a EAction) int {
	switch a {
	case ActionHu:
		return 3
	case ActionZhiKon:
		return 2
	case ActionPon:
		return 1
	default:
		return 0
	}
}

type EGroupType int

const (
	GroupTypeNone EGroupType = iota
	GroupTypePon
	GroupTypeZhiKon
	GroupTypeAnKon
	GroupTypeBuKon
)

var groupNames = map[EGroupType]string{
	GroupTypePon:    "PONG",
	GroupTypeZhiKon: "KONG_EXPOSED",
	GroupTypeAnKon:  "KONG_CONCEALED",
	GroupTypeBuKon:  "KONG_UPGRADE",
}

func (g EGroupType) String() string {
	if name, ok := groupNames[g]; ok {
		return name
	}
	return "NONE"
}

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}
