package mahjong

// PlayerResponse 一次弃牌后某家申报的响应
type PlayerResponse struct {
	Seat   int32   `json:"seat"`
	Action EAction `json:"action"`
	Tile   Tile    `json:"tile"`
}
