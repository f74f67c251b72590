package protocol

// --- 客户端请求 Payloads ---

// PingPayload 心跳请求
type PingPayload struct {
	Timestamp int64 `json:"timestamp"` // 客户端时间戳（毫秒）
}

// PassCardsPayload 提交换牌请求
type PassCardsPayload struct {
	Cards []string `json:"cards"` // 3 张牌的编码，如 ["QS","AH","KH"]
}

// PlayCardPayload 出牌请求
type PlayCardPayload struct {
	Card string `json:"card"` // 牌的编码，如 "2C"
}

// --- 服务端响应 Payloads ---

// PongPayload 心跳响应
type PongPayload struct {
	ClientTimestamp int64 `json:"client_timestamp"` // 客户端发送的时间戳
	ServerTimestamp int64 `json:"server_timestamp"` // 服务器时间戳（毫秒）
}

// ErrorPayload 错误响应
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlayerInfo 座位上的玩家信息
type PlayerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	IsBot bool   `json:"is_bot"`
	Score int    `json:"score"`
}

// TrickCard 墩中的一次出牌
type TrickCard struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Card       string `json:"card"`
}

// Snapshot 推送给单个观察者的状态快照。
// 每次状态变更后为每个连接重新计算，手牌和合法牌只包含观察者自己的。
type Snapshot struct {
	RoomID       string         `json:"room_id"`
	MaxPlayers   int            `json:"max_players"`
	HostID       string         `json:"host_id"`
	Phase        string         `json:"phase"`
	Round        int            `json:"round"`
	PassDir      string         `json:"pass_dir"`
	Players      []PlayerInfo   `json:"players"`
	Trick        []TrickCard    `json:"trick"`
	CurrentTurn  string         `json:"current_turn,omitempty"`
	HeartsBroken bool           `json:"hearts_broken"`
	Scores       map[string]int `json:"scores"`
	WinnerID     string         `json:"winner_id,omitempty"`
	YourID       string         `json:"your_id"`
	Hand         []string       `json:"hand"`
	LegalMoves   []string       `json:"legal_moves"`
	PendingPass  bool           `json:"pending_pass"` // 观察者是否还欠一手换牌
	CanStart     bool           `json:"can_start"`    // 观察者是否是房主
}
