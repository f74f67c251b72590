package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgPing MessageType = "ping" // 心跳 ping

	// 房间操作（仅房主有效）
	MsgAddBot     MessageType = "add_bot"     // 添加机器人座位
	MsgStartGame  MessageType = "start_game"  // 开始游戏
	MsgStartRound MessageType = "start_round" // 开始下一轮

	// 游戏操作
	MsgPassCards MessageType = "pass_cards" // 提交换牌
	MsgPlayCard  MessageType = "play_card"  // 出牌
)

// 服务端 → 客户端 消息类型
const (
	MsgState MessageType = "state" // 状态快照推送
	MsgPong  MessageType = "pong"  // 心跳 pong
	MsgError MessageType = "error" // 错误
)
