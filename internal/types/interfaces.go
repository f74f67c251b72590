package types

import (
	"github.com/palemoky/hearts/internal/protocol"
)

// ClientInterface 定义客户端接口（用于打破 server ↔ room 的循环依赖）
type ClientInterface interface {
	GetID() string
	GetName() string
	GetRoom() string
	SetRoom(code string)
	SendMessage(msg *protocol.Message)
	Close()
}
