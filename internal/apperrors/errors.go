package apperrors

import (
	"github.com/palemoky/hearts/internal/protocol"
)

// GameError 游戏错误（房间层使用；游戏核心内的规则违规静默拒绝，不走错误）
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrRoomNotFound = &GameError{Code: protocol.ErrCodeRoomNotFound, Message: "房间不存在"}
	ErrRoomFull     = &GameError{Code: protocol.ErrCodeRoomFull, Message: "房间已满"}
	ErrNotInRoom    = &GameError{Code: protocol.ErrCodeNotInRoom, Message: "您不在房间中"}
	ErrGameStarted  = &GameError{Code: protocol.ErrCodeGameStarted, Message: "游戏已开始"}
	ErrGameNotStart = &GameError{Code: protocol.ErrCodeGameNotStart, Message: "游戏尚未开始"}
	ErrNotHost      = &GameError{Code: protocol.ErrCodeNotHost, Message: "只有房主可以执行该操作"}
	ErrNotEnough    = &GameError{Code: protocol.ErrCodeNotEnough, Message: "座位未满，无法开始"}
)
