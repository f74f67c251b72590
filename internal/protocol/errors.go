package protocol

// 错误码
const (
	ErrCodeUnknown      = 1000
	ErrCodeInvalidMsg   = 1001
	ErrCodeRoomNotFound = 2001
	ErrCodeRoomFull     = 2002
	ErrCodeNotInRoom    = 2003
	ErrCodeGameStarted  = 2004
	ErrCodeNotHost      = 2005
	ErrCodeNotEnough    = 2006
	ErrCodeGameNotStart = 3001
)

// ErrorMessages 错误码对应的消息
var ErrorMessages = map[int]string{
	ErrCodeUnknown:      "未知错误",
	ErrCodeInvalidMsg:   "无效的消息格式",
	ErrCodeRoomNotFound: "房间不存在",
	ErrCodeRoomFull:     "房间已满",
	ErrCodeNotInRoom:    "您不在房间中",
	ErrCodeGameStarted:  "游戏已开始",
	ErrCodeNotHost:      "只有房主可以执行该操作",
	ErrCodeNotEnough:    "座位未满，无法开始",
	ErrCodeGameNotStart: "游戏尚未开始",
}
