package handler

import (
	"errors"
	"log"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/game/room"
	"github.com/palemoky/hearts/internal/protocol"
	"github.com/palemoky/hearts/internal/protocol/codec"
	"github.com/palemoky/hearts/internal/types"
)

// Handler 消息处理器
type Handler struct {
	roomManager *room.RoomManager
	handlers    map[protocol.MessageType]handlerFunc
}

// handlerFunc 统一的处理器函数签名
type handlerFunc func(client types.ClientInterface, msg *protocol.Message)

// NewHandler 创建处理器
func NewHandler(rm *room.RoomManager) *Handler {
	h := &Handler{roomManager: rm}
	h.initHandlers()
	return h
}

// initHandlers 初始化消息处理器映射
func (h *Handler) initHandlers() {
	h.handlers = map[protocol.MessageType]handlerFunc{
		// 连接操作
		protocol.MsgPing: h.handlePing,

		// 房间操作（仅房主有效）
		protocol.MsgAddBot:     func(c types.ClientInterface, _ *protocol.Message) { h.handleAddBot(c) },
		protocol.MsgStartGame:  func(c types.ClientInterface, _ *protocol.Message) { h.handleStartGame(c) },
		protocol.MsgStartRound: func(c types.ClientInterface, _ *protocol.Message) { h.handleStartRound(c) },

		// 游戏操作
		protocol.MsgPassCards: h.handlePassCards,
		protocol.MsgPlayCard:  h.handlePlayCard,
	}
}

// Handle 处理消息
func (h *Handler) Handle(client types.ClientInterface, msg *protocol.Message) {
	if handler, ok := h.handlers[msg.Type]; ok {
		handler(client, msg)
		return
	}

	log.Printf("⚠️  未知消息类型: '%s' (来自玩家: %s, ID: %s)", msg.Type, client.GetName(), client.GetID())
	client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
}

// currentRoom 找到客户端所在的房间，不在房间时回错误
func (h *Handler) currentRoom(client types.ClientInterface) *room.Room {
	r := h.roomManager.GetRoom(client.GetRoom())
	if r == nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeNotInRoom))
	}
	return r
}

// sendRoomError 把房间层错误翻译成错误消息
func sendRoomError(client types.ClientInterface, err error) {
	if err == nil {
		return
	}
	var gameErr *apperrors.GameError
	if errors.As(err, &gameErr) {
		client.SendMessage(codec.NewErrorMessage(gameErr.Code))
		return
	}
	client.SendMessage(codec.NewErrorMessageWithText(protocol.ErrCodeUnknown, err.Error()))
}
