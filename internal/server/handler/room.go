package handler

import (
	"github.com/palemoky/hearts/internal/types"
)

// handleAddBot 房主添加机器人座位
func (h *Handler) handleAddBot(client types.ClientInterface) {
	r := h.currentRoom(client)
	if r == nil {
		return
	}
	sendRoomError(client, r.AddBot(client.GetID()))
}

// handleStartGame 房主开始游戏
func (h *Handler) handleStartGame(client types.ClientInterface) {
	r := h.currentRoom(client)
	if r == nil {
		return
	}
	sendRoomError(client, r.StartGame(client.GetID()))
}

// handleStartRound 房主开始下一轮
func (h *Handler) handleStartRound(client types.ClientInterface) {
	r := h.currentRoom(client)
	if r == nil {
		return
	}
	sendRoomError(client, r.StartNextRound(client.GetID()))
}
