package handler

import (
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/protocol"
	"github.com/palemoky/hearts/internal/protocol/codec"
	"github.com/palemoky/hearts/internal/types"
)

// 游戏操作只在载荷解析失败时回错误；轮次、持牌、规则上的违规
// 由游戏核心静默拒绝，客户端从下一份快照看出操作没有生效。

// handlePassCards 处理提交换牌
func (h *Handler) handlePassCards(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.PassCardsPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	cards, err := card.FromCodes(payload.Cards)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.currentRoom(client)
	if r == nil {
		return
	}
	sendRoomError(client, r.SubmitPass(client.GetID(), cards))
}

// handlePlayCard 处理出牌
func (h *Handler) handlePlayCard(client types.ClientInterface, msg *protocol.Message) {
	payload, err := codec.ParsePayload[protocol.PlayCardPayload](msg)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	c, err := card.FromCode(payload.Card)
	if err != nil {
		client.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
		return
	}

	r := h.currentRoom(client)
	if r == nil {
		return
	}
	sendRoomError(client, r.PlayCard(client.GetID(), c))
}
