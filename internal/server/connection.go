package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/protocol"
	"github.com/palemoky/hearts/internal/protocol/codec"
)

// handleCreateRoom 创建房间，返回房间号
func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	room := s.roomManager.CreateRoom()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"room_code": room.Code})
}

// handleWebSocket 处理 WebSocket 连接：升级后立刻入座指定房间
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	roomCode := chi.URLParam(r, "roomCode")
	if s.roomManager.GetRoom(roomCode) == nil {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	client := NewClient(s, conn, r.URL.Query().Get("name"))
	s.registerClient(client)

	go client.ReadPump()
	go client.WritePump()

	if _, err := s.roomManager.JoinRoom(client, roomCode); err != nil {
		code := protocol.ErrCodeUnknown
		var gameErr *apperrors.GameError
		if errors.As(err, &gameErr) {
			code = gameErr.Code
		}
		client.SendMessage(codec.NewErrorMessage(code))
		client.Close()
		return
	}

	log.Printf("✅ 玩家 %s (%s) 已连接房间 %s", client.Name, client.ID, roomCode)
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
