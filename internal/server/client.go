package server

import (
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/palemoky/hearts/internal/protocol"
	"github.com/palemoky/hearts/internal/protocol/codec"
)

const (
	// 写入超时
	writeWait = 10 * time.Second

	// 读取超时（pong 等待时间）
	pongWait = 60 * time.Second

	// ping 发送间隔（必须小于 pongWait）
	pingPeriod = (pongWait * 9) / 10

	// 消息最大大小
	maxMessageSize = 4096

	// 昵称最大长度（按 rune 计）
	maxNameLen = 20
)

// Client 代表一个连接的玩家
type Client struct {
	ID   string // 玩家唯一 ID
	Name string // 玩家昵称

	server *Server
	conn   *websocket.Conn
	send   chan []byte

	mu       sync.RWMutex
	roomCode string
	closed   bool
}

// NewClient 创建新客户端
func NewClient(s *Server, conn *websocket.Conn, name string) *Client {
	return &Client{
		ID:     uuid.New().String(),
		Name:   sanitizeName(name),
		server: s,
		conn:   conn,
		send:   make(chan []byte, 256),
	}
}

// sanitizeName 清理昵称：去首尾空白、截断过长、空则给默认名
func sanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > maxNameLen {
		name = string(runes[:maxNameLen])
	}
	if name == "" {
		name = "Player"
	}
	return name
}

// ReadPump 从 WebSocket 读取消息
func (c *Client) ReadPump() {
	defer func() {
		c.handleDisconnect()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("读取错误: %v", err)
			}
			break
		}

		msg, err := codec.Decode(message)
		if err != nil {
			log.Printf("消息解析错误: %v", err)
			c.SendMessage(codec.NewErrorMessage(protocol.ErrCodeInvalidMsg))
			continue
		}

		c.server.handler.Handle(c, msg)
	}
}

// WritePump 向 WebSocket 写入消息
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// 通道已关闭
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// SendMessage 发送消息给客户端
func (c *Client) SendMessage(msg *protocol.Message) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return
	}
	c.mu.RUnlock()

	data, err := codec.Encode(msg)
	if err != nil {
		log.Printf("消息编码错误: %v", err)
		return
	}

	select {
	case c.send <- data:
	default:
		// 发送缓冲区已满，关闭连接
		log.Printf("客户端 %s 发送缓冲区已满", c.ID)
		c.Close()
	}
}

// handleDisconnect 处理断开连接
func (c *Client) handleDisconnect() {
	c.server.roomManager.LeaveRoom(c)
	c.server.unregisterClient(c)
}

// Close 关闭客户端连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// GetID 获取玩家 ID
func (c *Client) GetID() string { return c.ID }

// GetName 获取玩家昵称
func (c *Client) GetName() string { return c.Name }

// SetRoom 设置客户端所在房间
func (c *Client) SetRoom(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roomCode = code
}

// GetRoom 获取客户端所在房间
func (c *Client) GetRoom() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roomCode
}
