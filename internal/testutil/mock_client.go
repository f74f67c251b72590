//go:build !production

package testutil

import (
	"encoding/json"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/palemoky/hearts/internal/protocol"
)

// MockClient 实现 types.ClientInterface 的 mock
type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetName() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) GetRoom() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockClient) SetRoom(roomCode string) {
	m.Called(roomCode)
}

func (m *MockClient) SendMessage(msg *protocol.Message) {
	m.Called(msg)
}

func (m *MockClient) Close() {
	m.Called()
}

// SimpleClient 简单的 mock 客户端，不使用 testify（用于不需要断言的测试）。
// 房间的定时器协程会并发推送消息，收件箱用锁保护。
type SimpleClient struct {
	ID   string
	Name string

	mu       sync.Mutex
	roomCode string
	messages []*protocol.Message
}

func (m *SimpleClient) GetID() string   { return m.ID }
func (m *SimpleClient) GetName() string { return m.Name }

func (m *SimpleClient) GetRoom() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.roomCode
}

func (m *SimpleClient) SetRoom(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.roomCode = code
}

func (m *SimpleClient) SendMessage(msg *protocol.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
}

func (m *SimpleClient) Close() {}

// Messages 返回到目前为止收到的所有消息的副本
func (m *SimpleClient) Messages() []*protocol.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*protocol.Message(nil), m.messages...)
}

// ClearMessages 清空收件箱
func (m *SimpleClient) ClearMessages() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
}

// LastSnapshot 返回该客户端收到的最后一条 state 消息的载荷，没有则返回 nil
func (m *SimpleClient) LastSnapshot() *protocol.Snapshot {
	msgs := m.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Type != protocol.MsgState {
			continue
		}
		var snap protocol.Snapshot
		if err := json.Unmarshal(msgs[i].Payload, &snap); err != nil {
			return nil
		}
		return &snap
	}
	return nil
}
