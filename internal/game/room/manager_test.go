package room

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/config"
)

func newTestManager() *RoomManager {
	cfg := config.Default()
	return &RoomManager{
		gameCfg: cfg.Game,
		rooms:   make(map[string]*Room),
	}
}

func TestCreateRoom(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		room := rm.CreateRoom()
		require.Len(t, room.Code, roomCodeLength)
		for _, ch := range room.Code {
			assert.True(t, strings.ContainsRune(roomCodeChars, ch))
		}
		assert.False(t, seen[room.Code], "codes must be unique")
		seen[room.Code] = true
		assert.Same(t, room, rm.GetRoom(room.Code))
	}
	assert.Equal(t, 50, rm.RoomCount())
}

func TestJoinRoom(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room := rm.CreateRoom()

	client := newTestClient("p1", "Alice")
	joined, err := rm.JoinRoom(client, room.Code)
	require.NoError(t, err)
	assert.Same(t, room, joined)
	assert.Equal(t, room.Code, client.GetRoom())

	_, err = rm.JoinRoom(newTestClient("p2", "Bob"), "NOPE99")
	assert.ErrorIs(t, err, apperrors.ErrRoomNotFound)
}

func TestJoinFullRoom(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room := rm.CreateRoom()
	for i := 0; i < MaxPlayers; i++ {
		_, err := rm.JoinRoom(newTestClient(string(rune('a'+i)), "P"), room.Code)
		require.NoError(t, err)
	}

	_, err := rm.JoinRoom(newTestClient("late", "Late"), room.Code)
	assert.ErrorIs(t, err, apperrors.ErrRoomFull)
}

func TestLeaveRoomReapsEmpty(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	room := rm.CreateRoom()

	c1 := newTestClient("p1", "Alice")
	c2 := newTestClient("p2", "Bob")
	_, err := rm.JoinRoom(c1, room.Code)
	require.NoError(t, err)
	_, err = rm.JoinRoom(c2, room.Code)
	require.NoError(t, err)

	rm.LeaveRoom(c1)
	assert.Equal(t, "", c1.GetRoom())
	assert.NotNil(t, rm.GetRoom(room.Code), "room survives while Bob is connected")

	rm.LeaveRoom(c2)
	assert.Nil(t, rm.GetRoom(room.Code), "last leaver tears the room down")
}

func TestLeaveRoomNotJoined(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	rm.LeaveRoom(newTestClient("ghost", "Ghost")) // no room set, no panic
}

func TestCleanupReapsIdleRooms(t *testing.T) {
	t.Parallel()

	rm := newTestManager()
	rm.gameCfg.RoomTimeout = 0 // everything idle is stale

	empty := rm.CreateRoom()
	live := rm.CreateRoom()
	_, err := rm.JoinRoom(newTestClient("p1", "Alice"), live.Code)
	require.NoError(t, err)

	rm.cleanup()
	assert.Nil(t, rm.GetRoom(empty.Code), "empty idle room is reaped")
	assert.NotNil(t, rm.GetRoom(live.Code), "room with a live connection survives")
}
