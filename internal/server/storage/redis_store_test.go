package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return client, mr
}

func TestRedisStore_SaveLoadDeleteRoom(t *testing.T) {
	t.Parallel()

	client, mr := newTestRedis(t)
	defer mr.Close()
	store := NewRedisStore(client)
	ctx := context.Background()

	roomData := &RoomData{
		Code:  "TEST12",
		Phase: "passing",
		Round: 2,
		Players: []PlayerData{
			{ID: "p1", Name: "Alice", Seat: 0, Score: 17},
			{ID: "b1", Name: "Bot 1", Seat: 1, IsBot: true, Score: 4},
		},
		HostID:    "p1",
		CreatedAt: time.Now().Unix(),
	}

	// Save
	err := store.SaveRoom(ctx, roomData.Code, roomData)
	require.NoError(t, err)

	// Load
	loaded, err := store.LoadRoom(ctx, roomData.Code)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, roomData.Code, loaded.Code)
	assert.Equal(t, roomData.Phase, loaded.Phase)
	assert.Equal(t, roomData.Players, loaded.Players)

	// Delete
	err = store.DeleteRoom(ctx, roomData.Code)
	require.NoError(t, err)

	loaded, err = store.LoadRoom(ctx, roomData.Code)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_SaveNil(t *testing.T) {
	t.Parallel()

	client, mr := newTestRedis(t)
	defer mr.Close()
	store := NewRedisStore(client)

	assert.NoError(t, store.SaveRoom(context.Background(), "X", nil))
}

func TestRedisStore_GetAllRoomCodes(t *testing.T) {
	t.Parallel()

	client, mr := newTestRedis(t)
	defer mr.Close()
	store := NewRedisStore(client)
	ctx := context.Background()

	require.NoError(t, store.SaveRoom(ctx, "AAA111", &RoomData{Code: "AAA111"}))
	require.NoError(t, store.SaveRoom(ctx, "BBB222", &RoomData{Code: "BBB222"}))

	codes, err := store.GetAllRoomCodes(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"AAA111", "BBB222"}, codes)
}

func TestLeaderboard_RecordGameResult(t *testing.T) {
	t.Parallel()

	client, mr := newTestRedis(t)
	defer mr.Close()
	lm := NewLeaderboardManager(client)
	ctx := context.Background()

	require.NoError(t, lm.RecordGameResult(ctx, "p1", "Alice", true, false, 42))
	require.NoError(t, lm.RecordGameResult(ctx, "p2", "Bob", false, true, 104))
	require.NoError(t, lm.RecordGameResult(ctx, "p1", "Alice", true, false, 31))

	stats, err := lm.GetPlayerStats(ctx, "p1")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2, stats.TotalGames)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 31, stats.BestScore)
	assert.Equal(t, 73, stats.TotalScore)

	stats, err = lm.GetPlayerStats(ctx, "p2")
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 0, stats.Wins)
	assert.Equal(t, 1, stats.MoonShots)

	top, err := lm.GetTopPlayers(ctx, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "p1", top[0].PlayerID)
	assert.Equal(t, 1, top[0].Rank)
	assert.Equal(t, 2, top[0].Wins)
}

func TestLeaderboard_GetPlayerStats_Missing(t *testing.T) {
	t.Parallel()

	client, mr := newTestRedis(t)
	defer mr.Close()
	lm := NewLeaderboardManager(client)

	stats, err := lm.GetPlayerStats(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, stats)
}
