package room

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hearts/internal/game/hearts"
)

// newFastRoom builds a room whose bot ticks fire almost immediately.
func newFastRoom(t *testing.T) *Room {
	t.Helper()
	r := &Room{
		Code:       "FAST01",
		CreatedAt:  time.Now(),
		lastActive: time.Now(),
		playDelay:  time.Millisecond,
		trickDelay: 2 * time.Millisecond,
	}
	t.Cleanup(r.stopBotTimer)
	return r
}

func TestScheduleBotTickDebounce(t *testing.T) {
	t.Parallel()

	r := newTestRoom(t)
	host := newTestClient("host", "Alice")
	require.NoError(t, r.AddHuman(host))
	host.ClearMessages()

	// Two arms back to back: the second cancels the first, so at most
	// one tick fires. With no game a stale tick only re-broadcasts.
	r.scheduleBotTick(10 * time.Millisecond)
	r.scheduleBotTick(10 * time.Millisecond)
	time.Sleep(50 * time.Millisecond)

	assert.Len(t, host.Messages(), 1, "exactly one tick fires")
}

func TestStopBotTimer(t *testing.T) {
	t.Parallel()

	r := newTestRoom(t)
	host := newTestClient("host", "Alice")
	require.NoError(t, r.AddHuman(host))
	host.ClearMessages()

	r.scheduleBotTick(10 * time.Millisecond)
	r.stopBotTimer()
	time.Sleep(50 * time.Millisecond)

	assert.Empty(t, host.Messages(), "stopped tick must not fire")
	r.stopBotTimer() // idempotent
}

func TestBotTickResolvesPassing(t *testing.T) {
	t.Parallel()

	r := newFastRoom(t)
	fillWithBots(t, r)
	require.NoError(t, r.StartGame("host"))

	// One tick submits every bot seat's pass; only the host is pending.
	require.Eventually(t, func() bool {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.game.HasSubmittedPass(1) && r.game.HasSubmittedPass(2) && r.game.HasSubmittedPass(3)
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, hearts.PhasePassing, gamePhase(r), "phase waits for the host")
	assert.False(t, r.game.HasSubmittedPass(0))

	require.NoError(t, r.SubmitPass("host", r.game.Hand(0)[:hearts.PassSize]))
	assert.Equal(t, hearts.PhasePlaying, gamePhase(r))
}

func TestBotsFinishRound(t *testing.T) {
	t.Parallel()

	r := newFastRoom(t)
	fillWithBots(t, r)
	require.NoError(t, r.StartGame("host"))

	// Hand the last seat to a bot as well: the whole round now runs on
	// chained ticks with no human input.
	r.HandleDisconnect("host")

	require.Eventually(t, func() bool {
		phase := gamePhase(r)
		return phase == hearts.PhaseRoundEnd || phase == hearts.PhaseGameOver
	}, 5*time.Second, 10*time.Millisecond, "bots play the round out on their own")

	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for i := 0; i < MaxPlayers; i++ {
		total += r.game.TakenPoints(i)
	}
	assert.Equal(t, 26, total, "all point cards accounted for")
	for i := 0; i < MaxPlayers; i++ {
		assert.Empty(t, r.game.Hand(i))
	}
}

func TestStartNextRoundAfterBots(t *testing.T) {
	t.Parallel()

	r := newFastRoom(t)
	fillWithBots(t, r)
	require.NoError(t, r.StartGame("host"))
	r.HandleDisconnect("host")

	require.Eventually(t, func() bool {
		phase := gamePhase(r)
		return phase == hearts.PhaseRoundEnd || phase == hearts.PhaseGameOver
	}, 5*time.Second, 10*time.Millisecond)

	if gamePhase(r) != hearts.PhaseRoundEnd {
		t.Skip("game ended in one round")
	}

	// The host seat is bot-held now but the host ID still gates the action.
	require.NoError(t, r.StartNextRound("host"))
	phase := gamePhase(r)
	assert.True(t, phase == hearts.PhasePassing || phase == hearts.PhasePlaying,
		"next round starts (hold rounds skip straight to playing)")
}

func TestAfterPlayDelay(t *testing.T) {
	t.Parallel()

	r := newTestRoom(t)
	r.playDelay = time.Minute
	r.trickDelay = time.Hour
	fillWithBots(t, r)
	require.NoError(t, r.StartGame("host"))

	r.mu.Lock()
	defer r.mu.Unlock()

	// Resolve the pass so play can begin.
	for i := 0; i < MaxPlayers; i++ {
		require.True(t, r.game.SubmitPass(i, r.game.Hand(i)[:hearts.PassSize]))
	}
	require.Equal(t, hearts.PhasePlaying, r.game.Phase())

	// The first three plays leave the trick open: normal play delay.
	for i := 0; i < MaxPlayers-1; i++ {
		turn := r.game.CurrentTurn()
		before := r.game.TrickSize()
		require.True(t, r.game.PlayCard(turn, r.game.LegalMoves(turn)[0]))
		assert.Equal(t, r.playDelay, r.afterPlayDelayLocked(before))
	}

	// The fourth play completes the trick: the longer display delay.
	turn := r.game.CurrentTurn()
	before := r.game.TrickSize()
	require.Equal(t, MaxPlayers-1, before)
	require.True(t, r.game.PlayCard(turn, r.game.LegalMoves(turn)[0]))
	require.Equal(t, 0, r.game.TrickSize())
	assert.Equal(t, r.trickDelay, r.afterPlayDelayLocked(before))
}

func TestStaleTickIsNoOp(t *testing.T) {
	t.Parallel()

	r := newTestRoom(t)
	host := fillWithBots(t, r)
	require.NoError(t, r.StartGame("host"))
	host.ClearMessages()

	// Fake a tick arriving after the state already moved on: in the
	// passing phase with every bot already submitted, there is nothing
	// to do and the tick only re-broadcasts.
	r.mu.Lock()
	for i := 1; i < MaxPlayers; i++ {
		require.True(t, r.game.SubmitPass(i, r.game.Hand(i)[:hearts.PassSize]))
	}
	advanced := r.advanceBotLocked()
	r.mu.Unlock()

	assert.False(t, advanced)
}
