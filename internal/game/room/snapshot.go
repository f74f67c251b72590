package room

import (
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/hearts"
	"github.com/palemoky/hearts/internal/protocol"
	"github.com/palemoky/hearts/internal/protocol/codec"
)

// snapshotForLocked 为一个观察者投影当前状态。每次变更后重新计算，
// 手牌和合法牌只暴露观察者自己的。
func (r *Room) snapshotForLocked(viewer int) *protocol.Snapshot {
	s := &protocol.Snapshot{
		RoomID:     r.Code,
		MaxPlayers: MaxPlayers,
		HostID:     r.hostID,
		Phase:      hearts.PhaseLobby.String(),
		PassDir:    "left",
		Scores:     make(map[string]int),
		YourID:     r.seats[viewer].ID,
		CanStart:   r.seats[viewer].ID == r.hostID,
		Players:    make([]protocol.PlayerInfo, 0, len(r.seats)),
		Hand:       []string{},
		LegalMoves: []string{},
		Trick:      []protocol.TrickCard{},
	}

	for i, seat := range r.seats {
		score := 0
		if r.game != nil {
			score = r.game.Score(i)
		}
		s.Players = append(s.Players, protocol.PlayerInfo{
			ID:    seat.ID,
			Name:  seat.Name,
			IsBot: seat.IsBot,
			Score: score,
		})
		s.Scores[seat.ID] = score
	}

	g := r.game
	if g == nil {
		return s
	}

	s.Phase = g.Phase().String()
	s.Round = g.RoundIndex()
	s.PassDir = g.PassDirection().String()
	s.HeartsBroken = g.HeartsBroken()
	s.Hand = card.Codes(g.Hand(viewer))

	if turn := g.CurrentTurn(); turn != hearts.NoSeat {
		s.CurrentTurn = r.seats[turn].ID
	}
	if winner := g.Winner(); winner != hearts.NoSeat {
		s.WinnerID = r.seats[winner].ID
	}

	switch g.Phase() {
	case hearts.PhasePlaying:
		s.LegalMoves = card.Codes(g.LegalMoves(viewer))
	case hearts.PhasePassing:
		s.PendingPass = !g.HasSubmittedPass(viewer)
	}

	for _, p := range g.VisibleTrick() {
		s.Trick = append(s.Trick, protocol.TrickCard{
			PlayerID:   r.seats[p.Seat].ID,
			PlayerName: r.seats[p.Seat].Name,
			Card:       p.Card.Code(),
		})
	}

	return s
}

// broadcastLocked 把新快照推给每个还连着的座位
func (r *Room) broadcastLocked() {
	for i, seat := range r.seats {
		if seat.Client == nil {
			continue
		}
		seat.Client.SendMessage(codec.MustNewMessage(protocol.MsgState, r.snapshotForLocked(i)))
	}
}

// SendState 主动给单个玩家推一份快照（入座后的首推）
func (r *Room) SendState(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.seatIndex(playerID)
	if idx < 0 || r.seats[idx].Client == nil {
		return
	}
	r.seats[idx].Client.SendMessage(codec.MustNewMessage(protocol.MsgState, r.snapshotForLocked(idx)))
}
