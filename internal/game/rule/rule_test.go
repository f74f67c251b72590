package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/hearts/internal/game/card"
)

func mustCards(t *testing.T, codes ...string) []card.Card {
	t.Helper()
	cards, err := card.FromCodes(codes)
	require.NoError(t, err)
	return cards
}

func TestDirectionForRound(t *testing.T) {
	t.Parallel()

	assert.Equal(t, PassLeft, DirectionForRound(0))
	assert.Equal(t, PassRight, DirectionForRound(1))
	assert.Equal(t, PassAcross, DirectionForRound(2))
	assert.Equal(t, PassHold, DirectionForRound(3))
	assert.Equal(t, PassLeft, DirectionForRound(4))
}

func TestPassTargets(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3, 0}, PassTargets(4, PassLeft))
	assert.Equal(t, []int{3, 0, 1, 2}, PassTargets(4, PassRight))
	assert.Equal(t, []int{2, 3, 0, 1}, PassTargets(4, PassAcross))
	assert.Equal(t, []int{0, 1, 2, 3}, PassTargets(4, PassHold))
}

func TestTrickWinner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		trick  []Played
		winner int
	}{
		{
			name: "highest of lead suit wins",
			trick: []Played{
				{Seat: 0, Card: card.Card{Suit: card.Club, Rank: card.Rank5}},
				{Seat: 1, Card: card.Card{Suit: card.Club, Rank: card.RankK}},
				{Seat: 2, Card: card.Card{Suit: card.Club, Rank: card.Rank9}},
				{Seat: 3, Card: card.Card{Suit: card.Club, Rank: card.Rank2}},
			},
			winner: 1,
		},
		{
			name: "off-suit never wins regardless of rank",
			trick: []Played{
				{Seat: 2, Card: card.Card{Suit: card.Diamond, Rank: card.Rank3}},
				{Seat: 3, Card: card.Card{Suit: card.Spade, Rank: card.RankA}},
				{Seat: 0, Card: card.Card{Suit: card.Heart, Rank: card.RankA}},
				{Seat: 1, Card: card.Card{Suit: card.Diamond, Rank: card.Rank2}},
			},
			winner: 2,
		},
		{
			name: "leader wins when no one follows higher",
			trick: []Played{
				{Seat: 1, Card: card.Card{Suit: card.Heart, Rank: card.RankQ}},
				{Seat: 2, Card: card.Card{Suit: card.Heart, Rank: card.Rank4}},
				{Seat: 3, Card: card.Card{Suit: card.Club, Rank: card.RankA}},
				{Seat: 0, Card: card.Card{Suit: card.Heart, Rank: card.Rank10}},
			},
			winner: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.winner, TrickWinner(tt.trick))
		})
	}
}

func TestTrickPoints(t *testing.T) {
	t.Parallel()

	trick := []Played{
		{Seat: 0, Card: card.Card{Suit: card.Heart, Rank: card.Rank2}},
		{Seat: 1, Card: card.QueenOfSpades},
		{Seat: 2, Card: card.Card{Suit: card.Club, Rank: card.RankA}},
		{Seat: 3, Card: card.Card{Suit: card.Heart, Rank: card.RankK}},
	}
	assert.Equal(t, 15, TrickPoints(trick))
}

func TestLegalMoves_EmptyHand(t *testing.T) {
	t.Parallel()

	assert.Empty(t, LegalMoves(nil, nil, false, true))
}

func TestLegalMoves_FirstTrickLead(t *testing.T) {
	t.Parallel()

	// Holding the two of clubs: it is the only legal lead.
	hand := mustCards(t, "2C", "AH")
	legal := LegalMoves(hand, nil, false, true)
	assert.Equal(t, mustCards(t, "2C"), legal)

	// Not holding it: defensive fallback to a single card.
	hand = mustCards(t, "5D", "9S")
	legal = LegalMoves(hand, nil, false, true)
	assert.Len(t, legal, 1)
}

func TestLegalMoves_LeadHeartsNotBroken(t *testing.T) {
	t.Parallel()

	hand := mustCards(t, "4C", "9D", "2H", "KH")
	legal := LegalMoves(hand, nil, false, false)
	assert.ElementsMatch(t, mustCards(t, "4C", "9D"), legal)

	// All hearts: cannot be locked out of leading.
	hand = mustCards(t, "2H", "KH")
	legal = LegalMoves(hand, nil, false, false)
	assert.ElementsMatch(t, hand, legal)
}

func TestLegalMoves_LeadHeartsBroken(t *testing.T) {
	t.Parallel()

	hand := mustCards(t, "4C", "2H")
	legal := LegalMoves(hand, nil, true, false)
	assert.ElementsMatch(t, hand, legal)
}

func TestLegalMoves_MustFollowSuit(t *testing.T) {
	t.Parallel()

	trick := []Played{{Seat: 0, Card: card.Card{Suit: card.Diamond, Rank: card.Rank7}}}
	hand := mustCards(t, "2D", "KD", "AH")
	legal := LegalMoves(hand, trick, false, false)
	assert.ElementsMatch(t, mustCards(t, "2D", "KD"), legal)
}

func TestLegalMoves_FirstTrickDiscard(t *testing.T) {
	t.Parallel()

	trick := []Played{{Seat: 3, Card: card.TwoOfClubs}}

	// Void in clubs on the first trick: point cards are excluded.
	hand := mustCards(t, "5D", "QS", "3H")
	legal := LegalMoves(hand, trick, false, true)
	assert.Equal(t, mustCards(t, "5D"), legal)

	// Nothing but point cards: they become legal.
	hand = mustCards(t, "QS", "3H")
	legal = LegalMoves(hand, trick, false, true)
	assert.ElementsMatch(t, hand, legal)
}

func TestLegalMoves_DiscardAfterFirstTrick(t *testing.T) {
	t.Parallel()

	trick := []Played{{Seat: 1, Card: card.Card{Suit: card.Spade, Rank: card.Rank8}}}
	hand := mustCards(t, "5D", "QH", "3C")
	legal := LegalMoves(hand, trick, false, false)
	assert.ElementsMatch(t, hand, legal)
}
