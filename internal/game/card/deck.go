package card

import (
	"math/rand"
	"slices"
)

// TotalPoints 一整轮中所有分牌的总分值
const TotalPoints = 26

// Deck 定义一副牌
type Deck []Card

// NewDeck 构建 52 张标准牌
func NewDeck() Deck {
	deck := make(Deck, 0, 52)
	for s := Club; s <= Heart; s++ {
		for r := Rank2; r <= RankA; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Deal 轮流发牌给 seats 个座位，发完后每手牌按展示顺序排好
func (d Deck) Deal(seats int) [][]Card {
	hands := make([][]Card, seats)
	for i := range hands {
		hands[i] = make([]Card, 0, (len(d)+seats-1)/seats)
	}
	for i, c := range d {
		hands[i%seats] = append(hands[i%seats], c)
	}
	for _, hand := range hands {
		Sort(hand)
	}
	return hands
}

// Sort 将手牌按展示顺序排序：先按花色分组，组内按点数升序
func Sort(hand []Card) {
	slices.SortFunc(hand, func(a, b Card) int {
		if a.Suit != b.Suit {
			return int(a.Suit) - int(b.Suit)
		}
		return int(a.Rank) - int(b.Rank)
	})
}

// Contains 判断手牌中是否有指定的牌
func Contains(hand []Card, c Card) bool {
	return slices.Contains(hand, c)
}
