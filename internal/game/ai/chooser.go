// Package ai 实现自动座位的出牌策略。
// 当前是一个无状态的贪心启发式：换牌时优先甩出高风险的牌，
// 出牌时优先打出低风险的牌。更强的策略可以在此扩展。
package ai

import (
	"slices"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/hearts"
)

// riskier 按（分值，点数）比较两张牌的风险
func riskier(a, b card.Card) int {
	if d := a.Points() - b.Points(); d != 0 {
		return d
	}
	return int(a.Rank) - int(b.Rank)
}

// ChoosePass 从手牌中选出 3 张换出去的牌：分值最高、点数最大的优先
func ChoosePass(hand []card.Card) []card.Card {
	sorted := append([]card.Card(nil), hand...)
	slices.SortFunc(sorted, func(a, b card.Card) int {
		return riskier(b, a)
	})
	if len(sorted) > hearts.PassSize {
		sorted = sorted[:hearts.PassSize]
	}
	return sorted
}

// ChoosePlay 从合法牌中选出要打的一张：分值最低、点数最小的优先。
// legal 为空时返回 false。
func ChoosePlay(legal []card.Card) (card.Card, bool) {
	if len(legal) == 0 {
		return card.Card{}, false
	}
	best := legal[0]
	for _, c := range legal[1:] {
		if riskier(c, best) < 0 {
			best = c
		}
	}
	return best, true
}
