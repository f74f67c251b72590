package rule

import (
	"github.com/palemoky/hearts/internal/game/card"
)

// PassDirection 定义换牌方向
type PassDirection int

const (
	PassLeft   PassDirection = iota // 传给下家
	PassRight                       // 传给上家
	PassAcross                      // 传给对家
	PassHold                        // 不换牌
)

// passDirectionNames 换牌方向名称映射表
var passDirectionNames = map[PassDirection]string{
	PassLeft:   "left",
	PassRight:  "right",
	PassAcross: "across",
	PassHold:   "hold",
}

func (d PassDirection) String() string {
	if name, ok := passDirectionNames[d]; ok {
		return name
	}
	return "unknown"
}

// DirectionForRound 返回指定轮次的换牌方向：每 4 轮循环一次
func DirectionForRound(roundIndex int) PassDirection {
	return PassDirection(roundIndex % 4)
}

// PassTargets 返回每个座位的换牌目标座位：targets[i] 是座位 i 的接收方。
// PassHold 时每个座位映射到自己。
func PassTargets(seats int, direction PassDirection) []int {
	targets := make([]int, seats)
	for i := range targets {
		switch direction {
		case PassLeft:
			targets[i] = (i + 1) % seats
		case PassRight:
			targets[i] = (i - 1 + seats) % seats
		case PassAcross:
			targets[i] = (i + 2) % seats
		default:
			targets[i] = i
		}
	}
	return targets
}

// Played 定义墩中的一次出牌
type Played struct {
	Seat int
	Card card.Card
}

// LeadSuit 返回墩的领出花色，空墩时无意义
func LeadSuit(trick []Played) card.Suit {
	return trick[0].Card.Suit
}

// TrickWinner 返回赢下这一墩的座位：领出花色中点数最高的那张。
// 其他花色无论多大都不可能赢。同一墩内同花色点数唯一，
// 严格大于的比较保证取到的是最先打出的最高牌。
func TrickWinner(trick []Played) int {
	lead := LeadSuit(trick)
	winning := trick[0]
	for _, p := range trick[1:] {
		if p.Card.Suit != lead {
			continue
		}
		if p.Card.Rank > winning.Card.Rank {
			winning = p
		}
	}
	return winning.Seat
}

// TrickPoints 返回一墩牌的总分值
func TrickPoints(trick []Played) int {
	points := 0
	for _, p := range trick {
		points += p.Card.Points()
	}
	return points
}

// LegalMoves 返回当前手牌中合法可出的子集：
//   - 空手牌返回空集。
//   - 自己领出时：首墩必须出梅花2（没有时退化为任意一张，正常流程不会发生）；
//     红心未破时只能领非红心，除非满手红心；红心已破则全部合法。
//   - 跟牌时：有领出花色必须跟；首墩垫牌不能垫分牌，除非手里只剩分牌；
//     其余情况全部合法。
func LegalMoves(hand []card.Card, trick []Played, heartsBroken, isFirstTrick bool) []card.Card {
	if len(hand) == 0 {
		return nil
	}

	if len(trick) == 0 {
		if isFirstTrick {
			if card.Contains(hand, card.TwoOfClubs) {
				return []card.Card{card.TwoOfClubs}
			}
			return []card.Card{hand[0]}
		}

		if heartsBroken {
			return append([]card.Card(nil), hand...)
		}

		var nonHearts []card.Card
		for _, c := range hand {
			if c.Suit != card.Heart {
				nonHearts = append(nonHearts, c)
			}
		}
		if len(nonHearts) > 0 {
			return nonHearts
		}
		// 满手红心时不能被锁死，允许领红心
		return append([]card.Card(nil), hand...)
	}

	lead := LeadSuit(trick)
	var suited []card.Card
	for _, c := range hand {
		if c.Suit == lead {
			suited = append(suited, c)
		}
	}
	if len(suited) > 0 {
		return suited
	}

	if isFirstTrick {
		var nonPoints []card.Card
		for _, c := range hand {
			if !c.IsPoint() {
				nonPoints = append(nonPoints, c)
			}
		}
		if len(nonPoints) > 0 {
			return nonPoints
		}
	}

	return append([]card.Card(nil), hand...)
}
