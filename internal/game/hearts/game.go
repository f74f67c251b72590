package hearts

import (
	"fmt"

	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/rule"
)

// Phase 游戏阶段
type Phase int

const (
	PhaseLobby Phase = iota
	PhasePassing
	PhasePlaying
	PhaseRoundEnd
	PhaseGameOver
)

// phaseNames 阶段名称映射表
var phaseNames = map[Phase]string{
	PhaseLobby:    "lobby",
	PhasePassing:  "passing",
	PhasePlaying:  "playing",
	PhaseRoundEnd: "round_end",
	PhaseGameOver: "game_over",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "unknown"
}

const (
	// Seats 固定四个座位
	Seats = 4
	// PassSize 每个座位换牌的张数
	PassSize = 3
	// EndScore 任意座位累计分达到该值时整局结束
	EndScore = 100
)

// NoSeat 表示当前没有轮到任何座位
const NoSeat = -1

// Game 一局红心大战的完整状态机。
// 不含任何并发控制，所有入口由房间层持锁串行调用；
// 规则性违规一律静默拒绝（返回 false），状态保持不变。
type Game struct {
	phase        Phase
	scores       []int         // 座位 → 累计分
	hands        [][]card.Card // 座位 → 手牌
	trick        []rule.Played // 进行中的一墩
	lastTrick    []rule.Played // 上一墩（展示用，下一墩开始后清除）
	currentTurn  int           // 当前出牌座位，NoSeat 表示无
	roundIndex   int
	trickIndex   int
	heartsBroken bool
	passDir      rule.PassDirection
	pendingPass  map[int][]card.Card // 座位 → 已提交的 3 张换牌
	takenPoints  []int               // 座位 → 本轮已吃进的分
	moonShots    []int               // 座位 → 整局内全收的次数（takenPoints 每轮清零，这里跨轮累计）
	winner       int                 // 胜者座位，NoSeat 表示未结束
}

// NewGame 创建一局新游戏，停留在 lobby 阶段
func NewGame() *Game {
	return &Game{
		phase:       PhaseLobby,
		scores:      make([]int, Seats),
		hands:       make([][]card.Card, Seats),
		currentTurn: NoSeat,
		pendingPass: make(map[int][]card.Card),
		takenPoints: make([]int, Seats),
		moonShots:   make([]int, Seats),
		winner:      NoSeat,
	}
}

// Start 从 lobby 进入第一轮
func (g *Game) Start() bool {
	if g.phase != PhaseLobby {
		return false
	}
	g.startRound()
	return true
}

// StartNextRound 从 round_end 进入下一轮
func (g *Game) StartNextRound() bool {
	if g.phase != PhaseRoundEnd {
		return false
	}
	g.startRound()
	return true
}

// startRound 发新一轮的牌并按换牌方向进入 passing 或 playing
func (g *Game) startRound() {
	deck := card.NewDeck()
	deck.Shuffle()
	g.hands = deck.Deal(Seats)

	g.trick = nil
	g.lastTrick = nil
	g.heartsBroken = false
	g.trickIndex = 0
	g.pendingPass = make(map[int][]card.Card)
	g.takenPoints = make([]int, Seats)
	g.passDir = rule.DirectionForRound(g.roundIndex)

	if g.passDir == rule.PassHold {
		g.phase = PhasePlaying
		g.currentTurn = g.findOpeningLeader()
	} else {
		g.phase = PhasePassing
		g.currentTurn = NoSeat
	}
}

// findOpeningLeader 返回持有梅花2的座位
func (g *Game) findOpeningLeader() int {
	for seat, hand := range g.hands {
		if card.Contains(hand, card.TwoOfClubs) {
			return seat
		}
	}
	return NoSeat
}

// SubmitPass 提交一个座位的换牌选择。
// 换牌阶段可以反复提交覆盖之前的选择；最后一个座位提交时换牌立即
// 原子生效并进入 playing 阶段，此后的提交都会被拒绝。
func (g *Game) SubmitPass(seat int, cards []card.Card) bool {
	if g.phase != PhasePassing {
		return false
	}
	if seat < 0 || seat >= Seats {
		return false
	}
	if len(cards) != PassSize {
		return false
	}
	seen := make(map[card.Card]bool, PassSize)
	for _, c := range cards {
		if seen[c] || !card.Contains(g.hands[seat], c) {
			return false
		}
		seen[c] = true
	}

	g.pendingPass[seat] = append([]card.Card(nil), cards...)
	if len(g.pendingPass) < Seats {
		return true
	}

	g.applyPass()
	return true
}

// applyPass 将所有座位的换牌一次性生效：先全部移出，再按方向并入接收方手牌
func (g *Game) applyPass() {
	targets := rule.PassTargets(Seats, g.passDir)

	for seat, cards := range g.pendingPass {
		for _, c := range cards {
			g.removeCard(seat, c)
		}
	}
	for seat, cards := range g.pendingPass {
		target := targets[seat]
		g.hands[target] = append(g.hands[target], cards...)
	}
	for _, hand := range g.hands {
		card.Sort(hand)
	}

	g.pendingPass = make(map[int][]card.Card)
	g.phase = PhasePlaying
	g.currentTurn = g.findOpeningLeader()
}

// PlayCard 指定座位出一张牌。
// 非 playing 阶段、不是该座位的回合、牌不在手中或不合法时拒绝。
func (g *Game) PlayCard(seat int, c card.Card) bool {
	if g.phase != PhasePlaying {
		return false
	}
	if seat != g.currentTurn {
		return false
	}
	if !card.Contains(g.hands[seat], c) {
		return false
	}

	legal := rule.LegalMoves(g.hands[seat], g.trick, g.heartsBroken, g.trickIndex == 0)
	if !card.Contains(legal, c) {
		return false
	}

	// 新一墩的第一张落下后，上一墩不再展示
	if len(g.trick) == 0 {
		g.lastTrick = nil
	}

	g.removeCard(seat, c)
	g.trick = append(g.trick, rule.Played{Seat: seat, Card: c})
	if c.Suit == card.Heart {
		g.heartsBroken = true
	}

	if len(g.trick) < Seats {
		g.currentTurn = (seat + 1) % Seats
		return true
	}

	// 一墩打满，结算归属
	winner := rule.TrickWinner(g.trick)
	g.takenPoints[winner] += rule.TrickPoints(g.trick)
	g.lastTrick = g.trick
	g.trick = nil
	g.currentTurn = winner

	if g.handsEmpty() {
		g.finishRound()
	} else {
		g.trickIndex++
	}
	return true
}

func (g *Game) handsEmpty() bool {
	for _, hand := range g.hands {
		if len(hand) > 0 {
			return false
		}
	}
	return true
}

// finishRound 结算一轮：全收（shoot the moon）时其余三家各加 26 分，
// 否则各家加上自己吃进的分；随后判断整局是否结束。
func (g *Game) finishRound() {
	g.phase = PhaseRoundEnd
	g.currentTurn = NoSeat

	moonShooter := NoSeat
	for seat, points := range g.takenPoints {
		if points == card.TotalPoints {
			moonShooter = seat
			break
		}
	}

	if moonShooter != NoSeat {
		g.moonShots[moonShooter]++
		for seat := range g.scores {
			if seat != moonShooter {
				g.scores[seat] += card.TotalPoints
			}
		}
	} else {
		for seat, points := range g.takenPoints {
			g.scores[seat] += points
		}
	}

	g.roundIndex++

	for _, score := range g.scores {
		if score >= EndScore {
			g.phase = PhaseGameOver
			g.winner = g.lowestScoreSeat()
			return
		}
	}
}

// lowestScoreSeat 返回累计分最低的座位，并列时取座位号最小者
func (g *Game) lowestScoreSeat() int {
	winner := 0
	for seat := 1; seat < Seats; seat++ {
		if g.scores[seat] < g.scores[winner] {
			winner = seat
		}
	}
	return winner
}

// removeCard 从手牌中移除一张牌。
// 所有调用方都已先验证过牌在手中，找不到说明状态机自身出了问题。
func (g *Game) removeCard(seat int, c card.Card) {
	hand := g.hands[seat]
	for i := range hand {
		if hand[i] == c {
			g.hands[seat] = append(hand[:i], hand[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("hearts: card %s not in seat %d hand", c.Code(), seat))
}

// --- 只读访问 ---

// Phase 当前阶段
func (g *Game) Phase() Phase { return g.phase }

// RoundIndex 当前轮次（从 0 开始）
func (g *Game) RoundIndex() int { return g.roundIndex }

// TrickIndex 当前墩序号（从 0 开始）
func (g *Game) TrickIndex() int { return g.trickIndex }

// PassDirection 本轮换牌方向
func (g *Game) PassDirection() rule.PassDirection { return g.passDir }

// HeartsBroken 红心是否已破
func (g *Game) HeartsBroken() bool { return g.heartsBroken }

// CurrentTurn 当前出牌座位，NoSeat 表示无
func (g *Game) CurrentTurn() int { return g.currentTurn }

// Winner 胜者座位，整局未结束时为 NoSeat
func (g *Game) Winner() int { return g.winner }

// Score 指定座位的累计分
func (g *Game) Score(seat int) int { return g.scores[seat] }

// Scores 所有座位的累计分（副本）
func (g *Game) Scores() []int {
	return append([]int(nil), g.scores...)
}

// TakenPoints 指定座位本轮已吃进的分
func (g *Game) TakenPoints(seat int) int { return g.takenPoints[seat] }

// MoonShots 指定座位整局内全收的次数
func (g *Game) MoonShots(seat int) int { return g.moonShots[seat] }

// Hand 指定座位的手牌（副本）
func (g *Game) Hand(seat int) []card.Card {
	return append([]card.Card(nil), g.hands[seat]...)
}

// HasSubmittedPass 指定座位在本换牌阶段是否已提交
func (g *Game) HasSubmittedPass(seat int) bool {
	_, ok := g.pendingPass[seat]
	return ok
}

// TrickSize 进行中一墩已落的张数
func (g *Game) TrickSize() int { return len(g.trick) }

// VisibleTrick 展示用的墩：进行中的一墩，或刚结束、下一墩尚未开始的一墩
func (g *Game) VisibleTrick() []rule.Played {
	trick := g.trick
	if len(trick) == 0 {
		trick = g.lastTrick
	}
	return append([]rule.Played(nil), trick...)
}

// LegalMoves 指定座位当前合法可出的牌
func (g *Game) LegalMoves(seat int) []card.Card {
	if seat < 0 || seat >= Seats {
		return nil
	}
	return rule.LegalMoves(g.hands[seat], g.trick, g.heartsBroken, g.trickIndex == 0)
}
