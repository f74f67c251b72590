package room

import (
	"time"

	"github.com/palemoky/hearts/internal/game/ai"
	"github.com/palemoky/hearts/internal/game/hearts"
)

// bot tick：延迟触发的一份机器人工作。换牌阶段一次 tick 解决所有
// 机器人座位的换牌；出牌阶段一次 tick 恰好出一张牌，下一个座位
// 还是机器人时链式续一个 tick。

// botDueLocked 判断当前是否有机器人工作待做
func (r *Room) botDueLocked() bool {
	if r.game == nil {
		return false
	}
	switch r.game.Phase() {
	case hearts.PhasePassing:
		for i, s := range r.seats {
			if s.IsBot && !r.game.HasSubmittedPass(i) {
				return true
			}
		}
	case hearts.PhasePlaying:
		turn := r.game.CurrentTurn()
		return turn != hearts.NoSeat && r.seats[turn].IsBot
	}
	return false
}

// maybeScheduleBotLocked 有机器人工作待做时安排一次 tick
func (r *Room) maybeScheduleBotLocked(delay time.Duration) {
	if r.botDueLocked() {
		r.scheduleBotTick(delay)
	}
}

// scheduleBotTick 安排一次 bot tick。新的安排会取消上一个尚未触发的
// tick，保证每个房间至多一个待触发的定时器。
func (r *Room) scheduleBotTick(delay time.Duration) {
	r.timerMu.Lock()
	defer r.timerMu.Unlock()

	if r.botTimer != nil {
		r.botTimer.Stop()
	}
	r.botTimer = time.AfterFunc(delay, r.botTick)
}

// botTick 定时器回调：重新拿锁、重新验证后执行一份机器人工作。
// 触发到执行之间人类操作可能已经推进了状态，验证不过就只广播不动作。
func (r *Room) botTick() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.advanceBotLocked() {
		r.broadcastLocked()
	}
}

// advanceBotLocked 执行一份机器人工作，返回是否真的推进了状态。
// 推进过的分支自己负责持久化和广播。
func (r *Room) advanceBotLocked() bool {
	if r.game == nil {
		return false
	}

	switch r.game.Phase() {
	case hearts.PhasePassing:
		submitted := false
		// 一次解决所有机器人座位的换牌
		for i, s := range r.seats {
			if s.IsBot && !r.game.HasSubmittedPass(i) {
				submitted = r.game.SubmitPass(i, ai.ChoosePass(r.game.Hand(i))) || submitted
			}
		}
		if !submitted {
			return false
		}
		r.touchLocked()
		r.persistLocked()
		// 换牌生效后第一个出牌的可能还是机器人
		if r.game.Phase() == hearts.PhasePlaying {
			r.maybeScheduleBotLocked(r.playDelay)
		}
		r.broadcastLocked()
		return true

	case hearts.PhasePlaying:
		turn := r.game.CurrentTurn()
		if turn == hearts.NoSeat || !r.seats[turn].IsBot {
			return false // 状态已被人类操作推进，tick 过期
		}
		c, ok := ai.ChoosePlay(r.game.LegalMoves(turn))
		if !ok {
			return false
		}
		before := r.game.TrickSize()
		if !r.game.PlayCard(turn, c) {
			return false
		}
		r.afterPlayLocked(before)
		return true
	}
	return false
}
