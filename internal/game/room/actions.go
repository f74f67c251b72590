package room

import (
	"context"
	"log"
	"time"

	"github.com/palemoky/hearts/internal/apperrors"
	"github.com/palemoky/hearts/internal/game/card"
	"github.com/palemoky/hearts/internal/game/hearts"
)

// 动作入口。房间层面的失败（不是房主、房间已满……）返回错误；
// 游戏核心的规则违规静默拒绝，调用方从下一份快照重新推导合法操作。

// AddBot 房主添加一个机器人座位，仅在游戏开始前有效
func (r *Room) AddBot(requesterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if requesterID != r.hostID {
		return apperrors.ErrNotHost
	}
	if r.game != nil {
		return apperrors.ErrGameStarted
	}
	if len(r.seats) >= MaxPlayers {
		return apperrors.ErrRoomFull
	}

	seat := r.newBotSeat()
	r.seats = append(r.seats, seat)
	log.Printf("🤖 机器人 %s 加入房间 %s (座位 %d)", seat.Name, r.Code, len(r.seats)-1)

	r.touchLocked()
	r.persistLocked()
	r.broadcastLocked()
	return nil
}

// StartGame 房主开始游戏，要求四个座位全部就位
func (r *Room) StartGame(requesterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if requesterID != r.hostID {
		return apperrors.ErrNotHost
	}
	if r.game != nil {
		return apperrors.ErrGameStarted
	}
	if len(r.seats) < MaxPlayers {
		return apperrors.ErrNotEnough
	}

	r.game = hearts.NewGame()
	r.game.Start()
	log.Printf("🎮 房间 %s 游戏开始 (方向 %s)", r.Code, r.game.PassDirection())

	r.touchLocked()
	r.persistLocked()
	r.maybeScheduleBotLocked(r.playDelay)
	r.broadcastLocked()
	return nil
}

// StartNextRound 房主从 round_end 进入下一轮
func (r *Room) StartNextRound(requesterID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if requesterID != r.hostID {
		return apperrors.ErrNotHost
	}
	if r.game == nil {
		return apperrors.ErrGameNotStart
	}

	if !r.game.StartNextRound() {
		return nil // 非 round_end 阶段，静默拒绝
	}
	log.Printf("🔄 房间 %s 第 %d 轮开始 (方向 %s)", r.Code, r.game.RoundIndex(), r.game.PassDirection())

	r.touchLocked()
	r.persistLocked()
	r.maybeScheduleBotLocked(r.playDelay)
	r.broadcastLocked()
	return nil
}

// SubmitPass 玩家提交换牌
func (r *Room) SubmitPass(playerID string, cards []card.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat := r.seatIndex(playerID)
	if seat < 0 {
		return apperrors.ErrNotInRoom
	}
	if r.game == nil {
		return apperrors.ErrGameNotStart
	}

	if !r.game.SubmitPass(seat, cards) {
		return nil
	}

	r.touchLocked()
	r.persistLocked()
	r.maybeScheduleBotLocked(r.playDelay)
	r.broadcastLocked()
	return nil
}

// PlayCard 玩家出一张牌
func (r *Room) PlayCard(playerID string, c card.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seat := r.seatIndex(playerID)
	if seat < 0 {
		return apperrors.ErrNotInRoom
	}
	if r.game == nil {
		return apperrors.ErrGameNotStart
	}

	before := r.game.TrickSize()
	if !r.game.PlayCard(seat, c) {
		return nil
	}

	r.afterPlayLocked(before)
	return nil
}

// afterPlayLocked 一次成功出牌后的公共收尾：结算广播、记账、安排 bot tick
func (r *Room) afterPlayLocked(trickSizeBefore int) {
	delay := r.afterPlayDelayLocked(trickSizeBefore)

	r.touchLocked()
	r.persistLocked()

	if r.game.Phase() == hearts.PhaseGameOver {
		r.recordResultsLocked()
	} else {
		r.maybeScheduleBotLocked(delay)
	}
	r.broadcastLocked()
}

// afterPlayDelayLocked 这次出牌后下一个 bot tick 的延迟。
// 这张牌刚好收尾一墩时用更长的展示延迟，让观众看清这一墩再清场。
func (r *Room) afterPlayDelayLocked(trickSizeBefore int) time.Duration {
	if trickSizeBefore == MaxPlayers-1 && r.game.TrickSize() == 0 {
		return r.trickDelay
	}
	return r.playDelay
}

// HandleDisconnect 连接断开。开局前直接撤掉座位（必要时房主顺延）；
// 开局后座位永久交给机器人接管，游戏继续。
func (r *Room) HandleDisconnect(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.seatIndex(playerID)
	if idx < 0 {
		return
	}

	if r.game == nil {
		r.seats = append(r.seats[:idx], r.seats[idx+1:]...)
		if r.hostID == playerID {
			r.hostID = ""
			if len(r.seats) > 0 {
				r.hostID = r.seats[0].ID
			}
		}
		log.Printf("👋 玩家 %s 离开房间 %s", playerID, r.Code)
	} else {
		seat := r.seats[idx]
		seat.Client = nil
		seat.IsBot = true
		log.Printf("📴 玩家 %s 掉线，座位 %d 由机器人接管 (房间 %s)", seat.Name, idx, r.Code)
		// 如果正轮到这个座位，立刻安排机器人接上
		r.maybeScheduleBotLocked(r.playDelay)
	}

	r.touchLocked()
	r.persistLocked()
	r.broadcastLocked()
}

// recordResultsLocked 整局结束后记录排行榜
func (r *Room) recordResultsLocked() {
	winner := r.game.Winner()
	log.Printf("🏆 房间 %s 整局结束，胜者 %s (座位 %d)", r.Code, r.seats[winner].Name, winner)

	if r.leaderboard == nil {
		return
	}
	for i, s := range r.seats {
		if s.IsBot {
			continue
		}
		seat, player := i, s
		isWinner := seat == winner
		shotMoon := r.game.MoonShots(seat) > 0
		finalScore := r.game.Score(seat)
		go func() {
			err := r.leaderboard.RecordGameResult(context.Background(),
				player.ID, player.Name, isWinner, shotMoon, finalScore)
			if err != nil {
				log.Printf("⚠️ 记录玩家 %s 战绩失败: %v", player.Name, err)
			}
		}()
	}
}
