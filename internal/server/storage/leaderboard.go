package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	playerStatsKey = "player:stats:"
	leaderboardKey = "leaderboard:wins"
)

// PlayerStats 玩家统计数据
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	TotalGames int `json:"total_games"` // 总场次
	Wins       int `json:"wins"`        // 胜场（整局结束时分最低）
	MoonShots  int `json:"moon_shots"`  // 全收（shoot the moon）次数

	BestScore  int `json:"best_score"`  // 单局最低完赛分
	TotalScore int `json:"total_score"` // 所有完赛分累计

	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Wins       int    `json:"wins"`
}

// LeaderboardManager 排行榜管理器
type LeaderboardManager struct {
	redis *redis.Client
}

// NewLeaderboardManager 创建排行榜管理器
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{redis: client}
}

// GetPlayerStats 获取玩家统计
func (lm *LeaderboardManager) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	key := playerStatsKey + playerID
	data, err := lm.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SavePlayerStats 保存玩家统计
func (lm *LeaderboardManager) SavePlayerStats(ctx context.Context, stats *PlayerStats) error {
	key := playerStatsKey + stats.PlayerID
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return lm.redis.Set(ctx, key, data, 0).Err()
}

// RecordGameResult 记录一整局的结果：finalScore 为该玩家的完赛累计分
func (lm *LeaderboardManager) RecordGameResult(ctx context.Context, playerID, playerName string, isWinner, shotMoon bool, finalScore int) error {
	stats, err := lm.GetPlayerStats(ctx, playerID)
	if err != nil {
		return err
	}
	if stats == nil {
		stats = &PlayerStats{
			PlayerID:   playerID,
			PlayerName: playerName,
			BestScore:  finalScore,
			CreatedAt:  time.Now().Unix(),
		}
	}

	// 更新名称（可能已更改）
	stats.PlayerName = playerName
	stats.TotalGames++
	stats.TotalScore += finalScore
	stats.LastPlayedAt = time.Now().Unix()
	if finalScore < stats.BestScore {
		stats.BestScore = finalScore
	}
	if isWinner {
		stats.Wins++
	}
	if shotMoon {
		stats.MoonShots++
	}

	if err := lm.SavePlayerStats(ctx, stats); err != nil {
		return err
	}

	// 排行榜按胜场排序
	return lm.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(stats.Wins),
		Member: stats.PlayerID,
	}).Err()
}

// GetTopPlayers 获取胜场最多的前 n 名
func (lm *LeaderboardManager) GetTopPlayers(ctx context.Context, n int) ([]LeaderboardEntry, error) {
	ids, err := lm.redis.ZRevRange(ctx, leaderboardKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(ids))
	for i, id := range ids {
		stats, err := lm.GetPlayerStats(ctx, id)
		if err != nil || stats == nil {
			continue
		}
		entries = append(entries, LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   stats.PlayerID,
			PlayerName: stats.PlayerName,
			Wins:       stats.Wins,
		})
	}
	return entries, nil
}
