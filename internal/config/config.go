package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server ServerConfig `yaml:"server"`
	Redis  RedisConfig  `yaml:"redis"`
	Game   GameConfig   `yaml:"game"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	BotPlayDelay    int `yaml:"bot_play_delay"`    // 机器人出牌延迟（毫秒）
	TrickClearDelay int `yaml:"trick_clear_delay"` // 一墩打完后的展示延迟（毫秒）
	RoomTimeout     int `yaml:"room_timeout"`      // 无人房间回收超时（分钟）
}

// BotPlayDelayDuration 返回机器人出牌延迟时长
func (c *GameConfig) BotPlayDelayDuration() time.Duration {
	return time.Duration(c.BotPlayDelay) * time.Millisecond
}

// TrickClearDelayDuration 返回一墩打完后的展示延迟时长
func (c *GameConfig) TrickClearDelayDuration() time.Duration {
	return time.Duration(c.TrickClearDelay) * time.Millisecond
}

// RoomTimeoutDuration 返回房间回收超时时长
func (c *GameConfig) RoomTimeoutDuration() time.Duration {
	return time.Duration(c.RoomTimeout) * time.Minute
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 1780
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.BotPlayDelay == 0 {
		cfg.Game.BotPlayDelay = 800
	}
	if cfg.Game.TrickClearDelay == 0 {
		cfg.Game.TrickClearDelay = 2000
	}
	if cfg.Game.RoomTimeout == 0 {
		cfg.Game.RoomTimeout = 10
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 1780,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Game: GameConfig{
			BotPlayDelay:    800,
			TrickClearDelay: 2000,
			RoomTimeout:     10,
		},
	}
}
