// Package config 提供 tiktokei 的配置装载能力。
// 配置来源为内置默认值和 TIKTOKEI_ 前缀的环境变量，命令行标志在 cmd 层覆盖。
package config

import (
	"fmt"
	"runtime"

	"github.com/spf13/viper"
)

// Config 聚合扫描相关的运行配置。
type Config struct {
	Encoding string `mapstructure:"encoding"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	Workers  int    `mapstructure:"workers"`
}

// Load 读取默认值和环境变量并装配配置。
// 环境变量覆盖形如 TIKTOKEI_ENCODING、TIKTOKEI_WORKERS。
func Load() (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("TIKTOKEI")
	v.AutomaticEnv()

	v.SetDefault("encoding", "cl100k_base")
	v.SetDefault("format", "table")
	v.SetDefault("output", "")
	v.SetDefault("workers", runtime.NumCPU())

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}
