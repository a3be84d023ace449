package astparser

import (
	"fmt"

	"github.com/VectorBits/solast/src/internal/config"
	"github.com/VectorBits/solast/src/internal/logger"
)

// OptionsFromConfig 把 settings.yaml 的 ast 段转换为解码选项
func OptionsFromConfig(cfg config.ASTConfig) []Option {
	opts := []Option{WithMaxDepth(cfg.MaxDepth)}
	if cfg.LogUnknown {
		opts = append(opts, WithUnknownHook(func(tag string, id int, path string) {
			logger.Debug("unmodeled nodeType %q (id=%d) at %s", tag, id, path)
		}))
	}
	return opts
}

// Setup 读取 settings.yaml；需要记录未知节点时按 log 段打开日志文件，
// 返回对应的解码选项。调用方负责 logger.Close
func Setup() ([]Option, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if cfg.AST.LogUnknown {
		if err := logger.InitFromConfig(cfg.Log); err != nil {
			return nil, err
		}
	}
	return OptionsFromConfig(cfg.AST), nil
}
