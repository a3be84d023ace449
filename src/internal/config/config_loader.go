package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

type ASTConfig struct {
	// 0 表示不限制
	MaxDepth   int  `yaml:"max_depth"`
	LogUnknown bool `yaml:"log_unknown"`
}

type SpinnerConfig struct {
	IntervalMS int      `yaml:"interval_ms"`
	Frames     []string `yaml:"frames"`
}

type LogConfig struct {
	Dir string `yaml:"dir"`
}

type AppConfig struct {
	AST     ASTConfig     `yaml:"ast"`
	Spinner SpinnerConfig `yaml:"spinner"`
	Log     LogConfig     `yaml:"log"`
}

var loadOnce sync.Once
var loadedConfig *AppConfig
var loadedErr error

// DefaultConfig 未出现在 settings.yaml 中的键取这里的值
func DefaultConfig() *AppConfig {
	return &AppConfig{
		AST: ASTConfig{
			MaxDepth:   0,
			LogUnknown: true,
		},
		Spinner: SpinnerConfig{
			IntervalMS: 100,
			Frames:     []string{"-", "\\", "|", "/"},
		},
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// LoadConfig 加载 YAML 配置；找不到配置文件时使用默认值
func LoadConfig() (*AppConfig, error) {
	loadOnce.Do(func() {
		configPath := findConfigFile()
		if configPath == "" {
			loadedConfig = DefaultConfig()
			return
		}
		loadedConfig, loadedErr = LoadConfigFile(configPath)
	})

	if loadedErr != nil {
		return nil, loadedErr
	}
	return loadedConfig, nil
}

// LoadConfigFile 从指定路径加载，不经过缓存
func LoadConfigFile(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to read configuration file: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*AppConfig, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("Failed to parse configuration file: %w", err)
	}
	if len(config.Spinner.Frames) == 0 {
		config.Spinner.Frames = DefaultConfig().Spinner.Frames
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *AppConfig) validate() error {
	if c.AST.MaxDepth < 0 {
		return fmt.Errorf("ast.max_depth must be >= 0, got %d", c.AST.MaxDepth)
	}
	if c.Spinner.IntervalMS <= 0 {
		return fmt.Errorf("spinner.interval_ms must be > 0, got %d", c.Spinner.IntervalMS)
	}
	for i, f := range c.Spinner.Frames {
		if f == "" {
			return fmt.Errorf("spinner.frames[%d] is empty", i)
		}
	}
	return nil
}

func (s SpinnerConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

func findConfigFile() string {
	possiblePaths := []string{
		"config/settings.yaml",
		"settings.yaml",
		"src/config/settings.yaml",
		"../config/settings.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
