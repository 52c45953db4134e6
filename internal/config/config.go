package config

import (
	"fmt"
	"strings"
	"time"
)

// Config 聚合整个应用的配置项。
type Config struct {
	LogLevel  string          `mapstructure:"log_level" yaml:"log_level"`
	Seed      int64           `mapstructure:"seed" yaml:"seed"`
	Chat      ChatConfig      `mapstructure:"chat" yaml:"chat"`
	Documents DocumentsConfig `mapstructure:"documents" yaml:"documents"`
	Video     VideoConfig     `mapstructure:"video" yaml:"video"`
}

// ChatConfig 描述聊天助手的展示行为。
type ChatConfig struct {
	TypingDelay time.Duration `mapstructure:"typing_delay" yaml:"typing_delay"`
	Persona     string        `mapstructure:"persona" yaml:"persona"`
}

// DocumentsConfig controls the document creator.
type DocumentsConfig struct {
	GenerationDelay time.Duration `mapstructure:"generation_delay" yaml:"generation_delay"`
	DefaultType     string        `mapstructure:"default_type" yaml:"default_type"`
}

// VideoConfig controls video intake.
type VideoConfig struct {
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" yaml:"max_upload_bytes"`
}

// Default returns configuration matching the product defaults.
func Default() Config {
	return Config{
		LogLevel: "info",
		Chat: ChatConfig{
			TypingDelay: 1500 * time.Millisecond,
			Persona:     "yara",
		},
		Documents: DocumentsConfig{
			GenerationDelay: 3 * time.Second,
			DefaultType:     "word",
		},
		Video: VideoConfig{
			MaxUploadBytes: 100 * 1024 * 1024,
		},
	}
}

// Validate rejects values no component can work with.
func (c Config) Validate() error {
	if c.Chat.TypingDelay < 0 {
		return fmt.Errorf("invalid chat.typing_delay %s", c.Chat.TypingDelay)
	}
	if c.Documents.GenerationDelay < 0 {
		return fmt.Errorf("invalid documents.generation_delay %s", c.Documents.GenerationDelay)
	}
	if c.Video.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid video.max_upload_bytes %d", c.Video.MaxUploadBytes)
	}
	if strings.TrimSpace(c.Chat.Persona) == "" {
		return fmt.Errorf("chat.persona is required")
	}
	return nil
}
