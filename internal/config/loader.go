package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix         = "YARA"
	envConfigPath     = "YARA_CONFIG"
	defaultConfigName = "yara.yaml"
	dotEnvFile        = ".env"
)

// Load builds configuration from defaults, an optional config file and env vars, and
// returns the resolved path ("" when no file was read).
// Precedence: defaults < config file < .env / env vars.
func Load(logger *zerolog.Logger, explicitPath string) (Config, string, error) {
	cfg := Default()

	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		if logger != nil {
			logger.Warn().Err(err).Msg("failed to load .env, continuing with process environment")
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("seed", cfg.Seed)
	v.SetDefault("chat.typing_delay", cfg.Chat.TypingDelay)
	v.SetDefault("chat.persona", cfg.Chat.Persona)
	v.SetDefault("documents.generation_delay", cfg.Documents.GenerationDelay)
	v.SetDefault("documents.default_type", cfg.Documents.DefaultType)
	v.SetDefault("video.max_upload_bytes", cfg.Video.MaxUploadBytes)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configPath, err := resolveConfigPath(explicitPath)
	if err != nil {
		return cfg, "", err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return cfg, configPath, fmt.Errorf("read config: %w", err)
		}
		if logger != nil {
			logger.Debug().Str("path", configPath).Msg("config file loaded")
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, configPath, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, configPath, err
	}

	return cfg, configPath, nil
}

// resolveConfigPath picks the explicit path, then $YARA_CONFIG, then ./yara.yaml.
// Only an explicitly requested file must exist.
func resolveConfigPath(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", explicitPath, err)
		}
		return explicitPath, nil
	}

	candidates := make([]string, 0, 2)
	if p := strings.TrimSpace(os.Getenv(envConfigPath)); p != "" {
		candidates = append(candidates, p)
	}
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, defaultConfigName))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

// WriteDefault writes the default configuration as YAML to path.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(defaultDocument(Default()))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// defaultDocument renders durations as strings so the written file stays readable.
func defaultDocument(cfg Config) map[string]any {
	return map[string]any{
		"log_level": cfg.LogLevel,
		"seed":      cfg.Seed,
		"chat": map[string]any{
			"typing_delay": cfg.Chat.TypingDelay.String(),
			"persona":      cfg.Chat.Persona,
		},
		"documents": map[string]any{
			"generation_delay": cfg.Documents.GenerationDelay.String(),
			"default_type":     cfg.Documents.DefaultType,
		},
		"video": map[string]any{
			"max_upload_bytes": cfg.Video.MaxUploadBytes,
		},
	}
}
