package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeAI      Mode = "ai"
)

type AppConfig struct {
	Env                Environment
	LogLevel           string
	ServerPort         string
	RawBodyLog         bool
	HttpTimeoutSeconds int
	LogFile            LogFileConfig
}

type LogFileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type SummaryConfig struct {
	Sentences     int
	Mode          Mode
	MaxInputChars int
}

type LlmConfig struct {
	URL         string
	Token       string
	Model       string
	Temperature float64
	MaxTokens   int
}

type ReductionConfig struct {
	ThresholdTokens    int
	MaxChars           int
	DiversityThreshold float64
	MinPenalty         float64
}

type CacheConfig struct {
	Enabled bool
	Size    int
}

type Config struct {
	App       AppConfig
	Summary   SummaryConfig
	Llm       LlmConfig
	Reduction ReductionConfig
	Cache     CacheConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	logLevel := getLogLevel(env)

	maxInputChars := getEnvInt("SUMMARY_MAX_INPUT_CHARS", 12000)

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           logLevel,
			ServerPort:         getEnv("APP_SERVER_PORT", "8080"),
			RawBodyLog:         getEnvBool("APP_RAW_BODY_LOG", false),
			HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
			LogFile: LogFileConfig{
				Path:       getEnv("APP_LOG_FILE", ""),
				MaxSizeMB:  getEnvInt("APP_LOG_FILE_MAX_SIZE_MB", 15),
				MaxBackups: getEnvInt("APP_LOG_FILE_MAX_BACKUPS", 3),
				MaxAgeDays: getEnvInt("APP_LOG_FILE_MAX_AGE_DAYS", 28),
				Compress:   getEnvBool("APP_LOG_FILE_COMPRESS", true),
			},
		},
		Summary: SummaryConfig{
			Sentences:     getEnvInt("SUMMARY_SENTENCES", 5),
			Mode:          Mode(strings.ToLower(getEnv("SUMMARY_MODE", string(ModeOffline)))),
			MaxInputChars: maxInputChars,
		},
		Llm: LlmConfig{
			URL:         getEnv("LLM_URL", "https://api.openai.com/v1/chat/completions"),
			Token:       getEnv("LLM_TOKEN", ""),
			Model:       getEnv("LLM_MODEL", "gpt-4o-mini"),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0.2),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 1000),
		},
		Reduction: ReductionConfig{
			ThresholdTokens:    getEnvInt("REDUCTION_THRESHOLD_TOKENS", 2000),
			MaxChars:           getEnvInt("REDUCTION_MAX_CHARS", maxInputChars),
			DiversityThreshold: getEnvFloat("REDUCTION_DIVERSITY_THRESHOLD", 0.15),
			MinPenalty:         getEnvFloat("REDUCTION_MIN_PENALTY", 0.1),
		},
		Cache: CacheConfig{
			Enabled: getEnvBool("CACHE_ENABLED", true),
			Size:    getEnvInt("CACHE_SIZE", 256),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.Summary.Sentences <= 0 {
		return fmt.Errorf("SUMMARY_SENTENCES must be a positive integer")
	}
	switch c.Summary.Mode {
	case ModeOffline:
	case ModeAI:
		if c.Llm.URL == "" || c.Llm.Token == "" {
			return fmt.Errorf("LLM_URL and LLM_TOKEN are required when SUMMARY_MODE is ai")
		}
	default:
		return fmt.Errorf("SUMMARY_MODE must be one of offline, ai; got %q", c.Summary.Mode)
	}
	if c.Cache.Enabled && c.Cache.Size <= 0 {
		return fmt.Errorf("CACHE_SIZE must be greater than zero when the cache is enabled")
	}
	return nil
}

func ParseMode(s string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(s))); mode {
	case ModeOffline, ModeAI:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
