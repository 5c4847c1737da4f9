package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server    ServerConfig
	Assistant AssistantConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	assistant, err := loadAssistantConfig()
	if err != nil {
		return nil, err
	}

	rateLimit, err := loadRateLimitConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:    server,
		Assistant: assistant,
		CORS:      loadCORSConfig(),
		RateLimit: rateLimit,
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AssistantConfig 描述助手回复行为。
type AssistantConfig struct {
	// TypingDelay is how long the assistant "types" before each reply.
	TypingDelay time.Duration
}

const defaultTypingDelay = 1500 * time.Millisecond

func loadAssistantConfig() (AssistantConfig, error) {
	delay, err := parseOptionalDurationEnv("ASSISTANT_TYPING_DELAY")
	if err != nil {
		return AssistantConfig{}, err
	}

	typingDelay := defaultTypingDelay
	if delay != nil {
		if *delay < 0 {
			return AssistantConfig{}, fmt.Errorf("invalid ASSISTANT_TYPING_DELAY value %q: must not be negative", delay.String())
		}
		typingDelay = *delay
	}

	return AssistantConfig{TypingDelay: typingDelay}, nil
}

// CORSConfig 描述允许跨域访问的来源。
type CORSConfig struct {
	AllowedOrigins []string
}

func loadCORSConfig() CORSConfig {
	raw := getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")

	origins := make([]string, 0, 4)
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = append(origins, "*")
	}
	return CORSConfig{AllowedOrigins: origins}
}

// RateLimitConfig 描述每个客户端的请求限流。
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Enabled reports whether limiting is switched on; a non-positive rate turns it off.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

func loadRateLimitConfig() (RateLimitConfig, error) {
	rps, err := parseOptionalFloatEnv("RATE_LIMIT_RPS")
	if err != nil {
		return RateLimitConfig{}, err
	}

	burst, err := parseOptionalIntEnv("RATE_LIMIT_BURST")
	if err != nil {
		return RateLimitConfig{}, err
	}

	cfg := RateLimitConfig{RequestsPerSecond: 5, Burst: 10}
	if rps != nil {
		cfg.RequestsPerSecond = *rps
	}
	if burst != nil {
		if *burst < 1 {
			cfg.Burst = 1
		} else {
			cfg.Burst = *burst
		}
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalDurationEnv(key string) (*time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	// 纯数字按毫秒处理，例如 "1500"。
	if ms, err := strconv.Atoi(value); err == nil {
		val := time.Duration(ms) * time.Millisecond
		return &val, nil
	}

	val, err := time.ParseDuration(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalFloatEnv(key string) (*float64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
