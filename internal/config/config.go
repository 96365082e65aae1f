// Package config loads runtime configuration from .env and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Cfg holds all runtime configuration loaded from environment variables.
type Cfg struct {
	// Engine
	MaxSpan     int    // ITN_MAX_SPAN, words per sentence-mode span (default 16)
	RulesFile   string // ITN_RULES_FILE, TOML rule file loaded at startup
	Punctuation bool   // ITN_PUNCTUATION=true enables spoken punctuation

	// Logging
	LogLevel  string // ITN_LOG_LEVEL: debug, info, warn, error
	LogFormat string // ITN_LOG_FORMAT: json or text

	// Server
	ListenAddr string // ":" + PORT, e.g. :8080
}

// Load reads .env (if present) then environment variables and returns Cfg.
func Load() (*Cfg, error) {
	// Best-effort: load .env from current directory
	_ = godotenv.Load()
	return fromEnv()
}

// LoadFile reads the given env files instead of .env. Missing files are an
// error.
func LoadFile(paths ...string) (*Cfg, error) {
	if err := godotenv.Load(paths...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return fromEnv()
}

func fromEnv() (*Cfg, error) {
	maxSpan := 16
	if raw := strings.TrimSpace(os.Getenv("ITN_MAX_SPAN")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("config: ITN_MAX_SPAN must be a positive integer, got %q", raw)
		}
		maxSpan = n
	}

	punct := strings.TrimSpace(os.Getenv("ITN_PUNCTUATION"))
	punctuation := punct == "1" || strings.EqualFold(punct, "true")

	logLevel := strings.TrimSpace(os.Getenv("ITN_LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "info"
	}
	logFormat := strings.TrimSpace(os.Getenv("ITN_LOG_FORMAT"))
	if logFormat == "" {
		logFormat = "json"
	}

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return nil, fmt.Errorf("config: PORT must be a port number, got %q", port)
	}

	return &Cfg{
		MaxSpan:     maxSpan,
		RulesFile:   strings.TrimSpace(os.Getenv("ITN_RULES_FILE")),
		Punctuation: punctuation,
		LogLevel:    logLevel,
		LogFormat:   logFormat,
		ListenAddr:  ":" + port,
	}, nil
}
