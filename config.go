package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

type Config struct {
	LogLevel zerolog.Level
	Locale   language.Tag
}

func loadConfigFromEnv() (Config, error) {
	cfg := Config{LogLevel: zerolog.WarnLevel, Locale: language.English}

	if lvl := os.Getenv("FILESTATS_LOG_LEVEL"); lvl != "" {
		parsed, err := zerolog.ParseLevel(lvl)
		if err != nil {
			return Config{}, fmt.Errorf("FILESTATS_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = parsed
	}
	if loc := os.Getenv("FILESTATS_LOCALE"); loc != "" {
		tag, err := language.Parse(loc)
		if err != nil {
			return Config{}, fmt.Errorf("FILESTATS_LOCALE: %w", err)
		}
		cfg.Locale = tag
	}
	return cfg, nil
}
