// Package config loads server configuration from a TOML file, falling back
// to defaults when the file or individual keys are absent.
package config

import (
	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Server  ServerConfig  `toml:"server"`
	History HistoryConfig `toml:"history"`
}

type ServerConfig struct {
	ListenAddr string `toml:"listen_addr"`
}

type HistoryConfig struct {
	Capacity int `toml:"capacity"`
}

const defaultListenAddr = ":8000"

// Load reads the TOML file at path. A missing or unreadable file is not
// fatal: defaults apply and a warning is logged.
func Load(path string) *Config {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		log.Warnf("config file %s not loaded (%v), using defaults", path, err)
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = defaultListenAddr
	}
	if cfg.History.Capacity <= 0 {
		cfg.History.Capacity = 50
	}

	return &cfg
}
