package main

import (
	"time"
	"wca-userinfo/lib/configutil"
	"wca-userinfo/services/wcaprofile"
)

const (
	portEnv      = "WCA_USERINFO_PORT"
	userAgentEnv = "WCA_USERINFO_USER_AGENT"
	defaultPort  = 8010
)

type Config struct {
	Port           int    `json:"port"`
	BaseUrl        string `json:"base_url"`
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

func defaultConfig() Config {
	return Config{
		Port:           defaultPort,
		BaseUrl:        wcaprofile.DefaultBaseUrl,
		UserAgent:      wcaprofile.DefaultUserAgent,
		TimeoutSeconds: int(wcaprofile.DefaultTimeout / time.Second),
	}
}

// loadConfig reads `path` over the defaults, then applies the environment
// (after loading `.env` files) on top.
func loadConfig(path string, envFiles ...string) (Config, error) {
	cfg, err := configutil.ReadWithDefaults(path, defaultConfig())
	if err != nil {
		return Config{}, err
	}
	err = configutil.LoadDotenv(envFiles...)
	if err != nil {
		return Config{}, err
	}
	cfg.Port = configutil.EnvPort(portEnv, cfg.Port)
	cfg.UserAgent = configutil.EnvString(userAgentEnv, cfg.UserAgent)
	return cfg, nil
}

func (c Config) ClientOptions() wcaprofile.ClientOptions {
	return wcaprofile.ClientOptions{
		BaseUrl:   c.BaseUrl,
		UserAgent: c.UserAgent,
		Timeout:   time.Duration(c.TimeoutSeconds) * time.Second,
	}
}
