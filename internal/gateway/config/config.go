package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	Env             string
	StateStorePath  string
	ConnectionsPath string
	PromptTimeout   time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8082", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:            *port,
		Env:             env,
		StateStorePath:  firstNonEmpty(strings.TrimSpace(os.Getenv("STATE_STORE_PATH")), "tmp/state_entries.json"),
		ConnectionsPath: firstNonEmpty(strings.TrimSpace(os.Getenv("CONNECTIONS_PATH")), "config/connections.json"),
		PromptTimeout:   resolvePromptTimeout(),
	}, nil
}

// resolvePromptTimeout reads PROMPT_TIMEOUT_SECONDS; zero means a prompt
// waits until answered, dismissed, or the host disconnects.
func resolvePromptTimeout() time.Duration {
	raw := strings.TrimSpace(os.Getenv("PROMPT_TIMEOUT_SECONDS"))
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
