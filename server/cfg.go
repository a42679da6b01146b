package server

import (
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// Settings is what the observer server reads from its environment.
type Settings struct {
	Port   string
	Width  int
	Height int
	// Seed 0 means seed from the clock.
	Seed int64
}

func DefaultSettings() Settings {
	return Settings{Port: "8080", Width: 1024, Height: 768}
}

// LoadSettings reads PORT, WIDTH, HEIGHT and SEED through getenv, keeping
// the defaults for unset ones.
func LoadSettings(getenv func(string) string) (s Settings, e error) {
	s = DefaultSettings()
	if port := getenv("PORT"); port != "" {
		s.Port = port
	} else {
		log.Printf("Defaulting to port %s", s.Port)
	}
	if s.Width, e = intFromEnv(getenv, "WIDTH", s.Width); e != nil {
		return
	}
	if s.Height, e = intFromEnv(getenv, "HEIGHT", s.Height); e != nil {
		return
	}
	if raw := getenv("SEED"); raw != "" {
		s.Seed, e = strconv.ParseInt(raw, 10, 64)
		if e != nil {
			e = fmt.Errorf("SEED: %w", e)
			return
		}
	}
	if s.Seed == 0 {
		s.Seed = time.Now().UnixNano()
	}
	return
}

func intFromEnv(getenv func(string) string, key string, fallback int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s: must be positive, got %d", key, v)
	}
	return v, nil
}
