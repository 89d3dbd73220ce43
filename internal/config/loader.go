package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPath is the config file used when no --config flag is given.
const DefaultPath = "stripbot.json"

// Load reads configuration from a JSON file, then applies environment
// overrides (a .env file in the working directory is picked up first).
// A missing file is not an error: everything can come from the
// environment, which is how the original deployment ran.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := DefaultConfig() // start with defaults so zero-value fields get filled

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	case os.IsNotExist(err):
		// fall through to env
	default:
		return Config{}, err
	}

	godotenv.Load()
	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overlays the environment variables the original bot used.
func applyEnv(cfg *Config) {
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.Telegram.Token = v
	}
	if v := os.Getenv("WHITELIST_USERS"); v != "" {
		cfg.Telegram.AllowFrom = parseIDList(v)
	}
	if v := os.Getenv("MQTT_BROKER"); v != "" {
		cfg.MQTT.Broker = v
	}
	if v := os.Getenv("MQTT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.MQTT.Port = port
		}
	}
	if v := os.Getenv("MQTT_TOPIC"); v != "" {
		cfg.MQTT.BaseTopic = v
	}
	if v := os.Getenv("MQTT_USERNAME"); v != "" {
		cfg.MQTT.Username = v
	}
	if v := os.Getenv("MQTT_PASSWORD"); v != "" {
		cfg.MQTT.Password = v
	}
	if v := os.Getenv("MQTT_CA_FILE"); v != "" {
		cfg.MQTT.CAFile = v
	}
	if v := os.Getenv("DEVICES_FILE"); v != "" {
		cfg.DevicesFile = v
	}
	if v := os.Getenv("STRIPBOT_MODE"); v != "" {
		cfg.Mode = v
	}
}

// parseIDList parses a comma-separated actor ID list, skipping anything
// that is not a number.
func parseIDList(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
