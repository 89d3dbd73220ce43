// Package config handles configuration loading and schema definition.
// Everything is loaded once at startup and treated as immutable for the
// process lifetime.
package config

import (
	"fmt"

	"github.com/stripbot/stripbot/internal/catalog"
)

// Mode values accepted by Config.Mode.
const (
	ModeAuto  = "auto"
	ModeFlat  = "flat"
	ModeMulti = "multi"
)

// Config is the top-level stripbot configuration.
type Config struct {
	Telegram    TelegramConfig   `json:"telegram"`
	MQTT        MQTTConfig       `json:"mqtt"`
	Mode        string           `json:"mode,omitempty"`
	DevicesFile string           `json:"devicesFile,omitempty"`
	Devices     []catalog.Device `json:"devices,omitempty"`
}

// TelegramConfig holds bot credentials and the actor allowlist.
type TelegramConfig struct {
	Token     string  `json:"token"`
	AllowFrom []int64 `json:"allowFrom,omitempty"`
}

// MQTTConfig holds broker connection settings.
type MQTTConfig struct {
	Broker    string `json:"broker"`
	Port      int    `json:"port,omitempty"`
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	CAFile    string `json:"caFile,omitempty"`
	BaseTopic string `json:"baseTopic,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Mode: ModeAuto,
		MQTT: MQTTConfig{
			Port:      1883,
			BaseTopic: "esp32/led",
		},
	}
}

// Validate checks the settings needed before any connection is attempted.
func (c Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram token not configured")
	}
	if c.MQTT.Broker == "" {
		return fmt.Errorf("mqtt broker not configured")
	}
	switch c.Mode {
	case ModeAuto, ModeFlat, ModeMulti:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	return nil
}

// ResolveDevices produces the device catalog: inline devices win over a
// devices file; with neither, a single implicit device is synthesized from
// the base topic, which is the original single-strip setup.
func (c Config) ResolveDevices() ([]catalog.Device, error) {
	if len(c.Devices) > 0 {
		if err := catalog.ValidateDevices(c.Devices); err != nil {
			return nil, err
		}
		return c.Devices, nil
	}
	if c.DevicesFile != "" {
		devices, err := catalog.LoadDevices(c.DevicesFile)
		if err != nil {
			return nil, err
		}
		if len(devices) == 0 {
			return nil, fmt.Errorf("device catalog %s is empty", c.DevicesFile)
		}
		return devices, nil
	}
	return []catalog.Device{
		{Key: "led", DisplayName: "Лента", CommandTopic: c.MQTT.BaseTopic},
	}, nil
}

// EffectiveMode resolves the auto mode: one device runs the flat flow,
// more run the device-selection flow.
func (c Config) EffectiveMode(deviceCount int) string {
	if c.Mode == ModeAuto {
		if deviceCount <= 1 {
			return ModeFlat
		}
		return ModeMulti
	}
	return c.Mode
}
