// Package catalog holds the static device and command tables.
// Both are loaded once at startup and never mutated afterwards.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Device is a controllable LED strip reachable over MQTT.
type Device struct {
	Key          string `json:"key" yaml:"key"`
	DisplayName  string `json:"name" yaml:"name"`
	CommandTopic string `json:"topic" yaml:"topic"`
}

// devicesFile is the on-disk shape of a device catalog.
type devicesFile struct {
	Devices []Device `yaml:"devices"`
}

// LoadDevices reads a YAML device catalog. Order in the file is preserved.
func LoadDevices(path string) ([]Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading device catalog: %w", err)
	}

	var f devicesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing device catalog: %w", err)
	}
	if err := ValidateDevices(f.Devices); err != nil {
		return nil, err
	}
	return f.Devices, nil
}

// ValidateDevices checks that every device has a key, a name, and a topic,
// and that keys are unique.
func ValidateDevices(devices []Device) error {
	seen := make(map[string]bool, len(devices))
	for i, d := range devices {
		if d.Key == "" {
			return fmt.Errorf("device %d: missing key", i)
		}
		if d.DisplayName == "" {
			return fmt.Errorf("device %q: missing name", d.Key)
		}
		if d.CommandTopic == "" {
			return fmt.Errorf("device %q: missing topic", d.Key)
		}
		if seen[d.Key] {
			return fmt.Errorf("device %q: duplicate key", d.Key)
		}
		seen[d.Key] = true
	}
	return nil
}

// Find returns the device with the given key.
func Find(devices []Device, key string) (Device, bool) {
	for _, d := range devices {
		if d.Key == key {
			return d, true
		}
	}
	return Device{}, false
}
