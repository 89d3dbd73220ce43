package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "devices.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDevices(t *testing.T) {
	path := writeCatalog(t, `
devices:
  - key: strip1
    name: "🌈 Лента на стеллаже"
    topic: esp32/led1
  - key: strip2
    name: "💡 Лента на кухне"
    topic: esp32/led2
`)

	devices, err := LoadDevices(path)
	require.NoError(t, err)
	require.Len(t, devices, 2)

	// File order is catalog order.
	assert.Equal(t, "strip1", devices[0].Key)
	assert.Equal(t, "🌈 Лента на стеллаже", devices[0].DisplayName)
	assert.Equal(t, "esp32/led1", devices[0].CommandTopic)
	assert.Equal(t, "strip2", devices[1].Key)
}

func TestLoadDevices_MissingFile(t *testing.T) {
	_, err := LoadDevices(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateDevices(t *testing.T) {
	assert.NoError(t, ValidateDevices([]Device{
		{Key: "a", DisplayName: "A", CommandTopic: "t/a"},
	}))

	assert.Error(t, ValidateDevices([]Device{{DisplayName: "A", CommandTopic: "t"}}), "missing key")
	assert.Error(t, ValidateDevices([]Device{{Key: "a", CommandTopic: "t"}}), "missing name")
	assert.Error(t, ValidateDevices([]Device{{Key: "a", DisplayName: "A"}}), "missing topic")
	assert.Error(t, ValidateDevices([]Device{
		{Key: "a", DisplayName: "A", CommandTopic: "t1"},
		{Key: "a", DisplayName: "B", CommandTopic: "t2"},
	}), "duplicate key")
}

func TestFind(t *testing.T) {
	devices := []Device{
		{Key: "a", DisplayName: "A", CommandTopic: "t/a"},
		{Key: "b", DisplayName: "B", CommandTopic: "t/b"},
	}

	d, ok := Find(devices, "b")
	assert.True(t, ok)
	assert.Equal(t, "t/b", d.CommandTopic)

	_, ok = Find(devices, "c")
	assert.False(t, ok)
}

func TestCommandGrid(t *testing.T) {
	grid := CommandGrid()
	require.Len(t, grid, 4)
	for _, row := range grid {
		assert.Len(t, row, 4)
	}

	// Codes 1..16, each exactly once.
	seen := make(map[string]bool)
	for _, c := range commands() {
		assert.False(t, seen[c.Code], "duplicate code %s", c.Code)
		seen[c.Code] = true
	}
	assert.Len(t, seen, 16)

	// Spot-check the UX contract.
	assert.Equal(t, Command{Code: "2", Glyph: "🔴-"}, grid[0][0])
	assert.Equal(t, Command{Code: "11", Glyph: "🔥"}, grid[2][1])
	assert.Equal(t, Command{Code: "1", Glyph: "🌑/💡"}, grid[3][3])
}
