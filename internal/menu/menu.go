// Package menu builds the inline menus shown to the user. Builders are
// pure: same catalog in, byte-identical menu out.
package menu

import (
	"github.com/stripbot/stripbot/internal/catalog"
)

// Button is one pressable menu entry. Token is the opaque callback payload
// the router decodes later.
type Button struct {
	Label string
	Token string
}

// Menu is a renderable choice set: header text plus button rows.
type Menu struct {
	Text     string
	Keyboard [][]Button
}

const (
	// DeviceMenuTitle heads the device selection menu.
	DeviceMenuTitle = "💡 Выбери устройство:"

	backLabel = "⬅️ К устройствам"

	// BackToken returns the user to the device menu.
	BackToken = "back:devices"
)

// Devices builds the device selection menu, one row per device in catalog
// order.
func Devices(devices []catalog.Device) Menu {
	rows := make([][]Button, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, []Button{{Label: d.DisplayName, Token: "device:" + d.Key}})
	}
	return Menu{Text: DeviceMenuTitle, Keyboard: rows}
}

// Commands builds the fixed 4×4 command grid. With prefixed set, button
// tokens carry the "cmd:" prefix used by the device-selection flow;
// otherwise tokens are the bare command codes. includeBack appends a
// single-button row returning to the device menu.
func Commands(title string, includeBack, prefixed bool) Menu {
	grid := catalog.CommandGrid()
	rows := make([][]Button, 0, len(grid)+1)
	for _, line := range grid {
		row := make([]Button, 0, len(line))
		for _, c := range line {
			token := c.Code
			if prefixed {
				token = "cmd:" + c.Code
			}
			row = append(row, Button{Label: c.Glyph, Token: token})
		}
		rows = append(rows, row)
	}
	if includeBack {
		rows = append(rows, []Button{{Label: backLabel, Token: BackToken}})
	}
	return Menu{Text: title, Keyboard: rows}
}
