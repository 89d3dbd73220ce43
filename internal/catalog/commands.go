package catalog

// Command is one effect the strip firmware understands. The code is sent
// as the MQTT payload verbatim.
type Command struct {
	Code  string
	Glyph string
}

// commandGrid is the fixed 4×4 command layout. The row grouping and
// ordering are a UX contract shared with the firmware button map; do not
// reorder.
var commandGrid = [][]Command{
	{
		{Code: "2", Glyph: "🔴-"},
		{Code: "3", Glyph: "🔵+"},
		{Code: "4", Glyph: "➖"},
		{Code: "5", Glyph: "➕"},
	},
	{
		{Code: "6", Glyph: "🔅"},
		{Code: "7", Glyph: "🔆"},
		{Code: "8", Glyph: "🎨"},
		{Code: "9", Glyph: "🌊"},
	},
	{
		{Code: "10", Glyph: "🌈"},
		{Code: "11", Glyph: "🔥"},
		{Code: "12", Glyph: "❤️‍🔥"},
		{Code: "13", Glyph: "🕺"},
	},
	{
		{Code: "14", Glyph: "☄️"},
		{Code: "15", Glyph: "✨"},
		{Code: "16", Glyph: "🌠"},
		{Code: "1", Glyph: "🌑/💡"},
	},
}

// CommandGrid returns the command catalog in its presentation layout.
func CommandGrid() [][]Command {
	return commandGrid
}

// commands returns the command catalog flattened in grid order.
func commands() []Command {
	var out []Command
	for _, row := range commandGrid {
		out = append(out, row...)
	}
	return out
}
