package analysis

import "github.com/wcharczuk/go-chart/v2/drawing"

// Channel identifies one of the nine analyzed color components across the
// BGR, Lab and HSV representations. Each channel carries its display
// label and fixed plot color.
type Channel int

const (
	Blue Channel = iota
	Green
	Red
	Lightness
	GreenMagenta
	BlueYellow
	Hue
	Saturation
	Value
)

// Channels lists all nine channels in reporting order.
var Channels = []Channel{
	Blue, Green, Red,
	Lightness, GreenMagenta, BlueYellow,
	Hue, Saturation, Value,
}

var channelLabels = map[Channel]string{
	Blue:         "blue",
	Green:        "green",
	Red:          "red",
	Lightness:    "lightness",
	GreenMagenta: "green-magenta",
	BlueYellow:   "blue-yellow",
	Hue:          "hue",
	Saturation:   "saturation",
	Value:        "value",
}

// Plot colors follow the conventional web palette names: blue,
// forestgreen, red, dimgray, magenta, yellow, blueviolet, cyan, orange.
var channelColors = map[Channel]drawing.Color{
	Blue:         {R: 0, G: 0, B: 255, A: 255},
	Green:        {R: 34, G: 139, B: 34, A: 255},
	Red:          {R: 255, G: 0, B: 0, A: 255},
	Lightness:    {R: 105, G: 105, B: 105, A: 255},
	GreenMagenta: {R: 255, G: 0, B: 255, A: 255},
	BlueYellow:   {R: 255, G: 255, B: 0, A: 255},
	Hue:          {R: 138, G: 43, B: 226, A: 255},
	Saturation:   {R: 0, G: 255, B: 255, A: 255},
	Value:        {R: 255, G: 165, B: 0, A: 255},
}

// Label returns the channel's reporting name.
func (c Channel) Label() string {
	return channelLabels[c]
}

// PlotColor returns the channel's fixed line color for histogram plots.
func (c Channel) PlotColor() drawing.Color {
	return channelColors[c]
}

func (c Channel) String() string {
	return c.Label()
}
