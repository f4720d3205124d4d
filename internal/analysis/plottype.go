package analysis

import "strings"

// PlotType selects which channel subset is rendered as an overlaid
// histogram line plot.
type PlotType int

const (
	PlotNone PlotType = iota
	PlotAll
	PlotRGB
	PlotLab
	PlotHSV
)

// ParsePlotType parses a plot type name case-insensitively. The empty
// string and "none" both select no plot; any other unrecognized value is
// an InvalidArgumentError.
func ParsePlotType(s string) (PlotType, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return PlotNone, nil
	case "all":
		return PlotAll, nil
	case "rgb":
		return PlotRGB, nil
	case "lab":
		return PlotLab, nil
	case "hsv":
		return PlotHSV, nil
	default:
		return PlotNone, &InvalidArgumentError{
			Argument: "hist_plot_type",
			Value:    s,
			Reason:   `must be one of "none", "all", "rgb", "lab" or "hsv"`,
		}
	}
}

// Channels returns the channel subset drawn for this plot type, or nil
// for PlotNone.
func (p PlotType) Channels() []Channel {
	switch p {
	case PlotAll:
		return Channels
	case PlotRGB:
		return []Channel{Blue, Green, Red}
	case PlotLab:
		return []Channel{Lightness, GreenMagenta, BlueYellow}
	case PlotHSV:
		return []Channel{Hue, Saturation, Value}
	default:
		return nil
	}
}

func (p PlotType) String() string {
	switch p {
	case PlotAll:
		return "all"
	case PlotRGB:
		return "rgb"
	case PlotLab:
		return "lab"
	case PlotHSV:
		return "hsv"
	default:
		return "none"
	}
}

func (p PlotType) valid() bool {
	return p >= PlotNone && p <= PlotHSV
}
