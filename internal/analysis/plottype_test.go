package analysis

import (
	"errors"
	"testing"
)

func TestParsePlotType(t *testing.T) {
	var tests = []struct {
		in      string
		want    PlotType
		wantErr bool
	}{
		{"", PlotNone, false},
		{"none", PlotNone, false},
		{"all", PlotAll, false},
		{"rgb", PlotRGB, false},
		{"RGB", PlotRGB, false},
		{"Lab", PlotLab, false},
		{"HSV", PlotHSV, false},
		{"xyz", PlotNone, true},
		{"rgba", PlotNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePlotType(tt.in)
			if tt.wantErr {
				var invalidArg *InvalidArgumentError
				if !errors.As(err, &invalidArg) {
					t.Fatalf("ParsePlotType(%q): got %v, want InvalidArgumentError", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlotType(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePlotType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPlotTypeChannels(t *testing.T) {
	if got := PlotNone.Channels(); got != nil {
		t.Errorf("PlotNone channels: got %v, want nil", got)
	}
	if got := PlotAll.Channels(); len(got) != 9 {
		t.Errorf("PlotAll channels: got %d, want 9", len(got))
	}
	if got := PlotLab.Channels(); len(got) != 3 || got[0] != Lightness {
		t.Errorf("PlotLab channels: got %v", got)
	}
}

func TestChannelMetadata(t *testing.T) {
	var tests = []struct {
		channel Channel
		label   string
	}{
		{Blue, "blue"},
		{GreenMagenta, "green-magenta"},
		{BlueYellow, "blue-yellow"},
		{Hue, "hue"},
		{Value, "value"},
	}

	for _, tt := range tests {
		if got := tt.channel.Label(); got != tt.label {
			t.Errorf("label: got %q, want %q", got, tt.label)
		}
		if c := tt.channel.PlotColor(); c.A != 255 {
			t.Errorf("%s plot color is transparent", tt.label)
		}
	}

	// Spot-check the fixed colors named by the channel mapping.
	if c := Hue.PlotColor(); c.R != 138 || c.G != 43 || c.B != 226 {
		t.Errorf("hue plot color: got %+v, want blueviolet", c)
	}
	if c := Saturation.PlotColor(); c.R != 0 || c.G != 255 || c.B != 255 {
		t.Errorf("saturation plot color: got %+v, want cyan", c)
	}
	if c := Value.PlotColor(); c.R != 255 || c.G != 165 || c.B != 0 {
		t.Errorf("value plot color: got %+v, want orange", c)
	}
}
