package theme

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/example/tintpanel/paint"
)

const sampleYAML = `
gradients:
  - id: fade
    type: vertical
    start_color: "#ffffff 50"
    end_color: "#ffffff 0"
    stops:
      - offset: 0.25
        color: "#ff0000"
  - id: wide
    type: horizontal
    start_color: "#000000"
    end_color: "#0000ff"
    to:
      x: ["panel.width"]
backgrounds:
  - id: task
    fill: "#202020 60"
    fill_hover: "#303030"
    border:
      color: "#ffffff"
      width: 2
      radius: 4
      sides: TB
      corners: TL BR
    gradients: [fade]
    gradients_hover: [fade, wide]
    fill_tint: 0.2
`

const sampleTOML = `
[[gradients]]
id = "fade"
type = "vertical"
start_color = "#ffffff 50"
end_color = "#ffffff 0"

  [[gradients.stops]]
  offset = 0.25
  color = "#ff0000"

[[gradients]]
id = "wide"
type = "horizontal"
start_color = "#000000"
end_color = "#0000ff"

  [gradients.to]
  x = ["panel.width"]

[[backgrounds]]
id = "task"
fill = "#202020 60"
fill_hover = "#303030"
gradients = ["fade"]
gradients_hover = ["fade", "wide"]
fill_tint = 0.2

  [backgrounds.border]
  color = "#ffffff"
  width = 2
  radius = 4
  sides = "TB"
  corners = "TL BR"
`

// Hex colors are scaled by 1/255, which is not exact.
var approx = cmpopts.EquateApprox(0, 1e-9)

func checkSample(t *testing.T, th *Theme) {
	t.Helper()
	if diff := cmp.Diff([]string{"fade", "wide"}, th.GradientIDs()); diff != "" {
		t.Errorf("gradient ids (-want +got):\n%s", diff)
	}
	fade, ok := th.Gradient("fade")
	if !ok {
		t.Fatal("fade not found")
	}
	if fade.StartColor.A != 0.5 || len(fade.ExtraStops) != 1 || !cmp.Equal(fade.ExtraStops[0].Color, paint.RGB(1, 0, 0), approx) {
		t.Errorf("fade = %+v", fade)
	}
	wide, _ := th.Gradient("wide")
	if wide.Type != paint.GradientHorizontal || wide.To.X[0].Element != paint.ElementPanel {
		t.Errorf("wide = %+v", wide)
	}

	bg := th.Background("task")
	if bg.FillColor.A != 0.6 || !cmp.Equal(bg.FillColorHover, paint.Color{R: 0x30 / 255.0, G: 0x30 / 255.0, B: 0x30 / 255.0, A: 1}, approx) {
		t.Errorf("fills = %v, %v", bg.FillColor, bg.FillColorHover)
	}
	if bg.FillColorPressed != bg.FillColor {
		t.Error("pressed fill should default to the normal fill")
	}
	wantBorder := paint.Border{
		Color:   paint.RGB(1, 1, 1),
		Width:   2,
		Radius:  4,
		Sides:   paint.BorderTop | paint.BorderBottom,
		Corners: paint.CornerTopLeft | paint.CornerBottomRight,
	}
	if diff := cmp.Diff(wantBorder, bg.Border, approx); diff != "" {
		t.Errorf("border (-want +got):\n%s", diff)
	}
	if bg.BorderHover != bg.Border || bg.BorderPressed != bg.Border {
		t.Error("hover and pressed borders should default to the normal border")
	}
	if len(bg.Gradients[paint.MouseNormal]) != 1 || bg.Gradients[paint.MouseNormal][0] != fade {
		t.Error("normal gradients should point into the theme table")
	}
	if len(bg.Gradients[paint.MouseOver]) != 2 || len(bg.Gradients[paint.MouseDown]) != 0 {
		t.Errorf("hover/pressed gradients = %d/%d, want 2/0",
			len(bg.Gradients[paint.MouseOver]), len(bg.Gradients[paint.MouseDown]))
	}
	if bg.FillContentTintWeight != 0.2 {
		t.Errorf("fill tint = %v", bg.FillContentTintWeight)
	}
}

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		format, data string
	}{
		{"yaml", sampleYAML},
		{"toml", sampleTOML},
	} {
		t.Run(tt.format, func(t *testing.T) {
			th, err := Parse([]byte(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			checkSample(t, th)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"unknown gradient", "backgrounds:\n  - id: a\n    gradients: [nope]\n", `unknown gradient "nope"`},
		{"bad color", "backgrounds:\n  - id: a\n    fill: \"#zz\"\n", "invalid color"},
		{"bad side", "backgrounds:\n  - id: a\n    border: {sides: TX}\n", "invalid border side"},
		{"bad offset", "gradients:\n  - {id: g, type: vertical, start_color: \"#000000\", end_color: \"#000000\", to: {y: [depth]}}\n", "unknown size variable"},
		{"bad type", "gradients:\n  - {id: g, type: diagonal, start_color: \"#000000\", end_color: \"#000000\"}\n", "unknown gradient type"},
		{"duplicate", "backgrounds:\n  - id: a\n  - id: a\n", `duplicate background "a"`},
		{"missing id", "backgrounds:\n  - fill: \"#000000\"\n", "without id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "yaml")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	if _, err := Parse(nil, "ini"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestColor(t *testing.T) {
	tests := []struct {
		in   string
		want paint.Color
	}{
		{"#ff0000", paint.RGB(1, 0, 0)},
		{"#ffffff 50", paint.Color{R: 1, G: 1, B: 1, A: 0.5}},
		{"  #000000   0 ", paint.Color{}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if !cmp.Equal(got, tt.want, approx) {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, in := range []string{"", "red", "#ff0000 101", "#ff0000 -1", "#ff0000 50 50", "#ff0000 x"} {
		if _, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q): expected an error", in)
		}
	}

	if got := FormatColor(paint.Color{R: 1, G: 0.5, A: 0.25}); got != "#ff8000 25" {
		t.Errorf("FormatColor = %q", got)
	}
}

func TestMissingBackground(t *testing.T) {
	if Default().Background("missing") != paint.Transparent {
		t.Error("missing backgrounds should be transparent")
	}
	if _, ok := New().Gradient("missing"); ok {
		t.Error("empty theme has no gradients")
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yml")
	second := filepath.Join(dir, "second.yml")

	if err := Default().Save(first); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(first)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := loaded.Save(second); err != nil {
		t.Fatalf("Save: %v", err)
	}
	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(a), string(b)); diff != "" {
		t.Errorf("second save differs (-first +second):\n%s", diff)
	}

	tomlPath := filepath.Join(dir, "theme.toml")
	if err := loaded.Save(tomlPath); err != nil {
		t.Fatalf("Save toml: %v", err)
	}
	fromTOML, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load toml: %v", err)
	}
	if diff := cmp.Diff(loaded.file(), fromTOML.file()); diff != "" {
		t.Errorf("toml round trip (-yaml +toml):\n%s", diff)
	}

	if _, err := Load(filepath.Join(dir, "absent.yml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestSaveReportsWriteErrors(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	dir := t.TempDir()
	for _, name := range []string{"full.yml", "full.toml"} {
		path := filepath.Join(dir, name)
		if err := os.Symlink("/dev/full", path); err != nil {
			t.Fatal(err)
		}
		if err := Default().Save(path); err == nil {
			t.Errorf("Save(%s) on a full device: expected an error", name)
		}
	}
}
