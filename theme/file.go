package theme

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/example/tintpanel/paint"
)

// borderFile is a border as written in theme files. Sides is a subset of
// "TBLR" or "none", Corners a list of "TL", "TR", "BL", "BR" or "all".
type borderFile struct {
	Color   string `yaml:"color" toml:"color"`
	Width   int    `yaml:"width" toml:"width"`
	Radius  int    `yaml:"radius,omitempty" toml:"radius,omitempty"`
	Sides   string `yaml:"sides,omitempty" toml:"sides,omitempty"`
	Corners string `yaml:"corners,omitempty" toml:"corners,omitempty"`
}

type pointFile struct {
	X []string `yaml:"x,omitempty" toml:"x,omitempty"`
	Y []string `yaml:"y,omitempty" toml:"y,omitempty"`
	R []string `yaml:"r,omitempty" toml:"r,omitempty"`
}

type stopFile struct {
	Offset float64 `yaml:"offset" toml:"offset"`
	Color  string  `yaml:"color" toml:"color"`
}

type gradientFile struct {
	ID         string     `yaml:"id" toml:"id"`
	Type       string     `yaml:"type" toml:"type"`
	StartColor string     `yaml:"start_color" toml:"start_color"`
	EndColor   string     `yaml:"end_color" toml:"end_color"`
	Stops      []stopFile `yaml:"stops,omitempty" toml:"stops,omitempty"`
	From       *pointFile `yaml:"from,omitempty" toml:"from,omitempty"`
	To         *pointFile `yaml:"to,omitempty" toml:"to,omitempty"`
}

// backgroundFile leaves hover and pressed values empty to reuse the normal
// ones.
type backgroundFile struct {
	ID               string      `yaml:"id" toml:"id"`
	Fill             string      `yaml:"fill,omitempty" toml:"fill,omitempty"`
	FillHover        string      `yaml:"fill_hover,omitempty" toml:"fill_hover,omitempty"`
	FillPressed      string      `yaml:"fill_pressed,omitempty" toml:"fill_pressed,omitempty"`
	Border           *borderFile `yaml:"border,omitempty" toml:"border,omitempty"`
	BorderHover      *borderFile `yaml:"border_hover,omitempty" toml:"border_hover,omitempty"`
	BorderPressed    *borderFile `yaml:"border_pressed,omitempty" toml:"border_pressed,omitempty"`
	Gradients        []string    `yaml:"gradients,omitempty" toml:"gradients,omitempty"`
	GradientsHover   []string    `yaml:"gradients_hover,omitempty" toml:"gradients_hover,omitempty"`
	GradientsPressed []string    `yaml:"gradients_pressed,omitempty" toml:"gradients_pressed,omitempty"`
	FillTint         float64     `yaml:"fill_tint,omitempty" toml:"fill_tint,omitempty"`
	BorderTint       float64     `yaml:"border_tint,omitempty" toml:"border_tint,omitempty"`
}

type themeFile struct {
	Gradients   []gradientFile   `yaml:"gradients" toml:"gradients"`
	Backgrounds []backgroundFile `yaml:"backgrounds" toml:"backgrounds"`
}

// Load reads a theme from a .yaml, .yml or .toml file.
func Load(path string) (*Theme, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	t, err := Parse(b, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", path, err)
	}
	return t, nil
}

// Parse decodes a theme. format is "yaml", "yml" or "toml".
func Parse(data []byte, format string) (*Theme, error) {
	var tf themeFile
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &tf); err != nil {
			return nil, err
		}
	case "toml":
		if err := toml.Unmarshal(data, &tf); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown theme format %q", format)
	}
	return tf.build()
}

// Save writes the theme as TOML when path ends in .toml, as YAML otherwise.
func (t *Theme) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		enc := toml.NewEncoder(f)
		enc.SetIndentTables(true)
		return enc.Encode(t.file())
	}
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(t.file()); err != nil {
		return err
	}
	return enc.Close()
}

func (tf *themeFile) build() (*Theme, error) {
	t := New()
	for _, gf := range tf.Gradients {
		g, err := gf.build()
		if err != nil {
			return nil, err
		}
		if _, dup := t.gradients[g.ID]; dup {
			return nil, fmt.Errorf("duplicate gradient %q", g.ID)
		}
		t.AddGradient(g)
	}
	for _, bf := range tf.Backgrounds {
		bg, err := bf.build(t)
		if err != nil {
			return nil, err
		}
		if _, dup := t.backgrounds[bf.ID]; dup {
			return nil, fmt.Errorf("duplicate background %q", bf.ID)
		}
		t.AddBackground(bf.ID, bg)
	}
	return t, nil
}

func (gf *gradientFile) build() (*paint.GradientClass, error) {
	if gf.ID == "" {
		return nil, fmt.Errorf("gradient without id")
	}
	typ, err := paint.ParseGradientType(gf.Type)
	if err != nil {
		return nil, fmt.Errorf("gradient %q: %w", gf.ID, err)
	}
	start, err := ParseColor(gf.StartColor)
	if err != nil {
		return nil, fmt.Errorf("gradient %q: %w", gf.ID, err)
	}
	end, err := ParseColor(gf.EndColor)
	if err != nil {
		return nil, fmt.Errorf("gradient %q: %w", gf.ID, err)
	}

	var g *paint.GradientClass
	if typ == paint.GradientCentered {
		g = paint.NewRadialGradient(start, end)
	} else {
		g = paint.NewLinearGradient(typ, start, end)
	}
	g.ID = gf.ID
	for _, sf := range gf.Stops {
		c, err := ParseColor(sf.Color)
		if err != nil {
			return nil, fmt.Errorf("gradient %q: %w", gf.ID, err)
		}
		g.ExtraStops = append(g.ExtraStops, paint.ColorStop{Offset: sf.Offset, Color: c})
	}
	if gf.From != nil {
		if g.From, err = gf.From.build(); err != nil {
			return nil, fmt.Errorf("gradient %q: from: %w", gf.ID, err)
		}
	}
	if gf.To != nil {
		if g.To, err = gf.To.build(); err != nil {
			return nil, fmt.Errorf("gradient %q: to: %w", gf.ID, err)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (pf *pointFile) build() (paint.ControlPoint, error) {
	var p paint.ControlPoint
	parse := func(in []string) ([]paint.Offset, error) {
		var out []paint.Offset
		for _, s := range in {
			o, err := paint.ParseOffset(s)
			if err != nil {
				return nil, err
			}
			out = append(out, o)
		}
		return out, nil
	}
	var err error
	if p.X, err = parse(pf.X); err != nil {
		return p, err
	}
	if p.Y, err = parse(pf.Y); err != nil {
		return p, err
	}
	if p.R, err = parse(pf.R); err != nil {
		return p, err
	}
	return p, nil
}

func (bf *backgroundFile) build(t *Theme) (*paint.Background, error) {
	if bf.ID == "" {
		return nil, fmt.Errorf("background without id")
	}
	wrap := func(err error) error { return fmt.Errorf("background %q: %w", bf.ID, err) }

	bg := &paint.Background{
		FillContentTintWeight:   bf.FillTint,
		BorderContentTintWeight: bf.BorderTint,
	}
	var err error
	if bf.Fill != "" {
		if bg.FillColor, err = ParseColor(bf.Fill); err != nil {
			return nil, wrap(err)
		}
	}
	bg.FillColorHover, bg.FillColorPressed = bg.FillColor, bg.FillColor
	if bf.FillHover != "" {
		if bg.FillColorHover, err = ParseColor(bf.FillHover); err != nil {
			return nil, wrap(err)
		}
	}
	if bf.FillPressed != "" {
		if bg.FillColorPressed, err = ParseColor(bf.FillPressed); err != nil {
			return nil, wrap(err)
		}
	}

	if bf.Border != nil {
		if bg.Border, err = bf.Border.build(); err != nil {
			return nil, wrap(err)
		}
	}
	bg.BorderHover, bg.BorderPressed = bg.Border, bg.Border
	if bf.BorderHover != nil {
		if bg.BorderHover, err = bf.BorderHover.build(); err != nil {
			return nil, wrap(err)
		}
	}
	if bf.BorderPressed != nil {
		if bg.BorderPressed, err = bf.BorderPressed.build(); err != nil {
			return nil, wrap(err)
		}
	}

	for state, ids := range [paint.MouseStateCount][]string{bf.Gradients, bf.GradientsHover, bf.GradientsPressed} {
		for _, id := range ids {
			g, ok := t.gradients[id]
			if !ok {
				return nil, wrap(fmt.Errorf("unknown gradient %q", id))
			}
			bg.Gradients[state] = append(bg.Gradients[state], g)
		}
	}
	return bg, nil
}

func (bf *borderFile) build() (paint.Border, error) {
	b := paint.Border{Width: bf.Width, Radius: bf.Radius, Sides: paint.BorderAll, Corners: paint.CornerAll}
	var err error
	if bf.Color != "" {
		if b.Color, err = ParseColor(bf.Color); err != nil {
			return b, err
		}
	}
	if bf.Sides != "" {
		if b.Sides, err = parseSides(bf.Sides); err != nil {
			return b, err
		}
	}
	if bf.Corners != "" {
		if b.Corners, err = parseCorners(bf.Corners); err != nil {
			return b, err
		}
	}
	return b, nil
}

func parseSides(s string) (int, error) {
	sides := 0
	if strings.EqualFold(s, "none") {
		return 0, nil
	}
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'T':
			sides |= paint.BorderTop
		case 'B':
			sides |= paint.BorderBottom
		case 'L':
			sides |= paint.BorderLeft
		case 'R':
			sides |= paint.BorderRight
		default:
			return 0, fmt.Errorf("invalid border side %q", r)
		}
	}
	return sides, nil
}

func parseCorners(s string) (int, error) {
	corners := 0
	for _, f := range strings.Fields(strings.ToUpper(s)) {
		switch f {
		case "ALL":
			corners |= paint.CornerAll
		case "NONE":
		case "TL":
			corners |= paint.CornerTopLeft
		case "TR":
			corners |= paint.CornerTopRight
		case "BL":
			corners |= paint.CornerBottomLeft
		case "BR":
			corners |= paint.CornerBottomRight
		default:
			return 0, fmt.Errorf("invalid corner %q", f)
		}
	}
	return corners, nil
}

// ParseColor parses "#rrggbb" optionally followed by an opacity in percent,
// e.g. "#202020 60".
func ParseColor(s string) (paint.Color, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return paint.Color{}, fmt.Errorf("invalid color %q", s)
	}
	c, err := colorful.Hex(fields[0])
	if err != nil {
		return paint.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	alpha := 100.0
	if len(fields) == 2 {
		if alpha, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return paint.Color{}, fmt.Errorf("invalid opacity in color %q: %w", s, err)
		}
	}
	if alpha < 0 || alpha > 100 {
		return paint.Color{}, fmt.Errorf("opacity out of range in color %q", s)
	}
	return paint.Color{R: c.R, G: c.G, B: c.B, A: alpha / 100}, nil
}

// FormatColor is the inverse of ParseColor.
func FormatColor(c paint.Color) string {
	hex := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
	return hex + " " + strconv.FormatFloat(math.Round(c.A*10000)/100, 'f', -1, 64)
}

func (t *Theme) file() *themeFile {
	tf := &themeFile{}
	for _, id := range t.GradientIDs() {
		g := t.gradients[id]
		gf := gradientFile{
			ID:         g.ID,
			Type:       g.Type.String(),
			StartColor: FormatColor(g.StartColor),
			EndColor:   FormatColor(g.EndColor),
			From:       pointToFile(g.From),
			To:         pointToFile(g.To),
		}
		for _, s := range g.ExtraStops {
			gf.Stops = append(gf.Stops, stopFile{Offset: s.Offset, Color: FormatColor(s.Color)})
		}
		tf.Gradients = append(tf.Gradients, gf)
	}
	for _, id := range t.BackgroundIDs() {
		bg := t.backgrounds[id]
		bf := backgroundFile{
			ID:          id,
			Fill:        FormatColor(bg.FillColor),
			FillHover:   FormatColor(bg.FillColorHover),
			FillPressed: FormatColor(bg.FillColorPressed),
			Border:      borderToFile(bg.Border),
			BorderHover: borderToFile(bg.BorderHover),
			FillTint:    bg.FillContentTintWeight,
			BorderTint:  bg.BorderContentTintWeight,
		}
		bf.BorderPressed = borderToFile(bg.BorderPressed)
		ids := func(list []*paint.GradientClass) []string {
			var out []string
			for _, g := range list {
				out = append(out, g.ID)
			}
			return out
		}
		bf.Gradients = ids(bg.Gradients[paint.MouseNormal])
		bf.GradientsHover = ids(bg.Gradients[paint.MouseOver])
		bf.GradientsPressed = ids(bg.Gradients[paint.MouseDown])
		tf.Backgrounds = append(tf.Backgrounds, bf)
	}
	return tf
}

func pointToFile(p paint.ControlPoint) *pointFile {
	str := func(list []paint.Offset) []string {
		var out []string
		for _, o := range list {
			out = append(out, o.String())
		}
		return out
	}
	return &pointFile{X: str(p.X), Y: str(p.Y), R: str(p.R)}
}

func borderToFile(b paint.Border) *borderFile {
	bf := &borderFile{Color: FormatColor(b.Color), Width: b.Width, Radius: b.Radius}
	var sides strings.Builder
	for _, s := range []struct {
		bit  int
		name string
	}{{paint.BorderTop, "T"}, {paint.BorderBottom, "B"}, {paint.BorderLeft, "L"}, {paint.BorderRight, "R"}} {
		if b.Sides&s.bit != 0 {
			sides.WriteString(s.name)
		}
	}
	bf.Sides = sides.String()
	if bf.Sides == "" {
		bf.Sides = "none"
	}
	var corners []string
	for _, c := range []struct {
		bit  int
		name string
	}{{paint.CornerTopLeft, "TL"}, {paint.CornerTopRight, "TR"}, {paint.CornerBottomLeft, "BL"}, {paint.CornerBottomRight, "BR"}} {
		if b.Corners&c.bit != 0 {
			corners = append(corners, c.name)
		}
	}
	bf.Corners = strings.Join(corners, " ")
	if bf.Corners == "" {
		bf.Corners = "none"
	}
	return bf
}
