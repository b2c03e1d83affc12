package main

import (
	"image"
	"image/color"
	"log"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/example/tintpanel/area"
)

// Color Palette
var (
	ColorBackground = color.RGBA{0x2a, 0x2e, 0x38, 0xff} // Desktop behind the panels
	ColorTooltipBg  = color.RGBA{0x0c, 0x0c, 0x0e, 0xee} // Tooltip background
	ColorText       = color.White                        // Standard text
	ColorTextDim    = color.RGBA{0xdd, 0xdd, 0xdd, 0xff} // Dimmed text (hints)
)

const tooltipDelay = 600 * time.Millisecond

type UI struct {
	face  font.Face
	small font.Face

	// last tooltip image and its GPU copy
	tipSrc image.Image
	tipImg *ebiten.Image
}

func NewUI() *UI {
	ui := &UI{}

	// A local TTF in res/ wins over the bundled Go font.
	b, err := os.ReadFile("res/Roboto-Regular.ttf")
	if err != nil {
		b = goregular.TTF
	}
	tt, err := opentype.Parse(b)
	if err != nil {
		log.Printf("could not parse ttf: %v; falling back to basic font", err)
		ui.face, ui.small = basicfont.Face7x13, basicfont.Face7x13
		return ui
	}
	ui.face = newFace(tt, 14)
	ui.small = newFace(tt, 10)
	return ui
}

func newFace(tt *opentype.Font, size float64) font.Face {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Printf("could not create font face: %v; falling back to basic font", err)
		return basicfont.Face7x13
	}
	return face
}

// drawTextAt draws text using the provided face. If face is nil, falls back to ebitenutil.DebugPrintAt.
func drawTextAt(screen *ebiten.Image, face font.Face, s string, x, y int, col color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	ascent := face.Metrics().Ascent.Round()
	text.Draw(screen, s, face, x, y+ascent, col)
}

// Draw renders the key hints and the tooltip of the hovered area.
func (ui *UI) Draw(screen *ebiten.Image, g *Game) {
	drawTextAt(screen, ui.face, "Left-click launcher to start a task - Middle-click a task to close it - Right-click for the menu", dockWidth+8, 8, ColorTextDim)
	drawTextAt(screen, ui.face, "D dump geometry - O open theme - S save theme - C toggle clock", dockWidth+8, 26, ColorTextDim)

	a, since := g.input.Hovered()
	if a == nil || time.Since(since) < tooltipDelay {
		return
	}
	tip, img := area.Tooltip(a)
	if tip == "" && img == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	lines := strings.Split(tip, "\n")
	lineH := ui.face.Metrics().Height.Ceil()
	w := 0
	for _, l := range lines {
		if lw := font.MeasureString(ui.face, l).Ceil(); lw > w {
			w = lw
		}
	}
	h := lineH * len(lines)
	if img != nil {
		w += img.Bounds().Dx() + 4
		if ih := img.Bounds().Dy(); ih > h {
			h = ih
		}
	}
	x, y := mx+12, my-h-12
	if y < 0 {
		y = my + 20
	}
	if x+w+8 > g.width {
		x = g.width - w - 8
	}
	ebitenutil.DrawRect(screen, float64(x-4), float64(y-4), float64(w+8), float64(h+8), ColorTooltipBg)
	if img != nil {
		if img != ui.tipSrc {
			ui.tipSrc, ui.tipImg = img, ebiten.NewImageFromImage(img)
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(ui.tipImg, op)
		x += img.Bounds().Dx() + 4
	}
	for i, l := range lines {
		drawTextAt(screen, ui.face, l, x, y+i*lineH, ColorText)
	}
}
