package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core colours to window colours.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0x11, 0x11, 0x11, 0xff},
	core.ColorBlack:         {0x11, 0x11, 0x11, 0xff},
	core.ColorRed:           {0xff, 0x00, 0x00, 0xff},
	core.ColorGreen:         {0x00, 0x80, 0x00, 0xff},
	core.ColorYellow:        {0xcd, 0xcd, 0x00, 0xff},
	core.ColorBlue:          {0x00, 0x00, 0xee, 0xff},
	core.ColorMagenta:       {0xcd, 0x00, 0xcd, 0xff},
	core.ColorCyan:          {0x00, 0xcd, 0xcd, 0xff},
	core.ColorWhite:         {0xee, 0xee, 0xee, 0xff},
	core.ColorBrightRed:     {0xff, 0x55, 0x55, 0xff},
	core.ColorBrightGreen:   {0x00, 0xff, 0x00, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x55, 0xff},
	core.ColorBrightBlue:    {0x55, 0x55, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x55, 0xff, 0xff},
	core.ColorBrightCyan:    {0x55, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
	core.ColorDarkGray:      {0x33, 0x33, 0x33, 0xff},
	core.ColorShade:         {0x00, 0x00, 0x00, 0x99}, // premultiplied black at 60%
}

// baseFontSize is the pixel height of the bitmap face before scaling.
const baseFontSize = 13

var face = text.NewGoXFace(basicfont.Face7x13)

// Surface draws onto an ebiten image.
type Surface struct {
	img *ebiten.Image
}

var _ core.Surface = (*Surface)(nil)

// NewSurface wraps img.
func NewSurface(img *ebiten.Image) *Surface {
	return &Surface{img: img}
}

func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Fill(c core.Color) {
	s.img.Fill(rgba(c))
}

func (s *Surface) FillRect(r core.Rect, c core.Color) {
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(c), false)
}

// StrokeRect draws a one-pixel outline inside r.
func (s *Surface) StrokeRect(r core.Rect, c core.Color) {
	vector.StrokeRect(s.img, float32(r.X)+0.5, float32(r.Y)+0.5, float32(r.W)-1, float32(r.H)-1, 1, rgba(c), false)
}

// DrawText scales the bitmap face to style.Size and places its baseline at y.
func (s *Surface) DrawText(x, y int, str string, style core.TextStyle) {
	size := style.Size
	if size <= 0 {
		size = baseFontSize
	}
	scale := float64(size) / baseFontSize

	op := &text.DrawOptions{}
	switch style.Align {
	case core.AlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case core.AlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(0, -face.Metrics().HAscent)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(rgba(style.Color))
	text.Draw(s.img, str, face, op)
}
