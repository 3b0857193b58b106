package scenes

import (
	"image/color"
	"strings"

	"github.com/automoto/pollo/assets"
	cfg "github.com/automoto/pollo/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// screenSink draws the core's sprites onto an ebiten image.
type screenSink struct {
	screen *ebiten.Image
	images *assets.Images
	face   font.Face
	dx, dy float64
}

func (s *screenSink) Translate(dx, dy float64) {
	s.dx += dx
	s.dy += dy
}

func (s *screenSink) DrawSprite(path string, x, y, w, h float64, mirrored bool) {
	x += s.dx
	y += s.dy
	if x+w < 0 || x > float64(cfg.C.Width) || w <= 0 || h <= 0 {
		return
	}

	img := s.images.Get(path)
	if img == nil {
		if c, ok := placeholder(path); ok {
			vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), c, false)
		}
		return
	}

	b := img.Bounds()
	sx, sy := w/float64(b.Dx()), h/float64(b.Dy())
	op := &ebiten.DrawImageOptions{}
	if mirrored {
		op.GeoM.Scale(-sx, sy)
		op.GeoM.Translate(x+w, y)
	} else {
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, y)
	}
	s.screen.DrawImage(img, op)
}

func (s *screenSink) DrawText(str string, x, y float64) {
	if s.face == nil {
		return
	}
	text.Draw(s.screen, str, s.face, int(x+s.dx), int(y+s.dy), color.White)
}

// Placeholder colors by image path prefix. Longer prefixes come first.
var placeholders = []struct {
	prefix string
	color  color.Color
}{
	{"images/background/air", cfg.Level.BackgroundSkyColor},
	{"images/background/clouds", color.RGBA{255, 255, 255, 120}},
	{"images/background/", nil},
	{"images/character/", color.RGBA{230, 120, 30, 255}},
	{"images/chicken_small/", color.RGBA{240, 210, 90, 255}},
	{"images/chicken/", color.RGBA{150, 90, 40, 255}},
	{"images/boss/", color.RGBA{140, 20, 20, 255}},
	{"images/bottle/", color.RGBA{40, 140, 60, 255}},
	{"images/coin/", color.RGBA{250, 200, 0, 255}},
	{"images/statusbar/", color.RGBA{90, 90, 90, 200}},
}

// placeholder reports the stand-in color for a missing image. Background
// layers other than the sky have none, so they don't hide it.
func placeholder(path string) (color.Color, bool) {
	for _, p := range placeholders {
		if strings.HasPrefix(path, p.prefix) {
			return p.color, p.color != nil
		}
	}
	return color.RGBA{255, 0, 255, 255}, true
}
