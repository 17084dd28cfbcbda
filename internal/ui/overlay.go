// internal/ui/overlay.go
package ui

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"go-space-shooter/internal/config"
)

// LoadFace загружает встроенный шрифт Go Regular нужного размера.
func LoadFace(size float64) (text.Face, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}

// Overlay рисует текст поверх кадра.
type Overlay struct {
	face text.Face
}

func NewOverlay(face text.Face) *Overlay {
	return &Overlay{face: face}
}

// Status выводит строку состояния в левом верхнем углу.
func (o *Overlay) Status(screen *ebiten.Image, status string) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, status, o.face, op)
}

// Banner затемняет экран и пишет msg по центру.
func (o *Overlay) Banner(screen *ebiten.Image, msg string) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.PauseDimColor, false)

	w, h := text.Measure(msg, o.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate((float64(b.Dx())-w)/2, (float64(b.Dy())-h)/2)
	op.ColorScale.ScaleWithColor(config.TextLightColor)
	text.Draw(screen, msg, o.face, op)
}
