package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Kassicus/colorsurvivor/internal/domain/entity"
)

// Colors for rendering
var (
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
	colorText     = color.RGBA{255, 255, 255, 255}
	colorCoin     = color.RGBA{255, 215, 0, 255}
)

const lineHeight = 16

// View is what the renderer needs from a world
type View interface {
	Drawables() []entity.Drawable
	Player() *entity.Player
	Background() string
}

// Images resolves image keys to GPU images
type Images interface {
	Has(key string) bool
	Image(key string) (*ebiten.Image, error)
}

// Renderer draws a View onto the screen
type Renderer struct {
	images     Images
	camera     Camera
	background color.RGBA
	face       text.Face
}

// NewRenderer creates a renderer for a screen of the given size
func NewRenderer(images Images, screenW, screenH int, background color.RGBA) *Renderer {
	return &Renderer{
		images:     images,
		camera:     Camera{Width: float64(screenW), Height: float64(screenH)},
		background: background,
		face:       text.NewGoXFace(basicfont.Face7x13),
	}
}

// Camera returns the renderer's viewport
func (r *Renderer) Camera() Camera {
	return r.camera
}

// Draw renders every drawable in v, centered on the player
func (r *Renderer) Draw(screen *ebiten.Image, v View) {
	screen.Fill(r.background)

	offset := r.camera.Offset(v.Player().Box().Center())

	if key := v.Background(); key != "" && r.images.Has(key) {
		if img, err := r.images.Image(key); err == nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-offset.X, -offset.Y)
			screen.DrawImage(img, op)
		}
	}

	for _, d := range DepthSort(v.Drawables()) {
		box := d.Box()
		if !r.camera.Visible(box, offset) {
			continue
		}
		x, y := box.X-offset.X, box.Y-offset.Y
		look := d.Appearance()

		if look.Key != "" && r.images.Has(look.Key) {
			if img, err := r.images.Image(look.Key); err == nil {
				b := img.Bounds()
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(box.W/float64(b.Dx()), box.H/float64(b.Dy()))
				op.GeoM.Translate(x, y)
				screen.DrawImage(img, op)
				continue
			}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(box.W), float32(box.H), look.Fill, false)
	}
}

// DrawHUD draws the health bar and coin count
func (r *Renderer) DrawHUD(screen *ebiten.Image, p *entity.Player) {
	barX := float32(10)
	barY := float32(r.camera.Height - 30)
	barW := float32(200)
	barH := float32(14)

	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBG, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(HealthRatio(p)), barH, colorHealthFG, false)

	r.print(screen, fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth), float64(barX+barW+10), float64(barY), colorText)
	r.print(screen, fmt.Sprintf("Coins: %d", p.Coins), float64(barX), float64(barY)-lineHeight-4, colorCoin)
}

// DrawBanner dims the screen and prints lines in the middle
func (r *Renderer) DrawBanner(screen *ebiten.Image, tint color.RGBA, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.camera.Width), float32(r.camera.Height), tint, false)

	widest := 0
	for _, l := range lines {
		if len(l) > widest {
			widest = len(l)
		}
	}
	x := r.camera.Width/2 - float64(widest*7)/2
	y := r.camera.Height/2 - float64(len(lines)*lineHeight)/2
	r.print(screen, strings.Join(lines, "\n"), x, y, colorText)
}

// DrawDebug prints frame rates and container sizes in the top-left corner
func (r *Renderer) DrawDebug(screen *ebiten.Image, tick uint64, counts map[string]int) {
	lines := DebugLines(ebiten.ActualFPS(), ebiten.ActualTPS(), tick, counts)
	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 10, 10)
}

func (r *Renderer) print(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineHeight
	text.Draw(screen, s, r.face, op)
}

// HealthRatio returns the player's health as a fraction in [0, 1]
func HealthRatio(p *entity.Player) float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	ratio := float64(p.Health) / float64(p.MaxHealth)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}

// DebugLines formats the debug overlay. Containers are listed by name.
func DebugLines(fps, tps float64, tick uint64, counts map[string]int) []string {
	lines := []string{
		fmt.Sprintf("FPS: %.1f  TPS: %.1f", fps, tps),
		fmt.Sprintf("tick: %d", tick),
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s: %d", name, counts[name]))
	}
	return lines
}
