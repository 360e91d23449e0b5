// Package assets loads the name -> image table the game draws from.
package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/webp"

	"github.com/Kassicus/colorsurvivor/internal/infrastructure/config"
)

// ErrMissingImage is returned when a required image key is not loaded
var ErrMissingImage = errors.New("missing image")

// Entry describes one image: a file to decode, or a solid fill of the
// given size when Path is empty.
type Entry struct {
	Path   string `json:"path,omitempty"`
	Fill   string `json:"fill,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// Manifest is the root of assets.json
type Manifest struct {
	Images map[string]Entry `json:"images"`
}

// LoadManifest reads a manifest from fsys
func LoadManifest(fsys fs.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &m, nil
}

// Library holds decoded images by name. GPU images are created on first
// use so a library can be built and queried without a running game.
type Library struct {
	sources map[string]image.Image
	gpu     map[string]*ebiten.Image
}

// Load decodes every manifest entry. Files are resolved against fsys.
func Load(fsys fs.FS, m *Manifest) (*Library, error) {
	lib := &Library{
		sources: make(map[string]image.Image, len(m.Images)),
		gpu:     make(map[string]*ebiten.Image, len(m.Images)),
	}
	for name, entry := range m.Images {
		img, err := decode(fsys, entry)
		if err != nil {
			return nil, fmt.Errorf("image %q: %w", name, err)
		}
		lib.sources[name] = img
	}
	return lib, nil
}

func decode(fsys fs.FS, e Entry) (image.Image, error) {
	if e.Path == "" {
		return solid(e)
	}
	f, err := fsys.Open(e.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", e.Path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", e.Path, err)
	}
	return img, nil
}

func solid(e Entry) (image.Image, error) {
	if e.Width <= 0 || e.Height <= 0 {
		return nil, fmt.Errorf("fill needs a positive size, got %dx%d", e.Width, e.Height)
	}
	c, err := config.ParseColor(e.Fill)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, e.Width, e.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img, nil
}

// Has reports whether key is loaded
func (l *Library) Has(key string) bool {
	_, ok := l.sources[key]
	return ok
}

// Require returns an error wrapping ErrMissingImage for the first absent key
func (l *Library) Require(keys ...string) error {
	for _, k := range keys {
		if !l.Has(k) {
			return fmt.Errorf("%w: %q", ErrMissingImage, k)
		}
	}
	return nil
}

// Source returns the decoded image
func (l *Library) Source(key string) (image.Image, error) {
	img, ok := l.sources[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingImage, key)
	}
	return img, nil
}

// Size returns the pixel size of an image
func (l *Library) Size(key string) (w, h int, ok bool) {
	img, found := l.sources[key]
	if !found {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}

// Image returns the drawable GPU image for key
func (l *Library) Image(key string) (*ebiten.Image, error) {
	if img, ok := l.gpu[key]; ok {
		return img, nil
	}
	src, err := l.Source(key)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	l.gpu[key] = img
	return img, nil
}

// Keys returns every loaded image name, sorted
func (l *Library) Keys() []string {
	keys := make([]string, 0, len(l.sources))
	for k := range l.sources {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add registers an in-memory image under key
func (l *Library) Add(key string, img image.Image) {
	l.sources[key] = img
	delete(l.gpu, key)
}

// Placeholder builds a library of solid squares for the given keys
func Placeholder(size int, keys ...string) *Library {
	lib := &Library{
		sources: make(map[string]image.Image, len(keys)),
		gpu:     make(map[string]*ebiten.Image, len(keys)),
	}
	for _, k := range keys {
		img := image.NewRGBA(image.Rect(0, 0, size, size))
		draw.Draw(img, img.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
		lib.sources[k] = img
	}
	return lib
}
