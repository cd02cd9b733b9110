package game

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // PNG overrides from Config.AssetDir
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

//go:embed assets/*.svg
var assetFS embed.FS

// Sprite names, shared by the embedded SVGs and PNG overrides
const (
	SpriteBackground = "background"
	SpritePlayer     = "player"
	SpriteCrosshair  = "crosshair"
	SpriteBullet     = "bullet"
)

// Images holds the decoded sprites before they are uploaded to the GPU
type Images struct {
	Background image.Image
	Player     image.Image
	Crosshair  image.Image
	Bullet     image.Image
}

// Sprites holds the shared sprite handles used for drawing
type Sprites struct {
	Background *ebiten.Image
	Player     *ebiten.Image
	Crosshair  *ebiten.Image
	Bullet     *ebiten.Image
}

// LoadImages decodes all sprites at their on-screen size. The background
// is stretched to the viewport, the others are scaled by their configured
// factor.
func LoadImages(cfg Config) (Images, error) {
	var imgs Images
	var err error

	viewport := image.Pt(cfg.ScreenWidth, cfg.ScreenHeight)
	if imgs.Background, err = loadSprite(cfg.AssetDir, SpriteBackground, 1, viewport); err != nil {
		return Images{}, err
	}
	if imgs.Player, err = loadSprite(cfg.AssetDir, SpritePlayer, cfg.PlayerScale, image.Point{}); err != nil {
		return Images{}, err
	}
	if imgs.Crosshair, err = loadSprite(cfg.AssetDir, SpriteCrosshair, cfg.CrosshairScale, image.Point{}); err != nil {
		return Images{}, err
	}
	if imgs.Bullet, err = loadSprite(cfg.AssetDir, SpriteBullet, cfg.BulletScale, image.Point{}); err != nil {
		return Images{}, err
	}
	return imgs, nil
}

// NewSprites uploads decoded images as ebiten images
func NewSprites(imgs Images) *Sprites {
	return &Sprites{
		Background: ebiten.NewImageFromImage(imgs.Background),
		Player:     ebiten.NewImageFromImage(imgs.Player),
		Crosshair:  ebiten.NewImageFromImage(imgs.Crosshair),
		Bullet:     ebiten.NewImageFromImage(imgs.Bullet),
	}
}

// loadSprite loads name either from dir as PNG or from the embedded SVGs.
// A non-zero fit forces the output size, otherwise the natural size is
// multiplied by scale.
func loadSprite(dir, name string, scale float64, fit image.Point) (image.Image, error) {
	if dir != "" {
		return loadPNG(filepath.Join(dir, name+".png"), scale, fit)
	}
	return loadSVG(name, scale, fit)
}

func loadPNG(path string, scale float64, fit image.Point) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sprite: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite %s: %w", path, err)
	}

	size := fit
	if size == (image.Point{}) {
		b := src.Bounds()
		size = scaledSize(float64(b.Dx()), float64(b.Dy()), scale)
	}
	if size == src.Bounds().Size() {
		return src, nil
	}

	dst := image.NewRGBA(image.Rectangle{Max: size})
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

func loadSVG(name string, scale float64, fit image.Point) (image.Image, error) {
	data, err := assetFS.ReadFile("assets/" + name + ".svg")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded sprite %s: %w", name, err)
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse sprite %s: %w", name, err)
	}

	size := fit
	if size == (image.Point{}) {
		size = scaledSize(icon.ViewBox.W, icon.ViewBox.H, scale)
	}
	return rasterize(icon, size), nil
}

// rasterize renders icon into a new RGBA image of the given size
func rasterize(icon *oksvg.SvgIcon, size image.Point) *image.RGBA {
	w, h := size.X, size.Y
	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)
	return img
}

func scaledSize(w, h, scale float64) image.Point {
	return image.Pt(
		max(1, int(math.Round(w*scale))),
		max(1, int(math.Round(h*scale))),
	)
}
