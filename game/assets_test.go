package game

import (
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedImages(t *testing.T) {
	cfg := DefaultConfig()
	imgs, err := LoadImages(cfg)
	require.NoError(t, err)

	assert.Equal(t, image.Pt(cfg.ScreenWidth, cfg.ScreenHeight), imgs.Background.Bounds().Size())
	assert.Equal(t, image.Pt(100, 70), imgs.Player.Bounds().Size())
	assert.Equal(t, image.Pt(32, 32), imgs.Crosshair.Bounds().Size())
	assert.Equal(t, image.Pt(34, 11), imgs.Bullet.Bounds().Size())

	_, _, _, a := imgs.Background.At(cfg.ScreenWidth/2, cfg.ScreenHeight/2).RGBA()
	assert.Equal(t, uint32(0xffff), a, "background is opaque")
}

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{200, 40, 40, 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
}

func TestLoadPNGOverrides(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{SpriteBackground, SpritePlayer, SpriteCrosshair, SpriteBullet} {
		writeTestPNG(t, filepath.Join(dir, name+".png"), 10, 8)
	}

	cfg := DefaultConfig()
	cfg.AssetDir = dir
	cfg.ScreenWidth, cfg.ScreenHeight = 64, 48
	cfg.PlayerScale = 2
	cfg.CrosshairScale = 1
	cfg.BulletScale = 0.5

	imgs, err := LoadImages(cfg)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(64, 48), imgs.Background.Bounds().Size())
	assert.Equal(t, image.Pt(20, 16), imgs.Player.Bounds().Size())
	assert.Equal(t, image.Pt(10, 8), imgs.Crosshair.Bounds().Size())
	assert.Equal(t, image.Pt(5, 4), imgs.Bullet.Bounds().Size())
}

func TestLoadImagesMissingFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AssetDir = t.TempDir()

	_, err := LoadImages(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "background.png")
}

func TestLoadImagesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "background.png"), []byte("not a png"), 0644))

	cfg := DefaultConfig()
	cfg.AssetDir = dir

	_, err := LoadImages(cfg)
	assert.ErrorContains(t, err, "failed to decode sprite")
}
