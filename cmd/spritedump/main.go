package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"topdown/game"
)

// spritedump writes the embedded sprites as unscaled PNG files so they can
// be edited and loaded back with -assets
func main() {
	outDir := flag.String("out", "assets", "output directory")
	width := flag.Int("width", game.DefaultConfig().ScreenWidth, "background width in pixels")
	height := flag.Int("height", game.DefaultConfig().ScreenHeight, "background height in pixels")
	flag.Parse()

	config := game.DefaultConfig()
	config.ScreenWidth = *width
	config.ScreenHeight = *height
	config.PlayerScale = 1
	config.CrosshairScale = 1
	config.BulletScale = 1

	imgs, err := game.LoadImages(config)
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("Failed to create %s: %v", *outDir, err)
	}

	sprites := map[string]image.Image{
		game.SpriteBackground: imgs.Background,
		game.SpritePlayer:     imgs.Player,
		game.SpriteCrosshair:  imgs.Crosshair,
		game.SpriteBullet:     imgs.Bullet,
	}
	for name, img := range sprites {
		path := filepath.Join(*outDir, name+".png")
		if err := writePNG(path, img); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		b := img.Bounds()
		fmt.Printf("%s: %dx%d\n", path, b.Dx(), b.Dy())
	}
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
