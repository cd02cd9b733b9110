package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"topdown/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ttacon/chalk"
)

func main() {
	config := game.DefaultConfig()

	flag.IntVar(&config.ScreenWidth, "width", config.ScreenWidth, "window width in pixels")
	flag.IntVar(&config.ScreenHeight, "height", config.ScreenHeight, "window height in pixels")
	flag.IntVar(&config.TPS, "tps", config.TPS, "fixed tick rate")
	flag.IntVar(&config.ShootCooldown, "cooldown", config.ShootCooldown, "ticks between shots")
	flag.Int64Var(&config.BulletLifetime, "bullet-lifetime", config.BulletLifetime, "bullet lifetime in milliseconds")
	flag.StringVar(&config.AssetDir, "assets", "", "directory with background/player/crosshair/bullet PNGs (default: embedded sprites)")
	flag.StringVar(&config.ProfileDir, "profiles", "", "capture CPU profiles into this directory on tick rate drops")
	flag.BoolVar(&config.Debug, "debug", false, "start with the debug overlay (toggle with F1)")
	flag.BoolVar(&config.Verbose, "verbose", false, "log bullet spawns and expiries")
	looseTrigger := flag.Bool("loose-trigger", false, "fire whenever the left button is down, even with other buttons held")
	flag.Parse()

	config.StrictTrigger = !*looseTrigger
	config.MinTPS = float64(config.TPS) - 5

	if err := config.Validate(); err != nil {
		fatal("Invalid configuration", err)
	}

	imgs, err := game.LoadImages(config)
	if err != nil {
		fatal("Error loading images", err)
	}
	if config.AssetDir != "" {
		log.Printf("Loaded sprites from %s", config.AssetDir)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Top-down Shooter")
	ebiten.SetTPS(config.TPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	g := game.NewGame(config, game.NewSprites(imgs), game.NewEbitenInput(), game.NewEbitenEvents(), game.NewWallClock())

	log.Printf("Starting game loop at %d TPS (%dx%d)", config.TPS, config.ScreenWidth, config.ScreenHeight)
	if err := ebiten.RunGame(g); err != nil {
		fatal("Game loop failed", err)
	}
}

// fatal logs msg and err in red and exits
func fatal(msg string, err error) {
	fmt.Print(chalk.Red)
	log.Print(msg, ": ", err, chalk.Reset)
	os.Exit(1)
}
