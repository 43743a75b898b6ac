// cmd/snowfall/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-snowfall/pkg/config"
	"github.com/opd-ai/go-snowfall/pkg/engine"
	"github.com/opd-ai/go-snowfall/pkg/geometry"
	"github.com/opd-ai/go-snowfall/pkg/logging"
	engorender "github.com/opd-ai/go-snowfall/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "snowfall.json", "Path to configuration file")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode")
	width := flag.Int("width", 1024, "Window width")
	height := flag.Int("height", 768, "Window height")
	flag.Parse()

	snowConfig := loadConfiguration(*configPath)

	sim := engine.NewSimulation(snowConfig)
	sim.Source = demoGeometry(*width, *height)

	opts := engo.RunOptions{
		Title:          "Snowfall",
		Width:          *width,
		Height:         *height,
		Fullscreen:     *fullscreen,
		StandardInputs: true,
		NotResizable:   false,
	}

	engo.Run(opts, engorender.NewSnowScene(sim))
}

// loadConfiguration loads the config file, falling back to defaults when the
// file does not exist, and applies environment overrides on top.
func loadConfiguration(path string) *config.SnowConfig {
	var snowConfig *config.SnowConfig

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("Configuration file not found, using default configuration")
		snowConfig = config.DefaultConfig()
	} else {
		var err error
		snowConfig, err = config.LoadConfig(path)
		if err != nil {
			log.Fatal(logging.WrapError(err, "failed to load configuration from %s", path))
		}
	}

	snowConfig.ApplyEnv()
	if len(snowConfig.ObstacleSelectors) == 0 {
		snowConfig.ObstacleSelectors = []string{"#ledge", "#sill"}
	}
	return snowConfig
}

// demoGeometry builds a static obstacle layout so the demo shows accumulation
// without a real layout system behind it.
func demoGeometry(width, height int) geometry.Source {
	w := float64(width)
	h := float64(height)

	source := geometry.NewStaticSource()
	source.Set("#ledge", geometry.Rect{X: w * 0.15, Y: h * 0.45, Width: w * 0.3, Height: 16})
	source.Set("#sill", geometry.Rect{X: w * 0.55, Y: h * 0.7, Width: w * 0.35, Height: 24})
	return source
}
