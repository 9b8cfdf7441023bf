package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds one run's parameters.
type Config struct {
	Width          int    // Maze width in cells
	Height         int    // Maze height in cells
	Seed           int64  // Random seed; negative means time-seeded
	CellSize       int    // Pixels per cell in written images
	Border         int    // Pixels of frame around written images
	Output         string // PNG path for the bare maze
	SolutionOutput string // PNG path for the maze with its solution
	GIFOutput      string // GIF path for the animated solution
	GIFDelay       int    // Hundredths of a second per GIF frame
	Print          bool   // Print the maze as text to stdout
	Verbose        bool   // Log every carve and visit
}

// envDefaults seeds flag defaults from the environment, loading a .env
// file first when one exists.
func envDefaults() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[APP] [INFO] .env file could not be loaded: %v", err)
	}
	return Config{
		Width:    getEnvAsInt("MAZE_WIDTH", 25),
		Height:   getEnvAsInt("MAZE_HEIGHT", 25),
		Seed:     int64(getEnvAsInt("MAZE_SEED", -1)),
		CellSize: getEnvAsInt("MAZE_CELL_SIZE", 25),
		Border:   getEnvAsInt("MAZE_BORDER", 0),
		GIFDelay: getEnvAsInt("MAZE_GIF_DELAY", 4),
	}
}

// getEnvAsInt reads key as an integer, falling back to def when the
// variable is unset or malformed.
func getEnvAsInt(key string, def int) int {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[APP] [WARN] %s=%q is not an integer, using %d", key, raw, def)
		return def
	}
	return v
}

// parseConfig reads flags from args over the environment defaults.
func parseConfig(args []string) (Config, error) {
	cfg := envDefaults()
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "The width of the maze, in cells.")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "The height of the maze, in cells.")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "If non-negative, the random seed to use.")
	fs.IntVar(&cfg.CellSize, "cell_size", cfg.CellSize, "Pixels per cell in written images.")
	fs.IntVar(&cfg.Border, "border", cfg.Border, "Pixels of white frame around written images.")
	fs.StringVar(&cfg.Output, "output", "", "PNG file for the unsolved maze.")
	fs.StringVar(&cfg.SolutionOutput, "solution_output", "", "PNG file for the maze with its solution.")
	fs.StringVar(&cfg.GIFOutput, "gif_output", "", "GIF file animating the solution.")
	fs.IntVar(&cfg.GIFDelay, "gif_delay", cfg.GIFDelay, "Hundredths of a second per GIF frame.")
	fs.BoolVar(&cfg.Print, "print", false, "Print the maze as text.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log every carve and visit.")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return Config{}, fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed < 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}
