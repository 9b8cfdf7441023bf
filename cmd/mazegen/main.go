// Command mazegen carves a maze, solves it corner to corner, and writes
// the result as text, PNG stills, or an animated GIF.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvmaze/carve"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/mazeimage"
	"github.com/katalvlaran/lvmaze/solve"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	cfg, err := parseConfig(args)
	if err != nil {
		log.Printf("[APP] [ERROR] %v", err)
		return 1
	}
	runID := uuid.New()
	logf := func(level, format string, v ...any) {
		log.Printf("[APP] [%s] [%s] %s", level, runID, fmt.Sprintf(format, v...))
	}

	var carveOpts []carve.Option
	carveOpts = append(carveOpts, carve.WithSeed(cfg.Seed))
	var solveOpts []solve.Option
	if cfg.Verbose {
		carveOpts = append(carveOpts, carve.WithOnCarve(func(cell, room grid.Coord) {
			logf("DEBUG", "carve %v -> %v", cell, room)
		}))
		solveOpts = append(solveOpts, solve.WithOnVisit(func(c grid.Coord, depth int) {
			logf("DEBUG", "visit %v depth %d", c, depth)
		}))
	}

	g, stats, err := carve.GenerateWithStats(cfg.Width, cfg.Height, carveOpts...)
	if err != nil {
		logf("ERROR", "generating maze: %v", err)
		return 1
	}
	logf("INFO", "generated %dx%d maze, seed %d, %d carves, bridged=%t",
		g.Width(), g.Height(), cfg.Seed, stats.Carves, stats.Bridged)

	start, end := grid.Coord{X: 0, Y: 0}, grid.Coord{X: g.Width() - 1, Y: g.Height() - 1}
	res, err := solve.Solve(g, start, end, solveOpts...)
	if err != nil {
		logf("ERROR", "solving maze: %v", err)
		return 1
	}
	if !res.Found {
		logf("ERROR", "no path from %v to %v", start, end)
		return 1
	}
	logf("INFO", "path %v -> %v has %d cells, %d visited", start, end, res.Path.Len(), len(res.Order))

	if cfg.Print {
		fmt.Fprintln(stdout, g.String())
	}

	imgOpts := []mazeimage.Option{
		mazeimage.WithCellSize(cfg.CellSize),
		mazeimage.WithBorder(cfg.Border),
	}
	if cfg.Output != "" {
		if err := writeStill(cfg.Output, g, solve.Path{}, imgOpts); err != nil {
			logf("ERROR", "%v", err)
			return 1
		}
		logf("INFO", "image %s written", cfg.Output)
	}
	if cfg.SolutionOutput != "" {
		if err := writeStill(cfg.SolutionOutput, g, res.Path, imgOpts); err != nil {
			logf("ERROR", "%v", err)
			return 1
		}
		logf("INFO", "image %s written", cfg.SolutionOutput)
	}
	if cfg.GIFOutput != "" {
		if err := writeAnimation(cfg.GIFOutput, g, res.Path, cfg.GIFDelay, imgOpts); err != nil {
			logf("ERROR", "%v", err)
			return 1
		}
		logf("INFO", "animation %s written", cfg.GIFOutput)
	}
	return 0
}

func writeStill(name string, g *grid.Grid, p solve.Path, opts []mazeimage.Option) error {
	img, err := mazeimage.Render(g, p, opts...)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()
	if err := mazeimage.WritePNG(f, img); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}

func writeAnimation(name string, g *grid.Grid, p solve.Path, delay int, opts []mazeimage.Option) error {
	frames, err := mazeimage.RenderFrames(g, p, opts...)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()
	if err := mazeimage.WriteGIF(f, frames, delay); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return f.Close()
}
