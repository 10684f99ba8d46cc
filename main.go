package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/cord/internal/config"
	"github.com/olivier-w/cord/internal/render"
	"github.com/olivier-w/cord/internal/ui"
)

func main() {
	envFile := flag.String("env", ".env", "file with CORD_* overrides")
	snapshot := flag.String("snapshot", "", "simulate without a terminal UI and write a PNG to this path")
	steps := flag.Int("steps", 400, "frames to simulate before the headless snapshot")
	pluck := flag.Float64("pluck", 0, "pull the middle of the cord down this far before a headless run")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *snapshot != "" {
		if err := runHeadless(cfg, *snapshot, *steps, *pluck); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The TUI owns stdout, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "cord")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	model := ui.New(cfg, lipgloss.HasDarkBackground())
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless advances the simulation steps frames and renders the result.
func runHeadless(cfg config.Config, path string, steps int, pluck float64) error {
	if steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", steps)
	}
	c := cfg.NewCord()
	if pluck != 0 {
		mid := c.Points()[c.Len()/2].Pos()
		c.Drag(mid.X, mid.Y+pluck, 0, pluck)
	}
	for range steps {
		c.Update()
	}
	log.Printf("simulated %d frames (%.2fs) of a %.0f-unit cord, energy %.1f",
		steps, float64(steps)/cfg.Sim.FrameRate, c.Length(), c.Energy())

	return render.SavePNG(c, path, cfg.Width, cfg.Height, cfg.SnapshotDPI, fmt.Sprintf("frame %d", steps))
}
