package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/standing-waves/internal/config"
	"github.com/iburimskiy/standing-waves/internal/game"
)

func run() error {
	g, err := game.New(config.String(), config.Inputs())
	if err != nil {
		return fmt.Errorf("derive wave: %w", err)
	}

	st := g.Wave()
	log.Printf("Standing wave: v=%.2f f=%.2f Hz ω=%.2f rad/s λ=%.2f k=%.6f",
		st.Velocity, st.Frequency, st.Omega, st.Wavelength, st.WaveNumber)

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TargetTPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Printf("Fatal: %v", err)
		if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
			log.Printf("Error dialog failed: %v", derr)
		}
		os.Exit(1)
	}
}
