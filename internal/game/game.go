package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/standing-waves/internal/config"
	"github.com/iburimskiy/standing-waves/internal/wave"
)

type state int

const (
	running state = iota
	terminated
)

// Game draws a standing wave on a fixed string every frame.
type Game struct {
	str      wave.String
	wave     wave.Standing
	physical float64
	sampler  wave.Sampler
	segs     []wave.Segment

	clock          *clock
	closeRequested func() bool
	overlay        bool

	state state
}

// New derives the wave constants for s and d and prepares the render loop.
// The clock starts here.
func New(s wave.String, d wave.Driving) (*Game, error) {
	st, err := wave.Derive(s, d)
	if err != nil {
		return nil, err
	}
	physical, err := wave.PhysicalFrequency(s, d)
	if err != nil {
		return nil, err
	}

	sampler := wave.Sampler{
		Wave:      st,
		Amplitude: d.Amplitude,
		Amplifier: config.Amplifier,
		Step:      config.PointStep,
		Width:     config.WindowWidth,
		Height:    config.WindowHeight,
	}
	return &Game{
		str:            s,
		wave:           st,
		physical:       physical,
		sampler:        sampler,
		segs:           make([]wave.Segment, 0, sampler.SampleCount()),
		clock:          newClock(time.Now),
		closeRequested: exitKeyPressed,
		overlay:        config.ShowOverlay,
	}, nil
}

func exitKeyPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

// Wave returns the derived constants.
func (g *Game) Wave() wave.Standing { return g.wave }

func (g *Game) Update() error {
	if g.state == terminated {
		return ebiten.Termination
	}
	if g.closeRequested() {
		g.state = terminated
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawFrame(screenCanvas{dst: screen}, g.clock.Seconds())

	if g.overlay {
		ebitenutil.DebugPrintAt(screen, statusText(g.wave, g.physical, g.clock.Elapsed()), 12, 12)
	}
}

// drawFrame clears c, draws the resting line and strokes the wave at t seconds.
func (g *Game) drawFrame(c canvas, t float64) {
	c.Clear(config.Background)

	c.Line(
		wave.Point{X: 0, Y: g.str.Left.Y},
		wave.Point{X: float64(g.sampler.Width), Y: g.str.Right.Y},
		config.RestLine,
	)

	g.segs = g.sampler.Segments(t, g.segs)
	for _, seg := range g.segs {
		c.Line(seg.From, seg.To, config.WaveLine)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sampler.Width, g.sampler.Height
}
