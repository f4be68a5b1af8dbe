//go:build ebiten

package preview

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/san-kum/chaoswatch/internal/overlay"
	"github.com/san-kum/chaoswatch/internal/raster"
	"github.com/san-kum/chaoswatch/internal/sim"
)

// Game adapts a Simulator to the ebiten.Game interface.
type Game struct {
	cfg   sim.Config
	sim   *sim.Simulator
	face  *overlay.Face
	frame *raster.FrameBuffer
	img   *ebiten.Image
	buf   []byte

	scale    int
	every    int
	ticks    int
	paused   bool
	tickOnce bool
}

func newGame(cfg sim.Config, face *overlay.Face, scale, delayMs int) (*Game, error) {
	s, err := sim.New(cfg)
	if err != nil {
		return nil, err
	}
	size := cfg.Viewport.Size
	g := &Game{
		cfg:   cfg,
		sim:   s,
		face:  face,
		img:   ebiten.NewImage(size, size),
		buf:   make([]byte, 4*size*size),
		scale: max(scale, 1),
		every: ticksPerFrame(delayMs, ebiten.TPS()),
	}
	g.advance()
	return g, nil
}

func (g *Game) advance() {
	fb := g.sim.RenderFrame()
	if g.face != nil {
		g.face.Draw(fb)
	}
	g.frame = fb
	fillRGBA(g.buf, fb)
	g.img.WritePixels(g.buf)
}

// Update handles per-tick input and advances the animation at the
// configured frame rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s, err := sim.New(g.cfg)
		if err != nil {
			return err
		}
		g.sim = s
		g.advance()
	}

	if g.tickOnce {
		g.tickOnce = false
		g.advance()
		return nil
	}
	if g.paused {
		return nil
	}
	g.ticks++
	if g.ticks >= g.every {
		g.ticks = 0
		g.advance()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	n := g.cfg.Viewport.Size * g.scale
	return n, n
}

// Run blocks until the window is closed.
func Run(cfg sim.Config, face *overlay.Face, scale, delayMs int) error {
	g, err := newGame(cfg, face, scale, delayMs)
	if err != nil {
		return err
	}
	n := cfg.Viewport.Size * g.scale
	ebiten.SetWindowTitle("chaoswatch")
	ebiten.SetWindowSize(n, n)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
