//go:build !ebiten

package preview

import (
	"github.com/san-kum/chaoswatch/internal/overlay"
	"github.com/san-kum/chaoswatch/internal/sim"
)

// Run always fails in the headless build.
func Run(sim.Config, *overlay.Face, int, int) error {
	return ErrUnavailable
}
