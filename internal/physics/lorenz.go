package physics

import (
	"fmt"

	"github.com/san-kum/chaoswatch/internal/dynamo"
)

// Classic chaotic regime.
const (
	LorenzSigma = 10.0
	LorenzRho   = 28.0
	LorenzBeta  = 8.0 / 3.0
)

type Lorenz struct{ sigma, rho, beta float64 }

func NewLorenz() *Lorenz { return &Lorenz{LorenzSigma, LorenzRho, LorenzBeta} }

// NewLorenzWith builds the system with explicit coefficients.
func NewLorenzWith(sigma, rho, beta float64) *Lorenz { return &Lorenz{sigma, rho, beta} }

func (l *Lorenz) StateDim() int   { return 3 }
func (l *Lorenz) ControlDim() int { return 0 }

// Derive calculates the Lorenz attractor derivatives.
func (l *Lorenz) Derive(s dynamo.State, _ dynamo.Control, _ float64) dynamo.State {
	return dynamo.State{l.sigma * (s[1] - s[0]), s[0]*(l.rho-s[2]) - s[1], s[0]*s[1] - l.beta*s[2]}
}
func (l *Lorenz) DefaultState() dynamo.State { return dynamo.State{1.0, 1.0, 1.0} }
func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "rho": l.rho, "beta": l.beta}
}
func (l *Lorenz) SetParam(n string, v float64) error {
	switch n {
	case "sigma":
		l.sigma = v
	case "rho":
		l.rho = v
	case "beta":
		l.beta = v
	default:
		return fmt.Errorf("lorenz: unknown parameter %q: %w", n, dynamo.ErrParameterBounds)
	}
	return nil
}
