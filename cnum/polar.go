// SPDX-License-Identifier: MIT

package cnum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Polar is the (ρ, θ) representation of a complex number.
type Polar struct {
	Rho   float64 // modulus, ≥ 0
	Theta float64 // argument in (-π, π]
}

// ToPolar converts z to polar form.
func ToPolar(z complex128) Polar {
	rho, theta := cmplx.Polar(z)

	return Polar{Rho: rho, Theta: theta}
}

// FromPolar returns ρ·e^{iθ}.
func FromPolar(rho, theta float64) complex128 { return cmplx.Rect(rho, theta) }

// Complex converts p back to rectangular form.
func (p Polar) Complex() complex128 { return FromPolar(p.Rho, p.Theta) }

// String prints "(ρ,θ)" with θ reduced modulo 2π.
func (p Polar) String() string {
	return fmt.Sprintf("(%g,%g)", p.Rho, math.Mod(p.Theta, 2*math.Pi))
}
