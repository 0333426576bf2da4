package emitters

import "fmt"

// Uniform implements no radiative operation of its own: everything it
// radiates comes from the derived defaults, which makes it the reference
// model for the fallback chain.
type Uniform struct{}

func NewUniform() *Uniform { return &Uniform{} }

func (*Uniform) Kind() string { return "uniform" }

func (*Uniform) Params() map[string]float64 { return map[string]float64{} }

func (*Uniform) SetParam(name string, _ float64) error {
	return fmt.Errorf("unknown param: %s", name)
}
