package radiative

// TransferCoefs carries per-channel Stokes emission (I, Q, U, V),
// absorption (AlphaI..AlphaV) and Faraday rotation/conversion
// (RotQ..RotV) coefficients across the polarized transfer step.
type TransferCoefs struct {
	I, Q, U, V                     []float64
	AlphaI, AlphaQ, AlphaU, AlphaV []float64
	RotQ, RotU, RotV               []float64
}

// NewTransferCoefs allocates coefficient arrays for nbnu channels in a
// single backing buffer.
func NewTransferCoefs(nbnu int) *TransferCoefs {
	buf := make([]float64, 11*nbnu)
	return &TransferCoefs{
		I:      buf[0*nbnu : 1*nbnu],
		Q:      buf[1*nbnu : 2*nbnu],
		U:      buf[2*nbnu : 3*nbnu],
		V:      buf[3*nbnu : 4*nbnu],
		AlphaI: buf[4*nbnu : 5*nbnu],
		AlphaQ: buf[5*nbnu : 6*nbnu],
		AlphaU: buf[6*nbnu : 7*nbnu],
		AlphaV: buf[7*nbnu : 8*nbnu],
		RotQ:   buf[8*nbnu : 9*nbnu],
		RotU:   buf[9*nbnu : 10*nbnu],
		RotV:   buf[10*nbnu : 11*nbnu],
	}
}

// Channels returns the number of spectral channels.
func (c *TransferCoefs) Channels() int { return len(c.I) }
