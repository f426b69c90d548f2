// Package variety measures utterances along three bounded axes (dispersal,
// intensity, complexity) following Ashby's notion of requisite variety. The
// measures are the control signal for the dialogue regulator.
package variety

import (
	"fmt"
	"math"
)

// #region variety

// Variety is one turn's measure across the three axes. Each value lies in
// [0, 1]. The zero value is a valid "flat" measure.
type Variety struct {
	Dispersal  float64 // structural and rhythmic scatter
	Intensity  float64 // emotional and energetic charge
	Complexity float64 // conceptual density and interrelatedness
}

// New constructs a Variety, failing if any measure falls outside [0, 1]
// or is not a finite number.
func New(dispersal, intensity, complexity float64) (Variety, error) {
	for _, v := range [3]float64{dispersal, intensity, complexity} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0.0 || v > 1.0 {
			return Variety{}, fmt.Errorf("variety measure %v outside [0.0, 1.0]", v)
		}
	}
	return Variety{Dispersal: dispersal, Intensity: intensity, Complexity: complexity}, nil
}

// Mean returns the mean of the three measures.
func (v Variety) Mean() float64 {
	return (v.Dispersal + v.Intensity + v.Complexity) / 3.0
}

// String renders the measures to two decimal places.
func (v Variety) String() string {
	return fmt.Sprintf("disp=%.2f int=%.2f comp=%.2f", v.Dispersal, v.Intensity, v.Complexity)
}

// #endregion variety
