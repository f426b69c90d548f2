package variety

// #region config

// DispersalWeights combines the rhythm sub-scores into one dispersal value.
type DispersalWeights struct {
	Scatter    float64 `yaml:"scatter"`    // sentence-length variance
	Disruption float64 `yaml:"disruption"` // flow-disruption punctuation density
	Breaks     float64 `yaml:"breaks"`     // line/sentence break density
	Gain       float64 `yaml:"gain"`       // fixed multiplier before clamping
}

// IntensityWeights combines the charge sub-scores into one intensity value.
type IntensityWeights struct {
	Pressure   float64 `yaml:"pressure"`   // hot/cool marker pressure
	Embodied   float64 `yaml:"embodied"`   // somatic and personal reference density
	Shifts     float64 `yaml:"shifts"`     // cross-sentence polarity shifts
	Repetition float64 `yaml:"repetition"` // immediate word repetition
	HotBoost   float64 `yaml:"hot_boost"`  // extra weighting applied to hot markers
	Gain       float64 `yaml:"gain"`
}

// ComplexityWeights combines the density sub-scores into one complexity value.
type ComplexityWeights struct {
	Connections float64 `yaml:"connections"` // connective word density
	Shifts      float64 `yaml:"shifts"`      // tense / viewpoint shifts
	Abstraction float64 `yaml:"abstraction"` // abstraction vocabulary density
	Movement    float64 `yaml:"movement"`    // scale/time/space movement terms
	Recursion   float64 `yaml:"recursion"`   // self-referential term density
	Gain        float64 `yaml:"gain"`
}

// Config holds every weight and threshold used by the Assessor. All knobs
// live here rather than in the scoring code.
type Config struct {
	MaxInputLen int `yaml:"max_input_len"` // utterances longer than this are rejected

	// Window > 1 averages the last Window per-utterance measures instead of
	// assessing each utterance in isolation. Default is 1.
	Window int `yaml:"window"`

	Dispersal  DispersalWeights  `yaml:"dispersal"`
	Intensity  IntensityWeights  `yaml:"intensity"`
	Complexity ComplexityWeights `yaml:"complexity"`
}

// DefaultConfig returns the canonical weights.
func DefaultConfig() Config {
	return Config{
		MaxInputLen: 1000,
		Window:      1,
		Dispersal: DispersalWeights{
			Scatter:    0.5,
			Disruption: 0.3,
			Breaks:     0.2,
			Gain:       2.0,
		},
		Intensity: IntensityWeights{
			Pressure:   0.40,
			Embodied:   0.25,
			Shifts:     0.20,
			Repetition: 0.15,
			HotBoost:   2.0,
			Gain:       2.5,
		},
		Complexity: ComplexityWeights{
			Connections: 0.30,
			Shifts:      0.25,
			Abstraction: 0.25,
			Movement:    0.10,
			Recursion:   0.10,
			Gain:        2.5,
		},
	}
}

// #endregion config
