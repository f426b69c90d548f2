package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/liminal-ware/querent/internal/homeostat"
	"github.com/liminal-ware/querent/internal/regulate"
	"github.com/liminal-ware/querent/internal/variety"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description     string                  `json:"description"`
	Config          FixtureConfig           `json:"config"`
	Utterances      []FixtureUtterance      `json:"utterances"`
	ExpectedResults []FixtureExpectedResult `json:"expected_results"`
}

// FixtureUtterance is one recorded user turn.
type FixtureUtterance struct {
	TurnID string `json:"turn_id"`
	Text   string `json:"text"`
}

// FixtureExpectedResult captures the expected regulation outcome per turn.
type FixtureExpectedResult struct {
	TurnID   string `json:"turn_id"`
	State    string `json:"state"`
	Rule     string `json:"rule,omitempty"`
	Override bool   `json:"override,omitempty"`
}

// FixtureConfig bundles the assessment and regulation configs for a run.
type FixtureConfig struct {
	Variety  FixtureVarietyConfig  `json:"variety"`
	Regulate FixtureRegulateConfig `json:"regulate"`
}

// FixtureVarietyConfig mirrors variety.Config with JSON tags.
type FixtureVarietyConfig struct {
	MaxInputLen int                      `json:"max_input_len"`
	Window      int                      `json:"window"`
	Dispersal   FixtureDispersalWeights  `json:"dispersal"`
	Intensity   FixtureIntensityWeights  `json:"intensity"`
	Complexity  FixtureComplexityWeights `json:"complexity"`
}

// FixtureDispersalWeights mirrors variety.DispersalWeights with JSON tags.
type FixtureDispersalWeights struct {
	Scatter    float64 `json:"scatter"`
	Disruption float64 `json:"disruption"`
	Breaks     float64 `json:"breaks"`
	Gain       float64 `json:"gain"`
}

// FixtureIntensityWeights mirrors variety.IntensityWeights with JSON tags.
type FixtureIntensityWeights struct {
	Pressure   float64 `json:"pressure"`
	Embodied   float64 `json:"embodied"`
	Shifts     float64 `json:"shifts"`
	Repetition float64 `json:"repetition"`
	HotBoost   float64 `json:"hot_boost"`
	Gain       float64 `json:"gain"`
}

// FixtureComplexityWeights mirrors variety.ComplexityWeights with JSON tags.
type FixtureComplexityWeights struct {
	Connections float64 `json:"connections"`
	Shifts      float64 `json:"shifts"`
	Abstraction float64 `json:"abstraction"`
	Movement    float64 `json:"movement"`
	Recursion   float64 `json:"recursion"`
	Gain        float64 `json:"gain"`
}

// FixtureRegulateConfig mirrors regulate.Config with JSON tags.
type FixtureRegulateConfig struct {
	OverloadIntensity float64 `json:"overload_intensity"`
	OverloadDispersal float64 `json:"overload_dispersal"`
	HighMean          float64 `json:"high_mean"`
	HighDispersal     float64 `json:"high_dispersal"`
	HighComplexity    float64 `json:"high_complexity"`
	StuckPersistence  int     `json:"stuck_persistence"`
	StuckMomentum     float64 `json:"stuck_momentum"`
	LowComplexity     float64 `json:"low_complexity"`
	EmergeTurns       int     `json:"emerge_turns"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToHomeostatConfig converts a FixtureConfig to a domain homeostat.Config.
// An all-zero fixture config yields the defaults, so fixtures that only
// record utterances and expectations need no config block.
func (fc *FixtureConfig) ToHomeostatConfig() homeostat.Config {
	if *fc == (FixtureConfig{}) {
		return homeostat.DefaultConfig()
	}
	return homeostat.Config{
		Variety: variety.Config{
			MaxInputLen: fc.Variety.MaxInputLen,
			Window:      fc.Variety.Window,
			Dispersal: variety.DispersalWeights{
				Scatter:    fc.Variety.Dispersal.Scatter,
				Disruption: fc.Variety.Dispersal.Disruption,
				Breaks:     fc.Variety.Dispersal.Breaks,
				Gain:       fc.Variety.Dispersal.Gain,
			},
			Intensity: variety.IntensityWeights{
				Pressure:   fc.Variety.Intensity.Pressure,
				Embodied:   fc.Variety.Intensity.Embodied,
				Shifts:     fc.Variety.Intensity.Shifts,
				Repetition: fc.Variety.Intensity.Repetition,
				HotBoost:   fc.Variety.Intensity.HotBoost,
				Gain:       fc.Variety.Intensity.Gain,
			},
			Complexity: variety.ComplexityWeights{
				Connections: fc.Variety.Complexity.Connections,
				Shifts:      fc.Variety.Complexity.Shifts,
				Abstraction: fc.Variety.Complexity.Abstraction,
				Movement:    fc.Variety.Complexity.Movement,
				Recursion:   fc.Variety.Complexity.Recursion,
				Gain:        fc.Variety.Complexity.Gain,
			},
		},
		Regulate: regulate.Config{
			OverloadIntensity: fc.Regulate.OverloadIntensity,
			OverloadDispersal: fc.Regulate.OverloadDispersal,
			HighMean:          fc.Regulate.HighMean,
			HighDispersal:     fc.Regulate.HighDispersal,
			HighComplexity:    fc.Regulate.HighComplexity,
			StuckPersistence:  fc.Regulate.StuckPersistence,
			StuckMomentum:     fc.Regulate.StuckMomentum,
			LowComplexity:     fc.Regulate.LowComplexity,
			EmergeTurns:       fc.Regulate.EmergeTurns,
		},
	}
}

// #endregion fixture-loader
