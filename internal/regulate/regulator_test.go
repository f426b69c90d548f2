package regulate

import (
	"testing"

	"github.com/liminal-ware/querent/internal/environment"
	"github.com/liminal-ware/querent/internal/variety"
)

func mustVariety(t *testing.T, d, i, c float64) variety.Variety {
	t.Helper()
	v, err := variety.New(d, i, c)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func next(t *testing.T, r *Regulator, v variety.Variety, env *environment.Environment) Decision {
	t.Helper()
	d, err := r.Next(v, env)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSafetyOverrideFromAnyState(t *testing.T) {
	r := NewRegulator(DefaultConfig())
	hot := mustVariety(t, 0.0, 0.95, 0.5)
	scattered := mustVariety(t, 0.95, 0.0, 0.5)

	for _, state := range environment.States() {
		env := environment.New()
		env.Update(mustVariety(t, 0.3, 0.3, 0.3), state)

		for _, v := range []variety.Variety{hot, scattered} {
			d := next(t, r, v, env)
			if d.Target != environment.Settling {
				t.Fatalf("overload from %s should settle, got %s", state, d.Target)
			}
			if !d.Override {
				t.Fatal("expected override decision")
			}
		}
	}
}

func TestOrderedRules(t *testing.T) {
	r := NewRegulator(DefaultConfig())
	cases := []struct {
		name   string
		v      variety.Variety
		target environment.State
		rule   string
	}{
		{"high mean wins first", mustVariety(t, 0.85, 0.85, 0.85), environment.Containing, "high_total_variety"},
		{"scattered", mustVariety(t, 0.75, 0.1, 0.5), environment.Dwelling, "scattered"},
		{"dense", mustVariety(t, 0.1, 0.1, 0.75), environment.Containing, "dense"},
		{"flat", mustVariety(t, 0.1, 0.1, 0.1), environment.Settling, "flat"},
		{"middle ground emerges", mustVariety(t, 0.3, 0.3, 0.4), environment.Emerging, "emerging"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := environment.New()
			d := next(t, r, tc.v, env)
			if d.Target != tc.target {
				t.Fatalf("expected %s, got %s (rule %s)", tc.target, d.Target, d.Rule)
			}
			if d.Rule != tc.rule {
				t.Fatalf("expected rule %s, got %s", tc.rule, d.Rule)
			}
		})
	}
}

// A scattered-and-dense measure must resolve by list position: dispersal
// beats complexity because its rule comes first.
func TestTieBreakByPosition(t *testing.T) {
	r := NewRegulator(DefaultConfig())
	v := mustVariety(t, 0.75, 0.0, 0.75)
	d := next(t, r, v, environment.New())
	if d.Target != environment.Dwelling {
		t.Fatalf("dispersal rule should win by position, got %s (%s)", d.Target, d.Rule)
	}
}

func TestStalledSessionExpands(t *testing.T) {
	r := NewRegulator(DefaultConfig())
	env := environment.New()
	v := mustVariety(t, 0.3, 0.3, 0.4)

	// Hold the same state until persistence crosses the stuck threshold.
	for i := 0; i < 5; i++ {
		env.Update(v, environment.Emerging)
	}
	if env.Persistence() <= DefaultConfig().StuckPersistence {
		t.Fatalf("setup failed, persistence %d", env.Persistence())
	}

	d := next(t, r, v, env)
	if d.Target != environment.Expanding {
		t.Fatalf("stalled session should expand, got %s (%s)", d.Target, d.Rule)
	}
}

func TestDeterministicDecision(t *testing.T) {
	v := mustVariety(t, 0.4, 0.4, 0.4)
	for i := 0; i < 3; i++ {
		r := NewRegulator(DefaultConfig())
		env := environment.New()
		d1 := next(t, r, v, env)
		d2 := next(t, r, v, env)
		if d1 != d2 {
			t.Fatalf("same inputs gave %+v then %+v", d1, d2)
		}
	}
}

func TestEmergedSignal(t *testing.T) {
	r := NewRegulator(DefaultConfig())
	env := environment.New()
	v := mustVariety(t, 0.3, 0.3, 0.4)

	env.Update(v, environment.Emerging) // persistence 0
	if r.Emerged(env) {
		t.Fatal("one emerging turn should not signal hand-off")
	}
	env.Update(v, environment.Emerging) // persistence 1
	if r.Emerged(env) {
		t.Fatal("two emerging turns should not signal hand-off yet")
	}
	env.Update(v, environment.Emerging) // persistence 2
	if !r.Emerged(env) {
		t.Fatal("sustained emerging should signal hand-off")
	}

	env.Update(v, environment.Settling)
	if r.Emerged(env) {
		t.Fatal("leaving emerging should clear the signal")
	}
}
