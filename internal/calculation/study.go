package calculation

import (
	"github.com/fundsim/fund-longevity/internal/domain"
)

const (
	// DefaultIterations is the number of runs for the randomized scenario.
	DefaultIterations = 1000

	// ResultBinWidth is the histogram bin width in years.
	ResultBinWidth = 10
)

// StudyConfig configures a longevity study.
type StudyConfig struct {
	Scenario   Scenario
	Iterations int   // randomized scenario only; 0 means DefaultIterations
	Seed       int64 // 0 means clock-seeded
}

// HistogramBin counts runs whose longevity fell inside [MinYears, MaxYears].
type HistogramBin struct {
	MinYears int
	MaxYears int
	Count    int
}

// StudyResult aggregates fund longevity across the runs of one study.
type StudyResult struct {
	Scenario   Scenario
	Iterations int
	Longevity  []int
	Histogram  []HistogramBin

	// FinalState is the state of the last run, kept for inspection of the
	// full per-year value, distribution and growth sequences.
	FinalState *SimulationState
}

// LongevityStudy runs repeated simulations of one scenario against a
// profile and aggregates fund longevity. Deterministic scenarios run once;
// the randomized scenario runs Iterations times, each from a fresh state.
type LongevityStudy struct {
	Profile *domain.Profile
	Config  StudyConfig
	Log     Logger
	Reserve ReservePolicy
}

// NewLongevityStudy builds a study with the no-op logger and the default
// reserve policy.
func NewLongevityStudy(p *domain.Profile, cfg StudyConfig) *LongevityStudy {
	if cfg.Iterations <= 0 {
		cfg.Iterations = DefaultIterations
	}
	return &LongevityStudy{
		Profile: p,
		Config:  cfg,
		Log:     NopLogger{},
		Reserve: FixedTargetPolicy{},
	}
}

// Run executes the study and returns the aggregated result.
func (st *LongevityStudy) Run() (*StudyResult, error) {
	iterations := 1
	if st.Config.Scenario == ScenarioRandomizedRecession {
		iterations = st.Config.Iterations
	}

	generator := NewGrowthCurveGenerator(st.Config.Seed)
	simulator := &FundSimulator{Log: st.Log, Reserve: st.Reserve}

	result := &StudyResult{
		Scenario:   st.Config.Scenario,
		Iterations: iterations,
		Longevity:  make([]int, 0, iterations),
	}

	for iter := 0; iter < iterations; iter++ {
		state, err := NewSimulationState(st.Profile)
		if err != nil {
			return nil, err
		}
		if err := generator.Populate(state, st.Config.Scenario); err != nil {
			return nil, err
		}
		simulator.Run(state)
		result.Longevity = append(result.Longevity, state.FundLongevity)
		result.FinalState = state
	}

	result.Histogram = binLongevity(result.Longevity)
	return result, nil
}

// binLongevity groups longevity values into ResultBinWidth-year bins. The
// last bin collects runs that reached the full horizon.
func binLongevity(values []int) []HistogramBin {
	binCount := domain.MaxYears/ResultBinWidth + 1
	bins := make([]HistogramBin, binCount)
	for b := range bins {
		bins[b].MinYears = b * ResultBinWidth
		bins[b].MaxYears = (b+1)*ResultBinWidth - 1
	}
	bins[binCount-1].MaxYears = domain.MaxYears

	for _, years := range values {
		bins[years/ResultBinWidth].Count++
	}
	return bins
}
