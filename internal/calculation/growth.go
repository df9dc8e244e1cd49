package calculation

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/fundsim/fund-longevity/internal/domain"
	"github.com/shopspring/decimal"
)

// Scenario selects a growth-curve strategy.
type Scenario int

const (
	// ScenarioConstant applies each account's average rate to every year.
	ScenarioConstant Scenario = iota

	// ScenarioYear0Loss replays the predefined worst-case market curve.
	ScenarioYear0Loss

	// ScenarioRandomizedRecession draws a stochastic curve of recessions
	// and recoveries around the long-run market average.
	ScenarioRandomizedRecession
)

func (s Scenario) String() string {
	switch s {
	case ScenarioConstant:
		return "constant growth"
	case ScenarioYear0Loss:
		return "predefined year-0 loss"
	case ScenarioRandomizedRecession:
		return "randomized recession"
	default:
		return fmt.Sprintf("scenario(%d)", int(s))
	}
}

// ErrUnknownScenario is returned when a scenario selector is not one of the
// supported strategies. Callers must treat it as a configuration error;
// the growth curves are left unpopulated.
var ErrUnknownScenario = errors.New("unknown growth scenario")

// RecessionModel holds the market assumptions behind the randomized curve.
type RecessionModel struct {
	// MarketAverage is the nominal long-run market growth rate the full
	// sequence should approximate, and the denominator of each account's
	// participation ratio.
	MarketAverage float64

	// Span is the full width of the uniform band non-recession years draw
	// from.
	Span float64

	// SeverityMin and SeverityMax bound the (negative) growth assigned to
	// a recession year.
	SeverityMin float64
	SeverityMax float64

	// RecoveryGapMin and RecoveryGapMax bound the draw for the years
	// between a recession and its first recovery year. Draws take the form
	// Min + r mod (Max-Min), so Max itself is never drawn.
	RecoveryGapMin int
	RecoveryGapMax int

	// RecessionGapMin and RecessionGapMax bound the draw for the years
	// until the next recession, with the same modulo form.
	RecessionGapMin int
	RecessionGapMax int

	// StartWindow is the modulus applied to the first recession-year draw.
	// The default of 1 pins the first recession to year 0; widen it to let
	// the first shock float.
	StartWindow int
}

// DefaultRecessionModel carries S&P-derived historical assumptions:
// 11.3% long-run average, recessions of -45% to -15% every 8 to 10 years,
// each followed by a two-year half rebound after a 1 to 3 year gap.
func DefaultRecessionModel() RecessionModel {
	return RecessionModel{
		MarketAverage:   0.113,
		Span:            0.2,
		SeverityMin:     -0.45,
		SeverityMax:     -0.15,
		RecoveryGapMin:  1,
		RecoveryGapMax:  4,
		RecessionGapMin: 8,
		RecessionGapMax: 11,
		StartWindow:     1,
	}
}

// Bounds of the uniform integer source all randomized draws reduce from.
const (
	randomDrawMin = 1
	randomDrawMax = 100
)

// GrowthCurveGenerator fills per-account growth-rate sequences for one of
// the supported market scenarios. The random source is held by the
// generator so runs are reproducible under a fixed seed.
type GrowthCurveGenerator struct {
	Model RecessionModel
	rng   *rand.Rand
}

// NewGrowthCurveGenerator builds a generator with the default recession
// model. A seed of 0 selects a clock-based seed.
func NewGrowthCurveGenerator(seed int64) *GrowthCurveGenerator {
	if seed == 0 {
		seed = seedFunc()
	}
	return &GrowthCurveGenerator{
		Model: DefaultRecessionModel(),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// draw returns a uniform integer in [randomDrawMin, randomDrawMax].
func (g *GrowthCurveGenerator) draw() int {
	return randomDrawMin + g.rng.Intn(randomDrawMax-randomDrawMin+1)
}

// Populate fills every account's growth-rate sequence under the given
// scenario. The constant scenario uses each account's own average with no
// common-curve step; the other scenarios build one market-wide curve and
// scale it per account by min(growthRateAvg/MarketAverage, 1), so no
// account exceeds full market participation.
func (g *GrowthCurveGenerator) Populate(s *SimulationState, scenario Scenario) error {
	common := make([]float64, domain.MaxYears)

	switch scenario {
	case ScenarioConstant:
		for _, account := range s.Accounts {
			for n := range account.GrowthRates {
				account.GrowthRates[n] = account.GrowthRateAvg
			}
		}
		return nil

	case ScenarioYear0Loss:
		copy(common, Year0LossCurve)

	case ScenarioRandomizedRecession:
		g.generateRecessionCurve(common)

	default:
		return fmt.Errorf("%w: %d", ErrUnknownScenario, int(scenario))
	}

	one := decimal.NewFromInt(1)
	market := decimal.NewFromFloat(g.Model.MarketAverage)
	for _, account := range s.Accounts {
		ratio := account.GrowthRateAvg.Div(market)
		if ratio.GreaterThan(one) {
			ratio = one
		}
		for n := range account.GrowthRates {
			account.GrowthRates[n] = decimal.NewFromFloat(common[n]).Mul(ratio)
		}
	}
	return nil
}

// generateRecessionCurve writes one stochastic market curve into common:
// recessions spaced by the recession gap, each followed by a two-year half
// rebound, with every remaining year drawn from a band whose center is
// lifted so the full sequence still averages near MarketAverage.
func (g *GrowthCurveGenerator) generateRecessionCurve(common []float64) {
	m := g.Model

	for n := range common {
		common[n] = 0
	}

	// Years consumed by recessions and recoveries so far.
	rrYears := 0

	n := g.draw() % m.StartWindow
	for n < len(common) {
		normalized := float64(g.draw()) / randomDrawMax
		severity := m.SeverityMin + normalized*(m.SeverityMax-m.SeverityMin)
		halfRebound := -severity / 2

		common[n] = severity
		rrYears++

		recoveryGap := m.RecoveryGapMin + g.draw()%(m.RecoveryGapMax-m.RecoveryGapMin)
		if n+recoveryGap >= len(common) {
			break
		}
		n += recoveryGap
		common[n] = halfRebound
		rrYears++

		if n+1 >= len(common) {
			break
		}
		n++
		common[n] = halfRebound
		rrYears++

		n += m.RecessionGapMin + g.draw()%(m.RecessionGapMax-m.RecessionGapMin)
	}

	// The non-recession years compensate for the shocks: their band is
	// centered on an average lifted above the nominal one.
	liftedAvg := m.MarketAverage * float64(len(common)) / float64(len(common)-rrYears)
	for n := range common {
		if common[n] == 0 {
			common[n] = (liftedAvg - m.Span/2) + float64(g.draw())/randomDrawMax*m.Span
		}
	}
}
