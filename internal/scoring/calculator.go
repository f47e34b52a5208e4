package scoring

import (
	"github.com/rotisserie/eris"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// PriorityCalculator combines named sub-scores into a weighted total and maps
// the total to a tier and estimated monthly value.
type PriorityCalculator struct {
	weights    map[string]float64
	thresholds TierThresholds
	tiers      map[string]TierDefinition
}

// NewPriorityCalculator fails fast when weights, thresholds, or tier
// definitions are missing from the configuration.
func NewPriorityCalculator(cfg Config) (*PriorityCalculator, error) {
	if len(cfg.Weights) == 0 {
		return nil, eris.New("scoring: calculator requires scoring_weights")
	}
	if cfg.TierThresholds == (TierThresholds{}) {
		return nil, eris.New("scoring: calculator requires tier_thresholds")
	}
	if len(cfg.TierDefinitions) == 0 {
		return nil, eris.New("scoring: calculator requires tier_definitions")
	}
	return &PriorityCalculator{
		weights:    cfg.Weights,
		thresholds: cfg.TierThresholds,
		tiers:      cfg.TierDefinitions,
	}, nil
}

// Calculate sums sub-scores multiplied by their configured weights. Iteration
// runs over the weight keys, so sub-scores without a weight are ignored and
// missing sub-scores contribute zero. The first threshold the total meets or
// exceeds wins, checked hot, warm, cold, then the low catch-all.
func (c *PriorityCalculator) Calculate(subs model.SubScores) (float64, string, string) {
	total := 0.0
	for key, weight := range c.weights {
		total += subs[key] * weight
	}

	var tierKey string
	switch {
	case total >= c.thresholds.Hot:
		tierKey = TierHot
	case total >= c.thresholds.Warm:
		tierKey = TierWarm
	case total >= c.thresholds.Cold:
		tierKey = TierCold
	default:
		tierKey = TierLow
	}

	def, ok := c.tiers[tierKey]
	if !ok {
		// Configuration inconsistency, not a crash.
		return total, "Undefined Tier", "N/A"
	}
	return total, def.Name, def.Value
}
