package scoring

import (
	"strings"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// BusinessSizeScorer classifies a business as Small, Chain, or Premium from
// its name and awards location bonuses from its address.
type BusinessSizeScorer struct {
	weights           BusinessSizeWeights
	chainIndicators   []string
	premiumIndicators []string
}

// NewBusinessSizeScorer builds a scorer from the scoring configuration.
func NewBusinessSizeScorer(cfg Config) *BusinessSizeScorer {
	return &BusinessSizeScorer{
		weights:           cfg.BusinessSize,
		chainIndicators:   lowerAll(cfg.ChainIndicators),
		premiumIndicators: lowerAll(cfg.PremiumIndicators),
	}
}

// Score matches the business name against the configured chain and premium
// indicator sets and the address against location markers. A business can
// earn both the chain and premium bonuses, but Premium wins the reported
// category. The zip code is accepted for future geographic weighting and
// currently unused.
func (s *BusinessSizeScorer) Score(businessName, address, _ string) (int, model.SizeCategory) {
	score := 0
	category := model.SizeSmall
	name := strings.ToLower(businessName)

	if containsAny(name, s.chainIndicators) {
		score += s.weights.ChainBonus
		category = model.SizeChain
	}

	if containsAny(name, s.premiumIndicators) {
		score += s.weights.PremiumBonus
		// Premium is more specific than Chain.
		category = model.SizePremium
	}

	addr := strings.ToLower(address)
	if strings.Contains(addr, "suite") || strings.Contains(addr, "plaza") {
		score += s.weights.LocationBonus
	}

	return score, category
}

// containsAny reports whether s contains any of the given substrings.
// Empty needles never match.
func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
