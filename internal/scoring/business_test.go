package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

func TestBusinessSizeScorer_ChainWithSuite(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BusinessSize = BusinessSizeWeights{ChainBonus: 15, PremiumBonus: 10, LocationBonus: 5}

	s := NewBusinessSizeScorer(cfg)
	score, category := s.Score("Gold's Gym Suite 200", "4500 Main St Suite 200", "75201")

	assert.Equal(t, 20, score, "chain bonus + location bonus")
	assert.Equal(t, model.SizeChain, category)
}

func TestBusinessSizeScorer_PremiumOverridesChain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ChainIndicators = []string{"gold's gym"}
	cfg.PremiumIndicators = []string{"athletic club"}

	s := NewBusinessSizeScorer(cfg)
	score, category := s.Score("Gold's Gym Athletic Club", "", "")

	assert.Equal(t, cfg.BusinessSize.ChainBonus+cfg.BusinessSize.PremiumBonus, score,
		"both bonuses sum when both indicator sets match")
	assert.Equal(t, model.SizePremium, category, "premium overrides chain")
}

func TestBusinessSizeScorer_SmallByDefault(t *testing.T) {
	s := NewBusinessSizeScorer(DefaultConfig())

	score, category := s.Score("Joe's Garage Gym", "12 Oak Lane", "")
	assert.Equal(t, 0, score)
	assert.Equal(t, model.SizeSmall, category)
}

func TestBusinessSizeScorer_CaseInsensitiveMatching(t *testing.T) {
	cfg := DefaultConfig()
	s := NewBusinessSizeScorer(cfg)

	score, category := s.Score("PLANET FITNESS OF DALLAS", "", "")
	assert.Equal(t, cfg.BusinessSize.ChainBonus, score)
	assert.Equal(t, model.SizeChain, category)

	score, _ = s.Score("CrossFit Uptown", "THE PLAZA, UNIT 4", "")
	assert.Equal(t, cfg.BusinessSize.PremiumBonus+cfg.BusinessSize.LocationBonus, score)
}

func TestBusinessSizeScorer_EmptyInputs(t *testing.T) {
	s := NewBusinessSizeScorer(DefaultConfig())

	score, category := s.Score("", "", "")
	assert.Equal(t, 0, score, "empty strings match nothing")
	assert.Equal(t, model.SizeSmall, category)
}

func TestBusinessSizeScorer_Idempotent(t *testing.T) {
	s := NewBusinessSizeScorer(DefaultConfig())

	s1, c1 := s.Score("Anytime Fitness Plaza", "Plaza Court", "75001")
	s2, c2 := s.Score("Anytime Fitness Plaza", "Plaza Court", "75001")
	assert.Equal(t, s1, s2)
	assert.Equal(t, c1, c2)
}
