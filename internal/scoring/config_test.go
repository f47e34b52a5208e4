package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, ValidateConfig(DefaultConfig()))
}

func TestDefaultConfig_WeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range DefaultConfig().Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 0.001)
}

func TestParseConfig_RoundTrip(t *testing.T) {
	raw, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)

	cfg, err := ParseConfig(raw)
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.BusinessSize.ChainBonus)
	assert.Equal(t, 80.0, cfg.TierThresholds.Hot)
	assert.Contains(t, cfg.TierDefinitions, TierHot)
}

func TestParseConfig_MissingSectionIsFatal(t *testing.T) {
	cfg := DefaultConfig()
	raw, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	delete(doc, "review_opportunity_scoring")
	trimmed, err := yaml.Marshal(doc)
	require.NoError(t, err)

	_, err = ParseConfig(trimmed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "review_opportunity_scoring")
}

func TestParseConfig_InvalidYAML(t *testing.T) {
	_, err := ParseConfig([]byte("{not yaml"))
	assert.Error(t, err)
}

func TestValidateConfig_NegativeWeight(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights["business_size"] = -1
	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_DescendingThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TierThresholds = TierThresholds{Hot: 40, Warm: 65, Cold: 45}
	assert.Error(t, ValidateConfig(cfg))
}
