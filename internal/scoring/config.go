// Package scoring implements the lead-priority scoring engine: independent
// sub-scorers for business size, contact quality, digital presence, and
// review engagement, plus the weighted calculator that maps totals to tiers.
package scoring

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// BusinessSizeWeights holds the bonuses applied by the business size scorer.
type BusinessSizeWeights struct {
	ChainBonus    int `yaml:"chain_bonus"`
	PremiumBonus  int `yaml:"premium_bonus"`
	LocationBonus int `yaml:"location_bonus"`
}

// ContactQualityWeights holds the bonuses and the generic-inbox penalty
// applied by the contact quality scorer.
type ContactQualityWeights struct {
	GenericPenalty      int `yaml:"generic_penalty"`
	DecisionMakerBonus  int `yaml:"decision_maker_bonus"`
	PersonalDomainBonus int `yaml:"personal_domain_bonus"`
	BusinessDomainBonus int `yaml:"business_domain_bonus"`
}

// DigitalPresenceWeights holds the per-feature points awarded for website quality.
type DigitalPresenceWeights struct {
	MobileResponsive int `yaml:"mobile_responsive"`
	SEOBasics        int `yaml:"seo_basics"`
	OnlineBooking    int `yaml:"online_booking"`
	ModernTech       int `yaml:"modern_tech"`
}

// ReviewOpportunityWeights maps review-count buckets to opportunity scores.
type ReviewOpportunityWeights struct {
	NoReviews       int `yaml:"no_reviews"`
	FewReviews      int `yaml:"few_reviews"`
	ModerateReviews int `yaml:"moderate_reviews"`
	ManyReviews     int `yaml:"many_reviews"`
}

// TierThresholds are the inclusive lower bounds for each tier, compared in
// strict descending priority: hot, then warm, then cold. Anything below cold
// falls into the low tier.
type TierThresholds struct {
	Hot  float64 `yaml:"hot"`
	Warm float64 `yaml:"warm"`
	Cold float64 `yaml:"cold"`
}

// TierDefinition holds the display name and estimated monthly value for a tier.
type TierDefinition struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Tier keys used by threshold selection and tier_definitions lookup.
const (
	TierHot  = "hot"
	TierWarm = "warm"
	TierCold = "cold"
	TierLow  = "low"
)

// Config holds every tunable bonus, weight, threshold, and tier definition
// consumed by the scorers. Loaded once at startup and treated as immutable.
type Config struct {
	BusinessSize          BusinessSizeWeights      `yaml:"business_size_scoring"`
	ChainIndicators       []string                 `yaml:"chain_indicators"`
	PremiumIndicators     []string                 `yaml:"premium_indicators"`
	ContactQuality        ContactQualityWeights    `yaml:"contact_quality_scoring"`
	NegativeEmailKeywords []string                 `yaml:"negative_email_keywords"`
	DecisionMakerKeywords []string                 `yaml:"decision_maker_keywords"`
	DigitalPresence       DigitalPresenceWeights   `yaml:"digital_presence_scoring"`
	ReviewOpportunity     ReviewOpportunityWeights `yaml:"review_opportunity_scoring"`
	Weights               map[string]float64       `yaml:"scoring_weights"`
	TierThresholds        TierThresholds           `yaml:"tier_thresholds"`
	TierDefinitions       map[string]TierDefinition `yaml:"tier_definitions"`
}

// DefaultConfig returns the stock scoring configuration. Weights sum to 1.0.
func DefaultConfig() Config {
	return Config{
		BusinessSize: BusinessSizeWeights{
			ChainBonus:    15,
			PremiumBonus:  10,
			LocationBonus: 5,
		},
		ChainIndicators: []string{
			"anytime fitness", "planet fitness", "gold's gym", "la fitness",
			"24 hour fitness", "orangetheory", "crunch", "snap fitness",
		},
		PremiumIndicators: []string{
			"athletic club", "country club", "spa", "wellness", "pilates",
			"crossfit", "performance",
		},
		ContactQuality: ContactQualityWeights{
			GenericPenalty:      5,
			DecisionMakerBonus:  15,
			PersonalDomainBonus: 8,
			BusinessDomainBonus: 12,
		},
		NegativeEmailKeywords: []string{"info", "admin", "contact", "support", "sales", "hello"},
		DecisionMakerKeywords: []string{"owner", "manager", "director", "founder", "president"},
		DigitalPresence: DigitalPresenceWeights{
			MobileResponsive: 8,
			SEOBasics:        6,
			OnlineBooking:    7,
			ModernTech:       4,
		},
		ReviewOpportunity: ReviewOpportunityWeights{
			NoReviews:       20,
			FewReviews:      15,
			ModerateReviews: 10,
			ManyReviews:     5,
		},
		Weights: map[string]float64{
			"business_size":          0.30,
			"digital_presence":       0.25,
			"engagement_opportunity": 0.20,
			"contact_quality":        0.15,
			"tech_needs":             0.10,
		},
		TierThresholds: TierThresholds{Hot: 80, Warm: 65, Cold: 45},
		TierDefinitions: map[string]TierDefinition{
			TierHot:  {Name: "HOT - High Value Prospect", Value: "$2000-5000/month"},
			TierWarm: {Name: "WARM - Good Opportunity", Value: "$1000-2500/month"},
			TierCold: {Name: "COLD - Potential Client", Value: "$500-1200/month"},
			TierLow:  {Name: "LOW - Minimal Opportunity", Value: "<$500/month"},
		},
	}
}

// requiredSections lists every top-level key a scorer reads. A config
// document missing any of them is rejected at load time.
var requiredSections = []string{
	"business_size_scoring",
	"chain_indicators",
	"premium_indicators",
	"contact_quality_scoring",
	"negative_email_keywords",
	"decision_maker_keywords",
	"digital_presence_scoring",
	"review_opportunity_scoring",
	"scoring_weights",
	"tier_thresholds",
	"tier_definitions",
}

// LoadConfig reads a scoring configuration YAML document. Missing required
// sections are fatal, never defaulted.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, eris.Wrapf(err, "scoring: read config %s", path)
	}
	return ParseConfig(raw)
}

// ParseConfig parses and validates a scoring configuration document.
func ParseConfig(raw []byte) (Config, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, eris.Wrap(err, "scoring: parse config")
	}

	var missing []string
	for _, section := range requiredSections {
		if _, ok := doc[section]; !ok {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		return Config{}, eris.Errorf("scoring: config missing required sections: %s", strings.Join(missing, ", "))
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, eris.Wrap(err, "scoring: unmarshal config")
	}

	if err := ValidateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateConfig checks that a Config is internally consistent.
func ValidateConfig(c Config) error {
	var errs []string

	for name, w := range c.Weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("scoring_weights.%s must be >= 0", name))
		}
	}
	if len(c.Weights) == 0 {
		errs = append(errs, "scoring_weights must not be empty")
	}

	if c.TierThresholds.Hot < c.TierThresholds.Warm {
		errs = append(errs, "tier_thresholds.hot must be >= tier_thresholds.warm")
	}
	if c.TierThresholds.Warm < c.TierThresholds.Cold {
		errs = append(errs, "tier_thresholds.warm must be >= tier_thresholds.cold")
	}

	if len(c.TierDefinitions) == 0 {
		errs = append(errs, "tier_definitions must not be empty")
	}

	if len(errs) > 0 {
		return eris.Errorf("scoring: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
