package scoring

import "strings"

// personalDomains are common consumer email providers. Anything else is
// assumed to be a business domain.
var personalDomains = map[string]struct{}{
	"gmail.com":   {},
	"yahoo.com":   {},
	"hotmail.com": {},
	"outlook.com": {},
}

// ContactQualityScorer scores an email address's likely deliverability and
// decision-maker value.
type ContactQualityScorer struct {
	weights          ContactQualityWeights
	negativeKeywords []string
	dmKeywords       []string
}

// NewContactQualityScorer builds a scorer from the scoring configuration.
func NewContactQualityScorer(cfg Config) *ContactQualityScorer {
	return &ContactQualityScorer{
		weights:          cfg.ContactQuality,
		negativeKeywords: lowerAll(cfg.NegativeEmailKeywords),
		dmKeywords:       lowerAll(cfg.DecisionMakerKeywords),
	}
}

// Score returns 0 for an empty email. A negative keyword in the local part
// (info@, admin@, ...) returns the generic penalty outright; it is an
// override, not additive. Otherwise the score is the decision-maker bonus
// (if any keyword matches) plus exactly one of the personal- or
// business-domain bonuses. An address without '@' degrades gracefully:
// the whole string is treated as both local part and domain.
func (s *ContactQualityScorer) Score(email string) int {
	if email == "" {
		return 0
	}

	parts := strings.Split(email, "@")
	localPart := strings.ToLower(parts[0])
	domain := strings.ToLower(parts[len(parts)-1])

	if containsAny(localPart, s.negativeKeywords) {
		return s.weights.GenericPenalty
	}

	score := 0
	if containsAny(localPart, s.dmKeywords) {
		score += s.weights.DecisionMakerBonus
	}

	if _, ok := personalDomains[domain]; ok {
		score += s.weights.PersonalDomainBonus
	} else {
		score += s.weights.BusinessDomainBonus
	}

	return score
}
