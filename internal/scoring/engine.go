package scoring

import (
	"time"

	"go.uber.org/zap"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// Engine composes the four sub-scorers and the priority calculator into the
// entry point the orchestration and persistence layers call. The scorers are
// order-independent and share no mutable state, so one Engine is safe for
// concurrent use across leads.
type Engine struct {
	business   *BusinessSizeScorer
	contact    *ContactQualityScorer
	digital    *DigitalPresenceScorer
	engagement *EngagementScorer
	calculator *PriorityCalculator
}

// NewEngine validates the configuration and wires up all scorers.
func NewEngine(cfg Config) (*Engine, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	calc, err := NewPriorityCalculator(cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		business:   NewBusinessSizeScorer(cfg),
		contact:    NewContactQualityScorer(cfg),
		digital:    NewDigitalPresenceScorer(cfg),
		engagement: NewEngagementScorer(cfg),
		calculator: calc,
	}, nil
}

// ScoreLead runs every scorer over one lead and its enrichment bundles,
// combines the sub-scores, and returns the final record plus the aggregated
// advisory opportunity flags. techNeeds is supplied by the caller; the core
// has no scorer for it yet.
func (e *Engine) ScoreLead(attrs model.LeadAttributes, web model.WebsiteSignals, reviews model.ReviewSignals, social model.SocialSignals, techNeeds float64) (model.ScoredLead, model.LeadOpportunities) {
	businessScore, category := e.business.Score(attrs.BusinessName, attrs.Address, attrs.Zip)
	digitalScore, webOpps := e.digital.ScoreWebsite(attrs.WebsiteURL, web)
	engagementScore, reviewOpps := e.engagement.AnalyzeReviewOpportunity(attrs.MapsURL, reviews)
	contactScore := e.contact.Score(attrs.Email)
	_, socialOpps := e.digital.AnalyzeSocialPresence(social)

	subs := model.SubScores{
		model.SubScoreBusinessSize:    float64(businessScore),
		model.SubScoreDigitalPresence: float64(digitalScore),
		model.SubScoreEngagement:      float64(engagementScore),
		model.SubScoreContactQuality:  float64(contactScore),
		model.SubScoreTechNeeds:       techNeeds,
	}

	total, tierName, value := e.calculator.Calculate(subs)

	zap.L().Debug("scoring: lead scored",
		zap.String("business", attrs.BusinessName),
		zap.Float64("total", total),
		zap.String("tier", tierName),
	)

	lead := model.ScoredLead{
		BusinessName:   attrs.BusinessName,
		Email:          attrs.Email,
		Phone:          attrs.Phone,
		Website:        attrs.WebsiteURL,
		City:           attrs.City,
		SizeCategory:   category,
		TotalScore:     int(total),
		Tier:           tierName,
		EstimatedValue: value,
		NeedsRedesign:  webOpps.NeedsRedesign,
		NeedsReviews:   reviewOpps.NeedsReviewCampaign,
		ScoredAt:       time.Now().UTC(),
	}

	opps := model.LeadOpportunities{
		Website: webOpps,
		Social:  socialOpps,
		Reviews: reviewOpps,
	}

	return lead, opps
}
