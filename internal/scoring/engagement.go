package scoring

import (
	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// Review-count bucket boundaries.
const (
	fewReviewsCeiling   = 10
	manyReviewsFloor    = 25
	baseReputationScore = 5
)

// EngagementScorer scores the review-generation opportunity from scraped
// maps-listing signals.
type EngagementScorer struct {
	weights ReviewOpportunityWeights
}

// NewEngagementScorer builds a scorer from the scoring configuration.
func NewEngagementScorer(cfg Config) *EngagementScorer {
	return &EngagementScorer{weights: cfg.ReviewOpportunity}
}

// AnalyzeReviewOpportunity maps the review count to a configured opportunity
// score: fewer reviews means a bigger review-campaign opportunity. Every
// bucket except many_reviews flags a review campaign.
//
// A zero count with a zero rating when a maps URL was supplied is treated as
// an enrichment failure rather than a confirmed reviewless listing, and is
// assigned the moderate_reviews score.
func (s *EngagementScorer) AnalyzeReviewOpportunity(mapsURL string, sig model.ReviewSignals) (int, model.ReviewOpportunities) {
	opps := model.ReviewOpportunities{
		ReviewCount:   sig.ReviewCount,
		AverageRating: sig.AverageRating,
	}

	var score int
	switch {
	case sig.ReviewCount == 0:
		score = s.weights.NoReviews
		opps.NeedsReviewCampaign = true
	case sig.ReviewCount < fewReviewsCeiling:
		score = s.weights.FewReviews
		opps.NeedsReviewCampaign = true
	case sig.ReviewCount < manyReviewsFloor:
		score = s.weights.ModerateReviews
		opps.NeedsReviewCampaign = true
	default:
		score = s.weights.ManyReviews
	}

	if sig.ReviewCount == 0 && sig.AverageRating == 0.0 && mapsURL != "" {
		score = s.weights.ModerateReviews
		opps.NeedsReviewCampaign = true
	}

	return score, opps
}

// CheckOnlineReputation returns a constant baseline reputation score.
// Placeholder: no negative-result detection is performed yet.
func (s *EngagementScorer) CheckOnlineReputation(_, _ string) (int, model.ReputationInfo) {
	return baseReputationScore, model.ReputationInfo{}
}
