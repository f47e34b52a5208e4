package scoring

import (
	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

const (
	// inaccessibleSiteScore is the fixed minimal score for a site that
	// exists but could not be fetched.
	inaccessibleSiteScore = 2

	// socialPlatformPoints is awarded per reachable social profile.
	socialPlatformPoints = 3
)

// DigitalPresenceScorer scores a business's website quality and social-media
// reachability from externally fetched signal bundles.
type DigitalPresenceScorer struct {
	weights DigitalPresenceWeights
}

// NewDigitalPresenceScorer builds a scorer from the scoring configuration.
func NewDigitalPresenceScorer(cfg Config) *DigitalPresenceScorer {
	return &DigitalPresenceScorer{weights: cfg.DigitalPresence}
}

// ScoreWebsite accumulates points for mobile-friendliness, SEO basics, a
// booking feature, and modern design, flagging each miss as an opportunity.
// A lead with no website at all is itself a flagged redesign opportunity;
// an inaccessible site short-circuits to a fixed minimal score. Outdated
// design takes precedence over modern and sets the redesign flag without
// subtracting points.
func (s *DigitalPresenceScorer) ScoreWebsite(url string, sig model.WebsiteSignals) (int, model.WebsiteOpportunities) {
	if url == "" {
		return 0, model.WebsiteOpportunities{NeedsRedesign: true}
	}

	var opps model.WebsiteOpportunities
	if !sig.IsAccessible {
		opps.NeedsRedesign = true
		return inaccessibleSiteScore, opps
	}

	score := 0

	if sig.IsMobileFriendly {
		score += s.weights.MobileResponsive
	} else {
		opps.NeedsMobileOptimization = true
	}

	if sig.HasTitleAndDesc {
		score += s.weights.SEOBasics
	} else {
		opps.NeedsSEO = true
	}

	if sig.HasBookingFeature {
		score += s.weights.OnlineBooking
	} else {
		opps.MissingOnlineBooking = true
	}

	if sig.DesignIsOutdated {
		opps.NeedsRedesign = true
	} else if sig.DesignIsModern {
		score += s.weights.ModernTech
	}

	return score, opps
}

// AnalyzeSocialPresence awards points per reachable profile and flags
// inactive or absent social presence. Reachability is supplied as an
// already-checked signal bundle; the scorer performs no I/O.
func (s *DigitalPresenceScorer) AnalyzeSocialPresence(sig model.SocialSignals) (int, model.SocialOpportunities) {
	var opps model.SocialOpportunities
	score := 0

	for _, p := range []struct {
		url    string
		active bool
	}{
		{sig.InstagramURL, sig.InstagramActive},
		{sig.FacebookURL, sig.FacebookActive},
	} {
		switch {
		case p.url != "" && p.active:
			score += socialPlatformPoints
		case p.url != "":
			opps.InactiveSocial = true
		}
	}

	if sig.InstagramURL == "" && sig.FacebookURL == "" {
		opps.NeedsSocialManagement = true
		score = 0
	} else if score < socialPlatformPoints {
		// Fewer than one fully active profile equivalent.
		opps.NeedsSocialManagement = true
	}

	return score, opps
}
