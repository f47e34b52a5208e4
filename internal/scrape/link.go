package scrape

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// CheckLinkReachable reports whether a URL responds with 200 and does not
// serve a soft 404 ("not found" in the body). Used for social profile links.
func (s *Scraper) CheckLinkReachable(ctx context.Context, url string) bool {
	if url == "" {
		return false
	}

	p, err := s.fetch(ctx, url)
	if err != nil {
		zap.L().Debug("scrape: link check failed", zap.String("url", url), zap.Error(err))
		return false
	}

	return p.statusCode == 200 && !strings.Contains(strings.ToLower(string(p.body)), "not found")
}

// FetchSocialSignals checks reachability for a lead's social profile URLs
// and packages the results for the digital presence scorer.
func (s *Scraper) FetchSocialSignals(ctx context.Context, instagramURL, facebookURL string) model.SocialSignals {
	sig := model.SocialSignals{
		InstagramURL: instagramURL,
		FacebookURL:  facebookURL,
	}
	if instagramURL != "" {
		sig.InstagramActive = s.CheckLinkReachable(ctx, instagramURL)
	}
	if facebookURL != "" {
		sig.FacebookActive = s.CheckLinkReachable(ctx, facebookURL)
	}
	return sig
}
