package scrape

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

var (
	reviewCountRe = regexp.MustCompile(`(?i)([\d,]+)\s+reviews`)
	starRatingRe  = regexp.MustCompile(`(?i)aria-label="([\d.]+)\s+stars"`)
)

// FetchReviewSignals extracts the review count and average rating from a
// maps listing page. Non-maps URLs and fetch failures return zero signals;
// the engagement scorer treats zero-count-plus-zero-rating with a maps URL
// present as an enrichment failure.
func (s *Scraper) FetchReviewSignals(ctx context.Context, mapsURL string) model.ReviewSignals {
	var sig model.ReviewSignals

	if mapsURL == "" || !strings.Contains(mapsURL, "maps.google.com") {
		return sig
	}

	p, err := s.fetch(ctx, mapsURL)
	if err != nil {
		zap.L().Warn("scrape: maps fetch failed", zap.String("url", mapsURL), zap.Error(err))
		return sig
	}
	if p.statusCode >= 400 {
		return sig
	}

	source := string(p.body)

	if m := reviewCountRe.FindStringSubmatch(source); m != nil {
		count, convErr := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if convErr == nil {
			sig.ReviewCount = count
		}
	}

	if m := starRatingRe.FindStringSubmatch(source); m != nil {
		rating, convErr := strconv.ParseFloat(m[1], 64)
		if convErr == nil {
			sig.AverageRating = rating
		}
	}

	return sig
}
