// Package pipeline orchestrates one scoring pass: validate input rows,
// enrich them concurrently, score them, and rank the results.
package pipeline

import (
	"context"
	"sort"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
	"github.com/Kleo12345/lead-scoring-system/internal/scoring"
	"github.com/Kleo12345/lead-scoring-system/internal/validate"
)

const defaultConcurrency = 5

// TechNeedsScore is the flat technology-needs credit every lead receives.
// Small local gyms are assumed to under-invest in tooling; no per-lead
// signal exists for this yet.
const TechNeedsScore = 10

// Enricher fetches web signals for a lead. Implementations are best-effort:
// an unreachable site yields zero-valued signals, never an error.
type Enricher interface {
	FetchWebsiteSignals(ctx context.Context, url string) model.WebsiteSignals
	FetchReviewSignals(ctx context.Context, mapsURL string) model.ReviewSignals
	FetchSocialSignals(ctx context.Context, instagramURL, facebookURL string) model.SocialSignals
}

// Options tunes a pipeline run.
type Options struct {
	Concurrency    int
	SkipEnrichment bool
}

// Pipeline scores batches of leads.
type Pipeline struct {
	engine   *scoring.Engine
	enricher Enricher
	opts     Options
}

// Item is one scored lead with its advisory opportunity flags.
type Item struct {
	Lead          model.ScoredLead        `json:"lead"`
	Opportunities model.LeadOpportunities `json:"opportunities"`
}

// Result is the outcome of one scoring pass, ranked best-first.
type Result struct {
	Items         []Item `json:"items"`
	InvalidEmails int    `json:"invalid_emails"`
}

// New creates a Pipeline. The enricher may be nil only when
// Options.SkipEnrichment is set.
func New(engine *scoring.Engine, enricher Enricher, opts Options) (*Pipeline, error) {
	if engine == nil {
		return nil, eris.New("pipeline: engine is required")
	}
	if enricher == nil && !opts.SkipEnrichment {
		return nil, eris.New("pipeline: enricher is required unless enrichment is skipped")
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	return &Pipeline{engine: engine, enricher: enricher, opts: opts}, nil
}

type signals struct {
	web     model.WebsiteSignals
	reviews model.ReviewSignals
	social  model.SocialSignals
}

// Run validates, enriches, scores, and ranks the given leads. Leads whose
// email fails syntax validation are dropped before any network work and
// counted in the result.
func (p *Pipeline) Run(ctx context.Context, leads []model.LeadAttributes) (*Result, error) {
	result := &Result{}

	var valid []model.LeadAttributes
	for _, lead := range leads {
		if !validate.Email(lead.Email) {
			result.InvalidEmails++
			zap.L().Debug("pipeline: dropping lead with invalid email",
				zap.String("business", lead.BusinessName),
				zap.String("email", lead.Email),
			)
			continue
		}
		valid = append(valid, lead)
	}

	zap.L().Info("pipeline: starting scoring pass",
		zap.Int("leads", len(valid)),
		zap.Int("invalid_emails", result.InvalidEmails),
		zap.Bool("enrichment", !p.opts.SkipEnrichment),
	)

	enriched, err := p.enrich(ctx, valid)
	if err != nil {
		return nil, err
	}

	for i, lead := range valid {
		scored, opps := p.engine.ScoreLead(lead, enriched[i].web, enriched[i].reviews, enriched[i].social, TechNeedsScore)
		result.Items = append(result.Items, Item{Lead: scored, Opportunities: opps})
	}

	sort.SliceStable(result.Items, func(i, j int) bool {
		a, b := result.Items[i].Lead, result.Items[j].Lead
		if a.TotalScore != b.TotalScore {
			return a.TotalScore > b.TotalScore
		}
		return a.BusinessName < b.BusinessName
	})

	return result, nil
}

// enrich fetches signals for every lead with bounded concurrency. Results
// are positional so scoring stays aligned with its input.
func (p *Pipeline) enrich(ctx context.Context, leads []model.LeadAttributes) ([]signals, error) {
	enriched := make([]signals, len(leads))
	if p.opts.SkipEnrichment {
		return enriched, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Concurrency)

	for i, lead := range leads {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			enriched[i] = signals{
				web:     p.enricher.FetchWebsiteSignals(gCtx, lead.WebsiteURL),
				reviews: p.enricher.FetchReviewSignals(gCtx, lead.MapsURL),
				social:  p.enricher.FetchSocialSignals(gCtx, lead.InstagramURL, lead.FacebookURL),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "pipeline: enrichment")
	}
	return enriched, nil
}
