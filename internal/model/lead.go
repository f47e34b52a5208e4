// Package model defines the lead, enrichment-signal, and scored-output types
// shared by the ingestion, scraping, scoring, and persistence layers.
package model

import "time"

// SizeCategory classifies a business by its name and location markers.
type SizeCategory string

const (
	SizeSmall   SizeCategory = "Small"
	SizeChain   SizeCategory = "Chain"
	SizePremium SizeCategory = "Premium"
)

// LeadAttributes is one input row from a spreadsheet. Immutable per scoring pass.
type LeadAttributes struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Zip          string `json:"zip,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	WebsiteURL   string `json:"website_url,omitempty"`
	MapsURL      string `json:"maps_url,omitempty"`
	InstagramURL string `json:"instagram_url,omitempty"`
	FacebookURL  string `json:"facebook_url,omitempty"`
	SourceFile   string `json:"source_file,omitempty"`
}

// WebsiteSignals is the enrichment bundle produced by the website scraper.
// All fields are observations about the fetched page; the scoring core never
// fetches anything itself.
type WebsiteSignals struct {
	IsAccessible      bool `json:"is_accessible"`
	HasSSL            bool `json:"has_ssl"`
	IsMobileFriendly  bool `json:"is_mobile_friendly"`
	HasTitleAndDesc   bool `json:"has_title_and_desc"`
	HasBookingFeature bool `json:"has_booking_feature"`
	DesignIsModern    bool `json:"design_is_modern"`
	DesignIsOutdated  bool `json:"design_is_outdated"`
	HasImages         bool `json:"has_images"`
}

// ReviewSignals is the enrichment bundle scraped from a maps listing.
type ReviewSignals struct {
	ReviewCount   int     `json:"review_count"`
	AverageRating float64 `json:"average_rating"`
}

// SocialSignals carries already-checked reachability for social profiles.
// A URL left empty means the profile was not supplied on the input row.
type SocialSignals struct {
	InstagramURL    string `json:"instagram_url,omitempty"`
	FacebookURL     string `json:"facebook_url,omitempty"`
	InstagramActive bool   `json:"instagram_active"`
	FacebookActive  bool   `json:"facebook_active"`
}

// SubScores maps named sub-scores to their values. The calculator iterates
// configured weight keys, so entries without a weight are ignored.
type SubScores map[string]float64

// Sub-score keys recognized by the default scoring weights.
const (
	SubScoreBusinessSize    = "business_size"
	SubScoreDigitalPresence = "digital_presence"
	SubScoreEngagement      = "engagement_opportunity"
	SubScoreContactQuality  = "contact_quality"
	SubScoreTechNeeds       = "tech_needs"
)

// WebsiteOpportunities flags improvable weaknesses found on a lead's website.
type WebsiteOpportunities struct {
	NeedsRedesign           bool `json:"needs_redesign"`
	NeedsMobileOptimization bool `json:"needs_mobile_optimization"`
	NeedsSEO                bool `json:"needs_seo"`
	MissingOnlineBooking    bool `json:"missing_online_booking"`
}

// SocialOpportunities flags weaknesses in a lead's social media presence.
type SocialOpportunities struct {
	NeedsSocialManagement bool `json:"needs_social_management"`
	InactiveSocial        bool `json:"inactive_social"`
}

// ReviewOpportunities flags review-generation potential plus the raw signals
// they were derived from.
type ReviewOpportunities struct {
	NeedsReviewCampaign bool    `json:"needs_review_campaign"`
	ReviewCount         int     `json:"review_count"`
	AverageRating       float64 `json:"average_rating"`
}

// ReputationInfo is the result of the (placeholder) reputation check.
type ReputationInfo struct {
	HasNegativeResults        bool `json:"has_negative_results"`
	NeedsReputationManagement bool `json:"needs_reputation_management"`
}

// LeadOpportunities aggregates every scorer's advisory flags for one lead.
// Advisory only; never fed back into the numeric score.
type LeadOpportunities struct {
	Website WebsiteOpportunities `json:"website"`
	Social  SocialOpportunities  `json:"social"`
	Reviews ReviewOpportunities  `json:"reviews"`
}

// ScoredLead is the final output row handed to the persistence layer.
// Created once per lead and never mutated afterwards.
type ScoredLead struct {
	ID             string       `json:"id,omitempty"`
	BusinessName   string       `json:"business_name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Website        string       `json:"website"`
	City           string       `json:"city"`
	SizeCategory   SizeCategory `json:"size_category"`
	TotalScore     int          `json:"total_score"`
	Tier           string       `json:"tier"`
	EstimatedValue string       `json:"estimated_value"`
	NeedsRedesign  bool         `json:"needs_redesign"`
	NeedsReviews   bool         `json:"needs_reviews"`
	ScoredAt       time.Time    `json:"scored_at,omitempty"`
}
