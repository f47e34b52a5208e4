package scrape

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/Kleo12345/lead-scoring-system/internal/model"
)

// bookingKeywords are page-text markers for an online booking capability.
var bookingKeywords = []string{"book", "schedule", "appointment", "class", "reserve", "sign up"}

// modernTechMarkers are framework fingerprints that suggest a recent build.
var modernTechMarkers = []string{"bootstrap", "react", "vue"}

// minImageCount is the threshold above which a page counts as image-rich.
const minImageCount = 3

// FetchWebsiteSignals fetches a website and extracts digital-presence
// signals. Best-effort: any fetch or parse failure yields a bundle with
// IsAccessible false rather than an error, so a dead site scores as a
// redesign opportunity instead of aborting the lead.
func (s *Scraper) FetchWebsiteSignals(ctx context.Context, url string) model.WebsiteSignals {
	sig := model.WebsiteSignals{
		HasSSL: strings.HasPrefix(url, "https://"),
	}
	if url == "" {
		return sig
	}

	p, err := s.fetch(ctx, url)
	if err != nil {
		zap.L().Warn("scrape: website fetch failed", zap.String("url", url), zap.Error(err))
		return sig
	}
	if p.statusCode >= 400 {
		zap.L().Debug("scrape: website returned error status",
			zap.String("url", url),
			zap.Int("status", p.statusCode),
		)
		return sig
	}

	sig.IsAccessible = true

	doc, err := html.Parse(strings.NewReader(string(p.body)))
	if err != nil {
		zap.L().Warn("scrape: html parse failed", zap.String("url", url), zap.Error(err))
		return sig
	}

	var (
		hasTitle    bool
		hasMetaDesc bool
		imageCount  int
	)

	for n := range doc.Descendants() {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.Data {
		case "title":
			hasTitle = true
		case "meta":
			name := strings.ToLower(attrVal(n, "name"))
			content := strings.ToLower(attrVal(n, "content"))
			if name == "viewport" && strings.Contains(content, "width=device-width") {
				sig.IsMobileFriendly = true
			}
			if name == "description" {
				hasMetaDesc = true
			}
		case "img":
			imageCount++
		}
	}

	sig.HasTitleAndDesc = hasTitle && hasMetaDesc
	sig.HasImages = imageCount > minImageCount

	lower := strings.ToLower(string(p.body))
	for _, kw := range bookingKeywords {
		if strings.Contains(lower, kw) {
			sig.HasBookingFeature = true
			break
		}
	}
	// Table-based layout is the outdated-design fingerprint.
	if strings.Contains(lower, "<table") && strings.Contains(lower, "layout") {
		sig.DesignIsOutdated = true
	}
	for _, tech := range modernTechMarkers {
		if strings.Contains(lower, tech) {
			sig.DesignIsModern = true
			break
		}
	}

	return sig
}

// attrVal returns the value of the named attribute, or "".
func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
