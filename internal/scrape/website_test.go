package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kleo12345/lead-scoring-system/internal/config"
)

func testScraper() *Scraper {
	return NewScraper(config.ScrapeConfig{
		TimeoutSecs:       5,
		RequestsPerSecond: 1000, // no throttling in tests
		MaxRetries:        1,
	})
}

func TestFetchWebsiteSignals_ModernSite(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, `<html><head>
			<title>Iron Works Gym</title>
			<meta name="description" content="Best gym in Dallas">
			<meta name="viewport" content="width=device-width, initial-scale=1">
			<link href="/css/bootstrap.min.css" rel="stylesheet">
		</head><body>
			<a href="/classes">Book a class</a>
			<img src="1.jpg"><img src="2.jpg"><img src="3.jpg"><img src="4.jpg">
		</body></html>`)
	}))
	defer ts.Close()

	sig := testScraper().FetchWebsiteSignals(context.Background(), ts.URL)

	assert.True(t, sig.IsAccessible)
	assert.True(t, sig.IsMobileFriendly)
	assert.True(t, sig.HasTitleAndDesc)
	assert.True(t, sig.HasBookingFeature)
	assert.True(t, sig.DesignIsModern)
	assert.False(t, sig.DesignIsOutdated)
	assert.True(t, sig.HasImages)
	assert.False(t, sig.HasSSL, "httptest serves plain http")
}

func TestFetchWebsiteSignals_BareSite(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, `<html><body><p>Welcome to our establishment</p></body></html>`)
	}))
	defer ts.Close()

	sig := testScraper().FetchWebsiteSignals(context.Background(), ts.URL)

	assert.True(t, sig.IsAccessible)
	assert.False(t, sig.IsMobileFriendly)
	assert.False(t, sig.HasTitleAndDesc)
	assert.False(t, sig.HasBookingFeature)
	assert.False(t, sig.DesignIsModern)
	assert.False(t, sig.HasImages)
}

func TestFetchWebsiteSignals_OutdatedDesign(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, `<html><head><title>Old Gym</title></head>
			<body><table class="layout"><tr><td>Home</td></tr></table></body></html>`)
	}))
	defer ts.Close()

	sig := testScraper().FetchWebsiteSignals(context.Background(), ts.URL)
	assert.True(t, sig.IsAccessible)
	assert.True(t, sig.DesignIsOutdated)
}

func TestFetchWebsiteSignals_TitleWithoutDescription(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `<html><head><title>Gym</title></head><body></body></html>`)
	}))
	defer ts.Close()

	sig := testScraper().FetchWebsiteSignals(context.Background(), ts.URL)
	assert.False(t, sig.HasTitleAndDesc, "needs both title and meta description")
}

func TestFetchWebsiteSignals_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	sig := testScraper().FetchWebsiteSignals(context.Background(), ts.URL)
	assert.False(t, sig.IsAccessible)
}

func TestFetchWebsiteSignals_Unreachable(t *testing.T) {
	// RFC 5737 TEST-NET, nothing listens here.
	sig := testScraper().FetchWebsiteSignals(context.Background(), "http://192.0.2.1:1/")
	assert.False(t, sig.IsAccessible)
}

func TestFetchWebsiteSignals_SSLFromURLScheme(t *testing.T) {
	sig := testScraper().FetchWebsiteSignals(context.Background(), "")
	assert.False(t, sig.HasSSL)
	assert.False(t, sig.IsAccessible)
}
