package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchReviewSignals_ExtractsCountAndRating(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `<html><body>
			<span aria-label="4.5 stars"></span>
			<span>1,234 reviews</span>
		</body></html>`)
	}))
	defer ts.Close()

	sig := testScraper().FetchReviewSignals(context.Background(), ts.URL+"/maps.google.com/place/gym")
	assert.Equal(t, 1234, sig.ReviewCount)
	assert.InDelta(t, 4.5, sig.AverageRating, 0.001)
}

func TestFetchReviewSignals_NonMapsURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("non-maps URLs must not be fetched")
	}))
	defer ts.Close()

	sig := testScraper().FetchReviewSignals(context.Background(), ts.URL+"/somewhere")
	assert.Zero(t, sig.ReviewCount)
	assert.Zero(t, sig.AverageRating)
}

func TestFetchReviewSignals_EmptyURL(t *testing.T) {
	sig := testScraper().FetchReviewSignals(context.Background(), "")
	assert.Zero(t, sig.ReviewCount)
	assert.Zero(t, sig.AverageRating)
}

func TestFetchReviewSignals_NoMatches(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `<html><body>No review widgets here</body></html>`)
	}))
	defer ts.Close()

	sig := testScraper().FetchReviewSignals(context.Background(), ts.URL+"/maps.google.com/x")
	assert.Zero(t, sig.ReviewCount)
	assert.Zero(t, sig.AverageRating)
}
