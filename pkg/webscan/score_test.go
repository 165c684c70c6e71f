package webscan_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
	"github.com/privacy-lab/tikun13/pkg/webscan"
)

// cleanSignals describes a site with nothing to find fault with: HTTPS with
// HSTS, no cookies or trackers, no data-collecting forms, a well-covered
// policy, Hebrew content and transparency links.
func cleanSignals() webscan.Signals {
	return webscan.Signals{
		HTTPS:             true,
		HSTS:              true,
		SecurityHeaders:   []string{"Strict-Transport-Security", "Content-Security-Policy", "X-Frame-Options"},
		PolicyLink:        "/privacy",
		PolicyCoverage:    []string{"collection", "purpose", "rights", "retention", "contact"},
		HebrewRatio:       0.8,
		TransparencyLinks: 3,
	}
}

func TestScore_CleanSite(t *testing.T) {
	result := webscan.Score("https://example.co.il", cleanSignals())

	gt.Bool(t, result.Failed).False()
	gt.Value(t, result.Score).Equal(100)
	gt.Array(t, result.Checks).Length(7)
	gt.Array(t, result.Violations).Length(0)
	gt.Array(t, result.Recommendations).Length(0)

	var total int
	for _, check := range result.Checks {
		total += check.Weight
		gt.Value(t, check.Status).Equal(types.CheckStatusCompliant)
	}
	gt.Value(t, total).Equal(100)
}

func TestScore_VacuousCompliance(t *testing.T) {
	// No cookies, no trackers and no forms: nothing to consent to, so the
	// consent checks pass rather than error
	sig := webscan.Signals{HTTPS: true}
	result := webscan.Score("https://example.co.il", sig)

	byName := make(map[string]types.CheckStatus)
	for _, check := range result.Checks {
		byName[check.Name] = check.Status
	}
	gt.Value(t, byName["cookie_consent"]).Equal(types.CheckStatusCompliant)
	gt.Value(t, byName["data_collection_consent"]).Equal(types.CheckStatusCompliant)
}

func TestScore_PartialCredit(t *testing.T) {
	t.Run("https without hsts earns half the ssl weight", func(t *testing.T) {
		sig := cleanSignals()
		sig.HSTS = false
		result := webscan.Score("https://example.co.il", sig)
		// ssl drops from 20 to 10
		gt.Value(t, result.Score).Equal(90)
	})

	t.Run("cookie banner without cmp earns reduced credit", func(t *testing.T) {
		sig := cleanSignals()
		sig.SetsCookies = true
		sig.CookieBanner = true
		result := webscan.Score("https://example.co.il", sig)
		// cookie_consent drops from 15 to 15*0.3 = 4.5, total 89.5 rounds to 90
		gt.Value(t, result.Score).Equal(90)
	})
}

func TestScore_Violations(t *testing.T) {
	sig := cleanSignals()
	sig.HTTPS = false
	sig.HSTS = false
	result := webscan.Score("http://example.co.il", sig)

	gt.Array(t, result.Violations).Length(1)
	v := result.Violations[0]
	gt.Value(t, v.Severity).Equal(types.SeverityHigh)
	gt.Value(t, v.Category).Equal(types.CategorySecurity)
	gt.Value(t, v.FineMin).Equal(int64(20_000))
	gt.Value(t, v.FineMax).Equal(int64(100_000))

	found := false
	for _, rec := range result.Recommendations {
		if rec.Priority == types.PriorityCritical {
			found = true
		}
	}
	gt.Bool(t, found).True()
}

func TestScore_PartialDemotesRecommendation(t *testing.T) {
	sig := cleanSignals()
	sig.HSTS = false
	result := webscan.Score("https://example.co.il", sig)

	gt.Array(t, result.Recommendations).Length(1)
	// ssl action is critical for a non-compliant finding, high for partial
	gt.Value(t, result.Recommendations[0].Priority).Equal(types.PriorityHigh)
}

func TestScore_ParseFailure(t *testing.T) {
	result := webscan.Score("https://example.co.il", webscan.Signals{ParseFailed: true})

	gt.Bool(t, result.Failed).True()
	gt.Value(t, result.Score).Equal(0)
	gt.Array(t, result.Checks).Length(7)
	for _, check := range result.Checks {
		gt.Value(t, check.Status).Equal(types.CheckStatusError)
	}
}

func TestFailed(t *testing.T) {
	result := webscan.Failed("https://unreachable.example", errors.New("connection refused"))

	gt.Bool(t, result.Failed).True()
	gt.Value(t, result.Error).Equal("connection refused")
	gt.Array(t, result.Checks).Length(7)
	for _, check := range result.Checks {
		gt.Value(t, check.Status).Equal(types.CheckStatusError)
		gt.Value(t, check.Detail).Equal("connection refused")
	}
}
