package webscan

import (
	"math"
	"time"

	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// Partial-compliance multipliers per category. Privacy-policy and cookie
// findings earn less partial credit because a half-measure there is closer
// to non-compliance.
func partialMultiplier(category types.Category) float64 {
	switch category {
	case types.CategoryPrivacyPolicy, types.CategoryCookies:
		return 0.3
	default:
		return 0.5
	}
}

// Score derives the full heuristic scan result from extracted signals
func Score(pageURL string, sig Signals) *model.WebScanResult {
	result := &model.WebScanResult{
		ID:        model.NewScanID(),
		URL:       pageURL,
		ScannedAt: time.Now().UTC(),
	}

	if sig.ParseFailed {
		result.Failed = true
		result.Error = "page could not be parsed"
		result.Checks = errorChecks("page could not be parsed")
		return result
	}

	result.Checks = buildChecks(sig)

	var score float64
	for _, check := range result.Checks {
		switch check.Status {
		case types.CheckStatusCompliant:
			score += float64(check.Weight)
		case types.CheckStatusPartial:
			score += float64(check.Weight) * partialMultiplier(check.Category)
		}
	}
	result.Score = int(math.Round(score))

	result.Violations = checkViolations(result.Checks)
	result.Recommendations = checkRecommendations(result.Checks)
	return result
}

// Failed builds an error-marked result for an unreachable page, so the
// report renderer can still display the failed scan
func Failed(pageURL string, err error) *model.WebScanResult {
	detail := "fetch failed"
	if err != nil {
		detail = err.Error()
	}
	return &model.WebScanResult{
		ID:        model.NewScanID(),
		URL:       pageURL,
		ScannedAt: time.Now().UTC(),
		Failed:    true,
		Error:     detail,
		Checks:    errorChecks(detail),
	}
}

// fineRanges maps a check name to the estimated fine range for a
// non-compliant finding. Heuristic findings carry ranges, not point
// estimates.
var fineRanges = map[string]struct {
	min, max int64
	severity types.Severity
	citation string
}{
	"ssl": {
		min: 20_000, max: 100_000,
		severity: types.SeverityHigh,
		citation: "Protection of Privacy Regulations (Data Security), 2017",
	},
	"cookie_consent": {
		min: 15_000, max: 75_000,
		severity: types.SeverityMedium,
		citation: "Privacy Protection Law, Section 11",
	},
	"privacy_policy": {
		min: 25_000, max: 150_000,
		severity: types.SeverityHigh,
		citation: "Privacy Protection Law, Section 11",
	},
	"hebrew_content": {
		min: 5_000, max: 25_000,
		severity: types.SeverityLow,
		citation: "Privacy Protection Law, Section 11 (disclosure in accessible language)",
	},
	"data_collection_consent": {
		min: 25_000, max: 120_000,
		severity: types.SeverityHigh,
		citation: "Privacy Protection Law, Sections 1 and 11",
	},
	"security_headers": {
		min: 10_000, max: 50_000,
		severity: types.SeverityMedium,
		citation: "Protection of Privacy Regulations (Data Security), 2017",
	},
	"transparency": {
		min: 5_000, max: 25_000,
		severity: types.SeverityLow,
		citation: "Privacy Protection Law, Section 11",
	},
}

// checkViolations mirrors the questionnaire engine's additive style: each
// non-compliant check independently produces one violation
func checkViolations(checks []model.WebCheck) []model.WebViolation {
	var out []model.WebViolation
	for _, check := range checks {
		if check.Status != types.CheckStatusNonCompliant {
			continue
		}
		entry, ok := fineRanges[check.Name]
		if !ok {
			continue
		}
		out = append(out, model.WebViolation{
			Severity:    entry.severity,
			Category:    check.Category,
			Description: check.Detail,
			FineMin:     entry.min,
			FineMax:     entry.max,
			Citation:    entry.citation,
		})
	}
	return out
}

var checkActions = map[string]struct {
	action   string
	priority types.Priority
	timeline string
}{
	"ssl":                     {"Serve the site over HTTPS and enable Strict-Transport-Security", types.PriorityCritical, "Immediately"},
	"cookie_consent":          {"Add a consent management mechanism before setting cookies or loading trackers", types.PriorityHigh, "30 days"},
	"privacy_policy":          {"Publish a privacy policy covering collection, purpose, rights, retention, third parties and contact", types.PriorityHigh, "30 days"},
	"hebrew_content":          {"Provide privacy disclosures in Hebrew for Israeli users", types.PriorityMedium, "90 days"},
	"data_collection_consent": {"Add explicit consent wording to forms that collect personal data", types.PriorityHigh, "60 days"},
	"security_headers":        {"Add standard security headers (CSP, HSTS, X-Content-Type-Options)", types.PriorityMedium, "60 days"},
	"transparency":            {"Add terms of use, contact and accessibility pages", types.PriorityLow, "90 days"},
}

func checkRecommendations(checks []model.WebCheck) []model.Recommendation {
	var out []model.Recommendation
	for _, check := range checks {
		if check.Status == types.CheckStatusCompliant || check.Status == types.CheckStatusError {
			continue
		}
		entry, ok := checkActions[check.Name]
		if !ok {
			continue
		}
		priority := entry.priority
		if check.Status == types.CheckStatusPartial && priority.Rank() > types.PriorityLow.Rank() {
			// Partial findings are one step less urgent
			priority = demote(priority)
		}
		out = append(out, model.Recommendation{
			Priority: priority,
			Category: check.Category,
			Action:   entry.action,
			Timeline: entry.timeline,
		})
	}
	return out
}

func demote(p types.Priority) types.Priority {
	switch p {
	case types.PriorityCritical:
		return types.PriorityHigh
	case types.PriorityHigh:
		return types.PriorityMedium
	default:
		return types.PriorityLow
	}
}
