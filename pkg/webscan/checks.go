package webscan

import (
	"fmt"

	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// Check weights are fixed per category and sum to 100.
const (
	weightSSL             = 20
	weightCookieConsent   = 15
	weightPrivacyPolicy   = 20
	weightHebrewContent   = 10
	weightDataConsent     = 15
	weightSecurityHeaders = 10
	weightTransparency    = 10
)

// buildChecks derives the named heuristic checks from extracted signals.
// Checks where nothing relevant was found report compliant, not error: a
// site with no cookies has nothing to consent to.
func buildChecks(sig Signals) []model.WebCheck {
	return []model.WebCheck{
		sslCheck(sig),
		cookieConsentCheck(sig),
		privacyPolicyCheck(sig),
		hebrewContentCheck(sig),
		dataConsentCheck(sig),
		securityHeadersCheck(sig),
		transparencyCheck(sig),
	}
}

func sslCheck(sig Signals) model.WebCheck {
	check := model.WebCheck{
		Name:     "ssl",
		Category: types.CategorySecurity,
		Weight:   weightSSL,
	}
	switch {
	case sig.HTTPS && sig.HSTS:
		check.Status = types.CheckStatusCompliant
		check.Detail = "HTTPS with HSTS enforced"
	case sig.HTTPS:
		check.Status = types.CheckStatusPartial
		check.Detail = "HTTPS without Strict-Transport-Security"
	default:
		check.Status = types.CheckStatusNonCompliant
		check.Detail = "Site is served over plain HTTP"
	}
	return check
}

func cookieConsentCheck(sig Signals) model.WebCheck {
	check := model.WebCheck{
		Name:     "cookie_consent",
		Category: types.CategoryCookies,
		Weight:   weightCookieConsent,
	}
	switch {
	case !sig.SetsCookies && sig.TrackingScripts == 0:
		// Vacuous truth: nothing to consent to
		check.Status = types.CheckStatusCompliant
		check.Detail = "No cookies or tracking scripts detected"
	case sig.ConsentManager:
		check.Status = types.CheckStatusCompliant
		check.Detail = "Consent management platform detected"
	case sig.CookieBanner:
		check.Status = types.CheckStatusPartial
		check.Detail = "Cookie banner found but no consent management platform"
	default:
		check.Status = types.CheckStatusNonCompliant
		check.Detail = fmt.Sprintf("Cookies or %d tracking scripts without a consent mechanism", sig.TrackingScripts)
	}
	return check
}

func privacyPolicyCheck(sig Signals) model.WebCheck {
	check := model.WebCheck{
		Name:     "privacy_policy",
		Category: types.CategoryPrivacyPolicy,
		Weight:   weightPrivacyPolicy,
	}
	switch {
	case sig.PolicyLink == "":
		check.Status = types.CheckStatusNonCompliant
		check.Detail = "No privacy policy link found"
	case len(sig.PolicyCoverage) >= 5:
		check.Status = types.CheckStatusCompliant
		check.Detail = fmt.Sprintf("Policy covers %d of 6 expected sections", len(sig.PolicyCoverage))
	case len(sig.PolicyCoverage) >= 2:
		check.Status = types.CheckStatusPartial
		check.Detail = fmt.Sprintf("Policy covers only %d of 6 expected sections", len(sig.PolicyCoverage))
	default:
		check.Status = types.CheckStatusPartial
		check.Detail = "Policy link found but section coverage could not be verified"
	}
	return check
}

func hebrewContentCheck(sig Signals) model.WebCheck {
	check := model.WebCheck{
		Name:     "hebrew_content",
		Category: types.CategoryTransparency,
		Weight:   weightHebrewContent,
	}
	switch {
	case sig.HebrewRatio >= 0.3:
		check.Status = types.CheckStatusCompliant
		check.Detail = "Substantial Hebrew-language content"
	case sig.HebrewRatio > 0.05:
		check.Status = types.CheckStatusPartial
		check.Detail = "Limited Hebrew-language content; disclosures may not reach Israeli users"
	default:
		check.Status = types.CheckStatusNonCompliant
		check.Detail = "No meaningful Hebrew-language content detected"
	}
	return check
}

func dataConsentCheck(sig Signals) model.WebCheck {
	check := model.WebCheck{
		Name:     "data_collection_consent",
		Category: types.CategoryConsent,
		Weight:   weightDataConsent,
	}
	switch {
	case sig.PersonalDataForms == 0:
		// Vacuous truth: no personal data is collected
		check.Status = types.CheckStatusCompliant
		check.Detail = "No forms collecting personal data detected"
	case sig.FormsWithConsent >= sig.PersonalDataForms:
		check.Status = types.CheckStatusCompliant
		check.Detail = "All data-collecting forms carry consent wording"
	case sig.FormsWithConsent > 0:
		check.Status = types.CheckStatusPartial
		check.Detail = fmt.Sprintf("%d of %d data-collecting forms carry consent wording", sig.FormsWithConsent, sig.PersonalDataForms)
	default:
		check.Status = types.CheckStatusNonCompliant
		check.Detail = "Forms collect personal data without any consent indication"
	}
	return check
}

func securityHeadersCheck(sig Signals) model.WebCheck {
	check := model.WebCheck{
		Name:     "security_headers",
		Category: types.CategorySecurity,
		Weight:   weightSecurityHeaders,
	}
	switch {
	case len(sig.SecurityHeaders) >= 3:
		check.Status = types.CheckStatusCompliant
		check.Detail = fmt.Sprintf("%d security headers present", len(sig.SecurityHeaders))
	case len(sig.SecurityHeaders) >= 1:
		check.Status = types.CheckStatusPartial
		check.Detail = fmt.Sprintf("Only %d security headers present", len(sig.SecurityHeaders))
	default:
		check.Status = types.CheckStatusNonCompliant
		check.Detail = "No security headers present"
	}
	return check
}

func transparencyCheck(sig Signals) model.WebCheck {
	check := model.WebCheck{
		Name:     "transparency",
		Category: types.CategoryTransparency,
		Weight:   weightTransparency,
	}
	switch {
	case sig.TransparencyLinks >= 2:
		check.Status = types.CheckStatusCompliant
		check.Detail = "Terms, contact or accessibility links present"
	case sig.TransparencyLinks == 1:
		check.Status = types.CheckStatusPartial
		check.Detail = "Only one transparency link found"
	default:
		check.Status = types.CheckStatusNonCompliant
		check.Detail = "No terms, contact or accessibility links found"
	}
	return check
}

// errorChecks returns the full check list with every status set to error,
// used when the page could not be fetched or parsed
func errorChecks(detail string) []model.WebCheck {
	checks := buildChecks(Signals{})
	for i := range checks {
		checks[i].Status = types.CheckStatusError
		checks[i].Detail = detail
	}
	return checks
}
