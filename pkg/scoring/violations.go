package scoring

import (
	"github.com/privacy-lab/tikun13/pkg/catalog"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// baseFines maps a subject-volume tier to the base administrative fine in
// whole shekels. Unrecognized or missing tiers fall back to the smallest
// base.
var baseFines = map[types.VolumeTier]int64{
	types.VolumeTierUnder1K:   50_000,
	types.VolumeTier1KTo10K:   100_000,
	types.VolumeTier10KTo100K: 250_000,
	types.VolumeTier100KTo1M:  500_000,
	types.VolumeTierOver1M:    1_000_000,
}

const defaultBaseFine int64 = 50_000

func baseFineFor(tier types.VolumeTier) int64 {
	if f, ok := baseFines[tier]; ok {
		return f
	}
	return defaultBaseFine
}

func maxFine(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// collectViolations runs the fixed condition catalog against the answers.
// Each condition is independent; any number of violations may fire.
func collectViolations(answers model.AnswerSet, profile orgProfile) []model.Violation {
	var out []model.Violation
	base := baseFineFor(profile.tier)

	// Missing DPO while legally required. The multiplier and floor are
	// higher when sensitive data is processed.
	if profile.requiresDPO() && profile.dpoMissing {
		multiplier, floor := int64(2), int64(20_000)
		if profile.hasSensitive {
			multiplier, floor = 4, 40_000
		}
		out = append(out, model.Violation{
			Severity:    types.SeverityHigh,
			Category:    types.CategoryDPO,
			Description: "A Data Protection Officer is legally required but has not been appointed",
			Fine:        maxFine(base*multiplier, floor),
			Citation:    "Privacy Protection Law, Section 17B1 (Amendment 13)",
		})
	}

	if v, ok := answers.Scalar(catalog.QDatabaseRegistered); ok && v == "no" && profile.requiresRegistration() {
		out = append(out, model.Violation{
			Severity:    types.SeverityHigh,
			Category:    types.CategoryRegistration,
			Description: "Databases subject to mandatory registration are not registered",
			Fine:        maxFine(base*2, 25_000),
			Citation:    "Privacy Protection Law, Section 8",
		})
	}

	if values, ok := answers.Values(catalog.QSecurityMeasures); ok {
		hasNone, hasEncryption := false, false
		for _, v := range values {
			switch v {
			case catalog.NeutralNone:
				hasNone = true
			case "encryption":
				hasEncryption = true
			}
		}
		if hasNone {
			out = append(out, model.Violation{
				Severity:    types.SeverityCritical,
				Category:    types.CategorySecurity,
				Description: "No information security measures are in place",
				Fine:        maxFine(base*3, 50_000),
				Citation:    "Protection of Privacy Regulations (Data Security), 2017",
			})
		} else if profile.hasSensitive && !hasEncryption {
			out = append(out, model.Violation{
				Severity:    types.SeverityHigh,
				Category:    types.CategorySecurity,
				Description: "Sensitive data is processed without encryption",
				Fine:        maxFine(base*2, 30_000),
				Citation:    "Protection of Privacy Regulations (Data Security), 2017, Regulation 12",
			})
		}
	}

	if v, ok := answers.Scalar(catalog.QBreachProcedure); ok && v == "no" {
		out = append(out, model.Violation{
			Severity:    types.SeverityHigh,
			Category:    types.CategorySecurity,
			Description: "No data-breach notification procedure exists",
			Fine:        maxFine(base, 15_000),
			Citation:    "Protection of Privacy Regulations (Data Security), 2017, Regulation 11",
		})
	}

	if v, ok := answers.Scalar(catalog.QPrivacyPolicy); ok && v == "missing" {
		out = append(out, model.Violation{
			Severity:    types.SeverityMedium,
			Category:    types.CategoryDocumentation,
			Description: "No privacy policy is published",
			Fine:        maxFine(base/2, 10_000),
			Citation:    "Privacy Protection Law, Section 11",
		})
	}

	if v, ok := answers.Scalar(catalog.QConsentMechanism); ok && v == "none" {
		out = append(out, model.Violation{
			Severity:    types.SeverityHigh,
			Category:    types.CategoryConsent,
			Description: "Personal data is collected without consent",
			Fine:        maxFine(base*2, 25_000),
			Citation:    "Privacy Protection Law, Sections 1 and 11",
		})
	}

	if values, ok := answers.Values(catalog.QRightsProcedures); ok {
		for _, v := range values {
			if v == catalog.NeutralNone {
				out = append(out, model.Violation{
					Severity:    types.SeverityMedium,
					Category:    types.CategoryRights,
					Description: "No procedures exist for data subject access, correction or deletion requests",
					Fine:        maxFine(base, 15_000),
					Citation:    "Privacy Protection Law, Sections 13-14",
				})
				break
			}
		}
	}

	if v, ok := answers.Scalar("third_party_transfer"); ok && v == "without_agreements" {
		out = append(out, model.Violation{
			Severity:    types.SeverityMedium,
			Category:    types.CategoryConsent,
			Description: "Personal data is transferred to third parties without data processing agreements",
			Fine:        maxFine(base, 15_000),
			Citation:    "Privacy Protection Law, Section 17",
		})
	}

	return out
}
