package scoring

import (
	"fmt"
	"time"

	"github.com/privacy-lab/tikun13/pkg/catalog"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// EnforcementDate is the day Amendment 13 enforcement powers took effect.
// The standing deadline recommendation escalates as it approaches and stays
// critical once it has passed.
var EnforcementDate = time.Date(2025, time.August, 14, 0, 0, 0, 0, time.UTC)

// collectRecommendations maps unfavorable answers to remediation actions and
// appends the standing enforcement-deadline item
func collectRecommendations(now time.Time, answers model.AnswerSet, profile orgProfile) []model.Recommendation {
	var out []model.Recommendation

	if v, ok := answers.Scalar(catalog.QDPOAppointed); ok && profile.requiresDPO() {
		switch v {
		case "no":
			out = append(out, model.Recommendation{
				Priority: types.PriorityCritical,
				Category: types.CategoryDPO,
				Action:   "Appoint a Data Protection Officer",
				Timeline: "30 days",
				Description: "Your organization type and data volume make a DPO appointment mandatory. " +
					"The appointment must be reported to management and documented.",
			})
		case "in_process":
			out = append(out, model.Recommendation{
				Priority: types.PriorityHigh,
				Category: types.CategoryDPO,
				Action:   "Complete the DPO appointment",
				Timeline: "60 days",
			})
		}
	}

	if v, ok := answers.Scalar(catalog.QDatabaseRegistered); ok && profile.requiresRegistration() {
		switch v {
		case "no":
			out = append(out, model.Recommendation{
				Priority: types.PriorityHigh,
				Category: types.CategoryRegistration,
				Action:   "Register your databases with the Privacy Protection Authority",
				Timeline: "60 days",
			})
		case "partial":
			out = append(out, model.Recommendation{
				Priority: types.PriorityMedium,
				Category: types.CategoryRegistration,
				Action:   "Complete registration for the remaining databases",
				Timeline: "90 days",
			})
		}
	}

	if values, ok := answers.Values(catalog.QSecurityMeasures); ok {
		selected := make(map[string]bool, len(values))
		for _, v := range values {
			selected[v] = true
		}
		if selected[catalog.NeutralNone] {
			out = append(out, model.Recommendation{
				Priority: types.PriorityCritical,
				Category: types.CategorySecurity,
				Action:   "Implement baseline security controls: encryption, access control, monitoring, backups and an incident response plan",
				Timeline: "Immediately",
			})
		} else {
			for _, m := range []struct {
				value  string
				action string
			}{
				{"encryption", "Encrypt personal data at rest and in transit"},
				{"access_control", "Introduce role-based access control for personal data"},
				{"monitoring", "Enable access logging and monitoring"},
				{"backups", "Establish regular tested backups"},
				{"incident_response", "Write and exercise an incident response plan"},
			} {
				if !selected[m.value] {
					out = append(out, model.Recommendation{
						Priority: types.PriorityHigh,
						Category: types.CategorySecurity,
						Action:   m.action,
						Timeline: "90 days",
					})
				}
			}
		}
	}

	if v, ok := answers.Scalar(catalog.QBreachProcedure); ok && v != "yes" {
		out = append(out, model.Recommendation{
			Priority: types.PriorityHigh,
			Category: types.CategorySecurity,
			Action:   "Establish and exercise a data-breach notification procedure",
			Timeline: "60 days",
		})
	}

	if v, ok := answers.Scalar(catalog.QPrivacyPolicy); ok {
		switch v {
		case "missing":
			out = append(out, model.Recommendation{
				Priority: types.PriorityHigh,
				Category: types.CategoryDocumentation,
				Action:   "Publish a privacy policy covering Amendment 13 disclosure duties",
				Timeline: "30 days",
			})
		case "outdated":
			out = append(out, model.Recommendation{
				Priority: types.PriorityMedium,
				Category: types.CategoryDocumentation,
				Action:   "Update the privacy policy for Amendment 13",
				Timeline: "60 days",
			})
		}
	}

	if v, ok := answers.Scalar(catalog.QConsentMechanism); ok {
		switch v {
		case "none":
			out = append(out, model.Recommendation{
				Priority: types.PriorityHigh,
				Category: types.CategoryConsent,
				Action:   "Introduce an explicit consent mechanism for data collection",
				Timeline: "60 days",
			})
		case "implied":
			out = append(out, model.Recommendation{
				Priority: types.PriorityMedium,
				Category: types.CategoryConsent,
				Action:   "Replace implied consent with explicit, informed opt-in",
				Timeline: "90 days",
			})
		}
	}

	if values, ok := answers.Values(catalog.QRightsProcedures); ok {
		for _, v := range values {
			if v == catalog.NeutralNone {
				out = append(out, model.Recommendation{
					Priority: types.PriorityMedium,
					Category: types.CategoryRights,
					Action:   "Establish procedures for access, correction and deletion requests",
					Timeline: "90 days",
				})
				break
			}
		}
	}

	if v, ok := answers.Scalar("retention_policy"); ok && v != "yes" {
		out = append(out, model.Recommendation{
			Priority: types.PriorityLow,
			Category: types.CategoryDocumentation,
			Action:   "Adopt and enforce a data retention and deletion policy",
			Timeline: "120 days",
		})
	}

	out = append(out, deadlineRecommendation(now))
	return out
}

// deadlineRecommendation is the standing time-to-enforcement item. Priority
// escalates as the statutory date approaches: critical under 30 days (or
// once passed), high under 90, medium otherwise.
func deadlineRecommendation(now time.Time) model.Recommendation {
	remaining := int(EnforcementDate.Sub(now).Hours() / 24)

	var priority types.Priority
	var action string
	switch {
	case remaining < 30:
		priority = types.PriorityCritical
		if remaining < 0 {
			action = "Amendment 13 enforcement is in effect; close remaining gaps now"
		} else {
			action = fmt.Sprintf("Amendment 13 enforcement begins in %d days; close remaining gaps now", remaining)
		}
	case remaining < 90:
		priority = types.PriorityHigh
		action = fmt.Sprintf("Amendment 13 enforcement begins in %d days; prioritize open items", remaining)
	default:
		priority = types.PriorityMedium
		action = fmt.Sprintf("Amendment 13 enforcement begins in %d days; plan your compliance program", remaining)
	}

	return model.Recommendation{
		Priority: priority,
		Category: types.CategoryGeneral,
		Action:   action,
		Timeline: "Ongoing",
	}
}
