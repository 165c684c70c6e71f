package scoring

import (
	"github.com/privacy-lab/tikun13/pkg/catalog"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// buildMatrix derives the fixed category summaries directly from named
// answers, independent of the weighted scoring. Entries follow the display
// order of types.MatrixCategories.
func buildMatrix(answers model.AnswerSet, profile orgProfile) []model.MatrixEntry {
	categories := types.MatrixCategories()
	entries := make([]model.MatrixEntry, 0, len(categories))
	for _, category := range categories {
		switch category {
		case types.CategoryDPO:
			entries = append(entries, dpoEntry(answers, profile))
		case types.CategoryRegistration:
			entries = append(entries, registrationEntry(answers, profile))
		case types.CategorySecurity:
			entries = append(entries, securityEntry(answers))
		case types.CategoryRights:
			entries = append(entries, rightsEntry(answers))
		case types.CategoryDocumentation:
			entries = append(entries, documentationEntry(answers))
		case types.CategoryConsent:
			entries = append(entries, consentEntry(answers))
		}
	}
	return entries
}

func dpoEntry(answers model.AnswerSet, profile orgProfile) model.MatrixEntry {
	entry := model.MatrixEntry{Category: types.CategoryDPO}

	if !profile.requiresDPO() {
		entry.Requirement = "A DPO appointment is not mandatory for your organization type and data volume"
		entry.Status = "Not required"
		entry.Compliant = true
		return entry
	}

	entry.Requirement = "Your organization must appoint a Data Protection Officer"
	v, _ := answers.Scalar(catalog.QDPOAppointed)
	switch v {
	case "yes_internal", "yes_external":
		entry.Status = "Compliant"
		entry.Compliant = true
	case "in_process":
		entry.Status = "In progress"
	default:
		entry.Status = "Action required"
	}
	return entry
}

func registrationEntry(answers model.AnswerSet, profile orgProfile) model.MatrixEntry {
	entry := model.MatrixEntry{Category: types.CategoryRegistration}

	if !profile.requiresRegistration() {
		entry.Requirement = "Database registration is not mandatory for your organization type"
		entry.Status = "Not required"
		entry.Compliant = true
		return entry
	}

	entry.Requirement = "Databases must be registered with the Privacy Protection Authority"
	v, _ := answers.Scalar(catalog.QDatabaseRegistered)
	switch v {
	case "yes":
		entry.Status = "Compliant"
		entry.Compliant = true
	case "partial":
		entry.Status = "Partially registered"
	default:
		entry.Status = "Action required"
	}
	return entry
}

func securityEntry(answers model.AnswerSet) model.MatrixEntry {
	entry := model.MatrixEntry{
		Category:    types.CategorySecurity,
		Requirement: "The Data Security Regulations require encryption, access control, monitoring, backups and incident response",
		Status:      "Action required",
	}

	values, ok := answers.Values(catalog.QSecurityMeasures)
	if !ok {
		entry.Status = "Not assessed"
		return entry
	}

	selected := make(map[string]bool, len(values))
	for _, v := range values {
		selected[v] = true
	}
	if selected[catalog.NeutralNone] {
		entry.Status = "No measures in place"
		return entry
	}
	if selected["encryption"] && selected["access_control"] {
		if len(selected) >= 4 {
			entry.Status = "Compliant"
			entry.Compliant = true
		} else {
			entry.Status = "Core controls in place"
		}
	}
	return entry
}

func rightsEntry(answers model.AnswerSet) model.MatrixEntry {
	entry := model.MatrixEntry{
		Category:    types.CategoryRights,
		Requirement: "Procedures must exist for access, correction and deletion requests",
		Status:      "Action required",
	}

	values, ok := answers.Values(catalog.QRightsProcedures)
	if !ok {
		entry.Status = "Not assessed"
		return entry
	}

	selected := make(map[string]bool, len(values))
	for _, v := range values {
		selected[v] = true
	}
	if selected["access"] && selected["correction"] && selected["deletion"] {
		entry.Status = "Compliant"
		entry.Compliant = true
	} else if !selected[catalog.NeutralNone] && len(selected) > 0 {
		entry.Status = "Partial coverage"
	}
	return entry
}

func documentationEntry(answers model.AnswerSet) model.MatrixEntry {
	entry := model.MatrixEntry{
		Category:    types.CategoryDocumentation,
		Requirement: "A current privacy policy and processing records must be maintained",
		Status:      "Action required",
	}

	policy, ok := answers.Scalar(catalog.QPrivacyPolicy)
	if !ok {
		entry.Status = "Not assessed"
		return entry
	}
	records, _ := answers.Scalar(catalog.QProcessingRecords)

	switch {
	case policy == "updated" && records == "yes":
		entry.Status = "Compliant"
		entry.Compliant = true
	case policy == "updated":
		entry.Status = "Policy current, records incomplete"
	case policy == "outdated":
		entry.Status = "Policy outdated"
	default:
		entry.Status = "No privacy policy"
	}
	return entry
}

func consentEntry(answers model.AnswerSet) model.MatrixEntry {
	entry := model.MatrixEntry{
		Category:    types.CategoryConsent,
		Requirement: "Collection requires informed consent; direct marketing requires a separate opt-in",
		Status:      "Action required",
	}

	v, ok := answers.Scalar(catalog.QConsentMechanism)
	if !ok {
		entry.Status = "Not assessed"
		return entry
	}
	switch v {
	case "explicit":
		entry.Status = "Compliant"
		entry.Compliant = true
	case "implied":
		entry.Status = "Implied consent only"
	default:
		entry.Status = "No consent collected"
	}
	return entry
}
