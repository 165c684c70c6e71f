package catalog

import (
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// Question IDs the scoring engine resolves by name. Everything else in the
// catalog is anonymous data as far as the engine is concerned.
const (
	QOrgType            types.QuestionID = "org_type"
	QDataSubjectsCount  types.QuestionID = "data_subjects_count"
	QSensitiveData      types.QuestionID = "sensitive_data"
	QDPOAppointed       types.QuestionID = "dpo_appointed"
	QDatabaseRegistered types.QuestionID = "database_registered"
	QSecurityMeasures   types.QuestionID = "security_measures"
	QBreachProcedure    types.QuestionID = "breach_procedure"
	QRightsProcedures   types.QuestionID = "rights_procedures"
	QPrivacyPolicy      types.QuestionID = "privacy_policy"
	QProcessingRecords  types.QuestionID = "processing_records"
	QConsentMechanism   types.QuestionID = "consent_mechanism"
)

// NeutralNone is the conventional "none of the above" option value used by
// multi-choice questions across the catalog
const NeutralNone = "none"

// Default returns the built-in Amendment 13 assessment catalog
func Default() *Catalog {
	return New(defaultSections())
}

func defaultSections() []model.Section {
	return []model.Section{
		{
			ID:          "org_profile",
			Title:       "Organization Profile",
			Icon:        "building",
			Description: "Basic facts that determine which Amendment 13 obligations apply to you",
			Questions: []model.Question{
				{
					ID:       QOrgType,
					Text:     "What type of organization are you?",
					Type:     types.QuestionTypeSingleChoice,
					Required: true,
					Weight:   3,
					Options: []model.Option{
						{Value: "private", Label: "Private company"},
						{Value: "public", Label: "Public body"},
						{Value: "financial", Label: "Financial institution"},
						{Value: "healthcare", Label: "Healthcare provider"},
						{Value: "data_broker", Label: "Data broker (trading in personal data)"},
						{Value: "nonprofit", Label: "Nonprofit organization"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"private":     1,
						"public":      2,
						"financial":   2,
						"healthcare":  2,
						"data_broker": 3,
						"nonprofit":   1,
					}},
				},
				{
					ID:       QDataSubjectsCount,
					Text:     "How many data subjects does your organization hold personal data about?",
					Type:     types.QuestionTypeSingleChoice,
					Required: true,
					Weight:   3,
					Options: []model.Option{
						{Value: "under_1k", Label: "Fewer than 1,000"},
						{Value: "1k_10k", Label: "1,000 - 10,000"},
						{Value: "10k_100k", Label: "10,000 - 100,000"},
						{Value: "100k_1m", Label: "100,000 - 1,000,000"},
						{Value: "over_1m", Label: "More than 1,000,000"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"under_1k": 0,
						"1k_10k":   1,
						"10k_100k": 2,
						"100k_1m":  3,
						"over_1m":  4,
					}},
				},
			},
		},
		{
			ID:          "data_inventory",
			Title:       "Data Inventory",
			Icon:        "archive",
			Description: "What personal data you process and how well you track it",
			Questions: []model.Question{
				{
					ID:       QSensitiveData,
					Text:     "Which categories of sensitive data do you process?",
					Type:     types.QuestionTypeMultiChoice,
					Required: true,
					Weight:   4,
					Options: []model.Option{
						{Value: "medical", Label: "Medical and genetic information"},
						{Value: "biometric", Label: "Biometric identifiers"},
						{Value: "financial", Label: "Financial standing and credit data"},
						{Value: "criminal", Label: "Criminal records"},
						{Value: "intimate", Label: "Intimate life, sexual orientation"},
						{Value: "beliefs", Label: "Political opinions and religious beliefs"},
						{Value: "location", Label: "Continuous location tracking"},
						{Value: NeutralNone, Label: "None of the above"},
					},
					Risk: model.RiskRule{
						Strategy: model.RiskStrategyCountScaled,
						Neutral:  NeutralNone,
					},
					Help: helpSensitiveData(),
				},
				{
					ID:       "data_mapping_done",
					Text:     "Have you mapped the personal data your organization holds?",
					Type:     types.QuestionTypeSingleChoice,
					Required: true,
					Weight:   2,
					Options: []model.Option{
						{Value: "yes", Label: "Yes, complete and current"},
						{Value: "partial", Label: "Partially"},
						{Value: "no", Label: "No"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"yes":     0,
						"partial": 2,
						"no":      4,
					}},
				},
				{
					ID:       "retention_policy",
					Text:     "Do you have a data retention and deletion policy?",
					Type:     types.QuestionTypeSingleChoice,
					Required: false,
					Weight:   2,
					Options: []model.Option{
						{Value: "yes", Label: "Yes, enforced"},
						{Value: "partial", Label: "Documented but not enforced"},
						{Value: "no", Label: "No"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"yes":     0,
						"partial": 2,
						"no":      4,
					}},
				},
			},
		},
		{
			ID:          "dpo",
			Title:       "Data Protection Officer",
			Icon:        "user-check",
			Description: "Amendment 13 requires many organizations to appoint a DPO",
			Questions: []model.Question{
				{
					ID:       QDPOAppointed,
					Text:     "Have you appointed a Data Protection Officer?",
					Type:     types.QuestionTypeSingleChoice,
					Required: true,
					Weight:   4,
					Options: []model.Option{
						{Value: "yes_internal", Label: "Yes, an internal appointment"},
						{Value: "yes_external", Label: "Yes, an external service provider"},
						{Value: "in_process", Label: "Appointment in progress"},
						{Value: "no", Label: "No"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"yes_internal": 0,
						"yes_external": 1,
						"in_process":   3,
						"no":           5,
					}},
					Help: helpDPO(),
				},
				{
					ID:       "dpo_training",
					Text:     "Has the DPO received privacy-law training in the last year?",
					Type:     types.QuestionTypeSingleChoice,
					Required: false,
					Weight:   2,
					Options: []model.Option{
						{Value: "yes", Label: "Yes"},
						{Value: "partial", Label: "Some training"},
						{Value: "no", Label: "No"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"yes":     0,
						"partial": 2,
						"no":      4,
					}},
					DependsOn: &model.Dependency{
						DependsOn: QDPOAppointed,
						ShowIf:    []string{"yes_internal", "yes_external"},
					},
				},
			},
		},
		{
			ID:          "registration",
			Title:       "Database Registration",
			Icon:        "clipboard",
			Description: "Registration duties with the Privacy Protection Authority",
			Questions: []model.Question{
				{
					ID:       QDatabaseRegistered,
					Text:     "Are your databases registered with the Privacy Protection Authority where required?",
					Type:     types.QuestionTypeSingleChoice,
					Required: true,
					Weight:   3,
					Options: []model.Option{
						{Value: "yes", Label: "Yes, all required databases"},
						{Value: "partial", Label: "Some databases"},
						{Value: "no", Label: "No"},
						{Value: "not_required", Label: "Registration is not required for us"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"yes":          0,
						"partial":      2,
						"no":           5,
						"not_required": 1,
					}},
				},
			},
		},
		{
			ID:          "security",
			Title:       "Information Security",
			Icon:        "lock",
			Description: "Technical and organizational safeguards under the Data Security Regulations",
			Questions: []model.Question{
				{
					ID:       QSecurityMeasures,
					Text:     "Which security measures are in place?",
					Type:     types.QuestionTypeMultiChoice,
					Required: true,
					Weight:   4,
					Options: []model.Option{
						{Value: "encryption", Label: "Encryption at rest and in transit"},
						{Value: "access_control", Label: "Role-based access control"},
						{Value: "monitoring", Label: "Access logging and monitoring"},
						{Value: "backups", Label: "Regular tested backups"},
						{Value: "incident_response", Label: "Incident response plan"},
						{Value: NeutralNone, Label: "None of these"},
					},
					Risk: model.RiskRule{
						Strategy:  model.RiskStrategyMandatorySubset,
						Neutral:   NeutralNone,
						Mandatory: []string{"encryption", "access_control", "monitoring", "backups", "incident_response"},
					},
				},
				{
					ID:       QBreachProcedure,
					Text:     "Do you have a documented data-breach notification procedure?",
					Type:     types.QuestionTypeSingleChoice,
					Required: true,
					Weight:   3,
					Options: []model.Option{
						{Value: "yes", Label: "Yes, tested"},
						{Value: "partial", Label: "Documented but never exercised"},
						{Value: "no", Label: "No"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"yes":     0,
						"partial": 2,
						"no":      5,
					}},
				},
				{
					ID:       "access_reviews",
					Text:     "How often do you review who has access to personal data?",
					Type:     types.QuestionTypeSingleChoice,
					Required: false,
					Weight:   2,
					Options: []model.Option{
						{Value: "regular", Label: "On a fixed schedule"},
						{Value: "occasional", Label: "Occasionally"},
						{Value: "never", Label: "Never"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"regular":    0,
						"occasional": 2,
						"never":      4,
					}},
				},
			},
		},
		{
			ID:          "rights",
			Title:       "Data Subject Rights",
			Icon:        "scale",
			Description: "Handling access, correction and deletion requests",
			Questions: []model.Question{
				{
					ID:       QRightsProcedures,
					Text:     "Which data subject requests can you fulfil through an established procedure?",
					Type:     types.QuestionTypeMultiChoice,
					Required: true,
					Weight:   3,
					Options: []model.Option{
						{Value: "access", Label: "Right of access"},
						{Value: "correction", Label: "Right of correction"},
						{Value: "deletion", Label: "Right of deletion"},
						{Value: "objection", Label: "Objection to direct marketing"},
						{Value: NeutralNone, Label: "No established procedures"},
					},
					// No explicit strategy: generic fallback, more
					// covered rights mean lower residual risk
					Risk: model.RiskRule{Neutral: NeutralNone},
				},
				{
					ID:       "response_sla",
					Text:     "How quickly do you respond to data subject requests?",
					Type:     types.QuestionTypeSingleChoice,
					Required: false,
					Weight:   2,
					Options: []model.Option{
						{Value: "under_30_days", Label: "Within 30 days"},
						{Value: "over_30_days", Label: "Longer than 30 days"},
						{Value: "no_process", Label: "There is no defined process"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"under_30_days": 0,
						"over_30_days":  3,
						"no_process":    5,
					}},
				},
			},
		},
		{
			ID:          "documentation",
			Title:       "Documentation",
			Icon:        "file-text",
			Description: "Written policies and processing records",
			Questions: []model.Question{
				{
					ID:       QPrivacyPolicy,
					Text:     "What is the state of your privacy policy?",
					Type:     types.QuestionTypeSingleChoice,
					Required: true,
					Weight:   3,
					Options: []model.Option{
						{Value: "updated", Label: "Published and updated for Amendment 13"},
						{Value: "outdated", Label: "Published but not updated"},
						{Value: "missing", Label: "No privacy policy"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"updated":  0,
						"outdated": 3,
						"missing":  5,
					}},
				},
				{
					ID:       QProcessingRecords,
					Text:     "Do you keep records of processing activities?",
					Type:     types.QuestionTypeSingleChoice,
					Required: false,
					Weight:   2,
					Options: []model.Option{
						{Value: "yes", Label: "Yes, current"},
						{Value: "partial", Label: "Partial records"},
						{Value: "no", Label: "No"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"yes":     0,
						"partial": 2,
						"no":      4,
					}},
				},
			},
		},
		{
			ID:          "consent",
			Title:       "Consent & Transfers",
			Icon:        "check-circle",
			Description: "Lawful basis for collection and onward transfers",
			Questions: []model.Question{
				{
					ID:       QConsentMechanism,
					Text:     "How do you obtain consent for collecting personal data?",
					Type:     types.QuestionTypeSingleChoice,
					Required: true,
					Weight:   3,
					Options: []model.Option{
						{Value: "explicit", Label: "Explicit, informed opt-in"},
						{Value: "implied", Label: "Implied consent"},
						{Value: "none", Label: "Consent is not collected"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"explicit": 0,
						"implied":  3,
						"none":     5,
					}},
				},
				{
					ID:       "third_party_transfer",
					Text:     "Do you transfer personal data to third parties?",
					Type:     types.QuestionTypeSingleChoice,
					Required: false,
					Weight:   2,
					Options: []model.Option{
						{Value: "no_transfer", Label: "No transfers"},
						{Value: "with_agreements", Label: "Yes, under data processing agreements"},
						{Value: "without_agreements", Label: "Yes, without formal agreements"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"no_transfer":        0,
						"with_agreements":    1,
						"without_agreements": 5,
					}},
				},
				{
					ID:       "marketing_consent",
					Text:     "Is consent for direct marketing collected separately from service consent?",
					Type:     types.QuestionTypeSingleChoice,
					Required: false,
					Weight:   2,
					Options: []model.Option{
						{Value: "separate", Label: "Yes, a separate opt-in"},
						{Value: "bundled", Label: "Bundled with general consent"},
						{Value: "no_marketing", Label: "We do no direct marketing"},
					},
					Risk: model.RiskRule{Factors: map[string]int{
						"separate":     0,
						"bundled":      3,
						"no_marketing": 0,
					}},
					DependsOn: &model.Dependency{
						DependsOn: QConsentMechanism,
						ShowIf:    []string{"explicit", "implied"},
					},
				},
			},
		},
	}
}

func helpSensitiveData() *model.HelpContent {
	return &model.HelpContent{
		Title:       "Sensitive data under Amendment 13",
		Description: "Amendment 13 broadens the definition of highly sensitive data and attaches stricter duties and higher fines to its processing.",
		Requirements: []string{
			"Document every sensitive data category you hold",
			"Apply enhanced security controls to sensitive records",
			"Check whether the volume of sensitive records triggers DPO and registration duties",
		},
		Citation: "Privacy Protection Law, definition of 'information with special sensitivity'",
	}
}

func helpDPO() *model.HelpContent {
	return &model.HelpContent{
		Title:       "Who must appoint a DPO",
		Description: "Public bodies, data brokers and large-scale processors of sensitive data must appoint a Data Protection Officer.",
		Requirements: []string{
			"Public bodies: always required",
			"Data brokers: required above the smallest subject-volume tier",
			"Financial and healthcare organizations: required at 10,000 subjects or more",
		},
		Citation: "Privacy Protection Law, Section 17B1 (Amendment 13)",
	}
}
