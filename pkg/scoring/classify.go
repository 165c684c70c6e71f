package scoring

import (
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// Risk level thresholds are fixed constants, not derived from the catalog,
// so a level keeps its meaning even if the questionnaire grows.
const (
	riskThresholdMedium    = 25
	riskThresholdHigh      = 60
	riskThresholdCritical  = 110
	riskThresholdEmergency = 170
)

var classifications = map[types.RiskLevel]model.RiskClassification{
	types.RiskLevelLow: {
		Level:        types.RiskLevelLow,
		Label:        "Low risk",
		Color:        "#2e7d32",
		Description:  "Exposure is limited; keep controls current",
		ActionWindow: "Review annually",
	},
	types.RiskLevelMedium: {
		Level:        types.RiskLevelMedium,
		Label:        "Medium risk",
		Color:        "#f9a825",
		Description:  "Notable gaps exist; plan remediation",
		ActionWindow: "Within 6 months",
	},
	types.RiskLevelHigh: {
		Level:        types.RiskLevelHigh,
		Label:        "High risk",
		Color:        "#ef6c00",
		Description:  "Serious gaps likely to draw enforcement attention",
		ActionWindow: "Within 90 days",
	},
	types.RiskLevelCritical: {
		Level:        types.RiskLevelCritical,
		Label:        "Critical risk",
		Color:        "#c62828",
		Description:  "Major violations with substantial fine exposure",
		ActionWindow: "Within 30 days",
	},
	types.RiskLevelEmergency: {
		Level:        types.RiskLevelEmergency,
		Label:        "Emergency",
		Color:        "#6a1b9a",
		Description:  "Systemic non-compliance; immediate action required",
		ActionWindow: "Immediately",
	},
}

// classify buckets the raw weighted risk score into one of five ordered
// levels via ascending fixed thresholds
func classify(riskScore int) model.RiskClassification {
	switch {
	case riskScore < riskThresholdMedium:
		return classifications[types.RiskLevelLow]
	case riskScore < riskThresholdHigh:
		return classifications[types.RiskLevelMedium]
	case riskScore < riskThresholdCritical:
		return classifications[types.RiskLevelHigh]
	case riskScore < riskThresholdEmergency:
		return classifications[types.RiskLevelCritical]
	default:
		return classifications[types.RiskLevelEmergency]
	}
}
