package types

// RiskLevel represents the discrete classification of an organization's total
// risk score. Thresholds are fixed constants so the meaning of a level does
// not drift when the questionnaire grows.
type RiskLevel string

const (
	RiskLevelLow       RiskLevel = "low"
	RiskLevelMedium    RiskLevel = "medium"
	RiskLevelHigh      RiskLevel = "high"
	RiskLevelCritical  RiskLevel = "critical"
	RiskLevelEmergency RiskLevel = "emergency"
)

// AllRiskLevels returns all valid risk levels in ascending order
func AllRiskLevels() []RiskLevel {
	return []RiskLevel{
		RiskLevelLow,
		RiskLevelMedium,
		RiskLevelHigh,
		RiskLevelCritical,
		RiskLevelEmergency,
	}
}

// IsValid checks if the risk level is valid
func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelCritical, RiskLevelEmergency:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk level
func (l RiskLevel) String() string {
	return string(l)
}
