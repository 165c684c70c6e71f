package types

// CheckStatus represents the outcome of a single heuristic website check
type CheckStatus string

const (
	CheckStatusCompliant    CheckStatus = "compliant"
	CheckStatusPartial      CheckStatus = "partial"
	CheckStatusNonCompliant CheckStatus = "non-compliant"
	CheckStatusError        CheckStatus = "error"
)

// IsValid checks if the check status is valid
func (s CheckStatus) IsValid() bool {
	switch s {
	case CheckStatusCompliant, CheckStatusPartial, CheckStatusNonCompliant, CheckStatusError:
		return true
	default:
		return false
	}
}

// String returns the string representation of the check status
func (s CheckStatus) String() string {
	return string(s)
}
