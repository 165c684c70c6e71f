package types

import "github.com/m-mizutani/goerr/v2"

// VolumeTier represents the number of data subjects whose personal data the
// organization processes. Tiers are ordered; several legal thresholds in
// Amendment 13 are expressed in terms of tier rank rather than exact counts.
type VolumeTier string

const (
	VolumeTierUnder1K   VolumeTier = "under_1k"
	VolumeTier1KTo10K   VolumeTier = "1k_10k"
	VolumeTier10KTo100K VolumeTier = "10k_100k"
	VolumeTier100KTo1M  VolumeTier = "100k_1m"
	VolumeTierOver1M    VolumeTier = "over_1m"
)

// AllVolumeTiers returns all valid volume tiers in ascending order
func AllVolumeTiers() []VolumeTier {
	return []VolumeTier{
		VolumeTierUnder1K,
		VolumeTier1KTo10K,
		VolumeTier10KTo100K,
		VolumeTier100KTo1M,
		VolumeTierOver1M,
	}
}

// IsValid checks if the volume tier is valid
func (t VolumeTier) IsValid() bool {
	switch t {
	case VolumeTierUnder1K,
		VolumeTier1KTo10K,
		VolumeTier10KTo100K,
		VolumeTier100KTo1M,
		VolumeTierOver1M:
		return true
	default:
		return false
	}
}

// Rank returns the position of the tier in ascending order, starting at 0.
// An unrecognized tier ranks below the smallest valid tier.
func (t VolumeTier) Rank() int {
	switch t {
	case VolumeTierUnder1K:
		return 0
	case VolumeTier1KTo10K:
		return 1
	case VolumeTier10KTo100K:
		return 2
	case VolumeTier100KTo1M:
		return 3
	case VolumeTierOver1M:
		return 4
	default:
		return -1
	}
}

// AtLeast reports whether the tier is equal to or larger than the other tier
func (t VolumeTier) AtLeast(other VolumeTier) bool {
	return t.Rank() >= other.Rank() && t.Rank() >= 0
}

// String returns the string representation of the volume tier
func (t VolumeTier) String() string {
	return string(t)
}

// ParseVolumeTier parses a string into a VolumeTier
func ParseVolumeTier(s string) (VolumeTier, error) {
	t := VolumeTier(s)
	if !t.IsValid() {
		return "", goerr.New("invalid volume tier", goerr.V("value", s))
	}
	return t, nil
}
