package types

import "github.com/m-mizutani/goerr/v2"

// OrgType represents the kind of organization being assessed. Amendment 13
// applies different obligations to public bodies, data brokers and regulated
// sectors.
type OrgType string

const (
	OrgTypePrivate    OrgType = "private"
	OrgTypePublic     OrgType = "public"
	OrgTypeFinancial  OrgType = "financial"
	OrgTypeHealthcare OrgType = "healthcare"
	OrgTypeDataBroker OrgType = "data_broker"
	OrgTypeNonprofit  OrgType = "nonprofit"
)

// AllOrgTypes returns all valid organization types
func AllOrgTypes() []OrgType {
	return []OrgType{
		OrgTypePrivate,
		OrgTypePublic,
		OrgTypeFinancial,
		OrgTypeHealthcare,
		OrgTypeDataBroker,
		OrgTypeNonprofit,
	}
}

// IsValid checks if the organization type is valid
func (t OrgType) IsValid() bool {
	switch t {
	case OrgTypePrivate,
		OrgTypePublic,
		OrgTypeFinancial,
		OrgTypeHealthcare,
		OrgTypeDataBroker,
		OrgTypeNonprofit:
		return true
	default:
		return false
	}
}

// String returns the string representation of the organization type
func (t OrgType) String() string {
	return string(t)
}

// ParseOrgType parses a string into an OrgType
func ParseOrgType(s string) (OrgType, error) {
	t := OrgType(s)
	if !t.IsValid() {
		return "", goerr.New("invalid organization type", goerr.V("value", s))
	}
	return t, nil
}
