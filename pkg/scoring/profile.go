package scoring

import (
	"strings"

	"github.com/privacy-lab/tikun13/pkg/catalog"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// orgProfile captures the organizational context that scales per-question
// risk: organization type, data-subject volume and sensitive-data exposure.
// It is derived once per evaluation from the named profile answers.
type orgProfile struct {
	orgType      types.OrgType
	tier         types.VolumeTier
	hasSensitive bool
	dpoMissing   bool
}

func profileOf(answers model.AnswerSet) orgProfile {
	var p orgProfile

	if v, ok := answers.Scalar(catalog.QOrgType); ok {
		p.orgType = types.OrgType(v)
	}
	if v, ok := answers.Scalar(catalog.QDataSubjectsCount); ok {
		p.tier = types.VolumeTier(v)
	}
	if values, ok := answers.Values(catalog.QSensitiveData); ok {
		for _, v := range values {
			if v != catalog.NeutralNone {
				p.hasSensitive = true
				break
			}
		}
	}
	if v, ok := answers.Scalar(catalog.QDPOAppointed); ok {
		p.dpoMissing = v == "no"
	}

	return p
}

// multiplier returns the combined context multiplier for one question. All
// factors multiply together; the product is unbounded here and the caller
// clamps the adjusted risk to 5 units.
func (p orgProfile) multiplier(questionID types.QuestionID) float64 {
	m := 1.0

	switch p.orgType {
	case types.OrgTypePublic:
		m *= 1.3
	case types.OrgTypeDataBroker:
		m *= 1.4
	case types.OrgTypeFinancial, types.OrgTypeHealthcare:
		m *= 1.2
	}

	if p.hasSensitive {
		m *= 1.2
	}

	switch p.tier.Rank() {
	case 4:
		m *= 1.3
	case 2, 3:
		m *= 1.1
	}

	// DPO-topic questions carry extra weight when the organization must
	// appoint one and explicitly has not
	if strings.Contains(questionID.String(), "dpo") && p.requiresDPO() && p.dpoMissing {
		m *= 1.5
	}

	return m
}

// requiresDPO implements the Amendment 13 appointment rule: public bodies
// always; data brokers above the smallest volume tier; financial and
// healthcare organizations in the three largest tiers.
func (p orgProfile) requiresDPO() bool {
	switch p.orgType {
	case types.OrgTypePublic:
		return true
	case types.OrgTypeDataBroker:
		return p.tier.Rank() >= 1
	case types.OrgTypeFinancial, types.OrgTypeHealthcare:
		return p.tier.Rank() >= 2
	default:
		return false
	}
}

// requiresRegistration implements the database registration rule: public
// bodies and data brokers must register.
func (p orgProfile) requiresRegistration() bool {
	return p.orgType == types.OrgTypePublic || p.orgType == types.OrgTypeDataBroker
}

// RequiresDPO reports whether an organization of the given type and volume
// tier must appoint a Data Protection Officer
func RequiresDPO(org types.OrgType, tier types.VolumeTier) bool {
	return orgProfile{orgType: org, tier: tier}.requiresDPO()
}

// RequiresRegistration reports whether an organization of the given type must
// register its databases with the Privacy Protection Authority
func RequiresRegistration(org types.OrgType) bool {
	return orgProfile{orgType: org}.requiresRegistration()
}
