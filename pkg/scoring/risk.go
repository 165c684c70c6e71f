package scoring

import (
	"math"

	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// rawRisk derives the 0-5 risk units for an answered question before any
// context multiplier. ok=false means the answer shape does not match the
// question type and the question should be treated as unanswered.
func rawRisk(q *model.Question, a model.Answer) (float64, bool) {
	switch q.Type {
	case types.QuestionTypeSingleChoice:
		v, ok := a.Scalar()
		if !ok {
			return 0, false
		}
		// Unknown values default to 0 risk rather than failing
		return clampUnits(float64(q.Risk.Factors[v])), true

	case types.QuestionTypeMultiChoice:
		values, ok := a.Values()
		if !ok || len(values) == 0 {
			return 0, false
		}
		return clampUnits(multiChoiceRisk(&q.Risk, values)), true

	default:
		return 0, false
	}
}

func multiChoiceRisk(rule *model.RiskRule, values []string) float64 {
	selected := make(map[string]bool, len(values))
	for _, v := range values {
		selected[v] = true
	}
	hasNeutral := rule.Neutral != "" && selected[rule.Neutral]

	switch rule.Strategy {
	case model.RiskStrategyNeutralZero:
		if hasNeutral {
			return 0
		}
		return math.Max(0, maxRiskUnits-float64(len(values)))

	case model.RiskStrategyCountScaled:
		if hasNeutral {
			return 0
		}
		return math.Min(maxRiskUnits, float64(len(values)))

	case model.RiskStrategyMandatorySubset:
		if hasNeutral || len(rule.Mandatory) == 0 {
			return maxRiskUnits
		}
		missing := 0
		for _, m := range rule.Mandatory {
			if !selected[m] {
				missing++
			}
		}
		return maxRiskUnits * float64(missing) / float64(len(rule.Mandatory))

	default:
		// Generic fallback: each selected mitigation lowers the residual
		// risk, floored at 0. A selected neutral option means no
		// mitigations exist at all.
		if hasNeutral {
			return maxRiskUnits
		}
		return math.Max(0, maxRiskUnits-float64(len(values)))
	}
}

func clampUnits(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > maxRiskUnits {
		return maxRiskUnits
	}
	return v
}
