// Package scoring evaluates questionnaire answers against the rule catalog
// and produces a compliance score, risk classification, violations with fine
// estimates and prioritized recommendations.
package scoring

import (
	"math"
	"time"

	"github.com/privacy-lab/tikun13/pkg/catalog"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
)

// maxRiskUnits is the upper bound of risk units per question, applied after
// all context multipliers
const maxRiskUnits = 5.0

// Evaluate scores an answer set against a catalog. It is a pure function:
// all accumulators are local to the call, so repeated invocations with the
// same inputs yield identical results.
func Evaluate(answers model.AnswerSet, cat *catalog.Catalog) *model.Result {
	return EvaluateAt(time.Now(), answers, cat)
}

// EvaluateAt is Evaluate with an explicit evaluation time, which drives the
// statutory-deadline recommendation
func EvaluateAt(now time.Time, answers model.AnswerSet, cat *catalog.Catalog) *model.Result {
	acc := newAccumulator()
	profile := profileOf(answers)

	questions := cat.AllQuestions()
	for _, q := range questions {
		acc.maxScore += q.Weight * 5
	}

	for i := range questions {
		q := &questions[i].Question
		a, ok := answers[q.ID]
		if !ok || a.IsZero() {
			// Unanswered questions contribute 0 to the achieved score
			// but still count toward the max: incompleteness lowers
			// the score.
			continue
		}

		raw, ok := rawRisk(q, a)
		if !ok {
			// Malformed value shape for this question type: treated
			// as absent.
			continue
		}

		adjusted := math.Min(raw*profile.multiplier(q.ID), maxRiskUnits)
		acc.riskScore += adjusted * float64(q.Weight)
		acc.achieved += (maxRiskUnits - adjusted) * float64(q.Weight)
		acc.answered++
	}

	result := &model.Result{
		Score:         acc.normalizedScore(),
		RiskScore:     int(math.Round(acc.riskScore)),
		MaxScore:      acc.maxScore,
		AnsweredCount: acc.answered,
		QuestionCount: len(questions),
	}
	result.Classification = classify(result.RiskScore)
	result.Violations = collectViolations(answers, profile)
	for _, v := range result.Violations {
		result.TotalFine += v.Fine
	}
	result.Recommendations = collectRecommendations(now, answers, profile)
	result.Matrix = buildMatrix(answers, profile)

	return result
}

// accumulator holds the per-call mutable state of an evaluation. A fresh
// instance is created at the start of every run.
type accumulator struct {
	maxScore  int
	achieved  float64
	riskScore float64
	answered  int
}

func newAccumulator() *accumulator {
	return &accumulator{}
}

// normalizedScore returns round(achieved/max*100), or 0 for an empty catalog
func (a *accumulator) normalizedScore() int {
	if a.maxScore == 0 {
		return 0
	}
	return int(math.Round(a.achieved / float64(a.maxScore) * 100))
}
