package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
)

func TestAnswer_Scalar(t *testing.T) {
	a := model.NewAnswer("yes")
	gt.Bool(t, a.IsZero()).False()

	v, ok := a.Scalar()
	gt.Bool(t, ok).True()
	gt.Value(t, v).Equal("yes")

	_, ok = a.Values()
	gt.Bool(t, ok).False()

	gt.Bool(t, a.Contains("yes")).True()
	gt.Bool(t, a.Contains("no")).False()
}

func TestAnswer_Multi(t *testing.T) {
	a := model.NewMultiAnswer("encryption", "backups")
	gt.Bool(t, a.IsZero()).False()

	_, ok := a.Scalar()
	gt.Bool(t, ok).False()

	values, ok := a.Values()
	gt.Bool(t, ok).True()
	gt.Array(t, values).Length(2)

	gt.Bool(t, a.Contains("backups")).True()
	gt.Bool(t, a.Contains("monitoring")).False()
}

func TestAnswer_Zero(t *testing.T) {
	var a model.Answer
	gt.Bool(t, a.IsZero()).True()

	gt.Bool(t, model.NewMultiAnswer().IsZero()).True()
	gt.Bool(t, model.NewAnswer("").IsZero()).True()
}

func TestAnswer_JSON(t *testing.T) {
	t.Run("scalar encodes as string", func(t *testing.T) {
		data, err := json.Marshal(model.NewAnswer("explicit"))
		gt.NoError(t, err)
		gt.Value(t, string(data)).Equal(`"explicit"`)
	})

	t.Run("multi encodes as array", func(t *testing.T) {
		data, err := json.Marshal(model.NewMultiAnswer("medical", "biometric"))
		gt.NoError(t, err)
		gt.Value(t, string(data)).Equal(`["medical","biometric"]`)
	})

	t.Run("string decodes to scalar", func(t *testing.T) {
		var a model.Answer
		gt.NoError(t, json.Unmarshal([]byte(`"no"`), &a))
		v, ok := a.Scalar()
		gt.Bool(t, ok).True()
		gt.Value(t, v).Equal("no")
	})

	t.Run("array decodes to multi", func(t *testing.T) {
		var a model.Answer
		gt.NoError(t, json.Unmarshal([]byte(`["access","deletion"]`), &a))
		values, ok := a.Values()
		gt.Bool(t, ok).True()
		gt.Array(t, values).Length(2)
	})

	t.Run("malformed shape decodes to empty without error", func(t *testing.T) {
		for _, raw := range []string{`42`, `{"v":1}`, `true`, `[1,2]`} {
			var a model.Answer
			gt.NoError(t, json.Unmarshal([]byte(raw), &a))
			gt.Bool(t, a.IsZero()).True()
		}
	})
}

func TestAnswerSet(t *testing.T) {
	set := model.AnswerSet{
		"org_type":       model.NewAnswer("private"),
		"sensitive_data": model.NewMultiAnswer("medical"),
	}

	t.Run("scalar lookup", func(t *testing.T) {
		v, ok := set.Scalar("org_type")
		gt.Bool(t, ok).True()
		gt.Value(t, v).Equal("private")

		_, ok = set.Scalar("sensitive_data")
		gt.Bool(t, ok).False()

		_, ok = set.Scalar("missing")
		gt.Bool(t, ok).False()
	})

	t.Run("values lookup", func(t *testing.T) {
		values, ok := set.Values("sensitive_data")
		gt.Bool(t, ok).True()
		gt.Array(t, values).Length(1)

		_, ok = set.Values("org_type")
		gt.Bool(t, ok).False()
	})

	t.Run("answered", func(t *testing.T) {
		gt.Bool(t, set.Answered("org_type")).True()
		gt.Bool(t, set.Answered("missing")).False()
	})

	t.Run("clone is independent", func(t *testing.T) {
		clone := set.Clone()
		clone["org_type"] = model.NewAnswer("public")

		v, _ := set.Scalar("org_type")
		gt.Value(t, v).Equal("private")
	})

	t.Run("round trips through JSON", func(t *testing.T) {
		data, err := json.Marshal(set)
		gt.NoError(t, err)

		var decoded model.AnswerSet
		gt.NoError(t, json.Unmarshal(data, &decoded))

		v, ok := decoded.Scalar("org_type")
		gt.Bool(t, ok).True()
		gt.Value(t, v).Equal("private")
		values, ok := decoded.Values("sensitive_data")
		gt.Bool(t, ok).True()
		gt.Array(t, values).Length(1)
	})
}
