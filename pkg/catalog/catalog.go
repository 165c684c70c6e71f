// Package catalog holds the static questionnaire that drives the compliance
// assessment: sections of weighted questions with declarative risk rules.
package catalog

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
)

// Catalog is an immutable set of questionnaire sections, loaded once at
// startup. All lookups are index-backed.
type Catalog struct {
	sections []model.Section
	byID     map[types.QuestionID]*model.SectionQuestion
	flat     []model.SectionQuestion
}

// New builds a Catalog from ordered sections
func New(sections []model.Section) *Catalog {
	c := &Catalog{
		sections: sections,
		byID:     make(map[types.QuestionID]*model.SectionQuestion),
	}
	for _, sec := range sections {
		for _, q := range sec.Questions {
			sq := model.SectionQuestion{
				Question:     q,
				SectionID:    sec.ID,
				SectionTitle: sec.Title,
			}
			c.flat = append(c.flat, sq)
		}
	}
	for i := range c.flat {
		c.byID[c.flat[i].ID] = &c.flat[i]
	}
	return c
}

// Sections returns the ordered sections of the catalog
func (c *Catalog) Sections() []model.Section {
	return c.sections
}

// FindQuestion retrieves a question by ID, tagged with its owning section.
// It returns nil when the ID is unknown.
func (c *Catalog) FindQuestion(id types.QuestionID) *model.SectionQuestion {
	return c.byID[id]
}

// AllQuestions returns every question in catalog order, each tagged with its
// owning section
func (c *Catalog) AllQuestions() []model.SectionQuestion {
	return c.flat
}

// VisibleQuestions returns the questions whose dependency condition (if any)
// is satisfied by the given answers. A question with no dependency is always
// visible; a dependent question is visible only when the parent question is
// answered with one of the trigger values.
func (c *Catalog) VisibleQuestions(answers model.AnswerSet) []model.SectionQuestion {
	visible := make([]model.SectionQuestion, 0, len(c.flat))
	for _, q := range c.flat {
		if c.isVisible(&q.Question, answers) {
			visible = append(visible, q)
		}
	}
	return visible
}

func (c *Catalog) isVisible(q *model.Question, answers model.AnswerSet) bool {
	if q.DependsOn == nil {
		return true
	}
	parent, ok := answers[q.DependsOn.DependsOn]
	if !ok || parent.IsZero() {
		return false
	}
	for _, trigger := range q.DependsOn.ShowIf {
		if parent.Contains(trigger) {
			return true
		}
	}
	return false
}

// Validate checks the catalog for duplicate IDs, malformed questions and
// dangling dependency references
func (c *Catalog) Validate() error {
	sectionIDs := make(map[types.SectionID]bool, len(c.sections))
	questionIDs := make(map[types.QuestionID]bool, len(c.flat))

	for i := range c.sections {
		sec := &c.sections[i]
		if err := sec.Validate(); err != nil {
			return goerr.Wrap(err, "invalid section")
		}
		if sectionIDs[sec.ID] {
			return goerr.New("duplicate section ID", goerr.V("id", sec.ID))
		}
		sectionIDs[sec.ID] = true

		for j := range sec.Questions {
			q := &sec.Questions[j]
			if questionIDs[q.ID] {
				return goerr.New("duplicate question ID", goerr.V("id", q.ID))
			}
			questionIDs[q.ID] = true
		}
	}

	for _, q := range c.flat {
		if q.DependsOn == nil {
			continue
		}
		parent := c.byID[q.DependsOn.DependsOn]
		if parent == nil {
			return goerr.New("dependency references unknown question",
				goerr.V("question", q.ID), goerr.V("depends_on", q.DependsOn.DependsOn))
		}
		for _, trigger := range q.DependsOn.ShowIf {
			if !parent.HasOption(trigger) {
				return goerr.New("dependency trigger references unknown option",
					goerr.V("question", q.ID), goerr.V("depends_on", q.DependsOn.DependsOn), goerr.V("value", trigger))
			}
		}
	}

	return nil
}

// MaxScore returns the theoretical maximum achievable score,
// sum of weight*5 over every question in the catalog
func (c *Catalog) MaxScore() int {
	total := 0
	for _, q := range c.flat {
		total += q.Weight * 5
	}
	return total
}
