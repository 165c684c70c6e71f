package report_test

import (
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/domain/types"
	"github.com/privacy-lab/tikun13/pkg/report"
)

func sampleResult() *model.Result {
	return &model.Result{
		Score:     42,
		RiskScore: 78,
		MaxScore:  100,
		Classification: model.RiskClassification{
			Level:        types.RiskLevelHigh,
			Label:        "High Risk",
			Color:        "#f57c00",
			Description:  "Significant compliance gaps",
			ActionWindow: "within 30 days",
		},
		Violations: []model.Violation{
			{
				Severity:    types.SeverityHigh,
				Category:    types.CategoryDPO,
				Description: "No data protection officer appointed",
				Fine:        1000000,
				Citation:    "Privacy Protection Law, Section 17B1 (Amendment 13)",
			},
		},
		TotalFine: 1000000,
		Recommendations: []model.Recommendation{
			{
				Priority: types.PriorityCritical,
				Category: types.CategoryDPO,
				Action:   "Appoint a data protection officer",
				Timeline: "30 days",
			},
		},
		Matrix: []model.MatrixEntry{
			{Category: types.CategoryDPO, Status: "Missing", Requirement: "Appoint a DPO", Compliant: false},
			{Category: types.CategoryRegistration, Status: "Not required", Requirement: "Register the database", Compliant: true},
		},
		AnsweredCount: 8,
		QuestionCount: 11,
	}
}

func sampleScanResult() *model.WebScanResult {
	return &model.WebScanResult{
		ID:    model.NewScanID(),
		URL:   "https://example.co.il",
		Score: 80,
		Checks: []model.WebCheck{
			{Name: "ssl", Category: types.CategorySecurity, Status: types.CheckStatusCompliant, Weight: 20, Detail: "HTTPS with HSTS"},
			{Name: "privacy_policy", Category: types.CategoryDocumentation, Status: types.CheckStatusPartial, Weight: 20, Detail: "Policy found but coverage is thin"},
		},
		Violations: []model.WebViolation{
			{
				Severity:    types.SeverityMedium,
				Category:    types.CategoryDocumentation,
				Description: "Privacy policy does not cover required topics",
				FineMin:     10000,
				FineMax:     50000,
				Citation:    "Privacy Protection Law, Section 11 (Amendment 13)",
			},
		},
		Recommendations: []model.Recommendation{
			{Priority: types.PriorityHigh, Category: types.CategoryDocumentation, Action: "Expand the privacy policy"},
		},
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	report.RenderText(&buf, sampleResult())
	out := buf.String()

	gt.String(t, out).Contains("Amendment 13 Compliance Assessment")
	gt.String(t, out).Contains("not a legal determination")
	gt.String(t, out).Contains("Compliance score: 42/100")
	gt.String(t, out).Contains("High Risk")
	gt.String(t, out).Contains("Questions answered: 8 of 11")
	gt.String(t, out).Contains("No data protection officer appointed")
	gt.String(t, out).Contains("₪1,000,000")
	gt.String(t, out).Contains("Total fine exposure")
	gt.String(t, out).Contains("Section 17B1")
	gt.String(t, out).Contains("Not required")
	gt.String(t, out).Contains("Appoint a data protection officer")
	gt.String(t, out).Contains("Timeline: 30 days")
}

func TestRenderText_NoFindings(t *testing.T) {
	result := sampleResult()
	result.Violations = nil
	result.TotalFine = 0
	result.Recommendations = nil

	var buf bytes.Buffer
	report.RenderText(&buf, result)
	out := buf.String()

	gt.String(t, out).Contains("Compliance matrix")
	gt.String(t, out).NotContains("Total fine exposure")
	gt.String(t, out).NotContains("Recommendations")
}

func TestRenderScanText(t *testing.T) {
	var buf bytes.Buffer
	report.RenderScanText(&buf, sampleScanResult())
	out := buf.String()

	gt.String(t, out).Contains("Website scan: https://example.co.il")
	gt.String(t, out).Contains("Compliance score: 80/100")
	gt.String(t, out).Contains("ssl")
	gt.String(t, out).Contains("HTTPS with HSTS")
	gt.String(t, out).Contains("₪10,000 - ₪50,000")
	gt.String(t, out).Contains("Expand the privacy policy")
}

func TestRenderScanText_Failed(t *testing.T) {
	result := &model.WebScanResult{
		ID:     model.NewScanID(),
		URL:    "https://unreachable.example",
		Failed: true,
		Error:  "connection refused",
	}

	var buf bytes.Buffer
	report.RenderScanText(&buf, result)
	out := buf.String()

	gt.String(t, out).Contains("Scan failed: connection refused")
	gt.String(t, out).NotContains("Compliance score")
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, report.RenderHTML(&buf, sampleResult())).Required()
	out := buf.String()

	gt.String(t, out).Contains("<!DOCTYPE html>")
	gt.String(t, out).Contains("Amendment 13 Compliance Report")
	gt.String(t, out).Contains("42/100")
	gt.String(t, out).Contains("₪1,000,000")
	gt.String(t, out).Contains("Appoint a data protection officer")
}

func TestRenderScanHTML(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, report.RenderScanHTML(&buf, sampleScanResult())).Required()
	out := buf.String()

	gt.String(t, out).Contains("Website Privacy Scan")
	gt.String(t, out).Contains("https://example.co.il")
	gt.String(t, out).Contains("₪10,000")
}
