package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"performx/internal/analytics"
	"performx/internal/employee"
)

const (
	modelFlash = "gemini-3-flash-preview"
	modelPro   = "gemini-3-pro-preview"

	summarySystemInstruction = "You are an expert HR Analyst. Be constructive and data-driven."
	ytdSystemInstruction     = "You are a Chief People Officer generating a high-stakes formal internal brief. " +
		"Use authoritative, sophisticated language. Use markdown formatting for readability. " +
		"Focus heavily on comparative metrics."
)

func floatPtr(v float32) *float32 { return &v }

// summaryParams builds the performance-summary prompt for one employee.
func summaryParams(doc employee.Employee) GenerateParams {
	var reviews strings.Builder
	for _, r := range doc.Reviews {
		fmt.Fprintf(&reviews, "[%s] Rating: %d/5. Comment: %s\n", r.Category, r.Rating, r.Comments)
	}
	var goals strings.Builder
	for _, g := range doc.Goals {
		fmt.Fprintf(&goals, "%s (%s): %d%%\n", g.Title, g.Status, g.Progress)
	}

	prompt := fmt.Sprintf(`Analyze performance for %s:
REVIEWS: %s
GOALS: %s
SCORE: %g/5

Provide: Key Strengths, Areas for Improvement, Growth Recommendations, and a "tl;dr".`,
		doc.Name, reviews.String(), goals.String(), doc.PerformanceScore)

	return GenerateParams{
		Model:             modelFlash,
		Contents:          prompt,
		SystemInstruction: summarySystemInstruction,
		Temperature:       floatPtr(0.7),
	}
}

// ytdParams builds the year-to-date report prompt, contrasting the employee
// against company-wide benchmarks.
func ytdParams(doc employee.Employee, snap analytics.Snapshot) GenerateParams {
	assessments, _ := json.Marshal(doc.MonthlyAssessments)
	goals, _ := json.Marshal(doc.Goals)
	notes, _ := json.Marshal(doc.NotesHistory)

	prompt := fmt.Sprintf(`Generate a comprehensive STRATEGIC YEAR-TO-DATE (YTD) INTELLIGENCE REPORT for:
Subject: %s
Role: %s
Dept: %s
Hire Date: %s

INDIVIDUAL QUANTITATIVE DATA:
- Current Aggregate Performance Score: %g/5
- Monthly Check-in Ratings History: %s
- Attendance Integrity: %d unscheduled leave entries.
- Milestone Velocity: %s
- Qualitative Managerial Logs: %s

ORGANIZATIONAL CONTEXT (BENCHMARKS):
- Company-wide Average Performance Score: %.2f/5
- Company-wide Average Milestone Completion: %.0f%%

INSTRUCTIONS:
Provide a sophisticated analysis that contrasts this employee's trajectory against the organizational averages.

Please structure the report with these precise headers:
1. Executive Intelligence Summary (Overall vibe and high-level trajectory)
2. Comparative Performance Analysis (Deep-dive vs Company Averages. Is the employee a leader, a maintainer, or a risk?)
3. Reliability & Operational Integrity (Analysis of absences and consistency across months)
4. Strategic Alignment & Velocity (How their goals move the needle for %s)
5. Leadership Potential & Readiness (Assessment for promotion or advanced mentorship)
6. Corrective Actions or Optimization Strategy (Clear steps for the next quarter)`,
		doc.Name, doc.Role, doc.Department, doc.JoiningDate,
		doc.PerformanceScore, assessments, len(doc.Absences), goals, notes,
		snap.AvgScore, snap.AvgGoalCompletion, doc.Department)

	return GenerateParams{
		Model:             modelPro,
		Contents:          prompt,
		SystemInstruction: ytdSystemInstruction,
		Temperature:       floatPtr(0.4),
	}
}

// orgParams builds the short strategic-outlook prompt over the org snapshot.
func orgParams(snap analytics.Snapshot) GenerateParams {
	summary, _ := json.Marshal(snap)
	prompt := fmt.Sprintf("Analyze this organizational snapshot and provide a concise 2-sentence strategic outlook. Snapshot:\n%s", summary)

	return GenerateParams{
		Model:       modelFlash,
		Contents:    prompt,
		Temperature: floatPtr(0.5),
	}
}
