package usecase

import (
	"fmt"
	"strings"
	"time"
)

const leadershipSystemPrompt = "You are an expert HR analyst. Always return valid JSON in your responses."

func yearsSince(t *time.Time) float64 {
	if t == nil {
		return 0
	}
	return time.Since(*t).Hours() / (365.25 * 24)
}

func formatDate(t *time.Time, fallback string) string {
	if t == nil {
		return fallback
	}
	return t.Format("2006-01-02")
}

func buildLeadershipPrompt(p *leadershipProfile) string {
	var positions []string
	for _, pos := range p.positions {
		org := pos.Organization
		if org == "" {
			org = "PSA"
		}
		positions = append(positions, fmt.Sprintf("- %s at %s (%s to %s)",
			pos.RoleTitle, org, formatDate(pos.StartDate, "?"), formatDate(pos.EndDate, "Present")))
	}

	var skills []string
	for _, s := range p.skills {
		skills = append(skills, fmt.Sprintf("- %s → %s: %s", s.FunctionArea, s.Specialization, s.SkillName))
	}

	var projects []string
	for _, pr := range p.projects {
		line := fmt.Sprintf("- %s (%s): %s", pr.ProjectName, pr.Role, pr.Description)
		if pr.Outcomes != "" {
			line += fmt.Sprintf(". Outcomes: %s", pr.Outcomes)
		}
		projects = append(projects, line)
	}

	var experiences []string
	for _, e := range p.experiences {
		line := fmt.Sprintf("- %s: %s", e.Type, e.Program)
		if e.Focus != "" {
			line += " - " + e.Focus
		}
		experiences = append(experiences, line)
	}

	emp := p.employee
	var b strings.Builder
	b.WriteString("You are an expert HR analyst specializing in leadership potential assessment.\n")
	b.WriteString("Analyze the following employee profile and predict their future leadership potential based on behavioral patterns, performance trajectory, and engagement indicators.\n\n")

	b.WriteString("# Employee Profile\n\n")
	fmt.Fprintf(&b, "**Name:** %s\n", emp.Name)
	fmt.Fprintf(&b, "**Employee ID:** %s\n", emp.EmployeeID)
	fmt.Fprintf(&b, "**Current Role:** %s\n", emp.JobTitle)
	fmt.Fprintf(&b, "**Department:** %s\n", emp.Department)
	fmt.Fprintf(&b, "**Unit:** %s\n", emp.Unit)
	fmt.Fprintf(&b, "**Tenure:** %.1f years (hired %s)\n", yearsSince(emp.HireDate), formatDate(emp.HireDate, "N/A"))
	fmt.Fprintf(&b, "**Time in Current Role:** %.1f years (since %s)\n", yearsSince(emp.InRoleSince), formatDate(emp.InRoleSince, "N/A"))
	fmt.Fprintf(&b, "**Reports to:** %s\n\n", orPlaceholder(emp.LineManager, "N/A"))

	b.WriteString("## Career Progression (Positions History)\n")
	b.WriteString(orPlaceholder(strings.Join(positions, "\n"), "No position history available") + "\n\n")

	b.WriteString("## Technical Skills & Competencies\n")
	b.WriteString(orPlaceholder(strings.Join(skills, "\n"), "No skills recorded") + "\n\n")

	b.WriteString("## Project Leadership & Impact\n")
	b.WriteString(orPlaceholder(strings.Join(projects, "\n"), "No projects recorded") + "\n\n")

	b.WriteString("## Learning & Development Experiences\n")
	b.WriteString(orPlaceholder(strings.Join(experiences, "\n"), "No experiences recorded") + "\n\n")

	b.WriteString(`# Assessment Task

Based on this data, provide a structured leadership potential assessment:

1. Overall Leadership Potential Score (0-100).
2. Potential Tier: HIGH POTENTIAL, MEDIUM-HIGH POTENTIAL, MEDIUM POTENTIAL, or DEVELOPING.
3. Readiness Statement: one sentence on readiness for advancement.
4. Performance Analysis (0-100): career progression velocity, project impact, outcomes delivery.
5. Learning Agility Analysis (0-100): skill diversity, role transitions, stretch assignments.
6. Stability & Experience (0-100): tenure and consistency.
7. Key Strengths: 3-5 specific strengths observed from the data.
8. Development Areas: 2-3 areas for improvement.
9. Recommended Development Actions: 3 specific interventions.
10. Next Role Recommendations: 2-3 logical next career moves.
11. Risk Factors: any concerns.
12. Behavioral Indicators: inferred traits.

# Output Format

Return your assessment as a valid JSON object with this exact structure:

` + "```json" + `
{
  "overall_score": 75,
  "tier": "MEDIUM-HIGH POTENTIAL",
  "readiness": "Ready for team lead or specialist lead roles",
  "component_scores": {
    "performance": 72,
    "learning_agility": 68,
    "stability": 80
  },
  "strengths": ["strength 1", "strength 2", "strength 3"],
  "development_areas": ["area 1", "area 2"],
  "recommended_development": ["action 1", "action 2", "action 3"],
  "next_role_options": ["role 1", "role 2"],
  "risk_factors": ["risk 1"],
  "behavioral_indicators": {
    "adaptability": "high",
    "initiative": "medium",
    "learning_orientation": "high",
    "collaboration": "medium",
    "strategic_thinking": "emerging"
  },
  "narrative_summary": "A 2-3 sentence overall assessment of leadership potential and trajectory."
}
` + "```" + `

Be data-driven, fair, and specific in your assessment. Use only the information provided, do not invent data.`)

	return b.String()
}
