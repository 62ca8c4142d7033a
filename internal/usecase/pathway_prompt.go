package usecase

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ardiansf/career-copilot/internal/dto"
	"github.com/ardiansf/career-copilot/internal/model"
)

const pathwaySystemPrompt = "You are a helpful assistant. Always return valid JSON only."

// distinctSkillNames dedupes by skill_name and sorts lexicographically.
// Duplicates are tolerated in the skills table, so set semantics live here.
func distinctSkillNames(skills []model.Skill) []string {
	seen := make(map[string]struct{}, len(skills))
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, ok := seen[s.SkillName]; ok {
			continue
		}
		seen[s.SkillName] = struct{}{}
		names = append(names, s.SkillName)
	}
	sort.Strings(names)
	return names
}

func orPlaceholder(s, placeholder string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

// buildPathwayPrompt renders the assessment instruction for the model. Pure
// string assembly; empty skill lists render as placeholders instead of
// failing.
func buildPathwayPrompt(emp *model.Employee, possessed, catalogue []model.Skill, asp dto.Aspiration) string {
	have := distinctSkillNames(possessed)
	required := distinctSkillNames(catalogue)

	var b strings.Builder
	b.WriteString("You are an AI career coach for a global ports/logistics organization.\n\n")

	b.WriteString("EMPLOYEE\n")
	fmt.Fprintf(&b, "- Name: %s\n", emp.Name)
	fmt.Fprintf(&b, "- Current Role: %s\n", emp.JobTitle)
	fmt.Fprintf(&b, "- Department/Unit: %s / %s\n", emp.Department, emp.Unit)
	fmt.Fprintf(&b, "- Current skills: %s\n\n", orPlaceholder(strings.Join(have, ", "), "None recorded"))

	b.WriteString("ASPIRATION\n")
	fmt.Fprintf(&b, "- Function Area: %s\n", asp.FunctionArea)
	fmt.Fprintf(&b, "- Specialization: %s\n", orPlaceholder(asp.Specialization, "Any"))
	fmt.Fprintf(&b, "- Short-term goal: %s\n", orPlaceholder(asp.ShortTerm, "N/A"))
	fmt.Fprintf(&b, "- Long-term goal: %s\n\n", orPlaceholder(asp.LongTerm, "N/A"))

	b.WriteString("CATALOGUE REQUIRED SKILLS (org-level)\n")
	fmt.Fprintf(&b, "%s\n\n", orPlaceholder(strings.Join(required, ", "), "None"))

	b.WriteString(`TASK
Return ONLY JSON with this exact top-level shape:
{
  "pathways":[
    {
      "title":"<role/pathway>",
      "readiness": 0-100,
      "time_estimate": "Now|6-9 months|12-15 months",
      "required_skills": ["..."],
      "gaps": ["..."],
      "tags": ["..."]
    }
  ],
  "internal_opportunities":[
    {
      "title":"<role>",
      "unit":"<unit/team>",
      "location":"<site/country>",
      "posted_at":"YYYY-MM-DD",
      "match": 0-100,
      "tags": ["..."]
    }
  ]
}
Use the catalogue to compute readiness & gaps; be concise and consistent.
`)

	return b.String()
}
