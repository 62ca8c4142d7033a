package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ardiansf/career-copilot/internal/dto"
	"github.com/ardiansf/career-copilot/internal/model"
	"github.com/tidwall/gjson"
)

var (
	backtickBlockRe = regexp.MustCompile("(?is)```(?:json)?(.*?)```")
	tildeBlockRe    = regexp.MustCompile("(?is)~~~(?:json)?(.*?)~~~")
	fenceStartRe    = regexp.MustCompile("(?i)^(?:```|~~~)\\s*(?:json)?")
	fenceEndRe      = regexp.MustCompile("(?i)(?:```|~~~)\\s*$")
)

// stripCodeFence unwraps a ``` or ~~~ fenced block (optionally tagged json).
// Stray unpaired fences are removed too.
func stripCodeFence(text string) string {
	body := strings.TrimSpace(text)
	if m := backtickBlockRe.FindStringSubmatch(body); m != nil && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1])
	}
	if m := tildeBlockRe.FindStringSubmatch(body); m != nil && strings.TrimSpace(m[1]) != "" {
		return strings.TrimSpace(m[1])
	}
	body = fenceStartRe.ReplaceAllString(body, "")
	body = fenceEndRe.ReplaceAllString(body, "")
	return strings.TrimSpace(body)
}

// fallbackResult derives a PathwayResult from the catalogue and possessed
// skills alone: gaps = required − possessed, readiness as a rounded
// percentage, time estimate bucketed by gap count.
func fallbackResult(possessed, catalogue []model.Skill, asp dto.Aspiration) dto.PathwayResult {
	required := distinctSkillNames(catalogue)

	have := make(map[string]struct{}, len(possessed))
	for _, s := range possessed {
		have[s.SkillName] = struct{}{}
	}

	gaps := make([]string, 0, len(required))
	for _, name := range required {
		if _, ok := have[name]; !ok {
			gaps = append(gaps, name)
		}
	}
	sort.Strings(gaps)

	denom := len(required)
	if denom < 1 {
		denom = 1
	}
	readiness := int(math.Round(float64(len(required)-len(gaps)) / float64(denom) * 100))

	timeEstimate := "12-15 months"
	switch {
	case len(gaps) == 0:
		timeEstimate = "Now"
	case len(gaps) <= 3:
		timeEstimate = "6-9 months"
	}

	title := asp.FunctionArea
	if asp.Specialization != "" {
		title = fmt.Sprintf("%s — %s", asp.FunctionArea, asp.Specialization)
	}

	return dto.PathwayResult{
		Pathways: []dto.Pathway{
			{
				Title:          title,
				Readiness:      readiness,
				TimeEstimate:   timeEstimate,
				RequiredSkills: required,
				Gaps:           gaps,
				Tags:           []string{},
			},
		},
		InternalOpportunities: []dto.InternalOpportunity{},
	}
}

// normalizeOrFallback is total over its inputs: whatever the model returned
// (fenced, malformed, empty), the caller gets a well-formed PathwayResult.
// Model-supplied arrays override the fallback without per-item validation;
// downstream consumers depend on that permissiveness.
func normalizeOrFallback(raw string, possessed, catalogue []model.Skill, asp dto.Aspiration) dto.PathwayResult {
	result := fallbackResult(possessed, catalogue, asp)

	body := stripCodeFence(raw)
	if body == "" || !gjson.Valid(body) {
		return result
	}
	root := gjson.Parse(body)
	if !root.IsObject() {
		return result
	}

	if p := root.Get("pathways"); p.IsArray() && len(p.Array()) > 0 {
		var v any
		if err := json.Unmarshal([]byte(p.Raw), &v); err == nil {
			result.Pathways = v
		}
	}
	// an explicitly empty array from the model is kept
	if o := root.Get("internal_opportunities"); o.IsArray() {
		var v any
		if err := json.Unmarshal([]byte(o.Raw), &v); err == nil {
			result.InternalOpportunities = v
		}
	}
	return result
}
