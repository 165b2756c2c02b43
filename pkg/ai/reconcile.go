package ai

import (
	"encoding/json"
	"math"
	"regexp"
	"strings"
)

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		// drop the language tag line
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// decodeJSON tries a strict decode first, then the outermost open..close span.
func decodeJSON(raw string, openCh, closeCh byte, v interface{}) bool {
	s := stripFences(raw)
	if err := json.Unmarshal([]byte(s), v); err == nil {
		return true
	}
	start := strings.IndexByte(s, openCh)
	end := strings.LastIndexByte(s, closeCh)
	if start < 0 || end <= start {
		return false
	}
	return json.Unmarshal([]byte(s[start:end+1]), v) == nil
}

// parseStringArray decodes a JSON array and keeps its non-empty string items.
func parseStringArray(raw string) ([]string, bool) {
	var items []interface{}
	if !decodeJSON(raw, '[', ']', &items) {
		return nil, false
	}
	return stringItems(items), true
}

func stringItems(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

var bulletMarker = regexp.MustCompile(`^[•-]\s*`)

// bulletLines keeps lines that start with a bullet or dash, marker stripped.
func bulletLines(raw string) []string {
	out := []string{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "•") && !strings.HasPrefix(line, "-") {
			continue
		}
		if item := strings.TrimSpace(bulletMarker.ReplaceAllString(line, "")); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// matchFields reads each job-match field on its own so one bad field never
// invalidates the rest.
func matchFields(obj map[string]json.RawMessage) JobMatch {
	m := JobMatch{
		MissingSkills: []string{},
		Strengths:     []string{},
		Suggestions:   []string{},
	}
	if raw, ok := obj["matchScore"]; ok {
		var f float64
		if json.Unmarshal(raw, &f) == nil {
			m.MatchScore = clampScore(f)
		}
	}
	readList := func(key string, dst *[]string) {
		raw, ok := obj[key]
		if !ok {
			return
		}
		var items []interface{}
		if json.Unmarshal(raw, &items) == nil {
			*dst = stringItems(items)
		}
	}
	readList("missingSkills", &m.MissingSkills)
	readList("strengths", &m.Strengths)
	readList("suggestions", &m.Suggestions)
	return m
}

func clampScore(f float64) int {
	if math.IsNaN(f) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, f))))
}
