package ai

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/logger"
	"resume-builder/pkg/ai/formatters"
)

// Output budgets per operation.
const (
	SummaryMaxTokens    = 500
	ExperienceMaxTokens = 800
	JobMatchMaxTokens   = 1000
	SkillsMaxTokens     = 400
)

// Static job-match answer used when the model reply cannot be parsed.
const (
	FallbackMatchScore = 75
	FallbackStrength   = "Professional experience matches job requirements"
	FallbackSuggestion = "Consider adding more specific technical skills"
)

// Results carry Degraded when their content is a substitute rather than
// model output.

type SummaryResult struct {
	Summary  string `json:"summary"`
	Degraded bool   `json:"degraded"`
}

type ExperienceResult struct {
	Achievements []string `json:"achievements"`
	Degraded     bool     `json:"degraded"`
}

type JobMatch struct {
	MatchScore    int      `json:"matchScore"`
	MissingSkills []string `json:"missingSkills"`
	Strengths     []string `json:"strengths"`
	Suggestions   []string `json:"suggestions"`
	Degraded      bool     `json:"degraded"`
}

type SkillSuggestions struct {
	Suggestions []string `json:"suggestions"`
	Degraded    bool     `json:"degraded"`
}

// Gateway builds prompts, calls the generator and reconciles replies.
type Gateway struct {
	gen TextGenerator
}

func NewGateway(gen TextGenerator) *Gateway {
	return &Gateway{gen: gen}
}

// forgetter is implemented by generators that memoize replies.
type forgetter interface {
	Forget(ctx context.Context, messages []Message, maxTokens int)
}

func messagesFor(p formatters.Prompt) []Message {
	return []Message{
		{Role: RoleSystem, Content: p.System},
		{Role: RoleUser, Content: p.User},
	}
}

// generate wraps every failure except a cancelled caller as an UpstreamError,
// deadlines included.
func (g *Gateway) generate(ctx context.Context, op string, p formatters.Prompt, maxTokens int) (string, error) {
	text, err := g.gen.GenerateText(ctx, messagesFor(p), maxTokens)
	if err == nil {
		return text, nil
	}
	var up *domain.UpstreamError
	if errors.As(err, &up) || errors.Is(err, context.Canceled) {
		return "", err
	}
	return "", &domain.UpstreamError{Op: op, Err: err}
}

// discard keeps a reply that only produced a fallback out of the cache.
func (g *Gateway) discard(ctx context.Context, p formatters.Prompt, maxTokens int) {
	if f, ok := g.gen.(forgetter); ok {
		f.Forget(ctx, messagesFor(p), maxTokens)
	}
}

func (g *Gateway) EnhanceSummary(ctx context.Context, info *domain.PersonalInfo, experience []domain.WorkExperience, skills []domain.Skill, jobDescription string) (*SummaryResult, error) {
	text, err := g.generate(ctx, "enhance summary", formatters.SummaryPrompt(info, experience, skills, jobDescription), SummaryMaxTokens)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	return &SummaryResult{Summary: text, Degraded: text == ""}, nil
}

func (g *Gateway) EnhanceExperience(ctx context.Context, exp domain.WorkExperience, jobDescription string) (*ExperienceResult, error) {
	p := formatters.ExperiencePrompt(exp, jobDescription)
	text, err := g.generate(ctx, "enhance experience", p, ExperienceMaxTokens)
	if err != nil {
		return nil, err
	}
	if items, ok := parseStringArray(text); ok && len(items) > 0 {
		return &ExperienceResult{Achievements: items}, nil
	}
	items := bulletLines(text)
	if len(items) == 0 {
		logger.Warn().Str("op", "enhance experience").Msg("ai.gateway: no bullets recovered from reply")
		g.discard(ctx, p, ExperienceMaxTokens)
	}
	return &ExperienceResult{Achievements: items, Degraded: len(items) == 0}, nil
}

func (g *Gateway) AnalyzeJobMatch(ctx context.Context, resume *domain.FullResume, jobDescription string) (*JobMatch, error) {
	p := formatters.JobMatchPrompt(resume, jobDescription)
	text, err := g.generate(ctx, "analyze job match", p, JobMatchMaxTokens)
	if err != nil {
		return nil, err
	}
	var obj map[string]json.RawMessage
	if !decodeJSON(text, '{', '}', &obj) || obj == nil {
		logger.Warn().Str("op", "analyze job match").Msg("ai.gateway: unparseable reply, using fallback analysis")
		g.discard(ctx, p, JobMatchMaxTokens)
		return FallbackJobMatch(), nil
	}
	m := matchFields(obj)
	return &m, nil
}

// FallbackJobMatch is the static analysis returned for unparseable replies.
func FallbackJobMatch() *JobMatch {
	return &JobMatch{
		MatchScore:    FallbackMatchScore,
		MissingSkills: []string{},
		Strengths:     []string{FallbackStrength},
		Suggestions:   []string{FallbackSuggestion},
		Degraded:      true,
	}
}

func (g *Gateway) SuggestSkills(ctx context.Context, currentSkills []string, jobDescription string) (*SkillSuggestions, error) {
	p := formatters.SkillsPrompt(currentSkills, jobDescription)
	text, err := g.generate(ctx, "suggest skills", p, SkillsMaxTokens)
	if err != nil {
		return nil, err
	}
	items, ok := parseStringArray(text)
	if !ok {
		logger.Warn().Str("op", "suggest skills").Msg("ai.gateway: unparseable reply, returning no suggestions")
		g.discard(ctx, p, SkillsMaxTokens)
		return &SkillSuggestions{Suggestions: []string{}, Degraded: true}, nil
	}
	return &SkillSuggestions{Suggestions: withoutKnown(items, currentSkills)}, nil
}

// withoutKnown drops suggestions already held and duplicates, case-insensitively.
func withoutKnown(items, known []string) []string {
	seen := make(map[string]bool, len(known)+len(items))
	for _, k := range known {
		seen[strings.ToLower(strings.TrimSpace(k))] = true
	}
	out := []string{}
	for _, it := range items {
		key := strings.ToLower(it)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}
