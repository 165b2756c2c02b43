package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// OfflineChatModel is a deterministic eino chat model for local development
// and demos without provider credentials. It recognizes the operation by its
// token budget and answers in the shape the gateway expects.
type OfflineChatModel struct{}

func NewOfflineChatModel() *OfflineChatModel { return &OfflineChatModel{} }

var (
	offlineSkills = []string{"Docker", "Kubernetes", "CI/CD", "Observability", "System Design", "Technical Writing"}
	offlineWord   = regexp.MustCompile(`[A-Za-z][A-Za-z0-9+#.]{3,}`)
)

const jobDescriptionMarker = "Job Description:"

func (m *OfflineChatModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	var user string
	for _, msg := range input {
		if msg.Role == schema.User {
			user = msg.Content
		}
	}

	budget := 0
	if o := model.GetCommonOptions(nil, opts...); o.MaxTokens != nil {
		budget = *o.MaxTokens
	}

	var reply string
	switch budget {
	case JobMatchMaxTokens:
		b, err := json.Marshal(offlineMatch(user))
		if err != nil {
			return nil, err
		}
		reply = string(b)
	case SkillsMaxTokens:
		b, _ := json.Marshal(offlineSkills)
		reply = "```json\n" + string(b) + "\n```"
	case ExperienceMaxTokens:
		reply = strings.Join([]string{
			"• Delivered the team's roadmap commitments on schedule across consecutive quarters",
			"• Reduced operational toil by automating recurring maintenance tasks",
			"• Partnered with stakeholders to define measurable goals and report progress",
		}, "\n")
	default:
		reply = "Results-driven professional with a track record of shipping reliable software, " +
			"collaborating across teams and turning ambiguous requirements into measurable outcomes."
	}
	return schema.AssistantMessage(reply, nil), nil
}

// offlineMatch scores the keyword overlap between the resume and job
// description sections of the prompt.
func offlineMatch(prompt string) map[string]interface{} {
	resume, jd := prompt, ""
	if i := strings.LastIndex(prompt, jobDescriptionMarker); i >= 0 {
		resume, jd = prompt[:i], prompt[i+len(jobDescriptionMarker):]
	}
	resume = strings.ToLower(resume)

	seen := map[string]bool{}
	var matched, missing []string
	for _, w := range offlineWord.FindAllString(jd, -1) {
		key := strings.ToLower(strings.TrimRight(w, "."))
		if seen[key] {
			continue
		}
		seen[key] = true
		if strings.Contains(resume, key) {
			matched = append(matched, w)
		} else {
			missing = append(missing, w)
		}
	}

	score := 0
	if total := len(matched) + len(missing); total > 0 {
		score = len(matched) * 100 / total
	}
	strengths := []string{}
	for _, w := range head(matched, 3) {
		strengths = append(strengths, fmt.Sprintf("Resume mentions %s", w))
	}
	suggestions := []string{}
	if len(missing) > 0 {
		suggestions = append(suggestions, "Address the missing keywords where they reflect real experience")
	}
	return map[string]interface{}{
		"matchScore":    score,
		"missingSkills": head(missing, 5),
		"strengths":     strengths,
		"suggestions":   suggestions,
	}
}

func head(items []string, n int) []string {
	if len(items) > n {
		items = items[:n]
	}
	if items == nil {
		return []string{}
	}
	return items
}

func (m *OfflineChatModel) Stream(context.Context, []*schema.Message, ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("offline model does not stream")
}

func (m *OfflineChatModel) BindTools([]*schema.ToolInfo) error { return nil }
