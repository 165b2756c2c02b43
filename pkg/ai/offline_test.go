package ai

import (
	"context"
	"testing"

	"resume-builder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfflineModelThroughGateway(t *testing.T) {
	g := NewGateway(NewEinoGenerator(NewOfflineChatModel(), 0.7))
	ctx := context.Background()

	summary, err := g.EnhanceSummary(ctx, &domain.PersonalInfo{FullName: "Ada"}, nil, nil, "")
	require.NoError(t, err)
	assert.NotEmpty(t, summary.Summary)
	assert.False(t, summary.Degraded)

	exp, err := g.EnhanceExperience(ctx, domain.WorkExperience{JobTitle: "Engineer"}, "")
	require.NoError(t, err)
	assert.Len(t, exp.Achievements, 3)
	assert.False(t, exp.Degraded)

	skills, err := g.SuggestSkills(ctx, []string{"docker"}, "Platform role")
	require.NoError(t, err)
	assert.NotContains(t, skills.Suggestions, "Docker")
	assert.Contains(t, skills.Suggestions, "Kubernetes")
	assert.False(t, skills.Degraded)
}

func TestOfflineModelScoresKeywordOverlap(t *testing.T) {
	g := NewGateway(NewEinoGenerator(NewOfflineChatModel(), 0.7))
	resume := &domain.FullResume{Skills: []domain.Skill{{Name: "Golang"}, {Name: "Postgres"}}}

	m, err := g.AnalyzeJobMatch(context.Background(), resume, "Golang Postgres Kafka Terraform")
	require.NoError(t, err)

	assert.Equal(t, 50, m.MatchScore)
	assert.Equal(t, []string{"Kafka", "Terraform"}, m.MissingSkills)
	assert.Len(t, m.Strengths, 2)
	assert.False(t, m.Degraded)
}

func TestOfflineMatchWithoutDescription(t *testing.T) {
	m := offlineMatch("no marker here")

	assert.Equal(t, 0, m["matchScore"])
	assert.Equal(t, []string{}, m["missingSkills"])
}
