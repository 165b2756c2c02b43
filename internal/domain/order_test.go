package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortWorkExperience(t *testing.T) {
	items := []WorkExperience{
		{JobTitle: "a", Order: 1, StartYear: 2023, StartMonth: 1},
		{JobTitle: "b", Order: 0, StartYear: 2019, StartMonth: 4},
		{JobTitle: "c", Order: 0, StartYear: 2021, StartMonth: 2},
		{JobTitle: "d", Order: 0, StartYear: 2021, StartMonth: 7},
	}

	SortWorkExperience(items)

	got := []string{}
	for _, w := range items {
		got = append(got, w.JobTitle)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, got)
}

func TestSortEducationIsStable(t *testing.T) {
	items := []Education{
		{Institution: "first", StartYear: 2015, StartMonth: 9},
		{Institution: "second", StartYear: 2015, StartMonth: 9},
		{Institution: "newer", StartYear: 2018, StartMonth: 1},
	}

	SortEducation(items)

	assert.Equal(t, "newer", items[0].Institution)
	assert.Equal(t, "first", items[1].Institution)
	assert.Equal(t, "second", items[2].Institution)
}

func TestSortSkills(t *testing.T) {
	items := []Skill{{Name: "python"}, {Name: "Docker", Order: 1}, {Name: "Go"}, {Name: "aws"}}

	SortSkills(items)

	got := []string{}
	for _, s := range items {
		got = append(got, s.Name)
	}
	assert.Equal(t, []string{"aws", "Go", "python", "Docker"}, got)
}

func TestNormalizeClearsEndDate(t *testing.T) {
	m, y := 3, 2024
	w := WorkExperience{IsPresent: true, EndMonth: &m, EndYear: &y}
	w.Normalize()
	assert.Nil(t, w.EndMonth)
	assert.Nil(t, w.EndYear)
	assert.Equal(t, []string{}, w.Achievements)

	e := Education{EndMonth: &m, EndYear: &y}
	e.Normalize()
	assert.Equal(t, &y, e.EndYear)
}

func TestResumeOwnedBy(t *testing.T) {
	r := &Resume{UserID: "u1"}
	assert.True(t, r.OwnedBy("u1"))
	assert.False(t, r.OwnedBy("u2"))
	assert.False(t, r.OwnedBy(""))
	var missing *Resume
	assert.False(t, missing.OwnedBy("u1"))
}

func TestValidationErrorMessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"title": "is required", "email": "invalid"}}
	assert.Equal(t, "validation failed: email: invalid; title: is required", err.Error())
}
