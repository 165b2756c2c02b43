package model

import (
	"testing"

	"resume-builder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *Document {
	return &Document{
		Title:   "Backend resume",
		Name:    "Ada Lovelace",
		Contact: Contact{Email: "ada@example.com"},
		Links:   []Link{{Label: "github.com/ada", URL: "https://github.com/ada"}},
		Experience: []Role{{
			Title: "Engineer", Company: "Analytical Engines", Period: "Jan 2020 - Present", Bullets: []string{"Wrote the first program"},
		}},
		Education: []Degree{{Degree: "BSc", Institution: "University of London", Period: "2015 - 2019", Bullets: []string{}}},
		Skills:    []SkillItem{{Name: "Mathematics", Level: 5}},
	}
}

func TestValidateDocumentAcceptsCompleteDocument(t *testing.T) {
	assert.NoError(t, ValidateDocument(validDocument()))
}

func TestValidateDocumentReportsFields(t *testing.T) {
	doc := validDocument()
	doc.Name = ""
	doc.Skills[0].Level = 9

	err := ValidateDocument(doc)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "skills.0.level")
}

func TestValidateDocumentRejectsNilSlices(t *testing.T) {
	doc := validDocument()
	doc.Experience = nil

	err := ValidateDocument(doc)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "experience")
}
