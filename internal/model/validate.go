package model

import (
	"embed"
	"fmt"

	"resume-builder/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/document.schema.json
var schemaFS embed.FS

var documentSchema = mustLoadSchema("schema/document.schema.json")

func mustLoadSchema(name string) *gojsonschema.Schema {
	b, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("read %s: %v", name, err))
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("compile %s: %v", name, err))
	}
	return s
}

// ValidateDocument checks doc against the document schema and reports one
// message per offending field.
func ValidateDocument(doc *Document) error {
	res, err := documentSchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	verr := &domain.ValidationError{Fields: map[string]string{}}
	for _, e := range res.Errors() {
		if _, dup := verr.Fields[e.Field()]; !dup {
			verr.Fields[e.Field()] = e.Description()
		}
	}
	return verr
}
