package http

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"

	"resume-builder/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/microcosm-cc/bluemonday"
)

var requestValidator *validator.Validate

func init() {
	requestValidator = validator.New()
	requestValidator.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	requestValidator.RegisterStructValidation(periodStructValidation, workExperienceRequest{}, educationRequest{})
}

// periodStructValidation rejects a closed period that ends before it starts.
func periodStructValidation(sl validator.StructLevel) {
	var (
		startMonth, startYear int
		endMonth, endYear     *int
		isPresent             bool
	)
	switch r := sl.Current().Interface().(type) {
	case workExperienceRequest:
		startMonth, startYear, endMonth, endYear, isPresent = r.StartMonth, r.StartYear, r.EndMonth, r.EndYear, r.IsPresent
	case educationRequest:
		startMonth, startYear, endMonth, endYear, isPresent = r.StartMonth, r.StartYear, r.EndMonth, r.EndYear, r.IsPresent
	default:
		return
	}
	if isPresent || endYear == nil {
		return
	}
	em := 12
	if endMonth != nil {
		em = *endMonth
	}
	if *endYear < startYear || (*endYear == startYear && em < startMonth) {
		sl.ReportError(*endYear, "endYear", "EndYear", "after_start", "")
	}
}

// bind decodes the JSON body into dst and validates it.
func bind(c *fiber.Ctx, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.NewValidationError("body", "must be a valid JSON object")
	}
	return validate(dst)
}

func validate(v interface{}) error {
	err := requestValidator.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &domain.ValidationError{Fields: map[string]string{}}
	for _, fe := range verrs {
		field := strings.SplitN(fe.Namespace(), ".", 2)
		key := fe.Field()
		if len(field) == 2 {
			key = field[1]
		}
		if _, dup := out.Fields[key]; !dup {
			out.Fields[key] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "after_start":
		return "must not be before the start date"
	}
	return "is invalid"
}

// Sanitizer strips markup from free text before it is stored.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StrictPolicy()}
}

// String removes tags; entities are decoded again since every output path escapes.
func (s *Sanitizer) String(in string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(in)))
}

func (s *Sanitizer) Strings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = s.String(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
