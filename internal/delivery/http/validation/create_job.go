package validation

import (
	_ "embed"
	"fmt"
	"sort"

	"jobboard/internal/domain/job"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/create_job.schema.json
var createJobSchemaJSON []byte

var createJobSchema = mustSchema(createJobSchemaJSON)

func mustSchema(b []byte) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("validation: invalid embedded schema: %v", err))
	}
	return s
}

// CreateJob checks the shape of a create-job payload. Value rules (non-empty
// text, non-negative salary, known enums) are enforced by the domain.
// Schema violations are reported as a *job.ValidationError.
func CreateJob(body []byte) error {
	res, err := createJobSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return &job.ValidationError{Fields: []job.FieldError{{Field: "body", Message: "must be a JSON object"}}}
	}
	if res.Valid() {
		return nil
	}

	verr := &job.ValidationError{}
	for _, e := range res.Errors() {
		verr.Fields = append(verr.Fields, job.FieldError{Field: fieldName(e), Message: e.Description()})
	}
	sort.SliceStable(verr.Fields, func(i, j int) bool { return verr.Fields[i].Field < verr.Fields[j].Field })
	return verr
}

func fieldName(e gojsonschema.ResultError) string {
	f := e.Field()
	if f == "(root)" {
		f = ""
	}
	if e.Type() == "required" {
		if p, ok := e.Details()["property"].(string); ok && p != "" {
			if f == "" {
				return p
			}
			return f + "." + p
		}
	}
	if f == "" {
		return "body"
	}
	return f
}
