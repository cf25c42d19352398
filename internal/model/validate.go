package model

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"cv-amplify/internal/domain"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/*.json
var schemaFS embed.FS

var (
	requestSchema  = mustSchema("schema/improve_request.schema.json")
	responseSchema = mustSchema("schema/improve_response.schema.json")
)

func mustSchema(name string) *gojsonschema.Schema {
	b, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("model: read %s: %v", name, err))
	}
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(b))
	if err != nil {
		panic(fmt.Sprintf("model: compile %s: %v", name, err))
	}
	return s
}

// DecodeImproveRequest validates a raw request body against the request
// schema and decodes it. Any failure is a *domain.BadRequestError.
func DecodeImproveRequest(body []byte) (ImproveRequest, error) {
	var req ImproveRequest
	if err := validate(requestSchema, gojsonschema.NewBytesLoader(body)); err != nil {
		return req, &domain.BadRequestError{Message: "request does not match the expected shape", Cause: err}
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, &domain.BadRequestError{Message: "request is not valid JSON", Cause: err}
	}
	return req, nil
}

// ValidateImproveResponse checks a response against the response schema.
func ValidateImproveResponse(resp ImproveResponse) error {
	return validate(responseSchema, gojsonschema.NewGoLoader(resp))
}

func validate(schema *gojsonschema.Schema, doc gojsonschema.JSONLoader) error {
	res, err := schema.Validate(doc)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
