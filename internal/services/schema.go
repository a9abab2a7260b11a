package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"

	"alfredoptarigan/career-copilot/internal/models"
)

var (
	scoreMin = 0.0
	scoreMax = 100.0
)

func scoreSchema(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeInteger,
		Description: description,
		Minimum:     &scoreMin,
		Maximum:     &scoreMax,
	}
}

// JobListSchema is the response schema declared for the schema-constrained job search.
func JobListSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"companyName": {Type: genai.TypeString},
				"position":    {Type: genai.TypeString},
				"fitScore":    scoreSchema("0-100 match score between the profile and the posting"),
				"jdSummary":   {Type: genai.TypeString, Description: "One sentence summary of the job"},
				"recruitType": {
					Type:        genai.TypeString,
					Description: "Recruitment category",
					Enum:        models.RecruitTypeValues(),
				},
				"applicationForm": {
					Type:  genai.TypeArray,
					Items: &genai.Schema{Type: genai.TypeString},
				},
			},
			Required: []string{"companyName", "position", "fitScore", "jdSummary", "recruitType"},
		},
	}
}

// FitAnalysisSchema is the response schema declared for the fit analyzer.
func FitAnalysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"jobFit":       scoreSchema("0-100 job fit score"),
			"cultureFit":   scoreSchema("0-100 culture fit score"),
			"overallScore": scoreSchema("0-100 overall score"),
			"strengths": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Strength factors",
			},
			"weaknesses": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Missing or weak factors",
			},
			"summary": {Type: genai.TypeString, Description: "Short interpretation"},
		},
		Required: []string{"jobFit", "cultureFit", "overallScore", "strengths", "weaknesses", "summary"},
	}
}

func jobListValidationSchema() string {
	enum, _ := json.Marshal(models.RecruitTypeValues())
	return fmt.Sprintf(`{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "companyName": {"type": "string", "minLength": 1},
      "position": {"type": "string", "minLength": 1},
      "recruitType": {"type": "string", "enum": %s},
      "jdSummary": {"type": "string"},
      "fitScore": {"type": "integer", "minimum": 0, "maximum": 100},
      "applicationForm": {"type": "array", "items": {"type": "string"}}
    },
    "required": ["companyName", "position", "fitScore", "jdSummary", "recruitType"]
  }
}`, enum)
}

const fitAnalysisValidationSchema = `{
  "type": "object",
  "properties": {
    "jobFit": {"type": "integer", "minimum": 0, "maximum": 100},
    "cultureFit": {"type": "integer", "minimum": 0, "maximum": 100},
    "overallScore": {"type": "integer", "minimum": 0, "maximum": 100},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "weaknesses": {"type": "array", "items": {"type": "string"}},
    "summary": {"type": "string"}
  },
  "required": ["jobFit", "cultureFit", "overallScore", "strengths", "weaknesses", "summary"]
}`

// ResponseValidator checks a JSON document against a compiled schema before
// it is decoded into typed results.
type ResponseValidator struct {
	schema *gojsonschema.Schema
}

func NewResponseValidator(schemaJSON string) (*ResponseValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to compile response schema: %w", err)
	}
	return &ResponseValidator{schema: schema}, nil
}

func mustValidator(schemaJSON string) *ResponseValidator {
	v, err := NewResponseValidator(schemaJSON)
	if err != nil {
		panic(err)
	}
	return v
}

var (
	jobListValidator     = mustValidator(jobListValidationSchema())
	fitAnalysisValidator = mustValidator(fitAnalysisValidationSchema)
)

// Decode validates raw and unmarshals it into target. Syntax errors wrap
// ErrMalformedResponse, constraint failures wrap ErrSchemaViolation.
func (v *ResponseValidator) Decode(raw string, target interface{}) error {
	if !json.Valid([]byte(raw)) {
		return fmt.Errorf("%w: %s", ErrMalformedResponse, preview(raw))
	}

	result, err := v.schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(messages, "; "))
	}

	normalized, err := normalizeWholeNumbers(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := json.Unmarshal(normalized, target); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

// normalizeWholeNumbers rewrites numbers such as 80.0 as 80. The schema
// accepts them as integers, but encoding/json will not decode them into int.
func normalizeWholeNumbers(raw string) ([]byte, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return json.Marshal(rewriteNumbers(doc))
}

func rewriteNumbers(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, item := range val {
			val[k] = rewriteNumbers(item)
		}
	case []interface{}:
		for i, item := range val {
			val[i] = rewriteNumbers(item)
		}
	case json.Number:
		if _, err := val.Int64(); err == nil {
			return val
		}
		f, err := val.Float64()
		if err == nil && f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
			return json.Number(strconv.FormatInt(int64(f), 10))
		}
	}
	return v
}

func preview(text string) string {
	const max = 120
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
