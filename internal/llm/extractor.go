// Package llm - extractor.go provides schema-driven prompt construction for
// structured extraction from free text.
package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema defines the structure for LLM-based content extraction.
type ExtractionSchema struct {
	Name        string        // Schema name (e.g., "JDKeywords")
	Description string        // System prompt preamble describing the extraction task
	Fields      []SchemaField // Expected output fields
}

// SchemaField defines a single field in the extraction output.
type SchemaField struct {
	Name        string // JSON field name
	Type        string // Type hint: "string", "[]string"
	Description string // Description for the LLM
	Required    bool   // Whether this field is required
}

// BuildExtractionPrompt constructs the LLM prompt from schema and input text.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = "string"
		}
		requiredHint := ""
		if field.Required {
			requiredHint = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  \"%s\": %s%s", field.Name, typeHint, requiredHint))
		if field.Description != "" {
			sb.WriteString(fmt.Sprintf(" // %s", field.Description))
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	sb.WriteString("IMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent or summarize.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n\n")

	sb.WriteString("Input text:\n\"\"\"\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\"\"\"\n")

	return sb.String()
}

// JDKeywordsSchema returns the extraction schema for job descriptions.
// Categories mirror what an ATS scanner weighs: technical terms, skill
// phrases, tooling, soft skills, experience requirements, action verbs,
// and methodologies.
func JDKeywordsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JDKeywords",
		Description: `You are an expert ATS keyword extraction system. Extract ALL keywords from this job description that an ATS system would scan for. Be comprehensive - missing keywords means lower ATS scores.
Extract EVERY technical term, technology, framework, library, and tool mentioned.
Include both full names AND common abbreviations (e.g., "JavaScript" AND "JS").
Extract industry-specific terms, certifications, and methodologies.
BE COMPREHENSIVE - extract 15-30 items per category where the text supports it.`,
		Fields: []SchemaField{
			{
				Name:        "keywords",
				Type:        "[\"string\"]",
				Description: "ALL important terms, role titles, domain-specific phrases",
				Required:    true,
			},
			{
				Name:        "skills",
				Type:        "[\"string\"]",
				Description: "Technical skills and professional competencies, include variations",
				Required:    true,
			},
			{
				Name:        "technologies",
				Type:        "[\"string\"]",
				Description: "Programming languages, frameworks, databases, cloud platforms, tools, INCLUDE ABBREVIATIONS",
				Required:    true,
			},
			{
				Name:        "soft_skills",
				Type:        "[\"string\"]",
				Description: "Communication, leadership, problem-solving, collaboration",
				Required:    false,
			},
			{
				Name:        "experience_requirements",
				Type:        "[\"string\"]",
				Description: "Years of experience, degree requirements, certifications",
				Required:    false,
			},
			{
				Name:        "action_verbs",
				Type:        "[\"string\"]",
				Description: "Key action verbs that should appear in resume bullets",
				Required:    false,
			},
			{
				Name:        "methodologies",
				Type:        "[\"string\"]",
				Description: "Agile, Scrum, DevOps, CI/CD, TDD and similar",
				Required:    false,
			},
		},
	}
}
