package verifier

// Instruction is sent alongside the uploaded document.
const Instruction = "Analyze this image. It should be a student's academic marks memo/transcript. " +
	"Determine if it looks authentic (not edited/fake). " +
	"Extract the overall percentage (0-100) and the student's name if visible. Respond in JSON."

// SchemaProperty describes one field of the structured output.
type SchemaProperty struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Schema is the structured-output constraint attached to the request.
type Schema struct {
	Type       string                    `json:"type"`
	Properties map[string]SchemaProperty `json:"properties"`
	Required   []string                  `json:"required,omitempty"`
}

// ResultSchema constrains the provider to the four VerificationResult fields.
func ResultSchema() Schema {
	return Schema{
		Type: "OBJECT",
		Properties: map[string]SchemaProperty{
			"isValid": {
				Type:        "BOOLEAN",
				Description: "True if document looks authentic and original.",
			},
			"percentage": {
				Type:        "NUMBER",
				Description: "The overall percentage or CGPA converted to percentage.",
			},
			"studentName": {
				Type:        "STRING",
				Description: "Name found on the document.",
			},
			"reason": {
				Type:        "STRING",
				Description: "Reasoning for validity or invalidity.",
			},
		},
		Required: []string{"isValid", "percentage", "reason"},
	}
}
