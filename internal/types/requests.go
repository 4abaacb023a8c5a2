package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// ParseInputRequest is the body of POST /api/parse-input. Preset is optional
// and defaults to material-design at the handler.
type ParseInputRequest struct {
	Input  string `json:"input" validate:"required,min=1"`
	Preset string `json:"preset,omitempty"`
}

// FeedbackRequest is the body of POST /api/feedback. Only basic shape is
// validated; rating range is deliberately unchecked because feedback
// recording must never fail for a well-formed call.
type FeedbackRequest struct {
	PromptID         string          `json:"promptId" validate:"required"`
	Config           json.RawMessage `json:"config,omitempty"`
	Rating           int             `json:"rating"`
	Comments         string          `json:"comments,omitempty"`
	GeneratedIconURL string          `json:"generatedIconUrl,omitempty"`
}

// ValidateSVGRequest is the body of POST /api/validate-svg.
type ValidateSVGRequest struct {
	SVG string `json:"svg" validate:"required,min=1"`
}

// Validate validates the ParseInputRequest using the validator.
func (r *ParseInputRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the FeedbackRequest using the validator.
func (r *FeedbackRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ValidateSVGRequest using the validator.
func (r *ValidateSVGRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
