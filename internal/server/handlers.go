package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/icon-forge/internal/feedback"
	"github.com/jonathan/icon-forge/internal/inference"
	"github.com/jonathan/icon-forge/internal/parsing"
	"github.com/jonathan/icon-forge/internal/presets"
	"github.com/jonathan/icon-forge/internal/prompts"
	"github.com/jonathan/icon-forge/internal/types"
	"github.com/jonathan/icon-forge/internal/validation"
)

// promptMetadata accompanies every prompt response.
type promptMetadata struct {
	PromptLength int    `json:"promptLength"`
	GeneratedAt  string `json:"generatedAt"`
	Version      string `json:"version"`
}

func newMetadata(promptLength int, version string) promptMetadata {
	return promptMetadata{
		PromptLength: promptLength,
		GeneratedAt:  time.Now().UTC().Format(time.RFC3339),
		Version:      version,
	}
}

// readConfig decodes and validates the request body as an icon
// configuration, writing the structured error response itself on failure.
func (s *Server) readConfig(w http.ResponseWriter, r *http.Request) *types.IconConfig {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body", nil)
		return nil
	}

	cfg, err := parsing.ParseConfig(raw)
	if err != nil {
		var ve *parsing.ValidationError
		if errors.As(err, &ve) {
			s.errorResponse(w, http.StatusBadRequest, "invalid configuration", ve.Details())
			return nil
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return nil
	}
	return cfg
}

// handleGeneratePrompt builds the standard prompt for a validated config.
func (s *Server) handleGeneratePrompt(w http.ResponseWriter, r *http.Request) {
	cfg := s.readConfig(w, r)
	if cfg == nil {
		return
	}

	prompt := prompts.BuildStandardPrompt(cfg)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"prompt":   prompt,
		"config":   cfg,
		"metadata": newMetadata(len(prompt), "1.0"),
	})
}

// handleCreativePrompt builds the creative prompt for a validated config.
func (s *Server) handleCreativePrompt(w http.ResponseWriter, r *http.Request) {
	cfg := s.readConfig(w, r)
	if cfg == nil {
		return
	}

	prompt := prompts.BuildCreativePrompt(cfg)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"prompt":   prompt,
		"config":   cfg,
		"creative": true,
		"metadata": newMetadata(len(prompt), "1.0-creative"),
	})
}

// handleGenerateVariants builds all four prompt variants for a config.
func (s *Server) handleGenerateVariants(w http.ResponseWriter, r *http.Request) {
	cfg := s.readConfig(w, r)
	if cfg == nil {
		return
	}

	variants := prompts.BuildVariants(cfg)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"config":   cfg,
		"variants": variants,
		"metadata": map[string]any{
			"totalVariants": prompts.Count,
			"generatedAt":   time.Now().UTC().Format(time.RFC3339),
			"version":       "1.0",
		},
	})
}

// handleParseInput infers a configuration from free text and a preset.
func (s *Server) handleParseInput(w http.ResponseWriter, r *http.Request) {
	var req types.ParseInputRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "input is required", nil)
		return
	}

	presetID := req.Preset
	if presetID == "" {
		presetID = presets.DefaultID
	}

	partial, err := inference.Infer(req.Input, presetID)
	if err != nil {
		var upe *presets.UnknownPresetError
		switch {
		case errors.As(err, &upe):
			s.errorResponse(w, http.StatusBadRequest, upe.Error(), nil)
		case errors.Is(err, inference.ErrMissingInput):
			s.errorResponse(w, http.StatusBadRequest, "input is required", nil)
		default:
			s.errorResponse(w, http.StatusInternalServerError, "internal failure", []string{err.Error()})
		}
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"originalInput": req.Input,
		"parsedConfig":  parsing.Complete(partial),
		"preset":        presetID,
		"suggestions": map[string]any{
			"relatedIcons":     []string{},
			"alternativeNames": []string{},
		},
	})
}

// handlePresets lists the fixed style presets.
func (s *Server) handlePresets(w http.ResponseWriter, _ *http.Request) {
	list := presets.List()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"presets": list,
		"total":   len(list),
		"default": presets.DefaultID,
	})
}

// handleFeedback records caller feedback about a generated prompt. Recording
// never fails for a well-formed call: rating range and prompt id are
// deliberately not checked.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req types.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "promptId is required", nil)
		return
	}

	entry := feedback.Entry{
		PromptID:         req.PromptID,
		ConfigName:       configName(req.Config),
		Rating:           req.Rating,
		Comments:         req.Comments,
		GeneratedIconURL: req.GeneratedIconURL,
	}

	id, err := s.recorder.Record(r.Context(), entry)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "internal failure", []string{err.Error()})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":    "Feedback recorded, thank you",
		"feedbackId": id,
		"status":     "received",
	})
}

// handleValidateSVG runs the conformance checker over raw SVG markup.
func (s *Server) handleValidateSVG(w http.ResponseWriter, r *http.Request) {
	var req types.ValidateSVGRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body", nil)
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "svg is required", nil)
		return
	}

	report := validation.CheckSVG(req.SVG)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"results": report,
		"summary": types.Summarize(report),
	})
}

// configName pulls the name out of an optional raw config attached to
// feedback; a missing or malformed config just yields an empty name.
func configName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var probe struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}
	return probe.Name
}
