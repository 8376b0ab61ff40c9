package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/notebook-gallery-backend/internal/clients/openai"
	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/scraper"
)

// EnhancementResult always carries usable values. When the generation backend
// is down or returns garbage, EnhancedDescription falls back to the original
// user description and SuggestedTags is empty.
type EnhancementResult struct {
	EnhancedDescription string   `json:"enhancedDescription"`
	SuggestedTags       []string `json:"suggestedTags"`
}

// EnhancerService asks the text-generation backend for a refined description
// and tag suggestions. Enhance cannot fail by contract; enrichment is
// advisory and the submission pipeline proceeds regardless of backend health.
type EnhancerService interface {
	Enhance(ctx context.Context, name string, description string, metadata *scraper.PageMetadata) EnhancementResult
}

type enhancerService struct {
	log     *logger.Logger
	ai      openai.Client
	timeout time.Duration
}

func NewEnhancerService(log *logger.Logger, ai openai.Client) EnhancerService {
	return &enhancerService{
		log:     log.With("service", "EnhancerService"),
		ai:      ai,
		timeout: 30 * time.Second,
	}
}

const enhancerSystemPrompt = "You are an expert at analyzing research notebooks and generating insightful descriptions. You help improve notebook descriptions and suggest relevant tags for discovery. Always respond with valid JSON."

func (es *enhancerService) Enhance(ctx context.Context, name string, description string, metadata *scraper.PageMetadata) EnhancementResult {
	fallback := EnhancementResult{
		EnhancedDescription: description,
		SuggestedTags:       []string{},
	}

	if es.ai == nil {
		es.log.Warn("No generation backend configured, keeping original description")
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, es.timeout)
	defer cancel()

	obj, err := es.ai.GenerateJSON(ctx, enhancerSystemPrompt, buildEnhancerPrompt(name, description, metadata), "notebook_enhancement", enhancementSchema())
	if err != nil {
		es.log.Warn("Enhancement failed, keeping original description", "name", name, "error", err)
		return fallback
	}

	result := fallback
	if desc, ok := obj["enhancedDescription"].(string); ok && strings.TrimSpace(desc) != "" {
		result.EnhancedDescription = desc
	}
	if rawTags, ok := obj["suggestedTags"].([]any); ok {
		tags := make([]string, 0, len(rawTags))
		for _, raw := range rawTags {
			if tag, ok := raw.(string); ok && tag != "" {
				tags = append(tags, tag)
			}
		}
		result.SuggestedTags = tags
	}
	return result
}

func buildEnhancerPrompt(name string, description string, metadata *scraper.PageMetadata) string {
	ogInfo := "No OG metadata available"
	if metadata != nil {
		ogInfo = fmt.Sprintf("OG Title: %s\nOG Description: %s\nOG Type: %s",
			orNA(metadata.Title), orNA(metadata.Description), orNA(metadata.Type))
	}

	return fmt.Sprintf(`Please analyze this NotebookLM notebook and provide an enhanced description and relevant tags.

Notebook Name: %s
User Description: %s

%s

Focus on:
- Making the description more compelling and informative (2-3 sentences)
- Suggesting tags that help with discoverability
- Keeping tags relevant to research, knowledge, and learning`, name, description, ogInfo)
}

func enhancementSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"enhancedDescription": map[string]any{
				"type":        "string",
				"description": "Enhanced description of the notebook",
			},
			"suggestedTags": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Suggested tags for the notebook",
			},
		},
		"required":             []string{"enhancedDescription", "suggestedTags"},
		"additionalProperties": false,
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
