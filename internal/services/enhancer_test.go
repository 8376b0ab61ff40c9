package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/scraper"
)

type fakeAIClient struct {
	lastSystem     string
	lastUser       string
	lastSchemaName string

	result map[string]any
	err    error
}

func (f *fakeAIClient) GenerateJSON(ctx context.Context, system string, user string, schemaName string, schema map[string]any) (map[string]any, error) {
	f.lastSystem = system
	f.lastUser = user
	f.lastSchemaName = schemaName
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newEnhancerFixture(t *testing.T, ai *fakeAIClient) EnhancerService {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	if ai == nil {
		return NewEnhancerService(log, nil)
	}
	return NewEnhancerService(log, ai)
}

func TestEnhanceParsesBackendResult(t *testing.T) {
	ai := &fakeAIClient{result: map[string]any{
		"enhancedDescription": "A compelling overview of AI ethics research.",
		"suggestedTags":       []any{"AI", "Ethics"},
	}}
	svc := newEnhancerFixture(t, ai)

	result := svc.Enhance(context.Background(), "AI Ethics", "My notes", nil)
	if result.EnhancedDescription != "A compelling overview of AI ethics research." {
		t.Fatalf("enhanced description: got=%q", result.EnhancedDescription)
	}
	if len(result.SuggestedTags) != 2 || result.SuggestedTags[0] != "AI" || result.SuggestedTags[1] != "Ethics" {
		t.Fatalf("suggested tags: want=[AI Ethics] got=%v", result.SuggestedTags)
	}
	if ai.lastSchemaName != "notebook_enhancement" {
		t.Fatalf("schema name: want=notebook_enhancement got=%s", ai.lastSchemaName)
	}
}

func TestEnhanceBackendErrorFallsBack(t *testing.T) {
	ai := &fakeAIClient{err: errors.New("rate limited")}
	svc := newEnhancerFixture(t, ai)

	result := svc.Enhance(context.Background(), "AI Ethics", "My notes", nil)
	if result.EnhancedDescription != "My notes" {
		t.Fatalf("fallback description: want=%q got=%q", "My notes", result.EnhancedDescription)
	}
	if len(result.SuggestedTags) != 0 {
		t.Fatalf("fallback tags: want empty got %v", result.SuggestedTags)
	}
}

func TestEnhanceNilBackendFallsBack(t *testing.T) {
	svc := newEnhancerFixture(t, nil)

	result := svc.Enhance(context.Background(), "AI Ethics", "My notes", nil)
	if result.EnhancedDescription != "My notes" {
		t.Fatalf("fallback description: want=%q got=%q", "My notes", result.EnhancedDescription)
	}
	if len(result.SuggestedTags) != 0 {
		t.Fatalf("fallback tags: want empty got %v", result.SuggestedTags)
	}
}

func TestEnhanceMalformedFieldsFallBack(t *testing.T) {
	ai := &fakeAIClient{result: map[string]any{
		"enhancedDescription": "   ",
		"suggestedTags":       "not-an-array",
	}}
	svc := newEnhancerFixture(t, ai)

	result := svc.Enhance(context.Background(), "AI Ethics", "My notes", nil)
	if result.EnhancedDescription != "My notes" {
		t.Fatalf("blank description keeps original: got=%q", result.EnhancedDescription)
	}
	if len(result.SuggestedTags) != 0 {
		t.Fatalf("non-array tags: want empty got %v", result.SuggestedTags)
	}
}

func TestEnhanceDropsNonStringTags(t *testing.T) {
	ai := &fakeAIClient{result: map[string]any{
		"enhancedDescription": "Better",
		"suggestedTags":       []any{"AI", 42, "", "Ethics"},
	}}
	svc := newEnhancerFixture(t, ai)

	result := svc.Enhance(context.Background(), "AI Ethics", "My notes", nil)
	if len(result.SuggestedTags) != 2 || result.SuggestedTags[0] != "AI" || result.SuggestedTags[1] != "Ethics" {
		t.Fatalf("suggested tags: want=[AI Ethics] got=%v", result.SuggestedTags)
	}
}

func TestEnhancePromptIncludesMetadata(t *testing.T) {
	ai := &fakeAIClient{result: map[string]any{}}
	svc := newEnhancerFixture(t, ai)

	svc.Enhance(context.Background(), "AI Ethics", "My notes", &scraper.PageMetadata{
		Title:       "Shared Notebook",
		Description: "A shared research notebook",
	})
	if !strings.Contains(ai.lastUser, "OG Title: Shared Notebook") {
		t.Fatalf("prompt missing OG title: %q", ai.lastUser)
	}
	if !strings.Contains(ai.lastUser, "OG Type: N/A") {
		t.Fatalf("prompt missing N/A placeholder: %q", ai.lastUser)
	}

	svc.Enhance(context.Background(), "AI Ethics", "My notes", nil)
	if !strings.Contains(ai.lastUser, "No OG metadata available") {
		t.Fatalf("prompt missing no-metadata marker: %q", ai.lastUser)
	}
}
