package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/repos"
	"github.com/yungbote/notebook-gallery-backend/internal/requestdata"
	"github.com/yungbote/notebook-gallery-backend/internal/scraper"
	"github.com/yungbote/notebook-gallery-backend/internal/types"
)

type SubmitRequest struct {
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description" validate:"required,max=250"`
	Link          string   `json:"link" validate:"required,url"`
	Tags          []string `json:"tags"`
	SubmitterName string   `json:"submitterName"`
}

// SubmissionService runs the enrichment pipeline for one submitted link:
// validate, fetch open-graph metadata, enhance, merge tags, persist, notify.
// Steps run strictly in that order; each consumes the previous step's output.
type SubmissionService interface {
	Submit(ctx context.Context, req SubmitRequest) error
}

type submissionService struct {
	log          *logger.Logger
	notebookRepo repos.NotebookRepo
	userRepo     repos.UserRepo
	fetcher      scraper.Fetcher
	enhancer     EnhancerService
	notifier     OwnerNotifier
	validate     *validator.Validate
}

func NewSubmissionService(
	log *logger.Logger,
	notebookRepo repos.NotebookRepo,
	userRepo repos.UserRepo,
	fetcher scraper.Fetcher,
	enhancer EnhancerService,
	notifier OwnerNotifier,
) SubmissionService {
	return &submissionService{
		log:          log.With("service", "SubmissionService"),
		notebookRepo: notebookRepo,
		userRepo:     userRepo,
		fetcher:      fetcher,
		enhancer:     enhancer,
		notifier:     notifier,
		validate:     validator.New(),
	}
}

func (ss *submissionService) Submit(ctx context.Context, req SubmitRequest) error {
	// Validation short-circuits before any network call is made.
	if err := ss.validateSubmit(req); err != nil {
		return err
	}
	if req.Tags == nil {
		req.Tags = []string{}
	}

	fetched := ss.fetcher.Fetch(ctx, req.Link)

	enhanced := ss.enhancer.Enhance(ctx, req.Name, req.Description, &fetched.Metadata)

	allTags := mergeTags(req.Tags, enhanced.SuggestedTags)

	caller := requestdata.GetCaller(ctx)
	var userID *uint
	if caller != nil {
		id := caller.UserID
		userID = &id
	}

	notebook := &types.Notebook{
		UserID:              userID,
		Name:                req.Name,
		Description:         req.Description,
		Link:                req.Link,
		Tags:                mustJSON(allTags),
		OGImage:             fetched.Image,
		OGMetadata:          mustJSON(fetched.Metadata),
		EnhancedDescription: &enhanced.EnhancedDescription,
		SuggestedTags:       mustJSON(enhanced.SuggestedTags),
	}

	if _, err := ss.notebookRepo.Create(ctx, nil, notebook); err != nil {
		ss.log.Error("Failed to persist notebook", "name", req.Name, "error", err)
		return &StorageError{Op: "insert notebook", Err: err}
	}

	ss.notifier.NotebookSubmitted(ctx, req.Name, ss.resolveSubmitterName(ctx, req, caller), req.Link, req.Description)

	ss.log.Info("Notebook submitted", "notebook_id", notebook.ID, "name", req.Name, "tag_count", len(allTags))
	return nil
}

func (ss *submissionService) validateSubmit(req SubmitRequest) error {
	if err := ss.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return submitFieldError(fieldErrs[0])
		}
		return &ValidationError{Field: "request", Message: err.Error()}
	}
	// The url tag accepts relative references; the contract wants absolute.
	if parsed, err := url.Parse(req.Link); err != nil || !parsed.IsAbs() {
		return &ValidationError{Field: "link", Message: "Invalid URL"}
	}
	return nil
}

func submitFieldError(fe validator.FieldError) *ValidationError {
	switch fe.Field() {
	case "Name":
		return &ValidationError{Field: "name", Message: "Name is required"}
	case "Description":
		if fe.Tag() == "max" {
			return &ValidationError{Field: "description", Message: "Description must be 250 characters or less"}
		}
		return &ValidationError{Field: "description", Message: "Description is required"}
	case "Link":
		return &ValidationError{Field: "link", Message: "Invalid URL"}
	default:
		return &ValidationError{Field: strings.ToLower(fe.Field()), Message: fe.Error()}
	}
}

func (ss *submissionService) resolveSubmitterName(ctx context.Context, req SubmitRequest, caller *requestdata.Caller) string {
	if strings.TrimSpace(req.SubmitterName) != "" {
		return req.SubmitterName
	}
	if caller != nil {
		if caller.Name != "" {
			return caller.Name
		}
		user, err := ss.userRepo.GetByID(ctx, nil, caller.UserID)
		if err == nil && user != nil && user.Name != "" {
			return user.Name
		}
	}
	return "Anonymous"
}

// mergeTags unions user tags with suggested tags, deduplicating on exact
// case-sensitive match and preserving first-seen order.
func mergeTags(userTags []string, suggestedTags []string) []string {
	seen := make(map[string]struct{}, len(userTags)+len(suggestedTags))
	merged := make([]string, 0, len(userTags)+len(suggestedTags))
	for _, tag := range userTags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		merged = append(merged, tag)
	}
	for _, tag := range suggestedTags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		merged = append(merged, tag)
	}
	return merged
}

func mustJSON(v any) datatypes.JSON {
	raw, err := json.Marshal(v)
	if err != nil {
		return datatypes.JSON("null")
	}
	return datatypes.JSON(raw)
}
