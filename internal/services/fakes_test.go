package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/notebook-gallery-backend/internal/scraper"
	"github.com/yungbote/notebook-gallery-backend/internal/types"
)

type fakeNotebookRepo struct {
	created   []*types.Notebook
	createErr error

	listResult []*types.Notebook
	listErr    error

	getResult *types.Notebook
	getErr    error
}

func (f *fakeNotebookRepo) Create(ctx context.Context, tx *gorm.DB, notebook *types.Notebook) (*types.Notebook, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	notebook.ID = uint(len(f.created) + 1)
	f.created = append(f.created, notebook)
	return notebook, nil
}

func (f *fakeNotebookRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Notebook, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeNotebookRepo) GetByID(ctx context.Context, tx *gorm.DB, notebookID uint) (*types.Notebook, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

type fakeReportRepo struct {
	created   []*types.Report
	createErr error

	count    int64
	countErr error
}

func (f *fakeReportRepo) Create(ctx context.Context, tx *gorm.DB, report *types.Report) (*types.Report, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	report.ID = uint(len(f.created) + 1)
	f.created = append(f.created, report)
	return report, nil
}

func (f *fakeReportRepo) CountForNotebook(ctx context.Context, tx *gorm.DB, notebookID uint) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return f.count, nil
}

type fakeUserRepo struct {
	user *types.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error) {
	return f.user, nil
}

func (f *fakeUserRepo) GetByOpenID(ctx context.Context, tx *gorm.DB, openID string) (*types.User, error) {
	return f.user, nil
}

type fakeFetcher struct {
	calls  int
	result scraper.FetchResult
}

func (f *fakeFetcher) Fetch(ctx context.Context, pageURL string) scraper.FetchResult {
	f.calls++
	if f.result.Metadata.URL == "" {
		f.result.Metadata.URL = pageURL
	}
	return f.result
}

type fakeEnhancer struct {
	calls  int
	result *EnhancementResult
}

func (f *fakeEnhancer) Enhance(ctx context.Context, name string, description string, metadata *scraper.PageMetadata) EnhancementResult {
	f.calls++
	if f.result == nil {
		return EnhancementResult{EnhancedDescription: description, SuggestedTags: []string{}}
	}
	return *f.result
}

type submittedNotice struct {
	notebookName  string
	submitterName string
	link          string
	description   string
}

type reportedNotice struct {
	notebookName string
	reason       string
	reportCount  int64
}

type fakeNotifier struct {
	submitted []submittedNotice
	reported  []reportedNotice
}

func (f *fakeNotifier) NotebookSubmitted(ctx context.Context, notebookName string, submitterName string, link string, description string) {
	f.submitted = append(f.submitted, submittedNotice{
		notebookName:  notebookName,
		submitterName: submitterName,
		link:          link,
		description:   description,
	})
}

func (f *fakeNotifier) NotebookReported(ctx context.Context, notebookName string, reason string, reportCount int64) {
	f.reported = append(f.reported, reportedNotice{
		notebookName: notebookName,
		reason:       reason,
		reportCount:  reportCount,
	})
}
