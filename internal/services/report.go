package services

import (
	"context"
	"unicode/utf8"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/repos"
	"github.com/yungbote/notebook-gallery-backend/internal/requestdata"
	"github.com/yungbote/notebook-gallery-backend/internal/types"
)

const reportReasonMinLength = 10

// ReportService records moderation reports. The referenced notebook is not
// required to exist: orphaned reports are acceptable and only suppress the
// owner notification.
type ReportService interface {
	Report(ctx context.Context, notebookID uint, reason string) error
}

type reportService struct {
	log          *logger.Logger
	reportRepo   repos.ReportRepo
	notebookRepo repos.NotebookRepo
	notifier     OwnerNotifier
}

func NewReportService(
	log *logger.Logger,
	reportRepo repos.ReportRepo,
	notebookRepo repos.NotebookRepo,
	notifier OwnerNotifier,
) ReportService {
	return &reportService{
		log:          log.With("service", "ReportService"),
		reportRepo:   reportRepo,
		notebookRepo: notebookRepo,
		notifier:     notifier,
	}
}

func (rs *reportService) Report(ctx context.Context, notebookID uint, reason string) error {
	// Literal length, no trimming: surrounding whitespace counts as provided.
	if utf8.RuneCountInString(reason) < reportReasonMinLength {
		return &ValidationError{Field: "reason", Message: "Reason must be at least 10 characters"}
	}

	caller := requestdata.GetCaller(ctx)
	var userID *uint
	if caller != nil {
		id := caller.UserID
		userID = &id
	}

	report := &types.Report{
		NotebookID: notebookID,
		UserID:     userID,
		Reason:     reason,
		Status:     types.ReportStatusPending,
	}
	if _, err := rs.reportRepo.Create(ctx, nil, report); err != nil {
		rs.log.Error("Failed to persist report", "notebook_id", notebookID, "error", err)
		return &StorageError{Op: "insert report", Err: err}
	}

	rs.log.Info("Report recorded", "report_id", report.ID, "notebook_id", notebookID)

	// Notification context only. A missing notebook or a failed count lookup
	// never fails the report.
	notebook, err := rs.notebookRepo.GetByID(ctx, nil, notebookID)
	if err != nil {
		rs.log.Warn("Notebook lookup for report notification failed", "notebook_id", notebookID, "error", err)
		return nil
	}
	if notebook == nil {
		rs.log.Debug("Reported notebook not found, skipping notification", "notebook_id", notebookID)
		return nil
	}

	count, err := rs.reportRepo.CountForNotebook(ctx, nil, notebookID)
	if err != nil {
		rs.log.Warn("Report count lookup failed", "notebook_id", notebookID, "error", err)
		return nil
	}

	rs.notifier.NotebookReported(ctx, notebook.Name, reason, count)
	return nil
}
