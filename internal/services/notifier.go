package services

import (
	"context"
	"fmt"

	"github.com/yungbote/notebook-gallery-backend/internal/clients/telegram"
	"github.com/yungbote/notebook-gallery-backend/internal/logger"
)

// OwnerNotifier pushes moderation-relevant events to the gallery owner's
// channel. Every call is fire-and-forget: failures are logged and swallowed,
// and no caller may treat a missed notification as an error.
type OwnerNotifier interface {
	NotebookSubmitted(ctx context.Context, notebookName string, submitterName string, link string, description string)
	NotebookReported(ctx context.Context, notebookName string, reason string, reportCount int64)
}

type ownerNotifier struct {
	log     *logger.Logger
	channel telegram.Channel
}

func NewOwnerNotifier(log *logger.Logger, channel telegram.Channel) OwnerNotifier {
	return &ownerNotifier{
		log:     log.With("service", "OwnerNotifier"),
		channel: channel,
	}
}

func (on *ownerNotifier) NotebookSubmitted(ctx context.Context, notebookName string, submitterName string, link string, description string) {
	if on.channel == nil {
		on.log.Debug("No notification channel configured, skipping submission notice")
		return
	}

	title := "New Notebook Submitted"
	content := fmt.Sprintf(`A new notebook has been submitted to your gallery:

Notebook: %s
Submitted by: %s
Link: %s
Description: %s

Please review and moderate as needed.`, notebookName, submitterName, link, description)

	if !on.channel.Send(ctx, title, content) {
		on.log.Warn("Submission notification not delivered", "notebook", notebookName)
	}
}

func (on *ownerNotifier) NotebookReported(ctx context.Context, notebookName string, reason string, reportCount int64) {
	if on.channel == nil {
		on.log.Debug("No notification channel configured, skipping report notice")
		return
	}

	title := "Notebook Report Submitted"
	content := fmt.Sprintf(`A report has been filed for a notebook in your gallery:

Notebook: %s
Report Reason: %s
Total Reports: %d

Please review this notebook and take appropriate action if needed.`, notebookName, reason, reportCount)

	if !on.channel.Send(ctx, title, content) {
		on.log.Warn("Report notification not delivered", "notebook", notebookName)
	}
}
