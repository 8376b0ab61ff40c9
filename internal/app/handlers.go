package app

import (
	"github.com/yungbote/notebook-gallery-backend/internal/handlers"
	"github.com/yungbote/notebook-gallery-backend/internal/logger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Notebook *handlers.NotebookHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:     handlers.NewAuthHandler(),
		Notebook: handlers.NewNotebookHandler(log, serviceset.Submission, serviceset.Gallery, serviceset.Report),
	}
}
