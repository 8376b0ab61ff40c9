package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/repos"
)

type Repos struct {
	User     repos.UserRepo
	Notebook repos.NotebookRepo
	Report   repos.ReportRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:     repos.NewUserRepo(db, log),
		Notebook: repos.NewNotebookRepo(db, log),
		Report:   repos.NewReportRepo(db, log),
	}
}
