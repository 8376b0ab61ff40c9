package app

import (
	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/scraper"
	"github.com/yungbote/notebook-gallery-backend/internal/services"
)

type Services struct {
	Fetcher    scraper.Fetcher
	Enhancer   services.EnhancerService
	Notifier   services.OwnerNotifier
	Submission services.SubmissionService
	Gallery    services.GalleryService
	Report     services.ReportService
}

func wireServices(log *logger.Logger, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")

	fetcher := scraper.NewFetcher(log)
	enhancer := services.NewEnhancerService(log, clients.OpenAI)
	notifier := services.NewOwnerNotifier(log, clients.OwnerChannel)

	submission := services.NewSubmissionService(log, reposet.Notebook, reposet.User, fetcher, enhancer, notifier)
	gallery := services.NewGalleryService(log, reposet.Notebook)
	report := services.NewReportService(log, reposet.Report, reposet.Notebook, notifier)

	return Services{
		Fetcher:    fetcher,
		Enhancer:   enhancer,
		Notifier:   notifier,
		Submission: submission,
		Gallery:    gallery,
		Report:     report,
	}
}
