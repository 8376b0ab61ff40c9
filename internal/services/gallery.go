package services

import (
	"context"
	"strings"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/repos"
	"github.com/yungbote/notebook-gallery-backend/internal/types"
)

// GalleryService is the public read surface. Both operations prefer
// availability over consistency: any storage problem degrades to an empty
// result instead of an error.
type GalleryService interface {
	List(ctx context.Context) []*types.Notebook
	Search(ctx context.Context, query string) []*types.Notebook
}

type galleryService struct {
	log          *logger.Logger
	notebookRepo repos.NotebookRepo
}

func NewGalleryService(log *logger.Logger, notebookRepo repos.NotebookRepo) GalleryService {
	return &galleryService{
		log:          log.With("service", "GalleryService"),
		notebookRepo: notebookRepo,
	}
}

func (gs *galleryService) List(ctx context.Context) []*types.Notebook {
	notebooks, err := gs.notebookRepo.List(ctx, nil)
	if err != nil {
		gs.log.Warn("Listing notebooks failed, returning empty", "error", err)
		return []*types.Notebook{}
	}
	return notebooks
}

func (gs *galleryService) Search(ctx context.Context, query string) []*types.Notebook {
	notebooks, err := gs.notebookRepo.List(ctx, nil)
	if err != nil {
		gs.log.Warn("Searching notebooks failed, returning empty", "query", query, "error", err)
		return []*types.Notebook{}
	}

	lowerQuery := strings.ToLower(query)
	matches := []*types.Notebook{}
	for _, nb := range notebooks {
		if notebookMatches(nb, lowerQuery) {
			matches = append(matches, nb)
		}
	}
	return matches
}

func notebookMatches(nb *types.Notebook, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(nb.Name), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(nb.Description), lowerQuery) {
		return true
	}
	for _, tag := range nb.TagList() {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}
