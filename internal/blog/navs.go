package blog

import (
	"context"
	"fmt"

	"inkwell/internal/models"
)

// Navigation splits the live categories into menu entries and the rest.
type Navigation struct {
	Navs       []models.Category `json:"navs"`
	Categories []models.Category `json:"categories"`
}

// Navs fetches the live categories once and partitions them in memory.
func (s *Service) Navs(ctx context.Context) (Navigation, error) {
	cats, err := s.categories.ListByStatus(ctx, models.StatusNormal)
	if err != nil {
		return Navigation{}, fmt.Errorf("load navigation: %w", err)
	}
	return PartitionNavs(cats), nil
}

// PartitionNavs splits categories by IsNav, preserving input order.
// Categories that are not live are skipped.
func PartitionNavs(cats []models.Category) Navigation {
	nav := Navigation{
		Navs:       make([]models.Category, 0),
		Categories: make([]models.Category, 0, len(cats)),
	}
	for _, c := range cats {
		if !c.Status.IsLive() {
			continue
		}
		if c.IsNav {
			nav.Navs = append(nav.Navs, c)
		} else {
			nav.Categories = append(nav.Categories, c)
		}
	}
	return nav
}
