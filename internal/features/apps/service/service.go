package service

import (
	"context"
	"fmt"
	"strings"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/logger"
	"portal-backend/internal/features/apps/models"
	"portal-backend/internal/features/apps/repository"
)

type AppsService interface {
	List(ctx context.Context) (*models.Catalog, error)
	Replace(ctx context.Context, catalog *models.Catalog) error
}

type appsService struct {
	repo repository.AppsRepository
}

func NewAppsService(repo repository.AppsRepository) AppsService {
	return &appsService{repo: repo}
}

func (s *appsService) List(ctx context.Context) (*models.Catalog, error) {
	catalog, err := s.repo.Get(ctx)
	if err != nil {
		return nil, errors.NewStoreError("get apps", err)
	}
	return catalog, nil
}

func (s *appsService) Replace(ctx context.Context, catalog *models.Catalog) error {
	if catalog == nil || catalog.Apps == nil {
		return errors.NewValidationError("apps", "Body must be { apps: [...] }")
	}
	for i := range catalog.Apps {
		catalog.Apps[i].Name = strings.TrimSpace(catalog.Apps[i].Name)
		if catalog.Apps[i].Name == "" {
			return errors.NewValidationError("apps", fmt.Sprintf("apps[%d].name is required", i))
		}
	}

	if err := s.repo.Put(ctx, catalog); err != nil {
		return errors.NewStoreError("put apps", err)
	}
	logger.Info().Int("apps", len(catalog.Apps)).Msg("Apps catalog replaced")
	return nil
}
