package service

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"portal-backend/internal/common/errors"
	"portal-backend/internal/common/logger"
	"portal-backend/internal/common/validation"
	"portal-backend/internal/features/dns/models"
	"portal-backend/internal/features/dns/repository"
	poolmodels "portal-backend/internal/features/pool/models"
	poolservice "portal-backend/internal/features/pool/service"
)

type DNSService interface {
	List(ctx context.Context) (*models.ListResponse, error)
	Replace(ctx context.Context, req *models.ReplaceRequest) error
	Allocate(ctx context.Context, userID, code string) (string, error)
	Release(ctx context.Context, code, endpoint string) error
	Eligibility(ctx context.Context, userID, code string) (*poolmodels.Eligibility, error)
}

// dnsService keeps the country catalog; the endpoints themselves live in
// the address pools shared with the scanner.
type dnsService struct {
	repo  repository.CatalogRepository
	pools poolservice.PoolService
	log   zerolog.Logger
}

func NewDNSService(repo repository.CatalogRepository, pools poolservice.PoolService) DNSService {
	return &dnsService{
		repo:  repo,
		pools: pools,
		log:   logger.Component("dns"),
	}
}

func (s *dnsService) List(ctx context.Context) (*models.ListResponse, error) {
	catalog, err := s.repo.Get(ctx)
	if err != nil {
		return nil, errors.NewStoreError("get dns catalog", err)
	}

	views := make([]models.CountryView, 0, len(catalog.Countries))
	for _, country := range catalog.Countries {
		stats, err := s.pools.Stats(ctx, country.Code)
		if err != nil {
			return nil, err
		}
		views = append(views, models.CountryView{
			Code:      country.Code,
			Name:      country.Name,
			Total:     stats.Total,
			Busy:      stats.Used,
			Available: stats.Available,
		})
	}
	return &models.ListResponse{Countries: views}, nil
}

// Replace swaps the catalog and reseeds every listed country's pool.
// Countries dropped from the catalog have their pools cleared.
func (s *dnsService) Replace(ctx context.Context, req *models.ReplaceRequest) error {
	if req == nil || req.Countries == nil {
		return errors.NewValidationError("countries", "Body must be { countries: [...] }")
	}

	catalog := &models.Catalog{Countries: make([]models.Country, 0, len(req.Countries))}
	for i, in := range req.Countries {
		if _, err := validation.NormalizeCountry(in.Code); err != nil {
			return errors.NewValidationError("countries", err.Error()).WithDetail("index", i)
		}
		code := strings.ToUpper(strings.TrimSpace(in.Code))
		if slices.ContainsFunc(catalog.Countries, func(c models.Country) bool { return c.Code == code }) {
			return errors.NewValidationError("countries", "duplicate country code "+code).WithDetail("index", i)
		}
		name := strings.TrimSpace(in.Name)
		if name == "" {
			name = code
		}
		catalog.Countries = append(catalog.Countries, models.Country{Code: code, Name: name})
	}

	previous, err := s.repo.Get(ctx)
	if err != nil {
		return errors.NewStoreError("get dns catalog", err)
	}

	// Pools are seeded before the catalog is published, so a failed seed
	// leaves the previous catalog in place. Pools of dropped countries are
	// cleared last; leftovers are unreachable until a later replace clears them.
	for i, in := range req.Countries {
		if err := s.pools.Seed(ctx, catalog.Countries[i].Code, in.Endpoints, in.Busy); err != nil {
			return err
		}
	}
	if err := s.repo.Put(ctx, catalog); err != nil {
		return errors.NewStoreError("put dns catalog", err)
	}
	for _, old := range previous.Countries {
		if !slices.ContainsFunc(catalog.Countries, func(c models.Country) bool { return c.Code == old.Code }) {
			if err := s.pools.Clear(ctx, old.Code); err != nil {
				return err
			}
		}
	}

	s.log.Info().Int("countries", len(catalog.Countries)).Msg("DNS catalog replaced")
	return nil
}

func (s *dnsService) Allocate(ctx context.Context, userID, code string) (string, error) {
	code, err := s.lookup(ctx, code)
	if err != nil {
		return "", err
	}

	alloc, err := s.pools.Allocate(ctx, code, poolmodels.Requester{UserID: userID, Entry: "dns"})
	if err != nil {
		return "", err
	}
	return alloc.Address, nil
}

func (s *dnsService) Release(ctx context.Context, code, endpoint string) error {
	if strings.TrimSpace(code) == "" || strings.TrimSpace(endpoint) == "" {
		return errors.NewValidationError("code", "code and endpoint are required")
	}
	code, err := s.lookup(ctx, code)
	if err != nil {
		return err
	}
	return s.pools.Release(ctx, code, endpoint)
}

func (s *dnsService) Eligibility(ctx context.Context, userID, code string) (*poolmodels.Eligibility, error) {
	code, err := s.lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	return s.pools.Eligibility(ctx, userID, code)
}

// lookup resolves code against the catalog and returns it upper-cased.
func (s *dnsService) lookup(ctx context.Context, code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", errors.NewValidationError("code", "code is required")
	}

	catalog, err := s.repo.Get(ctx)
	if err != nil {
		return "", errors.NewStoreError("get dns catalog", err)
	}
	if !slices.ContainsFunc(catalog.Countries, func(c models.Country) bool { return c.Code == code }) {
		return "", errors.NewNotFoundError("country not found")
	}
	return code, nil
}
