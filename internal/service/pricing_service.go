package service

import (
	"context"
	"errors"
	"strings"

	"github.com/sandeepkv93/volunteer-management-backend/internal/domain"
	"github.com/sandeepkv93/volunteer-management-backend/internal/observability"
	"github.com/sandeepkv93/volunteer-management-backend/internal/repository"
)

var (
	ErrPricingNotFound     = errors.New("pricing entry not found")
	ErrInvalidPricingInput = errors.New("name and price are required")
)

type PricingInput struct {
	Name        string
	Description string
	Price       float64
}

type pricingService struct {
	repo repository.PricingRepository
}

func NewPricingService(repo repository.PricingRepository) PricingService {
	return &pricingService{repo: repo}
}

func (s *pricingService) Create(ctx context.Context, input PricingInput) (*domain.PricingEntry, error) {
	normalized, err := normalizePricingInput(input)
	if err != nil {
		observability.RecordPricingOperation(ctx, "create", "bad_request")
		return nil, err
	}
	entry := &domain.PricingEntry{
		Name:        normalized.Name,
		Description: normalized.Description,
		Price:       normalized.Price,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		observability.RecordPricingOperation(ctx, "create", "error")
		return nil, err
	}
	observability.RecordPricingOperation(ctx, "create", "success")
	return entry, nil
}

func (s *pricingService) List(ctx context.Context) ([]domain.PricingEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		observability.RecordPricingOperation(ctx, "list", "error")
		return nil, err
	}
	observability.RecordPricingOperation(ctx, "list", "success")
	return entries, nil
}

func (s *pricingService) GetByID(ctx context.Context, id uint) (*domain.PricingEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPricingNotFound) {
			observability.RecordPricingOperation(ctx, "get", "not_found")
			return nil, ErrPricingNotFound
		}
		observability.RecordPricingOperation(ctx, "get", "error")
		return nil, err
	}
	observability.RecordPricingOperation(ctx, "get", "success")
	return entry, nil
}

// Update replaces name, description and price of an existing entry.
func (s *pricingService) Update(ctx context.Context, id uint, input PricingInput) (*domain.PricingEntry, error) {
	normalized, err := normalizePricingInput(input)
	if err != nil {
		observability.RecordPricingOperation(ctx, "update", "bad_request")
		return nil, err
	}
	updates := map[string]any{
		"name":        normalized.Name,
		"description": normalized.Description,
		"price":       normalized.Price,
	}
	if err := s.repo.Update(ctx, id, updates); err != nil {
		if errors.Is(err, repository.ErrPricingNotFound) {
			observability.RecordPricingOperation(ctx, "update", "not_found")
			return nil, ErrPricingNotFound
		}
		observability.RecordPricingOperation(ctx, "update", "error")
		return nil, err
	}
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPricingNotFound) {
			observability.RecordPricingOperation(ctx, "update", "not_found")
			return nil, ErrPricingNotFound
		}
		observability.RecordPricingOperation(ctx, "update", "error")
		return nil, err
	}
	observability.RecordPricingOperation(ctx, "update", "success")
	return entry, nil
}

func (s *pricingService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPricingNotFound) {
			observability.RecordPricingOperation(ctx, "delete", "not_found")
			return ErrPricingNotFound
		}
		observability.RecordPricingOperation(ctx, "delete", "error")
		return err
	}
	observability.RecordPricingOperation(ctx, "delete", "success")
	return nil
}

func normalizePricingInput(input PricingInput) (PricingInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	if input.Name == "" || input.Price <= 0 {
		return PricingInput{}, ErrInvalidPricingInput
	}
	return input, nil
}
