package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/suar-net/suar-dash/internal/model"
	"github.com/suar-net/suar-dash/internal/repository"
)

// idRule mirrors the ProxyRequest.id column, char(30).
const idRule = "required,max=30"

type proxyRequestService struct {
	repo repository.IProxyRequestRepository
}

func NewProxyRequestService(repo repository.IProxyRequestRepository) IProxyRequestService {
	return &proxyRequestService{repo: repo}
}

func (s *proxyRequestService) List(ctx context.Context) ([]model.ProxyRequest, error) {
	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get proxy requests: %w", err)
	}
	return requests, nil
}

func (s *proxyRequestService) Get(ctx context.Context, id string) (*model.ProxyRequest, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	pr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: no proxy request with id %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get proxy request %s: %w", id, err)
	}
	return pr, nil
}

// Delete removes one proxy request. Deleting an id that does not exist is
// not an error.
func (s *proxyRequestService) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete proxy request %s: %w", id, err)
	}
	return nil
}

func (s *proxyRequestService) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to delete all proxy requests: %w", err)
	}
	return nil
}

func validateID(id string) error {
	if err := model.ValidateVar(id, idRule); err != nil {
		return fmt.Errorf("%w: id must be between 1 and 30 characters", ErrInvalidInput)
	}
	return nil
}
