package policies

import (
	"context"

	"policydesk/internal/domain"
	"policydesk/internal/ports"
)

type Service struct {
	repo ports.PolicyRepository
}

func New(repo ports.PolicyRepository) *Service { return &Service{repo: repo} }

func (s *Service) List(ctx context.Context) ([]domain.Policy, error) {
	return s.repo.ListPolicies(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Policy, error) {
	return s.repo.GetPolicy(ctx, id)
}
