package payments

import (
	"context"
	"errors"
	"fmt"

	"policydesk/internal/domain"
	"policydesk/internal/ports"
	"policydesk/internal/workers/paymentrunner"
)

type Service struct {
	repo    ports.PaymentRepository
	jobs    ports.JobRepository
	notices paymentrunner.NoticeProcessor
}

func New(repo ports.PaymentRepository, jobs ports.JobRepository, notices paymentrunner.NoticeProcessor) *Service {
	return &Service{repo: repo, jobs: jobs, notices: notices}
}

// List returns the caller's payments; admins see every payment.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Payment, error) {
	var f ports.PaymentFilter
	if actor.Role != domain.RoleAdmin {
		email, err := domain.NormalizeEmail(actor.Email)
		if err != nil {
			return nil, err
		}
		f.ApplicantEmail = email
	}
	return s.repo.ListPayments(ctx, f)
}

// SendNotice lets an admin push a due notice through ahead of the workers.
// A payment whose notice is already sent or in flight is a conflict.
func (s *Service) SendNotice(ctx context.Context, actor domain.Actor, id string) (domain.Payment, error) {
	if actor.Role != domain.RoleAdmin {
		return domain.Payment{}, ports.ErrForbidden
	}
	p, err := s.repo.GetPayment(ctx, id)
	if err != nil {
		return domain.Payment{}, err
	}
	if p.Status != domain.PaymentDue {
		return domain.Payment{}, fmt.Errorf("payment %s is %s: %w", id, p.Status, ports.ErrConflict)
	}
	err = paymentrunner.ProcessInline(ctx, s.jobs, s.notices, id)
	if errors.Is(err, ports.ErrNotFound) {
		return domain.Payment{}, fmt.Errorf("payment %s has no queued notice: %w", id, ports.ErrConflict)
	}
	if err != nil {
		return domain.Payment{}, err
	}
	return s.repo.GetPayment(ctx, id)
}
