package applications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"policydesk/internal/domain"
	"policydesk/internal/domain/lifecycle"
	"policydesk/internal/domain/premium"
	"policydesk/internal/metrics"
	"policydesk/internal/ports"
)

type Service struct {
	policies ports.PolicyRepository
	apps     ports.ApplicationRepository
	store    ports.InstructionStore
	log      logrus.FieldLogger
	now      func() time.Time
}

func New(policies ports.PolicyRepository, apps ports.ApplicationRepository, store ports.InstructionStore, log logrus.FieldLogger) *Service {
	return &Service{
		policies: policies,
		apps:     apps,
		store:    store,
		log:      log.WithField("component", "applications"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Submit records a customer's application for a policy with status pending.
// The quoted monthly premium is stored with it and becomes the first payment.
func (s *Service) Submit(ctx context.Context, actor domain.Actor, sub ports.ApplicationSubmission) (domain.Application, error) {
	if actor.Role != domain.RoleCustomer {
		return domain.Application{}, fmt.Errorf("only customers apply for policies: %w", ports.ErrForbidden)
	}
	email, err := domain.NormalizeEmail(actor.Email)
	if err != nil {
		return domain.Application{}, err
	}
	if err := premium.Validate(sub.Profile); err != nil {
		return domain.Application{}, err
	}
	policy, err := s.policies.GetPolicy(ctx, sub.PolicyID)
	if err != nil {
		return domain.Application{}, fmt.Errorf("policy %s: %w", sub.PolicyID, err)
	}
	if !coverageWithin(policy, sub.Profile.CoverageAmount) {
		return domain.Application{}, fmt.Errorf("%w: coverage %d outside policy range %d-%d",
			premium.ErrInvalidProfile, sub.Profile.CoverageAmount, policy.MinCoverage, policy.MaxCoverage)
	}

	quote := premium.Estimate(sub.Profile)
	app, err := s.apps.CreateApplication(ctx, domain.Application{
		ApplicantEmail: email,
		PolicyRef:      policy.ID,
		SubmittedAt:    s.now(),
		Status:         domain.StatusPending,
		Notes:          sub.Notes,
		Profile:        sub.Profile,
		MonthlyPremium: quote.MonthlyPremium,
	})
	if err != nil {
		return domain.Application{}, err
	}
	s.log.WithFields(logrus.Fields{"application": app.ID, "policy": policy.ID}).Info("application submitted")
	return app, nil
}

func coverageWithin(p domain.Policy, amount int64) bool {
	if p.MinCoverage > 0 && amount < p.MinCoverage {
		return false
	}
	if p.MaxCoverage > 0 && amount > p.MaxCoverage {
		return false
	}
	return true
}

// Get hides other applicants' applications from customers as not found.
func (s *Service) Get(ctx context.Context, actor domain.Actor, id string) (domain.Application, error) {
	app, err := s.apps.GetApplication(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if !visible(actor, app) {
		return domain.Application{}, ports.ErrNotFound
	}
	return app, nil
}

func visible(actor domain.Actor, app domain.Application) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleAgent:
		return app.Status == domain.StatusPending || app.LifecycleAssignee() == actor.ID ||
			(app.DecidedBy != nil && *app.DecidedBy == actor.ID)
	default:
		email, err := domain.NormalizeEmail(actor.Email)
		return err == nil && email == app.ApplicantEmail
	}
}

// List scopes results by role: customers see their own applications, agents
// see the pending queue plus what they were assigned or decided, admins see
// everything.
func (s *Service) List(ctx context.Context, actor domain.Actor, status *domain.Status) ([]domain.Application, error) {
	f := ports.ApplicationFilter{Status: status}
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleAgent:
		f.AgentID = actor.ID
	default:
		email, err := domain.NormalizeEmail(actor.Email)
		if err != nil {
			return nil, err
		}
		f.ApplicantEmail = email
	}
	return s.apps.ListApplications(ctx, f)
}

// Targets lists where actor may move a visible application next.
func (s *Service) Targets(ctx context.Context, actor domain.Actor, id string) ([]domain.Status, error) {
	app, err := s.Get(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return lifecycle.Allowed(app, actor.Role, actor.ID), nil
}

// Transition asks the lifecycle table whether actor may move the application
// to status `to`, then persists the resulting instruction as one unit. A
// non-empty key makes retries safe: once a move with that key has landed, the
// same call returns the current application and changes nothing.
func (s *Service) Transition(ctx context.Context, actor domain.Actor, id string, to domain.Status, assignee, key string) (domain.Application, error) {
	app, err := s.apps.GetApplication(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	log := s.log.WithFields(logrus.Fields{"application": id, "from": app.Status, "to": to, "actor": actor.ID, "role": actor.Role})

	instructionKey := ports.InstructionKey(domain.KindApplication, id, actor.ID, to, key)
	if key != "" {
		done, err := s.store.Applied(ctx, instructionKey)
		if err != nil {
			return domain.Application{}, err
		}
		if done {
			log.WithField("key", instructionKey).Info("transition already applied")
			return app, nil
		}
	}

	var opts []lifecycle.Option
	if assignee != "" {
		opts = append(opts, lifecycle.WithAssignee(assignee))
	}
	in, err := lifecycle.Transition(app, to, actor.Role, actor.ID, opts...)
	if err != nil {
		metrics.RecordTransition(string(domain.KindApplication), string(app.Status), string(to), err)
		log.WithError(err).Warn("transition refused")
		return domain.Application{}, err
	}

	rec := ports.InstructionRecord{
		Key:            instructionKey,
		Instruction:    in,
		PolicyRef:      app.PolicyRef,
		ApplicantEmail: app.ApplicantEmail,
		PaymentAmount:  app.MonthlyPremium,
		At:             s.now(),
	}
	if err := s.store.Apply(ctx, rec); err != nil {
		metrics.RecordTransition(string(domain.KindApplication), string(app.Status), string(to), err)
		if errors.Is(err, ports.ErrConflict) {
			log.Warn("application changed concurrently")
		} else {
			log.WithError(err).Error("persist transition")
		}
		return domain.Application{}, err
	}
	metrics.RecordTransition(string(domain.KindApplication), string(app.Status), string(to), nil)
	log.WithFields(logrus.Fields{"key": rec.Key, "effects": in.Effects}).Info("application transitioned")

	return s.apps.GetApplication(ctx, id)
}
