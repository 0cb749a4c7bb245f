package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"policydesk/internal/domain"
	"policydesk/internal/domain/lifecycle"
	"policydesk/internal/ports"
)

// Store is an in-memory implementation of the storage ports. It is safe for
// concurrent use and is intended for tests and local development.
type Store struct {
	mu           sync.RWMutex
	policies     map[string]domain.Policy
	applications map[string]domain.Application
	claims       map[string]domain.Claim
	holdings     map[string]domain.Holding
	payments     map[string]domain.Payment
	jobs         map[string]*job
	applied      map[string]bool
}

type job struct {
	id        string
	paymentID string
	status    string // queued|running|completed|failed
	queuedAt  time.Time
	reason    string
}

var (
	_ ports.PolicyRepository      = (*Store)(nil)
	_ ports.ApplicationRepository = (*Store)(nil)
	_ ports.ClaimRepository       = (*Store)(nil)
	_ ports.HoldingRepository     = (*Store)(nil)
	_ ports.PaymentRepository     = (*Store)(nil)
	_ ports.InstructionStore      = (*Store)(nil)
	_ ports.JobRepository         = (*Store)(nil)
)

// New creates a store seeded with the given catalog.
func New(catalog ...domain.Policy) *Store {
	s := &Store{
		policies:     make(map[string]domain.Policy),
		applications: make(map[string]domain.Application),
		claims:       make(map[string]domain.Claim),
		holdings:     make(map[string]domain.Holding),
		payments:     make(map[string]domain.Payment),
		jobs:         make(map[string]*job),
		applied:      make(map[string]bool),
	}
	for _, p := range catalog {
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		s.policies[p.ID] = p
	}
	return s
}

// PolicyRepository -----------------------------------------------------------

func (s *Store) ListPolicies(_ context.Context) ([]domain.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Policy, 0, len(s.policies))
	for _, p := range s.policies {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.Policy) int { return strings.Compare(a.Name, b.Name) })
	return out, nil
}

func (s *Store) GetPolicy(_ context.Context, id string) (domain.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.policies[id]
	if !ok {
		return domain.Policy{}, ports.ErrNotFound
	}
	return p, nil
}

// ApplicationRepository ------------------------------------------------------

func (s *Store) CreateApplication(_ context.Context, app domain.Application) (domain.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if app.ID == "" {
		app.ID = uuid.NewString()
	} else if _, exists := s.applications[app.ID]; exists {
		return domain.Application{}, fmt.Errorf("application %s: %w", app.ID, ports.ErrConflict)
	}
	s.applications[app.ID] = cloneApplication(app)
	return cloneApplication(app), nil
}

func (s *Store) GetApplication(_ context.Context, id string) (domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.applications[id]
	if !ok {
		return domain.Application{}, ports.ErrNotFound
	}
	return cloneApplication(app), nil
}

func (s *Store) ListApplications(_ context.Context, f ports.ApplicationFilter) ([]domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Application{}
	for _, app := range s.applications {
		if f.Status != nil && app.Status != *f.Status {
			continue
		}
		if f.ApplicantEmail != "" && app.ApplicantEmail != f.ApplicantEmail {
			continue
		}
		if f.AgentID != "" && app.Status != domain.StatusPending && app.LifecycleAssignee() != f.AgentID && !decidedBy(app, f.AgentID) {
			continue
		}
		out = append(out, cloneApplication(app))
	}
	slices.SortFunc(out, func(a, b domain.Application) int { return b.SubmittedAt.Compare(a.SubmittedAt) })
	return out, nil
}

func decidedBy(app domain.Application, actorID string) bool {
	return app.DecidedBy != nil && *app.DecidedBy == actorID
}

func cloneApplication(app domain.Application) domain.Application {
	if app.AssignedAgent != nil {
		a := *app.AssignedAgent
		app.AssignedAgent = &a
	}
	if app.DecidedAt != nil {
		d := *app.DecidedAt
		app.DecidedAt = &d
	}
	if app.DecidedBy != nil {
		d := *app.DecidedBy
		app.DecidedBy = &d
	}
	return app
}

// ClaimRepository ------------------------------------------------------------

func (s *Store) CreateClaim(_ context.Context, c domain.Claim) (domain.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	for _, existing := range s.claims {
		if existing.PolicyRef == c.PolicyRef && existing.ApplicantEmail == c.ApplicantEmail {
			return domain.Claim{}, fmt.Errorf("claim for policy %s: %w", c.PolicyRef, ports.ErrConflict)
		}
	}
	s.claims[c.ID] = c
	return c, nil
}

func (s *Store) GetClaim(_ context.Context, id string) (domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.claims[id]
	if !ok {
		return domain.Claim{}, ports.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListClaims(_ context.Context, f ports.ClaimFilter) ([]domain.Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Claim{}
	for _, c := range s.claims {
		if f.Status != nil && c.Status != *f.Status {
			continue
		}
		if f.ApplicantEmail != "" && c.ApplicantEmail != f.ApplicantEmail {
			continue
		}
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Claim) int { return b.SubmittedAt.Compare(a.SubmittedAt) })
	return out, nil
}

func (s *Store) HasClaim(_ context.Context, policyID, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.claims {
		if c.PolicyRef == policyID && c.ApplicantEmail == email {
			return true, nil
		}
	}
	return false, nil
}

// HoldingRepository ----------------------------------------------------------

func (s *Store) HasHolding(_ context.Context, policyID, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, h := range s.holdings {
		if h.PolicyRef == policyID && h.ApplicantEmail == email {
			return true, nil
		}
	}
	return false, nil
}

// PaymentRepository ----------------------------------------------------------

func (s *Store) ListPayments(_ context.Context, f ports.PaymentFilter) ([]domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Payment{}
	for _, p := range s.payments {
		if f.ApplicantEmail != "" && p.ApplicantEmail != f.ApplicantEmail {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b domain.Payment) int { return a.DueAt.Compare(b.DueAt) })
	return out, nil
}

func (s *Store) GetPayment(_ context.Context, id string) (domain.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.payments[id]
	if !ok {
		return domain.Payment{}, ports.ErrNotFound
	}
	return p, nil
}

// InstructionStore -----------------------------------------------------------

// Applied reports whether an instruction with key has already landed.
func (s *Store) Applied(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applied[key], nil
}

// Apply holds the write lock for the whole instruction so its effects land together.
func (s *Store) Apply(_ context.Context, rec ports.InstructionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec.Key != "" && s.applied[rec.Key] {
		return nil
	}
	in := rec.Instruction
	at := rec.At

	switch in.Kind {
	case domain.KindApplication:
		app, ok := s.applications[in.EntityID]
		if !ok {
			return ports.ErrNotFound
		}
		if app.Status != in.From {
			return fmt.Errorf("application %s is %s, expected %s: %w", app.ID, app.Status, in.From, ports.ErrConflict)
		}
		app.Status = in.To
		if in.Has(lifecycle.EffectRecordAssignee) {
			agent := in.AssignedAgent
			app.AssignedAgent = &agent
		}
		if in.To.IsTerminal() {
			app.DecidedAt = &at
			if in.ActorID != "" {
				by := in.ActorID
				app.DecidedBy = &by
			}
		}
		s.applications[app.ID] = app

		if in.Has(lifecycle.EffectActivatePolicy) {
			s.activateLocked(app, at)
		}
		if in.Has(lifecycle.EffectSchedulePaymentDue) {
			s.schedulePaymentLocked(app, rec.PaymentAmount, at)
		}
	case domain.KindClaim:
		c, ok := s.claims[in.EntityID]
		if !ok {
			return ports.ErrNotFound
		}
		if c.Status != in.From {
			return fmt.Errorf("claim %s is %s, expected %s: %w", c.ID, c.Status, in.From, ports.ErrConflict)
		}
		c.Status = in.To
		if in.To.IsTerminal() {
			c.DecidedAt = &at
		}
		s.claims[c.ID] = c
	default:
		return fmt.Errorf("unknown entity kind %q", in.Kind)
	}

	if rec.Key != "" {
		s.applied[rec.Key] = true
	}
	return nil
}

func (s *Store) activateLocked(app domain.Application, at time.Time) {
	h := domain.Holding{
		ID:             uuid.NewString(),
		ApplicationRef: app.ID,
		PolicyRef:      app.PolicyRef,
		ApplicantEmail: app.ApplicantEmail,
		ActivatedAt:    at,
	}
	s.holdings[h.ID] = h
	if p, ok := s.policies[app.PolicyRef]; ok {
		p.PurchaseCount++
		s.policies[p.ID] = p
	}
}

func (s *Store) schedulePaymentLocked(app domain.Application, amount int64, at time.Time) {
	p := domain.Payment{
		ID:             uuid.NewString(),
		ApplicationRef: app.ID,
		ApplicantEmail: app.ApplicantEmail,
		Amount:         amount,
		Status:         domain.PaymentDue,
		DueAt:          at,
	}
	s.payments[p.ID] = p
	j := &job{id: uuid.NewString(), paymentID: p.ID, status: "queued", queuedAt: at}
	s.jobs[j.id] = j
}
