package claims

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policydesk/internal/adapters/memory"
	"policydesk/internal/domain"
	"policydesk/internal/domain/lifecycle"
	"policydesk/internal/ports"
)

var (
	customer = domain.Actor{ID: "c1", Email: "jane@example.com", Role: domain.RoleCustomer}
	agent    = domain.Actor{ID: "a1", Email: "a1@example.com", Role: domain.RoleAgent}
	admin    = domain.Actor{ID: "adm", Email: "admin@example.com", Role: domain.RoleAdmin}
)

// newService returns a service whose store holds an approved application of
// pol-1 for the customer.
func newService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	ctx := context.Background()
	store := memory.New(domain.Policy{ID: "pol-1", Name: "Term Life"}, domain.Policy{ID: "pol-2", Name: "Home"})
	app, err := store.CreateApplication(ctx, domain.Application{ApplicantEmail: customer.Email, PolicyRef: "pol-1", Status: domain.StatusPending})
	require.NoError(t, err)
	in, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAdmin, admin.ID)
	require.NoError(t, err)
	require.NoError(t, store.Apply(ctx, ports.InstructionRecord{Key: "seed", Instruction: in, At: time.Now()}))

	log, _ := test.NewNullLogger()
	return New(store, store, store, log), store
}

func TestSubmit(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	c, err := s.Submit(ctx, customer, ports.ClaimSubmission{PolicyID: "pol-1", Reason: "water damage", DocumentRef: "https://files.example.com/receipt.pdf"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, c.Status)
	assert.Equal(t, "jane@example.com", c.ApplicantEmail)

	_, err = s.Submit(ctx, customer, ports.ClaimSubmission{PolicyID: "pol-1", Reason: "again"})
	assert.ErrorIs(t, err, ErrDuplicateClaim)
}

func TestSubmit_Rejections(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	_, err := s.Submit(ctx, customer, ports.ClaimSubmission{PolicyID: "pol-2", Reason: "fire"})
	assert.ErrorIs(t, err, ErrPolicyNotActive)

	_, err = s.Submit(ctx, customer, ports.ClaimSubmission{PolicyID: "pol-1", Reason: "  "})
	assert.ErrorIs(t, err, ErrMissingReason)

	_, err = s.Submit(ctx, agent, ports.ClaimSubmission{PolicyID: "pol-1", Reason: "fire"})
	assert.ErrorIs(t, err, ports.ErrForbidden)
}

func TestTransition(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()
	c, err := s.Submit(ctx, customer, ports.ClaimSubmission{PolicyID: "pol-1", Reason: "water damage"})
	require.NoError(t, err)

	_, err = s.Transition(ctx, customer, c.ID, domain.StatusApproved, "")
	assert.ErrorIs(t, err, lifecycle.ErrForbiddenActor)

	approved, err := s.Transition(ctx, agent, c.ID, domain.StatusApproved, "")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, approved.Status)
	assert.NotNil(t, approved.DecidedAt)

	_, err = s.Transition(ctx, admin, c.ID, domain.StatusRejected, "")
	assert.ErrorIs(t, err, lifecycle.ErrIllegalTransition)
}

func TestTransition_RetriedKey(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()
	c, err := s.Submit(ctx, customer, ports.ClaimSubmission{PolicyID: "pol-1", Reason: "water damage"})
	require.NoError(t, err)

	rejected, err := s.Transition(ctx, agent, c.ID, domain.StatusRejected, "k1")
	require.NoError(t, err)
	again, err := s.Transition(ctx, agent, c.ID, domain.StatusRejected, "k1")
	require.NoError(t, err)
	assert.Equal(t, rejected, again)

	_, err = s.Transition(ctx, agent, c.ID, domain.StatusApproved, "k1")
	assert.ErrorIs(t, err, lifecycle.ErrIllegalTransition, "the key covers one move, not any move")
}

func TestList(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()
	_, err := s.Submit(ctx, customer, ports.ClaimSubmission{PolicyID: "pol-1", Reason: "water damage"})
	require.NoError(t, err)

	other := domain.Actor{ID: "c2", Email: "bob@example.com", Role: domain.RoleCustomer}
	none, err := s.List(ctx, other, nil)
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := s.List(ctx, agent, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	rejected := domain.StatusRejected
	filtered, err := s.List(ctx, admin, &rejected)
	require.NoError(t, err)
	assert.Empty(t, filtered)
}
