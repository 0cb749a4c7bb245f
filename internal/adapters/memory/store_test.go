package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policydesk/internal/domain"
	"policydesk/internal/domain/lifecycle"
	"policydesk/internal/ports"
)

func seeded(t *testing.T) (*Store, domain.Application) {
	t.Helper()
	s := New(domain.Policy{ID: "pol-1", Name: "Term Life"})
	app, err := s.CreateApplication(context.Background(), domain.Application{
		ApplicantEmail: "jane@example.com",
		PolicyRef:      "pol-1",
		Status:         domain.StatusPending,
		MonthlyPremium: 700,
		SubmittedAt:    time.Now(),
	})
	require.NoError(t, err)
	return s, app
}

func TestApply_ApprovalLandsAllEffects(t *testing.T) {
	ctx := context.Background()
	s, app := seeded(t)

	in, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAdmin, "adm")
	require.NoError(t, err)
	require.NoError(t, s.Apply(ctx, ports.InstructionRecord{Key: "k1", Instruction: in, PolicyRef: "pol-1", ApplicantEmail: app.ApplicantEmail, PaymentAmount: 700, At: time.Now()}))

	got, err := s.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
	assert.NotNil(t, got.DecidedAt)

	held, err := s.HasHolding(ctx, "pol-1", app.ApplicantEmail)
	require.NoError(t, err)
	assert.True(t, held)

	pol, err := s.GetPolicy(ctx, "pol-1")
	require.NoError(t, err)
	assert.Equal(t, 1, pol.PurchaseCount)

	payments, err := s.ListPayments(ctx, ports.PaymentFilter{ApplicantEmail: app.ApplicantEmail})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, int64(700), payments[0].Amount)
	assert.Equal(t, domain.PaymentDue, payments[0].Status)
	assert.Equal(t, "queued", s.JobStatuses()[payments[0].ID])
}

func TestApply_ReplayedKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	s, app := seeded(t)

	in, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAdmin, "adm")
	require.NoError(t, err)
	rec := ports.InstructionRecord{Key: "same", Instruction: in, PaymentAmount: 700, At: time.Now()}
	done, err := s.Applied(ctx, rec.Key)
	require.NoError(t, err)
	assert.False(t, done)
	require.NoError(t, s.Apply(ctx, rec))
	require.NoError(t, s.Apply(ctx, rec))
	done, err = s.Applied(ctx, rec.Key)
	require.NoError(t, err)
	assert.True(t, done)

	payments, err := s.ListPayments(ctx, ports.PaymentFilter{})
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestApply_StaleStatusConflicts(t *testing.T) {
	ctx := context.Background()
	s, app := seeded(t)

	approve, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAdmin, "adm")
	require.NoError(t, err)
	reject, err := lifecycle.Transition(app, domain.StatusRejected, domain.RoleAdmin, "adm")
	require.NoError(t, err)

	require.NoError(t, s.Apply(ctx, ports.InstructionRecord{Key: "a", Instruction: approve}))
	err = s.Apply(ctx, ports.InstructionRecord{Key: "b", Instruction: reject})
	assert.ErrorIs(t, err, ports.ErrConflict)

	got, err := s.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestApply_ConcurrentDecisionsOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	s, app := seeded(t)
	in, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAgent, "a1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.Apply(ctx, ports.InstructionRecord{Key: string(rune('a' + i)), Instruction: in}); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, wins)
}

func TestListApplications_AgentQueue(t *testing.T) {
	ctx := context.Background()
	s, pending := seeded(t)
	a1, a2 := "a1", "a2"
	_, err := s.CreateApplication(ctx, domain.Application{ID: "mine", Status: domain.StatusAssigned, AssignedAgent: &a1})
	require.NoError(t, err)
	_, err = s.CreateApplication(ctx, domain.Application{ID: "theirs", Status: domain.StatusAssigned, AssignedAgent: &a2})
	require.NoError(t, err)
	_, err = s.CreateApplication(ctx, domain.Application{ID: "decided", Status: domain.StatusRejected, DecidedBy: &a1})
	require.NoError(t, err)

	got, err := s.ListApplications(ctx, ports.ApplicationFilter{AgentID: "a1"})
	require.NoError(t, err)
	ids := []string{}
	for _, app := range got {
		ids = append(ids, app.ID)
	}
	assert.ElementsMatch(t, []string{pending.ID, "mine", "decided"}, ids)
}

func TestJobs_ClaimAndComplete(t *testing.T) {
	ctx := context.Background()
	s, app := seeded(t)
	in, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAdmin, "adm")
	require.NoError(t, err)
	require.NoError(t, s.Apply(ctx, ports.InstructionRecord{Instruction: in, PaymentAmount: 700, At: time.Now()}))

	job, found, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)

	_, found, err = s.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.MarkCompleted(ctx, job.ID))
	p, err := s.GetPayment(ctx, job.PaymentID)
	require.NoError(t, err)
	assert.NotNil(t, p.NotifiedAt)
}

func TestApply_RecordsDecider(t *testing.T) {
	ctx := context.Background()
	s, app := seeded(t)
	in, err := lifecycle.Transition(app, domain.StatusRejected, domain.RoleAgent, "a1")
	require.NoError(t, err)
	require.NoError(t, s.Apply(ctx, ports.InstructionRecord{Instruction: in, At: time.Now()}))

	got, err := s.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DecidedBy)
	assert.Equal(t, "a1", *got.DecidedBy)
}

func TestJobs_Requeue(t *testing.T) {
	ctx := context.Background()
	s, app := seeded(t)
	in, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAdmin, "adm")
	require.NoError(t, err)
	require.NoError(t, s.Apply(ctx, ports.InstructionRecord{Instruction: in, PaymentAmount: 700, At: time.Now()}))

	job, found, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	require.NoError(t, s.Requeue(ctx, job.ID))
	assert.Equal(t, "queued", s.JobStatuses()[job.PaymentID])

	again, found, err := s.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, job.ID, again.ID)
	require.NoError(t, s.MarkCompleted(ctx, again.ID))

	assert.ErrorIs(t, s.Requeue(ctx, job.ID), ports.ErrNotFound)
	assert.Equal(t, "completed", s.JobStatuses()[job.PaymentID], "finished jobs stay finished")
	assert.ErrorIs(t, s.Requeue(ctx, "missing"), ports.ErrNotFound)
}
