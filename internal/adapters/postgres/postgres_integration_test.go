package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policydesk/internal/domain"
	"policydesk/internal/domain/lifecycle"
	"policydesk/internal/ports"
)

// These tests need a disposable database; set POLICYDESK_TEST_DATABASE_URL to run them.
func testDB(t *testing.T) *DB {
	t.Helper()
	url := os.Getenv("POLICYDESK_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("POLICYDESK_TEST_DATABASE_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := Connect(ctx, url)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Migrate(ctx)
	require.NoError(t, err)
	return db
}

func firstPolicy(t *testing.T, db *DB) domain.Policy {
	t.Helper()
	policies, err := db.ListPolicies(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, policies, "seed migration should provide a catalog")
	return policies[0]
}

func newApplication(t *testing.T, db *DB, policyID string) domain.Application {
	t.Helper()
	app, err := db.CreateApplication(context.Background(), domain.Application{
		ApplicantEmail: uuid.NewString() + "@example.com",
		PolicyRef:      policyID,
		SubmittedAt:    time.Now().UTC(),
		Status:         domain.StatusPending,
		Profile:        domain.ApplicantProfile{Age: 40, Gender: domain.GenderFemale, CoverageAmount: 200000, DurationYears: 10},
		MonthlyPremium: 120,
	})
	require.NoError(t, err)
	return app
}

func TestMigrate_Idempotent(t *testing.T) {
	db := testDB(t)
	n, err := db.Migrate(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestApply_ApprovalIsAtomic(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	policy := firstPolicy(t, db)
	app := newApplication(t, db, policy.ID)

	in, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAdmin, "adm")
	require.NoError(t, err)
	rec := ports.InstructionRecord{Key: uuid.NewString(), Instruction: in, PaymentAmount: app.MonthlyPremium, At: time.Now().UTC()}
	require.NoError(t, db.Apply(ctx, rec))
	require.NoError(t, db.Apply(ctx, rec), "replaying a key is a no-op")

	got, err := db.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
	assert.NotNil(t, got.DecidedAt)

	held, err := db.HasHolding(ctx, policy.ID, app.ApplicantEmail)
	require.NoError(t, err)
	assert.True(t, held)

	payments, err := db.ListPayments(ctx, ports.PaymentFilter{ApplicantEmail: app.ApplicantEmail})
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, app.MonthlyPremium, payments[0].Amount)

	jobID, err := db.StartJobForPayment(ctx, payments[0].ID)
	require.NoError(t, err)
	require.NoError(t, db.MarkCompleted(ctx, jobID))
	p, err := db.GetPayment(ctx, payments[0].ID)
	require.NoError(t, err)
	assert.NotNil(t, p.NotifiedAt)
}

func TestApply_StaleStatus(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	app := newApplication(t, db, firstPolicy(t, db).ID)

	reject, err := lifecycle.Transition(app, domain.StatusRejected, domain.RoleAgent, "a1")
	require.NoError(t, err)
	approve, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAgent, "a1")
	require.NoError(t, err)

	require.NoError(t, db.Apply(ctx, ports.InstructionRecord{Key: uuid.NewString(), Instruction: reject, At: time.Now()}))
	err = db.Apply(ctx, ports.InstructionRecord{Key: uuid.NewString(), Instruction: approve, At: time.Now()})
	assert.ErrorIs(t, err, ports.ErrConflict)

	held, err := db.HasHolding(ctx, app.PolicyRef, app.ApplicantEmail)
	require.NoError(t, err)
	assert.False(t, held, "rolled back effects must not land")
}

func TestClaims_UniquePerApplicant(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	policy := firstPolicy(t, db)
	email := uuid.NewString() + "@example.com"

	c := domain.Claim{PolicyRef: policy.ID, ApplicantEmail: email, Reason: "hail", Status: domain.StatusPending, SubmittedAt: time.Now()}
	_, err := db.CreateClaim(ctx, c)
	require.NoError(t, err)
	_, err = db.CreateClaim(ctx, c)
	assert.ErrorIs(t, err, ports.ErrConflict)

	exists, err := db.HasClaim(ctx, policy.ID, email)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGet_MalformedIDIsNotFound(t *testing.T) {
	db := testDB(t)
	_, err := db.GetApplication(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestApply_RecordsDecider(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	app := newApplication(t, db, firstPolicy(t, db).ID)
	agent := "agent-" + uuid.NewString()

	in, err := lifecycle.Transition(app, domain.StatusRejected, domain.RoleAgent, agent)
	require.NoError(t, err)
	rec := ports.InstructionRecord{Key: uuid.NewString(), Instruction: in, At: time.Now().UTC()}

	applied, err := db.Applied(ctx, rec.Key)
	require.NoError(t, err)
	assert.False(t, applied)
	require.NoError(t, db.Apply(ctx, rec))
	applied, err = db.Applied(ctx, rec.Key)
	require.NoError(t, err)
	assert.True(t, applied)

	got, err := db.GetApplication(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DecidedBy)
	assert.Equal(t, agent, *got.DecidedBy)

	listed, err := db.ListApplications(ctx, ports.ApplicationFilter{AgentID: agent})
	require.NoError(t, err)
	var found bool
	for _, a := range listed {
		found = found || a.ID == app.ID
	}
	assert.True(t, found, "the deciding agent still lists the application")
}

func TestJobs_RequeueThenComplete(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	app := newApplication(t, db, firstPolicy(t, db).ID)
	in, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAdmin, "adm")
	require.NoError(t, err)
	require.NoError(t, db.Apply(ctx, ports.InstructionRecord{Key: uuid.NewString(), Instruction: in, PaymentAmount: 10, At: time.Now().UTC()}))
	payments, err := db.ListPayments(ctx, ports.PaymentFilter{ApplicantEmail: app.ApplicantEmail})
	require.NoError(t, err)
	require.Len(t, payments, 1)

	jobID, err := db.StartJobForPayment(ctx, payments[0].ID)
	require.NoError(t, err)
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.NoError(t, db.Requeue(context.WithoutCancel(cancelled), jobID), "shutdown paths requeue with a detached context")
	assert.ErrorIs(t, db.Requeue(ctx, jobID), ports.ErrNotFound, "only running jobs requeue")

	again, err := db.StartJobForPayment(ctx, payments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, jobID, again)
	require.NoError(t, db.MarkCompleted(ctx, again))
	p, err := db.GetPayment(ctx, payments[0].ID)
	require.NoError(t, err)
	assert.NotNil(t, p.NotifiedAt)

	assert.ErrorIs(t, db.MarkCompleted(ctx, uuid.NewString()), ports.ErrNotFound)
}
