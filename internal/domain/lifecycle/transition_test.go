package lifecycle

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policydesk/internal/domain"
)

func application(status domain.Status, assignee string) domain.Application {
	app := domain.Application{ID: "app-1", ApplicantEmail: "jane@example.com", PolicyRef: "pol-1", Status: status}
	if assignee != "" {
		app.AssignedAgent = &assignee
	}
	return app
}

func claim(status domain.Status) domain.Claim {
	return domain.Claim{ID: "clm-1", PolicyRef: "pol-1", ApplicantEmail: "jane@example.com", Status: status}
}

var (
	allStatuses = []domain.Status{domain.StatusPending, domain.StatusAssigned, domain.StatusApproved, domain.StatusRejected}
	allRoles    = []domain.Role{domain.RoleCustomer, domain.RoleAgent, domain.RoleAdmin}
)

func TestTransition_ApplicationTable(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.Status
		to      domain.Status
		role    domain.Role
		actor   string
		opts    []Option
		wantErr error
		effects []Effect
	}{
		{name: "admin assigns", from: domain.StatusPending, to: domain.StatusAssigned, role: domain.RoleAdmin, actor: "adm", opts: []Option{WithAssignee("a1")}, effects: []Effect{EffectRecordAssignee}},
		{name: "agent cannot assign", from: domain.StatusPending, to: domain.StatusAssigned, role: domain.RoleAgent, actor: "a1", opts: []Option{WithAssignee("a1")}, wantErr: ErrForbiddenActor},
		{name: "assign needs agent", from: domain.StatusPending, to: domain.StatusAssigned, role: domain.RoleAdmin, actor: "adm", wantErr: ErrMissingAssignee},
		{name: "agent approves pending", from: domain.StatusPending, to: domain.StatusApproved, role: domain.RoleAgent, actor: "a1", effects: approvalEffects},
		{name: "admin approves pending", from: domain.StatusPending, to: domain.StatusApproved, role: domain.RoleAdmin, actor: "adm", effects: approvalEffects},
		{name: "customer cannot approve", from: domain.StatusPending, to: domain.StatusApproved, role: domain.RoleCustomer, actor: "c1", wantErr: ErrForbiddenActor},
		{name: "agent rejects pending", from: domain.StatusPending, to: domain.StatusRejected, role: domain.RoleAgent, actor: "a1"},
		{name: "admin rejects pending", from: domain.StatusPending, to: domain.StatusRejected, role: domain.RoleAdmin, actor: "adm"},
		{name: "assignee approves", from: domain.StatusAssigned, to: domain.StatusApproved, role: domain.RoleAgent, actor: "a1", effects: approvalEffects},
		{name: "assignee rejects", from: domain.StatusAssigned, to: domain.StatusRejected, role: domain.RoleAgent, actor: "a1"},
		{name: "admin cannot approve assigned", from: domain.StatusAssigned, to: domain.StatusApproved, role: domain.RoleAdmin, actor: "adm", wantErr: ErrForbiddenActor},
		{name: "other agent cannot approve assigned", from: domain.StatusAssigned, to: domain.StatusApproved, role: domain.RoleAgent, actor: "a2", wantErr: ErrNotAssignedAgent},
		{name: "other agent cannot reject assigned", from: domain.StatusAssigned, to: domain.StatusRejected, role: domain.RoleAgent, actor: "a2", wantErr: ErrNotAssignedAgent},
		{name: "anonymous agent cannot approve assigned", from: domain.StatusAssigned, to: domain.StatusApproved, role: domain.RoleAgent, wantErr: ErrNotAssignedAgent},
		{name: "no reassignment", from: domain.StatusAssigned, to: domain.StatusAssigned, role: domain.RoleAdmin, actor: "adm", opts: []Option{WithAssignee("a2")}, wantErr: ErrIllegalTransition},
		{name: "no return to pending", from: domain.StatusAssigned, to: domain.StatusPending, role: domain.RoleAdmin, actor: "adm", wantErr: ErrIllegalTransition},
		{name: "unknown target", from: domain.StatusPending, to: "cancelled", role: domain.RoleAdmin, actor: "adm", wantErr: ErrIllegalTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignee := ""
			if tt.from == domain.StatusAssigned {
				assignee = "a1"
			}
			app := application(tt.from, assignee)

			in, err := Transition(app, tt.to, tt.role, tt.actor, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Instruction{}, in)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.KindApplication, in.Kind)
			assert.Equal(t, app.ID, in.EntityID)
			assert.Equal(t, tt.from, in.From)
			assert.Equal(t, tt.to, in.To)
			assert.Equal(t, tt.actor, in.ActorID)
			assert.ElementsMatch(t, tt.effects, in.Effects)
		})
	}
}

func TestTransition_TerminalStatusesAreFinal(t *testing.T) {
	for _, from := range []domain.Status{domain.StatusApproved, domain.StatusRejected} {
		for _, to := range allStatuses {
			for _, role := range allRoles {
				_, err := Transition(application(from, "a1"), to, role, "a1", WithAssignee("a1"))
				assert.ErrorIs(t, err, ErrIllegalTransition, "application %s -> %s by %s", from, to, role)

				_, err = Transition(claim(from), to, role, "a1")
				assert.ErrorIs(t, err, ErrIllegalTransition, "claim %s -> %s by %s", from, to, role)
			}
		}
	}
}

func TestTransition_ApproveSchedulesActivationAndPayment(t *testing.T) {
	in, err := Transition(application(domain.StatusPending, ""), domain.StatusApproved, domain.RoleAgent, "a1")
	require.NoError(t, err)
	assert.True(t, in.Has(EffectActivatePolicy))
	assert.True(t, in.Has(EffectSchedulePaymentDue))
	assert.False(t, in.Has(EffectRecordAssignee))
}

func TestTransition_AssignThenOtherAgentApproves(t *testing.T) {
	app := application(domain.StatusPending, "")

	in, err := Transition(app, domain.StatusAssigned, domain.RoleAdmin, "adm", WithAssignee("a1"))
	require.NoError(t, err)
	assert.Equal(t, "a1", in.AssignedAgent)

	// Caller persists the instruction.
	app.Status = in.To
	app.AssignedAgent = &in.AssignedAgent

	_, err = Transition(app, domain.StatusApproved, domain.RoleAgent, "a2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAssignedAgent) || errors.Is(err, ErrForbiddenActor))

	in, err = Transition(app, domain.StatusApproved, domain.RoleAgent, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusAssigned, in.From)
}

func TestTransition_Claims(t *testing.T) {
	tests := []struct {
		name    string
		to      domain.Status
		role    domain.Role
		wantErr error
	}{
		{"agent approves", domain.StatusApproved, domain.RoleAgent, nil},
		{"admin approves", domain.StatusApproved, domain.RoleAdmin, nil},
		{"agent rejects", domain.StatusRejected, domain.RoleAgent, nil},
		{"admin rejects", domain.StatusRejected, domain.RoleAdmin, nil},
		{"customer cannot approve", domain.StatusApproved, domain.RoleCustomer, ErrForbiddenActor},
		{"claims are never assigned", domain.StatusAssigned, domain.RoleAdmin, ErrIllegalTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := Transition(claim(domain.StatusPending), tt.to, tt.role, "x", WithAssignee("a1"))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.KindClaim, in.Kind)
			assert.Empty(t, in.Effects)
		})
	}
}

func TestTransitionError_CarriesMove(t *testing.T) {
	_, err := Transition(claim(domain.StatusApproved), domain.StatusRejected, domain.RoleAdmin, "adm")

	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, domain.KindClaim, te.Kind)
	assert.Equal(t, "clm-1", te.ID)
	assert.Equal(t, domain.StatusApproved, te.From)
	assert.Equal(t, domain.StatusRejected, te.To)
	assert.Equal(t, domain.RoleAdmin, te.Role)
	assert.Contains(t, err.Error(), "illegal transition")
}

func TestTransition_InstructionsDoNotShareEffects(t *testing.T) {
	app := application(domain.StatusPending, "")
	first, err := Transition(app, domain.StatusApproved, domain.RoleAdmin, "adm")
	require.NoError(t, err)
	first.Effects[0] = "tampered"

	second, err := Transition(app, domain.StatusApproved, domain.RoleAdmin, "adm")
	require.NoError(t, err)
	assert.Equal(t, approvalEffects, second.Effects)
}

func TestTransition_ConcurrentCallers(t *testing.T) {
	app := application(domain.StatusAssigned, "a1")
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in, err := Transition(app, domain.StatusApproved, domain.RoleAgent, "a1")
			assert.NoError(t, err)
			assert.True(t, in.Has(EffectActivatePolicy))
		}()
	}
	wg.Wait()
}

func TestTargets(t *testing.T) {
	assert.Equal(t, []domain.Status{domain.StatusAssigned, domain.StatusApproved, domain.StatusRejected},
		Targets(domain.KindApplication, domain.StatusPending, domain.RoleAdmin))
	assert.Equal(t, []domain.Status{domain.StatusApproved, domain.StatusRejected},
		Targets(domain.KindApplication, domain.StatusPending, domain.RoleAgent))
	assert.Empty(t, Targets(domain.KindApplication, domain.StatusPending, domain.RoleCustomer))
	assert.Empty(t, Targets(domain.KindApplication, domain.StatusAssigned, domain.RoleAdmin))
	assert.Empty(t, Targets(domain.KindClaim, domain.StatusApproved, domain.RoleAdmin))
}

func TestAllowed(t *testing.T) {
	assigned := application(domain.StatusAssigned, "a1")
	assert.Equal(t, []domain.Status{domain.StatusApproved, domain.StatusRejected}, Allowed(assigned, domain.RoleAgent, "a1"))
	assert.Empty(t, Allowed(assigned, domain.RoleAgent, "a2"), "only the assignee decides")
	assert.Empty(t, Allowed(assigned, domain.RoleAgent, ""))

	pending := application(domain.StatusPending, "")
	assert.Equal(t, Targets(domain.KindApplication, domain.StatusPending, domain.RoleAdmin), Allowed(pending, domain.RoleAdmin, "adm"))

	// everything Allowed returns is a move Transition accepts
	for _, role := range allRoles {
		for _, to := range Allowed(assigned, role, "a1") {
			_, err := Transition(assigned, to, role, "a1")
			assert.NoError(t, err, "%s -> %s by %s", assigned.Status, to, role)
		}
	}
}
