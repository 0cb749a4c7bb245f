// Package lifecycle decides which status changes an actor may make to an
// application or claim, and what the caller must persist afterwards.
//
// Every legal move is a row in one table. Dashboards, services and jobs all
// consult Transition; nothing else may decide status legality.
package lifecycle

import (
	"slices"

	"policydesk/internal/domain"
)

// Effect is a side effect the caller must persist together with the status.
type Effect string

const (
	EffectRecordAssignee     Effect = "record_assignee"
	EffectActivatePolicy     Effect = "activate_policy"
	EffectSchedulePaymentDue Effect = "schedule_payment_due"
)

type edge struct {
	kind     domain.Kind
	from, to domain.Status
}

type rule struct {
	roles []domain.Role
	// assigneeOnly restricts the edge to the agent recorded on the entity.
	assigneeOnly bool
	effects      []Effect
}

var approvalEffects = []Effect{EffectActivatePolicy, EffectSchedulePaymentDue}

var table = map[edge]rule{
	{domain.KindApplication, domain.StatusPending, domain.StatusAssigned}: {
		roles:   []domain.Role{domain.RoleAdmin},
		effects: []Effect{EffectRecordAssignee},
	},
	{domain.KindApplication, domain.StatusPending, domain.StatusApproved}: {
		roles:   []domain.Role{domain.RoleAdmin, domain.RoleAgent},
		effects: approvalEffects,
	},
	{domain.KindApplication, domain.StatusAssigned, domain.StatusApproved}: {
		roles:        []domain.Role{domain.RoleAgent},
		assigneeOnly: true,
		effects:      approvalEffects,
	},
	{domain.KindApplication, domain.StatusPending, domain.StatusRejected}: {
		roles: []domain.Role{domain.RoleAdmin, domain.RoleAgent},
	},
	{domain.KindApplication, domain.StatusAssigned, domain.StatusRejected}: {
		roles:        []domain.Role{domain.RoleAgent},
		assigneeOnly: true,
	},
	{domain.KindClaim, domain.StatusPending, domain.StatusApproved}: {
		roles: []domain.Role{domain.RoleAgent, domain.RoleAdmin},
	},
	{domain.KindClaim, domain.StatusPending, domain.StatusRejected}: {
		roles: []domain.Role{domain.RoleAgent, domain.RoleAdmin},
	},
}

func (r rule) permits(role domain.Role) bool {
	return slices.Contains(r.roles, role)
}

// Targets lists the statuses role may move an entity of kind out of from,
// ignoring the assigned-agent restriction.
func Targets(kind domain.Kind, from domain.Status, role domain.Role) []domain.Status {
	var out []domain.Status
	for _, to := range []domain.Status{domain.StatusAssigned, domain.StatusApproved, domain.StatusRejected} {
		if r, ok := table[edge{kind, from, to}]; ok && r.permits(role) {
			out = append(out, to)
		}
	}
	return out
}

// Allowed narrows Targets to the moves actorID can make on e right now,
// applying the assigned-agent restriction.
func Allowed(e Entity, role domain.Role, actorID string) []domain.Status {
	var out []domain.Status
	for _, to := range Targets(e.LifecycleKind(), e.LifecycleStatus(), role) {
		r := table[edge{e.LifecycleKind(), e.LifecycleStatus(), to}]
		if r.assigneeOnly && (actorID == "" || actorID != e.LifecycleAssignee()) {
			continue
		}
		out = append(out, to)
	}
	return out
}
