package lifecycle

import (
	"errors"
	"fmt"
	"slices"

	"policydesk/internal/domain"
)

var (
	ErrIllegalTransition = errors.New("illegal transition")
	ErrForbiddenActor    = errors.New("actor role may not make this transition")
	ErrNotAssignedAgent  = errors.New("actor is not the assigned agent")
	ErrMissingAssignee   = errors.New("assignment requires an agent")
)

// TransitionError wraps one of the sentinel errors above with the rejected move.
type TransitionError struct {
	Err  error
	Kind domain.Kind
	ID   string
	From domain.Status
	To   domain.Status
	Role domain.Role
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s %s: %s -> %s by %s: %v", e.Kind, e.ID, e.From, e.To, e.Role, e.Err)
}

func (e *TransitionError) Unwrap() error { return e.Err }

// Entity is anything whose status follows the lifecycle table.
type Entity interface {
	LifecycleKind() domain.Kind
	LifecycleID() string
	LifecycleStatus() domain.Status
	LifecycleAssignee() string
}

// Instruction is what the caller must persist, as one unit, after a legal move.
type Instruction struct {
	Kind          domain.Kind
	EntityID      string
	From          domain.Status
	To            domain.Status
	AssignedAgent string
	ActorID       string
	Effects       []Effect
}

func (in Instruction) Has(e Effect) bool {
	return slices.Contains(in.Effects, e)
}

type options struct {
	assignee string
}

type Option func(*options)

// WithAssignee names the agent recorded by a pending -> assigned move.
func WithAssignee(agentID string) Option {
	return func(o *options) { o.assignee = agentID }
}

// Transition checks that actorRole/actorID may move e to target and returns the
// instruction to persist. It has no side effects.
func Transition(e Entity, target domain.Status, actorRole domain.Role, actorID string, opts ...Option) (Instruction, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	from := e.LifecycleStatus()
	fail := func(err error) (Instruction, error) {
		return Instruction{}, &TransitionError{Err: err, Kind: e.LifecycleKind(), ID: e.LifecycleID(), From: from, To: target, Role: actorRole}
	}

	r, ok := table[edge{e.LifecycleKind(), from, target}]
	if !ok {
		return fail(ErrIllegalTransition)
	}
	if !r.permits(actorRole) {
		return fail(ErrForbiddenActor)
	}
	if r.assigneeOnly && (actorID == "" || actorID != e.LifecycleAssignee()) {
		return fail(ErrNotAssignedAgent)
	}

	in := Instruction{
		Kind:     e.LifecycleKind(),
		EntityID: e.LifecycleID(),
		From:     from,
		To:       target,
		ActorID:  actorID,
		Effects:  slices.Clone(r.effects),
	}
	if in.Has(EffectRecordAssignee) {
		if o.assignee == "" {
			return fail(ErrMissingAssignee)
		}
		in.AssignedAgent = o.assignee
	}
	return in, nil
}
