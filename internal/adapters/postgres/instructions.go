package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"

	"policydesk/internal/domain"
	"policydesk/internal/domain/lifecycle"
	"policydesk/internal/ports"
)

// instructionLog is the jsonb shape stored in instruction_log.
type instructionLog struct {
	Kind          domain.Kind        `json:"kind"`
	EntityID      string             `json:"entity_id"`
	From          domain.Status      `json:"from"`
	To            domain.Status      `json:"to"`
	ActorID       string             `json:"actor_id,omitempty"`
	AssignedAgent string             `json:"assigned_agent,omitempty"`
	Effects       []lifecycle.Effect `json:"effects"`
	PaymentAmount int64              `json:"payment_amount,omitempty"`
}

// Applied reports whether an instruction with key has already landed.
func (db *DB) Applied(ctx context.Context, key string) (bool, error) {
	if !validID(key) {
		return false, nil
	}
	var ok bool
	err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM instruction_log WHERE key = $1)`, key).Scan(&ok)
	return ok, err
}

// Apply persists a lifecycle instruction in one transaction. The status update
// is guarded by the expected current status, and the instruction key makes a
// replay a no-op.
func (db *DB) Apply(ctx context.Context, rec ports.InstructionRecord) (err error) {
	in := rec.Instruction
	if !validID(in.EntityID) {
		return ports.ErrNotFound
	}
	payload, err := json.Marshal(instructionLog{
		Kind:          in.Kind,
		EntityID:      in.EntityID,
		From:          in.From,
		To:            in.To,
		ActorID:       in.ActorID,
		AssignedAgent: in.AssignedAgent,
		Effects:       in.Effects,
		PaymentAmount: rec.PaymentAmount,
	})
	if err != nil {
		return err
	}

	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if rec.Key != "" {
		tag, err := tx.Exec(ctx, `
			INSERT INTO instruction_log (key, kind, entity_id, instruction, applied_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (key) DO NOTHING
		`, rec.Key, in.Kind, in.EntityID, payload, rec.At)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
	}

	switch in.Kind {
	case domain.KindApplication:
		return applyApplication(ctx, tx, rec)
	case domain.KindClaim:
		return applyClaim(ctx, tx, rec)
	default:
		return fmt.Errorf("unknown entity kind %q", in.Kind)
	}
}

func applyApplication(ctx context.Context, tx pgx.Tx, rec ports.InstructionRecord) error {
	in := rec.Instruction
	var agent, actor *string
	if in.Has(lifecycle.EffectRecordAssignee) {
		agent = &in.AssignedAgent
	}
	if in.ActorID != "" {
		actor = &in.ActorID
	}

	var policyID, email string
	err := tx.QueryRow(ctx, `
		UPDATE applications
		SET status = $3,
		    assigned_agent = COALESCE($4, assigned_agent),
		    decided_at = CASE WHEN $3 IN ('approved', 'rejected') THEN $5 ELSE decided_at END,
		    decided_by = CASE WHEN $3 IN ('approved', 'rejected') THEN $6 ELSE decided_by END
		WHERE id = $1 AND status = $2
		RETURNING policy_id, applicant_email
	`, in.EntityID, in.From, in.To, agent, rec.At, actor).Scan(&policyID, &email)
	if errors.Is(err, pgx.ErrNoRows) {
		return staleOrMissing(ctx, tx, "applications", in)
	}
	if err != nil {
		return err
	}

	if in.Has(lifecycle.EffectActivatePolicy) {
		if _, err := tx.Exec(ctx, `
			INSERT INTO policy_holdings (application_id, policy_id, applicant_email, activated_at)
			VALUES ($1, $2, $3, $4)
		`, in.EntityID, policyID, email, rec.At); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `UPDATE policies SET purchase_count = purchase_count + 1 WHERE id = $1`, policyID); err != nil {
			return err
		}
	}
	if in.Has(lifecycle.EffectSchedulePaymentDue) {
		var paymentID string
		if err := tx.QueryRow(ctx, `
			INSERT INTO payments (application_id, applicant_email, amount, status, due_at)
			VALUES ($1, $2, $3, 'due', $4)
			RETURNING id
		`, in.EntityID, email, rec.PaymentAmount, rec.At).Scan(&paymentID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `INSERT INTO payment_jobs (payment_id) VALUES ($1)`, paymentID); err != nil {
			return err
		}
	}
	return nil
}

func applyClaim(ctx context.Context, tx pgx.Tx, rec ports.InstructionRecord) error {
	in := rec.Instruction
	tag, err := tx.Exec(ctx, `
		UPDATE claims
		SET status = $3,
		    decided_at = CASE WHEN $3 IN ('approved', 'rejected') THEN $4 ELSE decided_at END
		WHERE id = $1 AND status = $2
	`, in.EntityID, in.From, in.To, rec.At)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return staleOrMissing(ctx, tx, "claims", in)
	}
	return nil
}

// staleOrMissing tells a vanished row apart from one whose status moved on.
func staleOrMissing(ctx context.Context, tx pgx.Tx, table string, in lifecycle.Instruction) error {
	var status string
	err := tx.QueryRow(ctx, `SELECT status FROM `+table+` WHERE id = $1`, in.EntityID).Scan(&status)
	if errors.Is(err, pgx.ErrNoRows) {
		return ports.ErrNotFound
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("%s %s is %s, expected %s: %w", in.Kind, in.EntityID, status, in.From, ports.ErrConflict)
}
