package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"policydesk/internal/ports"
)

// ClaimNext selects the next queued notice job using SKIP LOCKED and marks it running.
func (db *DB) ClaimNext(ctx context.Context) (job ports.NoticeJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
		SELECT id, payment_id FROM payment_jobs
		WHERE status = 'queued'
		ORDER BY queued_at
		FOR UPDATE SKIP LOCKED
		LIMIT 1
	`).Scan(&job.ID, &job.PaymentID)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if _, err = tx.Exec(ctx, `
		UPDATE payment_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
	`, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) (err error) {
	// complete job and stamp the payment atomically
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
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

	var paymentID string
	if err = tx.QueryRow(ctx, `
		UPDATE payment_jobs SET status='completed', finished_at=now() WHERE id=$1 RETURNING payment_id
	`, jobID).Scan(&paymentID); err != nil {
		return notFound(err)
	}
	_, err = tx.Exec(ctx, `UPDATE payments SET notified_at=now() WHERE id=$1`, paymentID)
	return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE payment_jobs SET status='failed', reason=$2, finished_at=now() WHERE id=$1
	`, jobID, reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Requeue puts a running job back in the queue. The attempt stays counted.
func (db *DB) Requeue(ctx context.Context, jobID string) error {
	if !validID(jobID) {
		return ports.ErrNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	tag, err := db.Pool.Exec(ctx, `
		UPDATE payment_jobs SET status='queued', started_at=NULL WHERE id=$1 AND status='running'
	`, jobID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// StartJobForPayment marks the queued job of a specific payment as running and returns its id.
func (db *DB) StartJobForPayment(ctx context.Context, paymentID string) (string, error) {
	if !validID(paymentID) {
		return "", ports.ErrNotFound
	}
	var jobID string
	err := db.Pool.QueryRow(ctx, `
		UPDATE payment_jobs SET status='running', started_at=now(), attempts=attempts+1
		WHERE id = (
			SELECT id FROM payment_jobs
			WHERE payment_id = $1 AND status = 'queued'
			FOR UPDATE SKIP LOCKED
			LIMIT 1
		)
		RETURNING id
	`, paymentID).Scan(&jobID)
	if err != nil {
		return "", notFound(err)
	}
	return jobID, nil
}
