package ports

import "context"

// NoticeJob asks for the applicant to be told that a payment is due.
type NoticeJob struct {
	ID        string
	PaymentID string
}

// JobRepository supports claiming and updating payment notice jobs.
type JobRepository interface {
	ClaimNext(ctx context.Context) (job NoticeJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	// Requeue returns a claimed job to the queue untouched, for work cut short
	// by shutdown.
	Requeue(ctx context.Context, jobID string) error
	StartJobForPayment(ctx context.Context, paymentID string) (jobID string, err error)
}
