package paymentrunner

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"policydesk/internal/domain"
	"policydesk/internal/metrics"
	"policydesk/internal/ports"
)

// NoticeSender tells an applicant that a payment is due. The payment processor
// or mailer behind it is external.
type NoticeSender interface {
	SendDueNotice(ctx context.Context, p domain.Payment) error
}

// LogSender records notices in the log instead of delivering them.
type LogSender struct{ Log logrus.FieldLogger }

func (s LogSender) SendDueNotice(_ context.Context, p domain.Payment) error {
	s.Log.WithFields(logrus.Fields{
		"payment":     p.ID,
		"application": p.ApplicationRef,
		"email":       p.ApplicantEmail,
		"amount":      p.Amount,
		"due_at":      p.DueAt,
	}).Info("payment due notice")
	return nil
}

// Processor loads the payment behind a job and hands it to the sender.
type Processor struct {
	Payments ports.PaymentRepository
	Sender   NoticeSender
}

func (p Processor) Process(ctx context.Context, paymentID string) error {
	payment, err := p.Payments.GetPayment(ctx, paymentID)
	if err != nil {
		return err
	}
	if payment.Status != domain.PaymentDue {
		return nil
	}
	return p.Sender.SendDueNotice(ctx, payment)
}

// NoticeProcessor performs the work for a job's payment id.
type NoticeProcessor interface {
	Process(ctx context.Context, paymentID string) error
}

// Run starts worker goroutines that claim notice jobs and process them. The
// returned channel closes once every worker has stopped. Jobs claimed but not
// sent when ctx ends go back to the queue.
func Run(ctx context.Context, repo ports.JobRepository, processor NoticeProcessor, concurrency int, pollInterval time.Duration, log logrus.FieldLogger) <-chan struct{} {
	done := make(chan struct{})
	if concurrency < 1 {
		close(done)
		return done
	}
	log = log.WithField("component", "paymentrunner")
	jobsCh := make(chan ports.NoticeJob, concurrency)
	// bookkeeping outlives ctx so shutdown can still release jobs
	bg := context.WithoutCancel(ctx)

	requeue := func(job ports.NoticeJob) {
		if err := repo.Requeue(bg, job.ID); err != nil {
			log.WithError(err).WithField("job", job.ID).Error("requeue err")
		}
	}

	// dispatcher loop
	go func() {
		defer close(jobsCh)
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for ctx.Err() == nil {
					job, found, err := repo.ClaimNext(ctx)
					if err != nil {
						if ctx.Err() == nil {
							log.WithError(err).Error("job claim error")
						}
						break
					}
					if !found {
						break
					}
					select {
					case jobsCh <- job:
					case <-ctx.Done():
						requeue(job)
						return
					}
				}
			}
		}
	}()

	// workers
	var wg sync.WaitGroup
	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			wlog := log.WithField("worker", idx)
			for job := range jobsCh {
				if ctx.Err() != nil {
					requeue(job)
					continue
				}
				err := processor.Process(ctx, job.PaymentID)
				if err != nil && ctx.Err() != nil {
					requeue(job)
					continue
				}
				metrics.RecordNotice(err)
				if err != nil {
					if err := repo.MarkFailed(bg, job.ID, err.Error()); err != nil {
						wlog.WithError(err).WithField("job", job.ID).Error("fail err")
					}
					wlog.WithError(err).WithField("job", job.ID).Warn("job failed")
					continue
				}
				if err := repo.MarkCompleted(bg, job.ID); err != nil {
					wlog.WithError(err).WithField("job", job.ID).Error("complete err")
				}
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}

// ProcessInline sends the notice for one payment synchronously using the same
// processor as the background workers.
func ProcessInline(ctx context.Context, repo ports.JobRepository, processor NoticeProcessor, paymentID string) error {
	jobID, err := repo.StartJobForPayment(ctx, paymentID)
	if err != nil {
		return err
	}
	bg := context.WithoutCancel(ctx)
	err = processor.Process(ctx, paymentID)
	if err != nil && ctx.Err() != nil {
		_ = repo.Requeue(bg, jobID)
		return err
	}
	metrics.RecordNotice(err)
	if err != nil {
		_ = repo.MarkFailed(bg, jobID, err.Error())
		return err
	}
	return repo.MarkCompleted(bg, jobID)
}
