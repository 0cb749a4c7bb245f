package memory

import (
	"context"
	"time"

	"policydesk/internal/ports"
)

// ClaimNext hands out the oldest queued notice job and marks it running.
func (s *Store) ClaimNext(_ context.Context) (ports.NoticeJob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var next *job
	for _, j := range s.jobs {
		if j.status != "queued" {
			continue
		}
		if next == nil || j.queuedAt.Before(next.queuedAt) {
			next = j
		}
	}
	if next == nil {
		return ports.NoticeJob{}, false, nil
	}
	next.status = "running"
	return ports.NoticeJob{ID: next.id, PaymentID: next.paymentID}, true, nil
}

func (s *Store) MarkCompleted(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return ports.ErrNotFound
	}
	j.status = "completed"
	if p, ok := s.payments[j.paymentID]; ok {
		now := time.Now().UTC()
		p.NotifiedAt = &now
		s.payments[p.ID] = p
	}
	return nil
}

func (s *Store) MarkFailed(_ context.Context, jobID string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok {
		return ports.ErrNotFound
	}
	j.status = "failed"
	j.reason = reason
	return nil
}

// Requeue only touches running jobs, like the Postgres store.
func (s *Store) Requeue(_ context.Context, jobID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.jobs[jobID]
	if !ok || j.status != "running" {
		return ports.ErrNotFound
	}
	j.status = "queued"
	return nil
}

// StartJobForPayment marks the queued job of one payment as running.
func (s *Store) StartJobForPayment(_ context.Context, paymentID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.jobs {
		if j.paymentID == paymentID && j.status == "queued" {
			j.status = "running"
			return j.id, nil
		}
	}
	return "", ports.ErrNotFound
}

// JobStatuses reports job status by payment id; tests use it to observe workers.
func (s *Store) JobStatuses() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.jobs))
	for _, j := range s.jobs {
		out[j.paymentID] = j.status
	}
	return out
}
