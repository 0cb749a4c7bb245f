package paymentrunner

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"policydesk/internal/adapters/memory"
	"policydesk/internal/domain"
	"policydesk/internal/domain/lifecycle"
	"policydesk/internal/ports"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (r *recordingSender) SendDueNotice(_ context.Context, p domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("mailer down")
	}
	r.sent = append(r.sent, p.ID)
	return nil
}

func (r *recordingSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func approvedStore(t *testing.T, n int) (*memory.Store, []string) {
	t.Helper()
	ctx := context.Background()
	s := memory.New(domain.Policy{ID: "pol-1", Name: "Term Life"})
	for i := 0; i < n; i++ {
		app, err := s.CreateApplication(ctx, domain.Application{ApplicantEmail: "jane@example.com", PolicyRef: "pol-1", Status: domain.StatusPending, MonthlyPremium: 100})
		require.NoError(t, err)
		in, err := lifecycle.Transition(app, domain.StatusApproved, domain.RoleAdmin, "adm")
		require.NoError(t, err)
		require.NoError(t, s.Apply(ctx, ports.InstructionRecord{Instruction: in, PaymentAmount: 100, At: time.Now()}))
	}
	payments, err := s.ListPayments(ctx, ports.PaymentFilter{})
	require.NoError(t, err)
	ids := make([]string, 0, len(payments))
	for _, p := range payments {
		ids = append(ids, p.ID)
	}
	return s, ids
}

func TestRun_ProcessesQueuedNotices(t *testing.T) {
	s, ids := approvedStore(t, 5)
	sender := &recordingSender{}
	log, _ := test.NewNullLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	Run(ctx, s, Processor{Payments: s, Sender: sender}, 2, 10*time.Millisecond, log)

	require.Eventually(t, func() bool { return sender.count() == len(ids) }, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		for _, id := range ids {
			if s.JobStatuses()[id] != "completed" {
				return false
			}
		}
		return true
	}, 2*time.Second, 10*time.Millisecond)
}

// blockingSender holds every notice until the caller gives up.
type blockingSender struct {
	started chan string
}

func (b *blockingSender) SendDueNotice(ctx context.Context, p domain.Payment) error {
	b.started <- p.ID
	<-ctx.Done()
	return ctx.Err()
}

func TestRun_ShutdownRequeuesUnsentNotices(t *testing.T) {
	s, ids := approvedStore(t, 4)
	sender := &blockingSender{started: make(chan string, len(ids))}
	log, _ := test.NewNullLogger()

	ctx, cancel := context.WithCancel(context.Background())
	done := Run(ctx, s, Processor{Payments: s, Sender: sender}, 1, 5*time.Millisecond, log)

	select {
	case <-sender.started:
	case <-time.After(2 * time.Second):
		t.Fatal("no notice was picked up")
	}
	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("workers did not stop")
	}

	statuses := s.JobStatuses()
	for _, id := range ids {
		assert.Equal(t, "queued", statuses[id], "payment %s", id)
	}

	// a restarted runner picks the requeued jobs up again
	sent := &recordingSender{}
	ctx2, cancel2 := context.WithCancel(context.Background())
	defer cancel2()
	Run(ctx2, s, Processor{Payments: s, Sender: sent}, 2, 5*time.Millisecond, log)
	require.Eventually(t, func() bool { return sent.count() == len(ids) }, 2*time.Second, 10*time.Millisecond)
}

func TestRun_ZeroConcurrency(t *testing.T) {
	s, _ := approvedStore(t, 1)
	log, _ := test.NewNullLogger()
	done := Run(context.Background(), s, Processor{Payments: s, Sender: &recordingSender{}}, 0, time.Millisecond, log)
	select {
	case <-done:
	default:
		t.Fatal("runner with no workers should report done at once")
	}
}

func TestProcessInline_CancelledRequeues(t *testing.T) {
	s, ids := approvedStore(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ProcessInline(ctx, s, Processor{Payments: s, Sender: &blockingSender{started: make(chan string, 1)}}, ids[0])
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "queued", s.JobStatuses()[ids[0]])
}

func TestProcessInline_MarksFailure(t *testing.T) {
	s, ids := approvedStore(t, 1)
	sender := &recordingSender{fail: true}

	err := ProcessInline(context.Background(), s, Processor{Payments: s, Sender: sender}, ids[0])
	require.Error(t, err)
	assert.Equal(t, "failed", s.JobStatuses()[ids[0]])
}

func TestProcessInline_NoQueuedJob(t *testing.T) {
	s, _ := approvedStore(t, 0)
	err := ProcessInline(context.Background(), s, Processor{Payments: s, Sender: &recordingSender{}}, "missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestLogSender(t *testing.T) {
	log, hook := test.NewNullLogger()
	err := LogSender{Log: log}.SendDueNotice(context.Background(), domain.Payment{ID: "pay-1", Amount: 700})
	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "pay-1", hook.LastEntry().Data["payment"])
}
