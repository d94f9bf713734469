package worker

import (
	"context"
	"errors"
	mocks "shells-ledger/mocks/service"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

func TestExpiryWorker_RunsOnTick(t *testing.T) {
	svc := mocks.NewEventService(t)
	ticked := make(chan struct{}, 1)

	svc.On("ExpireOverdue", mock.Anything, mock.AnythingOfType("time.Time")).
		Run(func(mock.Arguments) {
			select {
			case ticked <- struct{}{}:
			default:
			}
		}).
		Return(int64(1), nil)

	w := NewExpiryWorker(svc, 10*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())
	defer w.Stop()

	select {
	case <-ticked:
	case <-time.After(2 * time.Second):
		t.Fatal("expiry task did not run")
	}
}

func TestExpiryWorker_KeepsRunningAfterError(t *testing.T) {
	svc := mocks.NewEventService(t)
	calls := make(chan struct{}, 2)

	svc.On("ExpireOverdue", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			select {
			case calls <- struct{}{}:
			default:
			}
		}).
		Return(int64(0), errors.New("db down"))

	w := NewExpiryWorker(svc, 10*time.Millisecond, zerolog.Nop())
	w.Start(context.Background())
	defer w.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("expected tick %d", i+1)
		}
	}
}

func TestExpiryWorker_StopsOnContextDone(t *testing.T) {
	svc := mocks.NewEventService(t)
	ctx, cancel := context.WithCancel(context.Background())

	w := NewExpiryWorker(svc, time.Hour, zerolog.Nop())
	w.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
