package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mshevelin/afisha/internal/domain"
	"github.com/mshevelin/afisha/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_RejectsStale(t *testing.T) {
	rejecter := mocks.NewMockStaleRequestRejecter(t)
	log := newTestLogger(t)

	s := New(rejecter, 50*time.Millisecond, log)

	rejected := []*domain.Request{
		{ID: 1, EventID: 7, RequesterID: 2},
	}
	rejecter.EXPECT().RejectStale(mock.Anything).Return(rejected, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(rejecter.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	rejecter := mocks.NewMockStaleRequestRejecter(t)
	log := newTestLogger(t)

	s := New(rejecter, 50*time.Millisecond, log)

	rejecter.EXPECT().RejectStale(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(rejecter.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	rejecter := mocks.NewMockStaleRequestRejecter(t)
	log := newTestLogger(t)

	s := New(rejecter, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
