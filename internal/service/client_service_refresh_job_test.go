// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/session"
	"github.com/MKhiriev/client-keeper/internal/validators"
	"github.com/MKhiriev/client-keeper/internal/workers"
	"github.com/MKhiriev/client-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyRecordService считает вызовы List и позволяет вернуть ошибку.
type spyRecordService struct {
	ClientRecordService
	calls atomic.Int64
	err   error
}

func (s *spyRecordService) List(_ context.Context) ([]models.Client, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return []models.Client{{ID: "c1"}}, nil
}

func authedSession(t *testing.T) *session.Session {
	t.Helper()
	s := session.New(nil)
	require.NoError(t, s.Begin(context.Background(), models.User{ID: "u1", Token: "tok"}))
	return s
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientRefreshJob_IsWorker(t *testing.T) {
	var _ workers.Worker = NewClientRefreshJob(&spyRecordService{}, session.New(nil), 0, logger.Nop())
}

func TestClientRefreshJob_Start_ReloadsList(t *testing.T) {
	spy := &spyRecordService{}
	job := NewClientRefreshJob(spy, authedSession(t), 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	// читаем, пока джоб работает: Stop выбрасывает непрочитанное
	for i := 0; i < 3; i++ {
		select {
		case res := <-job.Updates():
			require.NoError(t, res.Err)
			assert.Len(t, res.Clients, 1)
		case <-time.After(time.Second):
			t.Fatal("результат обновления не опубликован")
		}
	}
	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestClientRefreshJob_SkipsWithoutSession(t *testing.T) {
	spy := &spyRecordService{}
	job := NewClientRefreshJob(spy, session.New(nil), 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), spy.calls.Load())
}

func TestClientRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRecordService{}
	job := NewClientRefreshJob(spy, authedSession(t), 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestClientRefreshJob_Restart_DropsPreviousSessionResult(t *testing.T) {
	spy := &spyRecordService{}
	s := authedSession(t)
	job := NewClientRefreshJob(spy, s, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	// ждём, пока результат ляжет в канал и останется непрочитанным
	require.Eventually(t, func() bool { return len(job.updates) == 1 }, time.Second, 5*time.Millisecond)
	job.Stop()

	// новый пользователь: результат прошлой сессии не должен дойти до него
	require.NoError(t, s.Clear(context.Background()))
	job.Start(context.Background())
	defer job.Stop()

	select {
	case r := <-job.Updates():
		t.Fatalf("result of the previous session delivered after restart: %d clients", len(r.Clients))
	default:
	}
}

func TestClientRefreshJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewClientRefreshJob(&spyRecordService{}, session.New(nil), 0, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientRefreshJob_DefaultInterval(t *testing.T) {
	job := NewClientRefreshJob(&spyRecordService{}, session.New(nil), -time.Second, logger.Nop())
	assert.Equal(t, DefaultRefreshInterval, job.interval)
}

func TestClientRefreshJob_ErrorIsPublished(t *testing.T) {
	spy := &spyRecordService{err: ErrUnauthorized}
	job := NewClientRefreshJob(spy, authedSession(t), 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	// ошибка не останавливает джоб, а уходит в UI
	for i := 0; i < 2; i++ {
		select {
		case res := <-job.Updates():
			assert.ErrorIs(t, res.Err, ErrUnauthorized)
		case <-time.After(time.Second):
			t.Fatal("ошибка обновления не опубликована")
		}
	}
	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestClientRefreshJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewClientRefreshJob(&spyRecordService{}, authedSession(t), 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestNewClientServices_Wiring(t *testing.T) {
	s := session.New(nil)
	svcs := NewClientServices(nil, s, validators.NewValidator(), time.Second, logger.Nop())

	require.NotNil(t, svcs.AuthService)
	require.NotNil(t, svcs.RecordService)
	require.NotNil(t, svcs.DashboardService)
	require.NotNil(t, svcs.RefreshJob)
	assert.Same(t, s, svcs.AuthService.Session())
}
