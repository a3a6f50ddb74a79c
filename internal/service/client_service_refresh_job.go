package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/session"
	"github.com/MKhiriev/client-keeper/models"
)

// DefaultRefreshInterval is used when the configured interval is not positive.
const DefaultRefreshInterval = time.Minute

// ClientsRefresh is one result of the background reload.
type ClientsRefresh struct {
	Clients []models.Client
	Err     error
	At      time.Time
}

// ClientRefreshJob periodically reloads the client list of the session user
// and publishes the result on Updates. It implements workers.Worker.
//
// Only the latest result is kept: a result the UI has not read yet is
// replaced by the next one.
type ClientRefreshJob struct {
	records  ClientRecordService
	session  *session.Session
	interval time.Duration
	updates  chan ClientsRefresh

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientRefreshJob creates a job that calls records.List on a ticker. The
// job is idle until Start is called.
func NewClientRefreshJob(records ClientRecordService, s *session.Session, interval time.Duration, logger *logger.Logger) *ClientRefreshJob {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &ClientRefreshJob{
		records:  records,
		session:  s,
		interval: interval,
		updates:  make(chan ClientsRefresh, 1),
		logger:   logger,
	}
}

// Updates returns the channel the refreshed lists are published on.
func (j *ClientRefreshJob) Updates() <-chan ClientsRefresh {
	return j.updates
}

// Start stops any previously running loop, then launches a goroutine that
// reloads the list every interval. Ticks without a session are skipped.
func (j *ClientRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if !j.session.Authenticated() {
					continue
				}
				j.refresh(jobCtx)
			}
		}
	}()
}

// Stop cancels the loop, blocks until it has exited and discards a result
// nobody has read, so the next session never sees the previous user's list.
// It is a no-op when the job is not running.
func (j *ClientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
	j.drain()
}

func (j *ClientRefreshJob) drain() {
	select {
	case <-j.updates:
	default:
	}
}

func (j *ClientRefreshJob) refresh(ctx context.Context) {
	clients, err := j.records.List(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		j.logger.Warn().Err(err).Msg("background client refresh failed")
	}

	result := ClientsRefresh{Clients: clients, Err: err, At: time.Now()}

	// вытесняем непрочитанный результат
	j.drain()
	select {
	case j.updates <- result:
	default:
	}
}
