package service

import (
	"time"

	"github.com/MKhiriev/client-keeper/internal/adapter"
	"github.com/MKhiriev/client-keeper/internal/logger"
	"github.com/MKhiriev/client-keeper/internal/session"
	"github.com/MKhiriev/client-keeper/internal/validators"
)

type ClientServices struct {
	AuthService      ClientAuthService
	RecordService    ClientRecordService
	DashboardService ClientDashboardService
	RefreshJob       *ClientRefreshJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, s *session.Session, validator validators.Validator, refreshInterval time.Duration, logger *logger.Logger) *ClientServices {
	records := NewClientRecordService(serverAdapter, s, validator)

	return &ClientServices{
		AuthService:      NewClientAuthService(serverAdapter, s, validator, logger),
		RecordService:    records,
		DashboardService: NewClientDashboardService(),
		RefreshJob:       NewClientRefreshJob(records, s, refreshInterval, logger),
	}
}
