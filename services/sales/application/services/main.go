package services

import (
	"time"

	"github.com/ghuser/backoffice/pkg/app"
	"github.com/ghuser/backoffice/pkg/cache"
	"github.com/ghuser/backoffice/services/sales/domain/models"
	"github.com/ghuser/backoffice/services/sales/domain/repositories"
	"github.com/ghuser/backoffice/services/sales/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Sales   *SaleService
	Reports *ReportService
	Clients *ClientService
}

// New wires all sales application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	store := postgres.NewStore(a.Db, a.EventBus)

	var reportCache ReportCache
	if a.Redis != nil {
		reportCache = cache.NewReportCache(a.Redis, a.Config.ReportCacheTTL)
	}

	// Load already rejected an unknown zone.
	loc, err := a.Config.ReportLocation()
	if err != nil {
		loc = time.UTC
	}

	return NewWithStore(store, reportCache, loc, a)
}

// NewWithStore wires the services over any unit of work. reportCache may be nil.
func NewWithStore(store repositories.UnitOfWork, reportCache ReportCache, loc *time.Location, a *app.Application) *Services {
	clients := NewClientService(store, models.Client{
		Name:     a.Config.DefaultClientName,
		LastName: a.Config.DefaultClientLastName,
		Email:    a.Config.DefaultClientEmail,
	}, a.Logger)

	return &Services{
		Sales:   NewSaleService(store, clients, a.Metrics, a.Logger),
		Reports: NewReportService(store, reportCache, loc, a.Logger),
		Clients: clients,
	}
}
