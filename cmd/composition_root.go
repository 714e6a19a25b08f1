package cmd

import (
	"log/slog"
	"os"

	httpin "insurance/internal/adapters/in/http"
	"insurance/internal/adapters/out/postgres/eventstore"
	"insurance/internal/adapters/out/postgres/holderquery"
	"insurance/internal/adapters/out/postgres/holderrepo"
	"insurance/internal/adapters/out/pubsub"
	"insurance/internal/core/application/usecases/commands"
	"insurance/internal/core/application/usecases/queries"
	"insurance/internal/core/domain/services"
	"insurance/internal/core/ports"
	"insurance/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. The event publisher
// is shared so every command path stores and publishes through the same
// subscriber set.
type CompositionRoot struct {
	gormDB    *gorm.DB
	logger    *slog.Logger
	holders   ports.PolicyHolderRepository
	queryRepo ports.PolicyHolderQueryRepository
	publisher ports.EventPublisher
	service   services.PolicyHolderService
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	store := eventstore.NewGormEventStore(gormDB)

	return CompositionRoot{
		gormDB:    gormDB,
		logger:    logger,
		holders:   holderrepo.NewGormPolicyHolderRepository(gormDB),
		queryRepo: holderquery.NewGormPolicyHolderQueryRepository(gormDB),
		publisher: pubsub.NewInProcessEventPublisher(store, logger),
		service:   services.NewPolicyHolderService(),
	}
}

// Logger returns the application-wide structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

// EventPublisher exposes the shared publisher so main can register subscribers.
func (c *CompositionRoot) EventPublisher() ports.EventPublisher {
	return c.publisher
}

func (c *CompositionRoot) CreateCreatePolicyHolderCommandHandler() commands.CreatePolicyHolderCommandHandler {
	return commands.NewCreatePolicyHolderCommandHandler(c.holders, c.publisher, c.service)
}

func (c *CompositionRoot) CreateAddPolicyCommandHandler() commands.AddPolicyCommandHandler {
	return commands.NewAddPolicyCommandHandler(c.holders, c.publisher, c.service)
}

func (c *CompositionRoot) CreateUpdateContactInfoCommandHandler() commands.UpdateContactInfoCommandHandler {
	return commands.NewUpdateContactInfoCommandHandler(c.holders, c.publisher, c.service)
}

func (c *CompositionRoot) CreateUpdateAddressCommandHandler() commands.UpdateAddressCommandHandler {
	return commands.NewUpdateAddressCommandHandler(c.holders, c.publisher, c.service)
}

func (c *CompositionRoot) CreateDeactivatePolicyHolderCommandHandler() commands.DeactivatePolicyHolderCommandHandler {
	return commands.NewDeactivatePolicyHolderCommandHandler(c.holders, c.publisher, c.service)
}

func (c *CompositionRoot) CreateLapseExpiredPoliciesCommandHandler() commands.LapseExpiredPoliciesCommandHandler {
	return commands.NewLapseExpiredPoliciesCommandHandler(c.holders, c.publisher)
}

func (c *CompositionRoot) CreateGetPolicyHolderQueryHandler() queries.GetPolicyHolderQueryHandler {
	return queries.NewGetPolicyHolderQueryHandler(c.queryRepo)
}

func (c *CompositionRoot) CreateGetPolicyHolderByNationalIDQueryHandler() queries.GetPolicyHolderByNationalIDQueryHandler {
	return queries.NewGetPolicyHolderByNationalIDQueryHandler(c.queryRepo)
}

func (c *CompositionRoot) CreateSearchPolicyHoldersByNameQueryHandler() queries.SearchPolicyHoldersByNameQueryHandler {
	return queries.NewSearchPolicyHoldersByNameQueryHandler(c.queryRepo)
}

func (c *CompositionRoot) CreateListPolicyHoldersByStatusQueryHandler() queries.ListPolicyHoldersByStatusQueryHandler {
	return queries.NewListPolicyHoldersByStatusQueryHandler(c.queryRepo)
}

// CreateHTTPServer assembles the REST adapter with all handlers wired.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreatePolicyHolderCommandHandler(),
		c.CreateAddPolicyCommandHandler(),
		c.CreateUpdateContactInfoCommandHandler(),
		c.CreateUpdateAddressCommandHandler(),
		c.CreateDeactivatePolicyHolderCommandHandler(),
		c.CreateGetPolicyHolderQueryHandler(),
		c.CreateGetPolicyHolderByNationalIDQueryHandler(),
		c.CreateSearchPolicyHoldersByNameQueryHandler(),
		c.CreateListPolicyHoldersByStatusQueryHandler(),
	)
}

// CreateJobManager assembles the background job scheduler.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateLapseExpiredPoliciesCommandHandler(), c.logger)
}
