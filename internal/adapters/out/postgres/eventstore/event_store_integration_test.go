package eventstore_test

import (
	"context"
	"testing"
	"time"

	"insurance/internal/adapters/out/postgres/eventstore"
	"insurance/internal/core/domain/model/event"
	"insurance/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type EventStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *eventstore.GormEventStore
}

func (suite *EventStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&eventstore.DomainEventDTO{}))
}

func (suite *EventStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE domain_events").Error)
	suite.store = eventstore.NewGormEventStore(suite.db)
}

func (suite *EventStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EventStoreIntegrationTestSuite) TestSave_SingleEvent_RoundTrip() {
	ctx := context.Background()
	holderID := kernel.NewUUID()
	created := event.NewPolicyHolderCreated(holderID, "A123456789", "Chen Wei", 0)

	suite.Require().NoError(suite.store.Save(ctx, created))

	events, err := suite.store.FindByAggregateID(ctx, holderID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)

	decoded, ok := events[0].(event.PolicyHolderCreated)
	suite.Require().True(ok)
	suite.True(decoded.EventID().IsEqual(created.EventID()))
	suite.True(decoded.AggregateID().IsEqual(holderID))
	suite.Equal(event.AggregateTypePolicyHolder, decoded.AggregateType())
	suite.Equal(event.TypePolicyHolderCreated, decoded.EventType())
	suite.Equal("A123456789", decoded.NationalID)
	suite.Equal("Chen Wei", decoded.Name)
	suite.Equal(0, decoded.PolicyHolderCreatedPayload.Version)
	suite.WithinDuration(created.OccurredOn(), decoded.OccurredOn(), time.Millisecond)
}

func (suite *EventStoreIntegrationTestSuite) TestSaveAll_Batch_RoundTrip() {
	ctx := context.Background()
	holderID := kernel.NewUUID()
	policyID := kernel.NewUUID()

	batch := []event.DomainEvent{
		event.NewPolicyHolderCreated(holderID, "B234567890", "Lin Mei", 0),
		event.NewPolicyAdded(holderID, event.PolicyAddedPayload{
			PolicyID:   policyID.String(),
			PolicyType: "Life",
			Premium:    "1200",
			SumInsured: "1000000",
			StartDate:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
			Status:     "Active",
			Version:    1,
		}),
		event.NewContactInfoUpdated(holderID, "0987654321", "new@example.com", 2),
		event.NewAddressUpdated(holderID, event.AddressUpdatedPayload{
			ZipCode:  "80661",
			City:     "Kaohsiung",
			District: "Qianzhen",
			Street:   "5 Zhongshan Rd",
			Version:  3,
		}),
		event.NewPolicyLapsed(holderID, policyID.String(), 4),
		event.NewPolicyHolderDeactivated(holderID, "B23*******", "Lin Mei", 5),
	}

	suite.Require().NoError(suite.store.SaveAll(ctx, batch))

	events, err := suite.store.FindByAggregateID(ctx, holderID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 6)

	byType := make(map[string]event.DomainEvent, len(events))
	for _, e := range events {
		byType[e.EventType()] = e
	}

	added, ok := byType[event.TypePolicyAdded].(event.PolicyAdded)
	suite.Require().True(ok)
	suite.Equal(policyID.String(), added.PolicyID)
	suite.Equal("Life", added.PolicyType)
	suite.Equal("1200", added.Premium)

	lapsed, ok := byType[event.TypePolicyLapsed].(event.PolicyLapsed)
	suite.Require().True(ok)
	suite.Equal(policyID.String(), lapsed.PolicyID)
	suite.Equal(4, lapsed.PolicyLapsedPayload.Version)

	deactivated, ok := byType[event.TypePolicyHolderDeactivated].(event.PolicyHolderDeactivated)
	suite.Require().True(ok)
	suite.Equal("B23*******", deactivated.MaskedNationalID)
	suite.NotContains(deactivated.MaskedNationalID, "4567890")
}

func (suite *EventStoreIntegrationTestSuite) TestSaveAll_EmptyBatch_NoOp() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.SaveAll(ctx, nil))

	events, err := suite.store.FindByAggregateType(ctx, event.AggregateTypePolicyHolder)
	suite.Require().NoError(err)
	suite.Empty(events)
}

func (suite *EventStoreIntegrationTestSuite) TestFindByAggregateID_IsolatesAggregates() {
	ctx := context.Background()
	firstID := kernel.NewUUID()
	secondID := kernel.NewUUID()

	suite.Require().NoError(suite.store.Save(ctx,
		event.NewPolicyHolderCreated(firstID, "C345678901", "Chen Wei", 0)))
	suite.Require().NoError(suite.store.Save(ctx,
		event.NewPolicyHolderCreated(secondID, "D456789012", "Lin Mei", 0)))

	events, err := suite.store.FindByAggregateID(ctx, firstID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.True(events[0].AggregateID().IsEqual(firstID))
}

func (suite *EventStoreIntegrationTestSuite) TestFindByEventType() {
	ctx := context.Background()
	holderID := kernel.NewUUID()

	suite.Require().NoError(suite.store.SaveAll(ctx, []event.DomainEvent{
		event.NewPolicyHolderCreated(holderID, "E567890123", "Chen Wei", 0),
		event.NewContactInfoUpdated(holderID, "0911222333", "a@example.com", 1),
		event.NewContactInfoUpdated(holderID, "0922333444", "b@example.com", 2),
	}))

	events, err := suite.store.FindByEventType(ctx, event.TypeContactInfoUpdated)
	suite.Require().NoError(err)
	suite.Require().Len(events, 2)
	for _, e := range events {
		suite.Equal(event.TypeContactInfoUpdated, e.EventType())
	}
}

func (suite *EventStoreIntegrationTestSuite) TestFindByAggregateID_OrdersByOccurrence() {
	ctx := context.Background()
	holderID := kernel.NewUUID()

	first := event.NewPolicyHolderCreated(holderID, "F678901234", "Chen Wei", 0)
	time.Sleep(5 * time.Millisecond)
	second := event.NewContactInfoUpdated(holderID, "0911222333", "a@example.com", 1)
	time.Sleep(5 * time.Millisecond)
	third := event.NewPolicyHolderDeactivated(holderID, "F67*******", "Chen Wei", 2)

	// Stored out of order on purpose.
	suite.Require().NoError(suite.store.Save(ctx, third))
	suite.Require().NoError(suite.store.Save(ctx, first))
	suite.Require().NoError(suite.store.Save(ctx, second))

	events, err := suite.store.FindByAggregateID(ctx, holderID)
	suite.Require().NoError(err)
	suite.Require().Len(events, 3)
	suite.Equal(event.TypePolicyHolderCreated, events[0].EventType())
	suite.Equal(event.TypeContactInfoUpdated, events[1].EventType())
	suite.Equal(event.TypePolicyHolderDeactivated, events[2].EventType())
}

func TestEventStoreIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EventStoreIntegrationTestSuite))
}
