package queries_test

import (
	"context"
	"testing"
	"time"

	"workorders/internal/adapters/out/postgres/activityrepo"
	"workorders/internal/adapters/out/postgres/orderrepo"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type QueryHandlersTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	table     order.TransitionTable
	t0        time.Time
	now       time.Time
	clock     kernel.Clock
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.StatusChangeEventDTO{},
		&orderrepo.MaterialLineDTO{},
		&activityrepo.ActivityEntryDTO{},
	)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.table = order.DefaultTransitionTable()
	suite.t0 = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	suite.now = suite.t0.Add(10 * time.Hour)
	suite.clock = kernel.ClockFunc(func() time.Time { return suite.now })
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, activity_log CASCADE").Error)
}

func (suite *QueryHandlersTestSuite) TestAllowedNextStatuses_KnownStatus() {
	o := suite.addOrder("Shelf", order.InProgress)

	query, err := queries.NewGetAllowedNextStatusesQuery(o.ID())
	suite.Require().NoError(err)

	resp, err := queries.NewGetAllowedNextStatusesQueryHandler(suite.db, suite.table).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(order.InProgress, resp.Current)
	suite.Equal([]order.Status{
		order.QualityCheck, order.CustomerAcceptancePending, order.Paused, order.Cancelled,
	}, optionStatuses(resp.Options))
	suite.Equal("Quality Check", resp.Options[0].Label)
	suite.True(resp.Options[2].RequiresReason)
}

func (suite *QueryHandlersTestSuite) TestAllowedNextStatuses_TerminalStatusIsEmpty() {
	o := suite.addOrder("Shelf", order.Completed)

	query, _ := queries.NewGetAllowedNextStatusesQuery(o.ID())
	resp, err := queries.NewGetAllowedNextStatusesQueryHandler(suite.db, suite.table).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(resp.Options)
}

func (suite *QueryHandlersTestSuite) TestAllowedNextStatuses_LegacyAndUnknownStatus() {
	legacy := suite.addOrder("Legacy shelf", order.Planned)
	unknown := suite.addOrder("Imported shelf", order.Planned)
	suite.setRawStatus(legacy.ID(), "active")
	suite.setRawStatus(unknown.ID(), "archived")

	handler := queries.NewGetAllowedNextStatusesQueryHandler(suite.db, suite.table)

	query, _ := queries.NewGetAllowedNextStatusesQuery(legacy.ID())
	resp, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(order.InProgress, resp.Current)
	suite.Equal(suite.table.AllowedTargets(order.InProgress), optionStatuses(resp.Options))

	query, _ = queries.NewGetAllowedNextStatusesQuery(unknown.ID())
	resp, err = handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(order.Status("archived"), resp.Current)
	suite.Equal(suite.table.Statuses(), optionStatuses(resp.Options))
}

func (suite *QueryHandlersTestSuite) TestAllowedNextStatuses_NotFound() {
	query, _ := queries.NewGetAllowedNextStatusesQuery(kernel.NewUUID())
	_, err := queries.NewGetAllowedNextStatusesQueryHandler(suite.db, suite.table).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestStatusCounts() {
	suite.addOrder("A", order.Planned)
	suite.addOrder("B", order.Planned)
	suite.addOrder("C", order.InProgress)
	legacy := suite.addOrder("D", order.Planned)
	suite.setRawStatus(legacy.ID(), "active")
	unknown := suite.addOrder("E", order.Planned)
	suite.setRawStatus(unknown.ID(), "archived")

	resp, err := queries.NewGetStatusCountsQueryHandler(suite.db, suite.table).
		Handle(context.Background(), queries.NewGetStatusCountsQuery())
	suite.Require().NoError(err)

	suite.Equal(5, resp.Total)
	suite.Len(resp.Counts, len(order.AllStatuses())+1)
	suite.Equal(map[order.Status]int{
		order.Planned:                   2,
		order.MaterialOrdered:           0,
		order.InProgress:                2,
		order.QualityCheck:              0,
		order.CustomerAcceptancePending: 0,
		order.Completed:                 0,
		order.Paused:                    0,
		order.Cancelled:                 0,
		order.Status("archived"):        1,
	}, resp.ByStatus())
	suite.Equal(order.Planned, resp.Counts[0].Status)
	suite.Equal(order.Status("archived"), resp.Counts[len(resp.Counts)-1].Status)
	suite.Equal("archived", resp.Counts[len(resp.Counts)-1].Label)
}

func (suite *QueryHandlersTestSuite) TestStatusCounts_EmptyDatabase() {
	resp, err := queries.NewGetStatusCountsQueryHandler(suite.db, suite.table).
		Handle(context.Background(), queries.NewGetStatusCountsQuery())
	suite.Require().NoError(err)
	suite.Zero(resp.Total)
	suite.Len(resp.Counts, len(order.AllStatuses()))
	for _, c := range resp.Counts {
		suite.Zero(c.Count)
	}
}

func (suite *QueryHandlersTestSuite) TestOrderHistory() {
	ctx := context.Background()
	o, err := order.NewOrder(kernel.NewUUID(), "Oak wardrobe", nil, suite.t0)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, o))

	_, err = o.ChangeStatus(suite.table, order.InProgress, "", suite.t0.Add(2*time.Hour))
	suite.Require().NoError(err)
	_, err = o.ChangeStatus(suite.table, order.Paused, "waiting for glass", suite.t0.Add(6*time.Hour))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	query, _ := queries.NewGetOrderHistoryQuery(o.ID())
	resp, err := queries.NewGetOrderHistoryQueryHandler(suite.db, suite.table, suite.clock).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("Oak wardrobe", resp.Title)
	suite.Equal(order.Paused, resp.Status)
	suite.Equal("waiting for glass", resp.StatusReason)

	suite.Require().Len(resp.Entries, 2)
	suite.Equal("Planned → In Progress", resp.Entries[0].Description)
	suite.Empty(resp.Entries[0].Reason)
	suite.Equal(order.Paused, resp.Entries[1].To)
	suite.Equal("waiting for glass", resp.Entries[1].Reason)
	suite.True(resp.Entries[1].OccurredAt.Equal(suite.t0.Add(6 * time.Hour)))

	suite.Equal([]queries.StatusDuration{
		{Status: order.Planned, Label: "Planned", Duration: 2 * time.Hour},
		{Status: order.InProgress, Label: "In Progress", Duration: 4 * time.Hour},
		{Status: order.Paused, Label: "Paused", Duration: 4 * time.Hour},
	}, resp.TimeInStatus)

	var total time.Duration
	for _, d := range resp.TimeInStatus {
		total += d.Duration
	}
	suite.Equal(suite.now.Sub(suite.t0), total)
}

func (suite *QueryHandlersTestSuite) TestOrderHistory_NotFound() {
	query, _ := queries.NewGetOrderHistoryQuery(kernel.NewUUID())
	_, err := queries.NewGetOrderHistoryQueryHandler(suite.db, suite.table, suite.clock).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestRecentActivity() {
	ctx := context.Background()
	at := suite.t0
	log := activityrepo.NewGormActivityLog(suite.db, kernel.ClockFunc(func() time.Time { return at }))

	for _, summary := range []string{"first", "second", "third"} {
		suite.Require().NoError(log.Record(ctx, "📋", summary))
		at = at.Add(time.Minute)
	}

	query, err := queries.NewGetRecentActivityQuery(2)
	suite.Require().NoError(err)

	entries, err := queries.NewGetRecentActivityQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(entries, 2)
	suite.Equal("third", entries[0].Summary)
	suite.Equal("second", entries[1].Summary)
	suite.Equal("📋", entries[0].Icon)
}

func (suite *QueryHandlersTestSuite) addOrder(title string, status order.Status) *order.Order {
	o, err := order.RestoreOrder(order.RestoreOrderParams{
		ID:        kernel.NewUUID(),
		Title:     title,
		Status:    status,
		CreatedAt: suite.t0,
	})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *QueryHandlersTestSuite) setRawStatus(id kernel.UUID, status string) {
	suite.Require().NoError(suite.db.Exec("UPDATE orders SET status = ? WHERE id = ?", status, id.Bytes()).Error)
}

func optionStatuses(options []queries.StatusOption) []order.Status {
	statuses := make([]order.Status, 0, len(options))
	for _, o := range options {
		statuses = append(statuses, o.Status)
	}
	return statuses
}

func TestQueryHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersTestSuite))
}
