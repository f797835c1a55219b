package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStatusCountsHandler struct {
	mock.Mock
}

func (m *MockStatusCountsHandler) Handle(
	ctx context.Context,
	query queries.GetStatusCountsQuery,
) (queries.GetStatusCountsQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetStatusCountsQueryResponse), args.Error(1)
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestNewStatusCountsReportJob(t *testing.T) {
	logger, _ := newBufferLogger()

	t.Run("empty schedule falls back to default", func(t *testing.T) {
		job, err := NewStatusCountsReportJob(&MockStatusCountsHandler{}, "", logger)

		require.NoError(t, err)
		assert.Equal(t, DefaultStatusReportSchedule, job.schedule)
	})

	t.Run("descriptor schedule", func(t *testing.T) {
		job, err := NewStatusCountsReportJob(&MockStatusCountsHandler{}, "@hourly", logger)

		require.NoError(t, err)
		assert.Equal(t, "@hourly", job.schedule)
	})

	t.Run("malformed schedule", func(t *testing.T) {
		job, err := NewStatusCountsReportJob(&MockStatusCountsHandler{}, "every minute", logger)

		require.Error(t, err)
		assert.Nil(t, job)
	})
}

func TestStatusCountsReportJobRunLogsCounts(t *testing.T) {
	logger, buf := newBufferLogger()
	handler := &MockStatusCountsHandler{}
	handler.
		On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetStatusCountsQueryResponse{
			Counts: []queries.StatusCount{
				{Status: order.Planned, Count: 4},
				{Status: order.InProgress, Count: 1},
			},
			Total: 5,
		}, nil).
		Once()

	job, err := NewStatusCountsReportJob(handler, "", logger)
	require.NoError(t, err)

	job.Run(t.Context())

	out := buf.String()
	assert.Contains(t, out, "Order status counts")
	assert.Contains(t, out, "total=5")
	assert.Contains(t, out, "planned=4")
	assert.Contains(t, out, "in-progress=1")
	assert.Contains(t, out, "component=status_counts_report_job")
	handler.AssertExpectations(t)
}

func TestStatusCountsReportJobRunLogsFailure(t *testing.T) {
	logger, buf := newBufferLogger()
	handler := &MockStatusCountsHandler{}
	handler.
		On("Handle", mock.Anything, mock.Anything).
		Return(queries.GetStatusCountsQueryResponse{}, errors.New("db down")).
		Once()

	job, err := NewStatusCountsReportJob(handler, "", logger)
	require.NoError(t, err)

	job.Run(t.Context())

	assert.Contains(t, buf.String(), "Status counts report failed")
	assert.Contains(t, buf.String(), "db down")
	assert.NotContains(t, buf.String(), "Order status counts")
	handler.AssertExpectations(t)
}

func TestJobManagerLifecycle(t *testing.T) {
	logger, buf := newBufferLogger()

	manager, err := NewJobManager(&MockStatusCountsHandler{}, "@daily", logger)
	require.NoError(t, err)

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "Status counts report job started")
	assert.Contains(t, buf.String(), "Status counts report job stopped")
}

func TestNewJobManagerRejectsBadSchedule(t *testing.T) {
	logger, _ := newBufferLogger()

	manager, err := NewJobManager(&MockStatusCountsHandler{}, "61 * * * * *", logger)

	require.Error(t, err)
	assert.Nil(t, manager)
}
