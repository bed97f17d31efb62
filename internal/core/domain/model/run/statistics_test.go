package run_test

import (
	"errors"
	"fmt"
	"testing"

	"shipconfirm/internal/core/domain/model/run"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatistics_RecordsEachOrderOnce(t *testing.T) {
	// Arrange
	stats := run.NewStatistics()

	// Act
	stats.RecordSuccess()
	stats.RecordFailure("11", run.Fetched, errors.New("missing reference"))
	stats.RecordSuccess()

	// Assert
	assert.Equal(t, 3, stats.Processed())
	assert.Equal(t, 2, stats.Succeeded())
	assert.Equal(t, 1, stats.Failed())
	assert.True(t, stats.HasFailures())
	require.Len(t, stats.Errors(), 1)
	assert.Equal(t, run.ErrorEntry{OrderID: "11", Stage: run.Fetched, Message: "missing reference"}, stats.Errors()[0])
	assert.InDelta(t, 66.666, stats.SuccessRate(), 0.01)
}

func TestStatistics_StateDriftKeepsCounts(t *testing.T) {
	stats := run.NewStatistics()

	stats.RecordSuccess()
	stats.RecordStateDrift("10")

	assert.Equal(t, 1, stats.Succeeded())
	assert.Equal(t, 0, stats.Failed())
	assert.Empty(t, stats.Errors())
	assert.Equal(t, []string{"10"}, stats.StateDrift())
}

func TestStatistics_ReportedErrorsAreBounded(t *testing.T) {
	stats := run.NewStatistics()
	for i := range 8 {
		stats.RecordFailure(fmt.Sprint(i), run.EmailSent, errors.New("smtp down"))
	}

	reported := stats.ReportedErrors()

	require.Len(t, reported, run.MaxReportedErrors)
	assert.Equal(t, "0", reported[0].OrderID)
	assert.Equal(t, "4", reported[4].OrderID)
	assert.Len(t, stats.Errors(), 8)
}

func TestStatistics_Empty(t *testing.T) {
	stats := run.NewStatistics()

	assert.Zero(t, stats.SuccessRate())
	assert.Empty(t, stats.ReportedErrors())
	assert.False(t, stats.HasFailures())
}

func TestStatistics_NilErrorMessage(t *testing.T) {
	stats := run.NewStatistics()

	stats.RecordFailure("3", run.Failed, nil)

	assert.Equal(t, "unknown error", stats.Errors()[0].Message)
}

func TestStage(t *testing.T) {
	stage := run.Fetched
	var path []string
	for !stage.IsTerminal() {
		path = append(path, stage.String())
		stage = stage.Next()
	}

	assert.Equal(t, []string{
		"fetched", "references_resolved", "email_rendered", "email_sent", "state_advance_attempted",
	}, path)
	assert.Equal(t, run.Succeeded, stage)
	assert.Equal(t, run.Failed, run.Failed.Next())
	assert.Equal(t, "unknown", run.Stage(0).String())
}

func TestOutcomeOf(t *testing.T) {
	stats := run.NewStatistics()
	assert.Equal(t, run.NoOrders, run.OutcomeOf(stats))

	stats.RecordSuccess()
	stats.RecordStateDrift("1")
	assert.Equal(t, run.Completed, run.OutcomeOf(stats))

	stats.RecordFailure("2", run.EmailSent, errors.New("smtp down"))
	assert.Equal(t, run.CompletedWithErrors, run.OutcomeOf(stats))
}
