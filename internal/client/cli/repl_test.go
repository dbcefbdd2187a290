package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ecgdesk/internal/client/models"
	"github.com/dmitrijs2005/ecgdesk/internal/client/session"
	"github.com/dmitrijs2005/ecgdesk/internal/common"
)

type fakeProcessing struct {
	startID      int64
	startJob     *models.ProcessingJob
	startErr     error
	jobID        string
	job          *models.ProcessingJob
	jobErr       error
	resultsID    int64
	results      []models.ProcessingResult
	resultsErr   error
	statusID     int64
	statusData   json.RawMessage
	statusErr    error
	reprocessID  int64
	reprocessJob *models.ProcessingJob
	reprocessErr error
}

func (f *fakeProcessing) Start(_ context.Context, recordID int64, _ map[string]any) (*models.ProcessingJob, error) {
	f.startID = recordID
	return f.startJob, f.startErr
}

func (f *fakeProcessing) Job(_ context.Context, jobID string) (*models.ProcessingJob, error) {
	f.jobID = jobID
	return f.job, f.jobErr
}

func (f *fakeProcessing) Results(_ context.Context, recordID int64) ([]models.ProcessingResult, error) {
	f.resultsID = recordID
	return f.results, f.resultsErr
}

func (f *fakeProcessing) Status(_ context.Context, recordID int64) (json.RawMessage, error) {
	f.statusID = recordID
	return f.statusData, f.statusErr
}

func (f *fakeProcessing) Reprocess(_ context.Context, recordID int64) (*models.ProcessingJob, error) {
	f.reprocessID = recordID
	return f.reprocessJob, f.reprocessErr
}

var _ processingClient = (*fakeProcessing)(nil)

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"abc", "", "0", "-5", "1.5"} {
		_, err := parseID(bad)
		assert.ErrorIs(t, err, common.ErrValidation, "input %q", bad)
	}
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", formatFileSize(512))
	assert.Equal(t, "2.0 KB", formatFileSize(2048))
	assert.Equal(t, "5.0 MB", formatFileSize(5<<20))
	assert.Equal(t, "1.5 GB", formatFileSize(3<<29))
}

func TestDispatch_UnknownCommand(t *testing.T) {
	out := capturePrintln(t)

	a := &App{session: &fakeSession{}}
	keep := a.dispatch(context.Background(), "frobnicate", nil)

	assert.True(t, keep)
	require.Len(t, *out, 1)
	assert.Contains(t, (*out)[0], "frobnicate")
}

func TestDispatch_ExitStopsLoop(t *testing.T) {
	capturePrintln(t)

	a := &App{session: &fakeSession{}}
	assert.False(t, a.dispatch(context.Background(), "exit", nil))
	assert.False(t, a.dispatch(context.Background(), "quit", nil))
}

func TestDispatch_MissingArgsPrintUsage(t *testing.T) {
	out := capturePrintln(t)

	a := &App{session: &fakeSession{}, records: &fakeRecords{}, export: &fakeExport{}}
	a.dispatch(context.Background(), "upload", nil)
	a.dispatch(context.Background(), "show", nil)
	a.dispatch(context.Background(), "export", []string{"1"})
	a.dispatch(context.Background(), "download", nil)

	require.Len(t, *out, 4)
	for _, line := range *out {
		assert.Contains(t, line, "Usage:")
	}
}

func TestDispatch_RoutesToProcessing(t *testing.T) {
	capturePrintln(t)

	p := &fakeProcessing{
		startJob:     &models.ProcessingJob{JobID: "j-1", Status: models.JobStatusPending},
		reprocessJob: &models.ProcessingJob{JobID: "j-2", Status: models.JobStatusPending},
		statusData:   json.RawMessage(`{"status":"running"}`),
	}
	a := &App{session: &fakeSession{}, processing: p}

	a.dispatch(context.Background(), "process", []string{"3"})
	assert.Equal(t, int64(3), p.startID)

	a.dispatch(context.Background(), "status", []string{"4"})
	assert.Equal(t, int64(4), p.statusID)

	a.dispatch(context.Background(), "reprocess", []string{"5"})
	assert.Equal(t, int64(5), p.reprocessID)

	a.dispatch(context.Background(), "job", []string{"j-1"})
	assert.Equal(t, "j-1", p.jobID)
}

func TestResults_PrintsFindings(t *testing.T) {
	out := capturePrintln(t)

	hr := 72.0
	q := 0.93
	p := &fakeProcessing{results: []models.ProcessingResult{{
		ID:                 1,
		HeartRate:          &hr,
		RhythmType:         "sinus",
		SignalQualityScore: &q,
	}}}
	a := &App{processing: p}

	require.NoError(t, a.Results(context.Background(), 8))
	assert.Equal(t, int64(8), p.resultsID)

	joined := ""
	for _, line := range *out {
		joined += line
	}
	assert.Contains(t, joined, "72 bpm")
	assert.Contains(t, joined, "sinus")
	assert.Contains(t, joined, "0.93")
}

func TestGetStatus(t *testing.T) {
	a := &App{session: &fakeSession{}}
	assert.Equal(t, "", a.getStatus())

	a = &App{session: &fakeSession{
		state:    session.StateAuthenticated,
		identity: &models.User{Email: "x@y.org"},
	}}
	assert.Contains(t, a.getStatus(), "x@y.org")
}
