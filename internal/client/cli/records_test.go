package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/ecgdesk/internal/client/models"
	"github.com/dmitrijs2005/ecgdesk/internal/common"
)

type fakeRecords struct {
	uploadName string
	uploadData []byte
	uploadRec  *models.ECGRecord
	uploadErr  error

	listRecs []models.ECGRecord
	listErr  error

	getID  int64
	getRec *models.ECGRecord
	getErr error

	deleteID  int64
	deleteErr error

	previewID   int64
	previewData json.RawMessage
	previewErr  error
}

func (f *fakeRecords) Upload(_ context.Context, name string, file io.Reader) (*models.ECGRecord, error) {
	f.uploadName = name
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	f.uploadData = data
	return f.uploadRec, f.uploadErr
}

func (f *fakeRecords) List(context.Context) ([]models.ECGRecord, error) {
	return f.listRecs, f.listErr
}

func (f *fakeRecords) Get(_ context.Context, id int64) (*models.ECGRecord, error) {
	f.getID = id
	return f.getRec, f.getErr
}

func (f *fakeRecords) Delete(_ context.Context, id int64) error {
	f.deleteID = id
	return f.deleteErr
}

func (f *fakeRecords) Preview(_ context.Context, id int64) (json.RawMessage, error) {
	f.previewID = id
	return f.previewData, f.previewErr
}

var _ recordsClient = (*fakeRecords)(nil)

func TestValidateUploadFile(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		size    int64
		wantErr bool
	}{
		{"png ok", "scan.png", 1024, false},
		{"jpg ok", "scan.jpg", 1024, false},
		{"jpeg ok", "scan.jpeg", 1024, false},
		{"pdf ok", "report.pdf", 1024, false},
		{"uppercase extension ok", "SCAN.PNG", 1024, false},
		{"exactly at the limit ok", "scan.png", 50 << 20, false},
		{"text file rejected", "notes.txt", 10, true},
		{"no extension rejected", "scan", 10, true},
		{"oversized rejected", "scan.png", 50<<20 + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUploadFile(tt.path, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUpload_Success(t *testing.T) {
	capturePrintln(t)

	path := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(path, []byte("fake-image-bytes"), 0o600))

	f := &fakeRecords{uploadRec: &models.ECGRecord{
		ID: 11, OriginalFilename: "scan.png", Status: models.RecordStatusUploaded,
	}}
	a := &App{records: f}

	require.NoError(t, a.Upload(context.Background(), path))
	assert.Equal(t, "scan.png", f.uploadName, "upload uses the base name, not the full path")
	assert.Equal(t, []byte("fake-image-bytes"), f.uploadData)
}

func TestUpload_RejectsUnsupportedType(t *testing.T) {
	capturePrintln(t)

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("text"), 0o600))

	f := &fakeRecords{}
	a := &App{records: f}

	err := a.Upload(context.Background(), path)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, f.uploadName, "rejected file must not be sent")
}

func TestUpload_MissingFile(t *testing.T) {
	capturePrintln(t)

	a := &App{records: &fakeRecords{}}
	err := a.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.png"))
	require.Error(t, err)
}

func TestList(t *testing.T) {
	out := capturePrintln(t)

	f := &fakeRecords{listRecs: []models.ECGRecord{
		{ID: 1, OriginalFilename: "a.png", FileSize: 2048, Status: models.RecordStatusCompleted},
		{ID: 2, OriginalFilename: "b.pdf", FileSize: 5 << 20, Status: models.RecordStatusProcessing},
	}}
	a := &App{records: f}

	require.NoError(t, a.List(context.Background()))
	require.Len(t, *out, 2)
	assert.Contains(t, (*out)[0], "a.png")
	assert.Contains(t, (*out)[1], "5.0 MB")
}

func TestList_Empty(t *testing.T) {
	out := capturePrintln(t)

	a := &App{records: &fakeRecords{}}
	require.NoError(t, a.List(context.Background()))
	require.Len(t, *out, 1)
	assert.True(t, strings.Contains((*out)[0], "upload"))
}

func TestDelete(t *testing.T) {
	capturePrintln(t)

	f := &fakeRecords{}
	a := &App{records: f}

	require.NoError(t, a.Delete(context.Background(), 42))
	assert.Equal(t, int64(42), f.deleteID)
}

func TestDelete_NotFound(t *testing.T) {
	capturePrintln(t)

	f := &fakeRecords{deleteErr: common.ErrNotFound}
	a := &App{records: f}

	err := a.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPreview(t *testing.T) {
	out := capturePrintln(t)

	f := &fakeRecords{previewData: json.RawMessage(`{"signal":[1,2,3]}`)}
	a := &App{records: f}

	require.NoError(t, a.Preview(context.Background(), 9))
	assert.Equal(t, int64(9), f.previewID)
	assert.Contains(t, (*out)[0], `"signal"`)
}

func TestShow_Error(t *testing.T) {
	capturePrintln(t)

	f := &fakeRecords{getErr: errors.New("boom")}
	a := &App{records: f}

	require.Error(t, a.Show(context.Background(), 1))
}
