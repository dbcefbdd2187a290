package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/ecgdesk/internal/client/models"
)

// RecordsAPI wraps the ECG record endpoints.
type RecordsAPI struct {
	gw *Gateway
}

func NewRecordsAPI(gw *Gateway) *RecordsAPI {
	return &RecordsAPI{gw: gw}
}

// Upload sends one ECG image as a multipart form. name is used as the
// remote filename; only its base component is transmitted.
func (r *RecordsAPI) Upload(ctx context.Context, name string, file io.Reader) (*models.ECGRecord, error) {
	var out models.ECGRecord
	resp, err := r.gw.http.R().
		SetContext(ctx).
		SetFileReader("file", filepath.Base(name), file).
		SetResult(&out).
		Post("/ecg/upload")
	if err := r.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns all records belonging to the current user.
func (r *RecordsAPI) List(ctx context.Context) ([]models.ECGRecord, error) {
	var out []models.ECGRecord
	resp, err := r.gw.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/ecg/records")
	if err := r.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns a single record.
func (r *RecordsAPI) Get(ctx context.Context, id int64) (*models.ECGRecord, error) {
	var out models.ECGRecord
	resp, err := r.gw.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/ecg/records/%d", id))
	if err := r.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a record and its processing artifacts.
func (r *RecordsAPI) Delete(ctx context.Context, id int64) error {
	resp, err := r.gw.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/ecg/records/%d", id))
	return r.gw.wrap(resp, err)
}

// Preview returns the service's preview payload for a record. The shape is
// chart-oriented and consumed as-is by the presentation layer.
func (r *RecordsAPI) Preview(ctx context.Context, id int64) (json.RawMessage, error) {
	resp, err := r.gw.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/ecg/records/%d/preview", id))
	if err := r.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return json.RawMessage(append([]byte(nil), resp.Body()...)), nil
}
