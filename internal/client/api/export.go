package api

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/dmitrijs2005/ecgdesk/internal/client/models"
)

// ExportAPI wraps the export endpoints.
type ExportAPI struct {
	gw *Gateway
}

func NewExportAPI(gw *Gateway) *ExportAPI {
	return &ExportAPI{gw: gw}
}

// Export asks the service to materialize a record's results.
func (e *ExportAPI) Export(ctx context.Context, req models.ExportRequest) (*models.ExportResponse, error) {
	var out models.ExportResponse
	resp, err := e.gw.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/export/")
	if err := e.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Download fetches a prepared export file as raw bytes.
func (e *ExportAPI) Download(ctx context.Context, filename string) ([]byte, error) {
	resp, err := e.gw.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/octet-stream").
		Get("/export/download/" + url.PathEscape(filename))
	if err := e.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return append([]byte(nil), resp.Body()...), nil
}

// Formats returns the formats the service currently offers.
func (e *ExportAPI) Formats(ctx context.Context) (json.RawMessage, error) {
	resp, err := e.gw.http.R().
		SetContext(ctx).
		Get("/export/formats")
	if err := e.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return json.RawMessage(append([]byte(nil), resp.Body()...)), nil
}
