package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/ecgdesk/internal/client/models"
)

// ProcessingAPI wraps the waveform extraction endpoints.
type ProcessingAPI struct {
	gw *Gateway
}

func NewProcessingAPI(gw *Gateway) *ProcessingAPI {
	return &ProcessingAPI{gw: gw}
}

type startRequest struct {
	ECGRecordID       int64          `json:"ecg_record_id"`
	ProcessingOptions map[string]any `json:"processing_options,omitempty"`
}

// Start queues extraction for a record.
func (p *ProcessingAPI) Start(ctx context.Context, recordID int64, options map[string]any) (*models.ProcessingJob, error) {
	var out models.ProcessingJob
	resp, err := p.gw.http.R().
		SetContext(ctx).
		SetBody(startRequest{ECGRecordID: recordID, ProcessingOptions: options}).
		SetResult(&out).
		Post("/process/start")
	if err := p.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Job returns a processing job by its service-assigned identifier.
func (p *ProcessingAPI) Job(ctx context.Context, jobID string) (*models.ProcessingJob, error) {
	var out models.ProcessingJob
	resp, err := p.gw.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/process/job/" + jobID)
	if err := p.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// Results returns every extraction outcome recorded for a record.
func (p *ProcessingAPI) Results(ctx context.Context, recordID int64) ([]models.ProcessingResult, error) {
	var out []models.ProcessingResult
	resp, err := p.gw.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/process/results/%d", recordID))
	if err := p.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// Status returns the service's raw status payload for a record.
func (p *ProcessingAPI) Status(ctx context.Context, recordID int64) (json.RawMessage, error) {
	resp, err := p.gw.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/process/status/%d", recordID))
	if err := p.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return json.RawMessage(append([]byte(nil), resp.Body()...)), nil
}

// Reprocess queues a fresh extraction run for an already-processed record.
func (p *ProcessingAPI) Reprocess(ctx context.Context, recordID int64) (*models.ProcessingJob, error) {
	var out models.ProcessingJob
	resp, err := p.gw.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post(fmt.Sprintf("/process/reprocess/%d", recordID))
	if err := p.gw.wrap(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}
