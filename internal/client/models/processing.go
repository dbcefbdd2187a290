package models

import (
	"encoding/json"
	"time"
)

// JobStatus tracks a processing job on the service side.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// ProcessingJob is the service's handle for an asynchronous extraction run.
type ProcessingJob struct {
	ID           int64      `json:"id"`
	ECGRecordID  int64      `json:"ecg_record_id"`
	JobID        string     `json:"job_id"`
	Status       JobStatus  `json:"status"`
	Progress     float64    `json:"progress"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// WaveformData holds the extracted signal for charting.
type WaveformData struct {
	Signal       []float64         `json:"signal"`
	TimeAxis     []float64         `json:"time_axis"`
	HeartRate    float64           `json:"heart_rate"`
	Anomalies    []json.RawMessage `json:"anomalies,omitempty"`
	SamplingRate float64           `json:"sampling_rate"`
	SignalLength int64             `json:"signal_length"`
}

// ProcessingResult is one extraction outcome for an ECG record.
type ProcessingResult struct {
	ID                 int64           `json:"id"`
	ECGRecordID        int64           `json:"ecg_record_id"`
	WaveformData       *WaveformData   `json:"waveform_data,omitempty"`
	SignalQualityScore *float64        `json:"signal_quality_score,omitempty"`
	HeartRate          *float64        `json:"heart_rate,omitempty"`
	RhythmType         string          `json:"rhythm_type,omitempty"`
	AnomaliesDetected  json.RawMessage `json:"anomalies_detected,omitempty"`
	ProcessingMetadata json.RawMessage `json:"processing_metadata,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}
