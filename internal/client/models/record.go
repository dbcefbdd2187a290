package models

import "time"

// RecordStatus tracks an uploaded ECG image through its processing lifecycle.
type RecordStatus string

const (
	RecordStatusUploaded   RecordStatus = "uploaded"
	RecordStatusProcessing RecordStatus = "processing"
	RecordStatusCompleted  RecordStatus = "completed"
	RecordStatusFailed     RecordStatus = "failed"
)

// ECGRecord describes one uploaded ECG image and its processing state.
type ECGRecord struct {
	ID                    int64        `json:"id"`
	UserID                int64        `json:"user_id"`
	OriginalFilename      string       `json:"original_filename"`
	FilePath              string       `json:"file_path"`
	FileSize              int64        `json:"file_size"`
	FileType              string       `json:"file_type"`
	Status                RecordStatus `json:"status"`
	ProcessedDataPath     string       `json:"processed_data_path,omitempty"`
	ProcessingStartedAt   *time.Time   `json:"processing_started_at,omitempty"`
	ProcessingCompletedAt *time.Time   `json:"processing_completed_at,omitempty"`
	ErrorMessage          string       `json:"error_message,omitempty"`
	CreatedAt             time.Time    `json:"created_at"`
	UpdatedAt             *time.Time   `json:"updated_at,omitempty"`
}
