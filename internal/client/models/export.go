package models

import "time"

// ExportFormat enumerates the download formats the service offers.
type ExportFormat string

const (
	ExportFormatCSV   ExportFormat = "csv"
	ExportFormatJSON  ExportFormat = "json"
	ExportFormatNumpy ExportFormat = "numpy"
	ExportFormatExcel ExportFormat = "excel"
)

// ValidExportFormat reports whether f is one of the supported formats.
func ValidExportFormat(f string) bool {
	switch ExportFormat(f) {
	case ExportFormatCSV, ExportFormatJSON, ExportFormatNumpy, ExportFormatExcel:
		return true
	}
	return false
}

// ExportRequest asks the service to materialize a record's results in the
// given format.
type ExportRequest struct {
	ECGRecordID      int64        `json:"ecg_record_id"`
	Format           ExportFormat `json:"format"`
	IncludeMetadata  bool         `json:"include_metadata,omitempty"`
	IncludeAnomalies bool         `json:"include_anomalies,omitempty"`
}

// ExportResponse points at the prepared file.
type ExportResponse struct {
	DownloadURL string     `json:"download_url"`
	Filename    string     `json:"filename"`
	Format      string     `json:"format"`
	FileSize    int64      `json:"file_size"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}
