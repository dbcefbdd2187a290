package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/ecgdesk/internal/client/models"
	"github.com/dmitrijs2005/ecgdesk/internal/common"
	"github.com/dmitrijs2005/ecgdesk/internal/filex"
)

// Export asks the service to materialize a record's results in the given
// format. The prepared file is fetched separately with Download.
func (a *App) Export(ctx context.Context, recordID int64, format string) error {
	if !models.ValidExportFormat(format) {
		err := fmt.Errorf("%w: unsupported export format %q (csv, json, numpy, excel)", common.ErrValidation, format)
		printlnFn("Error:", err.Error())
		return err
	}

	resp, err := a.export.Export(ctx, models.ExportRequest{
		ECGRecordID:      recordID,
		Format:           models.ExportFormat(format),
		IncludeMetadata:  true,
		IncludeAnomalies: true,
	})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Export ready: %s (%s), use 'download %s' to fetch it",
		resp.Filename, formatFileSize(resp.FileSize), resp.Filename))
	return nil
}

// Download fetches a prepared export file and stores it in the configured
// download directory.
func (a *App) Download(ctx context.Context, filename string) error {
	data, err := a.export.Download(ctx, filename)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	dir, err := filex.EnsureSubDir(a.config.DownloadDir)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Saved %s (%s)", path, formatFileSize(int64(len(data)))))
	return nil
}

// Formats prints the export formats the service currently offers.
func (a *App) Formats(ctx context.Context) error {
	data, err := a.export.Formats(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(string(data))
	return nil
}
