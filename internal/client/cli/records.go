package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/ecgdesk/internal/common"
)

// maxUploadSize is the largest ECG file the service accepts.
const maxUploadSize = 50 << 20 // 50 MiB

var allowedUploadExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".pdf":  {},
}

// validateUploadFile rejects unsupported file types and oversized files
// before any bytes leave the machine.
func validateUploadFile(path string, size int64) error {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := allowedUploadExt[ext]; !ok {
		return fmt.Errorf("%w: unsupported file type %q, only JPG, PNG and PDF are accepted", common.ErrValidation, ext)
	}
	if size > maxUploadSize {
		return fmt.Errorf("%w: file exceeds the 50MB upload limit", common.ErrValidation)
	}
	return nil
}

// Upload validates the file at path and sends it to the service as a new
// ECG record.
func (a *App) Upload(ctx context.Context, path string) error {
	st, err := os.Stat(path)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if err := validateUploadFile(path, st.Size()); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	defer f.Close()

	rec, err := a.records.Upload(ctx, filepath.Base(path), f)
	if err != nil {
		printlnFn("Upload failed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Uploaded %s as record %d (%s)", rec.OriginalFilename, rec.ID, rec.Status))
	return nil
}

// List prints the user's ECG records, newest first as returned by the
// service.
func (a *App) List(ctx context.Context) error {
	recs, err := a.records.List(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(recs) == 0 {
		printlnFn("No records yet, use 'upload <path>' to add one")
		return nil
	}

	for _, r := range recs {
		printlnFn(fmt.Sprintf("%4d  %-32s  %10s  %s", r.ID, r.OriginalFilename, formatFileSize(r.FileSize), r.Status))
	}
	return nil
}

// Show prints the details of a single record.
func (a *App) Show(ctx context.Context, id int64) error {
	r, err := a.records.Get(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Record %d", r.ID))
	printlnFn("  filename:", r.OriginalFilename)
	printlnFn("  size:    ", formatFileSize(r.FileSize))
	printlnFn("  status:  ", string(r.Status))
	printlnFn("  uploaded:", r.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// Preview prints the raw waveform preview payload for a record.
func (a *App) Preview(ctx context.Context, id int64) error {
	data, err := a.records.Preview(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(string(data))
	return nil
}

// Delete removes a record and everything derived from it.
func (a *App) Delete(ctx context.Context, id int64) error {
	if err := a.records.Delete(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Record %d deleted", id))
	return nil
}
