package cli

import (
	"context"
	"fmt"
)

// Process queues analysis of an uploaded record.
func (a *App) Process(ctx context.Context, recordID int64) error {
	job, err := a.processing.Start(ctx, recordID, nil)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Processing queued, job %s (%s)", job.JobID, job.Status))
	return nil
}

// Job prints the state of a single processing job.
func (a *App) Job(ctx context.Context, jobID string) error {
	job, err := a.processing.Job(ctx, jobID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Job %s: %s (%.0f%%)", job.JobID, job.Status, job.Progress))
	if job.ErrorMessage != "" {
		printlnFn("  error:", job.ErrorMessage)
	}
	return nil
}

// Results prints the analysis results available for a record.
func (a *App) Results(ctx context.Context, recordID int64) error {
	results, err := a.processing.Results(ctx, recordID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(results) == 0 {
		printlnFn(fmt.Sprintf("No results yet, use 'status %d' to check progress", recordID))
		return nil
	}

	for _, r := range results {
		printlnFn(fmt.Sprintf("Result %d (%s)", r.ID, r.CreatedAt.Format("2006-01-02 15:04")))
		if r.HeartRate != nil {
			printlnFn(fmt.Sprintf("  heart rate: %.0f bpm", *r.HeartRate))
		}
		if r.RhythmType != "" {
			printlnFn("  rhythm:    ", r.RhythmType)
		}
		if r.SignalQualityScore != nil {
			printlnFn(fmt.Sprintf("  quality:    %.2f", *r.SignalQualityScore))
		}
		if len(r.AnomaliesDetected) > 0 {
			printlnFn("  anomalies: ", string(r.AnomaliesDetected))
		}
	}
	return nil
}

// Status prints the raw processing status payload for a record.
func (a *App) Status(ctx context.Context, recordID int64) error {
	data, err := a.processing.Status(ctx, recordID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(string(data))
	return nil
}

// Reprocess discards previous results and queues the record again.
func (a *App) Reprocess(ctx context.Context, recordID int64) error {
	job, err := a.processing.Reprocess(ctx, recordID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Reprocessing queued, job %s (%s)", job.JobID, job.Status))
	return nil
}
