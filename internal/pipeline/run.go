package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fdcreport/internal"
	"fdcreport/internal/config"
	"fdcreport/internal/fdc"
	"fdcreport/internal/report"
	"fdcreport/internal/storage"
)

// FoodSource yields food records for one id batch, sorted ascending by
// fdcId. fdc.Client implements it; tests stub it.
type FoodSource interface {
	FetchFoods(ctx context.Context, ids []int) ([]internal.FoodRecord, error)
}

type Runner struct {
	cfg    config.Config
	db     *storage.DB
	source FoodSource
	logger zerolog.Logger
}

func NewRunner(cfg config.Config, db *storage.DB, source FoodSource, logger zerolog.Logger) *Runner {
	return &Runner{cfg: cfg, db: db, source: source, logger: logger.With().Str("component", "pipeline").Logger()}
}

type RunResult struct {
	RunID      int64
	TraceID    string
	Foods      int
	OutputPath string
}

// Run executes the whole pipeline: read ids, fetch them in chunks of at most
// fdc.MaxBatchSize, flatten into report rows, write the CSV and archive the
// run. Chunks run strictly one after another; each is fully consumed before
// the next request. Rows keep chunk order, ascending within each chunk —
// there is no global sort. Any failure aborts the run with no output
// written.
func (r *Runner) Run(ctx context.Context, inputPath, outputPath string) (RunResult, error) {
	start := time.Now()
	traceID := uuid.NewString()
	logger := r.logger.With().Str("traceId", traceID).Logger()

	ids, err := ReadIDFile(inputPath)
	if err != nil {
		return RunResult{}, err
	}
	logger.Info().Int("ids", len(ids)).Str("input", inputPath).Msg("id file loaded")

	var foods []internal.FoodRecord
	for _, chunk := range ChunkIDs(ids, fdc.MaxBatchSize) {
		batch, err := r.source.FetchFoods(ctx, chunk)
		if err != nil {
			return RunResult{}, err
		}
		logger.Debug().Int("requested", len(chunk)).Int("received", len(batch)).Msg("chunk fetched")
		foods = append(foods, batch...)
	}

	extractor := report.NewExtractor(logger)
	rows := make([]internal.ReportRow, 0, len(foods))
	for _, food := range foods {
		rows = append(rows, extractor.Row(food))
	}

	if err := report.WriteCSVFile(outputPath, rows); err != nil {
		return RunResult{}, err
	}

	runID, err := r.db.InsertRun(traceID, inputPath, outputPath, len(foods))
	if err != nil {
		return RunResult{}, err
	}
	if err := r.db.InsertReportRows(runID, rows); err != nil {
		return RunResult{}, err
	}
	_ = r.db.SetMetadata("pipeline.last_run", time.Now().UTC().Format(time.RFC3339))

	logger.Info().
		Int64("runId", runID).
		Int("foods", len(foods)).
		Dur("elapsed", time.Since(start)).
		Str("output", outputPath).
		Msg("run complete")

	return RunResult{RunID: runID, TraceID: traceID, Foods: len(foods), OutputPath: outputPath}, nil
}
