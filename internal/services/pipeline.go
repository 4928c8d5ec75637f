// Package services orchestrates the msgprep pipeline: load both CSV
// datasets, clean the joined table, and persist it into the destination
// database.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dsml-pipelines/msgprep/internal/dataset"
	"github.com/dsml-pipelines/msgprep/pkg/msgprep"
)

// Store persists a cleaned table into the destination database.
type Store interface {
	// Save writes every row into the named table, replacing any existing
	// table of that name.
	Save(ctx context.Context, t *dataset.Table, tableName string) error

	// Close releases the underlying database handle.
	Close() error
}

// StoreFactory opens a Store for the given database file path.
type StoreFactory func(ctx context.Context, path string) (Store, error)

// PipelineService runs the load, clean, save stages sequentially.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type PipelineService struct {
	storeFactory StoreFactory
	logger       msgprep.Logger
}

// NewPipelineService creates a PipelineService with all dependencies injected.
// Panics on nil dependencies: those are programmer errors that should fail
// loudly at startup rather than surface as nil dereferences mid-pipeline.
func NewPipelineService(storeFactory StoreFactory, logger msgprep.Logger) *PipelineService {
	if storeFactory == nil {
		panic("storeFactory cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &PipelineService{
		storeFactory: storeFactory,
		logger:       logger,
	}
}

// Run executes one pipeline pass. Each stage blocks until complete; any
// stage error aborts the run and propagates to the caller.
func (s *PipelineService) Run(ctx context.Context, cfg msgprep.PipelineConfig) error {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New()
	s.logger.Verbose("pipeline run %s", runID)
	s.logger.Verbose("destination table %q, delimiter %q, strict=%t",
		cfg.TableName, cfg.Delimiter, cfg.Strict)

	s.logger.Info("Loading data...\n    MESSAGES: %s\n    CATEGORIES: %s",
		cfg.MessagesPath, cfg.CategoriesPath)
	joined, err := LoadData(cfg.MessagesPath, cfg.CategoriesPath)
	if err != nil {
		return err
	}
	s.logger.Verbose("joined %d rows, %d columns", joined.NumRows(), len(joined.Columns))

	s.logger.Info("Cleaning data...")
	cleaned, err := CleanData(joined, CleanOptions{
		Delimiter:   cfg.Delimiter,
		Placeholder: cfg.Placeholder,
		Strict:      cfg.Strict,
	})
	if err != nil {
		return err
	}
	s.logger.Verbose("cleaned table has %d rows, %d columns",
		cleaned.NumRows(), len(cleaned.Columns))

	s.logger.Info("Saving data...\n    DATABASE: %s", cfg.DatabasePath)
	store, err := s.storeFactory(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("open destination database: %w", err)
	}
	defer store.Close()

	if err := store.Save(ctx, cleaned, cfg.TableName); err != nil {
		return fmt.Errorf("save cleaned data: %w", err)
	}

	return nil
}
