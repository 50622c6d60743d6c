package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dferrell/cadence/internal/app"
	"github.com/dferrell/cadence/internal/db"
	"github.com/dferrell/cadence/internal/domain"
	"github.com/dferrell/cadence/internal/importer"
	"github.com/dferrell/cadence/internal/intelligence"
	"github.com/dferrell/cadence/internal/repository"
)

type importService struct {
	defaults importer.Defaults
	prefs    *intelligence.PreferenceService
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService builds the CSV import pipeline. prefs may be nil, in which
// case only the structured columns are read.
func NewImportService(
	defaults importer.Defaults,
	prefs *intelligence.PreferenceService,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ImportService {
	return &importService{
		defaults: defaults,
		prefs:    prefs,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportClients(ctx context.Context, filePath string) (result *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"file": filePath}
	defer func() {
		if result != nil {
			fields["clients"] = len(result.Clients)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "import-clients",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	records, err := importer.LoadRecords(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	if errs := importer.ValidateRecords(records); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	converted, err := importer.Convert(records, s.defaults)
	if err != nil {
		return nil, fmt.Errorf("converting records: %w", err)
	}

	warnings := s.enrich(ctx, records, converted)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txClients := repository.NewSQLiteClientRepo(tx)
		txRequests := repository.NewSQLiteRequestRepo(tx)
		for _, c := range converted.Clients {
			if err := txClients.Create(ctx, c); err != nil {
				return fmt.Errorf("creating client %q: %w", c.Name, err)
			}
		}
		for _, r := range converted.Requests {
			if err := txRequests.Create(ctx, r); err != nil {
				return fmt.Errorf("creating session request for client %s: %w", r.ClientID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &app.ImportResult{
		Clients:  converted.Clients,
		Requests: converted.Requests,
		Warnings: warnings,
	}, nil
}

// enrich runs preference extraction over each record and folds the result
// into the converted clients. Records and converted clients are index-aligned.
func (s *importService) enrich(ctx context.Context, records []importer.ClientRecord, converted *importer.ConvertResult) []string {
	if s.prefs == nil {
		return nil
	}

	var warnings []string
	today := time.Now().UTC()
	for i, rec := range records {
		ext := s.prefs.Extract(ctx, intelligence.ExtractionInput{Record: rec, Today: today})
		if ext.Source == intelligence.SourceRules && rec.Notes != "" {
			warnings = append(warnings, fmt.Sprintf(
				"line %d (%s): free-text notes skipped, structured columns used", rec.Line, rec.Name))
		}
		applyExtraction(converted.Clients[i], converted.Requests[i], ext)
	}
	return warnings
}

// applyExtraction overlays extracted preferences onto a converted client.
// Extraction fields are zero-valued when the input did not state them, so
// only stated values win over the column-parsed defaults.
func applyExtraction(c *domain.Client, r *domain.SessionRequest, ext *intelligence.Extraction) {
	if ext.DurationMin > 0 {
		c.DefaultDurationMin = ext.DurationMin
	}
	if ext.WeeklyCount > 0 {
		r.Count = ext.WeeklyCount
	}
	if len(ext.Preferences) > 0 {
		c.Preferences = ext.Preferences
	}
	if len(ext.BlockedDates) > 0 {
		c.BlockedDates = ext.BlockedDates
	}
	c.Location = ext.Location
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
