package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iho/cashflow/internal/domain"
)

// DashboardUseCase computes period dashboards from a consistent snapshot of
// two ledger years, the category list and the settings.
type DashboardUseCase struct {
	reader   LedgerReader
	observer DashboardObserver
	logger   zerolog.Logger
	timeout  time.Duration
}

// NewDashboardUseCase creates a new DashboardUseCase. observer may be nil.
func NewDashboardUseCase(reader LedgerReader, observer DashboardObserver, logger zerolog.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		reader:   reader,
		observer: observer,
		logger:   logger.With().Str("component", "dashboard").Logger(),
		timeout:  DefaultReadTimeout,
	}
}

// GetDashboardInput represents input for computing a dashboard.
type GetDashboardInput struct {
	Year      int
	View      domain.ViewSpec
	HideEmpty bool
	Sort      domain.CategorySort
}

// GetDashboard loads the ledger snapshot and runs the aggregation pipeline.
// A failure of any read fails the whole computation; no partial dashboard
// is returned.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, input GetDashboardInput) (*domain.Dashboard, error) {
	start := time.Now()

	dashboard, err := uc.getDashboard(ctx, input)

	if uc.observer != nil {
		uc.observer.ObserveDashboard(input.View.Mode, time.Since(start), err)
	}

	if err != nil {
		uc.logger.Error().Err(err).
			Int("year", input.Year).
			Str("view", string(input.View.Mode)).
			Msg("dashboard computation failed")
		return nil, err
	}

	uc.logger.Debug().
		Int("year", input.Year).
		Str("view", string(input.View.Mode)).
		Int("months", len(dashboard.Window.Months)).
		Dur("duration", time.Since(start)).
		Msg("dashboard computed")

	return dashboard, nil
}

func (uc *DashboardUseCase) getDashboard(ctx context.Context, input GetDashboardInput) (*domain.Dashboard, error) {
	if err := domain.ValidateYearMonth(input.Year, 1); err != nil {
		return nil, err
	}

	snapshot, err := uc.loadSnapshot(ctx, input.Year)
	if err != nil {
		return nil, err
	}

	dashboard := domain.BuildDashboard(domain.DashboardInput{
		Year:         input.Year,
		View:         input.View,
		HideEmpty:    input.HideEmpty,
		Sort:         input.Sort,
		Settings:     snapshot.settings,
		Current:      snapshot.current,
		PreviousYear: snapshot.previous,
		Categories:   snapshot.categories,
	})

	return &dashboard, nil
}

type ledgerSnapshot struct {
	current    domain.YearLedger
	previous   domain.YearLedger
	categories []*domain.Category
	settings   domain.Settings
}

// loadSnapshot issues the four reads of a dashboard. A SnapshotReader runs
// them in order inside one snapshot; any other reader gets them concurrently.
func (uc *DashboardUseCase) loadSnapshot(ctx context.Context, year int) (*ledgerSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	var (
		current, previous *domain.YearLedger
		categories        []*domain.Category
		settings          *domain.Settings
	)

	reads := []func(ctx context.Context, reader LedgerReader) error{
		func(ctx context.Context, reader LedgerReader) (err error) {
			current, err = reader.FetchYear(ctx, year)
			if err != nil {
				return fmt.Errorf("fetch year %d: %w", year, err)
			}
			return nil
		},
		func(ctx context.Context, reader LedgerReader) (err error) {
			previous, err = reader.FetchYear(ctx, year-1)
			if err != nil {
				return fmt.Errorf("fetch year %d: %w", year-1, err)
			}
			return nil
		},
		func(ctx context.Context, reader LedgerReader) (err error) {
			categories, err = reader.FetchCategories(ctx, true)
			if err != nil {
				return fmt.Errorf("fetch categories: %w", err)
			}
			return nil
		},
		func(ctx context.Context, reader LedgerReader) (err error) {
			settings, err = reader.FetchSettings(ctx)
			if err != nil {
				return fmt.Errorf("fetch settings: %w", err)
			}
			return nil
		},
	}

	if sr, ok := uc.reader.(SnapshotReader); ok {
		err := sr.Snapshot(ctx, func(ctx context.Context, reader LedgerReader) error {
			for _, read := range reads {
				if err := read(ctx, reader); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		for _, read := range reads {
			g.Go(func() error { return read(gctx, uc.reader) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	snapshot := &ledgerSnapshot{
		current:    domain.YearLedger{Year: year},
		previous:   domain.YearLedger{Year: year - 1},
		categories: categories,
		settings:   domain.DefaultSettings(),
	}
	if current != nil {
		snapshot.current = *current
	}
	if previous != nil {
		snapshot.previous = *previous
	}
	if settings != nil {
		snapshot.settings = *settings
	}

	return snapshot, nil
}
