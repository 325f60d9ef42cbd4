package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const (
	ledgerTable   = "app_state"
	ledgerIDCol   = "id"
	ledgerDataCol = "data"

	upsertLedgerSuffix = "ON CONFLICT (id) DO UPDATE SET data = excluded.data"
	ensureLedgerSuffix = "ON CONFLICT (id) DO NOTHING"
)

// ledgerRepository is the SQL implementation of [LedgerRepository]. It reads
// and writes row [models.LedgerID] of the app_state table and works on both
// PostgreSQL and SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type ledgerRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewLedgerRepository constructs a [LedgerRepository] backed by db.
func NewLedgerRepository(db *DB, logger *logger.Logger) LedgerRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating ledger repository")
	return &ledgerRepository{
		db:     db,
		logger: logger,
	}
}

// Get reads the singleton row.
//
// Error handling:
//   - no row → [ErrLedgerNotFound].
//   - unreadable data column → [ErrScanningRow].
//   - transient driver error → [ErrStorageUnavailable].
//   - any other driver error → [ErrExecutingQuery].
func (r *ledgerRepository) Get(ctx context.Context) (models.LedgerDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(ledgerDataCol).
		From(ledgerTable).
		Where(ledgerIDCol+" = ?", models.LedgerID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.Get").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.Get").Msg("error reading ledger")
		return nil, r.db.classify(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			log.Err(err).Str("func", "*ledgerRepository.Get").Msg("error reading ledger")
			return nil, r.db.classify(err)
		}
		log.Error().Str("func", "*ledgerRepository.Get").Msg("ledger row is missing")
		return nil, ErrLedgerNotFound
	}

	var data string
	if err = rows.Scan(&data); err != nil {
		log.Err(err).Str("func", "*ledgerRepository.Get").Msg("error scanning ledger row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return models.LedgerDocument(data), nil
}

// Put upserts the singleton row with doc. The statement either fully applies
// or not at all; concurrent callers resolve to the last committed write.
func (r *ledgerRepository) Put(ctx context.Context, doc models.LedgerDocument) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(ledgerTable).
		Columns(ledgerIDCol, ledgerDataCol).
		Values(models.LedgerID, string(doc)).
		Suffix(upsertLedgerSuffix).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.Put").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.Put").Msg("error saving ledger")
		return r.db.classify(err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		log.Error().Str("func", "*ledgerRepository.Put").Msg("upsert affected no rows")
		return ErrLedgerNotSaved
	}

	log.Debug().Str("func", "*ledgerRepository.Put").Int("bytes", len(doc)).Msg("ledger saved")
	return nil
}

// EnsureInitialized inserts the default document if the singleton row does
// not exist yet. Existing data is never touched, so it is safe to call on
// every start.
func (r *ledgerRepository) EnsureInitialized(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Insert(ledgerTable).
		Columns(ledgerIDCol, ledgerDataCol).
		Values(models.LedgerID, string(models.NewDefaultLedgerDocument())).
		Suffix(ensureLedgerSuffix).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.EnsureInitialized").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*ledgerRepository.EnsureInitialized").Msg("error seeding ledger")
		return r.db.classify(err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected > 0 {
		r.logger.Info().Msg("ledger initialized with default document")
	}

	return nil
}

// Ping reports whether the database answers. Any failure is treated as
// unavailability.
func (r *ledgerRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*ledgerRepository.Ping").Msg("database ping failed")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
