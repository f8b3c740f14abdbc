package roll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hexhaus/dicehall/internal/dice"
	"github.com/hexhaus/dicehall/internal/models"
)

// DBTX is the slice of pgx used by the postgres repository. It is satisfied
// by *pgxpool.Pool, *pgx.Conn and pgx.Tx, so the caller decides pooling and
// transaction scope.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const createRollsTable = `
CREATE TABLE IF NOT EXISTS dice_rolls (
	roll_id    UUID        NOT NULL,
	idx        INTEGER     NOT NULL,
	die        VARCHAR(5)  NOT NULL,
	result     BIGINT      NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (roll_id, idx)
)`

const insertRollRows = `
INSERT INTO dice_rolls (roll_id, idx, die, result, created_at)
SELECT * FROM UNNEST($1::uuid[], $2::integer[], $3::varchar(5)[], $4::bigint[], $5::timestamptz[])`

const selectRollRows = `
SELECT die, result, created_at FROM dice_rolls WHERE roll_id = $1 ORDER BY idx`

// postgresRepository implements the Repository interface on a relational
// table, one row per die. The bulk insert is all-or-nothing: a row-count
// mismatch surfaces as an error rather than a half-persisted roll.
//
// Saving the same id twice appends rows under it, so the service must never
// reuse ids (it always mints a fresh one). A roll of an empty dice set
// stores no rows and is therefore not retrievable from this adapter.
type postgresRepository struct {
	db DBTX
}

// NewPostgres creates a postgres-backed roll repository and ensures the
// dice_rolls table exists.
func NewPostgres(ctx context.Context, db DBTX) (*postgresRepository, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	if _, err := db.Exec(ctx, createRollsTable); err != nil {
		return nil, fmt.Errorf("failed to ensure dice_rolls table: %w", err)
	}

	return &postgresRepository{db: db}, nil
}

// SaveRoll persists every die of the roll in one bulk insert
func (r *postgresRepository) SaveRoll(ctx context.Context, input *SaveRollInput) error {
	if input == nil || input.Roll == nil {
		return errors.New("input and roll cannot be nil")
	}

	rolled := input.Roll.Results.Rolled()

	ids := make([]string, len(rolled))
	idxs := make([]int32, len(rolled))
	dies := make([]string, len(rolled))
	results := make([]int64, len(rolled))
	createdAts := make([]time.Time, len(rolled))
	for i, entry := range rolled {
		ids[i] = input.Roll.ID.String()
		idxs[i] = int32(i)
		dies[i] = entry.Dice().String()
		results[i] = int64(entry.Result())
		createdAts[i] = input.Roll.CreatedAt
	}

	tag, err := r.db.Exec(ctx, insertRollRows, ids, idxs, dies, results, createdAts)
	if err != nil {
		return fmt.Errorf("failed to insert roll rows: %w", err)
	}

	if tag.RowsAffected() != int64(len(rolled)) {
		return fmt.Errorf("expected %d roll rows persisted, got %d", len(rolled), tag.RowsAffected())
	}

	return nil
}

// GetRoll reassembles a roll from its rows, in insertion order
func (r *postgresRepository) GetRoll(ctx context.Context, input *GetRollInput) (*models.Roll, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	rows, err := r.db.Query(ctx, selectRollRows, input.RollID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query roll rows: %w", err)
	}
	defer rows.Close()

	var (
		rolled    []dice.RolledDice
		createdAt time.Time
	)
	for rows.Next() {
		var (
			die    string
			result int64
		)
		if err := rows.Scan(&die, &result, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan roll row: %w", err)
		}

		d, err := dice.ParseDice(die)
		if err != nil {
			return nil, fmt.Errorf("failed to decode stored dice: %w", err)
		}
		rolled = append(rolled, dice.NewRolledDice(d, uint32(result)))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read roll rows: %w", err)
	}

	if len(rolled) == 0 {
		return nil, ErrRollNotFound
	}

	return &models.Roll{
		ID:        input.RollID,
		Results:   dice.NewRolledDiceSet(rolled),
		CreatedAt: createdAt,
	}, nil
}
