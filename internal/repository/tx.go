package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// maxSerializationRetries bounds how many times a serializable transaction is
// retried after the database aborts it with a serialization failure.
const maxSerializationRetries = 3

func runInTx(ctx context.Context, db *pgxpool.Pool, txOptions pgx.TxOptions, fn func(tx pgx.Tx) error) error {
	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

// runInSerializableTx wraps fn in a serializable transaction so that the
// check-then-write sequences inside it are atomic across concurrent callers
// and stateless instances. Serialization failures are retried a bounded
// number of times; the last one is returned to the caller, which treats
// "could not prove no-conflict" as a conflict.
func runInSerializableTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	txOptions := pgx.TxOptions{IsoLevel: pgx.Serializable}

	var err error
	for attempt := 0; attempt <= maxSerializationRetries; attempt++ {
		err = runInTx(ctx, db, txOptions, fn)
		if !isPgError(err, pgerrcode.SerializationFailure) {
			return err
		}
	}

	return err
}

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
