package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aliskhannn/workout-coach-bot/internal/infra/postgres"
)

// Store is the Postgres-backed progress store. Methods are grouped by
// concern in user.go, progress.go and timer_history.go.
type Store struct {
	db *pgxpool.Pool
	tr *postgres.Transactor
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db: db,
		tr: postgres.NewTransactor(db),
	}
}
