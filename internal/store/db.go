package store

import (
	"errors"
	"log"

	"github.com/p2p-kyc/verify-sub000/internal/observability"

	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidState is returned when a guarded transition finds the row
	// in a state that does not permit it.
	ErrInvalidState = errors.New("invalid state for transition")
	// ErrConflict is returned when a write collides with an existing or
	// racing row (duplicate join request, in-flight charge on cancel).
	ErrConflict = errors.New("conflicting operation")
	// ErrCapacityReached is returned when a campaign has no verifier
	// slots left.
	ErrCapacityReached = errors.New("campaign capacity reached")
)

type Store struct {
	db     *sqlx.DB
	logger *observability.Logger
}

func New(connectionString string, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		log.Fatal(err)
		return Store{}, err
	}
	return Store{db: db, logger: logger}, nil
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}
