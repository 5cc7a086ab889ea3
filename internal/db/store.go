// exposes a Store interface so callers don't touch the sqlx handle directly
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/imanhub/solat-server/internal/model"
)

type Store interface {
	// zone source functions
	ListZones() ([]model.Zone, error)
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
