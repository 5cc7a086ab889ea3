// internal/db/zones.go
package db

import (
	"github.com/rs/zerolog/log"

	"github.com/imanhub/solat-server/internal/model"
)

func (s *pgStore) ListZones() ([]model.Zone, error) {
	var out []model.Zone
	const q = `
	SELECT code, region, district, lat, lng
	  FROM zones
	 ORDER BY code;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListZones failed")
		return nil, err
	}
	return out, nil
}

