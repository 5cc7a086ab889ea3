package model

// Zone represents one administrative prayer-time zone. Codes follow the
// JAKIM convention ("SGR01", "WLY01", ...) and are stable identifiers.
type Zone struct {
	Code     string   `db:"code"     json:"code"`
	Region   string   `db:"region"   json:"region"`
	District string   `db:"district" json:"district"`
	Lat      *float64 `db:"lat"      json:"lat,omitempty"`
	Lng      *float64 `db:"lng"      json:"lng,omitempty"`
}

// Valid reports whether the zone carries a usable identity and, when
// coordinates are present, that they are inside the WGS-84 ranges.
func (z Zone) Valid() bool {
	if z.Code == "" {
		return false
	}
	if z.Lat != nil && (*z.Lat < -90 || *z.Lat > 90) {
		return false
	}
	if z.Lng != nil && (*z.Lng < -180 || *z.Lng > 180) {
		return false
	}
	return true
}
