package community

import "KeepEat-Backend/domain"

// The schematic neighbourhood map places pins inside a padded box:
// coordinates project linearly into the 10%-90% band on each axis.
const (
	mapPadding = 10.0
	mapSpan    = 80.0
	mapCenter  = 50.0
)

type pinSource struct {
	PostID    string
	Latitude  float64
	Longitude float64
}

// ProjectPins maps post coordinates into percentage offsets for the
// community map. Latitude grows northward but screen offsets grow
// downward, so the vertical axis is inverted. When every post shares a
// latitude (or longitude) the axis collapses to the center line.
func ProjectPins(sources []pinSource) []domain.MapPin {
	if len(sources) == 0 {
		return []domain.MapPin{}
	}

	minLat, maxLat := sources[0].Latitude, sources[0].Latitude
	minLon, maxLon := sources[0].Longitude, sources[0].Longitude
	for _, src := range sources[1:] {
		if src.Latitude < minLat {
			minLat = src.Latitude
		}
		if src.Latitude > maxLat {
			maxLat = src.Latitude
		}
		if src.Longitude < minLon {
			minLon = src.Longitude
		}
		if src.Longitude > maxLon {
			maxLon = src.Longitude
		}
	}

	latRange := maxLat - minLat
	lonRange := maxLon - minLon

	pins := make([]domain.MapPin, 0, len(sources))
	for _, src := range sources {
		top := mapCenter
		if latRange > 0 {
			top = mapPadding + ((maxLat-src.Latitude)/latRange)*mapSpan
		}

		left := mapCenter
		if lonRange > 0 {
			left = mapPadding + ((src.Longitude-minLon)/lonRange)*mapSpan
		}

		pins = append(pins, domain.MapPin{
			PostID: src.PostID,
			Top:    top,
			Left:   left,
		})
	}

	return pins
}
