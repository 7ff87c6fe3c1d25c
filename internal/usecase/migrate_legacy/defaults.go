package migrate_legacy

import "github.com/m04kA/SMC-HotelQuoteService/internal/domain"

type occupancyDefaults struct {
	beds          int
	baseOccupancy int
	maxTotal      int
	maxAdults     int
	maxKids       int
	overflowRule  domain.OverflowRule
}

var genericDefaults = occupancyDefaults{
	beds:          2,
	baseOccupancy: 2,
	maxTotal:      4,
	maxAdults:     3,
	maxKids:       3,
	overflowRule:  domain.OverflowKidsOnly,
}

var slugDefaults = map[string]occupancyDefaults{
	"single": genericDefaults,
	"double": {
		beds:          2,
		baseOccupancy: 2,
		maxTotal:      4,
		maxAdults:     4,
		maxKids:       3,
		overflowRule:  domain.OverflowAny,
	},
}

func defaultsFor(slug string) occupancyDefaults {
	if d, ok := slugDefaults[slug]; ok {
		return d
	}
	return genericDefaults
}
