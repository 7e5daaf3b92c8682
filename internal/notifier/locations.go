package notifier

import "strings"

// Venue is a known location with its public map link.
type Venue struct {
	DisplayName string
	MapLink     string
}

var venues = []Venue{
	{
		DisplayName: "Plan B - Sliema",
		MapLink:     "https://maps.app.goo.gl/planb-sliema",
	},
	{
		DisplayName: "Plan B - St Julian's",
		MapLink:     "https://maps.app.goo.gl/planb-stjulians",
	},
	{
		DisplayName: "Plan B - Valletta",
		MapLink:     "https://maps.app.goo.gl/planb-valletta",
	},
}

// ResolveLocation matches a free-text location descriptor against the venue
// table, case-insensitively. A no-match is a recognized outcome, not an
// error; callers decide how to render without a venue.
func ResolveLocation(descriptor string) (Venue, bool) {
	needle := strings.ToLower(descriptor)

	for _, venue := range venues {
		if strings.Contains(needle, strings.ToLower(venue.DisplayName)) {
			return venue, true
		}
	}

	return Venue{}, false
}
