package config

import "github.com/surfwatch/surfbot/internal/models"

// DefaultSpots are the tracked LA County breaks.
func DefaultSpots() []models.Spot {
	return []models.Spot{
		{Name: "Annenberg/SM Pier", Slug: "Santa-Monica-Pier"},
		{Name: "Venice/Muscle Beach", Slug: "Venice-Breakwater"},
	}
}

// DefaultBeaches is the beach-mode location table: travel destinations plus
// the local SoCal favorites, with addresses for commute lookups where they
// exist.
func DefaultBeaches() []models.BeachLocation {
	return []models.BeachLocation{
		{
			Code:   "spo",
			Name:   "Sankt Peter-Ording",
			Region: models.RegionTravel,
			Focus:  []string{"wind", "tide"},
			Note:   "Check beach access - some areas close at high tide",
		},
		{
			Code:   "van",
			Name:   "Vancouver BC",
			Region: models.RegionTravel,
			Focus:  []string{"tide", "temp"},
			Spots:  []string{"English Bay", "Kitsilano", "Spanish Banks"},
		},
		{
			Code:      "pedro",
			StationID: "9410660",
			Name:      "San Pedro (Cabrillo)",
			Region:    models.RegionLocal,
			Latitude:  33.7084,
			Longitude: -118.2865,
			HasCoords: true,
			Address:   "Cabrillo Beach, San Pedro, CA",
		},
		{
			Code:      "paradise",
			StationID: "9410840",
			Name:      "Paradise Cove",
			Region:    models.RegionLocal,
			Latitude:  34.0142,
			Longitude: -118.7903,
			HasCoords: true,
			Address:   "Paradise Cove, Malibu, CA",
			Note:      "$$$ parking but worth it",
		},
		{
			Code:      "belmont",
			StationID: "9410660",
			Name:      "Belmont Shore",
			Region:    models.RegionLocal,
			Latitude:  33.7542,
			Longitude: -118.1445,
			HasCoords: true,
			Address:   "Belmont Shore, Long Beach, CA",
		},
		{
			Code:      "fletcher",
			StationID: "9410230",
			Name:      "Fletcher Cove",
			Region:    models.RegionLocal,
			Latitude:  32.9634,
			Longitude: -117.2710,
			HasCoords: true,
			Address:   "Fletcher Cove, Solana Beach, CA",
			Note:      "Solana Beach - great tide pools",
		},
		{
			Code:      "piedra",
			StationID: "9410840",
			Name:      "La Piedra",
			Region:    models.RegionLocal,
			Latitude:  34.0367,
			Longitude: -118.8394,
			HasCoords: true,
			Address:   "La Piedra State Beach, Malibu, CA",
			Note:      "Hidden Malibu gem",
		},
		{
			Code:      "oxnard",
			StationID: "9411065",
			Name:      "Oxnard Shores",
			Region:    models.RegionLocal,
			Latitude:  34.1692,
			Longitude: -119.2245,
			HasCoords: true,
			Address:   "Oxnard Shores, Oxnard, CA",
		},
		{
			Code:      "carp",
			StationID: "9411340",
			Name:      "Carpinteria State Beach",
			Region:    models.RegionLocal,
			Latitude:  34.3917,
			Longitude: -119.5181,
			HasCoords: true,
			Address:   "Carpinteria State Beach, Carpinteria, CA",
			Note:      "Calm waves, great for kids",
		},
		{
			Code:      "east",
			StationID: "9411340",
			Name:      "East Beach",
			Region:    models.RegionLocal,
			Latitude:  34.4133,
			Longitude: -119.6773,
			HasCoords: true,
			Address:   "East Beach, Santa Barbara, CA",
			Note:      "Santa Barbara's main beach",
		},
	}
}

// DefaultSchoolBreaks is the GUSD calendar. Update annually.
func DefaultSchoolBreaks() models.SchoolCalendar {
	return models.SchoolCalendar{
		{Start: "2025-11-25", End: "2025-11-29", Name: "Thanksgiving"},
		{Start: "2025-12-23", End: "2026-01-06", Name: "Winter Break"},
		{Start: "2026-01-20", End: "2026-01-20", Name: "MLK Day"},
		{Start: "2026-02-16", End: "2026-02-20", Name: "Presidents Week"},
		{Start: "2026-03-30", End: "2026-04-03", Name: "Spring Break"},
		{Start: "2026-05-25", End: "2026-05-25", Name: "Memorial Day"},
		{Start: "2026-06-11", End: "2026-08-15", Name: "Summer Break"},
	}
}

// DefaultCoastRegions lists the coast overview regions, south to north.
func DefaultCoastRegions() []string {
	return []string{"San-Diego", "Los-Angeles", "Santa-Barbara", "Central-Coast", "San-Francisco"}
}

// FindBeach looks a beach up by its short code.
func FindBeach(beaches []models.BeachLocation, code string) (models.BeachLocation, bool) {
	for _, b := range beaches {
		if b.Code == code {
			return b, true
		}
	}
	return models.BeachLocation{}, false
}
