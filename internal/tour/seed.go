package tour

func ptr[T any](v T) *T { return &v }

// SeedStops is the compiled-in tour route through the museum grounds.
func SeedStops() []Stop {
	return []Stop{
		{
			ID:          "stop-entrance",
			Title:       "Main entrance and eternal flame",
			Position:    Coordinate{Lat: 23.7772, Lon: 90.4051},
			Heading:     ptr(120.0),
			Description: ptr("Start of the tour, facing the eternal flame."),
		},
		{
			ID:         "stop-courtyard",
			Title:      "Central courtyard",
			Position:   Coordinate{Lat: 23.7774, Lon: 90.4056},
			PanoramaID: ptr("pano-courtyard"),
			Pitch:      ptr(-5.0),
			Zoom:       ptr(1.2),
		},
		{
			ID:          "stop-gallery-2",
			Title:       "Gallery 2: arms and equipment",
			Position:    Coordinate{Lat: 23.7776, Lon: 90.4049},
			Description: ptr("The weapons gallery, reopened after conservation."),
		},
		{
			ID:       "stop-memorial-garden",
			Title:    "Memorial garden",
			Position: Coordinate{Lat: 23.7841, Lon: 90.4120},
		},
	}
}

// SeedPanoramas is the panorama coverage of the grounds. The memorial
// garden stop has no panorama within range on purpose; it exercises
// the coordinate fallback.
func SeedPanoramas() []Panorama {
	return []Panorama{
		{ID: "pano-entrance", Position: Coordinate{Lat: 23.7771, Lon: 90.4052}},
		{ID: "pano-courtyard", Position: Coordinate{Lat: 23.7775, Lon: 90.4055}},
		{ID: "pano-gallery-2", Position: Coordinate{Lat: 23.7776, Lon: 90.4050}},
	}
}
