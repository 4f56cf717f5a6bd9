// Package tour drives the virtual museum tour: an ordered sequence of
// stops resolved against a panorama index. A stop with no panorama
// nearby falls back to its raw coordinate instead of rendering nothing.
package tour

import (
	"errors"
	"math"
	"sync"
)

// MaxPanoramaDistanceMeters bounds the nearest-panorama search. Beyond
// this radius the stop renders from its coordinate alone.
const MaxPanoramaDistanceMeters = 500.0

var ErrNoStops = errors.New("tour has no stops")
var ErrStopOutOfRange = errors.New("stop index out of range")

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Stop struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Position    Coordinate `json:"position"`
	PanoramaID  *string    `json:"panorama_id,omitempty"`
	Heading     *float64   `json:"heading,omitempty"`
	Pitch       *float64   `json:"pitch,omitempty"`
	Zoom        *float64   `json:"zoom,omitempty"`
	Description *string    `json:"description,omitempty"`
}

type Panorama struct {
	ID       string     `json:"id"`
	Position Coordinate `json:"position"`
}

// View is a resolved stop: either a panorama to render or, when
// PanoramaID is nil, the raw coordinate fallback.
type View struct {
	Stop       Stop       `json:"stop"`
	Index      int        `json:"index"`
	PanoramaID *string    `json:"panorama_id,omitempty"`
	Position   Coordinate `json:"position"`
}

// Index resolves coordinates to the nearest registered panorama.
type Index struct {
	panoramas []Panorama
}

func NewIndex(panoramas []Panorama) *Index {
	return &Index{panoramas: panoramas}
}

// Nearest returns the closest panorama within the bounded radius. The
// bool is false when nothing is close enough; callers must fall back
// to the raw coordinate rather than failing.
func (i *Index) Nearest(pos Coordinate) (Panorama, bool) {
	best := -1
	bestDistance := math.Inf(1)
	for j := range i.panoramas {
		d := haversineMeters(pos, i.panoramas[j].Position)
		if d < bestDistance {
			best = j
			bestDistance = d
		}
	}

	if best < 0 || bestDistance > MaxPanoramaDistanceMeters {
		return Panorama{}, false
	}

	return i.panoramas[best], true
}

const earthRadiusMeters = 6371000.0

func haversineMeters(a, b Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Tour walks an ordered stop sequence. Next wraps around, which is
// what the autoplay timer leans on.
type Tour struct {
	index *Index
	stops []Stop

	mu      sync.Mutex
	current int
}

func New(stops []Stop, index *Index) (*Tour, error) {
	if len(stops) == 0 {
		return nil, ErrNoStops
	}

	return &Tour{stops: stops, index: index}, nil
}

func (t *Tour) Stops() []Stop {
	out := make([]Stop, len(t.stops))
	copy(out, t.stops)
	return out
}

// Jump moves the tour to the given stop index and resolves its view.
func (t *Tour) Jump(i int) (View, error) {
	if i < 0 || i >= len(t.stops) {
		return View{}, ErrStopOutOfRange
	}

	t.mu.Lock()
	t.current = i
	t.mu.Unlock()

	return t.resolve(i), nil
}

// Next advances to the following stop, wrapping at the end.
func (t *Tour) Next() View {
	t.mu.Lock()
	t.current = (t.current + 1) % len(t.stops)
	i := t.current
	t.mu.Unlock()

	return t.resolve(i)
}

func (t *Tour) resolve(i int) View {
	stop := t.stops[i]
	view := View{Stop: stop, Index: i, Position: stop.Position}

	// An explicit panorama on the stop wins over proximity search.
	if stop.PanoramaID != nil {
		view.PanoramaID = stop.PanoramaID
		return view
	}

	if pano, ok := t.index.Nearest(stop.Position); ok {
		view.PanoramaID = &pano.ID
		view.Position = pano.Position
		return view
	}

	return view
}
