package track

import "fmt"

// Bounds represents segment coordinate boundaries
type Bounds struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%.5f,%.5f]-[%.5f,%.5f]", b.MinLat, b.MinLng, b.MaxLat, b.MaxLng)
}
