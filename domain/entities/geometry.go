package entities

// Coord is a point in the host's drawing coordinate space. The origin is
// the lower left corner of the main screen, Y grows upward.
type Coord struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Size is a width/height pair in the host's drawing units.
type Size struct {
	Width  int32 `json:"width" validate:"gte=0"`
	Height int32 `json:"height" validate:"gte=0"`
}

// Rect is a bounding box in the host's drawing coordinate space.
// Top is greater than Bottom: the host's Y axis grows upward.
type Rect struct {
	Left   int32 `json:"left"`
	Top    int32 `json:"top"`
	Right  int32 `json:"right"`
	Bottom int32 `json:"bottom"`
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns the vertical extent of the rect.
func (r Rect) Height() int32 { return r.Top - r.Bottom }

// Contains reports whether the coordinate lies inside the rect.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.Left && c.X <= r.Right && c.Y >= r.Bottom && c.Y <= r.Top
}
