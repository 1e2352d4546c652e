package rvrpmodel

import (
	"fmt"
	"time"
)

// timeLayout is the external boundary format for Window strings:
// YYYY-MM-DDTHH:MM:SSZ (UTC), matching time.RFC3339 for a Z-suffixed
// offset.
const timeLayout = "2006-01-02T15:04:05Z"

// Point is an index into a distance/time matrix plus a geographic
// coordinate. Identity is by MatrixID; Lat/Lon are carried for callers
// that want to render or log a location, never consulted by the
// evaluator.
type Point struct {
	MatrixID int
	Lat      float64
	Lon      float64
}

// NewPoint constructs a Point bound to a matrix row/column index.
func NewPoint(matrixID int, lat, lon float64) Point {
	return Point{MatrixID: matrixID, Lat: lat, Lon: lon}
}

// Window is a half-open-free pair (start, end) of absolute Unix
// timestamps in seconds, inclusive on both ends.
type Window struct {
	Start int64
	End   int64
}

// NewWindow validates and constructs a Window from Unix seconds.
func NewWindow(start, end int64) (Window, error) {
	if end < start {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

// ParseWindow parses a Window from the external boundary format
// YYYY-MM-DDTHH:MM:SSZ (UTC) on both ends.
func ParseWindow(startStr, endStr string) (Window, error) {
	start, err := time.Parse(timeLayout, startStr)
	if err != nil {
		return Window{}, fmt.Errorf("rvrpmodel: parse window start: %w", err)
	}
	end, err := time.Parse(timeLayout, endStr)
	if err != nil {
		return Window{}, fmt.Errorf("rvrpmodel: parse window end: %w", err)
	}
	return NewWindow(start.Unix(), end.Unix())
}

// Contains reports whether t falls within [w.Start, w.End], inclusive.
func (w Window) Contains(t int64) bool {
	return w.Start <= t && t <= w.End
}

// String renders the Window back to the external boundary format.
func (w Window) String() string {
	return fmt.Sprintf("%s/%s",
		time.Unix(w.Start, 0).UTC().Format(timeLayout),
		time.Unix(w.End, 0).UTC().Format(timeLayout),
	)
}

// Cost is the three nonnegative scalars that price a Courier's work:
// a fixed start cost, a per-second rate, and a per-meter rate.
type Cost struct {
	Start  float64 // fixed cost applied once at route start
	Second float64 // rate per second of travel time
	Meter  float64 // rate per meter of distance
}

// NewCost constructs a Cost triple. Negative components are clamped to
// zero: a cost rate below zero has no sensible interpretation and
// would silently produce negative monetary values downstream.
func NewCost(start, second, meter float64) Cost {
	if start < 0 {
		start = 0
	}
	if second < 0 {
		second = 0
	}
	if meter < 0 {
		meter = 0
	}
	return Cost{Start: start, Second: second, Meter: meter}
}
