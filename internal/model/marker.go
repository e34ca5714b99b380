package model

// Marker is a manual reconciliation flag on a transaction.
type Marker string

const (
	MarkerGreenCheck Marker = "GREEN_CHECK"
	MarkerG          Marker = "G"
	MarkerG2         Marker = "G2"
	MarkerD          Marker = "D"
	MarkerD2         Marker = "D2"
	MarkerC          Marker = "C" // bank-confirmed ("pointé")
	MarkerNone       Marker = "NONE"
)

// markerRank is the fixed sort precedence. Unknown markers sort last.
var markerRank = map[Marker]int{
	MarkerGreenCheck: 0,
	MarkerG:          1,
	MarkerG2:         2,
	MarkerD:          3,
	MarkerD2:         4,
	MarkerC:          5,
	MarkerNone:       6,
}

// Rank returns the marker's sort precedence; unknown markers rank after
// every known one.
func (m Marker) Rank() int {
	if r, ok := markerRank[m]; ok {
		return r
	}
	return len(markerRank)
}

// Markers lists all known markers in precedence order.
func Markers() []Marker {
	return []Marker{MarkerGreenCheck, MarkerG, MarkerG2, MarkerD, MarkerD2, MarkerC, MarkerNone}
}
