package models

// Intensity labels a movement. The set of valid labels comes from the
// configuration; the core treats the value as opaque.
type Intensity string

const (
	Gentle Intensity = "gentle"
	Giant  Intensity = "GIANT"
)

// Record is a single logged movement.
type Record struct {
	Key       string    `json:"key"`
	Time      string    `json:"time"`
	Intensity Intensity `json:"intensity"`
}

// Snapshot is the persisted mirror of the record log and display state.
type Snapshot struct {
	Records []Record `json:"records"`
	Date    string   `json:"date"`
	Tally   int      `json:"tally"`
}
