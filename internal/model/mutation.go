package model

import "fmt"

// NoChange is the description of a mutation that left the word as it was.
const NoChange = "без изменений"

// MutationRecord is the result of one mutation attempt.
type MutationRecord struct {
	Source      string
	Produced    string
	Category    Category // category of Source as resolved for this mutation
	Description string
}

// Changed reports whether the mutation produced a different word.
func (r MutationRecord) Changed() bool {
	return r.Produced != r.Source
}

// HistoryEntry is one line of a run's mutation history.
type HistoryEntry struct {
	Generation     int
	Record         MutationRecord
	SourceCategory Category // category recorded on the source node
}

// String renders the entry in the history log format.
func (h HistoryEntry) String() string {
	return fmt.Sprintf("%s (%s) -> %s (%s): %s",
		h.Record.Source, h.SourceCategory,
		h.Record.Produced, h.Record.Category,
		h.Record.Description)
}
