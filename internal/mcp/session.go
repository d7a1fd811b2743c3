package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/baboonytim/redsim/internal/sim"
)

// Session holds the results of the most recent run so that get_results
// can replay them without recomputing. One session per stdio process.
type Session struct {
	mu      sync.Mutex
	records []sim.SummaryRecord
	label   string
}

// activeSession is the singleton simulation session.
var activeSession = &Session{}

// decklistFile is the path to the decklist YAML file, set by main.
var decklistFile string

// libraryFile is the path to the card library YAML file, set by main.
var libraryFile string

// SetDecklistFile sets the path to the decklist YAML file.
func SetDecklistFile(path string) {
	decklistFile = path
}

// SetLibraryFile sets the path to the card library YAML file.
func SetLibraryFile(path string) {
	libraryFile = path
}

func (s *Session) store(label string, records []sim.SummaryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.label = label
	s.records = records
}

func (s *Session) results() (string, []sim.SummaryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]sim.SummaryRecord, len(s.records))
	copy(out, s.records)
	return s.label, out
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Label   string              `json:"label,omitempty"`
	Records []sim.SummaryRecord `json:"records"`
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	if resp.Records == nil {
		resp.Records = []sim.SummaryRecord{}
	}
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal response: %v"}`, err)
	}
	return string(data)
}
