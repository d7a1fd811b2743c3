package log

import (
	"strings"
	"testing"
)

func TestMemoryLoggerSequencesEvents(t *testing.T) {
	l := NewMemoryLogger()
	l.Log(NewShuffleEvent(0, 50))
	l.Log(NewDrawEvent(0, "Filler"))
	l.Log(NewDrawEvent(0, "Matthew"))

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	for i, e := range events {
		if e.Seq != i+1 {
			t.Errorf("event %d has seq %d", i, e.Seq)
		}
	}

	draws := l.EventsOfType(EventDraw)
	if len(draws) != 2 {
		t.Errorf("expected 2 draw events, got %d", len(draws))
	}
	if last := l.LastEvent(); last.Card != "Matthew" {
		t.Errorf("last event card = %q", last.Card)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	l := NewNopLogger()
	l.Log(NewDrawEvent(0, "Filler"))
	if l.Events() != nil {
		t.Error("nop logger should store nothing")
	}
}

func TestTextLoggerWritesLines(t *testing.T) {
	var sb strings.Builder
	l := NewTextLogger(&sb)
	l.Log(NewSoulPlacedEvent(3, "Meek Lost Soul"))

	out := sb.String()
	if !strings.Contains(out, "trial 3") {
		t.Errorf("missing trial index: %q", out)
	}
	if !strings.Contains(out, "Meek Lost Soul is placed in territory") {
		t.Errorf("missing detail text: %q", out)
	}
	// The memory side still records for assertions.
	if len(l.Events()) != 1 {
		t.Errorf("expected 1 stored event, got %d", len(l.Events()))
	}
}

func TestFormatAllOneLinePerEvent(t *testing.T) {
	events := []TrialEvent{
		NewShuffleEvent(0, 50),
		NewFizzleEvent(0),
		NewOutcomeEvent(0, "macguffin_in_play=false"),
	}
	out := FormatAll(events)
	if got := strings.Count(out, "\n"); got != len(events) {
		t.Errorf("expected %d lines, got %d", len(events), got)
	}
}
