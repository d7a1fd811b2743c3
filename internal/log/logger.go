package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging trial events.
type EventLogger interface {
	Log(event TrialEvent)
	Events() []TrialEvent
}

// --- NopLogger: discards everything; used for bulk Monte Carlo runs ---

type NopLogger struct{}

func NewNopLogger() *NopLogger { return &NopLogger{} }

func (*NopLogger) Log(TrialEvent)        {}
func (*NopLogger) Events() []TrialEvent { return nil }

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []TrialEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event TrialEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []TrialEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []TrialEvent {
	var result []TrialEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() TrialEvent {
	if len(l.events) == 0 {
		return TrialEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event TrialEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e TrialEvent) string {
	typ := e.Type.String()
	// Pad type to 16 chars for alignment
	for len(typ) < 16 {
		typ += " "
	}
	return fmt.Sprintf("trial %-4d %s| %s", e.Trial, typ, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []TrialEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewShuffleEvent(trial, deckSize int) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventShuffle,
		Details: fmt.Sprintf("deck of %d shuffled", deckSize),
	}
}

func NewDrawEvent(trial int, cardName string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("draws %s", cardName),
	}
}

func NewSoulPlacedEvent(trial int, cardName string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventSoulPlaced,
		Card:    cardName,
		Details: fmt.Sprintf("%s is placed in territory", cardName),
	}
}

func NewRedrawEvent(trial int, cardName string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventRedraw,
		Card:    cardName,
		Details: fmt.Sprintf("redraws %s for a placed lost soul", cardName),
	}
}

func NewBonusDrawEvent(trial, n int, source string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventBonusDraw,
		Card:    source,
		Details: fmt.Sprintf("%s grants a bonus draw of %d", source, n),
	}
}

func NewTutorSearchEvent(trial int, cardName string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventTutorSearch,
		Card:    cardName,
		Details: fmt.Sprintf("tutor searches out %s", cardName),
	}
}

func NewTutorWhiffEvent(trial int) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventTutorSearch,
		Details: "tutor searches and fails to find",
	}
}

func NewUnderdeckEvent(trial int, cardName string, source string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventUnderdeck,
		Card:    cardName,
		Details: fmt.Sprintf("%s bottoms %s", source, cardName),
	}
}

func NewDiscardEvent(trial int, cardName string, source string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s discards %s", source, cardName),
	}
}

func NewExchangeEvent(trial int, cardName string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventExchange,
		Card:    cardName,
		Details: fmt.Sprintf("Virgin Birth exchanges itself for %s", cardName),
	}
}

func NewCoinPickEvent(trial int, cardName string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventCoinPick,
		Card:    cardName,
		Details: fmt.Sprintf("Four Drachma Coin picks %s", cardName),
	}
}

func NewMacguffinPlayedEvent(trial int, cardName string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventMacguffinPlayed,
		Card:    cardName,
		Details: fmt.Sprintf("%s is put in play", cardName),
	}
}

func NewFizzleEvent(trial int) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventFizzle,
		Details: "opponent draw engine fizzles this turn",
	}
}

func NewCrowdsBlockEvent(trial int) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventCrowdsBlock,
		Details: "crowds lost soul blocks the opponent draw engine",
	}
}

func NewOutcomeEvent(trial int, details string) TrialEvent {
	return TrialEvent{
		Trial:   trial,
		Type:    EventOutcome,
		Details: details,
	}
}
