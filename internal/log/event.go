package log

// EventType enumerates all observable trial events.
type EventType int

const (
	EventShuffle EventType = iota
	EventDraw
	EventSoulPlaced
	EventRedraw
	EventBonusDraw
	EventTutorSearch
	EventUnderdeck
	EventDiscard
	EventExchange
	EventCoinPick
	EventMacguffinPlayed
	EventFizzle
	EventCrowdsBlock
	EventOutcome
)

func (e EventType) String() string {
	switch e {
	case EventShuffle:
		return "Shuffle"
	case EventDraw:
		return "Draw"
	case EventSoulPlaced:
		return "SoulPlaced"
	case EventRedraw:
		return "Redraw"
	case EventBonusDraw:
		return "BonusDraw"
	case EventTutorSearch:
		return "TutorSearch"
	case EventUnderdeck:
		return "Underdeck"
	case EventDiscard:
		return "Discard"
	case EventExchange:
		return "Exchange"
	case EventCoinPick:
		return "CoinPick"
	case EventMacguffinPlayed:
		return "MacguffinPlayed"
	case EventFizzle:
		return "Fizzle"
	case EventCrowdsBlock:
		return "CrowdsBlock"
	case EventOutcome:
		return "Outcome"
	default:
		return "Unknown"
	}
}

// TrialEvent represents a single observable event in a simulated trial.
type TrialEvent struct {
	Seq     int       // monotonic sequence number
	Trial   int       // trial index within the run (0-based)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
