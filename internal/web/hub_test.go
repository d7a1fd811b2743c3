package web

import (
	"testing"

	"github.com/baboonytim/redsim/internal/sim"
)

func record(deckSize int) sim.SummaryRecord {
	return sim.SummaryRecord{
		Config: sim.SimulationConfig{DeckSize: deckSize},
		Trials: 100,
	}
}

func TestHubStoresPublishedRecords(t *testing.T) {
	hub := NewHub()
	hub.Publish(record(50))
	hub.Publish(record(57))

	records := hub.Records()
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Config.DeckSize != 50 || records[1].Config.DeckSize != 57 {
		t.Errorf("records out of order: %v", records)
	}

	// The returned slice is a copy.
	records[0] = record(99)
	if hub.Records()[0].Config.DeckSize != 50 {
		t.Error("caller mutation leaked into the hub")
	}
}

func TestHubDeliversToSubscribers(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(record(64))

	select {
	case rec := <-ch:
		if rec.Config.DeckSize != 64 {
			t.Errorf("received deck size %d", rec.Config.DeckSize)
		}
	default:
		t.Fatal("subscriber channel should hold the published record")
	}
}

func TestHubUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	cancel()

	hub.Publish(record(71))

	select {
	case <-ch:
		t.Fatal("cancelled subscriber should receive nothing")
	default:
	}
}

func TestHubRunStateTransitions(t *testing.T) {
	hub := NewHub()
	if hub.Running() {
		t.Error("new hub should not be running")
	}

	hub.Publish(record(50))
	hub.Reset()
	if !hub.Running() {
		t.Error("Reset should mark the run in progress")
	}
	if len(hub.Records()) != 0 {
		t.Error("Reset should clear stored records")
	}

	hub.Finish()
	if hub.Running() {
		t.Error("Finish should clear the running flag")
	}
}
