package orderfeed

import (
	"encoding/json"
	"testing"
	"time"

	"sartor/models"
)

func TestHubRegisterPublishUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 10)}
	hub.register <- client

	event := models.OrderEvent{
		Type:        "status",
		OrderID:     "o1",
		OrderNumber: "ORD-001",
		Status:      "confirmed",
	}
	hub.Publish(event)

	select {
	case got := <-client.Send:
		var decoded models.OrderEvent
		if err := json.Unmarshal(got, &decoded); err != nil {
			t.Fatalf("broadcast is not valid JSON: %v", err)
		}
		if decoded.OrderNumber != "ORD-001" || decoded.Status != "confirmed" {
			t.Fatalf("unexpected event: %+v", decoded)
		}
		if decoded.At.IsZero() {
			t.Fatal("expected a populated timestamp")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	hub.unregister <- client
}

func TestStoppedHubRefusesClients(t *testing.T) {
	// a stopped hub has no Run loop draining register; add and remove
	// must return instead of blocking a connection goroutine forever
	hub := NewHub()
	hub.Stop()

	accepted := make(chan bool, 1)
	go func() { accepted <- hub.add(&Client{Send: make(chan []byte, 1)}) }()

	select {
	case ok := <-accepted:
		if ok {
			t.Fatal("stopped hub accepted a client")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("add blocked on a stopped hub")
	}

	returned := make(chan struct{})
	go func() {
		hub.remove(&Client{})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(1 * time.Second):
		t.Fatal("remove blocked on a stopped hub")
	}
}

func TestSlowClientIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// no buffer and no reader: first publish must evict, not block
	stuck := &Client{Send: make(chan []byte)}
	hub.register <- stuck

	hub.Publish(models.OrderEvent{Type: "created", OrderID: "o1"})
	hub.Publish(models.OrderEvent{Type: "created", OrderID: "o2"})

	healthy := &Client{Send: make(chan []byte, 10)}
	hub.register <- healthy
	hub.Publish(models.OrderEvent{Type: "created", OrderID: "o3"})

	select {
	case <-healthy.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("healthy client did not receive after slow client eviction")
	}
}
