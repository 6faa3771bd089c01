package queue

import (
	"context"
	"testing"
	"time"
)

func TestInMemory_PublishConsume(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewInMemory(4)
	messages, err := q.Consume(ctx)
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}

	want := []Message{
		{Type: "team.created", Body: []byte(`{"team_id":"t1"}`)},
		{Type: "team.deleted", Body: []byte(`{"team_id":"t2"}`)},
	}
	for _, msg := range want {
		if err := q.Publish(ctx, msg); err != nil {
			t.Fatalf("Publish failed: %v", err)
		}
	}

	for i, w := range want {
		select {
		case got := <-messages:
			if got.Type != w.Type || string(got.Body) != string(w.Body) {
				t.Errorf("message %d = %+v, want %+v", i, got, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for message %d", i)
		}
	}
}

func TestInMemory_ConsumeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	q := NewInMemory(1)
	messages, err := q.Consume(ctx)
	if err != nil {
		t.Fatalf("Consume failed: %v", err)
	}

	cancel()
	select {
	case _, open := <-messages:
		if open {
			t.Error("expected channel to close after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("consume channel did not close after cancel")
	}
}

func TestInMemory_PublishBlockedByFullQueue(t *testing.T) {
	q := NewInMemory(1)
	if err := q.Publish(context.Background(), Message{Type: "a"}); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := q.Publish(ctx, Message{Type: "b"}); err == nil {
		t.Error("expected context error publishing to a full queue")
	}
}
