package httpmiddleware

import "testing"

func TestTokenBucket_Allow(t *testing.T) {
	l := NewTokenBucket(3, 60)

	for i := 0; i < 3; i++ {
		if !l.allow("10.0.0.1") {
			t.Fatalf("request %d should be within capacity", i)
		}
	}
	if l.allow("10.0.0.1") {
		t.Error("request past capacity should be rejected")
	}
	if !l.allow("10.0.0.2") {
		t.Error("limits must be tracked per key")
	}
}
