package activity

import "testing"

func TestEventEncodeDecode(t *testing.T) {
	in := Event{
		Kind:     KindStatusChanged,
		TeamID:   "11111111-2222-3333-4444-555555555555",
		TeamName: "gophers",
		Detail:   "REGISTERED -> SHORTLISTED",
	}
	out, err := Decode(in.Encode())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if out != in {
		t.Errorf("decoded = %+v, want %+v", out, in)
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode([]byte("not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}
