package student

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type mockCodeStore struct {
	students []Student
	err      error
}

func (m *mockCodeStore) GetByCodes(ctx context.Context, codes []string) ([]Student, error) {
	if m.err != nil {
		return nil, m.err
	}
	// The store returns matches in arbitrary order.
	return m.students, nil
}

func TestResolver_Resolve(t *testing.T) {
	known := []Student{
		{ID: "s1", RegisterNo: "RA001"},
		{ID: "s2", RegisterNo: "RA002"},
		{ID: "s3", RegisterNo: "RA003"},
	}

	tests := []struct {
		name        string
		codes       []string
		wantIDs     []string
		wantUnknown []string
	}{
		{
			name:    "input order preserved",
			codes:   []string{"RA003", "RA001", "RA002"},
			wantIDs: []string{"s3", "s1", "s2"},
		},
		{
			name:        "unknown codes collected in order",
			codes:       []string{"RA001", "RA999", "RA888"},
			wantIDs:     []string{"s1"},
			wantUnknown: []string{"RA999", "RA888"},
		},
		{
			name:    "duplicate codes resolve per occurrence",
			codes:   []string{"RA002", "RA002"},
			wantIDs: []string{"s2", "s2"},
		},
		{
			name:        "all unknown",
			codes:       []string{"XX1", "XX2"},
			wantUnknown: []string{"XX1", "XX2"},
		},
	}

	r := NewResolver(&mockCodeStore{students: known})
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resolved, unknown, err := r.Resolve(context.Background(), test.codes)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			var gotIDs []string
			for _, s := range resolved {
				gotIDs = append(gotIDs, s.ID)
			}
			if !reflect.DeepEqual(gotIDs, test.wantIDs) {
				t.Errorf("resolved IDs = %v, want %v", gotIDs, test.wantIDs)
			}
			if !reflect.DeepEqual(unknown, test.wantUnknown) {
				t.Errorf("unknown = %v, want %v", unknown, test.wantUnknown)
			}
		})
	}
}

func TestResolver_StoreError(t *testing.T) {
	boom := errors.New("connection refused")
	r := NewResolver(&mockCodeStore{err: boom})
	_, _, err := r.Resolve(context.Background(), []string{"RA001"})
	if !errors.Is(err, boom) {
		t.Errorf("expected store error to surface, got %v", err)
	}
}
