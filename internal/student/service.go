package student

import "context"

// CodeStore is the slice of the student store code resolution needs.
type CodeStore interface {
	GetByCodes(ctx context.Context, codes []string) ([]Student, error)
}

// Resolver maps registration codes onto students for roster building.
type Resolver struct {
	store CodeStore
}

// NewResolver creates a resolver backed by a store.
func NewResolver(store CodeStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve returns the students for codes in input order, plus the codes
// that matched no student. Resolution is lookup only; callers that need
// distinct codes validate that before resolving.
func (r *Resolver) Resolve(ctx context.Context, codes []string) (resolved []Student, unknown []string, err error) {
	found, err := r.store.GetByCodes(ctx, codes)
	if err != nil {
		return nil, nil, err
	}
	byCode := make(map[string]Student, len(found))
	for _, s := range found {
		byCode[s.RegisterNo] = s
	}
	for _, code := range codes {
		s, ok := byCode[code]
		if !ok {
			unknown = append(unknown, code)
			continue
		}
		resolved = append(resolved, s)
	}
	return resolved, unknown, nil
}
