package challenge

import (
	"context"
	"fmt"
	"sync"

	"github.com/miekg/dns"
)

// --- Fake resolver ---

type fakeAnswer struct {
	records []string
	err     error
}

// fakeResolver answers from a table keyed by "name TYPE" and records calls.
// Missing entries answer with ErrNXDomain.
type fakeResolver struct {
	mu      sync.Mutex
	answers map[string]fakeAnswer
	calls   []string
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{answers: map[string]fakeAnswer{}}
}

func (f *fakeResolver) set(name string, qtype uint16, records []string, err error) *fakeResolver {
	f.answers[name+" "+dns.TypeToString[qtype]] = fakeAnswer{records: records, err: err}
	return f
}

func (f *fakeResolver) Lookup(_ context.Context, name string, qtype uint16) ([]string, error) {
	key := name + " " + dns.TypeToString[qtype]
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)
	a, ok := f.answers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNXDomain, name)
	}
	return a.records, a.err
}

func (f *fakeResolver) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
