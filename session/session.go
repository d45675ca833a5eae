// Package session maps opaque handles to decoded documents and regions.
//
// A Session is owned by the caller; there is no package-level registry. It is
// meant for hosts (bindings, RPC servers) that hand integer handles across a
// boundary instead of Go pointers.
package session

import (
	"fmt"
	"sync"

	"github.com/arloliu/mcnbt/document"
	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/region"
)

// Handle identifies an object stored in a Session. The zero Handle is never
// issued.
type Handle uint64

type kind uint8

const (
	kindDocument kind = iota + 1
	kindRegion
)

func (k kind) String() string {
	switch k {
	case kindDocument:
		return "document"
	case kindRegion:
		return "region"
	default:
		return "unknown"
	}
}

type entry struct {
	kind kind
	doc  *document.Document
	reg  *region.Region
}

// Session is a handle registry. All methods are safe for concurrent use; the
// stored objects themselves are not.
type Session struct {
	mu      sync.Mutex
	next    Handle
	entries map[Handle]entry
	closed  bool
}

// New creates an empty session.
func New() *Session {
	return &Session{entries: make(map[Handle]entry)}
}

// AddDocument stores doc and returns its handle.
func (s *Session) AddDocument(doc *document.Document) (Handle, error) {
	if doc == nil {
		return 0, errs.ErrNilTag
	}

	return s.add(entry{kind: kindDocument, doc: doc})
}

// AddRegion stores r and returns its handle.
func (s *Session) AddRegion(r *region.Region) (Handle, error) {
	if r == nil {
		return 0, errs.ErrNilTag
	}

	return s.add(entry{kind: kindRegion, reg: r})
}

func (s *Session) add(e entry) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, fmt.Errorf("%w: session closed", errs.ErrInvalidHandle)
	}
	s.next++
	s.entries[s.next] = e

	return s.next, nil
}

// Document returns the document stored under h.
func (s *Session) Document(h Handle) (*document.Document, error) {
	e, err := s.lookup(h, kindDocument)
	if err != nil {
		return nil, err
	}

	return e.doc, nil
}

// Region returns the region stored under h.
func (s *Session) Region(h Handle) (*region.Region, error) {
	e, err := s.lookup(h, kindRegion)
	if err != nil {
		return nil, err
	}

	return e.reg, nil
}

func (s *Session) lookup(h Handle, want kind) (entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[h]
	if !ok {
		return entry{}, fmt.Errorf("%w: %d", errs.ErrInvalidHandle, h)
	}
	if e.kind != want {
		return entry{}, fmt.Errorf("%w: %d is a %s, not a %s", errs.ErrInvalidHandle, h, e.kind, want)
	}

	return e, nil
}

// Release drops the object stored under h. Releasing a handle twice is an
// error.
func (s *Session) Release(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[h]; !ok {
		return fmt.Errorf("%w: %d", errs.ErrInvalidHandle, h)
	}
	delete(s.entries, h)

	return nil
}

// Len returns the number of live handles.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Close releases every handle. Handles are not reused after Close and further
// Add calls fail.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.entries)
	s.closed = true
}
