package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mcnbt/document"
	"github.com/arloliu/mcnbt/errs"
	"github.com/arloliu/mcnbt/nbt"
	"github.com/arloliu/mcnbt/region"
)

func newDoc(t *testing.T) *document.Document {
	t.Helper()

	root := nbt.NewCompound()
	root.Set("foo", nbt.String("Hello!"))
	doc, err := document.New("", root)
	require.NoError(t, err)

	return doc
}

func TestSession_Lifecycle(t *testing.T) {
	s := New()

	doc := newDoc(t)
	dh, err := s.AddDocument(doc)
	require.NoError(t, err)
	require.NotZero(t, dh)

	reg, err := region.New()
	require.NoError(t, err)
	rh, err := s.AddRegion(reg)
	require.NoError(t, err)
	require.NotEqual(t, dh, rh)
	require.Equal(t, 2, s.Len())

	gotDoc, err := s.Document(dh)
	require.NoError(t, err)
	require.Same(t, doc, gotDoc)

	gotReg, err := s.Region(rh)
	require.NoError(t, err)
	require.Same(t, reg, gotReg)

	require.NoError(t, s.Release(dh))
	require.Equal(t, 1, s.Len())

	_, err = s.Document(dh)
	require.ErrorIs(t, err, errs.ErrInvalidHandle)
	require.ErrorIs(t, s.Release(dh), errs.ErrInvalidHandle)
}

func TestSession_InvalidHandles(t *testing.T) {
	s := New()

	_, err := s.Document(0)
	require.ErrorIs(t, err, errs.ErrInvalidHandle)
	_, err = s.Region(42)
	require.ErrorIs(t, err, errs.ErrInvalidHandle)

	dh, err := s.AddDocument(newDoc(t))
	require.NoError(t, err)

	_, err = s.Region(dh)
	require.ErrorIs(t, err, errs.ErrInvalidHandle)
	require.Contains(t, err.Error(), "is a document")

	_, err = s.AddDocument(nil)
	require.ErrorIs(t, err, errs.ErrNilTag)
	_, err = s.AddRegion(nil)
	require.ErrorIs(t, err, errs.ErrNilTag)
}

func TestSession_Close(t *testing.T) {
	s := New()

	h, err := s.AddDocument(newDoc(t))
	require.NoError(t, err)

	s.Close()
	require.Zero(t, s.Len())

	_, err = s.Document(h)
	require.ErrorIs(t, err, errs.ErrInvalidHandle)

	_, err = s.AddDocument(newDoc(t))
	require.ErrorIs(t, err, errs.ErrInvalidHandle)
}

func TestSession_Concurrent(t *testing.T) {
	s := New()
	doc := newDoc(t)

	const workers = 8
	var wg sync.WaitGroup
	handles := make([][]Handle, workers)
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				h, err := s.AddDocument(doc)
				if err != nil {
					t.Error(err)
					return
				}
				handles[w] = append(handles[w], h)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, workers*100, s.Len())

	seen := make(map[Handle]bool)
	for _, hs := range handles {
		for _, h := range hs {
			require.False(t, seen[h])
			seen[h] = true
		}
	}
}
