package session_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"workorder/internal/core/application/session"
	"workorder/internal/core/domain/model/ledger"
	"workorder/internal/core/domain/model/pricelist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lookupTestDelay = 20 * time.Millisecond

type suggestionList struct {
	row     int
	entries []pricelist.Entry
}

func newTestLookup(
	t *testing.T,
	s *session.EditSession,
	catalog *stubCatalog,
) (*session.MaterialLookup, chan suggestionList) {
	t.Helper()

	delivered := make(chan suggestionList, 16)
	lookup, err := session.NewMaterialLookup(s, catalog, lookupTestDelay, nil,
		func(row int, entries []pricelist.Entry) {
			delivered <- suggestionList{row: row, entries: entries}
		})
	require.NoError(t, err)
	t.Cleanup(lookup.Close)

	return lookup, delivered
}

func awaitSuggestions(t *testing.T, delivered chan suggestionList) suggestionList {
	t.Helper()

	select {
	case s := <-delivered:
		return s
	case <-time.After(2 * time.Second):
		t.Fatal("search did not resolve in time")
		return suggestionList{}
	}
}

func assertNoSuggestions(t *testing.T, delivered chan suggestionList) {
	t.Helper()

	select {
	case s := <-delivered:
		t.Fatalf("unexpected suggestions for row %d", s.row)
	case <-time.After(5 * lookupTestDelay):
	}
}

func brakePad(t *testing.T) pricelist.Entry {
	t.Helper()
	entry, err := pricelist.NewEntry("EM 1234", "Brake pad", 129.50, "pcs")
	require.NoError(t, err)
	return entry
}

func brakeDisc(t *testing.T) pricelist.Entry {
	t.Helper()
	entry, err := pricelist.NewEntry("EM 1239", "Brake disc", 310.00, "pcs")
	require.NoError(t, err)
	return entry
}

func TestMaterialLookup_EditArticleKey(t *testing.T) {
	t.Run("should send one search for a burst of keystrokes and suggest matches", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendMaterial("", "", "4", "", "")

		var searches atomic.Int32
		matches := []pricelist.Entry{brakePad(t), brakeDisc(t)}
		catalog := &stubCatalog{search: func(_ context.Context, prefix string) ([]pricelist.Entry, error) {
			searches.Add(1)
			assert.Equal(t, "EM 123", prefix)
			return matches, nil
		}}
		lookup, delivered := newTestLookup(t, f.session, catalog)

		for _, text := range []string{"e", "em", "em 1", "em 12", "em 123"} {
			lookup.EditArticleKey(0, text)
		}

		s := awaitSuggestions(t, delivered)
		assert.Equal(t, 0, s.row)
		require.Len(t, s.entries, 2)
		assert.Equal(t, "EM 1234", s.entries[0].Key())
		assert.Equal(t, "EM 1239", s.entries[1].Key())
		assert.Equal(t, int32(1), searches.Load())
	})

	t.Run("should fill the row when a suggestion is picked", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendMaterial("", "", "4", "", "")

		entry := brakePad(t)
		catalog := &stubCatalog{search: func(_ context.Context, _ string) ([]pricelist.Entry, error) {
			return []pricelist.Entry{entry}, nil
		}}
		lookup, delivered := newTestLookup(t, f.session, catalog)

		lookup.EditArticleKey(0, "em 1234")
		s := awaitSuggestions(t, delivered)
		require.Len(t, s.entries, 1)

		f.session.ApplySuggestion(s.row, s.entries[0])

		rows := f.session.MaterialEntries()
		require.Len(t, rows, 1)
		assert.Equal(t, "em 1234", rows[0].ArticleKey())
		assert.Equal(t, "Brake pad", rows[0].Description())
		assert.InDelta(t, 518.0, f.session.MaterialTotal(), 1e-9)
	})

	t.Run("should cancel the pending search when the key is cleared", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendMaterial("", "", "1", "", "")

		var searches atomic.Int32
		catalog := &stubCatalog{search: func(_ context.Context, _ string) ([]pricelist.Entry, error) {
			searches.Add(1)
			return []pricelist.Entry{brakePad(t)}, nil
		}}
		lookup, _ := newTestLookup(t, f.session, catalog)

		lookup.EditArticleKey(0, "em 1234")
		lookup.EditArticleKey(0, "   ")

		time.Sleep(3 * lookupTestDelay)
		assert.Zero(t, searches.Load())
	})

	t.Run("should present an empty list when nothing matches", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendMaterial("", "", "1", "", "")

		catalog := &stubCatalog{search: func(_ context.Context, _ string) ([]pricelist.Entry, error) {
			return nil, nil
		}}
		lookup, delivered := newTestLookup(t, f.session, catalog)

		lookup.EditArticleKey(0, "nope")

		s := awaitSuggestions(t, delivered)
		assert.Equal(t, 0, s.row)
		assert.Empty(t, s.entries)

		rows := f.session.MaterialEntries()
		require.Len(t, rows, 1)
		assert.Empty(t, rows[0].Description())
		assert.Zero(t, f.session.MaterialTotal())
	})
}

func TestMaterialLookup_StaleResults(t *testing.T) {
	t.Run("should survive edits to other rows while in flight", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendMaterial("", "", "4", "", "")
		f.session.AppendMaterial("EM 9999", "Coupling", "1", "pcs", "50")

		release := make(chan struct{})
		entry := brakePad(t)
		catalog := &stubCatalog{search: func(_ context.Context, _ string) ([]pricelist.Entry, error) {
			<-release
			return []pricelist.Entry{entry}, nil
		}}
		lookup, delivered := newTestLookup(t, f.session, catalog)

		lookup.EditArticleKey(0, "em 1234")
		time.Sleep(3 * lookupTestDelay) // let the debounce fire and the search block

		f.session.UpdateMaterialField(1, ledger.MaterialFieldQuantity, "2")
		close(release)

		s := awaitSuggestions(t, delivered)
		assert.Equal(t, 0, s.row)
		require.Len(t, s.entries, 1)

		f.session.ApplySuggestion(s.row, s.entries[0])

		rows := f.session.MaterialEntries()
		require.Len(t, rows, 2)
		assert.Equal(t, "Brake pad", rows[0].Description())
		assert.Equal(t, float64(2), rows[1].Quantity())
	})

	t.Run("should drop a result when the row's key changed while in flight", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendMaterial("", "", "4", "", "")

		release := make(chan struct{})
		catalog := &stubCatalog{search: func(_ context.Context, _ string) ([]pricelist.Entry, error) {
			<-release
			return []pricelist.Entry{brakePad(t)}, nil
		}}
		lookup, delivered := newTestLookup(t, f.session, catalog)

		lookup.EditArticleKey(0, "em 1234")
		time.Sleep(3 * lookupTestDelay)

		f.session.UpdateMaterialField(0, ledger.MaterialFieldArticleKey, "tm 77")
		close(release)

		assertNoSuggestions(t, delivered)

		rows := f.session.MaterialEntries()
		require.Len(t, rows, 1)
		assert.Empty(t, rows[0].Description())
	})

	t.Run("should drop a result for a removed row", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendMaterial("", "", "4", "", "")

		release := make(chan struct{})
		catalog := &stubCatalog{search: func(_ context.Context, _ string) ([]pricelist.Entry, error) {
			<-release
			return []pricelist.Entry{brakePad(t)}, nil
		}}
		lookup, delivered := newTestLookup(t, f.session, catalog)

		lookup.EditArticleKey(0, "em 1234")
		time.Sleep(3 * lookupTestDelay)

		f.session.RemoveMaterialAt(0)
		close(release)

		assertNoSuggestions(t, delivered)
		assert.Empty(t, f.session.MaterialEntries())
	})

	t.Run("should drop a result that lands after close", func(t *testing.T) {
		f := openTestSession(t, nil, nil)
		f.session.AppendMaterial("", "", "4", "", "")

		release := make(chan struct{})
		catalog := &stubCatalog{search: func(_ context.Context, _ string) ([]pricelist.Entry, error) {
			<-release
			return []pricelist.Entry{brakePad(t)}, nil
		}}
		lookup, delivered := newTestLookup(t, f.session, catalog)

		lookup.EditArticleKey(0, "em 1234")
		time.Sleep(3 * lookupTestDelay)

		f.session.Close()
		close(release)

		assertNoSuggestions(t, delivered)
	})
}
