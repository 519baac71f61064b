package session

import (
	"context"
	"log/slog"
	"time"

	"workorder/internal/core/domain/model/ledger"
	"workorder/internal/core/domain/model/pricelist"
	"workorder/internal/core/ports"
	"workorder/internal/pkg/errs"
)

const (
	// DefaultLookupDelay is the quiet period after the last keystroke before
	// a catalog search is sent.
	DefaultLookupDelay = 250 * time.Millisecond

	lookupTimeout = 5 * time.Second
)

// MaterialLookup turns article-key keystrokes into debounced prefix searches
// against the price catalog. Each material row has its own debounce window, so
// typing in one row never delays or cancels a search for another.
//
// A search result is an ordered suggestion list, presented through the
// onSuggestions callback. The result is dropped without presentation when it
// is stale: the session was closed or reopened, the row was removed, or the
// row's article key no longer reads as the queried prefix. Applying a chosen
// suggestion goes through EditSession.ApplySuggestion.
type MaterialLookup struct {
	session  *EditSession
	catalog  ports.PriceCatalog
	debounce *Debouncer
	logger   *slog.Logger

	onSuggestions func(row int, suggestions []pricelist.Entry)
}

// NewMaterialLookup wires a lookup controller to an edit session. delay is the
// debounce window per row; onSuggestions receives the ordered suggestion list
// for a row once a search resolves and is still current.
func NewMaterialLookup(
	editSession *EditSession,
	catalog ports.PriceCatalog,
	delay time.Duration,
	logger *slog.Logger,
	onSuggestions func(row int, suggestions []pricelist.Entry),
) (*MaterialLookup, error) {
	if editSession == nil {
		return nil, errs.NewValueIsRequiredError("editSession")
	}
	if catalog == nil {
		return nil, errs.NewValueIsRequiredError("catalog")
	}
	if onSuggestions == nil {
		return nil, errs.NewValueIsRequiredError("onSuggestions")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if delay <= 0 {
		delay = DefaultLookupDelay
	}

	return &MaterialLookup{
		session:       editSession,
		catalog:       catalog,
		debounce:      NewDebouncer(delay),
		logger:        logger.With("component", "material-lookup"),
		onSuggestions: onSuggestions,
	}, nil
}

// EditArticleKey records a keystroke in the article-key field of a material
// row and schedules a debounced catalog search for the typed prefix. A blank
// prefix cancels any pending search for the row instead of querying.
func (l *MaterialLookup) EditArticleKey(row int, text string) {
	epoch, ok := l.session.editMaterialField(row, ledger.MaterialFieldArticleKey, text)
	if !ok {
		return
	}

	prefix := pricelist.NormalizeKey(text)
	if prefix == "" {
		l.debounce.Cancel(row)
		return
	}

	l.debounce.Trigger(row, func() {
		l.search(row, epoch, prefix)
	})
}

// Close cancels all pending searches. The controller must not be used after.
func (l *MaterialLookup) Close() {
	l.debounce.Close()
}

func (l *MaterialLookup) search(row int, epoch uint64, prefix string) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	suggestions, err := l.catalog.Search(ctx, prefix)
	if err != nil {
		l.logger.Warn("price catalog search failed", "prefix", prefix, "error", err)
		return
	}

	if !l.session.materialKeyCurrent(row, epoch, prefix) {
		return
	}

	l.onSuggestions(row, suggestions)
}
