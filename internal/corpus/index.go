package corpus

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"memoscan/internal/cache"
)

// Index maps a normalized source document name to its page (or slide)
// contents. Page numbers are unique within a document. The index is
// built once per raw source text and shared read-only afterward.
type Index map[string]map[int]string

// Documents returns document names in sorted order
func (idx Index) Documents() []string {
	docs := make([]string, 0, len(idx))
	for doc := range idx {
		docs = append(docs, doc)
	}
	sort.Strings(docs)
	return docs
}

// Pages returns the page numbers of a document in ascending order
func (idx Index) Pages(doc string) []int {
	pages := make([]int, 0, len(idx[doc]))
	for n := range idx[doc] {
		pages = append(pages, n)
	}
	sort.Ints(pages)
	return pages
}

// PageCount returns the total number of indexed pages across documents
func (idx Index) PageCount() int {
	n := 0
	for _, pages := range idx {
		n += len(pages)
	}
	return n
}

// markerPattern matches the page/slide markers the extraction step emits:
//
//	SOURCE_FILE: <name>
//	PAGE <n>            (or SLIDE <n>)
//	========================================
//
// A "page" and a "slide" are equivalent for indexing purposes.
var markerPattern = regexp.MustCompile(`SOURCE_FILE:[ \t]*([^\n]+?)[ \t]*\n(?:PAGE|SLIDE)[ \t]*(\d+)[ \t]*\n={40,}[ \t]*\n`)

// Indexer builds page indexes from raw extracted text, memoizing by
// content hash. Indexing is cheap but is re-entered dozens of times per
// field, so repeated calls on the same text return the cached index.
type Indexer struct {
	store cache.Store
}

// NewIndexer creates an indexer backed by the given per-run store
func NewIndexer(store cache.Store) *Indexer {
	if store == nil {
		store = cache.NewMemoryStore()
	}
	return &Indexer{store: store}
}

// Index parses raw page/slide-tagged text into an Index. Returns an
// empty index when no markers are present.
func (ix *Indexer) Index(raw string) Index {
	key := cache.Key(raw)
	if cached, ok := ix.store.Get(key); ok {
		if idx, ok := cached.(Index); ok {
			return idx
		}
	}

	idx := parse(raw)
	ix.store.Set(key, idx)
	return idx
}

// Invalidate drops the cached index for the given raw text. Call it
// when a new source text is supplied for a different company.
func (ix *Indexer) Invalidate(raw string) {
	ix.store.Delete(cache.Key(raw))
}

func parse(raw string) Index {
	idx := make(Index)
	if raw == "" {
		return idx
	}

	matches := markerPattern.FindAllStringSubmatchIndex(raw, -1)
	for i, m := range matches {
		doc := strings.ToLower(strings.TrimSpace(raw[m[2]:m[3]]))
		page, err := strconv.Atoi(raw[m[4]:m[5]])
		if err != nil || page <= 0 {
			continue
		}

		// Content runs from the end of this marker to the start of
		// the next one, or end of input
		start := m[1]
		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		content := strings.TrimSpace(raw[start:end])

		if idx[doc] == nil {
			idx[doc] = make(map[int]string)
		}
		idx[doc][page] = content
	}

	return idx
}
