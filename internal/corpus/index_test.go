package corpus

import (
	"strings"
	"testing"
)

const sep = "========================================" // 40 chars

func marker(doc string, kind string, page string) string {
	return "SOURCE_FILE: " + doc + "\n" + kind + " " + page + "\n" + sep + "\n"
}

func TestIndexer_Index_PagesAndSlides(t *testing.T) {
	raw := marker("Deck.pdf", "SLIDE", "1") + "Acme Corp overview\n\n" +
		marker("Deck.pdf", "SLIDE", "2") + "Founded in 2020 in Austin, TX\n\n" +
		marker("Financials.pdf", "PAGE", "1") + "Revenue of $2M ARR\n"

	idx := NewIndexer(nil).Index(raw)

	if got := idx.PageCount(); got != 3 {
		t.Fatalf("PageCount() = %d, want 3", got)
	}

	docs := idx.Documents()
	if len(docs) != 2 || docs[0] != "deck.pdf" || docs[1] != "financials.pdf" {
		t.Errorf("Documents() = %v, want [deck.pdf financials.pdf]", docs)
	}

	if got := idx["deck.pdf"][2]; got != "Founded in 2020 in Austin, TX" {
		t.Errorf("deck.pdf page 2 = %q", got)
	}
	if got := idx["financials.pdf"][1]; got != "Revenue of $2M ARR" {
		t.Errorf("financials.pdf page 1 = %q", got)
	}
}

func TestIndexer_Index_NormalizesDocumentNames(t *testing.T) {
	raw := marker("  Pitch DECK.pdf  ", "PAGE", "3") + "content here"

	idx := NewIndexer(nil).Index(raw)

	if _, ok := idx["pitch deck.pdf"]; !ok {
		t.Fatalf("expected normalized document name, got %v", idx.Documents())
	}
	if pages := idx.Pages("pitch deck.pdf"); len(pages) != 1 || pages[0] != 3 {
		t.Errorf("Pages() = %v, want [3]", pages)
	}
}

func TestIndexer_Index_NoMarkers(t *testing.T) {
	idx := NewIndexer(nil).Index("plain text with no source markers at all")

	if idx.PageCount() != 0 {
		t.Errorf("PageCount() = %d, want 0", idx.PageCount())
	}
}

func TestIndexer_Index_EmptyInput(t *testing.T) {
	idx := NewIndexer(nil).Index("")

	if idx == nil {
		t.Fatal("Index() returned nil, want empty index")
	}
	if idx.PageCount() != 0 {
		t.Errorf("PageCount() = %d, want 0", idx.PageCount())
	}
}

func TestIndexer_Index_ShortSeparatorIgnored(t *testing.T) {
	// Separators shorter than 40 chars are not page markers
	raw := "SOURCE_FILE: deck.pdf\nPAGE 1\n" + strings.Repeat("=", 10) + "\ncontent"

	idx := NewIndexer(nil).Index(raw)

	if idx.PageCount() != 0 {
		t.Errorf("PageCount() = %d, want 0 for short separator", idx.PageCount())
	}
}

func TestIndexer_Index_Memoized(t *testing.T) {
	raw := marker("deck.pdf", "PAGE", "1") + "content"
	ix := NewIndexer(nil)

	first := ix.Index(raw)
	second := ix.Index(raw)

	// Same map instance comes back from the cache
	if second.PageCount() != first.PageCount() {
		t.Fatalf("memoized index differs: %d vs %d pages", second.PageCount(), first.PageCount())
	}
	first["deck.pdf"][99] = "sentinel"
	if _, ok := second["deck.pdf"][99]; !ok {
		t.Error("expected second Index() call to return the cached instance")
	}
}

func TestIndexer_Invalidate(t *testing.T) {
	raw := marker("deck.pdf", "PAGE", "1") + "content"
	ix := NewIndexer(nil)

	first := ix.Index(raw)
	first["deck.pdf"][99] = "sentinel"

	ix.Invalidate(raw)

	rebuilt := ix.Index(raw)
	if _, ok := rebuilt["deck.pdf"][99]; ok {
		t.Error("expected Invalidate to force a rebuild")
	}
}

func TestIndexer_Index_LaterPageWins(t *testing.T) {
	raw := marker("deck.pdf", "PAGE", "1") + "first version\n\n" +
		marker("deck.pdf", "PAGE", "1") + "second version\n"

	idx := NewIndexer(nil).Index(raw)

	if got := idx["deck.pdf"][1]; got != "second version" {
		t.Errorf("duplicate page content = %q, want %q", got, "second version")
	}
}
