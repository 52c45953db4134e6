package persona

import "testing"

func TestMemoryStoreFindByID(t *testing.T) {
	store := NewMemoryStore(Seed())

	p, ok := store.FindByID("yara")
	if !ok {
		t.Fatal("expected seeded persona")
	}
	if p.Name != "Yara" {
		t.Fatalf("unexpected persona name %q", p.Name)
	}

	if _, ok := store.FindByID("missing"); ok {
		t.Fatal("expected missing persona lookup to fail")
	}
}

func TestMemoryStoreListIsCopy(t *testing.T) {
	store := NewMemoryStore(Seed())
	items := store.List()
	items[0].Name = "changed"

	if store.List()[0].Name != "Yara" {
		t.Fatal("List must not expose internal slice")
	}
}

func TestPersonaSuggestion(t *testing.T) {
	p := Seed()[0]

	first, ok := p.Suggestion(1)
	if !ok || first != p.Suggestions[0] {
		t.Fatalf("unexpected first suggestion %q (ok=%v)", first, ok)
	}
	if _, ok := p.Suggestion(0); ok {
		t.Fatal("index 0 must be rejected")
	}
	if _, ok := p.Suggestion(len(p.Suggestions) + 1); ok {
		t.Fatal("out of range index must be rejected")
	}
}

func TestMemoryStoreIgnoresDuplicatesAndCase(t *testing.T) {
	store := NewMemoryStore([]Persona{
		{ID: "yara", Name: "first"},
		{ID: "YARA", Name: "second"},
	})

	if got := len(store.List()); got != 1 {
		t.Fatalf("expected 1 persona, got %d", got)
	}
	p, ok := store.FindByID(" Yara ")
	if !ok || p.Name != "first" {
		t.Fatalf("unexpected lookup result %+v (ok=%v)", p, ok)
	}
}
