package contact

import "testing"

const sampleResume = `Jane Smith
Senior Data Engineer
jane.smith@example.com | +1 (415) 555-0134
linkedin.com/in/janesmith

EXPERIENCE
Built streaming pipelines at Acme Corp.`

func TestFromText(t *testing.T) {
	info := FromText(sampleResume)

	if info.Name != "Jane Smith" {
		t.Fatalf("expected name Jane Smith, got %q", info.Name)
	}
	if info.Email != "jane.smith@example.com" {
		t.Fatalf("expected email, got %q", info.Email)
	}
	if info.Phone == "" {
		t.Fatalf("expected a phone number, got empty")
	}
}

func TestFromTextNoContact(t *testing.T) {
	info := FromText("EXPERIENCE\nworked on things for 10 years")
	if info.Email != "" || info.Phone != "" {
		t.Fatalf("expected empty contact fields, got %+v", info)
	}
}

func TestGuessNameSkipsHeaders(t *testing.T) {
	info := FromText("Curriculum Vitae\nJohn Q Public\njq@example.com")
	if info.Name != "John Q Public" {
		t.Fatalf("expected John Q Public, got %q", info.Name)
	}
}

func TestMergeExplicitWins(t *testing.T) {
	explicit := Info{Name: "Form Name", Email: "form@example.com"}
	extracted := Info{Name: "Parsed Name", Email: "parsed@example.com", Phone: "555-0100"}

	merged := Merge(explicit, extracted)

	if merged.Name != "Form Name" {
		t.Fatalf("expected explicit name to win, got %q", merged.Name)
	}
	if merged.Email != "form@example.com" {
		t.Fatalf("expected explicit email to win, got %q", merged.Email)
	}
	if merged.Phone != "555-0100" {
		t.Fatalf("expected extracted phone to survive, got %q", merged.Phone)
	}
}

func TestOrNA(t *testing.T) {
	if got := OrNA(""); got != NotAvailable {
		t.Fatalf("expected %q, got %q", NotAvailable, got)
	}
	if got := OrNA("  "); got != NotAvailable {
		t.Fatalf("expected %q for whitespace, got %q", NotAvailable, got)
	}
	if got := OrNA("x"); got != "x" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
