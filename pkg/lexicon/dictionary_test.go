package lexicon

import "testing"

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Bonjour !", "bonjour"},
		{"  J'ADORE   ça...", "j adore ça"},
		{"Peut-être", "peut-être"},
		{"Au—revoir", "au-revoir"},
		{"?!", ""},
	}
	for _, tt := range tests {
		if got := Canonicalize(tt.in); got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompileAndLookup(t *testing.T) {
	terms := []Term{
		{Phrase: "Bonjour", Label: "greeting", Weight: 1},
		{Phrase: "au revoir", Label: "farewell", Weight: 1},
		{Phrase: "salut", Label: "greeting", Weight: 1},
		{Phrase: "salut", Label: "farewell", Weight: 0.5},
		{Phrase: "?!", Label: "ignored", Weight: 1},
	}

	dict, err := Compile(terms)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if dict.Len() != 3 {
		t.Errorf("Len() = %d, want 3", dict.Len())
	}

	results := dict.Lookup("BONJOUR")
	if len(results) != 1 || results[0].Label != "greeting" {
		t.Errorf("Lookup 'BONJOUR' got %+v, want one greeting term", results)
	}

	// Shared phrase keeps both terms
	if results := dict.Lookup("Salut"); len(results) != 2 {
		t.Errorf("Lookup 'Salut' got %d terms, want 2", len(results))
	}

	if results := dict.Lookup("bonsoir"); results != nil {
		t.Errorf("Lookup 'bonsoir' should be nil, got %+v", results)
	}
}

func TestScan(t *testing.T) {
	dict, err := Compile([]Term{
		{Phrase: "bonjour", Label: "greeting"},
		{Phrase: "au revoir", Label: "farewell"},
		{Phrase: "revoir", Label: "other"},
	})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	hits := dict.Scan("Bonjour Jay, et au revoir !")
	if len(hits) != 2 {
		t.Fatalf("Scan got %d hits, want 2: %+v", len(hits), hits)
	}

	if hits[0].Text != "bonjour" || hits[0].TokenStart != 0 || hits[0].TokenEnd != 1 {
		t.Errorf("first hit = %+v", hits[0])
	}
	// "au revoir" wins over the overlapping "revoir"
	if hits[1].Text != "au revoir" || hits[1].TokenStart != 3 || hits[1].TokenEnd != 5 {
		t.Errorf("second hit = %+v", hits[1])
	}
}

func TestScanWholeWordsOnly(t *testing.T) {
	dict, err := Compile([]Term{{Phrase: "salut", Label: "greeting"}})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	if hits := dict.Scan("salutations distinguées"); len(hits) != 0 {
		t.Errorf("partial word should not match, got %+v", hits)
	}
	if hits := dict.Scan("Oh, salut!"); len(hits) != 1 {
		t.Errorf("Scan got %d hits, want 1", len(hits))
	}
}

func TestEmptyDictionary(t *testing.T) {
	dict, err := Compile(nil)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if hits := dict.Scan("bonjour"); hits != nil {
		t.Errorf("empty dictionary should not match, got %+v", hits)
	}
	if dict.Lookup("bonjour") != nil {
		t.Error("empty dictionary lookup should be nil")
	}
}
