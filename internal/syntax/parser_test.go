package syntax

import (
	"reflect"
	"testing"
)

func TestParse_PlainTerms(t *testing.T) {
	syn := Parse("backend engineer remote")
	if syn.Remainder != "backend engineer remote" {
		t.Errorf("remainder = %q", syn.Remainder)
	}
	if len(syn.Phrases)+len(syn.Required)+len(syn.Excluded)+len(syn.Fields)+
		len(syn.Wildcards)+len(syn.Proximity) != 0 {
		t.Errorf("plain query extracted structure: %+v", syn)
	}
}

func TestParse_Phrase(t *testing.T) {
	syn := Parse(`"data engineer" remote`)
	if !reflect.DeepEqual(syn.Phrases, []string{"data engineer"}) {
		t.Errorf("phrases = %v", syn.Phrases)
	}
	if syn.Remainder != "remote" {
		t.Errorf("remainder = %q", syn.Remainder)
	}
}

func TestParse_RequiredAndExcluded(t *testing.T) {
	syn := Parse("+python -java backend")
	if !reflect.DeepEqual(syn.Required, []string{"python"}) {
		t.Errorf("required = %v", syn.Required)
	}
	if !reflect.DeepEqual(syn.Excluded, []string{"java"}) {
		t.Errorf("excluded = %v", syn.Excluded)
	}
	if syn.Remainder != "backend" {
		t.Errorf("remainder = %q", syn.Remainder)
	}
}

func TestParse_Fields(t *testing.T) {
	syn := Parse("type:job lang:es kubernetes")
	want := map[string]string{"type": "job", "lang": "es"}
	if !reflect.DeepEqual(syn.Fields, want) {
		t.Errorf("fields = %v, want %v", syn.Fields, want)
	}
	if syn.Remainder != "kubernetes" {
		t.Errorf("remainder = %q", syn.Remainder)
	}
}

func TestParse_FieldKeyLowercased(t *testing.T) {
	syn := Parse("Type:job")
	if syn.Fields["type"] != "job" {
		t.Errorf("fields = %v", syn.Fields)
	}
}

func TestParse_MalformedFieldStaysTerm(t *testing.T) {
	// Empty value and non-word characters degrade to plain terms.
	syn := Parse("type: http://x url:a/b plain")
	if len(syn.Fields) != 0 {
		t.Errorf("fields = %v, want none", syn.Fields)
	}
	if syn.Remainder != "type: http://x url:a/b plain" {
		t.Errorf("remainder = %q", syn.Remainder)
	}
}

func TestParse_Wildcard(t *testing.T) {
	syn := Parse("program* react")
	if !reflect.DeepEqual(syn.Wildcards, []string{"program"}) {
		t.Errorf("wildcards = %v", syn.Wildcards)
	}
	if syn.Remainder != "react" {
		t.Errorf("remainder = %q", syn.Remainder)
	}
}

func TestParse_BareStarStaysTerm(t *testing.T) {
	syn := Parse("*")
	if len(syn.Wildcards) != 0 {
		t.Errorf("wildcards = %v, want none", syn.Wildcards)
	}
	if syn.Remainder != "*" {
		t.Errorf("remainder = %q", syn.Remainder)
	}
}

func TestParse_Proximity(t *testing.T) {
	syn := Parse(`"remote work"~3 extra`)
	if len(syn.Proximity) != 1 {
		t.Fatalf("proximity = %v", syn.Proximity)
	}
	p := syn.Proximity[0]
	if !reflect.DeepEqual(p.Terms, []string{"remote", "work"}) || p.MaxDistance != 3 {
		t.Errorf("proximity clause = %+v", p)
	}
	if syn.Remainder != "extra" {
		t.Errorf("remainder = %q", syn.Remainder)
	}
}

// A proximity clause must be consumed by the proximity pass, not
// half-eaten as a plain phrase.
func TestParse_ProximityNotPhrase(t *testing.T) {
	syn := Parse(`"remote work"~3`)
	if len(syn.Phrases) != 0 {
		t.Errorf("proximity clause leaked into phrases: %v", syn.Phrases)
	}
	if len(syn.Proximity) != 1 {
		t.Errorf("proximity = %v", syn.Proximity)
	}
}

func TestParse_DegenerateProximityFallsBackToPhrase(t *testing.T) {
	// A one-term clause has no pair to measure: plain phrase.
	syn := Parse(`"remote"~3`)
	if len(syn.Proximity) != 0 {
		t.Errorf("proximity = %v, want none", syn.Proximity)
	}
	if !reflect.DeepEqual(syn.Phrases, []string{"remote"}) {
		t.Errorf("phrases = %v", syn.Phrases)
	}
}

func TestParse_UnterminatedQuote(t *testing.T) {
	syn := Parse(`"data engineer`)
	if !reflect.DeepEqual(syn.Phrases, []string{"data engineer"}) {
		t.Errorf("phrases = %v", syn.Phrases)
	}
}

func TestParse_EmptyQuotesIgnored(t *testing.T) {
	syn := Parse(`"" rust`)
	if len(syn.Phrases) != 0 {
		t.Errorf("phrases = %v, want none", syn.Phrases)
	}
	if syn.Remainder != "rust" {
		t.Errorf("remainder = %q", syn.Remainder)
	}
}

func TestParse_Combined(t *testing.T) {
	syn := Parse(`"data engineer" type:job +python -java prog* "remote work"~5 senior`)
	if !reflect.DeepEqual(syn.Phrases, []string{"data engineer"}) {
		t.Errorf("phrases = %v", syn.Phrases)
	}
	if syn.Fields["type"] != "job" {
		t.Errorf("fields = %v", syn.Fields)
	}
	if !reflect.DeepEqual(syn.Required, []string{"python"}) {
		t.Errorf("required = %v", syn.Required)
	}
	if !reflect.DeepEqual(syn.Excluded, []string{"java"}) {
		t.Errorf("excluded = %v", syn.Excluded)
	}
	if !reflect.DeepEqual(syn.Wildcards, []string{"prog"}) {
		t.Errorf("wildcards = %v", syn.Wildcards)
	}
	if len(syn.Proximity) != 1 || syn.Proximity[0].MaxDistance != 5 {
		t.Errorf("proximity = %v", syn.Proximity)
	}
	if syn.Remainder != "senior" {
		t.Errorf("remainder = %q", syn.Remainder)
	}
}

func TestSyntax_IsEmpty(t *testing.T) {
	empty := Parse("   ")
	if !empty.IsEmpty() {
		t.Error("blank query should be empty")
	}
	nonEmpty := Parse("-java")
	if nonEmpty.IsEmpty() {
		t.Error("exclusion-only query is not empty")
	}
}
