// Package syntax parses the free-text query mini-grammar: quoted
// phrases, field filters, required and excluded terms, wildcards, and
// proximity clauses.
//
// The grammar is extracted from a lexed token stream by ordered
// passes (see passOrder). Proximity clauses run BEFORE generic phrase
// extraction: the proximity grammar `"…"~N` is a strict superset of
// the phrase grammar, so the more specific rule must win or every
// proximity clause would be half-consumed as a plain phrase.
package syntax

import (
	"strconv"
	"strings"
	"unicode"
)

// Proximity is one `"t1 t2"~N` clause: the terms must appear within
// MaxDistance token positions of each other.
type Proximity struct {
	Terms       []string
	MaxDistance int
}

// Syntax is the structured form of a query string. All term fields
// hold raw (unnormalized) text; normalization and stemming happen at
// scoring time where the query language is known.
type Syntax struct {
	Phrases   []string
	Required  []string
	Excluded  []string
	Fields    map[string]string
	Wildcards []string
	Proximity []Proximity
	Remainder string // free text left after all extractions
}

// IsEmpty reports whether the query carried no usable content.
func (s *Syntax) IsEmpty() bool {
	return len(s.Phrases) == 0 && len(s.Required) == 0 && len(s.Excluded) == 0 &&
		len(s.Fields) == 0 && len(s.Wildcards) == 0 && len(s.Proximity) == 0 &&
		strings.TrimSpace(s.Remainder) == ""
}

type lexKind int

const (
	lexWord lexKind = iota
	lexQuoted
	lexProximity
)

type lexeme struct {
	kind     lexKind
	text     string
	distance int // proximity window, lexProximity only
}

type extraction struct {
	name  string
	apply func([]lexeme, *Syntax) []lexeme
}

// passOrder is the extraction order. Each pass consumes the lexemes
// it recognizes; later passes never see them. The order is a contract
// pinned by tests — in particular proximity precedes phrase.
var passOrder = []extraction{
	{"proximity", extractProximity},
	{"phrase", extractPhrases},
	{"field", extractFields},
	{"required", extractRequired},
	{"excluded", extractExcluded},
	{"wildcard", extractWildcards},
}

// Parse lexes the raw query and runs the extraction passes. It never
// fails: malformed syntax degrades to plain terms in the remainder.
func Parse(raw string) Syntax {
	syn := Syntax{Fields: make(map[string]string)}
	lexemes := lex(raw)
	for _, pass := range passOrder {
		lexemes = pass.apply(lexemes, &syn)
	}

	var leftover []string
	for _, lx := range lexemes {
		leftover = append(leftover, lx.text)
	}
	syn.Remainder = strings.Join(leftover, " ")
	return syn
}

// lex splits the raw query into word and quoted lexemes. A closing
// quote immediately followed by ~N produces a proximity lexeme; an
// unterminated quote consumes the rest of the string.
func lex(raw string) []lexeme {
	var out []lexeme
	runes := []rune(raw)
	i := 0
	for i < len(runes) {
		switch {
		case unicode.IsSpace(runes[i]):
			i++
		case runes[i] == '"':
			end := i + 1
			for end < len(runes) && runes[end] != '"' {
				end++
			}
			text := string(runes[i+1 : end])
			i = end
			if i < len(runes) {
				i++ // closing quote
			}
			// Trailing ~N marks a proximity clause.
			if i < len(runes) && runes[i] == '~' {
				j := i + 1
				for j < len(runes) && runes[j] >= '0' && runes[j] <= '9' {
					j++
				}
				if j > i+1 {
					n, _ := strconv.Atoi(string(runes[i+1 : j]))
					out = append(out, lexeme{kind: lexProximity, text: text, distance: n})
					i = j
					continue
				}
			}
			out = append(out, lexeme{kind: lexQuoted, text: text})
		default:
			end := i
			for end < len(runes) && !unicode.IsSpace(runes[end]) && runes[end] != '"' {
				end++
			}
			out = append(out, lexeme{kind: lexWord, text: string(runes[i:end])})
			i = end
		}
	}
	return out
}

func extractProximity(lexemes []lexeme, syn *Syntax) []lexeme {
	rest := lexemes[:0]
	for _, lx := range lexemes {
		if lx.kind != lexProximity {
			rest = append(rest, lx)
			continue
		}
		terms := strings.Fields(lx.text)
		if len(terms) < 2 || lx.distance <= 0 {
			// Degenerate clause: fall back to a plain phrase.
			rest = append(rest, lexeme{kind: lexQuoted, text: lx.text})
			continue
		}
		syn.Proximity = append(syn.Proximity, Proximity{Terms: terms, MaxDistance: lx.distance})
	}
	return rest
}

func extractPhrases(lexemes []lexeme, syn *Syntax) []lexeme {
	rest := lexemes[:0]
	for _, lx := range lexemes {
		if lx.kind != lexQuoted {
			rest = append(rest, lx)
			continue
		}
		if p := strings.TrimSpace(lx.text); p != "" {
			syn.Phrases = append(syn.Phrases, p)
		}
	}
	return rest
}

func extractFields(lexemes []lexeme, syn *Syntax) []lexeme {
	rest := lexemes[:0]
	for _, lx := range lexemes {
		if lx.kind != lexWord {
			rest = append(rest, lx)
			continue
		}
		key, value, ok := strings.Cut(lx.text, ":")
		if !ok || !isWordChars(key) || !isWordChars(value) {
			rest = append(rest, lx)
			continue
		}
		syn.Fields[strings.ToLower(key)] = value
	}
	return rest
}

func extractRequired(lexemes []lexeme, syn *Syntax) []lexeme {
	return extractPrefixed(lexemes, '+', &syn.Required)
}

func extractExcluded(lexemes []lexeme, syn *Syntax) []lexeme {
	return extractPrefixed(lexemes, '-', &syn.Excluded)
}

func extractPrefixed(lexemes []lexeme, prefix byte, into *[]string) []lexeme {
	rest := lexemes[:0]
	for _, lx := range lexemes {
		if lx.kind != lexWord || len(lx.text) < 2 || lx.text[0] != prefix {
			rest = append(rest, lx)
			continue
		}
		*into = append(*into, lx.text[1:])
	}
	return rest
}

func extractWildcards(lexemes []lexeme, syn *Syntax) []lexeme {
	rest := lexemes[:0]
	for _, lx := range lexemes {
		if lx.kind != lexWord || len(lx.text) < 2 || !strings.HasSuffix(lx.text, "*") {
			rest = append(rest, lx)
			continue
		}
		syn.Wildcards = append(syn.Wildcards, strings.TrimSuffix(lx.text, "*"))
	}
	return rest
}

// isWordChars reports whether s is non-empty and made of word
// characters only (letters, digits, underscore).
func isWordChars(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
