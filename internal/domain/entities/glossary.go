// Package entities contains domain entities used across the application.
package entities

import (
	"iter"
	"strings"
)

// Term is a glossary key. It is always trimmed and lower-cased.
type Term string

// NormalizeTerm converts raw term text into its canonical key form.
func NormalizeTerm(s string) Term {
	return Term(strings.ToLower(strings.TrimSpace(s)))
}

// GlossaryEntry is a single term with its definition.
type GlossaryEntry struct {
	Term       Term
	Definition string
}

// Glossary is an ordered mapping from term to definition.
// Iteration follows the order in which terms were first added. Redefining
// a term replaces its definition but keeps its original position.
type Glossary struct {
	order       []Term
	definitions map[Term]string
}

// NewGlossary creates an empty glossary.
func NewGlossary() *Glossary {
	return &Glossary{
		definitions: make(map[Term]string),
	}
}

// Set adds or replaces the definition of term.
// Empty terms and empty definitions are ignored; Set reports whether the entry was stored.
func (g *Glossary) Set(term Term, definition string) bool {
	definition = strings.TrimSpace(definition)
	if term == "" || definition == "" {
		return false
	}

	if _, ok := g.definitions[term]; !ok {
		g.order = append(g.order, term)
	}
	g.definitions[term] = definition

	return true
}

// Get returns the definition of term.
func (g *Glossary) Get(term Term) (string, bool) {
	d, ok := g.definitions[term]
	return d, ok
}

// Len returns the number of terms.
func (g *Glossary) Len() int {
	return len(g.order)
}

// Terms returns a copy of the terms in iteration order.
func (g *Glossary) Terms() []Term {
	return append([]Term(nil), g.order...)
}

// Entries returns the glossary as a slice of entries in iteration order.
func (g *Glossary) Entries() []GlossaryEntry {
	out := make([]GlossaryEntry, 0, len(g.order))
	for term, def := range g.All() {
		out = append(out, GlossaryEntry{Term: term, Definition: def})
	}
	return out
}

// All iterates over term/definition pairs in order.
func (g *Glossary) All() iter.Seq2[Term, string] {
	return func(yield func(Term, string) bool) {
		for _, t := range g.order {
			if !yield(t, g.definitions[t]) {
				return
			}
		}
	}
}
