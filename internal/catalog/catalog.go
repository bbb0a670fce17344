// Package catalog holds the in-memory periodic-table dataset. The table is
// built once from the embedded JSON file and is read-only afterwards, so it
// is safe to share across requests without locking.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/Darshan-Yash/Periodic-table/internal/domain/element"
)

//go:embed elements.json
var elementsJSON []byte

type Catalog struct {
	elements []element.Element
	bySymbol map[string]int
	byName   map[string]int
}

// Load parses the embedded dataset and builds the symbol and name indexes.
func Load() (*Catalog, error) {
	var elements []element.Element
	if err := json.Unmarshal(elementsJSON, &elements); err != nil {
		return nil, fmt.Errorf("failed to parse element dataset: %w", err)
	}
	return New(elements), nil
}

// New builds a catalog over the given elements, preserving their order.
func New(elements []element.Element) *Catalog {
	c := &Catalog{
		elements: elements,
		bySymbol: make(map[string]int, len(elements)),
		byName:   make(map[string]int, len(elements)),
	}
	for i, el := range elements {
		c.bySymbol[strings.ToLower(el.Symbol)] = i
		c.byName[strings.ToLower(el.Name)] = i
	}
	return c
}

// Lookup resolves an identifier against the symbol index first, then the
// name index. Matching is case-insensitive.
func (c *Catalog) Lookup(identifier string) (element.Element, bool) {
	key := strings.ToLower(identifier)
	if i, ok := c.bySymbol[key]; ok {
		return c.elements[i], true
	}
	if i, ok := c.byName[key]; ok {
		return c.elements[i], true
	}
	return element.Element{}, false
}

// All returns the full table in load order.
func (c *Catalog) All() []element.Element {
	return c.elements
}

// MatchQuestion scans free text for a mention of any element, in catalog
// order, and returns the first hit. Symbols and names must appear as whole
// words; a bare substring check would make one-letter symbols like "H"
// match almost any sentence.
func (c *Catalog) MatchQuestion(question string) (element.Element, bool) {
	words := make(map[string]struct{})
	for _, w := range strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		words[w] = struct{}{}
	}

	for _, el := range c.elements {
		if _, ok := words[strings.ToLower(el.Symbol)]; ok {
			return el, true
		}
		if _, ok := words[strings.ToLower(el.Name)]; ok {
			return el, true
		}
	}
	return element.Element{}, false
}
