// Package importer splits transaction files into raw rows. It does not
// interpret dates or amounts; that is left to the book package.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/minibook-dev/minibook/internal/model"
)

// Parser converts a transaction file into RawTransactions.
type Parser interface {
	Parse(r io.Reader) ([]model.RawTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// ForPath returns the parser matching the file extension of path, or nil.
func (r *Registry) ForPath(path string) Parser {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil
	}
	return r.Get(ext)
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&CSVParser{})
	r.Register(&JSONParser{})
	return r
}

// Open reads the file at path with the parser chosen by its extension.
func (r *Registry) Open(path string) ([]model.RawTransaction, error) {
	p := r.ForPath(path)
	if p == nil {
		return nil, fmt.Errorf("no parser for %s (want .csv or .json)", filepath.Base(path))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening transactions: %w", err)
	}
	defer f.Close()

	raw, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return raw, nil
}

// Open reads path using DefaultRegistry.
func Open(path string) ([]model.RawTransaction, error) {
	return DefaultRegistry().Open(path)
}
