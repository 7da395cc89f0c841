package score

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
)

// documentFile is the on-disk JSON shape of one document.
//
// This is the pipeline's own interchange format: one file per document, the
// document name plus the flat symbol list. Whatever produced the annotations
// is responsible for converting into this shape (id uniqueness, mask
// dimensions, and link resolvability are checked here on load).
type documentFile struct {
	Document string    `json:"document"`
	Symbols  []*Symbol `json:"symbols"`
}

// LoadDocument reads and validates a single document file.
//
// The document name defaults to the file's base name (without extension)
// when the file does not carry one.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var df documentFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("failed to decode document %s: %w", path, err)
	}

	name := df.Document
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return NewDocument(name, df.Symbols)
}

// LoadDir loads every .json document under dir, in lexical filename order
// so corpus traversal is deterministic across runs.
func LoadDir(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	slices.Sort(paths)

	docs := make([]*Document, 0, len(paths))
	for _, p := range paths {
		doc, err := LoadDocument(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Loader caches parsed documents by path to avoid redundant disk reads.
//
// Documents are immutable, so a cached document may be shared freely.
// Loader is safe for concurrent use by multiple goroutines; callers
// processing documents in parallel can share one Loader.
type Loader struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewLoader creates an empty document loader.
func NewLoader() *Loader {
	return &Loader{docs: make(map[string]*Document)}
}

// Load returns the document at path, reading it from disk on first use.
func (l *Loader) Load(path string) (*Document, error) {
	l.mu.RLock()
	if doc, ok := l.docs[path]; ok {
		l.mu.RUnlock()
		return doc, nil
	}
	l.mu.RUnlock()

	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.docs[path] = doc
	l.mu.Unlock()

	return doc, nil
}

// Evict removes a document from the cache by its path.
func (l *Loader) Evict(path string) {
	l.mu.Lock()
	delete(l.docs, path)
	l.mu.Unlock()
}

// Clear drops all cached documents.
func (l *Loader) Clear() {
	l.mu.Lock()
	l.docs = make(map[string]*Document)
	l.mu.Unlock()
}
