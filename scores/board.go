// SPDX-License-Identifier: MIT
// Package scores keeps the high score table: at most MaxEntries results,
// best first, persisted as YAML.
//
// Ordering:
//   - Descending by score; equal scores keep their arrival order, so an
//     older result outranks a newer tie.
//
// Concurrency:
//   - Board is safe for concurrent use.
package scores

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

// MaxEntries caps the table.
const MaxEntries = 10

// DateLayout is the format of Entry.Date.
const DateLayout = "2006-01-02"

// ErrBadEntry indicates a persisted entry with a malformed date or a
// negative score.
var ErrBadEntry = errors.New("scores: invalid entry")

// Entry is one recorded result.
type Entry struct {
	Score int    `yaml:"score"`
	Date  string `yaml:"date"`
}

// Board is the capped, sorted high score table.
type Board struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Record inserts score dated at and truncates the table to MaxEntries.
// It returns the 1-based rank and whether the entry survived truncation;
// rank is 0 when it did not.
//
// Complexity: O(n) with n ≤ MaxEntries.
func (b *Board) Record(score int, at time.Time) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e := Entry{Score: score, Date: at.Format(DateLayout)}
	// First position strictly below score: ties stay ahead of the new entry.
	pos := sort.Search(len(b.entries), func(k int) bool {
		return b.entries[k].Score < score
	})
	if pos >= MaxEntries {
		return 0, false
	}
	b.entries = append(b.entries, Entry{})
	copy(b.entries[pos+1:], b.entries[pos:])
	b.entries[pos] = e
	if len(b.entries) > MaxEntries {
		b.entries = b.entries[:MaxEntries]
	}

	return pos + 1, true
}

// Qualifies reports whether score would enter the table.
func (b *Board) Qualifies(score int) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries) < MaxEntries || b.entries[len(b.entries)-1].Score < score
}

// Entries returns a copy of the table, best first.
func (b *Board) Entries() []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]Entry(nil), b.entries...)
}

// Best returns the top entry, or false on an empty board.
func (b *Board) Best() (Entry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(b.entries) == 0 {
		return Entry{}, false
	}

	return b.entries[0], true
}

// Len returns the number of entries.
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries)
}

// boardFile is the YAML document shape.
type boardFile struct {
	Scores []Entry `yaml:"scores"`
}

// Load reads a YAML board. Entries are validated, re-sorted and capped,
// so a hand-edited file still yields a well-formed table. An empty
// document is an empty board.
func Load(r io.Reader) (*Board, error) {
	var doc boardFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("Load: %w", err)
	}

	for k, e := range doc.Scores {
		if e.Score < 0 {
			return nil, fmt.Errorf("Load: entry %d: score %d: %w", k, e.Score, ErrBadEntry)
		}
		if _, err := time.Parse(DateLayout, e.Date); err != nil {
			return nil, fmt.Errorf("Load: entry %d: date %q: %w", k, e.Date, ErrBadEntry)
		}
	}
	sort.SliceStable(doc.Scores, func(a, c int) bool {
		return doc.Scores[a].Score > doc.Scores[c].Score
	})
	if len(doc.Scores) > MaxEntries {
		doc.Scores = doc.Scores[:MaxEntries]
	}

	return &Board{entries: doc.Scores}, nil
}

// Save writes the board as YAML.
func (b *Board) Save(w io.Writer) error {
	doc := boardFile{Scores: b.Entries()}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return enc.Close()
}

// LoadFile reads path. A missing file is an empty board.
func LoadFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewBoard(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// SaveFile writes the board to path, replacing it.
func (b *Board) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	if err = b.Save(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
