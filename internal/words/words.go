// apps/wordlesim/internal/words/words.go
//
// Builds candidate word lists from a dictionary source.
//
// Responsibilities:
//   - Read a newline-delimited dictionary and keep only corpus words:
//     exactly 5 characters, all lowercase a–z.
//   - Apply optional exclusion filters (plurals, past tense, repeated
//     letters, caller-supplied letters).
//   - Fall back to the embedded dictionary when no file is configured.
//
// Lines are not case-folded: capitalized dictionary entries (proper nouns)
// are dropped rather than lowercased.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"

	"github.com/robalobadob/wordle/apps/wordlesim/assets"
)

// Length is the number of letters in every corpus word.
const Length = 5

// DefaultDictionary is the conventional system word list location.
const DefaultDictionary = "/usr/share/dict/words"

// ErrEmpty is returned when a source yields no usable words.
var ErrEmpty = errors.New("words: list is empty")

// Filters selects which qualifying words are excluded from a corpus.
// The zero value excludes nothing.
type Filters struct {
	SkipPlural    bool   // drop words ending in 's'
	SkipPast      bool   // drop words whose first "ed" starts at index 3
	SkipMultiples bool   // drop words with any repeated letter
	SkipLetters   string // drop words containing any of these letters
}

// excludes reports whether a qualifying word is rejected by f.
func (f Filters) excludes(w string) bool {
	switch {
	case f.SkipPlural && w[Length-1] == 's':
		return true
	case f.SkipPast && strings.Index(w, "ed") == 3:
		return true
	case f.SkipMultiples && len(lo.Uniq([]byte(w))) != len(w):
		return true
	case f.SkipLetters != "" && strings.ContainsAny(w, f.SkipLetters):
		return true
	}
	return false
}

// IsWord reports whether s is exactly Length lowercase ASCII letters.
func IsWord(s string) bool {
	return len(s) == Length && isAlpha(s)
}

// Filter returns the words of list that are corpus words not excluded by f,
// in their original order. list is not modified.
func Filter(list []string, f Filters) []string {
	return lo.Filter(list, func(w string, _ int) bool {
		return IsWord(w) && !f.excludes(w)
	})
}

// Load reads one word per line from r and returns the filtered corpus.
func Load(r io.Reader, f Filters) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if IsWord(w) && !f.excludes(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// LoadFile opens path and loads it with Load.
// A missing or unreadable file is an error, never an empty corpus.
func LoadFile(path string, f Filters) ([]string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer fh.Close()

	out, err := Load(fh, f)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return out, nil
}

// Default loads the embedded dictionary.
func Default(f Filters) ([]string, error) {
	r, err := assets.Dictionary()
	if err != nil {
		return nil, err
	}
	return Load(r, f)
}

// Source loads path, or the embedded dictionary when path is empty.
func Source(path string, f Filters) ([]string, error) {
	if path == "" {
		return Default(f)
	}
	return LoadFile(path, f)
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
