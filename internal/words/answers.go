// apps/wordlesim/internal/words/answers.go
//
// Reads answer lists (the targets a batch is played against) from a file
// or from the embedded default, optionally truncated to the first N.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/wordlesim/assets"
)

// ReadAnswers reads target words one per line, trimmed and lowercased.
// Blank lines and '#' comments are skipped. When count > 0 the list is
// truncated to its first count entries.
func ReadAnswers(r io.Reader, count int) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.ToLower(strings.TrimSpace(sc.Text()))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
		if count > 0 && len(out) == count {
			break
		}
	}
	return out, sc.Err()
}

// ReadAnswersFile opens path and reads it with ReadAnswers.
func ReadAnswersFile(path string, count int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers: %w", err)
	}
	defer f.Close()

	out, err := ReadAnswers(f, count)
	if err != nil {
		return nil, fmt.Errorf("read answers %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return out, nil
}

// DefaultAnswers reads the embedded answer list.
func DefaultAnswers(count int) ([]string, error) {
	r, err := assets.Answers()
	if err != nil {
		return nil, err
	}
	return ReadAnswers(r, count)
}

// Answers reads path, or the embedded list when path is empty.
func Answers(path string, count int) ([]string, error) {
	if path == "" {
		return DefaultAnswers(count)
	}
	return ReadAnswersFile(path, count)
}
