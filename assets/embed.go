// Package assets embeds the fallback dictionary and answer list used when no
// word files are configured.
package assets

import (
	"bytes"
	"embed"
	"io"
)

//go:embed words.txt answers.txt
var FS embed.FS

func open(name string) (io.Reader, error) {
	b, err := FS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(b), nil
}

// Dictionary returns the raw embedded dictionary, one word per line.
// Lines are not normalized; the words package applies corpus rules.
func Dictionary() (io.Reader, error) {
	return open("words.txt")
}

// Answers returns the raw embedded answer list.
func Answers() (io.Reader, error) {
	return open("answers.txt")
}
