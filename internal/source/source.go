// Package source reads the text that anchors are extracted from.
package source

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Stdin is the source name that reads standard input.
const Stdin = "-"

// Document is text read from a source.
type Document struct {
	// Name is the path the text was read from, or "-" for standard input.
	Name string

	// Text is the decoded UTF-8 text with any byte order mark removed.
	Text string

	// Size is the number of bytes read from the source.
	Size int64
}

// Read reads the file at path as UTF-8 text. The path "-" reads os.Stdin.
// A missing file yields an *Error of KindNotFound; any other failure
// yields KindReadFailure.
func Read(path string) (*Document, error) {
	if path == Stdin {
		return ReadFrom(Stdin, os.Stdin)
	}

	f, err := os.Open(path) //nolint:gosec // Reading a user-selected file is the purpose of this function
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &Error{Kind: KindNotFound, Name: path, Err: err}
		}
		return nil, &Error{Kind: KindReadFailure, Name: path, Err: err}
	}
	defer f.Close()

	return ReadFrom(path, f)
}

// ReadFrom reads r to the end as UTF-8 text. A leading UTF-8 byte order
// mark is dropped. Invalid UTF-8 is reported as a read failure.
func ReadFrom(name string, r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &Error{Kind: KindReadFailure, Name: name, Err: err}
	}
	// The decoder substitutes U+FFFD for invalid bytes, so validate first.
	if !utf8.Valid(data) {
		return nil, &Error{Kind: KindReadFailure, Name: name, Err: ErrInvalidUTF8}
	}

	text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, &Error{Kind: KindReadFailure, Name: name, Err: err}
	}

	return &Document{
		Name: name,
		Text: string(text),
		Size: int64(len(data)),
	}, nil
}
