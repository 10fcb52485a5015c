package store

// reader.go prepares persisted files for the CSV parser.
//
// Spreadsheet programs that re-save the stock file on Windows prepend a UTF-8
// BOM, which would otherwise end up glued to the first header name.

import (
	"bufio"
	"bytes"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM returns a reader that yields r's content without a leading UTF-8 BOM.
// Content that merely starts with part of a BOM is passed through unchanged.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(utf8BOM))
	if err == nil && bytes.Equal(head, utf8BOM) {
		// Discard cannot fail after a successful Peek of the same length.
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
