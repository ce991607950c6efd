// Package textfile reads repository files as text with permissive decoding.
// An unreadable file contributes no content; it never aborts an analysis.
package textfile

import (
	"os"
	"strings"
	"unicode/utf8"
)

// TruncationMarker is appended when Read shortens an oversized file.
const TruncationMarker = "\n\n... [TRUNCATED] ..."

// Read returns the decoded content of path. Decoding order: UTF-8, then a
// Latin-1 reinterpretation, then lossy UTF-8 repair. Read errors yield "".
// Content longer than 5000 bytes is cut to 4000 plus a marker.
func Read(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	content := decode(b)
	if len(content) > 5000 {
		content = content[:4000] + TruncationMarker
	}
	return content
}

// ReadPrefix returns at most n decoded bytes from the start of path.
func ReadPrefix(path string, n int) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	if len(b) > n {
		b = b[:n]
	}
	return decode(b)
}

func decode(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	// Mostly-ASCII content with stray high bytes decodes cleanly as
	// Latin-1; anything else gets lossy repair.
	printable := 0
	for _, c := range b {
		if c < utf8.RuneSelf {
			printable++
		}
	}
	if printable*10 >= len(b)*9 {
		runes := make([]rune, len(b))
		for i, c := range b {
			runes[i] = rune(c)
		}
		return string(runes)
	}
	return strings.ToValidUTF8(string(b), "")
}
