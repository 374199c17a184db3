// Package encoding normalizes log file bytes to UTF-8 text.
//
// DAO application logs in the wild are frequently SHIFT_JIS or EUC-JP; the
// scanner only ever sees the decoded text this package produces.
package encoding

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultLabel is assumed when no encoding is configured.
const DefaultLabel = "utf-8"

// Labels commonly seen in the field, for help text. Any label known to the
// WHATWG encoding index is accepted.
var Labels = []string{"utf-8", "shift_jis", "euc-jp", "iso-2022-jp", "utf-16le", "utf-16be"}

// Decode converts raw bytes to a UTF-8 string using the named encoding.
// An empty or unknown label falls back to treating the bytes as UTF-8, so a
// bad configuration degrades to garbled text rather than an error.
func Decode(data []byte, label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return string(data)
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return string(data)
	}

	decoded, _, err := transform.Bytes(enc.NewDecoder(), data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

// ReadFile loads a log file and decodes it with the named encoding.
func ReadFile(path, label string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read log file: %w", err)
	}
	return Decode(data, label), nil
}
