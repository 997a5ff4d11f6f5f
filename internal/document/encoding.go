package document

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DetectEncoding returns the canonical charset name of raw markup. The
// Content-Type header, when known, wins over BOMs and <meta> declarations.
func DetectEncoding(content []byte, contentType string) string {
	_, name, _ := charset.DetermineEncoding(content, contentType)
	if name == "" {
		return "utf-8"
	}
	return strings.ToLower(name)
}

// ToUTF8 decodes content from its detected encoding. Unknown or undecodable
// encodings return the input untouched.
func ToUTF8(content []byte, contentType string) []byte {
	enc := DetectEncoding(content, contentType)
	if enc == "utf-8" {
		return content
	}

	e, err := htmlindex.Get(enc)
	if err != nil {
		return content
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(content), e.NewDecoder()))
	if err != nil {
		return content
	}
	return decoded
}
