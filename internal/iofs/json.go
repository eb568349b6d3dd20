package iofs

import (
	"bytes"
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
)

// readable is the standard library compatible configuration without HTML
// escaping, so '&', '<' and '>' stay as they are in names and URLs.
var readable = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// EncodeJSON encodes v with 2-space indentation and a trailing newline.
// Non-ASCII and HTML characters are written unescaped.
func EncodeJSON(v any) ([]byte, error) {
	// jsoniter does not indent values of sorted maps, so the compact
	// output is indented afterwards.
	compact, err := readable.Marshal(v)
	if err != nil {
		return nil, err
	}
	var res bytes.Buffer
	if err = json.Indent(&res, compact, "", "  "); err != nil {
		return nil, err
	}
	res.WriteByte('\n')
	return res.Bytes(), nil
}
