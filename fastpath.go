package deepjson

import (
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
)

// fastApply performs the terminal edit directly on the materialized bytes
// with sjson, skipping the tree re-encode. It runs only after navigation
// and checkModification have succeeded, so every container kind along the
// path is known and in bounds. Returns ok=false for edits sjson cannot
// express (insert before an existing element), in which case the caller
// falls back to tree surgery.
func fastApply(data []byte, tokens []Token, parent *Document, encodedValue []byte, mode ArrayMode) ([]byte, bool) {
	last := tokens[len(tokens)-1]
	path := sjsonPath(tokens)

	if parent.kind == nodeObject {
		out, err := sjson.SetRawBytes(data, path, encodedValue)
		if err != nil {
			return nil, false
		}
		return out, true
	}

	switch mode {
	case Remove:
		out, err := sjson.DeleteBytes(data, path)
		if err != nil {
			return nil, false
		}
		return out, true
	case InsertAppend:
		// sjson can only append; setting idx == len extends the array by
		// one. Inserting before an existing element needs the tree.
		if last.Index != len(parent.elems) {
			return nil, false
		}
		out, err := sjson.SetRawBytes(data, path, encodedValue)
		if err != nil {
			return nil, false
		}
		return out, true
	default:
		out, err := sjson.SetRawBytes(data, path, encodedValue)
		if err != nil {
			return nil, false
		}
		return out, true
	}
}

// sjsonPath translates validated tokens into sjson dot notation. Property
// segments are restricted to word characters, so no escaping is needed;
// index segments are re-rendered from the parsed integer to drop any
// leading zeros.
func sjsonPath(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 {
			b.WriteByte('.')
		}
		if tok.Kind == KindIndex {
			b.WriteString(strconv.Itoa(tok.Index))
		} else {
			b.WriteString(tok.Raw)
		}
	}
	return b.String()
}
