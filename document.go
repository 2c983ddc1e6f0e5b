package deepjson

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

type nodeKind uint8

const (
	nodeLeaf nodeKind = iota
	nodeObject
	nodeArray
)

// Document is the in-memory tree a typed value is materialized into for the
// duration of one call: an object with ordered keys, an array, or a leaf
// holding the exact JSON text of a scalar. Leaves keep their raw text
// verbatim, so number formatting such as "10.10" survives the round trip
// untouched.
type Document struct {
	kind   nodeKind
	keys   []string
	fields map[string]*Document
	elems  []*Document
	raw    string
}

// parseDocument builds a Document tree from JSON bytes. gjson preserves
// both object key order and the raw text of every scalar.
func parseDocument(data []byte) *Document {
	return documentOf(gjson.ParseBytes(data))
}

func documentOf(r gjson.Result) *Document {
	switch {
	case r.IsObject():
		doc := &Document{kind: nodeObject, fields: make(map[string]*Document)}
		r.ForEach(func(key, value gjson.Result) bool {
			doc.keys = append(doc.keys, key.Str)
			doc.fields[key.Str] = documentOf(value)
			return true
		})
		return doc
	case r.IsArray():
		doc := &Document{kind: nodeArray}
		r.ForEach(func(_, value gjson.Result) bool {
			doc.elems = append(doc.elems, documentOf(value))
			return true
		})
		return doc
	default:
		return &Document{kind: nodeLeaf, raw: r.Raw}
	}
}

// IsObject reports whether the document is an object node.
func (d *Document) IsObject() bool { return d.kind == nodeObject }

// IsArray reports whether the document is an array node.
func (d *Document) IsArray() bool { return d.kind == nodeArray }

// IsLeaf reports whether the document is a scalar node.
func (d *Document) IsLeaf() bool { return d.kind == nodeLeaf }

// field returns the child at key, or nil if absent.
func (d *Document) field(key string) *Document {
	return d.fields[key]
}

// elem returns the element at index i, or nil if out of range.
func (d *Document) elem(i int) *Document {
	if i < 0 || i >= len(d.elems) {
		return nil
	}
	return d.elems[i]
}

// setField upserts key to value, preserving insertion order for existing
// keys and appending new ones.
func (d *Document) setField(key string, value *Document) {
	if _, exists := d.fields[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.fields[key] = value
}

// insertElem inserts value before index i, shifting later elements right.
// i must be in [0, len].
func (d *Document) insertElem(i int, value *Document) {
	d.elems = append(d.elems, nil)
	copy(d.elems[i+1:], d.elems[i:])
	d.elems[i] = value
}

// removeElem deletes the element at index i, shifting later elements left.
// i must be in [0, len).
func (d *Document) removeElem(i int) {
	d.elems = append(d.elems[:i], d.elems[i+1:]...)
}

// appendJSON serializes the document as compact JSON, writing leaf raw text
// byte for byte.
func (d *Document) appendJSON(dst []byte) []byte {
	switch d.kind {
	case nodeObject:
		dst = append(dst, '{')
		for i, key := range d.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			encoded, _ := json.Marshal(key)
			dst = append(dst, encoded...)
			dst = append(dst, ':')
			dst = d.fields[key].appendJSON(dst)
		}
		return append(dst, '}')
	case nodeArray:
		dst = append(dst, '[')
		for i, el := range d.elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = el.appendJSON(dst)
		}
		return append(dst, ']')
	default:
		return append(dst, d.raw...)
	}
}

// String renders the document as indented JSON for debugging.
func (d *Document) String() string {
	return string(pretty.Pretty(d.appendJSON(nil)))
}
