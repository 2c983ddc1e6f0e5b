// Package deepjson produces modified copies of immutable typed values.
//
// A call addresses a single nested location with a slash-delimited property
// path such as "1/products/0/id", materializes the value into a JSON
// document, applies one modification at the addressed location, and
// reconstructs the document back into the original static type. The source
// value is never touched: every call either returns a fresh copy or an
// error, never a partially modified value.
package deepjson

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common errors for deep-copy operations
var (
	ErrInvalidPath      = errors.New("invalid path syntax")
	ErrBadNavigation    = errors.New("bad path navigation")
	ErrKindMismatch     = errors.New("terminal kind mismatch")
	ErrIndexOutOfBounds = errors.New("array index out of bounds")
	ErrSchemaViolation  = errors.New("schema violation")
	ErrUnexpectedNode   = errors.New("unexpected node type")
)

// ArrayMode selects how the final path segment modifies an array. It is
// only consulted when the terminal container is an array; object terminals
// always upsert the addressed property.
type ArrayMode uint8

const (
	// Replace overwrites the element at the addressed index.
	Replace ArrayMode = iota

	// InsertAppend inserts the new element before the addressed index,
	// shifting later elements right; an index equal to the array length
	// appends.
	InsertAppend

	// Remove deletes the element at the addressed index. The new value is
	// ignored.
	Remove
)

func (m ArrayMode) String() string {
	switch m {
	case InsertAppend:
		return "INSERT_APPEND"
	case Remove:
		return "REMOVE"
	default:
		return "REPLACE"
	}
}

// Options represents additional options for deep-copy operations
type Options struct {
	// Mode selects the array modification behavior. Ignored when the
	// terminal container is an object.
	Mode ArrayMode
}

// DefaultOptions provides default settings for deep-copy operations
var DefaultOptions = Options{
	Mode: Replace,
}

// DeepCopy returns a copy of source with the value at propertyPath replaced
// by newValue. This is the main entry point for most use cases.
func DeepCopy[T any](source T, propertyPath string, newValue any) (T, error) {
	return DeepCopyWithOptions(source, propertyPath, newValue, nil)
}

// DeepCopyWithOptions returns a copy of source modified at propertyPath
// according to the given options. A nil opts is equivalent to
// DefaultOptions.
func DeepCopyWithOptions[T any](source T, propertyPath string, newValue any, opts *Options) (T, error) {
	tokens, err := compilePath(propertyPath)
	if err != nil {
		var zero T
		return zero, err
	}
	return deepCopyTokens(source, tokens, newValue, modeOf(opts))
}

// DeepCopyWithPath is like DeepCopyWithOptions but takes a pre-compiled
// path, skipping tokenization for hot paths.
func DeepCopyWithPath[T any](source T, path *Path, newValue any, opts *Options) (T, error) {
	if path == nil || len(path.tokens) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: nil or empty compiled path", ErrInvalidPath)
	}
	return deepCopyTokens(source, path.tokens, newValue, modeOf(opts))
}

// Extract reads the value at propertyPath from source and reconstructs it
// as type T. It is the read counterpart of DeepCopy and shares its path
// syntax and navigation errors.
func Extract[T any](source any, propertyPath string) (T, error) {
	var zero T
	tokens, err := compilePath(propertyPath)
	if err != nil {
		return zero, err
	}
	data, err := json.Marshal(source)
	if err != nil {
		return zero, fmt.Errorf("materialize source: %w", err)
	}
	node, err := navigate(parseDocument(data), tokens)
	if err != nil {
		return zero, err
	}
	return reconstruct[T](node.appendJSON(nil))
}

func modeOf(opts *Options) ArrayMode {
	if opts == nil {
		return DefaultOptions.Mode
	}
	return opts.Mode
}

// deepCopyTokens runs the full pipeline: materialize both values, navigate
// to the parent of the mutation point, validate and apply the modification,
// then reconstruct the original static type. Validation happens entirely on
// the document tree so the byte-level fast path and the tree fallback
// surface identical errors.
func deepCopyTokens[T any](source T, tokens []Token, newValue any, mode ArrayMode) (T, error) {
	var zero T

	data, err := json.Marshal(source)
	if err != nil {
		return zero, fmt.Errorf("materialize source: %w", err)
	}
	encoded, err := json.Marshal(newValue)
	if err != nil {
		return zero, fmt.Errorf("materialize new value: %w", err)
	}

	root := parseDocument(data)
	parent, err := navigate(root, tokens[:len(tokens)-1])
	if err != nil {
		return zero, err
	}
	last := tokens[len(tokens)-1]
	if err := checkModification(parent, last, mode); err != nil {
		return zero, err
	}

	out, ok := fastApply(data, tokens, parent, encoded, mode)
	if !ok {
		applyModification(parent, last, parseDocument(encoded), mode)
		out = root.appendJSON(make([]byte, 0, len(data)+len(encoded)+16))
	}
	return reconstruct[T](out)
}
