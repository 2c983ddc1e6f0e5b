package deepjson

import "fmt"

// checkModification validates the terminal token against the parent
// container before anything is written, so that the byte-level fast path
// and the tree fallback reject identical inputs with identical errors.
// Bounds are checked per mode: Replace and Remove address an existing
// element (idx < len), InsertAppend additionally allows idx == len, which
// appends.
func checkModification(parent *Document, last Token, mode ArrayMode) error {
	switch parent.kind {
	case nodeArray:
		if last.Kind != KindIndex {
			return fmt.Errorf("%w: Expected array index at the end, got %q", ErrKindMismatch, last.Raw)
		}
		n := len(parent.elems)
		limit := n
		if mode == InsertAppend {
			limit = n + 1
		}
		if last.Index >= limit {
			return fmt.Errorf("%w: Can't set/add/insert element at index %d. Check propertyPath.", ErrIndexOutOfBounds, last.Index)
		}
		return nil
	case nodeObject:
		if last.Kind != KindProperty {
			return fmt.Errorf("%w: Expected property name at the end, got %q", ErrKindMismatch, last.Raw)
		}
		return nil
	default:
		return fmt.Errorf("%w: cannot modify scalar (segment %q)", ErrUnexpectedNode, last.Raw)
	}
}

// applyModification performs the terminal edit on the document tree. The
// input must already have passed checkModification. Object terminals always
// upsert the addressed key and ignore the mode.
func applyModification(parent *Document, last Token, newValue *Document, mode ArrayMode) {
	if parent.kind == nodeObject {
		parent.setField(last.Raw, newValue)
		return
	}
	switch mode {
	case InsertAppend:
		parent.insertElem(last.Index, newValue)
	case Remove:
		parent.removeElem(last.Index)
	default:
		parent.elems[last.Index] = newValue
	}
}
