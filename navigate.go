package deepjson

import "fmt"

// navigate walks the document along the given tokens and returns the node
// they address. Callers pass tokens[:len-1] to obtain the parent container
// of a mutation point; a single-segment path therefore resolves to the root
// itself. Navigation is schema-oblivious: it only checks that each token's
// kind matches the container it is applied to and that the addressed child
// exists.
func navigate(root *Document, tokens []Token) (*Document, error) {
	cur := root
	for _, tok := range tokens {
		switch cur.kind {
		case nodeArray:
			if tok.Kind != KindIndex {
				return nil, fmt.Errorf("%w: Bad index in propertyPath (segment %q)", ErrBadNavigation, tok.Raw)
			}
			next := cur.elem(tok.Index)
			if next == nil {
				return nil, fmt.Errorf("%w: Bad index in propertyPath (segment %q)", ErrBadNavigation, tok.Raw)
			}
			cur = next
		case nodeObject:
			if tok.Kind != KindProperty {
				return nil, fmt.Errorf("%w: Bad property in propertyPath (segment %q)", ErrBadNavigation, tok.Raw)
			}
			next := cur.field(tok.Raw)
			if next == nil {
				return nil, fmt.Errorf("%w: Bad property in propertyPath (segment %q)", ErrBadNavigation, tok.Raw)
			}
			cur = next
		default:
			return nil, fmt.Errorf("%w: cannot descend into scalar (segment %q)", ErrUnexpectedNode, tok.Raw)
		}
	}
	return cur, nil
}
