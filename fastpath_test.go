package deepjson

import (
	"testing"
)

// TestFastApplyEquivalence tests that byte surgery and tree surgery produce
// the same document for every operation the fast path claims to support.
func TestFastApplyEquivalence(t *testing.T) {
	data := []byte(`{"orders":[{"id":"oid-1","prices":["10.10","20"]}],"total":2}`)

	tests := []struct {
		name  string
		path  string
		value string
		mode  ArrayMode
	}{
		{"object replace", "orders/0/id", `"oid-9"`, Replace},
		{"object upsert new key", "orders/0/note", `"hi"`, Replace},
		{"root object field", "total", `3`, Replace},
		{"array replace", "orders/0/prices/1", `"30"`, Replace},
		{"array append", "orders/0/prices/2", `"30"`, InsertAppend},
		{"array remove", "orders/0/prices/0", ``, Remove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mustTokens(t, tt.path)
			last := tokens[len(tokens)-1]

			root := parseDocument(data)
			parent, err := navigate(root, tokens[:len(tokens)-1])
			if err != nil {
				t.Fatalf("navigate failed: %v", err)
			}
			if err := checkModification(parent, last, tt.mode); err != nil {
				t.Fatalf("checkModification failed: %v", err)
			}

			fast, ok := fastApply(data, tokens, parent, []byte(tt.value), tt.mode)
			if !ok {
				t.Fatal("fast path declined a supported operation")
			}

			applyModification(parent, last, parseDocument([]byte(tt.value)), tt.mode)
			slow := root.appendJSON(nil)

			if string(fast) != string(slow) {
				t.Errorf("paths diverged:\nfast: %s\nslow: %s", fast, slow)
			}
		})
	}
}

// TestFastApplyDeclinesInsertBefore tests the one edit sjson cannot express
func TestFastApplyDeclinesInsertBefore(t *testing.T) {
	data := []byte(`{"prices":[1,2,3]}`)
	tokens := mustTokens(t, "prices/1")

	root := parseDocument(data)
	parent, err := navigate(root, tokens[:len(tokens)-1])
	if err != nil {
		t.Fatalf("navigate failed: %v", err)
	}

	if _, ok := fastApply(data, tokens, parent, []byte(`9`), InsertAppend); ok {
		t.Error("insert before an existing element must fall back to the tree")
	}
}

// TestSjsonPath tests token translation into dot notation
func TestSjsonPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"price", "price"},
		{"1/products/0/id", "1.products.0.id"},
		{"007/x", "7.x"}, // leading zeros are dropped from indexes
	}
	for _, tt := range tests {
		tokens, err := parsePath(tt.path)
		if err != nil {
			t.Fatalf("parsePath(%q) failed: %v", tt.path, err)
		}
		if got := sjsonPath(tokens); got != tt.want {
			t.Errorf("sjsonPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
