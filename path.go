package deepjson

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// TokenKind classifies one path segment.
type TokenKind uint8

const (
	// KindProperty addresses an object key.
	KindProperty TokenKind = iota

	// KindIndex addresses a zero-based array element.
	KindIndex
)

// Token is one /-delimited unit of a property path. An all-digit segment is
// always classified as an index, which makes object properties whose names
// consist only of digits unreachable by this syntax. That is an inherent
// limitation of the path format, not something callers can disambiguate.
type Token struct {
	Kind  TokenKind
	Raw   string
	Index int // meaningful only when Kind == KindIndex
}

// Path represents a pre-compiled property path.
type Path struct {
	tokens   []Token
	original string
}

// CompilePath tokenizes and validates a property path for repeated use with
// DeepCopyWithPath.
func CompilePath(path string) (*Path, error) {
	tokens, err := compilePath(path)
	if err != nil {
		return nil, err
	}
	return &Path{tokens: tokens, original: path}, nil
}

// String returns the original path text.
func (p *Path) String() string {
	return p.original
}

// parsePath splits path on "/" and classifies each segment. Pure function
// of the input; no document access happens here.
func parsePath(path string) ([]Token, error) {
	parts := strings.Split(path, "/")
	tokens := make([]Token, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: must not contain empty parts", ErrInvalidPath)
		}
		if isAllDigits(part) {
			// Syntactically a valid index segment; an int overflow can only
			// mean the index exceeds any possible array length.
			idx, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("%w: Can't set/add/insert element at index %s. Check propertyPath.", ErrIndexOutOfBounds, part)
			}
			tokens = append(tokens, Token{Kind: KindIndex, Raw: part, Index: idx})
			continue
		}
		if !isValidName(part) {
			return nil, fmt.Errorf("%w: must contain only [A-Za-z0-9] chars, got %q", ErrInvalidPath, part)
		}
		tokens = append(tokens, Token{Kind: KindProperty, Raw: part})
	}
	return tokens, nil
}

func isAllDigits(part string) bool {
	for i := 0; i < len(part); i++ {
		if part[i] < '0' || part[i] > '9' {
			return false
		}
	}
	return len(part) > 0
}

func isValidName(part string) bool {
	for i := 0; i < len(part); i++ {
		if !isAllowedNameByte(part[i]) {
			return false
		}
	}
	return len(part) > 0
}

func isAllowedNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_':
		return true
	}
	return false
}

// LRU cache for compiled paths. Token slices stored here are never mutated
// after insertion, so sharing them across calls is safe.
type pathLRU struct {
	capacity int
	items    map[string][]Token
	order    []string
	mutex    sync.RWMutex
}

func newPathLRU(capacity int) *pathLRU {
	return &pathLRU{
		capacity: capacity,
		items:    make(map[string][]Token),
		order:    make([]string, 0, capacity),
	}
}

func (c *pathLRU) Get(key string) ([]Token, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if toks, ok := c.items[key]; ok {
		return toks, true
	}
	return nil, false
}

func (c *pathLRU) Set(key string, tokens []Token) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, exists := c.items[key]; !exists {
		if len(c.items) >= c.capacity {
			// Evict oldest item
			delete(c.items, c.order[0])
			c.order = c.order[1:]
		}
		c.order = append(c.order, key)
	}
	c.items[key] = tokens
}

var compiledPathCache = newPathLRU(512)

func compilePath(path string) ([]Token, error) {
	if tokens, ok := compiledPathCache.Get(path); ok {
		return tokens, nil
	}
	tokens, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	compiledPathCache.Set(path, tokens)
	return tokens, nil
}
