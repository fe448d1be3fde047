// Package selector compiles and matches the CSS3 subset described in
// spec.md §4.7/§4.8 (C7/C8): a recursive-descent parser over compound
// selectors joined by combinators, and a right-to-left matcher driving
// document-order query traversal.
package selector

import (
	"container/list"
	"sync"

	"github.com/veryhappydom/happydom/dom"
)

// Selector represents a parsed CSS selector.
type Selector interface {
	// Match returns true if the element matches this selector.
	Match(element *dom.Element) bool

	// String returns the original selector string.
	String() string
}

// compiled wraps a selectorAST so it satisfies Selector.
type compiled struct {
	raw string
	ast selectorAST
}

func (c *compiled) Match(element *dom.Element) bool {
	return matchAST(element, c.ast)
}

func (c *compiled) String() string {
	return c.raw
}

// Parse compiles a selector string into an AST without consulting the
// cache; Compile is the cached entry point most callers want.
func Parse(selector string) (Selector, error) {
	toks, err := newTokenizer(selector).tokenize()
	if err != nil {
		return nil, err
	}
	ast, err := newParser(toks, selector).parse()
	if err != nil {
		return nil, err
	}
	return &compiled{raw: selector, ast: ast}, nil
}

// selectorCacheLimit bounds the number of distinct selector strings kept
// compiled in memory (REDESIGN FLAG "Selector compilation cache",
// spec.md §9): a long-running process that builds selectors from
// unbounded user input must not grow this cache without limit.
const selectorCacheLimit = 256

// selectorCache is a size-bounded LRU from raw selector string to its
// compiled form, guarded by mu since query helpers may be called from
// multiple goroutines even though the DOM tree itself is not
// concurrency-safe (spec.md §5 scopes the tree, not the cache, as
// single-threaded).
type selectorCache struct {
	mu    sync.Mutex
	order *list.List
	items map[string]*list.Element
}

type cacheEntry struct {
	key   string
	value Selector
}

var globalCache = &selectorCache{
	order: list.New(),
	items: make(map[string]*list.Element),
}

func (c *selectorCache) get(key string) (Selector, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

func (c *selectorCache) put(key string, value Selector) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*cacheEntry).value = value
		c.order.MoveToFront(el)
		return
	}
	el := c.order.PushFront(&cacheEntry{key: key, value: value})
	c.items[key] = el
	if c.order.Len() > selectorCacheLimit {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}

// Compile parses selector, serving from (and populating) a bounded LRU
// cache keyed on the raw selector text so repeated queries with the
// same selector string, which is the common case for querySelector
// calls in a loop, skip re-tokenizing and re-parsing.
func Compile(selector string) (Selector, error) {
	if sel, ok := globalCache.get(selector); ok {
		return sel, nil
	}
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}
	globalCache.put(selector, sel)
	return sel, nil
}

// Match returns all elements in the subtree rooted at root (root
// itself included) that match selector, in document order.
func Match(root *dom.Element, selector string) ([]*dom.Element, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}

	var results []*dom.Element
	matchDescendants(root, sel, &results)
	return results, nil
}

// MatchFirst returns the first element (root itself included) that
// matches selector, in document order, or nil.
func MatchFirst(root *dom.Element, selector string) (*dom.Element, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}

	return findFirst(root, sel), nil
}

// QuerySelectorAll is Match under the spec.md §6 name.
func QuerySelectorAll(root *dom.Element, selector string) ([]*dom.Element, error) {
	return Match(root, selector)
}

// QuerySelector is MatchFirst under the spec.md §6 name.
func QuerySelector(root *dom.Element, selector string) (*dom.Element, error) {
	return MatchFirst(root, selector)
}

// Matches reports whether element itself satisfies selector.
func Matches(element *dom.Element, selector string) (bool, error) {
	sel, err := Compile(selector)
	if err != nil {
		return false, err
	}
	return sel.Match(element), nil
}

// Closest walks element and its ancestors (stopping at the first node
// that is not itself an Element) and returns the first one matching
// selector, or nil if none does (spec.md §3 traversal accessors, §6).
func Closest(element *dom.Element, selector string) (*dom.Element, error) {
	sel, err := Compile(selector)
	if err != nil {
		return nil, err
	}
	for cur := element; cur != nil; cur = getParentElement(cur) {
		if sel.Match(cur) {
			return cur, nil
		}
	}
	return nil, nil
}

func matchDescendants(elem *dom.Element, sel Selector, results *[]*dom.Element) {
	if sel.Match(elem) {
		*results = append(*results, elem)
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			matchDescendants(childElem, sel, results)
		}
	}
}

func findFirst(elem *dom.Element, sel Selector) *dom.Element {
	if sel.Match(elem) {
		return elem
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			if found := findFirst(childElem, sel); found != nil {
				return found
			}
		}
	}
	return nil
}
