package codec

import (
	"fmt"
	"sort"
)

// Enum maps typed constants to their file-format tokens and back
type Enum[T ~int] struct {
	names  map[T]string
	values map[string]T
	order  []T
}

// NewEnum builds a table from a constant-to-token map.
// Tokens must be unique.
func NewEnum[T ~int](names map[T]string) *Enum[T] {
	e := &Enum[T]{
		names:  make(map[T]string, len(names)),
		values: make(map[string]T, len(names)),
	}
	for v, name := range names {
		if _, dup := e.values[name]; dup {
			panic(fmt.Sprintf("codec: duplicate enum token %q", name))
		}
		e.names[v] = name
		e.values[name] = v
		e.order = append(e.order, v)
	}
	sort.Slice(e.order, func(i, j int) bool { return e.order[i] < e.order[j] })
	return e
}

// Name returns the token for v, or a numeric placeholder for undeclared values
func (e *Enum[T]) Name(v T) string {
	if name, ok := e.names[v]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(v))
}

// Lookup returns the constant for a token
func (e *Enum[T]) Lookup(token string) (T, bool) {
	v, ok := e.values[token]
	return v, ok
}

// Valid reports whether v is a declared variant
func (e *Enum[T]) Valid(v T) bool {
	_, ok := e.names[v]
	return ok
}

// Names returns every token in constant order
func (e *Enum[T]) Names() []string {
	out := make([]string, len(e.order))
	for i, v := range e.order {
		out[i] = e.names[v]
	}
	return out
}
