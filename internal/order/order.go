// Package order sorts filtered collections by a view's sort key.
//
// Comparators are three-way and the sort is stable, so records with equal
// keys keep their filtered order. Sorting never mutates its input.
package order

import (
	"cmp"
	"slices"
	"strings"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type Config struct {
	Key       string
	Direction Direction
}

// ParseConfig reads the "key-direction" form used by the filter bar's sort
// select, e.g. "hours-desc". A missing direction means asc.
func ParseConfig(s string) Config {
	key, dir, _ := strings.Cut(s, "-")
	d := Direction(dir)
	if d != Desc {
		d = Asc
	}
	return Config{Key: key, Direction: d}
}

func (c Config) String() string {
	d := c.Direction
	if d != Desc {
		d = Asc
	}
	return c.Key + "-" + string(d)
}

// Reverse returns the config with the opposite direction.
func (c Config) Reverse() Config {
	if c.Direction == Desc {
		c.Direction = Asc
	} else {
		c.Direction = Desc
	}
	return c
}

// Keys maps sort key names to three-way comparators.
type Keys[T any] map[string]func(a, b T) int

func ByString[T any](f func(T) string) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(f(a), f(b)) }
}

func ByNumber[T any](f func(T) float64) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(f(a), f(b)) }
}

// Names lists the keys in alphabetical order.
func (k Keys[T]) Names() []string {
	names := make([]string, 0, len(k))
	for n := range k {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Sort returns a sorted copy of items. An unknown cfg.Key falls back to def;
// if def is unknown too the copy keeps input order.
func Sort[T any](items []T, cfg Config, def string, keys Keys[T]) []T {
	out := slices.Clone(items)
	cmpFn, ok := keys[cfg.Key]
	if !ok {
		cmpFn, ok = keys[def]
	}
	if !ok {
		return out
	}
	if cfg.Direction == Desc {
		slices.SortStableFunc(out, func(a, b T) int { return cmpFn(b, a) })
	} else {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}
