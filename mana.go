// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package mana models Magic: the Gathering mana costs: the closed set of
// mana symbols, a parser for the braced text form, the conventional display
// order, and mana values.
package mana

import (
	"encoding"
	"fmt"
	"iter"
	"math/bits"
	"slices"
	"strings"
)

// Cost is an ordered sequence of mana symbols, as printed on a card.
// Parse keeps source order; Sorted produces the conventional display order.
// Duplicate symbols are meaningful and preserved.
//
// Example:
//
//	cost, err := mana.Parse("{2}{W/B}{U}")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cost.ManaValue()) // 4
type Cost []Symbol

// String returns the canonical text of the cost: every symbol's token
// concatenated without separators, such as {5}{C}{U}{R/G/P}{S}. Parsing
// the result yields an equal cost.
func (c Cost) String() string {
	var sb strings.Builder
	for _, s := range c {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// ManaValue returns the total mana value of the cost: the sum of every
// symbol's contribution. The empty cost has mana value 0.
func (c Cost) ManaValue() int {
	total := 0
	for _, s := range c {
		total += s.ManaValue()
	}
	return total
}

// Equal reports whether both costs hold the same symbols in the same order.
func (c Cost) Equal(other Cost) bool {
	return slices.Equal(c, other)
}

// All returns an iterator over the symbols in order. This enables
// range-over-function syntax:
//
//	for sym := range cost.All() {
//	    fmt.Println(sym.Name())
//	}
func (c Cost) All() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for _, s := range c {
			if !yield(s) {
				return
			}
		}
	}
}

// ColorIdentity returns the colors the cost names, each once, in the
// conventional written order for that particular combination. Allied and
// enemy pairs, shards, wedges and larger groups each have their own order;
// a cost naming no color returns nil.
func (c Cost) ColorIdentity() []Color {
	var set colorSet
	for _, s := range c {
		for _, col := range s.Colors() {
			set = set.with(col)
		}
	}
	if set == 0 {
		return nil
	}

	identity := make([]Color, bits.OnesCount8(uint8(set)))
	for col := range AllColors() {
		if set.has(col) {
			identity[set.orderOf(col)] = col
		}
	}
	return identity
}

// MarshalText implements encoding.TextMarshaler with the canonical text.
func (c Cost) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// Parse accepts.
func (c *Cost) UnmarshalText(text []byte) error {
	cost, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = cost
	return nil
}

var (
	_ fmt.Stringer             = Cost(nil)
	_ encoding.TextMarshaler   = Cost(nil)
	_ encoding.TextUnmarshaler = (*Cost)(nil)
)
