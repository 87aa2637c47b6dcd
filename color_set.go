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

package mana

// colorSet is a bitset over the five colors, bit i for Color(i).
type colorSet uint8

// numColorSets counts the 2^5 possible color combinations.
const numColorSets = 1 << NumColors

func (s colorSet) with(c Color) colorSet {
	return s | 1<<c
}

func (s colorSet) has(c Color) bool {
	return s&(1<<c) != 0
}

// orderOf returns the position of c within the canonical written order of
// this combination. Meaningful only for colors in the set.
func (s colorSet) orderOf(c Color) int {
	return int(colorOrderTable[s][c])
}

// colorOrderTable[set][color] is the position of color within the canonical
// order of the combination set. Every combination of two or more colors has
// its own conventional order; rows for the empty and single-color sets stay
// zero.
var colorOrderTable = buildColorOrderTable()

func buildColorOrderTable() [numColorSets][NumColors]uint8 {
	var table [numColorSets][NumColors]uint8

	add := func(anchor Color, offsets ...int) {
		var set colorSet
		for _, off := range offsets {
			set = set.with(anchor.next(off))
		}
		for i, off := range offsets {
			table[set][anchor.next(off)] = uint8(i)
		}
	}

	for anchor := range AllColors() {
		// Allied pair: two adjacent colors.
		add(anchor, 0, 1)
		// Enemy pair: two colors two steps apart.
		add(anchor, 0, 2)
		// Shard: three adjacent colors.
		add(anchor, 0, 1, 2)
		// Wedge: a color and its two enemies, written as a chain of
		// enemy pairs with the shared color in the middle.
		add(anchor, 1, 3, 0)
		// Four colors: everything but anchor.next(4).
		add(anchor, 0, 1, 2, 3)
	}

	// All five colors use plain wheel order.
	for c := range AllColors() {
		table[numColorSets-1][c] = uint8(c)
	}

	return table
}

// canonicalPair orients a two-color pair into its conventional written
// order. The colors must differ.
func canonicalPair(a, b Color) (Color, Color) {
	set := colorSet(0).with(a).with(b)
	if set.orderOf(a) > set.orderOf(b) {
		return b, a
	}
	return a, b
}
