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

import "slices"

// Sort buckets, the outermost field of a symbol's rank.
const (
	bucketColorless = iota
	bucketColored
	bucketHybrid
	bucketGeneric
	bucketSnow
)

// Compare orders two symbols by the conventional display order for mana
// costs and returns -1, 0 or +1, so it plugs into slices.SortStableFunc.
//
// The order, outermost first:
//  1. Colorless, then colored, then hybrid, then generic, then snow.
//  2. Colored symbols follow the wheel (W, U, B, R, G); a phyrexian symbol
//     comes right after its plain color.
//  3. Inside the hybrid bucket: colorless hybrids by color, then two-color
//     hybrids by their canonical first color and the wheel distance to the
//     second (allied before enemy, so {R/G} before {R/W}) with each
//     phyrexian hybrid right after its plain counterpart, then generic
//     hybrids by amount and color.
//  4. Inside the generic bucket: {X}, {Y}, {Z}, then numbers ascending.
//
// Compare is a total order over well-formed symbols: it returns 0 exactly
// when the symbols are equal.
func (s Symbol) Compare(other Symbol) int {
	a, b := s.rank(), other.rank()
	return slices.Compare(a[:], b[:])
}

// rank is the symbol's sort key: bucket first, then intra-bucket fields.
// The key is injective over well-formed symbols, so equal ranks mean equal
// symbols.
func (s Symbol) rank() [5]int {
	switch s.kind {
	case KindColorless:
		return [5]int{bucketColorless}
	case KindColored:
		return [5]int{bucketColored, int(s.a), 0}
	case KindPhyrexian:
		return [5]int{bucketColored, int(s.a), 1}
	case KindColorlessHybrid:
		return [5]int{bucketHybrid, 0, int(s.a)}
	case KindHybrid:
		return [5]int{bucketHybrid, 1, int(s.a), s.a.wheelSteps(s.b), 0}
	case KindPhyrexianHybrid:
		return [5]int{bucketHybrid, 1, int(s.a), s.a.wheelSteps(s.b), 1}
	case KindGenericHybrid:
		return [5]int{bucketHybrid, 2, s.n, int(s.a)}
	case KindVariable:
		return [5]int{bucketGeneric, 0, int(s.letter)}
	case KindGeneric:
		return [5]int{bucketGeneric, 1, s.n}
	case KindSnow:
		return [5]int{bucketSnow}
	}
	return [5]int{bucketSnow, 1}
}

// Sorted returns a new cost with the symbols arranged in the conventional
// display order under Compare. The sort is stable, so structurally equal
// symbols keep their relative positions, and the receiver is unchanged.
func (c Cost) Sorted() Cost {
	sorted := slices.Clone(c)
	slices.SortStableFunc(sorted, Symbol.Compare)
	return sorted
}
