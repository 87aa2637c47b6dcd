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

import "iter"

// Color is one of the five colors of mana. The declaration order is the
// color wheel (White, Blue, Black, Red, Green), which fixes the conventional
// written order of every multicolor combination.
type Color int

const (
	// White is the first color of the wheel, written W.
	White Color = iota
	// Blue follows White, written U.
	Blue
	// Black follows Blue, written B.
	Black
	// Red follows Black, written R.
	Red
	// Green follows Red and wraps back to White, written G.
	Green
)

// NumColors is the number of colors on the wheel.
const NumColors = 5

// AllColors returns an iterator over the five colors in wheel order.
func AllColors() iter.Seq[Color] {
	return func(yield func(Color) bool) {
		for c := White; c <= Green; c++ {
			if !yield(c) {
				return
			}
		}
	}
}

// String returns the single-letter form used in cost notation: W, U, B, R or G.
func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Blue:
		return "U"
	case Black:
		return "B"
	case Red:
		return "R"
	case Green:
		return "G"
	}
	return "?"
}

// Name returns the color's English name in lower case.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Blue:
		return "blue"
	case Black:
		return "black"
	case Red:
		return "red"
	case Green:
		return "green"
	}
	return "unknown"
}

// Hex returns the hex triplet conventionally used to tint the color's symbol.
// Black shares its tint with colorless and generic symbols.
func (c Color) Hex() string {
	switch c {
	case White:
		return "#fffbd5"
	case Blue:
		return "#aae0fa"
	case Black:
		return "#cbc2bf"
	case Red:
		return "#f9aa8f"
	case Green:
		return "#9bd3ae"
	}
	return HexColorless
}

// HexColorless is the hex triplet used to tint colorless, generic and snow
// symbols.
const HexColorless = "#cbc2bf"

// next returns the color reached by stepping clockwise around the wheel.
func (c Color) next(steps int) Color {
	return Color((int(c) + steps) % NumColors)
}

// wheelSteps returns how many clockwise steps lead from c to other (0 to 4).
func (c Color) wheelSteps(other Color) int {
	return (int(other) - int(c) + NumColors) % NumColors
}

// colorFromLetter maps a cost-notation letter to its color, folding case.
func colorFromLetter(b byte) (Color, bool) {
	switch b {
	case 'W', 'w':
		return White, true
	case 'U', 'u':
		return Blue, true
	case 'B', 'b':
		return Black, true
	case 'R', 'r':
		return Red, true
	case 'G', 'g':
		return Green, true
	}
	return 0, false
}
