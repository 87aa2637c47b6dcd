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

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the symbol variants.
type Kind int

const (
	// KindColorless is the fixed colorless symbol {C}.
	KindColorless Kind = iota
	// KindColored is a single colored symbol such as {U}.
	KindColored
	// KindPhyrexian is a colored symbol also payable with life, such as {U/P}.
	KindPhyrexian
	// KindColorlessHybrid is payable with colorless mana or one specific
	// color, such as {C/U}.
	KindColorlessHybrid
	// KindHybrid is payable with either of two colors, such as {U/B}.
	KindHybrid
	// KindPhyrexianHybrid is a two-color hybrid whose halves are both
	// phyrexian, such as {R/G/P}.
	KindPhyrexianHybrid
	// KindGenericHybrid is payable with a fixed generic amount or one
	// specific color, such as {2/U}.
	KindGenericHybrid
	// KindVariable is a variable generic amount: {X}, {Y} or {Z}.
	KindVariable
	// KindGeneric is a fixed generic amount such as {0} or {5}.
	KindGeneric
	// KindSnow is the snow symbol {S}.
	KindSnow
)

// String returns the kind's name in lower case.
func (k Kind) String() string {
	switch k {
	case KindColorless:
		return "colorless"
	case KindColored:
		return "colored"
	case KindPhyrexian:
		return "phyrexian"
	case KindColorlessHybrid:
		return "colorless hybrid"
	case KindHybrid:
		return "hybrid"
	case KindPhyrexianHybrid:
		return "phyrexian hybrid"
	case KindGenericHybrid:
		return "generic hybrid"
	case KindVariable:
		return "variable"
	case KindGeneric:
		return "generic"
	case KindSnow:
		return "snow"
	}
	return "unknown"
}

// Symbol is one mana symbol: a single indivisible unit of a mana cost,
// written as one brace-delimited token. Symbols are immutable values with
// structural equality, so == compares them and they key maps. The zero
// Symbol is the colorless symbol {C}.
//
// Build symbols through the constructor for each kind (Generic, Colored,
// Hybrid, ...) or by parsing text. Constructors validate their own
// invariants and fail with *InvalidSymbolError:
//
//	ub, err := mana.Hybrid(mana.Blue, mana.Black)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(ub) // {U/B}
type Symbol struct {
	kind   Kind
	a, b   Color
	n      int
	letter byte
}

// Generic returns the symbol for a fixed amount of generic mana, such as
// {5}. The amount must not be negative; {0} is well-formed.
func Generic(n int) (Symbol, error) {
	if n < 0 {
		return Symbol{}, &InvalidSymbolError{Message: fmt.Sprintf("generic amount must not be negative, got %d", n)}
	}
	return Symbol{kind: KindGeneric, n: n}, nil
}

// Variable returns the symbol for a variable generic amount: {X}, {Y} or
// {Z}. The letter folds to upper case.
func Variable(letter byte) (Symbol, error) {
	switch letter {
	case 'X', 'x':
		letter = 'X'
	case 'Y', 'y':
		letter = 'Y'
	case 'Z', 'z':
		letter = 'Z'
	default:
		return Symbol{}, &InvalidSymbolError{Message: fmt.Sprintf("variable amount must be X, Y or Z, got %q", letter)}
	}
	return Symbol{kind: KindVariable, letter: letter}, nil
}

// Colorless returns the colorless symbol {C}.
func Colorless() Symbol {
	return Symbol{kind: KindColorless}
}

// Snow returns the snow symbol {S}.
func Snow() Symbol {
	return Symbol{kind: KindSnow}
}

// Colored returns the symbol for one mana of the given color, such as {U}.
func Colored(c Color) (Symbol, error) {
	if err := checkColor(c); err != nil {
		return Symbol{}, err
	}
	return Symbol{kind: KindColored, a: c}, nil
}

// Phyrexian returns the symbol payable with one mana of the given color or
// with 2 life, such as {U/P}.
func Phyrexian(c Color) (Symbol, error) {
	if err := checkColor(c); err != nil {
		return Symbol{}, err
	}
	return Symbol{kind: KindPhyrexian, a: c}, nil
}

// Hybrid returns the symbol payable with either of two different colors,
// such as {U/B}. The pair is stored in its canonical wheel order, so
// Hybrid(Black, Blue) and Hybrid(Blue, Black) are the same value and both
// render {U/B}.
func Hybrid(a, b Color) (Symbol, error) {
	if err := checkPair(a, b); err != nil {
		return Symbol{}, err
	}
	a, b = canonicalPair(a, b)
	return Symbol{kind: KindHybrid, a: a, b: b}, nil
}

// PhyrexianHybrid returns the two-color hybrid symbol whose halves are both
// phyrexian, such as {R/G/P}. The pair is canonicalized like Hybrid's.
func PhyrexianHybrid(a, b Color) (Symbol, error) {
	if err := checkPair(a, b); err != nil {
		return Symbol{}, err
	}
	a, b = canonicalPair(a, b)
	return Symbol{kind: KindPhyrexianHybrid, a: a, b: b}, nil
}

// GenericHybrid returns the symbol payable with a fixed generic amount or
// one mana of the given color, such as {2/U}.
func GenericHybrid(n int, c Color) (Symbol, error) {
	if n < 0 {
		return Symbol{}, &InvalidSymbolError{Message: fmt.Sprintf("generic amount must not be negative, got %d", n)}
	}
	if err := checkColor(c); err != nil {
		return Symbol{}, err
	}
	return Symbol{kind: KindGenericHybrid, a: c, n: n}, nil
}

// ColorlessHybrid returns the symbol payable with one colorless mana or one
// mana of the given color, such as {C/U}.
func ColorlessHybrid(c Color) (Symbol, error) {
	if err := checkColor(c); err != nil {
		return Symbol{}, err
	}
	return Symbol{kind: KindColorlessHybrid, a: c}, nil
}

func checkColor(c Color) error {
	if c < White || c > Green {
		return &InvalidSymbolError{Message: fmt.Sprintf("unknown color %d", int(c))}
	}
	return nil
}

func checkPair(a, b Color) error {
	if err := checkColor(a); err != nil {
		return err
	}
	if err := checkColor(b); err != nil {
		return err
	}
	if a == b {
		return &InvalidSymbolError{Message: fmt.Sprintf("hybrid colors must differ, got %s twice", a)}
	}
	return nil
}

// Kind reports which variant the symbol is.
func (s Symbol) Kind() Kind {
	return s.kind
}

// Colors returns the colors the symbol names, in canonical order. Generic,
// variable, colorless and snow symbols name none and return nil.
func (s Symbol) Colors() []Color {
	switch s.kind {
	case KindColored, KindPhyrexian, KindColorlessHybrid, KindGenericHybrid:
		return []Color{s.a}
	case KindHybrid, KindPhyrexianHybrid:
		return []Color{s.a, s.b}
	}
	return nil
}

// Amount returns the numeric amount of a generic or generic-hybrid symbol.
// The second return is false for every other kind.
func (s Symbol) Amount() (int, bool) {
	switch s.kind {
	case KindGeneric, KindGenericHybrid:
		return s.n, true
	}
	return 0, false
}

// VariableLetter returns the letter of a variable symbol: 'X', 'Y' or 'Z'.
// The second return is false for every other kind.
func (s Symbol) VariableLetter() (byte, bool) {
	if s.kind == KindVariable {
		return s.letter, true
	}
	return 0, false
}

// IsPhyrexian reports whether any half of the symbol may be paid with life.
func (s Symbol) IsPhyrexian() bool {
	return s.kind == KindPhyrexian || s.kind == KindPhyrexianHybrid
}

// ManaValue returns the symbol's contribution to a cost's mana value.
// Fixed generic symbols contribute their amount, generic hybrids their
// printed number, variable symbols nothing, and every other symbol one.
func (s Symbol) ManaValue() int {
	switch s.kind {
	case KindGeneric, KindGenericHybrid:
		return s.n
	case KindVariable:
		return 0
	}
	return 1
}

// String returns the canonical brace-delimited token, such as {R/G/P}.
// Parsing the result yields the symbol back.
func (s Symbol) String() string {
	return "{" + s.body() + "}"
}

// body renders the token without braces.
func (s Symbol) body() string {
	switch s.kind {
	case KindColorless:
		return "C"
	case KindColored:
		return s.a.String()
	case KindPhyrexian:
		return s.a.String() + "/P"
	case KindColorlessHybrid:
		return "C/" + s.a.String()
	case KindHybrid:
		return s.a.String() + "/" + s.b.String()
	case KindPhyrexianHybrid:
		return s.a.String() + "/" + s.b.String() + "/P"
	case KindGenericHybrid:
		return strconv.Itoa(s.n) + "/" + s.a.String()
	case KindVariable:
		return string(s.letter)
	case KindGeneric:
		return strconv.Itoa(s.n)
	case KindSnow:
		return "S"
	}
	return "?"
}

// Name returns the symbol's spoken name, such as "Phyrexian blue mana" or
// "Hybrid mana: 2 generic or black".
func (s Symbol) Name() string {
	switch s.kind {
	case KindColorless:
		return "Colorless mana"
	case KindColored:
		return capitalize(s.a.Name()) + " mana"
	case KindPhyrexian:
		return "Phyrexian " + s.a.Name() + " mana"
	case KindColorlessHybrid:
		return "Hybrid mana: colorless or " + s.a.Name()
	case KindHybrid:
		return fmt.Sprintf("Hybrid mana: %s or %s", s.a.Name(), s.b.Name())
	case KindPhyrexianHybrid:
		return fmt.Sprintf("Phyrexian hybrid mana: %s or %s", s.a.Name(), s.b.Name())
	case KindGenericHybrid:
		return fmt.Sprintf("Hybrid mana: %d generic or %s", s.n, s.a.Name())
	case KindVariable:
		return fmt.Sprintf("%c generic mana", s.letter)
	case KindGeneric:
		return fmt.Sprintf("%d generic mana", s.n)
	case KindSnow:
		return "Snow mana"
	}
	return "Unknown mana"
}

// MarshalText implements encoding.TextMarshaler with the canonical token.
func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts anything
// ParseSymbol accepts.
func (s *Symbol) UnmarshalText(text []byte) error {
	sym, err := ParseSymbol(string(text))
	if err != nil {
		return err
	}
	*s = sym
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var (
	_ fmt.Stringer             = Symbol{}
	_ encoding.TextMarshaler   = Symbol{}
	_ encoding.TextUnmarshaler = (*Symbol)(nil)
)
