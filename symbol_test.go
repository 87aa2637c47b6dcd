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

package mana_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/contriboss/mana-go"
)

func TestColor(t *testing.T) {
	tests := []struct {
		color  mana.Color
		letter string
		name   string
		hex    string
	}{
		{mana.White, "W", "white", "#fffbd5"},
		{mana.Blue, "U", "blue", "#aae0fa"},
		{mana.Black, "B", "black", "#cbc2bf"},
		{mana.Red, "R", "red", "#f9aa8f"},
		{mana.Green, "G", "green", "#9bd3ae"},
	}

	for _, tt := range tests {
		t.Run(tt.letter, func(t *testing.T) {
			if got := tt.color.String(); got != tt.letter {
				t.Errorf("String() = %q, want %q", got, tt.letter)
			}
			if got := tt.color.Name(); got != tt.name {
				t.Errorf("Name() = %q, want %q", got, tt.name)
			}
			if got := tt.color.Hex(); got != tt.hex {
				t.Errorf("Hex() = %q, want %q", got, tt.hex)
			}
		})
	}
}

func TestAllColorsWheelOrder(t *testing.T) {
	var got []mana.Color
	for c := range mana.AllColors() {
		got = append(got, c)
	}

	want := []mana.Color{mana.White, mana.Blue, mana.Black, mana.Red, mana.Green}
	if !slices.Equal(got, want) {
		t.Errorf("AllColors() = %v, want %v", got, want)
	}
}

func TestConstructorValidation(t *testing.T) {
	tests := []struct {
		name    string
		build   func() (mana.Symbol, error)
		wantErr bool
	}{
		{"generic zero", func() (mana.Symbol, error) { return mana.Generic(0) }, false},
		{"generic negative", func() (mana.Symbol, error) { return mana.Generic(-1) }, true},
		{"variable lowercase", func() (mana.Symbol, error) { return mana.Variable('x') }, false},
		{"variable unknown letter", func() (mana.Symbol, error) { return mana.Variable('Q') }, true},
		{"colored", func() (mana.Symbol, error) { return mana.Colored(mana.Red) }, false},
		{"colored out of range", func() (mana.Symbol, error) { return mana.Colored(mana.Color(7)) }, true},
		{"colored negative", func() (mana.Symbol, error) { return mana.Colored(mana.Color(-1)) }, true},
		{"phyrexian", func() (mana.Symbol, error) { return mana.Phyrexian(mana.Blue) }, false},
		{"hybrid", func() (mana.Symbol, error) { return mana.Hybrid(mana.Blue, mana.Black) }, false},
		{"hybrid same color", func() (mana.Symbol, error) { return mana.Hybrid(mana.White, mana.White) }, true},
		{"phyrexian hybrid same color", func() (mana.Symbol, error) { return mana.PhyrexianHybrid(mana.Green, mana.Green) }, true},
		{"generic hybrid", func() (mana.Symbol, error) { return mana.GenericHybrid(2, mana.Blue) }, false},
		{"generic hybrid negative", func() (mana.Symbol, error) { return mana.GenericHybrid(-2, mana.Blue) }, true},
		{"generic hybrid bad color", func() (mana.Symbol, error) { return mana.GenericHybrid(2, mana.Color(9)) }, true},
		{"colorless hybrid", func() (mana.Symbol, error) { return mana.ColorlessHybrid(mana.Green) }, false},
		{"colorless hybrid bad color", func() (mana.Symbol, error) { return mana.ColorlessHybrid(mana.Color(5)) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			var ierr *mana.InvalidSymbolError
			if !errors.As(err, &ierr) {
				t.Errorf("error = %T, want *InvalidSymbolError", err)
			}
		})
	}
}

// TestHybridCanonicalOrder pins the conventional orientation of all ten
// color pairs: a hybrid built either way around stores and renders the
// same canonical pair.
func TestHybridCanonicalOrder(t *testing.T) {
	tests := []struct {
		a, b mana.Color
		want string
	}{
		{mana.White, mana.Blue, "{W/U}"},
		{mana.Blue, mana.Black, "{U/B}"},
		{mana.Black, mana.Red, "{B/R}"},
		{mana.Red, mana.Green, "{R/G}"},
		{mana.Green, mana.White, "{G/W}"},
		{mana.White, mana.Black, "{W/B}"},
		{mana.Blue, mana.Red, "{U/R}"},
		{mana.Black, mana.Green, "{B/G}"},
		{mana.Red, mana.White, "{R/W}"},
		{mana.Green, mana.Blue, "{G/U}"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			forward, err := mana.Hybrid(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Hybrid(%s, %s) error = %v", tt.a, tt.b, err)
			}
			reversed, err := mana.Hybrid(tt.b, tt.a)
			if err != nil {
				t.Fatalf("Hybrid(%s, %s) error = %v", tt.b, tt.a, err)
			}

			if forward != reversed {
				t.Errorf("Hybrid(%s, %s) != Hybrid(%s, %s)", tt.a, tt.b, tt.b, tt.a)
			}
			if got := forward.String(); got != tt.want {
				t.Errorf("Hybrid(%s, %s) = %q, want %q", tt.a, tt.b, got, tt.want)
			}

			phyrexian, err := mana.PhyrexianHybrid(tt.b, tt.a)
			if err != nil {
				t.Fatalf("PhyrexianHybrid(%s, %s) error = %v", tt.b, tt.a, err)
			}
			wantP := tt.want[:len(tt.want)-1] + "/P}"
			if got := phyrexian.String(); got != wantP {
				t.Errorf("PhyrexianHybrid(%s, %s) = %q, want %q", tt.b, tt.a, got, wantP)
			}
		})
	}
}

func TestSymbolName(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"{W}", "White mana"},
		{"{U}", "Blue mana"},
		{"{U/P}", "Phyrexian blue mana"},
		{"{C}", "Colorless mana"},
		{"{C/W}", "Hybrid mana: colorless or white"},
		{"{U/B}", "Hybrid mana: blue or black"},
		{"{R/G/P}", "Phyrexian hybrid mana: red or green"},
		{"{2/B}", "Hybrid mana: 2 generic or black"},
		{"{0}", "0 generic mana"},
		{"{3}", "3 generic mana"},
		{"{X}", "X generic mana"},
		{"{Z}", "Z generic mana"},
		{"{S}", "Snow mana"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			if got := mana.MustParseSymbol(tt.token).Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSymbolAccessors(t *testing.T) {
	tests := []struct {
		token         string
		kind          mana.Kind
		colors        []mana.Color
		amount        int
		hasAmount     bool
		phyrexian     bool
		variableByte  byte
		hasVariable   bool
		wantManaValue int
	}{
		{"{C}", mana.KindColorless, nil, 0, false, false, 0, false, 1},
		{"{G}", mana.KindColored, []mana.Color{mana.Green}, 0, false, false, 0, false, 1},
		{"{W/P}", mana.KindPhyrexian, []mana.Color{mana.White}, 0, false, true, 0, false, 1},
		{"{C/R}", mana.KindColorlessHybrid, []mana.Color{mana.Red}, 0, false, false, 0, false, 1},
		{"{U/B}", mana.KindHybrid, []mana.Color{mana.Blue, mana.Black}, 0, false, false, 0, false, 1},
		{"{R/G/P}", mana.KindPhyrexianHybrid, []mana.Color{mana.Red, mana.Green}, 0, false, true, 0, false, 1},
		{"{2/U}", mana.KindGenericHybrid, []mana.Color{mana.Blue}, 2, true, false, 0, false, 2},
		{"{Y}", mana.KindVariable, nil, 0, false, false, 'Y', true, 0},
		{"{7}", mana.KindGeneric, nil, 7, true, false, 0, false, 7},
		{"{S}", mana.KindSnow, nil, 0, false, false, 0, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			sym := mana.MustParseSymbol(tt.token)

			if got := sym.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := sym.Colors(); !slices.Equal(got, tt.colors) {
				t.Errorf("Colors() = %v, want %v", got, tt.colors)
			}
			if amount, ok := sym.Amount(); amount != tt.amount || ok != tt.hasAmount {
				t.Errorf("Amount() = %d, %v, want %d, %v", amount, ok, tt.amount, tt.hasAmount)
			}
			if letter, ok := sym.VariableLetter(); letter != tt.variableByte || ok != tt.hasVariable {
				t.Errorf("VariableLetter() = %q, %v, want %q, %v", letter, ok, tt.variableByte, tt.hasVariable)
			}
			if got := sym.IsPhyrexian(); got != tt.phyrexian {
				t.Errorf("IsPhyrexian() = %v, want %v", got, tt.phyrexian)
			}
			if got := sym.ManaValue(); got != tt.wantManaValue {
				t.Errorf("ManaValue() = %d, want %d", got, tt.wantManaValue)
			}
		})
	}
}

func TestZeroSymbolIsColorless(t *testing.T) {
	var sym mana.Symbol
	if got := sym.Kind(); got != mana.KindColorless {
		t.Errorf("zero Symbol kind = %v, want KindColorless", got)
	}
	if got := sym.String(); got != "{C}" {
		t.Errorf("zero Symbol = %q, want %q", got, "{C}")
	}
	if sym != mana.Colorless() {
		t.Error("zero Symbol != Colorless()")
	}
}

func TestKindString(t *testing.T) {
	kinds := map[mana.Kind]string{
		mana.KindColorless:       "colorless",
		mana.KindColored:         "colored",
		mana.KindPhyrexian:       "phyrexian",
		mana.KindColorlessHybrid: "colorless hybrid",
		mana.KindHybrid:          "hybrid",
		mana.KindPhyrexianHybrid: "phyrexian hybrid",
		mana.KindGenericHybrid:   "generic hybrid",
		mana.KindVariable:        "variable",
		mana.KindGeneric:         "generic",
		mana.KindSnow:            "snow",
	}

	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
