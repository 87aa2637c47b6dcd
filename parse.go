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
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse reads the text form of a mana cost, such as {2}{W/B}{U}, and
// returns its symbols in source order; it never reorders (use Cost.Sorted
// for that).
//
// The input is a run of brace-delimited tokens. Whitespace may separate
// tokens, but any other character outside braces fails the parse, as does
// any malformed token: there are no partial results. Letters match
// case-insensitively. Empty or all-whitespace input is a valid empty cost.
//
// Failures return a *ParseError carrying the byte offset and offending
// substring.
func Parse(text string) (Cost, error) {
	var cost Cost
	for i := 0; i < len(text); {
		switch b := text[i]; {
		case b == '{':
			rel := strings.IndexByte(text[i:], '}')
			if rel < 0 {
				return nil, &ParseError{Offset: i, Token: text[i:], Err: errUnmatchedBrace}
			}
			token := text[i : i+rel+1]
			sym, err := parseBody(token[1 : len(token)-1])
			if err != nil {
				return nil, &ParseError{Offset: i, Token: token, Err: err}
			}
			cost = append(cost, sym)
			i += len(token)
		case isSpace(b):
			i++
		default:
			_, size := utf8.DecodeRuneInString(text[i:])
			return nil, &ParseError{Offset: i, Token: text[i : i+size], Err: errStrayChar}
		}
	}
	return cost, nil
}

// ParseSymbol reads exactly one mana symbol, with or without braces: "U/P"
// and "{U/P}" are both accepted. Surrounding whitespace is not.
func ParseSymbol(text string) (Symbol, error) {
	body := text
	if strings.HasPrefix(text, "{") {
		if !strings.HasSuffix(text, "}") {
			return Symbol{}, &ParseError{Token: text, Err: errUnmatchedBrace}
		}
		body = text[1 : len(text)-1]
	}
	sym, err := parseBody(body)
	if err != nil {
		return Symbol{}, &ParseError{Token: text, Err: err}
	}
	return sym, nil
}

// MustParse is like Parse but panics on error. It keeps fixed costs short
// in tests and examples:
//
//	cost := mana.MustParse("{1}{G}")
func MustParse(text string) Cost {
	cost, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return cost
}

// MustParseSymbol is like ParseSymbol but panics on error.
func MustParseSymbol(text string) Symbol {
	sym, err := ParseSymbol(text)
	if err != nil {
		panic(err)
	}
	return sym
}

// parseBody turns the inside of one brace pair into a symbol. Errors are
// either parse failure causes or an *InvalidSymbolError from a constructor;
// the caller wraps them in a *ParseError.
func parseBody(body string) (Symbol, error) {
	if body == "" {
		return Symbol{}, errEmptySymbol
	}

	parts := strings.Split(body, "/")
	switch len(parts) {
	case 1:
		return parseSingle(parts[0])
	case 2:
		return parsePair(parts[0], parts[1])
	case 3:
		// Only a phyrexian hybrid has three parts: color/color/P.
		if !strings.EqualFold(parts[2], "P") {
			return Symbol{}, errUnknownSymbol
		}
		a, aok := colorPart(parts[0])
		b, bok := colorPart(parts[1])
		if !aok || !bok {
			return Symbol{}, errUnknownSymbol
		}
		return PhyrexianHybrid(a, b)
	}
	return Symbol{}, errUnknownSymbol
}

func parseSingle(part string) (Symbol, error) {
	if isDigits(part) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Symbol{}, errUnknownSymbol
		}
		return Generic(n)
	}
	if len(part) != 1 {
		return Symbol{}, errUnknownSymbol
	}
	switch part[0] {
	case 'C', 'c':
		return Colorless(), nil
	case 'S', 's':
		return Snow(), nil
	case 'X', 'x', 'Y', 'y', 'Z', 'z':
		return Variable(part[0])
	}
	if c, ok := colorFromLetter(part[0]); ok {
		return Colored(c)
	}
	return Symbol{}, errUnknownSymbol
}

func parsePair(first, second string) (Symbol, error) {
	// digits/color is a generic hybrid such as {2/U}.
	if isDigits(first) {
		c, ok := colorPart(second)
		if !ok {
			return Symbol{}, errUnknownSymbol
		}
		n, err := strconv.Atoi(first)
		if err != nil {
			return Symbol{}, errUnknownSymbol
		}
		return GenericHybrid(n, c)
	}

	// C/color is a colorless hybrid such as {C/U}. There is no {C/P}.
	if strings.EqualFold(first, "C") {
		c, ok := colorPart(second)
		if !ok {
			return Symbol{}, errUnknownSymbol
		}
		return ColorlessHybrid(c)
	}

	a, ok := colorPart(first)
	if !ok {
		return Symbol{}, errUnknownSymbol
	}
	if strings.EqualFold(second, "P") {
		return Phyrexian(a)
	}
	b, ok := colorPart(second)
	if !ok {
		return Symbol{}, errUnknownSymbol
	}
	return Hybrid(a, b)
}

func colorPart(s string) (Color, bool) {
	if len(s) != 1 {
		return 0, false
	}
	return colorFromLetter(s[0])
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
