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
	"errors"
	"fmt"
)

// InvalidSymbolError reports a symbol whose construction would break a
// well-formedness rule: a negative generic amount, an unknown color, or a
// hybrid pair naming the same color twice.
type InvalidSymbolError struct {
	Message string
}

// Error implements the error interface
func (e *InvalidSymbolError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("invalid mana symbol: %s", e.Message)
	}
	return "invalid mana symbol"
}

// ParseError reports input text that does not conform to the mana cost
// grammar. Offset is the byte offset of the offending token within the
// input and Token is the offending substring, so callers can point at the
// exact failure site.
//
// When the token was shaped correctly but named an impossible symbol (for
// example {W/W}), the wrapped error is an *InvalidSymbolError and can be
// recovered with errors.As.
type ParseError struct {
	Offset int
	Token  string
	Err    error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("parsing mana cost at byte %d: %q", e.Offset, e.Token)
	}
	return fmt.Sprintf("parsing mana cost at byte %d: %q: %v", e.Offset, e.Token, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse failure causes. They only ever surface wrapped inside a ParseError;
// callers match on *ParseError and *InvalidSymbolError.
var (
	errUnmatchedBrace = errors.New("unmatched '{'")
	errStrayChar      = errors.New("unexpected character between symbols")
	errEmptySymbol    = errors.New("empty symbol")
	errUnknownSymbol  = errors.New("unrecognized symbol")
)

var (
	_ error = (*InvalidSymbolError)(nil)
	_ error = (*ParseError)(nil)
)
