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

package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/contriboss/mana-go"
)

// styles holds the styled components for terminal output
type styles struct {
	Heading lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
}

// newStyles creates the output styles; with tinting disabled every style is
// a no-op and symbols render as bare tokens
func newStyles() styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{Heading: plain, Value: plain, Muted: plain}
	}
	return styles{
		Heading: lipgloss.NewStyle().Bold(true),
		Value:   lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Faint(true),
	}
}

// symbolStyle returns the style tinting a symbol with its palette color.
// Symbols naming no color share the colorless tint.
func symbolStyle(sym mana.Symbol) lipgloss.Style {
	hex := mana.HexColorless
	if colors := sym.Colors(); len(colors) > 0 {
		hex = colors[0].Hex()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}

// renderSymbol renders one token, tinted unless --no-color is set
func renderSymbol(sym mana.Symbol) string {
	if noColor {
		return sym.String()
	}
	return symbolStyle(sym).Render(sym.String())
}

// renderCost renders every token of a cost with its own tint
func renderCost(cost mana.Cost) string {
	var sb strings.Builder
	for sym := range cost.All() {
		sb.WriteString(renderSymbol(sym))
	}
	return sb.String()
}
