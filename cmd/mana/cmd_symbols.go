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
	"fmt"

	"github.com/contriboss/mana-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// symbolsCmd lists the full symbol catalog
var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "List every mana symbol with its name and value",
	Long: `Prints the full symbol catalog in display order: every colored,
phyrexian, hybrid, numeric and snow symbol with its kind, spoken name
and mana value contribution.`,
	Args: cobra.NoArgs,
	RunE: runSymbols,
}

// runSymbols prints the symbol catalog
func runSymbols(cmd *cobra.Command, args []string) error {
	cat := catalog()
	logger.Debug("built symbol catalog", zap.Int("symbols", len(cat)))

	if jsonOut {
		return emitJSON(symbolReports(cat))
	}

	for sym := range cat.All() {
		token := fmt.Sprintf("%-8s", sym.String())
		if !noColor {
			token = symbolStyle(sym).Render(token)
		}
		fmt.Printf("%s%-18v%-40s%d\n", token, sym.Kind(), sym.Name(), sym.ManaValue())
	}
	return nil
}

// catalog returns one symbol of every printed form, in display order.
// Generic symbols run 0 through 20, the range that has seen print.
func catalog() mana.Cost {
	symbols := mana.Cost{mana.Colorless(), mana.Snow()}

	for _, tok := range []string{"{X}", "{Y}", "{Z}"} {
		symbols = append(symbols, mana.MustParseSymbol(tok))
	}
	for n := 0; n <= 20; n++ {
		sym, _ := mana.Generic(n)
		symbols = append(symbols, sym)
	}

	for a := range mana.AllColors() {
		colored, _ := mana.Colored(a)
		phyrexian, _ := mana.Phyrexian(a)
		colorless, _ := mana.ColorlessHybrid(a)
		generic, _ := mana.GenericHybrid(2, a)
		symbols = append(symbols, colored, phyrexian, colorless, generic)

		for b := range mana.AllColors() {
			if a >= b {
				continue
			}
			hybrid, _ := mana.Hybrid(a, b)
			phyrexianHybrid, _ := mana.PhyrexianHybrid(a, b)
			symbols = append(symbols, hybrid, phyrexianHybrid)
		}
	}

	return symbols.Sorted()
}
