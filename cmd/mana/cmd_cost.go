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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/contriboss/mana-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// parseCmd parses a cost and describes each symbol
var parseCmd = &cobra.Command{
	Use:   "parse [cost]",
	Short: "Parse a mana cost and describe each symbol",
	Long: `Parses a cost such as {2}{W/B}{U} and prints each symbol with its
kind, spoken name and mana value contribution.

Examples:
  mana parse "{2}{W/B}{U}"
  mana parse "{X}{G}{G}" --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

// sortCmd puts a cost into display order
var sortCmd = &cobra.Command{
	Use:   "sort [cost]",
	Short: "Sort a mana cost into the conventional display order",
	Long: `Sorts the symbols of a cost into display order: colorless first,
then colored symbols in wheel order, hybrids, numeric symbols and snow.
Symbols that compare equal keep their input order.

Example:
  mana sort "{4}{G}{W/U}{C}{U/P}{X}"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSort,
}

// valueCmd computes a cost's mana value
var valueCmd = &cobra.Command{
	Use:   "value [cost]",
	Short: "Compute a mana cost's mana value",
	Long: `Computes the mana value of a cost: fixed generic symbols count
their amount, {X} {Y} {Z} count zero, every other symbol counts one.

Example:
  mana value "{X}{2/U}{4}{G}"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValue,
}

// symbolReport is the JSON shape of one symbol
type symbolReport struct {
	Symbol    mana.Symbol `json:"symbol"`
	Kind      string      `json:"kind"`
	Name      string      `json:"name"`
	ManaValue int         `json:"manaValue"`
}

// costReport is the JSON shape of a parsed cost
type costReport struct {
	Cost      mana.Cost      `json:"cost"`
	ManaValue int            `json:"manaValue"`
	Symbols   []symbolReport `json:"symbols,omitempty"`
}

// sortReport pairs a cost with its display order
type sortReport struct {
	Cost   mana.Cost `json:"cost"`
	Sorted mana.Cost `json:"sorted"`
}

// runParse parses a cost and reports each symbol
func runParse(cmd *cobra.Command, args []string) error {
	cost, err := mana.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	logger.Debug("parsed cost",
		zap.String("cost", cost.String()),
		zap.Int("symbols", len(cost)))

	if jsonOut {
		return emitJSON(costReport{
			Cost:      cost,
			ManaValue: cost.ManaValue(),
			Symbols:   symbolReports(cost),
		})
	}

	s := newStyles()
	for sym := range cost.All() {
		token := fmt.Sprintf("%-8s", sym.String())
		if !noColor {
			token = symbolStyle(sym).Render(token)
		}
		fmt.Printf("%s%-18v%s\n", token, sym.Kind(), sym.Name())
	}
	fmt.Printf("%s %d\n", s.Heading.Render("Mana value:"), cost.ManaValue())
	return nil
}

// runSort sorts a cost into display order
func runSort(cmd *cobra.Command, args []string) error {
	cost, err := mana.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	sorted := cost.Sorted()
	logger.Debug("sorted cost",
		zap.String("cost", cost.String()),
		zap.String("sorted", sorted.String()))

	if jsonOut {
		return emitJSON(sortReport{Cost: cost, Sorted: sorted})
	}
	fmt.Println(renderCost(sorted))
	return nil
}

// runValue computes a cost's mana value
func runValue(cmd *cobra.Command, args []string) error {
	cost, err := mana.Parse(strings.Join(args, " "))
	if err != nil {
		return err
	}
	value := cost.ManaValue()
	logger.Debug("computed mana value",
		zap.String("cost", cost.String()),
		zap.Int("value", value))

	if jsonOut {
		return emitJSON(costReport{Cost: cost, ManaValue: value})
	}
	fmt.Println(value)
	return nil
}

// symbolReports builds the per-symbol JSON entries for a cost
func symbolReports(cost mana.Cost) []symbolReport {
	reports := make([]symbolReport, 0, len(cost))
	for sym := range cost.All() {
		reports = append(reports, symbolReport{
			Symbol:    sym,
			Kind:      sym.Kind().String(),
			Name:      sym.Name(),
			ManaValue: sym.ManaValue(),
		})
	}
	return reports
}

// emitJSON writes v to stdout as indented JSON
func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
