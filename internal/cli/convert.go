package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokenconv/tokenconv/internal/catalog"
	"github.com/tokenconv/tokenconv/internal/convert"
)

// newConvertCmd creates the "convert" command: a one-shot conversion of an
// amount of one catalog token into another at live (or fallback) prices.
func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <amount> <from> <to>",
		Short: "Convert an amount of one token into another",
		Long:  "Convert an amount of one catalog token into another using live USD prices",
		Example: `  # 1 USDC in ETH
  tokenconv convert 1 USDC ETH

  # 0.5 WBTC in USDT
  tokenconv convert 0.5 WBTC USDT`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], args[1], args[2])
		},
	}

	return cmd
}

func runConvert(cmd *cobra.Command, amountArg, fromArg, toArg string) error {
	if !convert.ValidAmount(amountArg) {
		return fmt.Errorf("invalid amount %q: expected digits with an optional decimal point", amountArg)
	}
	amount := convert.ParseAmount(amountArg)

	fromEntry, ok := catalog.FindBySymbol(strings.ToUpper(fromArg))
	if !ok {
		return unknownTokenErr(fromArg)
	}
	toEntry, ok := catalog.FindBySymbol(strings.ToUpper(toArg))
	if !ok {
		return unknownTokenErr(toArg)
	}

	svc, _, err := buildService(cmd)
	if err != nil {
		return err
	}

	result := svc.AllTokens(cmd.Context())
	if result.Err != nil {
		cmd.PrintErrln("Failed to load token data; using fallback prices.")
	}

	from := tokenBySymbol(result.Tokens, fromEntry.Symbol)
	to := tokenBySymbol(result.Tokens, toEntry.Symbol)

	converted := convert.Convert(amount, from, to)
	cmd.Printf("%s %s = %s %s\n", amountArg, from.Symbol, convert.Format(converted), to.Symbol)
	cmd.Printf("1 %s = %s %s\n", from.Symbol, convert.Format(convert.Convert(1, from, to)), to.Symbol)

	return nil
}

// tokenBySymbol selects a token from the batch result. The batch contract
// guarantees every catalog symbol is present.
func tokenBySymbol(tokens []catalog.Token, symbol string) catalog.Token {
	for _, t := range tokens {
		if t.Symbol == symbol {
			return t
		}
	}
	return catalog.Token{Symbol: symbol}
}

func unknownTokenErr(symbol string) error {
	supported := make([]string, 0, catalog.Size)
	for _, e := range catalog.Entries() {
		supported = append(supported, e.Symbol)
	}
	return fmt.Errorf("unknown token %q: supported tokens are %s", symbol, strings.Join(supported, ", "))
}
