package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"lounge-billing/internal/domain/billing"
	"lounge-billing/internal/domain/pricing"
	resdto "lounge-billing/internal/handler/dto/response"

	"github.com/spf13/cobra"
)

const defaultTimezone = "Asia/Kolkata"

type quoteOptions struct {
	pricingFile string
	bonusFile   string
	game        string
	elapsed     time.Duration
	at          string
	controllers int64
	snacks      []string
	timezone    string
}

func newQuoteCmd() *cobra.Command {
	opts := &quoteOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a billing line without the server",
		Long:  `Compute one billing line from pricing and bonus documents on disk. Missing documents fall back to the built-in defaults.`,
		Example: `  billctl quote --game PS5 --elapsed 1h8m
  billctl quote --pricing pricing.json --bonus bonus.json --game SteeringWheel --elapsed 3h5m \
    --at 2025-01-04T10:00:00+05:30 --snack "Cola:40:2"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.pricingFile, "pricing", "", "pricing config JSON file")
	f.StringVar(&opts.bonusFile, "bonus", "", "bonus config JSON file")
	f.StringVar(&opts.game, "game", "", "game type (PS5, SteeringWheel, Desktop, ...)")
	f.DurationVar(&opts.elapsed, "elapsed", 0, "session play time, e.g. 1h8m")
	f.StringVar(&opts.at, "at", "", "billing instant in RFC3339 (default now)")
	f.Int64Var(&opts.controllers, "controllers", 0, "extra controller units")
	f.StringArrayVar(&opts.snacks, "snack", nil, "snack as name:unit_price:quantity (repeatable)")
	f.StringVar(&opts.timezone, "timezone", envOr("BILLING_DEFAULT_TIMEZONE", defaultTimezone), "timezone when the pricing config has none")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func runQuote(cmd *cobra.Command, opts *quoteOptions) error {
	pricingCfg := pricing.DefaultPricingConfig()
	if opts.pricingFile != "" {
		if err := readJSONFile(opts.pricingFile, &pricingCfg); err != nil {
			return fmt.Errorf("load pricing: %w", err)
		}
	}
	bonusCfg := pricing.DefaultBonusConfig()
	if opts.bonusFile != "" {
		if err := readJSONFile(opts.bonusFile, &bonusCfg); err != nil {
			return fmt.Errorf("load bonus: %w", err)
		}
	}

	snapshot, err := pricing.NewSnapshot(pricingCfg, bonusCfg, opts.timezone)
	if err != nil {
		return err
	}

	at := time.Now()
	if opts.at != "" {
		at, err = time.Parse(time.RFC3339, opts.at)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
	}

	snacks := make([]billing.SnackLine, 0, len(opts.snacks))
	for _, raw := range opts.snacks {
		s, err := parseSnack(raw)
		if err != nil {
			return err
		}
		snacks = append(snacks, s)
	}

	in := billing.Input{
		ElapsedSeconds:       int64(opts.elapsed / time.Second),
		GameType:             pricing.GameType(opts.game),
		ExtraControllerUnits: opts.controllers,
		Snacks:               snacks,
	}
	line, err := billing.NewDefaultCalculator().ComputeInvoiceLine(in, snapshot, at)
	if err != nil {
		return err
	}

	res, err := resdto.FromLine(line)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// parseSnack splits from the right so names may contain colons.
func parseSnack(raw string) (billing.SnackLine, error) {
	qtyAt := strings.LastIndex(raw, ":")
	if qtyAt <= 0 {
		return billing.SnackLine{}, fmt.Errorf("invalid --snack %q: want name:unit_price:quantity", raw)
	}
	priceAt := strings.LastIndex(raw[:qtyAt], ":")
	if priceAt <= 0 {
		return billing.SnackLine{}, fmt.Errorf("invalid --snack %q: want name:unit_price:quantity", raw)
	}

	qty, err := strconv.ParseInt(raw[qtyAt+1:], 10, 64)
	if err != nil {
		return billing.SnackLine{}, fmt.Errorf("invalid snack quantity in %q: %w", raw, err)
	}
	price, err := pricing.ParseMoney(raw[priceAt+1 : qtyAt])
	if err != nil {
		return billing.SnackLine{}, fmt.Errorf("invalid snack price in %q: %w", raw, err)
	}
	return billing.SnackLine{Name: raw[:priceAt], UnitPrice: price, Quantity: qty}, nil
}

func readJSONFile(path string, v any) error {
	// #nosec G304 -- operator supplied path
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
