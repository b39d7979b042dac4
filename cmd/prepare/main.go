package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"StockDirection/internal/collector"
	"StockDirection/internal/config"
	"StockDirection/internal/logger"
	"StockDirection/internal/model"
	"StockDirection/internal/prepare"
)

func prepareAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if v := cmd.String("symbol"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := cmd.String("provider"); v != "" {
		cfg.DataSource.Provider = v
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	lg, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Development, cfg.Log.Output)
	if err != nil {
		return err
	}
	defer lg.Sync()

	fetcher := newFetcher(cfg)
	lg.Info("data source selected", zap.String("source", fetcher.Name()))

	start, end := cmd.Timestamp("start"), cmd.Timestamp("end")
	if !start.Before(end) {
		return fmt.Errorf("start %s must be before end %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	col := collector.NewCollector(fetcher, cfg.DataSource.Symbol, lg)
	res, err := col.Collect(ctx, start, end)
	if err != nil {
		return err
	}

	if !prepare.Aligned(res.Raw, res.Prepared) {
		lg.Error("prepared index is not aligned with the fetched index")
	}
	return printFrame(os.Stdout, res.Prepared)
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	switch cfg.DataSource.Provider {
	case config.ProviderPolygon:
		return collector.NewPolygonFetcher(cfg.DataSource.APIKey, cfg.Proxy)
	case config.ProviderCSV:
		return collector.NewCSVFetcher(cfg.DataSource.CSVPath)
	default:
		return collector.NewYahooFetcher(cfg.Proxy)
	}
}

func printFrame(w io.Writer, f *model.Frame) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	cols := f.Columns()

	fmt.Fprint(tw, "Date\t")
	for _, c := range cols {
		fmt.Fprintf(tw, "%s\t", c)
	}
	fmt.Fprintln(tw)

	for i, t := range f.Index() {
		fmt.Fprintf(tw, "%s\t", t.Format(time.DateOnly))
		for _, c := range cols {
			fmt.Fprintf(tw, "%.6g\t", f.Value(c, i).Unwrap())
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "prepare",
		Usage: "Fetch daily prices and print the prepared return table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the YAML config file",
				Value:   "configs/config.yaml",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
			&cli.StringFlag{
				Name:    "symbol",
				Aliases: []string{"t"},
				Usage:   "Ticker symbol, overrides data_source.symbol",
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Data provider (%s, %s, %s)", config.ProviderYahoo, config.ProviderPolygon, config.ProviderCSV),
			},
			&cli.TimestampFlag{
				Name:     "start",
				Aliases:  []string{"s"},
				Usage:    "Start date in `YYYY-MM-DD` format (inclusive)",
				Required: true,
				Config: cli.TimestampConfig{
					Layouts: []string{time.DateOnly},
				},
			},
			&cli.TimestampFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "End date in `YYYY-MM-DD` format (exclusive). Defaults to now.",
				Value:   time.Now(),
				Config: cli.TimestampConfig{
					Layouts: []string{time.DateOnly},
				},
			},
		},
		Action: prepareAction,
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}
