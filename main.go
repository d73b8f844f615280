package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"gasstation/internal/form"
	"gasstation/internal/station"
	"gasstation/internal/web"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		supplyStr string
		costStr   string
		port      int
		verbose   bool
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:           "gasstation",
		Short:         "Find the gas station to start a circular trip from (CLI or web)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if ok, _ := cmd.Flags().GetBool("version"); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "gasstation v%s\n", appVersion)
				return nil
			}

			logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)

			if port > 0 {
				printListenAddrs(cmd.OutOrStdout(), port)
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return web.New(logger, appVersion).ListenAndServe(ctx, fmt.Sprintf(":%d", port))
			}

			out, err := solve(supplyStr, costStr)
			if err != nil {
				return err
			}
			printCLI(cmd.OutOrStdout(), out, verbose)
			return nil
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("gasstation v{{.Version}}\n")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.Flags().StringVar(&supplyStr, "supply", "", "Fuel available at each station, comma separated (e.g. \"1, 2, 3, 4, 5\")")
	cmd.Flags().StringVar(&costStr, "cost", "", "Fuel needed to reach the next station, comma separated (e.g. \"3, 4, 5, 1, 2\")")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Also print station count and totals")
	cmd.Flags().IntVar(&port, "port", 0, "Run web UI on this port (e.g. 8484)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	return cmd
}

// solve runs both flags through the same form the web UI uses.
func solve(supplyStr, costStr string) (form.Outcome, error) {
	f := form.New()
	f.SetSupply(supplyStr)
	f.SetCost(costStr)

	if c := f.Supply.Check; !c.Valid {
		return form.Outcome{}, fmt.Errorf("--supply: %s", c.Message)
	}
	if c := f.Cost.Check; !c.Valid {
		return form.Outcome{}, fmt.Errorf("--cost: %s", c.Message)
	}

	out, err := f.Submit()
	if errors.Is(err, station.ErrLengthMismatch) {
		return form.Outcome{}, fmt.Errorf("%s: %s", strings.ToLower(form.AlertTitle), strings.ToLower(form.AlertSubtitle))
	}
	return out, err
}

func printCLI(w io.Writer, out form.Outcome, verbose bool) {
	if verbose {
		fmt.Fprintf(w, "Stations:     %d\n", len(out.Supply))
		fmt.Fprintf(w, "Total supply: %s\n", humanize.Comma(int64(station.Sum(out.Supply))))
		fmt.Fprintf(w, "Total cost:   %s\n\n", humanize.Comma(int64(station.Sum(out.Cost))))
	}
	fmt.Fprintln(w, out.Label())
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func printListenAddrs(w io.Writer, port int) {
	fmt.Fprintln(w, "Listening on:")
	fmt.Fprintf(w, "  http://127.0.0.1:%d/\n", port)

	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			ip, _, err := net.ParseCIDR(a.String())
			if err != nil || ip == nil || ip.IsLoopback() || ip.To4() == nil {
				continue
			}
			fmt.Fprintf(w, "  http://%s:%d/\n", ip.String(), port)
		}
	}
	fmt.Fprintln(w)
}
