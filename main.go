package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
)

func newLogger(cfg Config) *slog.Logger {
	if cfg.AppEnv == "dev" {
		h := tint.NewHandler(os.Stdout, &tint.Options{
			Level:      cfg.LogLevel,
			TimeFormat: time.Kitchen,
		})
		return slog.New(h)
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})
	return slog.New(h).With("app", "metarweb", "env", cfg.AppEnv)
}

// serve runs the web server until the context is canceled, then shuts
// down gracefully
func serve(ctx context.Context, cfg Config, logger *slog.Logger) error {
	server := NewServer(NewGateway(cfg.METARURL), NewDecoder(), logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func main() {
	serveFlag := flag.Bool("serve", false, "Run the web server instead of a one-shot lookup")
	addrFlag := flag.String("addr", "", "Listen address for -serve (overrides ADDR)")
	noRawFlag := flag.Bool("no-raw", false, "Hide raw METAR data")
	noColorFlag := flag.Bool("no-color", false, "Disable color output")
	flag.Parse()

	if *noColorFlag {
		color.NoColor = true
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}

	if *serveFlag {
		logger := newLogger(cfg)
		slog.SetDefault(logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := serve(ctx, cfg, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
		logger.Info("shut down")
		return
	}

	// One-shot mode: decode piped data, or fetch for a station code from
	// args or an interactive prompt
	stationCode, rawInput, stdinHasData := readFromStdin()

	if !stdinHasData {
		var err error
		if args := flag.Args(); len(args) > 0 {
			stationCode, err = normalizeStationCode(args[0])
		} else {
			stationCode, err = promptForStationCode()
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	processStation(NewGateway(cfg.METARURL), NewDecoder(), stationCode, rawInput, *noRawFlag)
}
