//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"planespotter/app"
	"planespotter/hal"
	"planespotter/internal/buildinfo"
	"planespotter/internal/config"
)

func main() {
	var hcfg hal.HeadlessConfig
	var terminal bool
	var cfgPath string
	var version bool
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 10, "Frame rate in headless and terminal mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.StringVar(&hcfg.Snapshot, "snapshot", "", "Write the last headless frame to this PNG file.")
	flag.BoolVar(&terminal, "terminal", false, "Preview the display in the terminal.")
	flag.StringVar(&cfgPath, "config", "", "Config file (default ./planespotter.{yaml,json}).")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println("planespotter", buildinfo.Long())
		return
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	opts := cfg.Host()
	newApp := func(h hal.HAL) func() error {
		return app.New(h, cfg.App())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case hcfg.Enabled:
		err = hal.RunHeadless(ctx, opts, newApp, hcfg)
	case terminal:
		err = hal.RunTerminal(ctx, opts, newApp, hcfg.Hz)
	default:
		err = hal.RunWindow(opts, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
