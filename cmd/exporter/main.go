package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dwarvesf/unisat-ctc-exporter/internal/classifier"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/ctc"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/exporter"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/oklink"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/utils/config"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/utils/logger"
)

func main() {
	app := &cli.App{
		Name:      "unisat-ctc-exporter",
		Usage:     "Export a wallet's BRC-20 inscription history from OKLink to a CryptoTaxCalculator CSV",
		ArgsUsage: "API_KEY WALLET_ADDRESS",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		cli.ShowAppHelp(c)
		return fmt.Errorf("expected exactly 2 arguments: API_KEY WALLET_ADDRESS")
	}

	apiKey := c.Args().Get(0)
	wallet := c.Args().Get(1)

	appConfig := config.New()
	appLogger := logger.New(appConfig.Environment)

	appLogger.Info("Fetching inscriptions", map[string]string{
		"wallet": wallet,
	})

	okLink := oklink.New(appConfig, apiKey, appLogger)
	cls := classifier.New(classifier.DefaultRules())
	writer := ctc.NewWriter(appConfig, appLogger)

	exp := exporter.New(appConfig, appLogger, okLink, cls, writer)

	path, err := exp.Run(wallet)
	if err != nil {
		return err
	}

	appLogger.Info("Successfully wrote export", map[string]string{
		"path": path,
	})
	return nil
}
