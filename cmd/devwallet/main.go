// devwallet ensures a local development wallet exists and prints its
// address and Story Odyssey balance.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/odyssey-tools/devwallet/config"
	klog "github.com/odyssey-tools/devwallet/internal/log"
	"github.com/odyssey-tools/devwallet/pkg/devwallet"
)

const (
	msgCreated = "La billetera no se encontró, generando una nueva"
	msgExists  = "La billetera si existe"
)

// ensurer is the part of devwallet.Service the command needs.
type ensurer interface {
	EnsureWallet(ctx context.Context) (*devwallet.Result, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal("%v", err)
	}
	if err := klog.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
		fatal("initializing logger: %v", err)
	}

	svc, err := devwallet.New(cfg)
	if err != nil {
		fatal("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, svc); err != nil {
		stop()
		fatal("%v", err)
	}
}

// run ensures the wallet and writes the three result lines to w.
func run(ctx context.Context, w io.Writer, svc ensurer) error {
	res, err := svc.EnsureWallet(ctx)
	if err != nil {
		return err
	}

	status := msgExists
	if res.Created {
		status = msgCreated
	}
	_, err = fmt.Fprintf(w, "%s\nAddress: %s\nSaldo: %s\n", status, res.Record.Address, res.Balance.String())
	return err
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
