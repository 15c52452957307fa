package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/crateful/wirecat/codec"
	"github.com/crateful/wirecat/diffview"
	"github.com/crateful/wirecat/ir"
)

func catctlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// render writes a tree to w in the configured output form.
func render(cfg *MainConfig, w io.Writer, y *ir.Node) error {
	if cfg.Wire {
		doc, err := codec.Bytes(y)
		if err != nil {
			return err
		}
		if _, err := w.Write(doc); err != nil {
			return err
		}
		_, err = fmt.Fprintln(w)
		return err
	}
	text, err := diffview.Render(y)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}
