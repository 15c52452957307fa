package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/crateful/wirecat/diffview"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: set requires a type, a record, and at least one path=value", cli.ErrUsage)
	}
	client, err := cfg.client()
	if err != nil {
		return err
	}
	ctx := context.Background()
	rec, err := findRecord(ctx, client, args[0], args[1])
	if err != nil {
		return err
	}
	before, err := rec.Data(ctx)
	if err != nil {
		return err
	}
	before = before.Clone()
	for _, edit := range args[2:] {
		path, value, ok := strings.Cut(edit, "=")
		if !ok {
			return fmt.Errorf("%w: edit %q is not of the form path=value", cli.ErrUsage, edit)
		}
		if err := rec.SetString(ctx, path, value); err != nil {
			return err
		}
	}
	after, err := rec.Data(ctx)
	if err != nil {
		return err
	}
	if err := diffview.Write(cc.Out, before, after, cfg.colorize(cc.Out)); err != nil {
		return err
	}
	if cfg.DryRun {
		return nil
	}
	if err := rec.Save(ctx); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "saved %s %s\n", args[0], rec)
	return nil
}
