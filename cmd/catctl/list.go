package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: list requires one argument, an entity type", cli.ErrUsage)
	}
	client, err := cfg.client()
	if err != nil {
		return err
	}
	coll, err := client.Collection(args[0])
	if err != nil {
		return err
	}
	recs, err := coll.All(context.Background())
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if cfg.Long {
			fmt.Fprintf(cc.Out, "%d\t%s\n", rec.ID(), rec.Name())
			continue
		}
		fmt.Fprintln(cc.Out, rec.Name())
	}
	return nil
}
