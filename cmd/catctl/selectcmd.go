package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
)

func sel(cfg *SelectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Select.Parse(cc, args)
	if err != nil {
		cfg.Select.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: select requires an entity type and an expression", cli.ErrUsage)
	}
	client, err := cfg.client()
	if err != nil {
		return err
	}
	coll, err := client.Collection(args[0])
	if err != nil {
		return err
	}
	recs, err := coll.Select(context.Background(), args[1])
	if err != nil {
		return err
	}
	for _, rec := range recs {
		fmt.Fprintf(cc.Out, "%d\t%s\n", rec.ID(), rec.Name())
	}
	return nil
}
