package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"
)

func del(cfg *DeleteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Delete.Parse(cc, args)
	if err != nil {
		cfg.Delete.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: delete requires a type and at least one record", cli.ErrUsage)
	}
	client, err := cfg.client()
	if err != nil {
		return err
	}
	coll, err := client.Collection(args[0])
	if err != nil {
		return err
	}
	ctx := context.Background()
	ids := make([]int, 0, len(args[1:]))
	for _, key := range args[1:] {
		rec, err := coll.Find(ctx, key)
		if err != nil {
			return err
		}
		ids = append(ids, rec.ID())
	}
	if err := coll.Delete(ctx, ids...); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "deleted %d %s\n", len(ids), args[0])
	return nil
}
