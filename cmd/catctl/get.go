package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/crateful/wirecat/catalog"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: get requires a type and a record, with an optional path", cli.ErrUsage)
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
	if len(args) == 3 {
		v, err := rec.Get(ctx, args[2])
		if err != nil {
			return err
		}
		return render(cfg.MainConfig, cc.Out, v)
	}
	data, err := rec.Data(ctx)
	if err != nil {
		return err
	}
	return render(cfg.MainConfig, cc.Out, data)
}

func findRecord(ctx context.Context, client *catalog.Client, kind, key string) (*catalog.Record, error) {
	coll, err := client.Collection(kind)
	if err != nil {
		return nil, err
	}
	return coll.Find(ctx, key)
}
