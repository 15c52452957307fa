package main

import (
	"context"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/crateful/wirecat/codec"
	"github.com/crateful/wirecat/ir"
)

func create(cfg *CreateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Create.Parse(cc, args)
	if err != nil {
		cfg.Create.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: create requires one argument, an entity type", cli.ErrUsage)
	}
	client, err := cfg.client()
	if err != nil {
		return err
	}
	coll, err := client.Collection(args[0])
	if err != nil {
		return err
	}
	var payload *ir.Node
	if cfg.File != "" {
		doc, err := os.ReadFile(cfg.File)
		if err != nil {
			return err
		}
		payload, err = codec.Decode(doc)
		if err != nil {
			return fmt.Errorf("payload %s: %w", cfg.File, err)
		}
	}
	rec, err := coll.Create(context.Background(), payload)
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%d\t%s\n", rec.ID(), rec.Name())
	return nil
}
