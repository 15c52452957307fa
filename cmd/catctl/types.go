package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/crateful/wirecat/catalog"
)

func types(cfg *TypesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Types.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: types takes no arguments", cli.ErrUsage)
	}
	client, err := cfg.client()
	if err != nil {
		return err
	}
	for _, typ := range client.Types().All() {
		fmt.Fprintf(cc.Out, "%s\t%s\n", typ.Name, verbList(typ))
	}
	return nil
}

func verbList(typ *catalog.EntityType) string {
	var verbs []string
	for _, verb := range []catalog.Verb{
		catalog.VerbFetch,
		catalog.VerbCreate,
		catalog.VerbUpdate,
		catalog.VerbDelete,
	} {
		if typ.Allows(verb, catalog.ByID) || typ.Allows(verb, catalog.ByName) {
			verbs = append(verbs, verb.String())
		}
	}
	return strings.Join(verbs, ",")
}
