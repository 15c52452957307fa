package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "catctl").
		WithSynopsis("catctl [opts] command [opts]").
		WithDescription("catctl is a tool for inspecting and editing a remote catalog.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return catctlMain(cfg, cc, args)
		}).
		WithSubs(
			TypesCommand(cfg),
			ListCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			CreateCommand(cfg),
			DeleteCommand(cfg),
			SelectCommand(cfg))
}

func TypesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TypesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Types, "types").
		WithAliases("t").
		WithSynopsis("types").
		WithDescription("list the known entity types and their permitted operations").
		WithRun(func(cc *cli.Context, args []string) error {
			return types(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l", "ls").
		WithSynopsis("list [-l] <type>").
		WithDescription("list the records of an entity type").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <type> <id|name> [path]").
		WithDescription("print a record's data, or the subtree at a path expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-n] <type> <id|name> <path>=<value> [<path2>=<value2> ...]").
		WithDescription("edit fields of a record and save the minimal diff").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func CreateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CreateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Create, "create").
		WithAliases("c").
		WithSynopsis("create [-f payload.xml] <type>").
		WithDescription("create a record from a payload file, or a stub when none is given").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return create(cfg, cc, args)
		})
}

func DeleteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DeleteConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Delete, "delete").
		WithAliases("d", "del", "rm").
		WithSynopsis("delete <type> <id|name> [<id2|name2> ...]").
		WithDescription("delete records").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
}

func SelectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SelectConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Select, "select").
		WithAliases("q", "query").
		WithSynopsis("select <type> <expression>").
		WithDescription(selectDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return sel(cfg, cc, args)
		})
}

const selectDescription = `select filters the records of an entity type with an expression.

The expression sees each record as an environment with id, name, and a
get(path) function over the record's data, for example:

  catctl select computers 'name startsWith "lab-"'
  catctl select computers 'get("general/site/name") == "HQ"'

Records matching the expression print one per line as id and name.`
