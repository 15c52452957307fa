package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"

	"github.com/crateful/wirecat/catalog"
)

type MainConfig struct {
	URL  string `cli:"name=url desc='catalog base URL (default $WIRECAT_URL)'"`
	User string `cli:"name=user desc='basic auth user (default $WIRECAT_USER)'"`
	Pass string `cli:"name=pass desc='basic auth password (default $WIRECAT_PASS)'"`

	Wire    bool `cli:"name=x aliases=xml desc='output wire XML instead of YAML'"`
	Color   bool `cli:"name=color desc='colorize change previews'"`
	Verbose bool `cli:"name=v desc='log requests'"`

	Out      string
	CloseOut func() error

	Main *cli.Command

	cat *catalog.Client
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// client builds the catalog client on first use.  Connection settings
// fall back to the WIRECAT_URL, WIRECAT_USER, and WIRECAT_PASS
// environment variables.
func (cfg *MainConfig) client() (*catalog.Client, error) {
	if cfg.cat != nil {
		return cfg.cat, nil
	}
	url := cfg.URL
	if url == "" {
		url = os.Getenv("WIRECAT_URL")
	}
	if url == "" {
		return nil, fmt.Errorf("%w: no catalog URL, pass -url or set WIRECAT_URL", cli.ErrUsage)
	}
	user := cfg.User
	if user == "" {
		user = os.Getenv("WIRECAT_USER")
	}
	pass := cfg.Pass
	if pass == "" {
		pass = os.Getenv("WIRECAT_PASS")
	}
	log := zap.NewNop()
	if cfg.Verbose {
		var err error
		log, err = zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
	}
	transport := catalog.NewHTTPTransport(url, user, pass, catalog.HTTPLogger(log))
	cfg.cat = catalog.New(transport, catalog.WithLogger(log))
	return cfg.cat, nil
}

// colorize reports whether change previews on w should use color.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type ListConfig struct {
	*MainConfig
	Long bool `cli:"name=l desc='one id and name per line'"`

	List *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	DryRun bool `cli:"name=n aliases=dry-run desc='preview the change without saving'"`

	Set *cli.Command
}

type CreateConfig struct {
	*MainConfig
	File string `cli:"name=f desc='wire XML file with the creation payload'"`

	Create *cli.Command
}

type DeleteConfig struct {
	*MainConfig

	Delete *cli.Command
}

type SelectConfig struct {
	*MainConfig

	Select *cli.Command
}

type TypesConfig struct {
	*MainConfig

	Types *cli.Command
}
