package cli

import (
	"os"

	"github.com/urfave/cli"

	"github.com/bbazan/vCD-Catalog/common"
	"github.com/bbazan/vCD-Catalog/provider/vcloud"
)

// NewApp creates a new CLI app
func NewApp() *cli.App {
	context := common.NewContext()

	app := cli.NewApp()
	app.Name = "vcd-catalog"
	app.Usage = "Catalog lifecycle management for vCloud Director"
	app.Version = common.GetVersion()
	app.EnableBashCompletion = true

	app.Commands = []cli.Command{
		*newCatalogsCommand(context),
	}

	app.Before = func(c *cli.Context) error {
		// setup logging
		if c.Bool("verbose") {
			common.SetupLogging(2)
		} else if c.Bool("silent") {
			common.SetupLogging(0)
		} else {
			common.SetupLogging(1)
		}

		err := context.InitializeConfigFromFile(c.String("config"))
		if err != nil {
			log.Warningf("Unable to load vcd config: %v", err)
		}

		// The order of precedence is command-line arg, env variable
		// then config file
		context.Config.Host = common.NewStringIfNotEmpty(context.Config.Host, os.Getenv("VCD_HOST"))
		context.Config.Host = common.NewStringIfNotEmpty(context.Config.Host, c.String("host"))
		context.Config.Org = common.NewStringIfNotEmpty(context.Config.Org, os.Getenv("VCD_ORG"))
		context.Config.Org = common.NewStringIfNotEmpty(context.Config.Org, c.String("org-name"))
		if c.Bool("insecure") {
			context.Config.Insecure = true
		}

		if token := os.Getenv("VCD_TOKEN"); token != "" && context.Config.Host != "" {
			context.Config.Tokens[context.Config.Host] = token
		}

		// initialize managers for the configured endpoint
		return vcloud.InitializeContext(context, nil)
	}

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to config file",
			Value: "vcd.yml",
		},
		cli.StringFlag{
			Name:  "host, H",
			Usage: "vCloud Director endpoint host",
		},
		cli.StringFlag{
			Name:  "org-name, n",
			Usage: "default organization name",
		},
		cli.BoolFlag{
			Name:  "insecure, k",
			Usage: "skip TLS certificate verification",
		},
		cli.BoolFlag{
			Name:  "silent, s",
			Usage: "silent mode, errors only",
		},
		cli.BoolFlag{
			Name:  "verbose, V",
			Usage: "increase level of log verbosity",
		},
	}

	return app
}
