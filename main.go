package main

import (
	"os"

	"github.com/bbazan/vCD-Catalog/cli"
	"github.com/bbazan/vCD-Catalog/common"
)

var version string

func main() {
	common.SetVersion(version)
	app := cli.NewApp()
	app.Run(os.Args)
}
