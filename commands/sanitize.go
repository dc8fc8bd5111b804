package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/safepath/safepath/common"
	"gitlab.com/safepath/safepath/platform"
	"gitlab.com/safepath/safepath/sanitize"
)

type SanitizeCommand struct {
	Platform string `long:"platform" env:"SAFEPATH_PLATFORM" description:"Sanitize for the path rules of this platform (native, unix, windows)"`
}

func (c *SanitizeCommand) Execute(cliCtx *cli.Context) {
	pl, err := platform.Lookup(c.Platform)
	if err != nil {
		logrus.Fatalln(err)
	}

	if len(cliCtx.Args()) == 0 {
		logrus.Fatalln("Nothing to sanitize")
	}

	for _, arg := range cliCtx.Args() {
		fmt.Println(sanitize.Component(pl, arg).String())
	}
}

func init() {
	common.RegisterCommand(
		"sanitize",
		"rewrite strings into safe single path components (output is not stable across versions)",
		&SanitizeCommand{},
	)
}
