package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/safepath/safepath"
	"gitlab.com/safepath/safepath/common"
	"gitlab.com/safepath/safepath/platform"
)

type JoinCommand struct {
	Base     string `long:"base" description:"Trusted destination path the components are joined under"`
	Platform string `long:"platform" env:"SAFEPATH_PLATFORM" description:"Join using the path rules of this platform (native, unix, windows)"`
	Multi    bool   `long:"multi" description:"Treat each argument as a run of components instead of exactly one"`
}

func (c *JoinCommand) Execute(cliCtx *cli.Context) {
	pl, err := platform.Lookup(c.Platform)
	if err != nil {
		logrus.Fatalln(err)
	}

	if len(cliCtx.Args()) == 0 {
		logrus.Fatalln("No components to join")
	}

	dest := safepath.NewDestPath(pl, c.Base)

	for _, arg := range cliCtx.Args() {
		if err := c.push(dest, pl, arg); err != nil {
			logrus.WithField("platform", pl.Name()).Fatalln(err)
		}
	}

	fmt.Println(dest.String())
}

func (c *JoinCommand) push(dest *safepath.DestPath, pl platform.Platform, arg string) error {
	if c.Multi {
		rel, err := safepath.NewMultiComponentPath(pl, arg)
		if err != nil {
			return err
		}
		return dest.PushRelative(rel)
	}

	component, err := safepath.NewSingleComponentPath(pl, arg)
	if err != nil {
		return err
	}
	return dest.PushComponent(component)
}

func init() {
	common.RegisterCommand("join", "join untrusted components onto a trusted base path", &JoinCommand{})
}
