package commands

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/safepath/safepath"
	"gitlab.com/safepath/safepath/common"
	"gitlab.com/safepath/safepath/platform"
)

type VerifyCommand struct {
	Platform string `long:"platform" env:"SAFEPATH_PLATFORM" description:"Validate using the path rules of this platform (native, unix, windows)"`
	Multi    bool   `long:"multi" description:"Accept runs of components instead of exactly one"`
	Quiet    bool   `short:"q" long:"quiet" description:"Suppress per-path output, only set the exit code"`
}

func (c *VerifyCommand) Execute(cliCtx *cli.Context) {
	pl, err := platform.Lookup(c.Platform)
	if err != nil {
		logrus.Fatalln(err)
	}

	paths := cliCtx.Args()
	if len(paths) == 0 {
		paths = readLines(os.Stdin)
	}

	if len(paths) == 0 {
		logrus.Fatalln("No paths to verify")
	}

	rejected := 0
	for _, path := range paths {
		if c.verify(pl, path) {
			continue
		}

		rejected++
		if !c.Quiet {
			fmt.Printf("REJECTED\t%s\n", path)
		}
	}

	if rejected > 0 {
		logrus.WithFields(logrus.Fields{
			"rejected": rejected,
			"total":    len(paths),
			"platform": pl.Name(),
		}).Fatalln("Unsafe paths found")
	}
}

func (c *VerifyCommand) verify(pl platform.Platform, path string) bool {
	if c.Multi {
		_, err := safepath.NewMultiComponentPath(pl, path)
		return err == nil
	}

	_, err := safepath.NewSingleComponentPath(pl, path)
	return err == nil
}

func readLines(f *os.File) []string {
	var lines []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}

	return lines
}

func init() {
	common.RegisterCommand("verify", "check that paths are free of directory traversal", &VerifyCommand{})
}
