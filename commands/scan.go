package commands

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"gitlab.com/safepath/safepath/archives"
	"gitlab.com/safepath/safepath/common"
)

type ScanCommand struct {
	Policy string `long:"policy" env:"SAFEPATH_SCAN_POLICY" description:"TOML file with the scan policy"`
	Quiet  bool   `short:"q" long:"quiet" description:"Suppress per-entry output, only set the exit code"`
}

func (c *ScanCommand) Execute(cliCtx *cli.Context) {
	if len(cliCtx.Args()) != 1 {
		logrus.Fatalln("Expected exactly one archive to scan")
	}
	archivePath := cliCtx.Args()[0]

	policy, err := LoadScanPolicy(c.Policy)
	if err != nil {
		logrus.Fatalln(err)
	}

	opts, err := policy.CheckOptions()
	if err != nil {
		logrus.Fatalln(err)
	}

	issues, err := c.scan(archivePath, opts)
	if err != nil {
		logrus.WithField("archive", archivePath).Fatalln(err)
	}

	if len(issues) == 0 {
		return
	}

	if !c.Quiet {
		lines := lo.Map(issues, func(issue archives.EntryIssue, _ int) string {
			return issue.String()
		})
		fmt.Println(strings.Join(lines, "\n"))
	}

	logrus.WithFields(logrus.Fields{
		"archive": archivePath,
		"issues":  len(issues),
	}).Fatalln("Archive has unsafe entries")
}

func (c *ScanCommand) scan(archivePath string, opts archives.CheckOptions) ([]archives.EntryIssue, error) {
	if strings.HasSuffix(archivePath, ".zip") {
		archive, err := zip.OpenReader(archivePath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = archive.Close() }()

		return archives.CheckZipArchive(&archive.Reader, opts), nil
	}

	file, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return archives.CheckTarArchive(file, opts)
}

func init() {
	common.RegisterCommand("scan", "scan a zip or tar archive for unsafe entry names", &ScanCommand{})
}
