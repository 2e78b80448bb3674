package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/anyswap/ripple-signer/cmd/utils"
	"github.com/anyswap/ripple-signer/log"
	"github.com/urfave/cli/v2"
)

var (
	clientIdentifier = "xrptools"
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""
)

func newApp() *cli.App {
	app := utils.NewApp(clientIdentifier, gitCommit, gitDate, "the xrptools command line interface")
	app.Action = xrptools
	app.HideVersion = true // we have a command to print the version
	app.Commands = []*cli.Command{
		walletCommand,
		addressCommand,
		encodeCommand,
		decodeCommand,
		signCommand,
		multisignCommand,
		combineCommand,
		submitCommand,
		utils.VersionCommand,
	}
	app.Flags = append([]cli.Flag{utils.ConfigFileFlag}, utils.CommonLogFlags...)
	sort.Sort(cli.CommandsByName(app.Commands))
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func xrptools(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return fmt.Errorf("invalid command: %q", ctx.Args().Get(0))
	}
	_ = cli.ShowAppHelp(ctx)
	fmt.Fprintln(ctx.App.Writer)
	return fmt.Errorf("please specify a sub command to run")
}
