package main

import (
	"github.com/anyswap/ripple-signer/cmd/utils"
	"github.com/urfave/cli/v2"
)

var submitCommand = &cli.Command{
	Action:    submit,
	Name:      "submit",
	Usage:     "submit a signed transaction blob",
	ArgsUsage: "<hex|@file>",
}

func submit(ctx *cli.Context) error {
	config, err := utils.InitConfigAndLogger(ctx)
	if err != nil {
		return err
	}
	blob, err := readBlob(ctx, ctx.Args().Get(0))
	if err != nil {
		return err
	}
	return submitBlob(ctx, config.Remote, blob)
}
