package main

import (
	"fmt"

	"github.com/anyswap/ripple-signer/cmd/utils"
	"github.com/anyswap/ripple-signer/common"
	"github.com/anyswap/ripple-signer/data"
	"github.com/anyswap/ripple-signer/terminal"
	"github.com/urfave/cli/v2"
)

var (
	signingFlag = &cli.BoolFlag{
		Name:  "signing",
		Usage: "encode only the fields covered by a signature",
	}
	terminalFlag = &cli.BoolFlag{
		Name:  "terminal",
		Usage: "print a one line summary instead of json",
	}
	txidFlag = &cli.BoolFlag{
		Name:  "txid",
		Usage: "prefix the summary with the transaction id",
	}

	encodeCommand = &cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "encode a json object into canonical binary hex",
		ArgsUsage: "<jsonfile|->",
		Flags:     []cli.Flag{signingFlag},
	}

	decodeCommand = &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "decode canonical binary hex into json",
		ArgsUsage: "<hex|@file>",
		Flags:     []cli.Flag{terminalFlag, txidFlag},
	}
)

func encode(ctx *cli.Context) error {
	if _, err := utils.InitConfigAndLogger(ctx); err != nil {
		return err
	}
	obj, err := readObject(ctx, ctx.Args().Get(0))
	if err != nil {
		return err
	}
	var b []byte
	if ctx.Bool(signingFlag.Name) {
		b, err = data.SerializeForSigning(obj)
	} else {
		b, err = data.Serialize(obj)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, common.ToHex(b))
	return nil
}

func decode(ctx *cli.Context) error {
	if _, err := utils.InitConfigAndLogger(ctx); err != nil {
		return err
	}
	b, err := readBlob(ctx, ctx.Args().Get(0))
	if err != nil {
		return err
	}
	obj, err := data.Deserialize(b)
	if err != nil {
		return err
	}
	if ctx.Bool(terminalFlag.Name) {
		var flag terminal.Flag
		if ctx.Bool(txidFlag.Name) {
			flag |= terminal.ShowTransactionId
		}
		fmt.Fprintln(ctx.App.Writer, terminal.Sprint(obj, flag))
		return nil
	}
	return printJSON(ctx, obj)
}
