package main

import (
	"fmt"
	"time"

	"github.com/anyswap/ripple-signer/cmd/utils"
	"github.com/anyswap/ripple-signer/data"
	"github.com/anyswap/ripple-signer/log"
	"github.com/anyswap/ripple-signer/params"
	"github.com/anyswap/ripple-signer/terminal"
	"github.com/anyswap/ripple-signer/websockets"
	"github.com/urfave/cli/v2"
)

var (
	submitFlag = &cli.BoolFlag{
		Name:  "submit",
		Usage: "submit the signed transaction to the configured remotes",
	}

	signCommand = &cli.Command{
		Action:    sign,
		Name:      "sign",
		Usage:     "sign a json transaction with a single key",
		ArgsUsage: "<jsonfile|->",
		Flags:     append([]cli.Flag{submitFlag}, keyFlags...),
	}

	multisignCommand = &cli.Command{
		Action:    multisign,
		Name:      "multisign",
		Usage:     "sign a json transaction as one member of a signer list",
		ArgsUsage: "<jsonfile|->",
		Flags:     keyFlags,
		Description: `
prints a Signers array element to be merged with the combine command.
`,
	}

	combineCommand = &cli.Command{
		Action:    combine,
		Name:      "combine",
		Usage:     "merge signer entries into a multi-signed transaction",
		ArgsUsage: "<txjsonfile> <signerjsonfile>...",
		Flags:     []cli.Flag{submitFlag},
	}
)

type signOutput struct {
	TxBlob string      `json:"tx_blob"`
	Hash   string      `json:"hash"`
	Tx     data.Object `json:"tx_json"`
}

func sign(ctx *cli.Context) error {
	config, err := utils.InitConfigAndLogger(ctx)
	if err != nil {
		return err
	}
	tx, err := readObject(ctx, ctx.Args().Get(0))
	if err != nil {
		return err
	}
	key, err := loadKey(ctx, config)
	if err != nil {
		return err
	}
	signed, err := data.Sign(tx, key)
	if err != nil {
		return err
	}
	log.Info("sign transaction success", "account", key.Address(), "txid", signed.Hash)
	return finish(ctx, config, signed)
}

func multisign(ctx *cli.Context) error {
	config, err := utils.InitConfigAndLogger(ctx)
	if err != nil {
		return err
	}
	tx, err := readObject(ctx, ctx.Args().Get(0))
	if err != nil {
		return err
	}
	key, err := loadKey(ctx, config)
	if err != nil {
		return err
	}
	signer, err := data.MultiSign(tx, key)
	if err != nil {
		return err
	}
	log.Info("multisign transaction success", "account", key.Address())
	return printJSON(ctx, signer)
}

func combine(ctx *cli.Context) error {
	config, err := utils.InitConfigAndLogger(ctx)
	if err != nil {
		return err
	}
	if ctx.NArg() < 2 {
		return fmt.Errorf("need a transaction and at least one signer file")
	}
	tx, err := readObject(ctx, ctx.Args().Get(0))
	if err != nil {
		return err
	}
	signers := make([]data.Object, 0, ctx.NArg()-1)
	for _, name := range ctx.Args().Slice()[1:] {
		signer, err := readObject(ctx, name)
		if err != nil {
			return err
		}
		signers = append(signers, signer)
	}
	signed, err := data.AddSigners(tx, signers...)
	if err != nil {
		return err
	}
	log.Info("combine signers success", "signers", len(signers), "txid", signed.Hash)
	return finish(ctx, config, signed)
}

func finish(ctx *cli.Context, config *params.Config, signed *data.SignedTransaction) error {
	if config.Signer.VerifyAfterSign {
		if err := data.CheckSignature(signed.Tx); err != nil {
			return fmt.Errorf("verify signature failed: %w", err)
		}
	}
	if err := printJSON(ctx, signOutput{
		TxBlob: fmt.Sprintf("%X", signed.Blob),
		Hash:   signed.Hash.String(),
		Tx:     signed.Tx,
	}); err != nil {
		return err
	}
	if !ctx.Bool(submitFlag.Name) {
		return nil
	}
	return submitBlob(ctx, config.Remote, signed.Blob)
}

func submitBlob(ctx *cli.Context, remote *params.RemoteConfig, blob []byte) error {
	if !remote.HasEndpoints() {
		return fmt.Errorf("no remote endpoints configured")
	}
	timeout := time.Duration(remote.DialTimeoutSeconds) * time.Second
	submitters, closeAll := websockets.NewSubmitters(remote.Websockets, remote.JSONRPCs, timeout)
	defer closeAll()
	interval := time.Duration(remote.RetryIntervalSeconds) * time.Second
	result, err := websockets.SubmitWithRetry(submitters, blob, remote.RetryTimes, interval)
	if result != nil {
		fmt.Fprintln(ctx.App.Writer, terminal.Sprint(result, terminal.Default))
	}
	if err != nil {
		return err
	}
	log.Info("submit transaction success", "result", result.EngineResult)
	return nil
}
