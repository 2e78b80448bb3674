package main

import (
	"fmt"

	"github.com/anyswap/ripple-signer/cmd/utils"
	"github.com/anyswap/ripple-signer/common"
	"github.com/anyswap/ripple-signer/crypto"
	"github.com/anyswap/ripple-signer/log"
	"github.com/anyswap/ripple-signer/params"
	"github.com/urfave/cli/v2"
)

var (
	seedFlag = &cli.StringFlag{
		Name:  "seed",
		Usage: "family seed (s...)",
	}
	passphraseFlag = &cli.StringFlag{
		Name:  "passphrase",
		Usage: "derive the family seed from a passphrase",
	}
	keyTypeFlag = &cli.StringFlag{
		Name:  "keytype",
		Usage: "key type, secp256k1 or ed25519 (default from config)",
	}
	keyseqFlag = &cli.UintFlag{
		Name:  "keyseq",
		Usage: "secp256k1 account family sequence",
		Value: 0,
	}

	keyFlags = []cli.Flag{
		seedFlag,
		passphraseFlag,
		keyTypeFlag,
		keyseqFlag,
	}

	walletCommand = &cli.Command{
		Action: wallet,
		Name:   "wallet",
		Usage:  "derive (or generate) a key pair and print seed, account and public key",
		Flags:  keyFlags,
		Description: `
without --seed and --passphrase a random seed is generated.
`,
	}

	addressCommand = &cli.Command{
		Action:    pubkeyToAddress,
		Name:      "address",
		Usage:     "convert public key to address",
		ArgsUsage: "<pubkey>",
	}
)

type walletInfo struct {
	Seed      string `json:"master_seed"`
	KeyType   string `json:"key_type"`
	Account   string `json:"account_id"`
	PublicKey string `json:"public_key_hex"`
}

func getKeyType(ctx *cli.Context, config *params.Config) (crypto.KeyType, error) {
	if ctx.IsSet(keyTypeFlag.Name) {
		return crypto.ParseKeyType(ctx.String(keyTypeFlag.Name))
	}
	return config.Signer.GetKeyType(), nil
}

func getSeed(ctx *cli.Context) (crypto.Hash, error) {
	seed := ctx.String(seedFlag.Name)
	passphrase := ctx.String(passphraseFlag.Name)
	switch {
	case seed != "" && passphrase != "":
		return nil, fmt.Errorf("--%v and --%v are exclusive", seedFlag.Name, passphraseFlag.Name)
	case seed != "":
		payload, err := crypto.ParseFamilySeed(seed)
		if err != nil {
			return nil, err
		}
		return crypto.NewFamilySeed(payload)
	case passphrase != "":
		return crypto.GenerateFamilySeed(passphrase)
	default:
		return nil, nil
	}
}

// loadKey derives the signing key from the key flags. A seed is required.
func loadKey(ctx *cli.Context, config *params.Config) (*crypto.KeyPair, error) {
	seed, err := getSeed(ctx)
	if err != nil {
		return nil, err
	}
	if seed == nil {
		return nil, fmt.Errorf("must specify --%v or --%v", seedFlag.Name, passphraseFlag.Name)
	}
	return deriveKey(ctx, config, seed)
}

func deriveKey(ctx *cli.Context, config *params.Config, seed crypto.Hash) (*crypto.KeyPair, error) {
	keyType, err := getKeyType(ctx, config)
	if err != nil {
		return nil, err
	}
	keyseq := ctx.Uint(keyseqFlag.Name)
	if keyType != crypto.ECDSA {
		if keyseq != 0 {
			return nil, fmt.Errorf("--%v needs a secp256k1 key", keyseqFlag.Name)
		}
		return crypto.NewKeyPair(seed.Payload(), keyType)
	}
	root, err := crypto.NewECDSAKey(seed.Payload())
	if err != nil {
		return nil, err
	}
	return root.Derive(uint32(keyseq))
}

func wallet(ctx *cli.Context) error {
	config, err := utils.InitConfigAndLogger(ctx)
	if err != nil {
		return err
	}
	seed, err := getSeed(ctx)
	if err != nil {
		return err
	}
	if seed == nil {
		if seed, err = crypto.NewRandomSeed(); err != nil {
			return err
		}
		log.Info("generated random seed")
	}
	key, err := deriveKey(ctx, config, seed)
	if err != nil {
		return err
	}
	return printJSON(ctx, walletInfo{
		Seed:      seed.String(),
		KeyType:   key.Type().String(),
		Account:   key.Address(),
		PublicKey: common.ToHex(key.Public()),
	})
}

func pubkeyToAddress(ctx *cli.Context) error {
	if _, err := utils.InitConfigAndLogger(ctx); err != nil {
		return err
	}
	pubkey := ctx.Args().Get(0)
	if pubkey == "" {
		return fmt.Errorf("empty public key argument")
	}
	b, err := common.FromHex(pubkey)
	if err != nil {
		return err
	}
	if len(b) != 33 {
		return fmt.Errorf("public key must be 33 bytes, got %d", len(b))
	}
	addr, err := crypto.NewAccountId(crypto.DeriveAccountId(b))
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "address: %v\n", addr)
	return nil
}
