package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/anyswap/ripple-signer/common"
	"github.com/anyswap/ripple-signer/data"
	"github.com/urfave/cli/v2"
)

// readInput reads the named file, or stdin for "-".
func readInput(ctx *cli.Context, name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("no input file specified")
	}
	if name == "-" {
		if ctx.App.Reader != nil {
			return ioutil.ReadAll(ctx.App.Reader)
		}
		return ioutil.ReadAll(os.Stdin)
	}
	if !common.FileExist(name) {
		return nil, fmt.Errorf("file %v not exist", name)
	}
	return ioutil.ReadFile(name)
}

func readObject(ctx *cli.Context, name string) (data.Object, error) {
	b, err := readInput(ctx, name)
	if err != nil {
		return nil, err
	}
	var obj data.Object
	if err := json.Unmarshal(b, &obj); err != nil {
		return nil, fmt.Errorf("parse %v: %w", name, err)
	}
	return obj, nil
}

// readBlob accepts a hex argument, or "@file" to read the hex from a file.
func readBlob(ctx *cli.Context, arg string) ([]byte, error) {
	if strings.HasPrefix(arg, "@") {
		b, err := readInput(ctx, arg[1:])
		if err != nil {
			return nil, err
		}
		arg = string(b)
	}
	if arg == "" {
		return nil, fmt.Errorf("empty hex argument")
	}
	return common.FromHex(arg)
}

func printJSON(ctx *cli.Context, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(b))
	return err
}
