package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/signadot/ffl/encode"
	"github.com/signadot/ffl/eval"
	"github.com/signadot/ffl/value"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getValueFile(cfg *MainConfig, cc *cli.Context, path string) (value.Value, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return value.Value{}, err
	}
	return decodeValue(cfg, d)
}

func decodeValue(cfg *MainConfig, d []byte) (value.Value, error) {
	if cfg.CBOR {
		return value.DecodeCBOR(d)
	}
	switch cfg.inFormat() {
	case encode.YAMLFormat:
		var x any
		if err := yaml.Unmarshal(d, &x); err != nil {
			return value.Value{}, err
		}
		return value.FromAny(x)
	case encode.FFLFormat:
		return eval.Eval(string(d), nil)
	default:
		return value.Deserialize(d)
	}
}

func writeValue(cfg *MainConfig, w io.Writer, v value.Value) error {
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
