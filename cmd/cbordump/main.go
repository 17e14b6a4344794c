// Command cbordump prints the RFC 8949 diagnostic-notation rendering of a
// CBOR file, or reports a decoding error's coding path when the input is
// malformed.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	cbor "github.com/cbor-go/bridge"
)

var cli struct {
	Input    string `arg:"" help:"Path to a CBOR-encoded file, or - for stdin." type:"path"`
	Quiet    bool   `short:"q" help:"Suppress the trailing newline."`
	MaxDepth int    `help:"Reject input nested deeper than this many containers/tags. 0 means no override." default:"0"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("cbordump"),
		kong.Description("Render a CBOR file in RFC 8949 diagnostic notation."),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	data, err := readInput(cli.Input)
	if err != nil {
		return err
	}
	out, err := cbor.DiagnoseWithOptions(data, cbor.DecodeOptions{MaxDepth: cli.MaxDepth})
	if err != nil {
		if derr, ok := err.(*cbor.DecodingError); ok {
			return fmt.Errorf("%s: %s (%s)", derr.Kind, derr.Err, derr.CodingPath)
		}
		return err
	}
	if cli.Quiet {
		fmt.Print(out)
		return nil
	}
	fmt.Println(out)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return os.ReadFile("/dev/stdin")
	}
	return os.ReadFile(path)
}
