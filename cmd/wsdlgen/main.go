// Command wsdlgen renders a Go SOAP client from a WSDL 1.1 document.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/netwo-io/wsdlgen/pkg/generator"
	"github.com/rs/zerolog"
)

var version = "tip"

func main() {
	opts := struct {
		Src      string
		Dst      string
		Pkg      string
		Insecure bool
		Version  bool
		Verbose  bool
	}{}
	flag.StringVar(&opts.Src, "i", opts.Src, "input file, url, or '-' for stdin")
	flag.StringVar(&opts.Dst, "o", opts.Dst, "output file, or '-' for stdout")
	flag.StringVar(&opts.Pkg, "pkg", opts.Pkg, "generated package name (default \"providers\")")
	flag.BoolVar(&opts.Insecure, "yolo", opts.Insecure, "accept invalid https certificates")
	flag.BoolVar(&opts.Version, "version", opts.Version, "show version and exit")
	flag.BoolVar(&opts.Verbose, "v", opts.Verbose, "log each pipeline stage")
	flag.Parse()

	if opts.Version {
		fmt.Printf("wsdlgen %s\n", version)
		return
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !opts.Verbose {
		log = log.Level(zerolog.WarnLevel)
	}

	w, closeW, err := destination(opts.Dst)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open output")
	}
	defer closeW()

	err = generator.Generate(w, generator.Options{
		Src:         opts.Src,
		PackageName: opts.Pkg,
		Insecure:    opts.Insecure,
		Log:         &log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("generate failed")
	}
}

func destination(dst string) (w io.Writer, closeFn func(), err error) {
	switch dst {
	case "", "-":
		return os.Stdout, func() {}, nil
	default:
		f, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
}
