// Command xmlroundtrip parses an XML document from a file or standard
// input and prints the re-rendered form, exercising the full
// tokenize/build/serialize pipeline. Run with -v=1 to trace each
// lexical event.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"

	"github.com/andaru/sxml/builder"
	"github.com/andaru/sxml/parser"
)

var orderedAttrs = flag.Bool("ordered_attrs", false,
	"preserve attribute document order when re-rendering")

func main() {
	flag.Parse()
	defer glog.Flush()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	in := io.Reader(os.Stdin)
	if args := flag.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var opts []parser.Option
	if *orderedAttrs {
		opts = append(opts, parser.WithOrderedAttributes())
	}

	p := parser.NewParser(in, opts...)
	b := builder.NewBuilder()
	for {
		ev, err := p.Next()
		if err == io.EOF {
			return builder.ErrNoElement
		}
		if err != nil {
			return err
		}
		if glog.V(1) {
			line, col := p.Position()
			glog.Infof("%d:%d %T %+v", line, col, ev, ev)
		}
		root, err := b.Feed(ev)
		if err != nil {
			return err
		}
		if root != nil {
			if _, err := root.WriteTo(os.Stdout); err != nil {
				return err
			}
			fmt.Println()
			return nil
		}
	}
}
