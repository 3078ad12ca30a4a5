package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/sax"
	"github.com/lestrrat-go/sax/internal/cliutil"
)

type cmdopts struct {
	Strict     bool `long:"strict"`
	Namespaces bool `long:"namespaces"`
	Trim       bool `long:"trim"`
	Normalize  bool `long:"normalize"`
	Lowercase  bool `long:"lowercase"`
}

func main() {
	os.Exit(_main())
}

func showUsage() {
	fmt.Printf(`Usage : sax-events [options] XMLfiles ...
	Parse the XML files and print one line per SAX event
	--strict     : parse in strict mode
	--namespaces : resolve xmlns prefixes
	--trim       : trim whitespace around text events
	--normalize  : collapse whitespace runs in text events
	--lowercase  : lowercase tag and attribute names
`)
}

func newEventPrinter(out io.Writer) *sax.SAX {
	return &sax.SAX{
		OpenTagStartHandler: func(_ sax.Context, tag *sax.Tag) {
			fmt.Fprintf(out, "openTagStart(%s)\n", tag.Name)
		},
		AttributeHandler: func(_ sax.Context, attr *sax.Attribute) {
			if attr.URI != "" {
				fmt.Fprintf(out, "attribute(%s=%q, uri=%s)\n", attr.Name, attr.Value, attr.URI)
				return
			}
			fmt.Fprintf(out, "attribute(%s=%q)\n", attr.Name, attr.Value)
		},
		OpenTagHandler: func(_ sax.Context, tag *sax.Tag) {
			fmt.Fprintf(out, "openTag(%s, selfClosing=%t)\n", tag.Name, tag.IsSelfClosing)
		},
		CloseTagHandler: func(_ sax.Context, name string) {
			fmt.Fprintf(out, "closeTag(%s)\n", name)
		},
		TextHandler: func(_ sax.Context, data string) {
			fmt.Fprintf(out, "text(%q)\n", data)
		},
		OpenCDATAHandler: func(_ sax.Context) {
			fmt.Fprintln(out, "openCDATA()")
		},
		CDATAHandler: func(_ sax.Context, data string) {
			fmt.Fprintf(out, "cdata(%q)\n", data)
		},
		CloseCDATAHandler: func(_ sax.Context) {
			fmt.Fprintln(out, "closeCDATA()")
		},
		CommentHandler: func(_ sax.Context, data string) {
			fmt.Fprintf(out, "comment(%q)\n", data)
		},
		DoctypeHandler: func(_ sax.Context, data string) {
			fmt.Fprintf(out, "doctype(%q)\n", data)
		},
		ProcInstHandler: func(_ sax.Context, pi sax.ProcInst) {
			fmt.Fprintf(out, "processingInstruction(%s, %q)\n", pi.Name, pi.Body)
		},
		SGMLDeclarationHandler: func(_ sax.Context, data string) {
			fmt.Fprintf(out, "sgmlDeclaration(%q)\n", data)
		},
		OpenNamespaceHandler: func(_ sax.Context, ns sax.Namespace) {
			fmt.Fprintf(out, "openNamespace(%s=%s)\n", ns.Prefix, ns.URI)
		},
		CloseNamespaceHandler: func(_ sax.Context, ns sax.Namespace) {
			fmt.Fprintf(out, "closeNamespace(%s=%s)\n", ns.Prefix, ns.URI)
		},
		ErrorHandler: func(_ sax.Context, err error) {
			fmt.Fprintf(out, "error(%s)\n", err)
		},
		EndHandler: func(_ sax.Context) {
			fmt.Fprintln(out, "end()")
		},
	}
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	var inputs []io.Reader
	switch {
	case len(args) > 0:
		for _, f := range args {
			fh, err := os.Open(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			defer fh.Close()
			inputs = append(inputs, fh)
		}
	case !cliutil.IsTty(os.Stdin):
		inputs = append(inputs, os.Stdin)
	default:
		showUsage()
		return 1
	}

	options := []sax.Option{
		sax.WithStrict(opts.Strict),
		sax.WithNamespaces(opts.Namespaces),
		sax.WithTrim(opts.Trim),
		sax.WithNormalize(opts.Normalize),
		sax.WithSAX(newEventPrinter(os.Stdout)),
	}
	if opts.Lowercase {
		options = append(options, sax.WithCaseTransform(sax.CaseLower))
	}

	for _, in := range inputs {
		p, err := sax.New(options...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		buf := make([]byte, 32*1024)
		for {
			n, err := in.Read(buf)
			if n > 0 {
				if werr := p.Write(buf[:n]); werr != nil {
					fmt.Fprintf(os.Stderr, "%s\n", werr)
					return 1
				}
			}
			if err == io.EOF {
				break
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
		}
		if err := p.End(); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		p.Release()
	}

	return 0
}
