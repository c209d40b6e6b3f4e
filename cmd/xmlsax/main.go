// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command xmlsax loads an XML or YAML document into a generic element tree, marshals it through a
// SAX source and writes the result back as XML or as an event trace.
package main

import (
	"io"
	"os"

	"github.com/rcrowley/go-metrics"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/Goodwine/xmlsource/bind"
	"github.com/Goodwine/xmlsource/intern"
	"github.com/Goodwine/xmlsource/sax"
	"github.com/Goodwine/xmlsource/saxwriter"
)

func main() {
	log.SetFormatter(&log.TextFormatter{})
	log.SetOutput(os.Stderr)

	opts := &options{}
	if err := opts.Parse(pflag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
	log.SetLevel(opts.LogLevel)

	in := io.Reader(os.Stdin)
	if opts.In != "-" {
		f, err := os.Open(opts.In)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}
	if err := run(opts, in, os.Stdout, os.Stderr); err != nil {
		log.WithField("in", opts.In).Fatal(err)
	}
}

func run(opts *options, in io.Reader, out, stats io.Writer) error {
	var (
		tree *bind.Element
		err  error
	)
	switch opts.Format {
	case formatYAML:
		tree, err = readYAML(in)
	default:
		tree, err = bind.ReadElement(in)
	}
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"root": tree.XMLName.Local, "children": len(tree.Children)}).Debug("document loaded")

	names := intern.New()
	src, err := bind.NewSource(bind.NewXMLContext(bind.WithNames(names)), tree,
		bind.WithLogger(log.WithField("in", opts.In)))
	if err != nil {
		return err
	}

	switch opts.Output {
	case outputEvents:
		err = trace(src, out)
	default:
		var wopts []saxwriter.Option
		if opts.Indent != "" {
			wopts = append(wopts, saxwriter.WithIndent("", opts.Indent))
		}
		if err = saxwriter.Copy(out, src.Reader(), src.Input(), wopts...); err == nil {
			_, err = io.WriteString(out, "\n")
		}
	}
	if err != nil {
		return err
	}

	if opts.Stats {
		r := metrics.NewRegistry()
		if err := names.Register(r); err != nil {
			return err
		}
		metrics.WriteOnce(r, stats)
	}
	return nil
}

func trace(src *bind.Source, out io.Writer) error {
	t := &tracer{w: out}
	r := src.Reader()
	r.SetContentHandler(t)
	if err := r.SetProperty(sax.PropertyLexicalHandler, t); err != nil {
		return err
	}
	return r.Parse(src.Input())
}
