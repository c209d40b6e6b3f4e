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

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	formatXML  = "xml"
	formatYAML = "yaml"

	outputXML    = "xml"
	outputEvents = "events"
)

var errStdinFormat = errors.New("--format is required when reading from stdin")

type options struct {
	In       string
	Format   string
	Output   string
	Indent   string
	Stats    bool
	LogLevel log.Level
}

func (o *options) Parse(fs *pflag.FlagSet, args []string) error {
	var level string
	fs.StringVar(&o.In, "in", "-", "input document, - reads stdin")
	fs.StringVar(&o.Format, "format", "", "input format (xml, yaml), inferred from the --in extension when empty")
	fs.StringVar(&o.Output, "output", outputXML, "what to write (xml, events)")
	fs.StringVar(&o.Indent, "indent", "", "indent string for xml output")
	fs.BoolVar(&o.Stats, "stats", false, "print name interning metrics to stderr")
	fs.StringVar(&level, "log-level", "info", "one of info, debug or trace")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if o.LogLevel, err = log.ParseLevel(level); err != nil {
		return err
	}
	if o.Format == "" {
		if o.In == "-" {
			return errStdinFormat
		}
		o.Format = formatOf(o.In)
	}
	switch o.Format {
	case formatXML, formatYAML:
	default:
		return fmt.Errorf("unknown --format %q", o.Format)
	}
	switch o.Output {
	case outputXML, outputEvents:
	default:
		return fmt.Errorf("unknown --output %q", o.Output)
	}
	return nil
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatXML
}
