// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fmtcmd transcodes OSM XML to canonical form by piping the
// decoder straight into the encoder.
package fmtcmd

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/alx741/naqsha"
	"github.com/alx741/naqsha/cmd/naqsha/cli"
)

func init() {
	cli.RootCmd.AddCommand(fmtCmd)

	flags := fmtCmd.Flags()
	flags.StringP("indent", "i", "  ", "indentation per nesting level; empty for compact output")
	flags.StringP("generator", "g", naqsha.DefaultWritingProgram, "generator attribute of the osm element")
	flags.BoolP("lenient", "l", false, "skip elements outside the OSM v0.6 vocabulary")
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [<OSM XML file>]",
	Short: "Rewrite an OSM XML file in canonical form",
	Long:  "Rewrite an OSM XML file in canonical form",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {

		f := os.Stdin
		if len(args) == 1 {
			var err error

			f, err = os.Open(args[0])
			if err != nil {
				log.Fatal(err)
			}
		}

		in, err := cli.WrapInputFile(f)
		if err != nil {
			log.Fatal(err)
		}

		flags := cmd.Flags()

		indent, err := flags.GetString("indent")
		if err != nil {
			log.Fatal(err)
		}

		generator, err := flags.GetString("generator")
		if err != nil {
			log.Fatal(err)
		}

		lenient, err := flags.GetBool("lenient")
		if err != nil {
			log.Fatal(err)
		}

		if err := transcode(in, os.Stdout, indent, generator, lenient); err != nil {
			log.Fatal(err)
		}

		if err := in.Close(); err != nil {
			log.Fatal(err)
		}
	},
}

// transcode pipes events from a decoder into an encoder, one at a
// time, so arbitrarily large documents pass through in constant
// memory.
func transcode(in io.Reader, dst io.Writer, indent, generator string, lenient bool) error {
	dopts := []naqsha.DecoderOption{}
	if lenient {
		dopts = append(dopts, naqsha.WithUnknownElements(naqsha.SkipUnknown))
	}

	d := naqsha.NewDecoder(in, dopts...)

	e := naqsha.NewEncoder(dst,
		naqsha.WithIndent(indent),
		naqsha.WithWritingProgram(generator),
	)

	for {
		ev, err := d.Decode()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			// surface the close error first if the sink broke early
			if cerr := e.Close(); cerr != nil {
				return cerr
			}

			return err
		}

		if err := e.Encode(ev); err != nil {
			return err
		}
	}

	return e.Close()
}
