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

package info

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/alx741/naqsha"
	"github.com/alx741/naqsha/cmd/naqsha/cli"
	"github.com/alx741/naqsha/geo"
)

var out io.Writer = os.Stdout

type documentInfo struct {
	Bounds        *geo.Bounds
	NodeCount     int64
	WayCount      int64
	RelationCount int64
	TagCount      int64
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
	flags.BoolP("lenient", "l", false, "skip elements outside the OSM v0.6 vocabulary")
}

var infoCmd = &cobra.Command{
	Use:   "info [<OSM XML file>]",
	Short: "Print information about an OSM XML file",
	Long:  "Print information about an OSM XML file",
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

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		lenient, err := flags.GetBool("lenient")
		if err != nil {
			log.Fatal(err)
		}

		info, err := runInfo(in, lenient)

		if cerr := in.Close(); cerr != nil {
			log.Fatal(cerr)
		}

		if err != nil {
			log.Fatal(err)
		}

		if jsonfmt {
			renderJSON(info)
		} else {
			render(info)
		}
	},
}

// runInfo streams the document once, counting elements as they pass.
func runInfo(in io.Reader, lenient bool) (*documentInfo, error) {
	var opts []naqsha.DecoderOption
	if lenient {
		opts = append(opts, naqsha.WithUnknownElements(naqsha.SkipUnknown))
	}

	d := naqsha.NewDecoder(in, opts...)
	info := &documentInfo{}

	for {
		ev, err := d.Decode()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}

		switch ev := ev.(type) {
		case naqsha.Bounds:
			bounds := ev.Bounds
			info.Bounds = &bounds
		case naqsha.NodeBegin:
			info.NodeCount++
		case naqsha.WayBegin:
			info.WayCount++
		case naqsha.RelationBegin:
			info.RelationCount++
		case naqsha.Tag:
			info.TagCount++
		}
	}

	return info, nil
}

func render(info *documentInfo) {
	if info.Bounds != nil {
		fmt.Fprintf(out, "Bounds: %s\n", info.Bounds)
	}

	fmt.Fprintf(out, "NodeCount: %s\n", humanize.Comma(info.NodeCount))
	fmt.Fprintf(out, "WayCount: %s\n", humanize.Comma(info.WayCount))
	fmt.Fprintf(out, "RelationCount: %s\n", humanize.Comma(info.RelationCount))
	fmt.Fprintf(out, "TagCount: %s\n", humanize.Comma(info.TagCount))
}

func renderJSON(info *documentInfo) {
	v := struct {
		Bounds    string `json:"bounds,omitempty"`
		Nodes     int64  `json:"nodes"`
		Ways      int64  `json:"ways"`
		Relations int64  `json:"relations"`
		Tags      int64  `json:"tags"`
	}{
		Nodes:     info.NodeCount,
		Ways:      info.WayCount,
		Relations: info.RelationCount,
		Tags:      info.TagCount,
	}

	if info.Bounds != nil {
		v.Bounds = info.Bounds.String()
	}

	b, err := json.Marshal(v)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprintln(out, string(b))
}
