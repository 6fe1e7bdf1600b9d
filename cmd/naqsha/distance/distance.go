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

package distance

import (
	"fmt"
	"log"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/alx741/naqsha/cmd/naqsha/cli"
	"github.com/alx741/naqsha/geo"
)

func init() {
	cli.RootCmd.AddCommand(distanceCmd)

	flags := distanceCmd.Flags()
	flags.Float64P("radius", "r", geo.MeanEarthRadius, "sphere radius to measure on")
}

var distanceCmd = &cobra.Command{
	Use:   "distance <lat,lon> <lat,lon>",
	Short: "Print the great-circle distance between two points",
	Long:  "Print the great-circle distance between two points given as decimal degrees",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {

		p1, err := parsePoint(args[0])
		if err != nil {
			log.Fatal(err)
		}

		p2, err := parsePoint(args[1])
		if err != nil {
			log.Fatal(err)
		}

		radius, err := cmd.Flags().GetFloat64("radius")
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(humanize.Commaf(geo.DistanceOnSphere(p1, p2, radius)))
	},
}

func parsePoint(s string) (geo.Geo, error) {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok {
		return geo.Geo{}, fmt.Errorf("point %q is not of the form lat,lon", s)
	}

	alat, err := geo.ParseAngle(strings.TrimSpace(lat))
	if err != nil {
		return geo.Geo{}, err
	}

	alon, err := geo.ParseAngle(strings.TrimSpace(lon))
	if err != nil {
		return geo.Geo{}, err
	}

	return geo.Geo{Lat: geo.Latitude(alat), Lon: geo.Longitude(alon)}, nil
}
