/*
Copyright © 2026 the Tracer authors.
This file is part of Tracer.

Tracer is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Tracer is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Tracer.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package tracerutil holds the command-line interface and configuration
// handling for the tracer command.
package tracerutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spatialmodel/tracer"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var log = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Cfg = viper.New()

	// Options are the configuration options available to the tracer
	// command.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "layers",
			usage: `
              layers lists the shapefiles holding the linework to trace
              along.`,
			shorthand:  "l",
			defaultVal: []string{},
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "filter",
			usage: `
              filter is an attribute expression selecting the features
              that take part in tracing, for example "highway == 'yes'".
              An empty filter uses every feature.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "crs",
			usage: `
              crs gives the spatial reference to trace in, in Proj4
              format. Features are transformed from each layer's native
              reference. An empty value leaves features untransformed.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "extent",
			usage: `
              extent restricts tracing to the features intersecting the
              rectangle "xmin,ymin,xmax,ymax" (in the tracing spatial
              reference). An empty value uses all features.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "maxfeatures",
			usage: `
              maxfeatures caps the number of features the tracing graph
              may be built from: tracing fails once this many features
              have been read. 0 means no limit.`,
			defaultVal: 0,
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "noding",
			usage: `
              noding splits the linework at mutual intersections before
              tracing. Enable it when the input data is not noded.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "offset",
			usage: `
              offset traces a curve laterally offset from the linework
              by the given distance. Positive values offset to the left
              of the direction of travel.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "offsetsegments",
			usage: `
              offsetsegments sets the number of arc segments per quarter
              circle in round offset joins.`,
			defaultVal: 8,
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "joinstyle",
			usage: `
              joinstyle selects how offset curves turn corners: miter,
              bevel, or round.`,
			defaultVal: "miter",
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "miterlimit",
			usage: `
              miterlimit bounds the length of miter offset joins, as a
              multiple of the offset distance; longer joins are
              bevelled.`,
			defaultVal: 2.0,
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "from",
			usage: `
              from is the trace start point as "x,y", in the tracing
              spatial reference.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "to",
			usage: `
              to is the trace end point as "x,y", in the tracing spatial
              reference.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output is the file to write the traced path to, in GeoJSON
              format. An empty value writes to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{traceCmd.Flags()},
		},
	}

	for _, option := range options {
		for _, set := range option.flagsets {
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(traceCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("tracer: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "tracer",
	Short: "Trace shortest paths along vector linework.",
	Long: `Tracer builds a planar graph from the linework of vector layers and
traces shortest paths along it between arbitrary planar points.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag) or by using command-line
arguments. Refer to https://github.com/spf13/viper for additional
configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Tracer.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Tracer v%s\n", tracer.Version)
	},
	DisableAutoGenTag: true,
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "Trace the shortest path between two points.",
	Long: `trace builds the tracing graph from the configured layers and finds
the shortest path along the linework between the --from and --to points,
writing the result as GeoJSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := NewTracer(Cfg)
		if err != nil {
			return err
		}
		p1, err := ParsePoint(Cfg.GetString("from"))
		if err != nil {
			return fmt.Errorf("tracer: parsing --from: %v", err)
		}
		p2, err := ParsePoint(Cfg.GetString("to"))
		if err != nil {
			return fmt.Errorf("tracer: parsing --to: %v", err)
		}

		path, err := t.FindShortestPath(p1, p2)
		if err != nil {
			return err
		}
		if t.HasTopologyProblem() {
			log.Warn("the linework could not be noded; the traced path may miss intersections")
		}
		log.WithFields(logrus.Fields{
			"points": len(path),
			"length": path.Length(),
		}).Info("traced path")

		w := os.Stdout
		if fname := Cfg.GetString("output"); fname != "" {
			w, err = os.Create(fname)
			if err != nil {
				return err
			}
			defer w.Close()
		}
		return WritePath(w, path)
	},
	DisableAutoGenTag: true,
}
