package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/woozymasta/geokit/internal/geodesic"
	"github.com/woozymasta/geokit/internal/logger"
	"github.com/woozymasta/geokit/internal/parser"
	"github.com/woozymasta/geokit/internal/processor"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
	"github.com/twpayne/go-geom/encoding/geojson"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	Input         string  `short:"i" long:"in"             description:"Input file path or http(s) URL. Reads from stdin if empty"`
	Output        string  `short:"o" long:"out"            description:"Output file path. Writes to stdout if empty"`
	Point         string  `short:"p" long:"point"          description:"Query point as lon,lat[,alt]"`
	Format        string  `short:"f" long:"format"         description:"Output format" choice:"json" choice:"yaml" choice:"geojson" default:"json"`
	ErrorDistance float64 `short:"e" long:"error-distance" env:"ERROR_DISTANCE" description:"Query tolerance in meters, negative shrinks polygons"`
	Concurrency   int     `short:"c" long:"concurrency"    env:"CONCURRENCY"    description:"Concurrency" default:"4"`
	WKT           bool    `short:"w" long:"wkt"            description:"Input is WKT text"`
}

func main() {
	var opts Options
	flagParser := flags.NewParser(&opts, flags.Default)
	if _, err := flagParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("geoquery failed")
	}
}

func run(ctx context.Context, opts Options, stdin io.Reader, stdout io.Writer) error {
	var query *processor.Query
	if opts.Point != "" {
		point, err := parsePoint(opts.Point)
		if err != nil {
			return err
		}
		query = &processor.Query{Point: point, ErrorDistance: opts.ErrorDistance}
	}

	// Read Input
	var data []byte
	var err error
	if opts.Input != "" {
		data, err = processor.Load(ctx, processor.NewClient(), opts.Input)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var fc *geojson.FeatureCollection
	if opts.WKT {
		fc, err = parser.WKTCollection(string(data))
	} else {
		fc, err = parser.ParseCollection(data)
	}
	if err != nil {
		return err
	}

	measurements, err := processor.MeasureFeatures(ctx, fc, opts.Concurrency, query)
	if err != nil {
		return err
	}

	if opts.Output != "" && opts.Format == "geojson" {
		if err := processor.SaveGeoJSON(opts.Output, processor.Annotate(measurements)); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		logWritten(opts, len(measurements))
		return nil
	}

	var out []byte
	if opts.Format == "geojson" {
		out, err = processor.Marshal(processor.Annotate(measurements), "json")
	} else {
		out, err = processor.Marshal(measurements, opts.Format)
	}
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}

	if opts.Output == "" {
		_, err = fmt.Fprintln(stdout, string(out))
		return err
	}

	if err := os.WriteFile(opts.Output, out, 0644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logWritten(opts, len(measurements))

	return nil
}

func logWritten(opts Options, count int) {
	log.Info().
		Int("features", count).
		Str("out", opts.Output).
		Str("format", opts.Format).
		Msg("Measurements written")
}

// parsePoint reads "lon,lat" or "lon,lat,alt".
func parsePoint(s string) (geodesic.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return geodesic.Point{}, fmt.Errorf("point %q: want lon,lat[,alt]", s)
	}

	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geodesic.Point{}, fmt.Errorf("point %q: %w", s, err)
		}
		values[i] = v
	}

	if len(values) == 3 {
		return geodesic.NewPointWithAltitude(values[0], values[1], values[2]), nil
	}
	return geodesic.NewPoint(values[0], values[1]), nil
}
