// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 OWS Lab

// geovalid is a thin command line driver over the validation engine, meant
// for checking inputs by hand. The engine's real entry point is the
// validator package API.
//
// Usage:
//
//	geovalid -format gml -mode strict rivers.gml
//
// Exit code 0 means the input passed validation, 1 that it failed, 2 that
// the invocation itself was invalid.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/owslab/geovalid/internal/config"
	"github.com/owslab/geovalid/internal/formats"
	"github.com/owslab/geovalid/internal/logger"
	"github.com/owslab/geovalid/internal/schema"
	"github.com/owslab/geovalid/internal/validator"
)

func main() {
	passed, err := run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "geovalid:", err)
		os.Exit(2)
	}
	if !passed {
		os.Exit(1)
	}
}

func run() (bool, error) {
	formatName := flag.String("format", "", "Declared input format (gml, geojson, shapefile, geotiff)")

	cfg, err := config.New()
	if err != nil {
		return false, err
	}

	log := logger.NewLogger("cli")
	if level, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Level(level)
	}

	if *formatName == "" {
		return false, fmt.Errorf("missing required -format flag")
	}
	if flag.NArg() != 1 {
		return false, fmt.Errorf("expected exactly one input file, got %d", flag.NArg())
	}
	file := flag.Arg(0)

	format, ok := formats.Lookup(*formatName)
	if !ok {
		return false, fmt.Errorf("unsupported format %q", *formatName)
	}
	if format.Name == formats.GML.Name && cfg.Validation.GMLSchemaURL != "" {
		format.Schema = cfg.Validation.GMLSchemaURL
	}

	mode, err := validator.ParseMode(cfg.Validation.DefaultMode)
	if err != nil {
		return false, err
	}

	scratch, err := os.MkdirTemp("", "geovalid-*")
	if err != nil {
		return false, fmt.Errorf("create scratch directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	runLog, _ := log.NewRunLogger()
	runLog.Debug().Str("file", file).Str("format", format.Name).Msg("starting validation run")

	v := validator.New(runLog, validator.WithXMLSchemaEngine(
		schema.NewXMLValidator(resty.New().SetTimeout(cfg.Validation.SchemaFetchTimeout)),
	))

	in := &validator.Input{File: file, Format: format, TempDir: scratch}
	ctx := runLog.WithContext(context.Background())

	var passed bool
	switch format.Name {
	case formats.GML.Name:
		passed = v.ValidateGML(ctx, in, mode)
	case formats.GeoJSON.Name:
		passed = v.ValidateGeoJSON(ctx, in, mode)
	case formats.Shapefile.Name:
		passed = v.ValidateShapefile(ctx, in, mode)
	case formats.GeoTIFF.Name:
		passed = v.ValidateGeoTIFF(ctx, in, mode)
	}

	runLog.Info().
		Bool("passed", passed).
		Stringer("mode", mode).
		Msg("validation finished")

	return passed, nil
}
