package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/peekay/postsift"
)

// Dependencies holds services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Reader    postsift.ArchiveReader
	Extractor postsift.PostExtractor
	Enhancer  postsift.Enhancer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract post records from saved page archives"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files       []string `arg:"" type:"existingfile" help:"Archive files (.mhtml) to process"`
	AI          bool     `help:"Enhance records with Company/Location via Gemini (requires GEMINI_API_KEY)"`
	CSV         string   `help:"Write records to a CSV file"`
	JSON        string   `help:"Write records to a JSON file"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent file limit"`
	RPS         float64  `default:"1" help:"Collaborator requests per second"`
	DumpText    bool     `name:"dump-text" help:"Print each archive's visible text instead of extracting records"`
	Dedup       bool     `help:"Skip posts whose markup exactly repeats an earlier post in the same archive"`
}
