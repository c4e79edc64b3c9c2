package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/pickaxe-labs/nbt.go/nbtdump/core"
)

// CLI defines the nbtdump command-line interface.
//
// Input is either a level.dat file given directly or a world directory
// (--world-dir), in which case the conventional level.dat inside it is
// decoded. Output defaults to the human-readable text tree; JSON, CBOR
// and msgpack renderings are available for piping into other tools.
//
// A YAML config file can provide defaults for format, strictness and
// depth; explicit flags win over the config.
type CLI struct {
	Path     string `arg:"" optional:"" type:"path" help:"level.dat file to decode"`
	WorldDir string `short:"w" type:"existingdir" help:"World directory; decodes its level.dat"`
	Format   string `short:"f" help:"Output format: text, json, cbor or msgpack (default text)"`
	Strict   bool   `help:"Fail on malformed top-level data instead of keeping the tags decoded so far"`
	MaxDepth int    `help:"Maximum List/Compound nesting depth (0 uses the library default)"`
	Check    bool   `help:"Validate structure only; produce no output on success"`
	Config   string `short:"c" type:"path" help:"YAML config file with defaults"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("nbtdump"),
		kong.Description("Decode little-endian NBT level.dat files and print the tag tree."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	cfg, err := core.LoadConfig(cli.Config)
	if err != nil {
		return err
	}

	opts := core.Options{
		Path:     cli.Path,
		WorldDir: cli.WorldDir,
		Format:   cli.Format,
		Strict:   cli.Strict || cfg.Strict,
		MaxDepth: cli.MaxDepth,
		Check:    cli.Check,
	}
	if opts.Format == "" {
		opts.Format = cfg.Format
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = cfg.MaxDepth
	}

	return core.Run(opts, os.Stdout)
}
