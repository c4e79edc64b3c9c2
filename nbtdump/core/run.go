package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cbor "github.com/fxamacker/cbor/v2"
	msgp "github.com/tinylib/msgp/msgp"

	nbt "github.com/pickaxe-labs/nbt.go/runtime"
)

// levelFileName is the conventional document name inside a world
// directory.
const levelFileName = "level.dat"

// Options selects the input, the decode policy and the output rendering
// for one run.
type Options struct {
	Path     string // explicit file path; mutually exclusive with WorldDir
	WorldDir string // world directory containing level.dat
	Format   string // text, json, cbor or msgpack; empty means text
	Strict   bool   // propagate top-level decode errors
	MaxDepth int    // nesting limit, 0 = library default
	Check    bool   // validate structure only, no output
}

// Run decodes one document and writes the selected rendering to out.
func Run(opts Options, out io.Writer) error {
	path, err := resolveInput(opts)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	data, err = nbt.DecompressBytes(data)
	if err != nil {
		return fmt.Errorf("decompress %q: %w", path, err)
	}

	if opts.Check {
		if !nbt.ValidDocument(data) {
			return fmt.Errorf("%s: not a structurally valid document", path)
		}
		return nil
	}

	dec := nbt.NewDecoderBytes(data)
	dec.SetStrictDecode(opts.Strict)
	dec.SetMaxDepth(opts.MaxDepth)
	doc, err := dec.ReadDocument()
	if err != nil {
		return fmt.Errorf("decode %q: %w", path, err)
	}

	return render(doc, opts.Format, out)
}

func resolveInput(opts Options) (string, error) {
	switch {
	case opts.Path != "" && opts.WorldDir != "":
		return "", errors.New("give either a file path or --world-dir, not both")
	case opts.WorldDir != "":
		return filepath.Join(opts.WorldDir, levelFileName), nil
	case opts.Path != "":
		return opts.Path, nil
	default:
		return "", errors.New("no input: give a file path or --world-dir")
	}
}

func render(doc *nbt.Document, format string, out io.Writer) error {
	switch format {
	case "", "text":
		_, err := io.WriteString(out, nbt.Diag(doc))
		return err
	case "json":
		b := nbt.AppendJSON(nil, doc)
		b = append(b, '\n')
		_, err := out.Write(b)
		return err
	case "cbor":
		b, err := cbor.Marshal(doc.Interface())
		if err != nil {
			return fmt.Errorf("encode cbor: %w", err)
		}
		_, err = out.Write(b)
		return err
	case "msgpack":
		b, err := msgp.AppendIntf(nil, doc.Interface())
		if err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		_, err = out.Write(b)
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, json, cbor or msgpack)", format)
	}
}
