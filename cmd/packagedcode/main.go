// Command packagedcode walks a directory tree, runs every registered
// ecosystem parser over the files it recognizes, assembles sibling
// manifests into top-level packages, and prints the result as JSON.
//
// This is scaffolding around the library packages, grounded on the
// flag-parsed, single-purpose shape of claircore's cmd/cctool tools rather
// than a daemon or service entry point.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/quay/zlog"

	"github.com/quay/packagedcode"
	"github.com/quay/packagedcode/assembler"
	"github.com/quay/packagedcode/parser"

	_ "github.com/quay/packagedcode/register"
)

func main() {
	var (
		root    string
		verbose bool
	)
	fs := flag.NewFlagSet("packagedcode", flag.ExitOnError)
	fs.StringVar(&root, "root", ".", "directory to scan for package manifests")
	fs.BoolVar(&verbose, "v", false, "enable debug logging")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		fs.PrintDefaults()
	}
	if err := fs.Parse(os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	if verbose {
		ctx = zlog.ContextWithValues(ctx, "component", "packagedcode/cmd")
	}

	files, err := walk(ctx, root)
	if err != nil {
		log.Fatalf("walk %s: %v", root, err)
	}

	result := assembler.AssembleFiles(files)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatal(err)
	}
}

// walk collects one *packagedcode.FileInfo per regular file under root,
// relative to root with forward slashes and no leading slash, running the
// parser registry against each.
func walk(ctx context.Context, root string) ([]*packagedcode.FileInfo, error) {
	var files []*packagedcode.FileInfo

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		info, err := d.Info()
		if err != nil {
			zlog.Warn(ctx).Err(err).Str("path", rel).Msg("could not stat file")
			return nil
		}

		fi := &packagedcode.FileInfo{
			Path:     rel,
			Name:     d.Name(),
			BaseName: d.Name(),
			Ext:      filepath.Ext(d.Name()),
			Kind:     packagedcode.KindFile,
			Size:     info.Size(),
		}
		fi.PackageData = parser.TryParseFile(ctx, p)
		files = append(files, fi)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
