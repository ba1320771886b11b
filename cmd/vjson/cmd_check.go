// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/creachadair/vjson"
	"github.com/creachadair/vjson/golit"
	"github.com/spf13/cobra"
)

type checkFlags struct {
	strict bool
	all    bool
}

func newCheckCmd() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Report problems in JSON string literals of Go files",
		Long: `Report syntax problems in JSON text embedded in string literals.

Each path is a .go file or a directory, which is searched recursively for .go
files. By default only literals whose value begins with "{" or "[" are
checked; use --all to check every non-empty literal.

Literals that cannot be represented as characters (for example, those with
escapes that do not spell valid UTF-8) are skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var total int
			for _, path := range args {
				n, err := checkPath(cmd.OutOrStdout(), path, flags)
				if err != nil {
					return err
				}
				total += n
			}
			if total != 0 {
				return fmt.Errorf("found %d problems", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "accept only standard JSON")
	cmd.Flags().BoolVarP(&flags.all, "all", "a", false, "check every string literal")

	return cmd
}

// checkPath checks the Go file or directory tree at path, and reports the
// number of diagnostics written to w.
func checkPath(w io.Writer, path string, flags checkFlags) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return checkFile(w, path, flags)
	}

	var total int
	err = filepath.WalkDir(path, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		} else if d.IsDir() || filepath.Ext(p) != ".go" {
			return nil
		}
		n, err := checkFile(w, p, flags)
		total += n
		return err
	})
	return total, err
}

func checkFile(w io.Writer, path string, flags checkFlags) (int, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read file: %w", err)
	}
	diags := analyze(path, src, flags)
	for _, d := range diags {
		fmt.Fprintf(w, "%s:%v: %s\n", path, vjson.Position(src, d.Span.Pos), d.Message)
	}
	return len(diags), nil
}

// analyze reports the diagnostics for the string literals of the Go source
// src, in the coordinates of src. The path is used only for logging.
func analyze(path string, src []byte, flags checkFlags) []vjson.Diagnostic {
	lits, err := golit.Literals(src)
	if err != nil {
		log.Warningf("%s: scanning: %v", path, err)
	}
	log.Debugf("%s: %d string literals", path, len(lits))

	var out []vjson.Diagnostic
	for _, lit := range lits {
		text, err := lit.Convert()
		if err != nil {
			log.Infof("%s:%v: skipped: %v", path, vjson.Position(src, lit.Pos), err)
			continue
		}
		if !flags.all && !golit.LooksLikeJSON(text) {
			continue
		}
		tree := vjson.Parse(text, flags.strict)
		if tree == nil {
			continue // empty literal
		}
		out = append(out, tree.Diagnostics...)
	}
	return out
}
