// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/creachadair/vjson"
	"github.com/creachadair/vjson/golit"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var strict, goLiteral bool

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the syntax tree of JSON text",
		Long: `Parse JSON text and print its syntax tree and diagnostics.

If a file is provided, its contents are parsed; otherwise the text is read
from stdin. With --go, the input is the source text of a single Go string
literal (including its quotes), and positions refer to that text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input []byte
			var err error
			if len(args) == 0 {
				input, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
			} else {
				input, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read file: %w", err)
				}
			}

			var text vjson.Chars
			if goLiteral {
				text, err = golit.Convert(strings.TrimSpace(string(input)), 0)
				if err != nil {
					return err
				}
			} else {
				text = vjson.FromString(string(input), 0)
			}
			log.Debugf("parsing %d characters (strict=%v)", len(text), strict)

			tree := vjson.Parse(text, strict)
			if tree == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "(empty)")
				return nil
			}
			return vjson.Format(cmd.OutOrStdout(), tree)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "accept only standard JSON")
	cmd.Flags().BoolVar(&goLiteral, "go", false, "input is a Go string literal")

	return cmd
}
