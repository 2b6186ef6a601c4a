package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"csmap/internal/adapter/document"
	"csmap/internal/adapter/fs"
	"csmap/internal/adapter/rewrite"
)

var (
	usingsSet   string
	usingsWrite bool
)

var usingsCmd = &cobra.Command{
	Use:   "usings <file>",
	Short: "List or rewrite a file's using-block",
	Long: `Without --set, print the contiguous leading run of using statements.
With --set, replace the block with the given semicolon-separated
namespace list, keeping the file's own line-ending style and leaving
every other byte untouched. The rewritten file goes to stdout unless
--write is given.

Examples:
  csmap usings Models/Person.cs
  csmap usings Models/Person.cs --set "System;System.Collections.Generic" --write`,
	Args: cobra.ExactArgs(1),
	RunE: runUsings,
}

func init() {
	rootCmd.AddCommand(usingsCmd)
	usingsCmd.Flags().StringVar(&usingsSet, "set", "", "semicolon-separated namespaces for the new block")
	usingsCmd.Flags().BoolVarP(&usingsWrite, "write", "w", false, "rewrite the file in place")
}

func runUsings(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	content, err := fs.Reader{}.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	if usingsSet == "" {
		for _, stmt := range rewrite.UsingStatementsFromText(content) {
			fmt.Println(strings.TrimRight(stmt, "\r\n"))
		}
		return nil
	}

	var stmts []string
	for _, name := range strings.Split(usingsSet, ";") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		stmts = append(stmts, "using "+name+";")
	}

	lineEnding := document.DetectLineEnding(content)
	out := rewrite.ReplaceUsingStatements(content, stmts, lineEnding)

	if usingsWrite {
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		return nil
	}

	fmt.Print(out)
	return nil
}
