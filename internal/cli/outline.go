package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"csmap/internal/adapter/fs"
	"csmap/internal/adapter/scanner"
	"csmap/internal/usecase"
)

var outlineJSON bool

var outlineCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "Print the structural outline of one file",
	Long: `Extract and print a file's structural outline: namespace, type name,
inheritance list, using-block, and every member declaration carrying
the configured access modifier. The outline is computed fresh from the
file on disk; the index is not consulted.

Examples:
  csmap outline Models/Person.cs
  csmap outline Models/Person.cs --json`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
	outlineCmd.Flags().BoolVar(&outlineJSON, "json", false, "output as JSON")
}

func runOutline(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	content, err := fs.Reader{}.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	report := stderrReporter{}
	if _, err := scanner.Namespace(content); err != nil {
		report.ShowErrorMessage(err.Error())
	}
	if _, err := scanner.ClassName(content); err != nil {
		report.ShowErrorMessage(err.Error())
	}

	outline := usecase.OutlineText(content, cfg.Scan.Modifier)
	outline.Path = path

	if outlineJSON {
		data, err := json.MarshalIndent(outline, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if outline.Namespace != "" {
		fmt.Printf("namespace %s\n", outline.Namespace)
	}
	if outline.ClassName != "" {
		fmt.Printf("class %s\n", outline.ClassName)
	}
	for _, base := range outline.Inherits {
		fmt.Printf("  : %s\n", base)
	}
	for _, m := range outline.Members {
		fmt.Printf("  [%s] %s (lines %d-%d)\n", m.Kind, m.Signature, m.StartLine+1, m.EndLine+1)
	}
	return nil
}
