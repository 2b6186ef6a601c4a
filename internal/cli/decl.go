package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"csmap/internal/adapter/document"
	"csmap/internal/adapter/fs"
	"csmap/internal/domain"
	"csmap/internal/usecase"
)

var (
	declFile string
	declLine int
	declKind string
)

var declCmd = &cobra.Command{
	Use:   "decl",
	Short: "Find the declaration enclosing a cursor position",
	Long: `Report the full signature of the method or property enclosing the given
line, scanning upward the way an editor code-generation command would.
The signature comes back on a single line with the access modifier
stripped, even when the declaration wraps across several source lines.

Examples:
  csmap decl --file Person.cs --line 42
  csmap decl --file Person.cs --line 42 --kind method`,
	RunE: runDecl,
}

func init() {
	rootCmd.AddCommand(declCmd)
	declCmd.Flags().StringVarP(&declFile, "file", "f", "", "source file (required)")
	declCmd.Flags().IntVarP(&declLine, "line", "l", 0, "1-based cursor line (required)")
	declCmd.Flags().StringVarP(&declKind, "kind", "k", "", "restrict to method or property")
	declCmd.MarkFlagRequired("file")
	declCmd.MarkFlagRequired("line")
}

func runDecl(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(declFile)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	content, err := fs.Reader{}.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	doc := document.NewSnapshot(content)
	loc := usecase.NewLocator(cfg.Scan.Modifier)
	pos := domain.Position{Line: declLine - 1}

	sig, ok := loc.DeclarationAt(doc, pos)
	switch declKind {
	case "":
	case "method":
		ok = ok && sig.Type == domain.SignatureMethod
	case "property":
		ok = ok && sig.Type.IsProperty()
	default:
		return fmt.Errorf("unknown kind %q (want method or property)", declKind)
	}

	if !ok {
		stderrReporter{}.ShowErrorMessage(fmt.Sprintf("no enclosing declaration at %s:%d", declFile, declLine))
		return nil
	}

	fmt.Printf("%s\t%s\n", sig.Type, sig.Text)
	return nil
}
