package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"csmap/config"
	"csmap/internal/adapter/fs"
	"csmap/internal/adapter/store"
	"csmap/internal/usecase"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Outline C# files into the index",
	Long: `Scan the directory tree for C# sources and store each file's outline
(namespace, type, base list, using-block, member signatures) in
.csmap/outline.db. Unchanged files are skipped by mod-time.

Examples:
  csmap scan .                 # Scan current directory
  csmap scan /path/to/project  # Scan specific directory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	st, err := openStore(path)
	if err != nil {
		return err
	}
	defer st.Close()

	scanUC := usecase.NewScanUseCase(st, fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes), fs.Reader{}, cfg.Scan.Modifier)

	fmt.Printf("Scanning %s...\n", path)

	var bar *progressbar.ProgressBar
	var barMu sync.Mutex

	progress := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Outlining"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	result, err := scanUC.Scan(path, progress)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if err := st.MarkSchema(cfg); err != nil {
		return fmt.Errorf("failed to record schema info: %w", err)
	}

	fmt.Printf("\nScan complete:\n")
	fmt.Printf("  Files outlined: %d\n", result.FilesScanned)
	fmt.Printf("  Files skipped:  %d (unchanged)\n", result.FilesSkipped)
	fmt.Printf("  Files deleted:  %d (removed)\n", result.FilesDeleted)
	fmt.Printf("  Members found:  %d\n", result.Members)

	if len(result.Errors) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, e := range result.Errors {
			fmt.Printf("  %s\n", e)
		}
	}

	return nil
}

// openStore opens the outline database under dir, clearing it first
// when the schema or scan configuration no longer matches.
func openStore(dir string) (*store.BoltStore, error) {
	if err := config.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create .csmap directory: %w", err)
	}

	st, err := store.NewBoltStore(config.OutlineDBPath(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to open outline store: %w", err)
	}

	check, err := st.CheckSchema(cfg)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to check schema: %w", err)
	}
	if check.NeedsRebuild {
		fmt.Printf("Index rebuild required: %s\n", check.Reason)
		if err := st.Clear(); err != nil {
			st.Close()
			return nil, fmt.Errorf("failed to clear index: %w", err)
		}
	}

	return st, nil
}
