package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"csmap/internal/adapter/fs"
	"csmap/internal/adapter/watch"
	"csmap/internal/usecase"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Keep the outline index in step with file changes",
	Long: `Run a full scan, then watch the tree and re-outline C# files as they
change. Stop with Ctrl-C.

Example:
  csmap watch .`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	st, err := openStore(path)
	if err != nil {
		return err
	}
	defer st.Close()

	scanUC := usecase.NewScanUseCase(st, fs.NewWalker(cfg.Scan.Includes, cfg.Scan.Excludes), fs.Reader{}, cfg.Scan.Modifier)

	result, err := scanUC.Scan(path, nil)
	if err != nil {
		return fmt.Errorf("initial scan failed: %w", err)
	}
	if err := st.MarkSchema(cfg); err != nil {
		return fmt.Errorf("failed to record schema info: %w", err)
	}
	fmt.Printf("Watching %s (%d files outlined)\n", path, result.FilesScanned+result.FilesSkipped)

	debounce := time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond
	w, err := watch.NewWatcher(path, debounce)
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = w.Start(ctx, func(paths []string) {
		for _, p := range paths {
			info, statErr := os.Stat(p)
			if statErr != nil {
				if err := st.DeleteOutline(p); err == nil {
					fmt.Printf("forgot %s\n", p)
				}
				continue
			}
			outline, err := scanUC.OutlineFile(p, info.ModTime().Unix())
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to outline %s: %v\n", p, err)
				continue
			}
			if err := st.PutOutline(outline); err != nil {
				fmt.Fprintf(os.Stderr, "failed to store %s: %v\n", p, err)
				continue
			}
			fmt.Printf("outlined %s (%d members)\n", p, len(outline.Members))
		}
	})
	if err == context.Canceled {
		return nil
	}
	return err
}
