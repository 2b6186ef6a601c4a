package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csmap/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "csmap",
	Short: "csmap - structural facts from C# source without a parser",
	Long: `csmap scans C#-like source text for structural facts: namespace, type
name, inheritance list, member signatures, and the leading using-block.
It tracks delimiter balance instead of building a syntax tree, which is
enough to answer "what declaration is the cursor inside" and "what does
its full signature read as across wrapped lines" for code-generation
tooling.

Example usage:
  csmap scan .                              # Outline every .cs file
  csmap outline Models/Person.cs            # Print one file's outline
  csmap decl --file Person.cs --line 42     # Enclosing declaration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./csmap.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}

// stderrReporter surfaces structural-lookup misses without failing the
// command; a miss is "no fact here", not an error exit.
type stderrReporter struct{}

func (stderrReporter) ShowErrorMessage(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}
