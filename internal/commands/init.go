package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/moneyreport/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a data directory, an empty category lookup and a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir)
		},
	}

	return cmd
}

func runInit(out io.Writer, dir string) error {
	cfg := config.Default()

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	// Create the statement directory.
	dataDir := filepath.Join(dir, cfg.Input.Dir)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", cfg.Input.Dir, err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	// Write moneyreport.yaml.
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create an empty lookup, keeping any existing one.
	lookupPath := filepath.Join(dir, cfg.Lookup.Path)
	f, err := os.OpenFile(lookupPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	switch {
	case err == nil:
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing lookup: %w", err)
		}
	case !errors.Is(err, fs.ErrExist):
		return fmt.Errorf("creating lookup: %w", err)
	}

	if err := ensureIgnored(filepath.Join(dir, ".gitignore"), cfg.Output.Path); err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}

	_, err = fmt.Fprintf(out, "Initialized money report at %s\nPut statement exports in %s and categories in %s\n", dir, dataDir, lookupPath)
	return err
}

// ensureIgnored adds pattern to the .gitignore at path, creating the file if
// needed. Existing lines are left untouched.
func ensureIgnored(path, pattern string) error {
	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == pattern {
			return nil
		}
	}

	var add string
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		add = "\n"
	}
	add += pattern + "\n"

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(add); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
