package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"devmux/internal/browse"
	"devmux/internal/config"
	"devmux/internal/deps"
	"devmux/internal/session"
	"devmux/internal/shell"
	"devmux/internal/tmux"
	"devmux/internal/tui"
	"devmux/pkg/version"
)

var flatFlag bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "devmux",
	Short:        "Browse ~/Developer projects and jump into split tmux sessions",
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.Flags().BoolVarP(&flatFlag, "flat", "f", false, "Single-level picklist instead of the tree browser")

	rootCmd.AddCommand(listCmd)
}

func ensureDeps() error {
	missing := deps.Check()
	if len(missing) == 0 {
		return nil
	}
	for _, dep := range missing {
		fmt.Fprintf(os.Stderr, "Missing dependency: %s (%s)\n", dep.Name, deps.InstallHint(dep))
	}
	return fmt.Errorf("missing required dependencies")
}

func loadServices() (*config.Config, *tmux.Tmux, *session.Launcher, error) {
	if err := ensureDeps(); err != nil {
		return nil, nil, nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	if info, err := os.Stat(cfg.Root); err != nil || !info.IsDir() {
		return nil, nil, nil, fmt.Errorf("project root %s does not exist", cfg.Root)
	}
	t := &tmux.Tmux{Cmd: &shell.ExecCommander{}}
	return cfg, t, &session.Launcher{Tmux: t}, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, _, launcher, err := loadServices()
	if err != nil {
		return err
	}

	if flatFlag && len(browse.Subdirs(cfg.Root)) == 0 {
		return fmt.Errorf("no projects found in %s", browse.ShortenPath(cfg.Root))
	}

	app := tui.New(cfg.Root, flatFlag)
	target, err := app.Run()
	if err != nil {
		return err
	}
	if target == nil {
		fmt.Println("Cancelled.")
		return nil
	}

	// The TUI has exited and restored the terminal; tmux owns it from here.
	name := session.Name(target.Path, cfg.SessionPrefix)
	fmt.Printf("Selected %s, starting tmux...\n", browse.ShortenPath(target.Path))
	return launcher.Launch(name, target.Path)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects and whether they have a tmux session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, t, _, err := loadServices()
		if err != nil {
			return err
		}

		running := map[string]struct{}{}
		for _, name := range t.ListSessions() {
			running[name] = struct{}{}
		}

		fmt.Println()
		fmt.Printf("Projects in %s\n", browse.ShortenPath(cfg.Root))
		for _, dir := range browse.Subdirs(cfg.Root) {
			mark := " "
			name := session.Name(filepath.Join(cfg.Root, dir), cfg.SessionPrefix)
			if _, ok := running[name]; ok {
				mark = "●"
			}
			fmt.Printf(" %s %s\n", mark, dir)
		}
		fmt.Println()
		return nil
	},
}
