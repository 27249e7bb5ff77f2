package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/san-kum/gpuhint/internal/config"
	"github.com/san-kum/gpuhint/internal/gpupref"
	"github.com/san-kum/gpuhint/internal/gui"
	"github.com/san-kum/gpuhint/internal/startup"
	"github.com/san-kum/gpuhint/internal/viz"
	"github.com/spf13/cobra"
)

// Version information (set at build time)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	preset     string
	noGPUHint  bool
	theme      string
)

// main registers commands and flags and executes the root command.
// With no subcommand it applies the GPU hint and opens the viewer.
func main() {
	rootCmd := &cobra.Command{
		Use:          "gpuhint",
		Short:        "start the viewer on the high-performance GPU",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         launch,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "window preset ("+fmt.Sprint(config.ListPresets())+")")
	rootCmd.Flags().BoolVar(&noGPUHint, "no-gpu-hint", false, "skip the GPU preference hint")

	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "show whether the GPU preference entry point resolves (does not call it)",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			c := gpupref.Platform().Resolve()
			fmt.Fprint(cmd.OutOrStdout(), viz.RenderCapability(c, viz.GetTheme(theme)))
		},
	}
	probeCmd.Flags().StringVar(&theme, "theme", "minimal", fmt.Sprintf("report theme %v", viz.ThemeNames()))

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().StringVar(&preset, "preset", "", "window preset to write")
	configCmd.AddCommand(configInitCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gpuhint %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		},
	}

	rootCmd.AddCommand(probeCmd, configCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func launch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var hint func()
	if cfg.GPU.Hint && !noGPUHint {
		hint = func() { gpupref.ApplyPlatform(os.Stderr) }
	}

	return startup.Launch(hint, func() error {
		return gui.Run(cfg.Window)
	})
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		if cfg = config.GetPreset(preset); cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	return cfg, nil
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "gpuhint.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
