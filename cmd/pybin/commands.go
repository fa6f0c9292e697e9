package pybin

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pybin/internal/version"
	"github.com/arthur-debert/pybin/pkg/commands/install"
	"github.com/arthur-debert/pybin/pkg/commands/list"
	"github.com/arthur-debert/pybin/pkg/commands/status"
	"github.com/arthur-debert/pybin/pkg/config"
	"github.com/arthur-debert/pybin/pkg/filesystem"
	"github.com/arthur-debert/pybin/pkg/paths"
	"github.com/arthur-debert/pybin/pkg/style"
	"github.com/arthur-debert/pybin/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// initPaths initializes the paths instance and shows a warning if using fallback
func initPaths(scriptsRoot string) (paths.Paths, error) {
	p, err := paths.New(scriptsRoot)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning+"\n", p.ScriptsRoot())
	} else if os.Getenv("PYBIN_DEBUG") != "" {
		fmt.Fprintf(os.Stderr, MsgDebugScriptsRoot, p.ScriptsRoot(), p.UsedFallback())
	}

	return p, nil
}

// loadConfig resolves the configuration, honoring the --config flag
func loadConfig(cmd *cobra.Command, p paths.Paths) (*config.Config, error) {
	cfgFile, _ := cmd.Root().PersistentFlags().GetString("config")

	cfg, err := config.Load(config.LoadOptions{
		Paths:      p,
		ConfigFile: cfgFile,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	return cfg, nil
}

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "install [scripts-root]",
		Short:   MsgInstallShort,
		Long:    MsgInstallLong,
		Example: MsgInstallExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			var scriptsRoot string
			if len(args) > 0 {
				scriptsRoot = args[0]
			}

			// Initialize paths (will show warning if using fallback)
			p, err := initPaths(scriptsRoot)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(cmd, p)
			if err != nil {
				return err
			}

			// Get flags (dry-run is a persistent flag)
			dryRun, _ := cmd.Root().PersistentFlags().GetBool("dry-run")
			batch, _ := cmd.Flags().GetBool("batch")

			log.Info().
				Str("scripts_root", p.ScriptsRoot()).
				Bool("dry_run", dryRun).
				Bool("batch", batch).
				Msg("Installing from scripts root")

			renderer := style.NewTerminalRenderer()

			result, err := install.InstallScripts(install.InstallScriptsOptions{
				ScriptsRoot: p.ScriptsRoot(),
				Config:      cfg,
				FileSystem:  filesystem.NewOS(),
				DryRun:      dryRun,
				Batch:       batch,
				OnInstall: func(s types.InstalledScript) {
					fmt.Println(renderer.RenderInstall(s))
				},
			})
			if err != nil {
				return fmt.Errorf(MsgErrInstallScripts, err)
			}

			if dryRun {
				fmt.Println(MsgDryRunNotice)
			}
			fmt.Println(renderer.RenderSummary(result))

			return nil
		},
	}

	cmd.Flags().Bool("batch", false, MsgFlagBatch)

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New("")
			if err != nil {
				return fmt.Errorf(MsgErrInitPaths, err)
			}

			cfg, err := loadConfig(cmd, p)
			if err != nil {
				return err
			}

			log.Info().Str("install_dir", cfg.InstallDir).Msg("Listing installed scripts")

			result, err := list.ListScripts(list.ListScriptsOptions{
				Config:     cfg,
				FileSystem: filesystem.NewOS(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrListScripts, err)
			}

			renderer := style.NewTerminalRenderer()
			fmt.Println(renderer.RenderInstalledFiles(result.Files))

			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
		Long:    MsgStatusLong,
		Example: MsgStatusExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := paths.New("")
			if err != nil {
				return fmt.Errorf(MsgErrInitPaths, err)
			}

			cfg, err := loadConfig(cmd, p)
			if err != nil {
				return err
			}

			log.Info().Str("bin_dir", cfg.BinDir).Msg("Checking alias status")

			result, err := status.Status(status.StatusOptions{
				Config:     cfg,
				FileSystem: filesystem.NewOS(),
			})
			if err != nil {
				return fmt.Errorf(MsgErrStatus, err)
			}

			renderer := style.NewTerminalRenderer()
			fmt.Println(renderer.RenderAliasStatuses(result.Aliases))

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("pybin version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man [output-dir]",
		Short:   MsgManShort,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			outDir := "."
			if len(args) > 0 {
				outDir = args[0]
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			header := &doc.GenManHeader{
				Title:   "PYBIN",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, outDir)
		},
	}
}
