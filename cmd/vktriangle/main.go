// Command vktriangle opens a window, creates a Vulkan instance and waits for
// the window to be closed.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/andewx/vktriangle"
	"github.com/andewx/vktriangle/glfwwindow"
	"github.com/andewx/vktriangle/vkdriver"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func init() {
	// GLFW calls must come from the main thread.
	runtime.LockOSThread()
}

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	headerColor = color.New(color.FgBlue, color.Bold)
)

// runBootstrap is swapped out in tests that must not open a window.
var runBootstrap = run

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code. Any error
// is written to stderr.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		errorColor.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	root := &cobra.Command{
		Use:           "vktriangle",
		Short:         "Open a window and bootstrap a Vulkan instance",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(v, configFile)
			if err != nil {
				return err
			}
			defer log.Sync()
			return runBootstrap(cfg, log)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file (yaml, toml or json)")
	flags.Int("width", 800, "window width in pixels")
	flags.Int("height", 600, "window height in pixels")
	flags.String("title", "Vulcan Test", "window title")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	_ = v.BindPFlag("window.width", flags.Lookup("width"))
	_ = v.BindPFlag("window.height", flags.Lookup("height"))
	_ = v.BindPFlag("window.title", flags.Lookup("title"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(newLayersCmd(v, &configFile))
	return root
}

func setup(v *viper.Viper, configFile string) (*vktriangle.Config, *zap.Logger, error) {
	cfg, err := vktriangle.LoadConfig(v, configFile)
	if err != nil {
		return nil, nil, err
	}
	log, err := vktriangle.NewLogger(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// run drives one bootstrap. The Vulkan loader is only reachable after GLFW
// is initialized, so the driver is created lazily behind the window system.
func run(cfg *vktriangle.Config, log *zap.Logger) error {
	log.Info("starting",
		zap.Bool("diagnostics", cfg.Diagnostics),
		zap.Strings("layers", cfg.ValidationLayers))

	system := &lazySystem{System: glfwwindow.NewSystem(), log: log}
	b := vktriangle.New(cfg, &system.driver, system, vktriangle.WithLogger(log))
	return b.Run()
}

func newLayersCmd(v *viper.Viper, configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "layers",
		Short: "List the instance layers and extensions the Vulkan loader advertises",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := setup(v, *configFile)
			if err != nil {
				return err
			}
			defer log.Sync()

			system := glfwwindow.NewSystem()
			if err := system.Init(); err != nil {
				return err
			}
			defer system.Terminate()

			driver, err := vkdriver.New(system.GetInstanceProcAddr(), log)
			if err != nil {
				return err
			}
			layers, err := driver.InstanceLayers()
			if err != nil {
				return err
			}
			extensions, err := driver.InstanceExtensions()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			headerColor.Fprintln(out, "available layers")
			for _, name := range layers {
				fmt.Fprintf(out, "\t%s\n", name)
			}
			headerColor.Fprintln(out, "available extensions")
			for _, name := range extensions {
				fmt.Fprintf(out, "\t%s\n", name)
			}
			return nil
		},
	}
}
