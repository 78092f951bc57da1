package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/internal/scene"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information shown by --version. main calls
// it with values injected through ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the flex CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:          "flex",
		Short:        "flex lays out widget trees with a flexbox-style engine",
		Long:         `flex runs the layout engine over a scene, either built in or described in a TOML file, and shows the rectangles it computes.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("flex %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a TOML config file")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newSweepCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newTreeCmd())
	root.AddCommand(newScenesCmd())

	return root
}

// newEngine builds an engine from the configuration in ctx. Engine traces
// go to the FLEX_DEBUG file when it is set, otherwise to the CLI logger.
func newEngine(ctx context.Context, r layout.Realizer) *layout.Engine {
	logger := loggerFromContext(ctx)
	if os.Getenv(debug.EnvVar) != "" {
		if dl := debug.Logger(); debug.Enabled() {
			logger = dl
		}
	}
	opts := []layout.EngineOption{
		layout.WithMeasurer(configFromContext(ctx).Measurer()),
		layout.WithLogger(logger),
	}
	if r != nil {
		opts = append(opts, layout.WithRealizer(r))
	}
	return layout.NewEngine(opts...)
}

// sizeOpts holds the --width/--height flags shared by several commands.
type sizeOpts struct {
	width  int
	height int
}

func (o *sizeOpts) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.width, "width", "W", 0, "available width in pixels (default: scene, then config)")
	cmd.Flags().IntVarP(&o.height, "height", "H", 0, "available height in pixels (default: scene, then config)")
}

// resolve picks the flag value, then the scene's suggestion, then the
// configured default.
func (o *sizeOpts) resolve(cfg *config.Config, s *scene.Scene) (w, h int, err error) {
	if o.width < 0 || o.height < 0 {
		return 0, 0, fmt.Errorf("size must not be negative, got %dx%d", o.width, o.height)
	}
	w, h = o.width, o.height
	if w == 0 {
		w = firstPositive(s.Width, cfg.Layout.Width)
	}
	if h == 0 {
		h = firstPositive(s.Height, cfg.Layout.Height)
	}
	return w, h, nil
}

func firstPositive(vs ...int) int {
	for _, v := range vs {
		if v > 0 {
			return v
		}
	}
	return 0
}

// loadScene looks the scene up and builds a fresh tree for it.
func loadScene(ctx context.Context, name string) (*scene.Scene, layout.Node, error) {
	s, err := scene.Lookup(name)
	if err != nil {
		return nil, nil, err
	}
	root, err := s.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build scene %s: %w", s.Name, err)
	}
	loggerFromContext(ctx).Debug("loaded scene", "name", s.Name)
	return s, root, nil
}
