// Package cmd implements the qmandel command line.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/qmandel"
	"github.com/gogpu/qmandel/config"
	"github.com/gogpu/qmandel/exact"
)

// flags holds the raw command-line values. Only flags the user set
// override the configuration.
type flags struct {
	cfgFile    string
	width      int
	height     int
	iterations uint
	center     exact.Complex
	span       exact.Complex
	workers    int
	cache      bool
	verbose    bool
}

// Execute runs the root command with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the qmandel command tree.
func NewRootCmd() *cobra.Command {
	var f flags
	def := config.Default()
	f.center, f.span = def.Center, def.Span

	root := &cobra.Command{
		Use:   "qmandel [output]",
		Short: "Render the Mandelbrot set with exact rational arithmetic",
		Long: `qmandel samples a rectangle of the complex plane on a pixel grid,
counts escape-time iterations for every point using exact fractions of
64-bit integers, and writes the result as a grayscale 24-bit BMP.

Coordinates accept integers, fractions and decimals: -3/4, 0.125, "-1/2,1/3".

Without arguments it renders the 64x64 reference view centered on -3/4
with span 3+3i and 8 iterations to mandelbrot.bmp.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &f)
		},
	}

	fs := root.Flags()
	fs.StringVarP(&f.cfgFile, "config", "c", "", "config file (.toml, .yaml or .yml)")
	fs.IntVar(&f.width, "width", def.Width, "image width in pixels")
	fs.IntVar(&f.height, "height", def.Height, "image height in pixels")
	fs.UintVarP(&f.iterations, "iterations", "n", def.Iterations, "iteration budget per pixel")
	fs.Var(complexValue{&f.center}, "center", "center of the view as re,im")
	fs.Var(complexValue{&f.span}, "span", "width and height of the view as re,im")
	fs.IntVarP(&f.workers, "workers", "w", 0, "worker goroutines (0 = GOMAXPROCS)")
	fs.BoolVar(&f.cache, "cache", false, "memoize escape counts")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newVersionCmd())
	return root
}

func run(cmd *cobra.Command, args []string, f *flags) error {
	cfg, err := loadConfig(cmd, args, f)
	if err != nil {
		return err
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if f.verbose {
		level = slog.LevelDebug
	}
	qmandel.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	defer qmandel.SetLogger(nil)

	r := qmandel.NewRenderer(cfg.Options()...)
	defer r.Close()

	img, err := r.Render(cfg.View())
	if err != nil {
		return err
	}
	if err := img.SaveBMP(cfg.Output); err != nil {
		return fmt.Errorf("couldn't write file '%s': %w", cfg.Output, err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(cmd.OutOrStdout(), "%s: %dx%d, %d pixels, %d iterations\n",
		cfg.Output, img.Width(), img.Height(), img.Width()*img.Height(), r.Iterations())
	return nil
}

// loadConfig merges, in increasing priority: defaults, the config file,
// explicitly set flags, and the output argument.
func loadConfig(cmd *cobra.Command, args []string, f *flags) (*config.Config, error) {
	cfg := config.Default()
	if f.cfgFile != "" {
		var err error
		if cfg, err = config.Load(f.cfgFile); err != nil {
			return nil, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("iterations") {
		cfg.Iterations = f.iterations
	}
	if fs.Changed("center") {
		cfg.Center = f.center
	}
	if fs.Changed("span") {
		cfg.Span = f.span
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("cache") {
		cfg.Cache = f.cache
	}
	if len(args) == 1 {
		cfg.Output = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
