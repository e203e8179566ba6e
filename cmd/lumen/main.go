package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lumen/pkg/browser"
	"lumen/pkg/render"
	"lumen/pkg/text"
)

var (
	flagWidth   float64
	flagHeight  float64
	flagScroll  float64
	flagOutput  string
	flagDump    bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lumen <url|file>",
	Short: "lumen renders a web page to an image",
	Long: `lumen fetches (or reads) an HTML page, resolves its styles,
lays it out and renders the result to a PNG. With --dump the flat
display list is printed instead of rasterized.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().Float64Var(&flagWidth, "width", 800, "viewport width in pixels")
	rootCmd.Flags().Float64Var(&flagHeight, "height", 600, "viewport height in pixels")
	rootCmd.Flags().Float64Var(&flagScroll, "scroll", 0, "vertical scroll offset in pixels")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "page.png", "output PNG path")
	rootCmd.Flags().BoolVar(&flagDump, "dump", false, "print the display list instead of rendering")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")
}

func run(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	fonts, err := text.NewGoFontMeasurer()
	if err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}

	page := browser.NewPage(fonts)
	page.SetLogger(log)
	page.SetViewport(flagWidth, flagHeight)

	target := args[0]
	if isNetworkURL(target) {
		err = page.Load(target)
	} else {
		var body []byte
		body, err = os.ReadFile(target)
		if err == nil {
			err = page.LoadHTML(string(body))
		}
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", target, err)
	}
	if err := page.Scroll(flagScroll); err != nil {
		return err
	}

	list, err := page.DisplayList()
	if err != nil {
		return err
	}

	if flagDump {
		for _, c := range list {
			fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", c)
		}
		return nil
	}

	renderer := render.NewRenderer(int(flagWidth), int(flagHeight), fonts)
	renderer.Paint(list, page.ScrollY())
	if err := renderer.SavePNG(flagOutput); err != nil {
		return fmt.Errorf("writing %s: %w", flagOutput, err)
	}
	log.Info("rendered page",
		zap.String("target", target),
		zap.String("output", flagOutput),
		zap.Int("commands", len(list)))
	return nil
}

func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func isNetworkURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
