package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/linealabs/code39/pkg/pipeline"
	"github.com/linealabs/code39/pkg/render"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output      string // output file path; empty writes to stdout
	format      string // output format: "text" or "svg"
	moduleWidth int    // narrow element width (svg only)
	barHeight   int    // bar height (svg only)
	quietZone   int    // blank margin on each side
}

// generateCommand creates the generate command for rendering barcodes.
//
// Flag defaults come from the optional config file layered over the
// built-in render defaults; explicit flags always win.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate TEXT",
		Short: "Render TEXT as a Code 39 barcode",
		Long: `Generate encodes TEXT as a Code 39 barcode and renders it either as a
single line of block-character art (text) or as an SVG document (svg).

The Code 39 repertoire covers digits, uppercase letters, and the seven
specials - . <space> $ / + %. Lowercase letters are rejected rather than
uppercased; quote the argument if it contains spaces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := render.ValidateFormat(opts.format); err != nil {
				return err
			}
			return c.runGenerate(cmd, args[0], &opts)
		},
	}

	defaults, err := loadRenderDefaults()
	if err != nil {
		// Surface the broken config file once the command actually runs.
		defaults = render.DefaultConfig()
		loadErr := err
		prev := cmd.RunE
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			c.Logger.Warnf("Ignoring config file: %v", loadErr)
			return prev(cmd, args)
		}
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", defaults.Format, "output format: text or svg")
	cmd.Flags().IntVar(&opts.moduleWidth, "module-width", defaults.ModuleWidth, "narrow element width in SVG units")
	cmd.Flags().IntVar(&opts.barHeight, "bar-height", defaults.BarHeight, "bar height in SVG units")
	cmd.Flags().IntVar(&opts.quietZone, "quiet-zone", defaults.QuietZone, "blank margin on each side")

	return cmd
}

// renderConfig converts the parsed flags into a render configuration.
func (o *generateOpts) renderConfig() render.Config {
	cfg := render.Config{
		Format:      o.format,
		ModuleWidth: o.moduleWidth,
		BarHeight:   o.barHeight,
		QuietZone:   o.quietZone,
	}
	cfg.ApplyDefaults()
	return cfg
}

// runGenerate renders text with the flag-derived configuration and
// writes the result to the output file or stdout.
func (c *CLI) runGenerate(cmd *cobra.Command, text string, opts *generateOpts) error {
	prog := newProgress(c.Logger)
	cfg := opts.renderConfig()
	c.Logger.Debugf("Rendering %d characters as %s", len(text), cfg.Format)

	out, err := pipeline.Generate(text, cfg)
	if err != nil {
		return err
	}

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	if err := os.WriteFile(opts.output, []byte(out), 0644); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %s", opts.output))
	printSuccess("Encoded %q", text)
	printFile(opts.output)
	printKeyValue("format", cfg.Format)
	return nil
}
