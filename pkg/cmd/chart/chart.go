package chart

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/paceviz/log"
	"github.com/mpapenbr/paceviz/pkg/cmd/util"
	"github.com/mpapenbr/paceviz/pkg/config"
	"github.com/mpapenbr/paceviz/pkg/render"
	"github.com/mpapenbr/paceviz/pkg/service"
)

func NewChartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "renders the pace vs distance chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.OutputFile == "" {
				config.OutputFile = defaultOutputFile(config.OutputFormat)
			}
			return renderChart(cmd.Context(), cmd.OutOrStdout())
		},
	}
	util.AddVisibilityFlags(cmd)
	cmd.Flags().StringVarP(&config.OutputFile,
		"out",
		"o",
		"",
		"output file, - writes to stdout (default pace.<format>)")
	cmd.Flags().StringVarP(&config.OutputFormat,
		"format",
		"f",
		"png",
		"output format (png, svg, json)")
	cmd.Flags().IntVar(&config.Width,
		"width",
		1024,
		"chart width in pixels")
	cmd.Flags().IntVar(&config.Height,
		"height",
		640,
		"chart height in pixels")
	return cmd
}

func renderChart(ctx context.Context, stdout io.Writer) error {
	logger := log.GetFromContext(ctx).Named("chart")
	format, err := render.ParseFormat(config.OutputFormat)
	if err != nil {
		return err
	}
	req, err := util.NewChartRequest()
	if err != nil {
		return err
	}
	data, err := service.NewChartService().Build(ctx, req)
	if err != nil {
		return err
	}
	if data.Empty() && format != render.FormatJSON {
		logger.Warn("No data to display. Please select at least one category")
		return render.ErrNothingToRender
	}

	var w io.Writer = stdout
	if config.OutputFile != "-" {
		f, err := os.Create(config.OutputFile)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	opts := render.Options{
		Format: format,
		Width:  config.Width,
		Height: config.Height,
		Title:  "Pace vs Distance",
	}
	if err := render.Render(w, data, opts); err != nil {
		logger.Error("could not render chart", log.ErrorField(err))
		return err
	}
	logger.Info("chart written",
		log.String("file", config.OutputFile),
		log.String("format", string(format)),
		log.Int("series", len(data.Series)))
	return nil
}

func defaultOutputFile(format string) string {
	return "pace." + strings.ToLower(format)
}
