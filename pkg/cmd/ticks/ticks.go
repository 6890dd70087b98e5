package ticks

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/paceviz/pkg/cmd/util"
	"github.com/mpapenbr/paceviz/pkg/service"
)

func NewTicksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "prints the axis ticks of the chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTicks(cmd.Context(), cmd.OutOrStdout())
		},
	}
	util.AddVisibilityFlags(cmd)
	return cmd
}

func printTicks(ctx context.Context, out io.Writer) error {
	req, err := util.NewChartRequest()
	if err != nil {
		return err
	}
	data, err := service.NewChartService().Build(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, util.HeaderStyle().Render("Pace (reversed, fastest on top)"))
	for _, t := range data.YTicks {
		fmt.Fprintf(out, "%6.0f  %s\n", t.Value, t.Label)
	}
	fmt.Fprintln(out, util.HeaderStyle().Render("Distance (log10)"))
	for _, t := range data.XTicks {
		fmt.Fprintf(out, "%6.3f  %s\n", t.Value, t.Label)
	}
	if len(data.XTicks) == 0 {
		fmt.Fprintln(out, util.MutedStyle().Render("no data to display"))
	}
	return nil
}
