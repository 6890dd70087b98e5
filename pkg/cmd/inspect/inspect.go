package inspect

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/paceviz/pkg/cmd/util"
	"github.com/mpapenbr/paceviz/pkg/compare"
	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/service"
)

var category string

func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect distance",
		Short: "shows the details of a single point",
		Long: `Shows time, pace and, for your and your rival's records, the
percentage of the men's and women's world record pace.
The distance may be given in meters or as label (e.g. Half, 5000m).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspectPoint(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
	util.AddVisibilityFlags(cmd)
	cmd.Flags().StringVarP(&category,
		"category",
		"c",
		string(model.CategoryMine),
		"category of the point (male, female, mine, rival)")
	return cmd
}

func inspectPoint(ctx context.Context, out io.Writer, distanceArg string) error {
	distance, err := model.ParseDistance(distanceArg)
	if err != nil {
		return err
	}
	cat, err := model.ParseCategory(category)
	if err != nil {
		return err
	}
	req, err := util.NewChartRequest()
	if err != nil {
		return err
	}
	svc := service.NewChartService()
	data, err := svc.Build(ctx, req)
	if err != nil {
		return err
	}
	insp, err := svc.Inspect(ctx, data, distance, cat)
	if err != nil {
		return err
	}
	printInspection(out, insp)
	return nil
}

func printInspection(out io.Writer, insp *compare.Inspection) {
	cat := insp.Point.Category
	fmt.Fprintln(out, util.CategoryStyle(cat).Bold(true).Render(insp.Title))
	if cat.IsReference() {
		fmt.Fprintf(out, "Athlete: %s\n", insp.Point.Name)
		fmt.Fprintf(out, "Year: %d\n", insp.Point.Year)
	}
	fmt.Fprintf(out, "Time: %s\n", insp.Time)
	if insp.RecordTime != "" {
		fmt.Fprintf(out, "Record time: %s\n", insp.RecordTime)
	}
	fmt.Fprintln(out, util.HeaderStyle().Render("Pace: "+insp.Pace))
	for _, c := range insp.Comparisons {
		label := "vs Men WR"
		if c.Against == model.CategoryFemale {
			label = "vs Women WR"
		}
		fmt.Fprintln(out, util.CategoryStyle(c.Against).Render(
			fmt.Sprintf("%s: %s%%", label, c.PercentText)))
	}
}
