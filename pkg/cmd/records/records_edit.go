package records

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpapenbr/paceviz/log"
	"github.com/mpapenbr/paceviz/pkg/cmd/util"
	"github.com/mpapenbr/paceviz/pkg/config"
	"github.com/mpapenbr/paceviz/pkg/model"
	"github.com/mpapenbr/paceviz/pkg/racetime"
	"github.com/mpapenbr/paceviz/pkg/repository/records"
)

func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "lists the stored records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRecords(cmd.OutOrStdout())
		},
	}
	return cmd
}

func NewSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set distance time",
		Short: "stores a time (h:mm:ss.ff, m:ss.ff or ss.ff) for a distance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setRecord(cmd.Context(), args[0], args[1])
		},
	}
	util.AddRoleFlag(cmd, &roleArg)
	return cmd
}

func NewClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear [distance]",
		Short: "removes a record or, with --all, the whole record set",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return clearRecords(cmd.Context(), args)
		},
	}
	util.AddRoleFlag(cmd, &roleArg)
	cmd.Flags().BoolVar(&clearAll, "all", false, "remove all records of the role")
	return cmd
}

func NewNameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name displayName",
		Short: "sets the name shown for a record set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateStore(func(s *records.Store, role model.Category) error {
				return s.SetName(role, args[0])
			})
		},
	}
	util.AddRoleFlag(cmd, &roleArg)
	return cmd
}

func NewImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import file.json",
		Short: "imports records from a json document",
		Long: `Imports a distance->time object from a json document.
Use --path to select the object, e.g. $.myAthletics for a browser storage export.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return importRecords(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
	util.AddRoleFlag(cmd, &roleArg)
	cmd.Flags().StringVar(&jsonPath, "path", "$", "JSONPath of the records object")
	return cmd
}

func updateStore(fn func(s *records.Store, role model.Category) error) error {
	role, err := util.ParseRole(roleArg)
	if err != nil {
		return err
	}
	store, err := records.Load(config.RecordsFile)
	if err != nil {
		return err
	}
	if err := fn(store, role); err != nil {
		return err
	}
	return store.Save()
}

func setRecord(ctx context.Context, distanceArg, timeArg string) error {
	logger := log.GetFromContext(ctx).Named("records")
	distance, err := model.ParseDistance(distanceArg)
	if err != nil {
		return err
	}
	return updateStore(func(s *records.Store, role model.Category) error {
		if err := s.Set(role, distance, timeArg); err != nil {
			return err
		}
		logger.Info("record stored",
			log.String("role", string(role)),
			log.Float64("distance", distance),
			log.String("time", timeArg))
		return nil
	})
}

func clearRecords(ctx context.Context, args []string) error {
	logger := log.GetFromContext(ctx).Named("records")
	if clearAll {
		return updateStore(func(s *records.Store, role model.Category) error {
			return s.ClearAll(role)
		})
	}
	if len(args) == 0 {
		return errors.New("either a distance or --all is required")
	}
	distance, err := model.ParseDistance(args[0])
	if err != nil {
		return err
	}
	return updateStore(func(s *records.Store, role model.Category) error {
		found, err := s.Clear(role, distance)
		if err != nil {
			return err
		}
		if !found {
			logger.Warn("no record stored for distance", log.Float64("distance", distance))
		}
		return nil
	})
}

func importRecords(ctx context.Context, out io.Writer, file string) error {
	logger := log.GetFromContext(ctx).Named("records")
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	set, err := records.ImportJSON(string(data), jsonPath)
	if err != nil {
		return err
	}
	return updateStore(func(s *records.Store, role model.Category) error {
		stored, skipped, err := s.Merge(role, set)
		if err != nil {
			return err
		}
		logger.Debug("import done", log.Int("stored", stored), log.Strings("skipped", skipped))
		fmt.Fprintf(out, "imported %d records into %s", stored, role)
		if len(skipped) > 0 {
			fmt.Fprintf(out, ", skipped %v", skipped)
		}
		fmt.Fprintln(out)
		return nil
	})
}

func listRecords(out io.Writer) error {
	store, err := records.Load(config.RecordsFile)
	if err != nil {
		return err
	}
	for _, role := range []model.Category{model.CategoryMine, model.CategoryRival} {
		entries, err := store.Entries(role)
		if err != nil {
			return err
		}
		header := string(role)
		if name := store.Name(role); name != "" {
			header = fmt.Sprintf("%s (%s)", role, name)
		}
		fmt.Fprintln(out, util.CategoryStyle(role).Bold(true).Render(header))
		if len(entries) == 0 {
			fmt.Fprintln(out, util.MutedStyle().Render("  no records"))
			continue
		}
		for _, e := range entries {
			fmt.Fprintf(out, "  %-8s %-12s %s\n",
				e.Label, e.Time, racetime.FormatTime(racetime.ParseTime(e.Time)))
		}
	}
	return nil
}
