package records

import (
	"github.com/spf13/cobra"
)

func NewRecordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "commands to manage your and your rival's records",
	}

	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewSetCmd())
	cmd.AddCommand(NewClearCmd())
	cmd.AddCommand(NewImportCmd())
	cmd.AddCommand(NewNameCmd())

	return cmd
}

var (
	roleArg  string
	clearAll bool
	jsonPath string
)
