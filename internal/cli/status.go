package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Sixteen1-6/ParkingLot/internal/infra/detectapi"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <endpoint-url>",
		Short: "Probe the detection service health endpoint",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := detectapi.NewClient(args[0])
			if err != nil {
				return err
			}

			st, err := client.Status(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Status: %s\n", st.Status)
			fmt.Fprintf(out, "Model:  %s\n", st.Model)
			if len(st.Classes) > 0 {
				keys := make([]string, 0, len(st.Classes))
				for k := range st.Classes {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				fmt.Fprintln(out, "Classes:")
				for _, k := range keys {
					fmt.Fprintf(out, "  %s: %s\n", k, st.Classes[k])
				}
			}
			return nil
		},
	}
}
