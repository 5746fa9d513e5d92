package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plugbench/plugbench/internal/config"
	"github.com/plugbench/plugbench/pkg/benchmark"
)

func NewPluginsCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "plugins",
		Short: "List the installed benchmark plugins",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := benchmark.All()
			if len(all) == 0 {
				fmt.Println("No benchmark plugins registered")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "NAME\tDESCRIPTION\n")
			_, _ = fmt.Fprintf(w, "----\t-----------\n")
			for _, b := range all {
				meta := b.Metadata()
				_, _ = fmt.Fprintf(w, "%s\t%s\n", meta.Name, meta.Description)
			}
			return w.Flush()
		},
	}
}
