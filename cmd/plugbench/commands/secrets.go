package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plugbench/plugbench/internal/config"
	"github.com/plugbench/plugbench/internal/metrics"
	"github.com/plugbench/plugbench/pkg/secrets"
)

func NewSecretsCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secrets",
		Short: "Inspect and audit the secrets declared by installed plugins",
	}

	cmd.AddCommand(
		newSecretsListCommand(cfg),
		newSecretsCheckCommand(cfg),
	)

	return cmd
}

func newSecretsListCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every secret the installed plugins can use",
		Long: `Display the descriptor of every registered secret kind: its scope, key,
and the instructions for obtaining the value. Secret values are never shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descs := secrets.Descriptions()
			if len(descs) == 0 {
				fmt.Println("No secret kinds registered")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintf(w, "SCOPE\tKEY\tINSTRUCTIONS\n")
			_, _ = fmt.Fprintf(w, "-----\t---\t------------\n")
			for _, d := range descs {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", d.Scope, d.Key, d.Instructions)
			}
			return w.Flush()
		},
	}
}

func newSecretsCheckCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Audit the secrets file against every declared secret",
		Long: `Load the secrets file (and optionally the OS keyring) and resolve every
registered secret kind against it. All missing required secrets are reported
together in a single pass, so one run shows the complete list to fix.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}

			descs := secrets.Descriptions()
			if cfg.UseKeyring {
				if err := cfg.FillFromKeyring(descs); err != nil {
					return err
				}
			}

			metrics.Init()
			recordOutcomes(cfg.Secrets)

			if err := secrets.Missing(cfg.Secrets); err != nil {
				cfg.Logger.Error("secret audit failed")
				return err
			}

			cfg.Logger.Info("all %d declared secret(s) accounted for", len(descs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&cfg.UseKeyring, "use-keyring", false, "Fill secrets absent from the file from the OS keyring")

	return cmd
}

// recordOutcomes records one resolution metric per registered kind.
func recordOutcomes(raw secrets.RawSecrets) {
	defer metrics.RecordAudit()
	for _, k := range secrets.Kinds() {
		d := k.Description()
		if k.Validate(raw) != nil {
			metrics.RecordResolution(d.Scope, metrics.OutcomeMissing)
			continue
		}
		if _, present := raw.Lookup(d.Scope, d.Key); !present {
			// Only optional kinds validate while absent.
			metrics.RecordResolution(d.Scope, metrics.OutcomeAbsent)
			continue
		}
		metrics.RecordResolution(d.Scope, metrics.OutcomeResolved)
	}
}
