package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	pberrors "github.com/plugbench/plugbench/internal/errors"

	"github.com/plugbench/plugbench/internal/config"
	"github.com/plugbench/plugbench/pkg/secrets"
)

func NewInitCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a secrets file skeleton for the installed plugins",
		Long: `Generate a secrets file with an empty entry for every secret the installed
plugins declare, with the instructions for obtaining each value as a comment.
Existing files are never overwritten.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(cfg.Path); err == nil {
				return pberrors.UserError{
					Message:    fmt.Sprintf("%s already exists", cfg.Path),
					Suggestion: "Move it aside or pass --secrets with a new path",
				}
			}

			skeleton := renderSkeleton(secrets.Descriptions())
			if err := os.WriteFile(cfg.Path, []byte(skeleton), 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", cfg.Path, err)
			}

			cfg.Logger.Info("wrote %s", cfg.Path)
			cfg.Logger.Info("fill in the values, then run 'plugbench secrets check'")
			return nil
		},
	}
}

// renderSkeleton produces a secrets file with one empty entry per descriptor,
// grouped by scope. The descriptors arrive sorted by scope then key, so a
// scope header is emitted whenever the scope changes.
func renderSkeleton(descs []secrets.Description) string {
	var b strings.Builder
	b.WriteString("# Secrets used by the installed plugbench plugins.\n")
	b.WriteString("# Fill in each value, then verify with 'plugbench secrets check'.\n")
	b.WriteString("secrets:\n")

	if len(descs) == 0 {
		b.WriteString("  {}\n")
		return b.String()
	}

	scope := ""
	for _, d := range descs {
		if d.Scope != scope {
			scope = d.Scope
			fmt.Fprintf(&b, "  %s:\n", scope)
		}
		if d.Instructions != "" {
			fmt.Fprintf(&b, "    # %s\n", d.Instructions)
		}
		fmt.Fprintf(&b, "    %s: \"\"\n", d.Key)
	}
	return b.String()
}
