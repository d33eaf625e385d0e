package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/scout/internal/app"
	"go.trai.ch/scout/internal/core/domain"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [config]",
		Short: "Resolve the latest version of every configured package",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var configPath string
			if len(args) == 1 {
				configPath = args[0]
			}
			output, _ := cmd.Flags().GetString("output")

			return c.app.Resolve(cmd.Context(), app.ResolveOptions{
				ConfigPath: configPath,
				Output:     output,
				Overrides:  overridesFromFlags(cmd),
			})
		},
	}
	cmd.Flags().Bool("primary", true, "Ask each package's elected primary source first")
	cmd.Flags().Bool("secondary", true, "Cascade through the remaining sources afterwards")
	cmd.Flags().Bool("trust-primary", true, "Cascade only for packages the primary phase left unresolved")
	cmd.Flags().Bool("trust-secondary", true, "Stop cascading once every package has a version")
	cmd.Flags().Bool("print-names", false, "List package names in progress lines instead of counts")
	cmd.Flags().BoolP("quiet", "q", false, "Do not print anything to stderr")
	cmd.Flags().String("github-token", "", "Token sent with GitHub API requests")
	cmd.Flags().String("gitlab-token", "", "Token sent with gitlab.com API requests")
	cmd.Flags().IntP("parallelism", "p", domain.DefaultParallelism, "Maximum concurrent source invocations")
	cmd.Flags().StringP("output", "o", "json", "Output format: json, yaml, or table")
	return cmd
}

// overridesFromFlags collects the flags that were explicitly set.
// Untouched flags stay nil so configuration file settings shine
// through the layering.
func overridesFromFlags(cmd *cobra.Command) domain.Overrides {
	var ov domain.Overrides
	flags := cmd.Flags()

	if flags.Changed("primary") {
		v, _ := flags.GetBool("primary")
		ov.Primary = &v
	}
	if flags.Changed("secondary") {
		v, _ := flags.GetBool("secondary")
		ov.Secondary = &v
	}
	if flags.Changed("trust-primary") {
		v, _ := flags.GetBool("trust-primary")
		ov.TrustPrimary = &v
	}
	if flags.Changed("trust-secondary") {
		v, _ := flags.GetBool("trust-secondary")
		ov.TrustSecondary = &v
	}
	if flags.Changed("print-names") {
		v, _ := flags.GetBool("print-names")
		ov.PrintNames = &v
	}
	if flags.Changed("quiet") {
		v, _ := flags.GetBool("quiet")
		ov.Quiet = &v
	}
	if flags.Changed("github-token") {
		v, _ := flags.GetString("github-token")
		ov.GitHubToken = &v
	}
	if flags.Changed("gitlab-token") {
		v, _ := flags.GetString("gitlab-token")
		ov.GitLabToken = &v
	}
	if flags.Changed("parallelism") {
		v, _ := flags.GetInt("parallelism")
		ov.Parallelism = &v
	}
	return ov
}
