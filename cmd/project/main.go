package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanshika/finsight/backend/internal/currency"
	"github.com/vanshika/finsight/backend/internal/generator"
	"github.com/vanshika/finsight/backend/internal/projection"
	"github.com/vanshika/finsight/backend/internal/service"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		userID string
		code   string
		locale string
	)

	cmd := &cobra.Command{
		Use:   "project <profile-file>",
		Short: "Print retirement, investment and risk projections for profiles in a file",
		Args:  cobra.ExactArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := generator.ReadProfiles(args[0])
			if err != nil {
				return err
			}
			if userID != "" {
				profiles = selectUser(profiles, userID)
				if len(profiles) == 0 {
					return fmt.Errorf("no profile for user %q in %s", userID, args[0])
				}
			}

			money, err := currency.NewFormatter(code, locale)
			if err != nil {
				return err
			}
			dashboards := service.NewDashboardService(nil, projection.NewEngine(), money)

			out := cmd.OutOrStdout()
			for i, in := range profiles {
				p, err := service.BuildProfile(in.ProfileInput)
				if err != nil {
					return fmt.Errorf("profile %s: %w", in.UserID, err)
				}
				p.UserID = in.UserID

				d, err := dashboards.Assemble(cmd.Context(), p)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := writeReport(out, d); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "only report the profile with this user id")
	cmd.Flags().StringVar(&code, "currency", "INR", "ISO 4217 currency code for amounts")
	cmd.Flags().StringVar(&locale, "locale", "en", "locale used for digit grouping")

	return cmd
}

func selectUser(profiles []service.OwnedProfileInput, userID string) []service.OwnedProfileInput {
	for _, p := range profiles {
		if p.UserID == userID {
			return []service.OwnedProfileInput{p}
		}
	}
	return nil
}
