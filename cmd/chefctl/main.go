package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chefctl/internal/bootstrap"
	orderingdto "chefctl/internal/modules/ordering/dto"
	"chefctl/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "chefctl",
		Short:         "Order meals from the chef-gourmet service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOrderFlow(cmd, configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ~/.config/chefctl/config.yaml)")

	root.AddCommand(newOrderCmd(&configPath))
	root.AddCommand(newLoginCmd(&configPath))
	root.AddCommand(newLogoutCmd(&configPath))
	root.AddCommand(newWhoAmICmd(&configPath))
	root.AddCommand(newHistoryCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.New(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func runOrderFlow(cmd *cobra.Command, configPath string) error {
	app, err := loadApp(configPath)
	if err != nil {
		return err
	}
	out, err := app.OrderCLI.Run(context.Background())
	if err != nil {
		return err
	}
	printRunOutput(cmd, out)
	return nil
}

func printRunOutput(cmd *cobra.Command, out orderingdto.RunOutput) {
	w := cmd.OutOrStdout()
	switch {
	case out.NoOrders:
		_, _ = fmt.Fprintln(w, "no orders available in the next 30 days")
	case out.Declined:
		_, _ = fmt.Fprintf(w, "existing order for %s left unchanged\n", out.Date)
	default:
		verb := "placed"
		if out.Resubmitted {
			verb = "rewrote"
		}
		_, _ = fmt.Fprintf(w, "%s order for %s\n", verb, out.Date)
		for _, f := range out.Foods {
			_, _ = fmt.Fprintf(w, "  %s: %s\n", f.Category, f.Food)
		}
	}
}

func newOrderCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Pick a day and foods, then submit the order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOrderFlow(cmd, *configPath)
		},
	}
}

func newLoginCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and store fresh credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			profile, err := app.AuthCLI.Login(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", profile.Username)
			return nil
		},
	}
}

func newLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.AuthCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "stored credentials removed")
			return nil
		},
	}
}

func newWhoAmICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			profile, err := app.AuthCLI.WhoAmI(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (id %s)\n", profile.Username, profile.ID)
			return nil
		},
	}
}

func newHistoryCmd(configPath *string) *cobra.Command {
	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "List locally journaled submissions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			submissions, err := app.HistoryCLI.List(context.Background(), limit)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(submissions) == 0 {
				_, _ = fmt.Fprintln(w, "no submissions journaled yet")
				return nil
			}
			for _, s := range submissions {
				kind := "new"
				if s.Rewrite {
					kind = "rewrite"
				}
				_, _ = fmt.Fprintf(w, "%s (%s, submitted %s)\n", s.Date, kind, s.SubmittedAt.Local().Format("2006-01-02 15:04"))
				for _, f := range s.Foods {
					_, _ = fmt.Fprintf(w, "  %s: %s\n", f.Category, f.Food)
				}
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 30, "maximum submissions to show")
	return history
}
