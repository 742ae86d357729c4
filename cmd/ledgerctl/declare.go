package main

import (
	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
	"github.com/djoufack/cashpilot/internal/platform/config"
	"github.com/spf13/cobra"
)

func newDeclareCmd(opts *rootOptions) *cobra.Command {
	var (
		pf      periodFlags
		country string
	)
	cmd := &cobra.Command{
		Use:   "declare",
		Short: "Print the VAT declaration of a country for a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := pf.period()
			if err != nil {
				return err
			}
			return withServices(cmd.Context(), opts, func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				decl, err := svc.Declarations.GenerateVATDeclaration(cmd.Context(), opts.userID, period, country)
				if err != nil {
					return err
				}
				return printJSON(cmd, decl)
			})
		},
	}
	pf.register(cmd)
	cmd.Flags().StringVar(&country, "country", "FR", "Declaration country (FR or BE)")
	return cmd
}
