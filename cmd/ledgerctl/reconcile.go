package main

import (
	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
	"github.com/djoufack/cashpilot/internal/dto"
	"github.com/djoufack/cashpilot/internal/platform/config"
	"github.com/spf13/cobra"
)

func newReconcileCmd(opts *rootOptions) *cobra.Command {
	var threshold float64
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Match unlinked bank transactions to open invoices and mark them paid",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), opts, func(cfg *config.Config, svc *portssvc.ServiceContainer) error {
				t := cfg.ReconcileThreshold
				if cmd.Flags().Changed("threshold") {
					t = threshold
				}
				result, err := svc.Reconciliation.Reconcile(cmd.Context(), opts.userID, t)
				if err != nil {
					return err
				}
				return printJSON(cmd, dto.ToReconcileResponse(result))
			})
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "Minimum match confidence, 0..1 (defaults to RECONCILE_THRESHOLD)")
	return cmd
}
