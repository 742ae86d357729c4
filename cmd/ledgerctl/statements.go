package main

import (
	"github.com/djoufack/cashpilot/internal/core/domain"
	portssvc "github.com/djoufack/cashpilot/internal/core/ports/services"
	"github.com/djoufack/cashpilot/internal/platform/config"
	"github.com/spf13/cobra"
)

type periodFlags struct {
	from string
	to   string
}

func (f *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.from, "from", "", "Period start, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&f.to, "to", "", "Period end, YYYY-MM-DD, inclusive (required)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func (f *periodFlags) period() (domain.Period, error) {
	return domain.ParsePeriod(f.from, f.to)
}

func newStatementsCmd(opts *rootOptions) *cobra.Command {
	var pf periodFlags
	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Print the balance sheet, income statement, VAT breakdown and tax estimate",
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := pf.period()
			if err != nil {
				return err
			}
			return withServices(cmd.Context(), opts, func(_ *config.Config, svc *portssvc.ServiceContainer) error {
				report, err := svc.Statements.BuildStatements(cmd.Context(), opts.userID, period)
				if err != nil {
					return err
				}
				return printJSON(cmd, report)
			})
		},
	}
	pf.register(cmd)
	return cmd
}
