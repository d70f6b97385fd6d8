package cmd

import (
	"github.com/spf13/cobra"
)

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show the server's Naver API daily quota",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().GetQuota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), q)
			}
			tw := newTabWriter(cmd.OutOrStdout())
			tw.writef("Daily limit:\t%d\n", q.DailyLimit)
			tw.writef("Used:\t%d\n", q.DailyUsed)
			tw.writef("Remaining:\t%d\n", q.Remaining)
			tw.writef("Resets at:\t%s\n", q.ResetAt.Local().Format("2006-01-02 15:04:05"))
			return tw.finish()
		},
	}
}
