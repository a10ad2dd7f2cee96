package cmd

import (
	"lending/pkg/number"

	"github.com/spf13/cobra"
)

// ops and test tooling: mint tokens on the external ledger, e.g. to
// seed the custody account with loan-token liquidity.
var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "mint tokens on the external ledger",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		ledger := provideLedgerService()

		recipient, _ := cmd.Flags().GetString("recipient")
		asset, _ := cmd.Flags().GetString("asset")
		amount, _ := cmd.Flags().GetString("amount")

		if recipient == "" {
			recipient = cfg.Ledger.AccountID
		}

		if err := ledger.Mint(ctx, recipient, asset, number.Decimal(amount)); err != nil {
			cmd.PrintErrln("mint error:", err)
			return
		}

		cmd.Println("minted", amount, asset, "to", recipient)
	},
}

func init() {
	rootCmd.AddCommand(mintCmd)

	mintCmd.Flags().String("recipient", "", "recipient account, default is the custody account")
	mintCmd.Flags().String("asset", "", "asset id")
	mintCmd.Flags().String("amount", "0", "amount to mint")
}
