package cmd

import (
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "initialize the lending ledger, exactly once",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		engine := provideLendingService(database)

		owner, _ := cmd.Flags().GetString("owner")
		loanAsset, _ := cmd.Flags().GetString("loan-asset")
		collateralAsset, _ := cmd.Flags().GetString("collateral-asset")
		oracleAsset, _ := cmd.Flags().GetString("oracle-asset")
		interest, _ := cmd.Flags().GetInt64("interest")

		if err := engine.Initialize(ctx, owner, loanAsset, collateralAsset, oracleAsset, interest); err != nil {
			cmd.PrintErrln("initialize error:", err)
			return
		}

		cmd.Println("initialized, owner:", owner)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("owner", "", "owner identity")
	initCmd.Flags().String("loan-asset", "", "loan token asset id")
	initCmd.Flags().String("collateral-asset", "", "collateral token asset id")
	initCmd.Flags().String("oracle-asset", "", "asset id queried on the price oracle")
	initCmd.Flags().Int64("interest", 0, "loan interest, integer percent")
}
