package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/giglog/giglog/internal/api"
	"github.com/giglog/giglog/internal/parser"
)

var paymentCmd = &cobra.Command{
	Use:   "payment",
	Short: "Manage payments",
}

var paymentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments",
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		companyID, _ := cmd.Flags().GetString("company")
		payments, err := b.ListPayments(companyID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(payments) == 0 {
			fmt.Println("No payments yet. Record one with 'giglog payment add'.")
			return
		}
		for _, payment := range payments {
			received := "pending"
			if payment.PaymentReceived {
				received = "received"
			}
			fmt.Printf("%s  %s via %s, %s, expected %s\n",
				payment.ID, payment.Total, payment.PayoutType, received,
				parser.FormatDate(payment.ExpectedPayoutDate))
		}
	}),
}

var paymentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a payment",
	Long: `Record a payment from a company. Dates accept yyyy-mm-dd, dd/mm/yyyy,
today, yesterday, or relative forms like "3 days ago". Transfer flags and the
transfer date only apply to paypal, venmo, and zelle payments.

Example:
  giglog payment add --company 4f1c... --total 1500 --type paypal \
    --payout-date 15/08/2026 --transfer-date "2 days ago" --received`,
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		companyID, _ := cmd.Flags().GetString("company")
		payoutType, _ := cmd.Flags().GetString("type")

		totalValue, _ := cmd.Flags().GetString("total")
		total, err := decimal.NewFromString(totalValue)
		if err != nil {
			fmt.Printf("Error: invalid value for --total: %q\n", totalValue)
			return
		}

		payoutDateValue, _ := cmd.Flags().GetString("payout-date")
		payoutDate, err := parser.ParseDate(payoutDateValue)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		transferDateValue, _ := cmd.Flags().GetString("transfer-date")
		transferDate, err := parser.ParseDate(transferDateValue)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		received, _ := cmd.Flags().GetBool("received")
		transferInitiated, _ := cmd.Flags().GetBool("transfer-initiated")
		transferReceived, _ := cmd.Flags().GetBool("transfer-received")
		withholdingsCovered, _ := cmd.Flags().GetBool("withholdings-covered")

		payment, err := b.CreatePayment(api.PaymentParams{
			CompanyID:              companyID,
			Total:                  total,
			PayoutType:             payoutType,
			ExpectedPayoutDate:     parser.WireDate(payoutDate),
			ExpectedTransferDate:   parser.WireDate(transferDate),
			TransferInitiated:      transferInitiated,
			PaymentReceived:        received,
			TransferReceived:       transferReceived,
			TaxWithholdingsCovered: withholdingsCovered,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Recorded payment of %s - ID: %s\n", payment.Total, payment.ID)
	}),
}

func init() {
	paymentAddCmd.Flags().String("company", "", "Company ID the payment came from")
	paymentAddCmd.Flags().String("total", "", "Payment total")
	paymentAddCmd.Flags().String("type", "", "Payout type: paypal, cash, check, zelle, venmo, or direct_deposit")
	paymentAddCmd.Flags().String("payout-date", "", "Expected payout date")
	paymentAddCmd.Flags().String("transfer-date", "", "Expected transfer date (transfer-capable types only)")
	paymentAddCmd.Flags().Bool("received", false, "Payment has been received")
	paymentAddCmd.Flags().Bool("transfer-initiated", false, "Transfer to bank has been initiated")
	paymentAddCmd.Flags().Bool("transfer-received", false, "Transfer to bank has landed")
	paymentAddCmd.Flags().Bool("withholdings-covered", false, "Tax withholdings are covered")

	paymentListCmd.Flags().String("company", "", "Only list payments from this company ID")

	paymentCmd.AddCommand(paymentListCmd)
	paymentCmd.AddCommand(paymentAddCmd)
}
