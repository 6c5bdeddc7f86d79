package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/giglog/giglog/internal/api"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage companies",
}

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List companies",
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		companies, err := b.ListCompanies()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(companies) == 0 {
			fmt.Println("No companies yet. Add one with 'giglog company add <name>'.")
			return
		}
		for _, company := range companies {
			withholdings := ""
			if company.RequiresTaxWithholdings {
				withholdings = " (tax withholdings)"
			}
			fmt.Printf("%s  %s%s\n", company.ID, company.Name, withholdings)
		}
	}),
}

var companyAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a company",
	Args:  cobra.ExactArgs(1),
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		withholdings, _ := cmd.Flags().GetBool("withholdings")
		taxRate, err := decimalFlag(cmd, "tax-rate")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		company, err := b.CreateCompany(api.CompanyParams{
			Name:                    args[0],
			RequiresTaxWithholdings: withholdings,
			TaxWithholdingRate:      taxRate,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Added company %q - ID: %s\n", company.Name, company.ID)
	}),
}

var companyShowCmd = &cobra.Command{
	Use:   "show [company-id]",
	Short: "Show a company with its totals",
	Args:  cobra.ExactArgs(1),
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		detail, err := b.CompanyDetail(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("%s\n", detail.Company.Name)
		if detail.Company.RequiresTaxWithholdings && detail.Company.TaxWithholdingRate != nil {
			fmt.Printf("Tax withholding rate: %s%%\n", detail.Company.TaxWithholdingRate)
		}
		fmt.Printf("Payments received: %s (%d payments)\n", detail.PaymentTotal, len(detail.Payments))
		fmt.Printf("Hours worked: %s\n", detail.Hours)

		if len(detail.Jobs) > 0 {
			fmt.Println("\nJobs:")
			for _, job := range detail.Jobs {
				fmt.Printf("  %s  %s (%s)\n", job.ID, job.Title, job.PaymentType)
			}
		}
	}),
}

// decimalFlag parses an optional decimal-valued string flag.
func decimalFlag(cmd *cobra.Command, name string) (*decimal.Decimal, error) {
	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		return nil, nil
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid value for --%s: %q", name, value)
	}
	return &parsed, nil
}

func init() {
	companyAddCmd.Flags().Bool("withholdings", false, "Company requires tax withholdings")
	companyAddCmd.Flags().String("tax-rate", "", "Tax withholding rate percentage (0-100)")

	companyCmd.AddCommand(companyListCmd)
	companyCmd.AddCommand(companyAddCmd)
	companyCmd.AddCommand(companyShowCmd)
}
