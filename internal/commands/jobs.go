package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giglog/giglog/internal/api"
	"github.com/giglog/giglog/internal/models"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Manage jobs",
}

var jobListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs",
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		companyID, _ := cmd.Flags().GetString("company")
		jobs, err := b.ListJobs(companyID)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(jobs) == 0 {
			fmt.Println("No jobs yet. Add one with 'giglog job add'.")
			return
		}
		for _, job := range jobs {
			fmt.Printf("%s  %s (%s)\n", job.ID, job.Title, paymentSummary(&job))
		}
	}),
}

var jobAddCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a job",
	Long: `Add a job under a company. Hourly jobs take --rate; payout jobs take
--payouts and --amount.

Examples:
  giglog job add "Backend Development" --company 4f1c... --type hourly --rate 45.00
  giglog job add "Logo Design" --company 4f1c... --type payouts --payouts 3 --amount 500`,
	Args: cobra.ExactArgs(1),
	Run: withBackend(func(b backend, cmd *cobra.Command, args []string) {
		companyID, _ := cmd.Flags().GetString("company")
		paymentType, _ := cmd.Flags().GetString("type")

		hourlyRate, err := decimalFlag(cmd, "rate")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		payoutAmount, err := decimalFlag(cmd, "amount")
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		var numberOfPayouts *int
		if count, _ := cmd.Flags().GetInt("payouts"); count > 0 {
			numberOfPayouts = &count
		}

		job, err := b.CreateJob(api.JobParams{
			CompanyID:       companyID,
			Title:           args[0],
			PaymentType:     paymentType,
			NumberOfPayouts: numberOfPayouts,
			PayoutAmount:    payoutAmount,
			HourlyRate:      hourlyRate,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Added job %q - ID: %s\n", job.Title, job.ID)
	}),
}

func paymentSummary(job *models.Job) string {
	switch job.PaymentType {
	case models.PaymentTypeHourly:
		if job.HourlyRate != nil {
			return fmt.Sprintf("hourly, %s/h", job.HourlyRate)
		}
		return "hourly"
	case models.PaymentTypePayouts:
		if job.NumberOfPayouts != nil && job.PayoutAmount != nil {
			return fmt.Sprintf("%d payouts of %s", *job.NumberOfPayouts, job.PayoutAmount)
		}
		return "payouts"
	}
	return job.PaymentType
}

func init() {
	jobAddCmd.Flags().String("company", "", "Company ID the job belongs to")
	jobAddCmd.Flags().String("type", models.PaymentTypeHourly, "Payment type: hourly or payouts")
	jobAddCmd.Flags().String("rate", "", "Hourly rate (hourly jobs)")
	jobAddCmd.Flags().Int("payouts", 0, "Number of payouts (payout jobs)")
	jobAddCmd.Flags().String("amount", "", "Payout amount (payout jobs)")

	jobListCmd.Flags().String("company", "", "Only list jobs for this company ID")

	jobCmd.AddCommand(jobListCmd)
	jobCmd.AddCommand(jobAddCmd)
}
