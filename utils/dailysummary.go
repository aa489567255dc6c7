package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"backend/config"
	"backend/models"
	"backend/reporting"
)

// DailySummaryJob runs at the 05:30 IST rollover and reports the business
// day that just ended: revenue, orders and general expenses per branch,
// logged and optionally mailed.
func DailySummaryJob(cfg *config.Config, engine *reporting.Engine) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		// At 05:30 on day D the day that closed is labeled D-1.
		day := time.Now().In(reporting.IST).AddDate(0, 0, -1)
		window := reporting.Normalize(day, day, reporting.PolicyBusinessDay)
		label := day.Format("2006-01-02")

		var lines []string
		for _, branch := range reporting.Branches() {
			pairs, err := reporting.ResolveBranch(branch)
			if err != nil {
				log.Error().Err(err).Msg("daily summary: resolve branch")
				return
			}
			totals, err := engine.Totals(ctx, pairs, window, reporting.TotalsSpec{
				OrderMatch:             bson.M{"status": models.OrderStatusFulfilled},
				SubtractDeliveryCharge: true,
				IncludeExtraPayments:   true,
				ExpenseExclusions:      reporting.GeneralExpenseExclusions,
			})
			if err != nil {
				log.Error().Err(err).Str("branch", branch).Msg("daily summary: totals")
				return
			}

			log.Info().
				Str("day", label).
				Str("branch", branch).
				Float64("revenue", totals.Revenue).
				Int64("orders", totals.Orders).
				Float64("expenses", totals.Expenses).
				Msg("daily summary")

			lines = append(lines, fmt.Sprintf(
				"%s: revenue %.2f, orders %d, expenses %.2f, profit %.2f",
				branch, totals.Revenue, totals.Orders, totals.Expenses,
				totals.Revenue-totals.Expenses,
			))
		}

		if !cfg.SummaryMailEnabled() {
			return
		}
		body := fmt.Sprintf("Business day %s\n\n%s\n", label, strings.Join(lines, "\n"))
		err := SendEmail(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword,
			cfg.SummaryFrom, cfg.SummaryTo, "Daily summary "+label, body)
		LogError(err, "daily summary: send mail")
	}
}
