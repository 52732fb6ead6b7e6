package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/cashflow/internal/adapter/http/dto"
	"github.com/iho/cashflow/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

// migration runners, replaced in tests
var (
	migrateUp   = postgres.RunMigrations
	migrateDown = postgres.RunMigrationsDown
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cashflow-cli",
		Short:         "Cashflow CLI tool",
		Long:          `A command line interface for the cashflow API and database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the cashflow API")
	cmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	cmd.AddCommand(dashboardCmd(), migrateCmd())
	return cmd
}

type dashboardOptions struct {
	year      int
	view      string
	month     int
	from      int
	to        int
	hideEmpty bool
	sort      string
	dir       string
	asJSON    bool
}

func dashboardCmd() *cobra.Command {
	opts := dashboardOptions{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show period totals, balances and category rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			raw, resp, err := fetchDashboard(ctx, &http.Client{Timeout: timeout}, baseURL, opts)
			if err != nil {
				return err
			}

			if opts.asJSON {
				return printJSON(cmd.OutOrStdout(), json.RawMessage(raw))
			}
			return renderDashboard(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().IntVar(&opts.year, "year", 0, "Year (defaults to the current year)")
	cmd.Flags().StringVar(&opts.view, "view", "month", "View mode: full, month, ytd or range")
	cmd.Flags().IntVar(&opts.month, "month", 0, "Month for month and ytd views (defaults to the current month)")
	cmd.Flags().IntVar(&opts.from, "from", 0, "First month of a range view")
	cmd.Flags().IntVar(&opts.to, "to", 0, "Last month of a range view")
	cmd.Flags().BoolVar(&opts.hideEmpty, "hide-empty", false, "Hide categories without actuals")
	cmd.Flags().StringVar(&opts.sort, "sort", "", "Order categories by plan, actual, diff or trend")
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Sort direction: asc or desc")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print the raw JSON response")

	return cmd
}

// dashboardURL builds the dashboard request URL. Unset options are omitted
// so the server applies its defaults.
func dashboardURL(base string, opts dashboardOptions) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid base url: %w", err)
	}
	u = u.JoinPath("/api/v1/dashboard")

	q := url.Values{}
	if opts.year != 0 {
		q.Set("year", strconv.Itoa(opts.year))
	}
	if opts.view != "" {
		q.Set("view", opts.view)
	}
	if opts.month != 0 {
		q.Set("month", strconv.Itoa(opts.month))
	}
	if opts.from != 0 {
		q.Set("monthFrom", strconv.Itoa(opts.from))
	}
	if opts.to != 0 {
		q.Set("monthTo", strconv.Itoa(opts.to))
	}
	if opts.hideEmpty {
		q.Set("hideEmpty", "1")
	}
	if opts.sort != "" {
		q.Set("sort", opts.sort)
	}
	if opts.dir != "" {
		q.Set("dir", opts.dir)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

func fetchDashboard(ctx context.Context, client *http.Client, base string, opts dashboardOptions) ([]byte, *dto.DashboardResponse, error) {
	target, err := dashboardURL(base, opts)
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("dashboard request failed (status %d): %s", resp.StatusCode, truncate(string(body), 200))
	}

	var dashboard dto.DashboardResponse
	if err := json.Unmarshal(body, &dashboard); err != nil {
		return nil, nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return body, &dashboard, nil
}

func renderDashboard(w io.Writer, d *dto.DashboardResponse) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "%s (%s)\n\n", d.Period, d.Currency)

	fmt.Fprintln(tw, "Metric\tActual\tPlan\tPrevious\tTrend\t")
	for _, name := range []string{"income", "expenses", "investments", "net"} {
		m := d.Metrics[name]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", name, m.Actual.StringFixed(2), m.Plan.StringFixed(2), m.Previous.StringFixed(2), m.Trend.Display)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nStarting balance: %s\nEnding balance:   %s\n\n",
		d.Totals.StartingBalance.StringFixed(2), d.Totals.EndingBalance.StringFixed(2))

	if len(d.Categories) == 0 {
		fmt.Fprintln(w, "No categories.")
		return nil
	}

	fmt.Fprintln(tw, "Category\tType\tPlan\tActual\tDiff\tTrend\t")
	for _, c := range d.Categories {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			truncate(c.Name, 24), c.Type, c.Plan.StringFixed(2), c.Actual.StringFixed(2), c.Diff.StringFixed(2), c.Trend)
	}
	return tw.Flush()
}

func migrateCmd() *cobra.Command {
	var (
		databaseURL string
		source      string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL connection URL")
	cmd.PersistentFlags().StringVar(&source, "source", os.Getenv("MIGRATIONS_PATH"), "Migration source URL (defaults to the embedded migrations)")

	requireURL := func() error {
		if databaseURL == "" {
			return fmt.Errorf("--database-url or DATABASE_URL is required")
		}
		return nil
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireURL(); err != nil {
				return err
			}
			if err := migrateUp(databaseURL, source); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireURL(); err != nil {
				return err
			}
			if err := migrateDown(databaseURL, source); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "last migration rolled back")
			return nil
		},
	})

	return cmd
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
