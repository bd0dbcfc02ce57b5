package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fundi/internal/adapters/marketplace"
	"fundi/internal/core/feed"
)

var (
	flagSearch    string
	flagLocation  string
	flagCategory  string
	flagSkills    []string
	flagMinRating float64
	flagVerified  bool
	flagMinBudget int64
	flagMaxBudget int64
	flagSort      string
	flagAsc       bool
)

var fundisCmd = &cobra.Command{
	Use:   "fundis",
	Short: "List fundis matching the given filters",
	RunE:  runFundis,
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List open jobs matching the given filters",
	RunE:  runJobs,
}

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "List your payments (requires --token)",
	RunE:  runPayments,
}

func init() {
	for _, c := range []*cobra.Command{fundisCmd, jobsCmd} {
		c.Flags().StringVar(&flagSearch, "search", "", "free-text search")
		c.Flags().StringVar(&flagLocation, "location", "", "location filter")
		c.Flags().StringVar(&flagCategory, "category", "", "category filter")
		c.Flags().StringVar(&flagSort, "sort", "", "sort key")
		c.Flags().BoolVar(&flagAsc, "asc", false, "sort ascending")
	}
	fundisCmd.Flags().StringSliceVar(&flagSkills, "skills", nil, "required skills")
	fundisCmd.Flags().Float64Var(&flagMinRating, "min-rating", 0, "minimum rating")
	fundisCmd.Flags().BoolVar(&flagVerified, "verified", false, "verified fundis only")
	jobsCmd.Flags().Int64Var(&flagMinBudget, "min-budget", 0, "minimum budget")
	jobsCmd.Flags().Int64Var(&flagMaxBudget, "max-budget", 0, "maximum budget")
}

// applyFilters pushes the command flags into the feed query
func applyFilters(q *feed.Query) bool {
	changed := q.SetSearch(flagSearch)
	changed = q.SetLocation(flagLocation) || changed
	changed = q.SetCategory(flagCategory) || changed
	changed = q.SetSkills(flagSkills) || changed
	changed = q.SetMinRating(flagMinRating) || changed
	changed = q.SetBudgetRange(flagMinBudget, flagMaxBudget) || changed
	changed = q.SetVerifiedOnly(flagVerified) || changed
	dir := feed.SortDesc
	if flagAsc {
		dir = feed.SortAsc
	}
	return q.SetSort(flagSort, dir) || changed
}

// accumulate refreshes the feed and then loads pages until either the
// requested count is reached or the backend runs out
func accumulate[T feed.Record](ctx context.Context, f *feed.Feed[T]) error {
	f.Update(applyFilters)
	if err := f.Refresh(ctx); err != nil {
		return err
	}
	for n := 1; n < pages && f.Accumulator().HasMore(); n++ {
		if err := f.LoadMore(ctx); err != nil {
			return err
		}
	}
	return nil
}

func runFundis(cmd *cobra.Command, _ []string) error {
	c := client()
	f := feed.New("fundis", c.FundiFetcher(),
		feed.WithAccumulator(feed.NewAccumulator[marketplace.Fundi](feed.WithPerPage(perPage))))
	defer f.Close()

	if err := accumulate(cmd.Context(), f); err != nil {
		return displayErr(f.Accumulator().ErrorMessage(), err)
	}
	rememberSearch(flagSearch)

	for _, fd := range f.Accumulator().Records() {
		mark := " "
		if fd.Verified {
			mark = "*"
		}
		fmt.Printf("%s %-25s %-15s %.1f★ %3d jobs  %s\n",
			mark, fd.Name, fd.Location, fd.Rating, fd.JobsCompleted, strings.Join(fd.Skills, ","))
	}
	printFooter(f.Accumulator().Len(), f.Accumulator().HasMore())
	return nil
}

func runJobs(cmd *cobra.Command, _ []string) error {
	c := client()
	f := feed.New("jobs", c.JobFetcher(),
		feed.WithAccumulator(feed.NewAccumulator[marketplace.Job](feed.WithPerPage(perPage))))
	defer f.Close()

	if err := accumulate(cmd.Context(), f); err != nil {
		return displayErr(f.Accumulator().ErrorMessage(), err)
	}
	rememberSearch(flagSearch)

	now := time.Now()
	for _, j := range f.Accumulator().Records() {
		status := j.Status
		if j.Expired(now) {
			status = "expired"
		}
		fmt.Printf("%-30s %-15s %-20s %-10s\n", j.Title, j.Location, j.Budget.Formatted(), status)
	}
	printFooter(f.Accumulator().Len(), f.Accumulator().HasMore())
	return nil
}

func runPayments(cmd *cobra.Command, _ []string) error {
	c := client()
	gate := marketplace.StaticToken(token)
	f := feed.New("payments", c.PaymentFetcher(),
		feed.WithAuthGate[marketplace.Payment](gate),
		feed.WithAccumulator(feed.NewAccumulator[marketplace.Payment](feed.WithPerPage(perPage))))
	defer f.Close()

	if err := accumulate(cmd.Context(), f); err != nil {
		return displayErr(f.Accumulator().ErrorMessage(), err)
	}

	for _, p := range f.Accumulator().Records() {
		fmt.Printf("%-12s %-20s %-10s %-10s %s\n",
			p.CreatedAt.Format("2006-01-02"), p.Formatted(), p.Method, p.Status, p.JobID)
	}
	printFooter(f.Accumulator().Len(), f.Accumulator().HasMore())
	return nil
}

// displayErr prefers the feed's display message over the raw error
func displayErr(msg string, err error) error {
	if msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return err
}

func printFooter(n int, more bool) {
	suffix := ""
	if more {
		suffix = " (more available, raise --pages)"
	}
	fmt.Printf("-- %d records%s\n", n, suffix)
}
