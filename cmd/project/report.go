package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vanshika/finsight/backend/internal/service"
)

// writeReport renders one dashboard as an aligned plain-text report.
func writeReport(w io.Writer, d service.Dashboard) error {
	title := d.Profile.Name
	if title == "" {
		title = d.Profile.UserID
	}
	fmt.Fprintf(w, "== %s ==\n", title)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range d.Cards {
		fmt.Fprintf(tw, "%s\t%s\n", c.Title, c.Display)
	}

	ret := d.Projections.Retirement
	fmt.Fprintf(tw, "\t\n")
	fmt.Fprintf(tw, "Years to retirement\t%d\n", ret.YearsToRetirement)
	fmt.Fprintf(tw, "Projected corpus\t%s\n", d.Money.ProjectedCorpus)
	fmt.Fprintf(tw, "Required corpus\t%s\n", d.Money.RequiredCorpus)
	fmt.Fprintf(tw, "Monthly investment needed\t%s\n", d.Money.MonthlyInvestmentNeeded)
	fmt.Fprintf(tw, "On track\t%s\n", yesNo(ret.IsOnTrack))

	inv := d.Projections.Investment
	alloc := inv.RecommendedAllocation
	fmt.Fprintf(tw, "\t\n")
	fmt.Fprintf(tw, "Risk profile\t%s\n", inv.RiskProfile)
	fmt.Fprintf(tw, "Allocation\tequity %d%% / debt %d%% / gold %d%%\n", alloc.Equity, alloc.Debt, alloc.Gold)
	fmt.Fprintf(tw, "Monthly investment\t%s\n", d.Money.MonthlyInvestment)

	risk := d.Projections.Risk
	fmt.Fprintf(tw, "\t\n")
	fmt.Fprintf(tw, "Risk score\t%d (%s)\n", risk.RiskScore, risk.RiskCategory)
	if err := tw.Flush(); err != nil {
		return err
	}

	recs := append(append([]string(nil), ret.Recommendations...), risk.Recommendations...)
	if len(recs) > 0 {
		fmt.Fprintf(w, "\nRecommendations:\n  - %s\n", strings.Join(recs, "\n  - "))
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
