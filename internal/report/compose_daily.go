package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/surfwatch/surfbot/internal/models"
	"github.com/surfwatch/surfbot/internal/units"
	"github.com/surfwatch/surfbot/internal/windows"
)

// ComposeDaily renders the full 7-day report: per spot a detailed weekend
// block, a condensed weekday block with PTO flags, a plain-English
// explainer, and a water-temp line, followed by the county top-3 footer.
func ComposeDaily(now time.Time, days []string, spots []SpotForecast, rankings []models.CountyRankingEntry, ptoThreshold int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏄 <b>Surf Report</b>\n%s\n%s\n\n", now.Format(dateLayout), divider(24))

	for _, sf := range spots {
		if !sf.usable() {
			fmt.Fprintf(&b, "<b>%s</b>\n⚠️ Data unavailable\n\n", sf.Spot.Name)
			continue
		}

		fmt.Fprintf(&b, "<b>📍 %s</b>\n\n", sf.Spot.Name)

		sel := windows.Select(sf.Grid, days, ptoThreshold)

		b.WriteString("<b>WEEKEND</b>\n")
		for i, day := range days {
			if !windows.IsWeekend(day) {
				continue
			}
			for p, perName := range windows.PeriodNames {
				idx := models.SlotIndex(i, p)
				if idx >= len(sf.Grid.Ratings) {
					continue
				}

				marker := ""
				if day == sel.WeekendBest.Day && perName == sel.WeekendBest.Period {
					marker = " 🏆"
				}

				fmt.Fprintf(&b, "%-3s  %s  %sft  %ss  ⭐%s  %s%s\n",
					day, perName,
					heightText(sf.Grid, idx), periodText(sf.Grid, idx),
					sf.Grid.RatingTextAt(idx),
					units.WindStateText(sf.Grid.WindAt(idx)),
					marker)
			}
		}

		b.WriteString("\n<b>WEEKDAYS</b> <i>(PTO worthy?)</i>\n")
		for i, day := range days {
			if windows.IsWeekend(day) {
				continue
			}

			// AM slot only for the condensed view.
			idx := models.SlotIndex(i, models.PeriodAM)
			if idx >= len(sf.Grid.Ratings) {
				continue
			}

			ptoFlag := ""
			if r, ok := sf.Grid.RatingAt(idx); ok && r >= ptoThreshold {
				ptoFlag = " ← worth it"
			}

			fmt.Fprintf(&b, "%s  %sft %ss ⭐%s %s%s\n",
				day,
				heightText(sf.Grid, idx), periodText(sf.Grid, idx),
				sf.Grid.RatingTextAt(idx),
				units.WindStateText(sf.Grid.WindAt(idx)),
				ptoFlag)
		}

		fmt.Fprintf(&b, "\n<i>%s</i>\n", composeExplainer(sel))

		if sf.Grid.WaterTempF != nil {
			temp := *sf.Grid.WaterTempF
			fmt.Fprintf(&b, "\n🌊 Water: %d°F (%s)\n", temp, units.WetsuitForF(temp))
		}

		b.WriteString("\n")
	}

	if footer := composeCountyFooter(rankings); footer != "" {
		b.WriteString(footer)
	}

	return b.String()
}

// composeExplainer turns a window selection into the report's plain-English
// summary.
func composeExplainer(sel models.WindowSelection) string {
	var lines []string

	switch {
	case sel.WeekendBest.Rating >= 3:
		lines = append(lines, fmt.Sprintf("%s %s is your weekend play - %dft at %ds, %s.",
			sel.WeekendBest.Day, sel.WeekendBest.Period,
			sel.WeekendBest.HeightFt, sel.WeekendBest.PeriodS, sel.WeekendBest.Wind))
	case sel.WeekendBest.Rating >= 1:
		lines = append(lines, fmt.Sprintf("Weekend is weak. Best is %s %s at ⭐%d.",
			sel.WeekendBest.Day, sel.WeekendBest.Period, sel.WeekendBest.Rating))
	default:
		lines = append(lines, "Weekend is flat. Maybe next week.")
	}

	if top, ok := windows.PTOCallout(sel); ok {
		lines = append(lines, fmt.Sprintf("\nBut %s %s is worth PTO - %dft at %ds, %s. Much better than the weekend.",
			top.Day, top.Period, top.HeightFt, top.PeriodS, top.Wind))
	}

	return strings.Join(lines, "\n")
}

func composeCountyFooter(rankings []models.CountyRankingEntry) string {
	var best []models.CountyRankingEntry
	for i, s := range rankings {
		if i >= 5 {
			break
		}
		if s.Rating >= 3 {
			best = append(best, s)
		}
	}
	if len(best) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<b>🏆 Best in LA County</b>\n")
	for i, s := range best {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "  %s: ⭐%d\n", s.Name, s.Rating)
	}
	return b.String()
}
