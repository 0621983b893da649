package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/surfwatch/surfbot/internal/commute"
	"github.com/surfwatch/surfbot/internal/models"
	"github.com/surfwatch/surfbot/internal/units"
	"github.com/surfwatch/surfbot/internal/windows"
)

// BeachPick is one pre-picked beach line for the surf-now blast.
type BeachPick struct {
	Name string
	Temp string
	Note string
}

var commutePickNames = map[string]string{
	"carp":     "Carp",
	"belmont":  "Belmont",
	"paradise": "Paradise",
}

// ComposeSurfNow renders the condensed "go now?" blast: county top 5 with a
// verdict, the weekend windows for the primary spot with NOW/best markers,
// beach picks, drive times, time-of-day advice and the command footer.
func ComposeSurfNow(now time.Time, days []string, rankings []models.CountyRankingEntry,
	primary *SpotForecast, picks []BeachPick, commutes map[string]commute.Times, breakName string) string {

	var b strings.Builder

	fmt.Fprintf(&b, "<b>🏄 SurfBot</b>\n%s\n%s\n\n", now.Format(dateTimeLayout), divider(28))

	b.WriteString("<b>🌊 SURF NOW (LA County)</b>\n")
	if len(rankings) > 0 {
		for i, s := range rankings {
			if i >= 5 {
				break
			}
			fmt.Fprintf(&b, "%d. %-16.16s ⭐%d\n", i+1, s.Name, s.Rating)
		}
		fmt.Fprintf(&b, "<i>%s</i>\n", surfVerdict(rankings[0].Rating))
	} else {
		b.WriteString("<i>Data unavailable</i>\n")
	}

	b.WriteString("\n<b>📅 WEEKEND WINDOWS</b>\n")
	if primary != nil && primary.usable() {
		composeWeekendWindows(&b, now, days, primary.Grid)
	} else {
		b.WriteString("<i>Forecast unavailable</i>\n")
	}

	if len(picks) > 0 {
		b.WriteString("\n<b>🏖 BEACHES</b>\n")
		for _, p := range picks {
			fmt.Fprintf(&b, "%s: %s - %s\n", p.Name, p.Temp, p.Note)
		}
	}

	if len(commutes) > 0 {
		fmt.Fprintf(&b, "\n<b>🚗 DRIVE</b> <i>(from Glendale)</i>\n")
		for _, code := range []string{"carp", "belmont", "paradise"} {
			times, ok := commutes[code]
			if !ok {
				continue
			}
			name := commutePickNames[code]
			if name == "" {
				name = code
			}
			fmt.Fprintf(&b, "%-8s → %-7s back %s\n", name, times.To, times.Back)
		}
	}

	b.WriteString(timingAdvice(now.Hour()))

	if breakName != "" {
		fmt.Fprintf(&b, "\n<i>📅 %s - kids are off!</i>", breakName)
	}

	b.WriteString("\n\n" + divider(28))
	b.WriteString("\n<b>More:</b>")
	b.WriteString("\n/week - Full 7-day forecast")
	b.WriteString("\n/local - All your SoCal beaches")
	b.WriteString("\n/beach spo - Sankt Peter-Ording")
	b.WriteString("\n/beach van - Vancouver BC")
	b.WriteString("\n/coast - CA road trip overview")
	b.WriteString("\n/ - All commands")

	return b.String()
}

// composeWeekendWindows writes one line per weekend AM/PM slot, marking the
// best-so-far slot and the slot covering the current time. The best marker
// tracks the running maximum the same way the selection rule does.
func composeWeekendWindows(b *strings.Builder, now time.Time, days []string, grid models.ForecastGrid) {
	best := models.DaySlotEntry{Rating: models.SentinelRating}

	for i, day := range days {
		if i >= models.ForecastDays || !windows.IsWeekend(day) {
			continue
		}

		for p, perName := range windows.PeriodNames {
			idx := models.SlotIndex(i, p)
			if idx >= len(grid.Ratings) {
				continue
			}

			if r, ok := grid.RatingAt(idx); ok && r > best.Rating {
				best = models.DaySlotEntry{Day: day, Period: perName, Rating: r}
			}

			isBest := day == best.Day && perName == best.Period
			isNow := day == days[0] &&
				((perName == "AM" && now.Hour() < 12) || (perName == "PM" && now.Hour() >= 12))

			marker := ""
			switch {
			case isBest && isNow:
				marker = " ← NOW 🏆"
			case isBest:
				marker = " 🏆"
			case isNow:
				marker = " ← NOW"
			}

			fmt.Fprintf(b, "%s %s  %sft %ss ⭐%s %s%s\n",
				day, perName,
				heightText(grid, idx), periodText(grid, idx),
				grid.RatingTextAt(idx),
				units.WindStateText(grid.WindAt(idx)),
				marker)
		}
	}
}

func surfVerdict(best int) string {
	switch {
	case best >= 5:
		return "✅ Firing - go now!"
	case best >= 3:
		return "👍 Solid session"
	case best >= 2:
		return "🤷 Meh but rideable"
	default:
		return "❌ Skip surfing today"
	}
}

func timingAdvice(hour int) string {
	switch {
	case hour < 9:
		return "\n<i>🌅 Early window - beat crowds</i>"
	case hour < 12:
		return "\n<i>☀️ Good time to head out</i>"
	case hour < 15:
		return "\n<i>🏖 Peak hours - expect crowds</i>"
	default:
		return "\n<i>🌇 Winds up, beach clearing out</i>"
	}
}
