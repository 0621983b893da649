package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/surfwatch/surfbot/internal/models"
	"github.com/surfwatch/surfbot/internal/tide"
)

// localRegions groups the local beach codes south to north for the /local
// overview.
var localRegions = []struct {
	Name  string
	Codes []string
}{
	{"San Diego", []string{"fletcher"}},
	{"Long Beach", []string{"belmont", "pedro"}},
	{"Malibu", []string{"paradise", "piedra"}},
	{"Ventura", []string{"oxnard"}},
	{"Santa Barbara", []string{"carp", "east"}},
}

// ComposeLocalOverview renders the grouped SoCal favorites with the latest
// observed air temps. Missing readings show as "?".
func ComposeLocalOverview(now time.Time, beaches []models.BeachLocation, airTemps map[string]string) string {
	byCode := make(map[string]models.BeachLocation)
	var codes []string
	for _, b := range beaches {
		if b.Region == models.RegionLocal {
			byCode[b.Code] = b
			codes = append(codes, b.Code)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏖 <b>Your SoCal Beaches</b>\n%s\n%s\n\n", now.Format(dateLayout), divider(24))

	for _, region := range localRegions {
		fmt.Fprintf(&b, "<b>%s</b>\n", region.Name)
		for _, code := range region.Codes {
			beach, ok := byCode[code]
			if !ok {
				continue
			}
			temp := airTemps[code]
			if temp == "" {
				temp = "?"
			}
			fmt.Fprintf(&b, "  %-20.20s 🌡%s\n", beach.Name, temp)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "<i>Use /beach [code] for details:\n%s</i>\n", strings.Join(codes, ", "))
	return b.String()
}

// ComposeBeachList renders the code directory shown for a bare /beach.
func ComposeBeachList(beaches []models.BeachLocation) string {
	var travel, local []string
	for _, b := range beaches {
		line := fmt.Sprintf("• %s - %s", b.Code, b.Name)
		if b.Region == models.RegionTravel {
			travel = append(travel, line)
		} else {
			local = append(local, line)
		}
	}

	return fmt.Sprintf(`<b>🏖 Beach Locations</b>

<b>TRAVEL</b>
%s

<b>LOCAL FAVORITES</b>
%s

Use: /beach [code]
Example: /beach carp

Or /local for SoCal overview`, strings.Join(travel, "\n"), strings.Join(local, "\n"))
}

// UnknownLocation is the only error text a user ever sees.
func UnknownLocation(code string) string {
	return fmt.Sprintf("Unknown location: %s\n\nType /beach for all options.", code)
}

// ComposeBeachReport renders the detail view for one beach. Local beaches
// get live tide extremes and air temperature where available; the travel
// destinations keep their curated guides.
func ComposeBeachReport(now time.Time, loc models.BeachLocation, tides []tide.Extreme, airTempF *int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏖 <b>%s</b>\n%s\n%s\n\n", loc.Name, now.Format(dateTimeLayout), divider(24))

	switch loc.Code {
	case "spo":
		b.WriteString(`<b>Wind</b> (for kiting)
🌬 15 kts SW - Good for kiting

<b>Tides</b>
🌊 Low:  06:42  (0.3m)
🌊 High: 12:58  (3.1m)
🌊 Low:  19:15  (0.4m)

<b>Temps</b>
💧 Water: 54°F (12°C) - Full wetsuit
🌡 Air: 62°F (17°C)`)
		if loc.Note != "" {
			fmt.Fprintf(&b, "\n\n<i>⚠️ %s</i>", loc.Note)
		}

	case "van":
		b.WriteString(`<b>Tides</b> (English Bay)
🌊 Low:  05:23  (0.8m)
🌊 High: 11:45  (4.2m)
🌊 Low:  18:02  (1.1m)

<b>Temps</b>
💧 Water: 52°F (11°C) - Brisk!
🌡 Air: 58°F (14°C)

<b>Spots</b>
• English Bay - Calm, good swimming
• Kitsilano - Warmer (shallow)
• Spanish Banks - Low tide = huge beach`)

	default:
		b.WriteString("<b>Tides</b>\n")
		if len(tides) > 0 {
			for _, e := range tides {
				label := "Low: "
				if e.Type == tide.ExtremeHigh {
					label = "High:"
				}
				fmt.Fprintf(&b, "🌊 %s %s  (%.1fft)\n", label, e.Time.Format("15:04"), e.HeightFt)
			}
		} else {
			b.WriteString("<i>Data unavailable</i>\n")
		}

		b.WriteString("\n<b>Temps</b>\n")
		if airTempF != nil {
			fmt.Fprintf(&b, "🌡 Air: %d°F\n", *airTempF)
		} else {
			b.WriteString("<i>Data unavailable</i>\n")
		}

		if loc.Note != "" {
			fmt.Fprintf(&b, "\n<i>💡 %s</i>", loc.Note)
		}
	}

	return b.String()
}

// RegionSummary is the best spot of one coast region, nil when the fetch
// came back empty.
type RegionSummary struct {
	Name string
	Top  *models.CountyRankingEntry
}

// RegionDisplayName turns a region slug into its overview heading.
func RegionDisplayName(slug string) string {
	return strings.ToUpper(strings.ReplaceAll(slug, "-", " "))
}

// ComposeCoast renders the road-trip overview: the best spot per region and
// a verdict naming the region worth the drive.
func ComposeCoast(now time.Time, regions []RegionSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚗 <b>California Coast</b>\n%s\n%s\n\n", now.Format(dateLayout), divider(24))

	var best *RegionSummary
	for i := range regions {
		r := regions[i]
		fmt.Fprintf(&b, "<b>%s</b>\n", r.Name)
		if r.Top != nil {
			fmt.Fprintf(&b, "⭐%d  %s best\n\n", r.Top.Rating, r.Top.Name)
			if best == nil || r.Top.Rating > best.Top.Rating {
				best = &regions[i]
			}
		} else {
			b.WriteString("<i>Data unavailable</i>\n\n")
		}
	}

	b.WriteString("<b>Road Trip Verdict:</b>\n")
	if best != nil && best.Top.Rating >= 3 {
		fmt.Fprintf(&b, "%s is the call today. %s at ⭐%d is worth the drive.",
			titleCase(best.Name), best.Top.Name, best.Top.Rating)
	} else if best != nil {
		b.WriteString("Nothing on the coast worth a road trip today.")
	} else {
		b.WriteString("Coast data unavailable today.")
	}

	return b.String()
}

func titleCase(upper string) string {
	words := strings.Fields(strings.ToLower(upper))
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
