package report

import (
	"fmt"
	"strings"
	"time"
)

// ComposeWeekendBeachDigest is the Saturday-morning family recommendation.
// Temps are live readings when available, "?" otherwise.
func ComposeWeekendBeachDigest(now time.Time, carpTemp, belmontTemp string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏖 <b>Family Beach Day</b>\n%s\n\n", now.Format(dateLayout))

	fmt.Fprintf(&b, "<b>Top Pick:</b> Carpinteria\n")
	fmt.Fprintf(&b, "• %s air right now\n", carpTemp)
	b.WriteString("• Calm waves - great for kids\n\n")

	fmt.Fprintf(&b, "<b>Runner Up:</b> Belmont Shore\n")
	fmt.Fprintf(&b, "• %s air, closer to home\n", belmontTemp)
	b.WriteString("• Good if you want to sleep in\n\n")

	b.WriteString("<i>Beat the crowds - arrive by 9am</i>")
	return b.String()
}

// ComposeSchoolBreakAlert is pushed the evening before a school break
// starts.
func ComposeSchoolBreakAlert(breakName string) string {
	return fmt.Sprintf(`📅 <b>Kids Off Tomorrow!</b>
%s starts

<b>Beach Forecast:</b>
• Best bet: Carpinteria - calm, kid-friendly

<i>Sleep in, then beach day?</i>

Type /local for all your beaches`, breakName)
}

// ComposeHeatWaveAlert is pushed when tomorrow's inland high clears the
// configured threshold.
func ComposeHeatWaveAlert(inlandHighF int) string {
	return fmt.Sprintf(`🔥 <b>Hot Day Tomorrow</b>
%d°F forecast for Glendale

<b>Beach Escape:</b>
Best pick: Carpinteria
• 15-20°F cooler than inland
• Morning fog clears by 10am

<i>Leave early to beat traffic</i>`, inlandHighF)
}

// ComposeOnlineBanner is the startup message.
func ComposeOnlineBanner(now time.Time) string {
	return fmt.Sprintf("🏄 <b>SurfBot Online</b>\n%s\n\n/surf - now\n/week - forecast", now.Format("03:04 PM"))
}
