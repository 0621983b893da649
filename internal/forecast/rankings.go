package forecast

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/surfwatch/surfbot/internal/models"
)

// ParseCountyRankings scrapes the region listing page into {name, rating}
// pairs sorted best-first. A row counts when it has a /breaks/ link and a
// single-digit numeric cell; everything else is skipped. The sort is stable
// so spots with equal ratings keep their page order.
func ParseCountyRankings(html string) []models.CountyRankingEntry {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var spots []models.CountyRankingEntry

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		link := row.Find(`a[href*="/breaks/"]`).First()
		if link.Length() == 0 {
			return
		}

		name := strings.TrimSpace(link.Text())
		if strings.Contains(name, "CAL -") {
			name = strings.TrimSpace(strings.SplitN(name, "CAL", 2)[0])
		}

		cells.EachWithBreak(func(_ int, cell *goquery.Selection) bool {
			txt := strings.TrimSpace(cell.Text())
			if len(txt) == 1 && txt[0] >= '0' && txt[0] <= '9' {
				spots = append(spots, models.CountyRankingEntry{
					Name:   name,
					Rating: int(txt[0] - '0'),
				})
				return false
			}
			return true
		})
	})

	sort.SliceStable(spots, func(i, j int) bool {
		return spots[i].Rating > spots[j].Rating
	})
	return spots
}
