package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const forecastPage = `
<html><body>
<table>
<tr><td>Rating</td><td>4</td><td>6</td><td>2</td><td>0</td><td>8</td><td>1</td></tr>
<tr><td>Wave height (m)</td><td>1.5m</td><td>2.0</td><td>0.5</td><td>n/a</td><td>3.0</td><td>1.0</td></tr>
<tr><td>Period (s)</td><td>12s</td><td>14</td><td>8</td><td>-</td><td>16</td><td>10</td></tr>
<tr><td>Wind state</td><td>Glassy</td><td>Offshore</td><td>Onshore</td><td>Cross-shore</td><td>Light cross-off</td><td>Cross-onshore</td></tr>
</table>
<p>Water: 17°C</p>
</body></html>`

func TestParseGrid(t *testing.T) {
	grid := ParseGrid(forecastPage)

	assert.Equal(t, []string{"4", "6", "2", "0", "8", "1"}, grid.Ratings)
	assert.Equal(t, []int{5, 7, 2, 0, 10, 3}, grid.WaveHeightsFt)
	assert.Equal(t, []int{12, 14, 8, 0, 16, 10}, grid.PeriodsS)
	assert.Equal(t, []string{"Glassy", "Offshore", "Onshore", "Cross-shore", "Light cross-off", "Cross-onshore"}, grid.WindStates)

	require.NotNil(t, grid.WaterTempF)
	assert.Equal(t, 63, *grid.WaterTempF)
}

func TestParseGridMissingWindRow(t *testing.T) {
	html := `<table>
<tr><td>Rating</td><td>5</td><td>3</td></tr>
<tr><td>Wave height (m)</td><td>1.0</td><td>2.0</td></tr>
</table>`

	grid := ParseGrid(html)
	assert.Equal(t, []string{"5", "3"}, grid.Ratings)
	assert.Empty(t, grid.WindStates, "missing wind row leaves the sequence empty")
	assert.Equal(t, "", grid.WindAt(0))
	assert.Nil(t, grid.WaterTempF)
}

func TestParseGridStarIcons(t *testing.T) {
	html := `<table>
<tr><td>Rating</td>
<td><span class="star-filled"></span><span class="star-filled"></span><span class="star-filled"></span></td>
<td data-value="6">ignored text</td>
<td>  7  </td>
</tr>
</table>`

	grid := ParseGrid(html)
	assert.Equal(t, []string{"3", "6", "7"}, grid.Ratings,
		"star count beats data-value beats visible text")
}

func TestParseGridCapsAtMaxSlots(t *testing.T) {
	row := "<tr><td>Rating</td>"
	for i := 0; i < 30; i++ {
		row += "<td>5</td>"
	}
	row += "</tr>"

	grid := ParseGrid("<table>" + row + "</table>")
	assert.Len(t, grid.Ratings, 21)
}

func TestParseWaterTempPreference(t *testing.T) {
	tests := []struct {
		name string
		html string
		want int
		ok   bool
	}{
		{name: "labeled beats bare", html: "Air: 25°C ... Sea: 15°C", want: 59, ok: true},
		{name: "water label", html: "Water: 20 °C", want: 68, ok: true},
		{name: "bare degrees", html: "currently 18°C offshore", want: 64, ok: true},
		{name: "no celsius", html: "Water: 65F", want: 0, ok: false},
		{name: "nothing", html: "<html></html>", want: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseWaterTemp(tt.html)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseGridGarbage(t *testing.T) {
	for _, html := range []string{"", "not html at all", "<div>no tables here</div>"} {
		grid := ParseGrid(html)
		assert.Empty(t, grid.Ratings)
		assert.Empty(t, grid.WaveHeightsFt)
		assert.False(t, grid.HasWaveData())
	}
}
