// Package analytics renders the read-only visitor statistics screen.
package analytics

import "github.com/tmportfolio/admin-gateway/internal/portfolio"

// minBarWidth keeps zero-count bars visible instead of collapsing them.
const minBarWidth = 4

// Bar is one horizontal bar: Width is a percentage in [minBarWidth, 100].
type Bar struct {
	Label string
	Count int
	Width int
}

// View is the fully precomputed page model. Templates do no arithmetic.
type View struct {
	Total     int
	Today     int
	Countries []Bar
	Browsers  []Bar
	OSes      []Bar
	Daily     []Bar
	Recent    []portfolio.Visitor
}

// BuildView turns a snapshot into bars. Country and daily bars scale
// against their group maximum; browser and OS bars scale against the grand
// total, matching how the portfolio site has always charted them.
func BuildView(snap *portfolio.Snapshot) View {
	view := View{
		Total:  snap.Total,
		Today:  snap.Today,
		Recent: snap.Recent,
	}

	maxCountry := 0
	for _, c := range snap.ByCountry {
		maxCountry = max(maxCountry, c.Count)
	}
	for _, c := range snap.ByCountry {
		label := c.Country
		if label == "" {
			label = "Unknown"
		}
		view.Countries = append(view.Countries, bar(label, c.Count, maxCountry))
	}

	for _, b := range snap.ByBrowser {
		view.Browsers = append(view.Browsers, bar(b.Browser, b.Count, snap.Total))
	}
	for _, o := range snap.ByOS {
		view.OSes = append(view.OSes, bar(o.OS, o.Count, snap.Total))
	}

	maxDaily := 0
	for _, d := range snap.Daily {
		maxDaily = max(maxDaily, d.Count)
	}
	for _, d := range snap.Daily {
		view.Daily = append(view.Daily, bar(d.Date, d.Count, maxDaily))
	}

	return view
}

// bar clamps the denominator to at least 1 so an all-zero group renders at
// the minimum width instead of dividing by zero.
func bar(label string, count, denom int) Bar {
	width := count * 100 / max(denom, 1)
	if width < minBarWidth {
		width = minBarWidth
	}
	if width > 100 {
		width = 100
	}
	return Bar{Label: label, Count: count, Width: width}
}
