package ufcstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractFighter(t *testing.T) {
	const u = "http://www.ufcstats.com/fighter-details/07f72a2a7591b409"
	f := ExtractFighter(detailPage("Jon   Jones", "Bones", "27-1-0 (1 NC)"), u)

	assert.Equal(t, "Jon Jones", f.Name)
	assert.Equal(t, "Bones", f.Nickname)
	assert.Equal(t, u, f.SourceURL)

	w, l, d := f.Wins.OrElse(-1), f.Losses.OrElse(-1), f.Draws.OrElse(-1)
	assert.Equal(t, []int{27, 1, 0}, []int{w, l, d})

	height, ok := f.HeightCm.Get()
	require.True(t, ok)
	assert.InDelta(t, 193.0, height, 1e-9)
	reach, ok := f.ReachCm.Get()
	require.True(t, ok)
	assert.InDelta(t, 213.4, reach, 1e-9)
	assert.Equal(t, 205, f.WeightLbs.OrElse(0))
	assert.Equal(t, "Orthodox", f.Stance.OrElse(""))
	assert.Equal(t, "Jul 19, 1987", f.DOB.OrElse(""))

	assert.InDelta(t, 4.29, f.SLpM.OrElse(0), 1e-12)
	assert.InDelta(t, 0.57, f.StrAcc.OrElse(0), 1e-12)
	assert.InDelta(t, 2.22, f.SApM.OrElse(0), 1e-12)
	assert.InDelta(t, 0.56, f.StrDef.OrElse(0), 1e-12)
	assert.InDelta(t, 1.85, f.TDAvg.OrElse(0), 1e-12)
	assert.InDelta(t, 0.36, f.TDAcc.OrElse(0), 1e-12)
	assert.InDelta(t, 0.93, f.TDDef.OrElse(0), 1e-12)
	assert.True(t, f.SubAvg.Absent())
}

func TestExtractFighterMissingElements(t *testing.T) {
	f := ExtractFighter(`<html><body><p>Nothing to see</p></body></html>`, "u")

	assert.Empty(t, f.Name)
	assert.Empty(t, f.Nickname)
	assert.True(t, f.Wins.Absent())
	assert.True(t, f.Losses.Absent())
	assert.True(t, f.Draws.Absent())
	assert.True(t, f.HeightCm.Absent())
	assert.True(t, f.SLpM.Absent())
}

func TestExtractFighterUnreadableRecord(t *testing.T) {
	f := ExtractFighter(detailPage("A B", "", "unknown"), "u")
	assert.Equal(t, "A B", f.Name)
	assert.True(t, f.Wins.Absent())
	assert.True(t, f.Draws.Absent())
}

func TestListingURLs(t *testing.T) {
	markup := listingPage(
		"http://www.ufcstats.com/fighter-details/aaa",
		"http://www.ufcstats.com/fighter-details/bbb",
		"http://www.ufcstats.com/fighter-details/aaa",
	)

	assert.Equal(t, []string{
		"http://www.ufcstats.com/fighter-details/aaa",
		"http://www.ufcstats.com/fighter-details/bbb",
	}, ListingURLs(markup))
	assert.Empty(t, ListingURLs(listingPage()))
}
