package ufcstats

import (
	"strings"

	"fightstats/models"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

const detailPathMarker = "/fighter-details/"

// bioField routes a bio line to a parser when its lower-cased label
// contains label. Entries are tried in order and the first hit wins.
type bioField struct {
	label string
	apply func(r *models.FighterRecord, value string)
}

var bioFields = []bioField{
	{"height", func(r *models.FighterRecord, v string) { r.HeightCm = ParseHeightToCm(v) }},
	{"weight", func(r *models.FighterRecord, v string) { r.WeightLbs = ParseWeight(v) }},
	{"reach", func(r *models.FighterRecord, v string) { r.ReachCm = ParseReachToCm(v) }},
	{"stance", func(r *models.FighterRecord, v string) { r.Stance = parseText(v) }},
	{"dob", func(r *models.FighterRecord, v string) { r.DOB = parseText(v) }},
	{"slpm", func(r *models.FighterRecord, v string) { r.SLpM = ParseFloatField(v) }},
	{"str. acc", func(r *models.FighterRecord, v string) { r.StrAcc = ParsePercentage(v) }},
	{"sapm", func(r *models.FighterRecord, v string) { r.SApM = ParseFloatField(v) }},
	{"str. def", func(r *models.FighterRecord, v string) { r.StrDef = ParsePercentage(v) }},
	{"td avg", func(r *models.FighterRecord, v string) { r.TDAvg = ParseFloatField(v) }},
	{"td acc", func(r *models.FighterRecord, v string) { r.TDAcc = ParsePercentage(v) }},
	{"td def", func(r *models.FighterRecord, v string) { r.TDDef = ParsePercentage(v) }},
	{"sub. avg", func(r *models.FighterRecord, v string) { r.SubAvg = ParseFloatField(v) }},
}

// ExtractFighter builds the best record it can from one detail page. It never
// fails: missing elements simply leave fields absent, and an unrecoverable
// name comes back empty for the caller to judge.
func ExtractFighter(markup, sourceURL string) *models.FighterRecord {
	record := &models.FighterRecord{SourceURL: sourceURL}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return record
	}

	if name := doc.Find("span.b-content__title-highlight").First(); name.Length() > 0 {
		record.Name = collapseSpace(name.Text())
	}
	if nick := doc.Find("p.b-content__Nickname").First(); nick.Length() > 0 {
		record.Nickname = collapseSpace(nick.Text())
	}
	if rec := doc.Find("span.b-content__title-record").First(); rec.Length() > 0 {
		record.SetRecord(ParseRecord(rec.Text()))
	}

	doc.Find("li.b-list__box-list-item").Each(func(_ int, item *goquery.Selection) {
		label, value, ok := splitBioLine(item)
		if !ok {
			return
		}
		for _, f := range bioFields {
			if strings.Contains(label, f.label) {
				f.apply(record, value)
				return
			}
		}
	})

	return record
}

// splitBioLine turns `<li><i>Height:</i> 6' 4"</li>` into ("height", `6' 4"`)
func splitBioLine(item *goquery.Selection) (label, value string, ok bool) {
	var parts []string
	for _, n := range item.Nodes {
		collectText(n, &parts)
	}
	if len(parts) < 2 {
		return "", "", false
	}
	label = strings.ToLower(strings.TrimSpace(strings.TrimRight(parts[0], ":")))
	return label, parts[len(parts)-1], true
}

// collectText appends every non-blank text node under node, in document order
func collectText(node *html.Node, out *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		if s := strings.TrimSpace(node.Data); s != "" {
			*out = append(*out, s)
		}
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, out)
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ListingURLs returns the unique fighter detail links on a roster page, in
// page order.
func ListingURLs(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var urls []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if !strings.Contains(href, detailPathMarker) {
			return
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		urls = append(urls, href)
	})
	return urls
}
