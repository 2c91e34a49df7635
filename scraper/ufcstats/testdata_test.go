package ufcstats

import "fmt"

// detailPage mimics the markup of a fighter-details page
func detailPage(name, nickname, record string) string {
	return fmt.Sprintf(`<html><body>
<h2 class="b-content__title">
  <span class="b-content__title-highlight">
    %s
  </span>
  <span class="b-content__title-record">
    Record: %s
  </span>
</h2>
<p class="b-content__Nickname">
  %s
</p>
<div class="b-list__info-box">
  <ul class="b-list__box-list">
    <li class="b-list__box-list-item b-list__box-list-item_type_block">
      <i class="b-list__box-item-title b-list__box-item-title_type_width">Height:</i>
      6' 4"
    </li>
    <li class="b-list__box-list-item b-list__box-list-item_type_block">
      <i class="b-list__box-item-title b-list__box-item-title_type_width">Weight:</i>
      205 lbs.
    </li>
    <li class="b-list__box-list-item b-list__box-list-item_type_block">
      <i class="b-list__box-item-title b-list__box-item-title_type_width">Reach:</i>
      84"
    </li>
    <li class="b-list__box-list-item b-list__box-list-item_type_block">
      <i class="b-list__box-item-title b-list__box-item-title_type_width">STANCE:</i>
      Orthodox
    </li>
    <li class="b-list__box-list-item b-list__box-list-item_type_block">
      <i class="b-list__box-item-title b-list__box-item-title_type_width">DOB:</i>
      Jul 19, 1987
    </li>
  </ul>
</div>
<div class="b-list__info-box-left">
  <ul class="b-list__box-list">
    <li class="b-list__box-list-item"><i class="b-list__box-item-title">SLpM:</i> 4.29</li>
    <li class="b-list__box-list-item"><i class="b-list__box-item-title">Str. Acc.:</i> 57%%</li>
    <li class="b-list__box-list-item"><i class="b-list__box-item-title">SApM:</i> 2.22</li>
    <li class="b-list__box-list-item"><i class="b-list__box-item-title">Str. Def:</i> 56%%</li>
    <li class="b-list__box-list-item b-list__box-list-item_type_block">
      <i class="b-list__box-item-title"></i>
      &nbsp;
    </li>
    <li class="b-list__box-list-item"><i class="b-list__box-item-title">TD Avg.:</i> 1.85</li>
    <li class="b-list__box-list-item"><i class="b-list__box-item-title">TD Acc.:</i> 36%%</li>
    <li class="b-list__box-list-item"><i class="b-list__box-item-title">TD Def.:</i> 93%%</li>
    <li class="b-list__box-list-item"><i class="b-list__box-item-title">Sub. Avg.:</i> --</li>
    <li class="b-list__box-list-item"><i class="b-list__box-item-title">Favourite snack:</i> 12%%</li>
  </ul>
</div>
</body></html>`, name, record, nickname)
}

func listingPage(hrefs ...string) string {
	rows := ""
	for _, h := range hrefs {
		rows += fmt.Sprintf(`<tr class="b-statistics__table-row">
  <td class="b-statistics__table-col"><a href="%s" class="b-link b-link_style_black">First</a></td>
  <td class="b-statistics__table-col"><a href="%s" class="b-link b-link_style_black">Last</a></td>
</tr>
`, h, h)
	}
	return `<html><body><table class="b-statistics__table"><tbody>
<tr class="b-statistics__table-row"><td><a href="/statistics/fighters?char=b&page=all">B</a></td></tr>
` + rows + `</tbody></table></body></html>`
}
