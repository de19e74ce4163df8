package main

import (
	"strconv"

	"github.com/pterm/pterm"
	"github.com/xeonx/timeago"

	"lottogen/internal/lotto"
)

func renderArchive(g *lotto.Generator) (string, error) {
	combinations := g.AllCombinations()
	if len(combinations) == 0 {
		return pterm.Sprintln("no combinations saved"), nil
	}

	data := pterm.TableData{{"ID", "Numbers", "Bonus", "Created", "Age"}}
	for _, c := range combinations {
		data = append(data, []string{
			strconv.FormatInt(c.ID, 10),
			pterm.LightCyan(lotto.FormatNumbers(c.Numbers)),
			strconv.Itoa(c.Bonus),
			g.FormatTime(c.Timestamp),
			timeago.English.Format(c.Timestamp),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

func renderReport(r lotto.Report) (string, error) {
	data := pterm.TableData{
		{"Check", "Result", "Blocks"},
		{"arithmetic sequence", yesNo(r.Arithmetic), "yes"},
		{"birthday pattern", yesNo(r.Birthday), "yes"},
		{"biased range", yesNo(r.BiasedRange), "yes"},
		{"odd/even bias", yesNo(r.OddEvenBiased), "yes"},
		{"lucky numbers (" + strconv.Itoa(r.LuckyCount) + ")", yesNo(r.LuckyNumbers), "no"},
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", err
	}

	verdict := pterm.LightGreen("not a common pattern")
	if r.Common() {
		verdict = pterm.LightRed("common pattern")
	}
	box := pterm.DefaultBox.
		WithTitle(lotto.FormatNumbers(r.Numbers)).
		WithTitleTopCenter().
		Sprint(verdict)
	return table + "\n" + box + "\n", nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
