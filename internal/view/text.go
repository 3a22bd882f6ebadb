package view

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// titleWords title-cases each underscore-separated segment, so "user_name"
// becomes "User_Name" and "unit price" becomes "Unit Price".
func titleWords(s string) string {
	parts := strings.Split(s, "_")
	for i, p := range parts {
		parts[i] = titleCaser.String(p)
	}
	return strings.Join(parts, "_")
}

// displayTitle renders a dataset name for headers: underscores become spaces,
// words are title-cased.
func displayTitle(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// padCell left-justifies s into exactly width display cells.
func padCell(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// clipCell truncates s to at most width display cells, appending an ellipsis
// when something was cut.
func clipCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// clipRunes truncates to a rune budget with a plain ellipsis, used by the
// tree renderer's 50-character scalar cap.
func clipRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
