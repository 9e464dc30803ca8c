package report

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/shibukawa/tagcheck/matcher"
)

const (
	validBanner   = "Document is constructed correctly."
	invalidBanner = "You have errors!"
)

func (r *Reporter) newColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if r.color != nil {
		if *r.color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return c
}

func (r *Reporter) writeText(verdict *matcher.Verdict) error {
	defectFmt := r.newColor(color.FgRed).SprintFunc()
	kindFmt := r.newColor(color.FgYellow).SprintfFunc()
	validFmt := r.newColor(color.FgGreen, color.Bold).SprintFunc()
	invalidFmt := r.newColor(color.FgRed, color.Bold).SprintfFunc()

	for _, d := range verdict.Defects {
		line := defectFmt(Line(d))
		if r.verbose {
			line += " " + kindFmt("[%s]", d.Kind)
		}

		if _, err := fmt.Fprintln(r.w, line); err != nil {
			return err
		}
	}

	var banner string
	if verdict.Valid() {
		banner = validFmt(validBanner)
	} else {
		banner = invalidFmt("%s (%d defects)", invalidBanner, len(verdict.Defects))
	}

	_, err := fmt.Fprintln(r.w, banner)

	return err
}
