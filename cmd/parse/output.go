package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorReset  = "\033[0m"
)

// Diagnostics go to stderr so stdout stays machine readable

func PrintWarning(format string, a ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"! "+format+colorReset+"\n", a...)
}

func PrintError(format string, a ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"x "+format+colorReset+"\n", a...)
}

func writeJSON(w io.Writer, rep report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func writeSummary(w io.Writer, rep report) error {
	title := cases.Title(language.English)
	item := rep.Item

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", item.ItemBaseName, title.String(item.ItemClass))
	if item.ItemTitle != "" {
		fmt.Fprintf(&b, "  title: %s\n", item.ItemTitle)
	}
	if item.ItemDisplayName != "" {
		fmt.Fprintf(&b, "  name:  %s\n", item.ItemDisplayName)
	}
	if item.ItemLevel > 0 {
		fmt.Fprintf(&b, "  level: %d\n", item.ItemLevel)
	}
	for _, mod := range item.ModDetails {
		fmt.Fprintf(&b, "  %s%-28s%s %s\n", colorGreen, mod.ModKey, colorReset, strings.Join(mod.Lines, " / "))
	}

	if est := rep.Estimation; est != nil {
		fmt.Fprintf(&b, "  chance per chaos orb: %.4f%%", est.Probability*100)
		if attempts := est.ExpectedAttempts(); attempts > 0 {
			fmt.Fprintf(&b, " (about %.0f orbs)", attempts)
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
