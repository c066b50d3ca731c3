package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/matkrin/lspwire/internal/check"
	"github.com/matkrin/lspwire/lsp"
)

var (
	okColor      = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)
	driftColor   = color.New(color.FgYellow, color.Bold)
	skipColor    = color.New(color.FgBlue)
	locatorColor = color.New(color.Faint)
)

func statusColor(s check.Status) *color.Color {
	switch s {
	case check.StatusOK:
		return okColor
	case check.StatusFailed:
		return failColor
	case check.StatusDrift:
		return driftColor
	}
	return skipColor
}

func report(w io.Writer, results []check.Result, summary check.Summary, printDecoded bool) {
	for _, r := range results {
		if r.Status == check.StatusOK && !printDecoded {
			continue
		}
		locator := locatorColor.Sprintf("%s:%d", r.File, r.Index)
		subject := r.Method
		if r.Payload != "" {
			subject += " " + r.Payload
		}
		fmt.Fprintf(w, "%s %s %s\n", statusColor(r.Status).Sprintf("%-7s", r.Status), locator, subject)
		switch r.Status {
		case check.StatusFailed:
			fmt.Fprintf(w, "    %v\n", r.Err)
		case check.StatusDrift:
			for _, path := range r.Drift {
				fmt.Fprintf(w, "    %s\n", path)
			}
		case check.StatusSkipped:
			fmt.Fprintf(w, "    %s\n", r.Reason)
		case check.StatusOK:
			data, err := lsp.Marshal(r.Decoded)
			if err != nil {
				fmt.Fprintf(w, "    %v\n", err)
				continue
			}
			fmt.Fprintf(w, "    %s\n", data)
		}
	}
	fmt.Fprintf(w, "%d checked: %s, %s, %s, %s\n",
		summary.Total(),
		okColor.Sprintf("%d ok", summary.OK),
		failColor.Sprintf("%d failed", summary.Failed),
		driftColor.Sprintf("%d drift", summary.Drift),
		skipColor.Sprintf("%d skipped", summary.Skipped),
	)
}

func printMethods(w io.Writer) {
	for _, m := range lsp.Methods() {
		fmt.Fprintf(w, "%-45s %-12s %-14s %s\n", m.Name, m.Kind, m.Direction, m.Since)
	}
}
