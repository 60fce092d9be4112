package errors

import (
	"fmt"
	"strings"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

// EnableColors enables ANSI color output.
func EnableColors() {
	colorEnabled = true
}

// color wraps text in ANSI color codes if colors are enabled.
func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

func red(text string) string    { return color(colorRed, text) }
func yellow(text string) string { return color(colorYellow, text) }
func cyan(text string) string   { return color(colorCyan, text) }
func gray(text string) string   { return color(colorGray, text) }
func bold(text string) string   { return color(colorBold, text) }

// Format renders a NavError for terminal output: code and message,
// then detail, suggestion, and documentation link when present.
func Format(e *NavError) string {
	var b strings.Builder

	header := e.Message
	if e.Code != "" {
		header = fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	b.WriteString(bold(red("Error: ")) + header + "\n")

	if e.Detail != "" {
		b.WriteString("\n" + e.Detail + "\n")
	}
	if e.Wrapped != nil {
		b.WriteString("\n" + gray("caused by: "+e.Wrapped.Error()) + "\n")
	}
	if e.Suggestion != "" {
		b.WriteString("\n" + yellow("Hint: ") + e.Suggestion + "\n")
	}
	if e.DocURL != "" {
		b.WriteString("\n" + gray("Docs: ") + cyan(e.DocURL) + "\n")
	}
	return b.String()
}
