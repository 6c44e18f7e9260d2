// Package persona loads the static documents the assistant is grounded in: a
// résumé PDF and a free-text summary. Loading is fault tolerant; a missing or
// unreadable document degrades to placeholder text instead of failing startup.
package persona

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

// Placeholder text substituted when a document cannot be loaded. Each
// document distinguishes "missing" from "unreadable".
const (
	ProfileMissing    = "Profile information is currently unavailable."
	ProfileUnreadable = "Error reading profile information."
	SummaryMissing    = "Summary information is currently unavailable."
	SummaryUnreadable = "Error reading summary information."
)

// Persona is the immutable identity and knowledge context the assistant
// represents. Built once per process lifetime.
type Persona struct {
	Name    string
	Summary string
	Profile string
}

// Load reads both documents and never fails: each document independently
// degrades to a placeholder when missing or unreadable.
func Load(name, profilePath, summaryPath string, logger zerolog.Logger) Persona {
	return Persona{
		Name:    name,
		Summary: loadSummary(summaryPath, logger),
		Profile: loadProfile(profilePath, logger),
	}
}

func loadSummary(path string, logger zerolog.Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", path).Msg("summary file not found, using placeholder")
			return SummaryMissing
		}
		logger.Error().Err(err).Str("path", path).Msg("failed to read summary file")
		return SummaryUnreadable
	}
	return string(data)
}

func loadProfile(path string, logger zerolog.Logger) string {
	text, err := extractPDFText(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn().Str("path", path).Msg("profile PDF not found, using placeholder")
			return ProfileMissing
		}
		logger.Error().Err(err).Str("path", path).Msg("failed to read profile PDF")
		return ProfileUnreadable
	}
	return text
}

// extractPDFText concatenates the plain text of every page in page order.
// The pdf parser panics on some malformed files, so the recover keeps a bad
// document from escaping the load boundary.
func extractPDFText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		b.WriteString(pageText)
	}
	return b.String(), nil
}
