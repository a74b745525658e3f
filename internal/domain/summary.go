package domain

import (
	m "reckon.dev/pkg/reckon/internal/model"
	pkg "reckon.dev/pkg/reckon/pkg"
)

func tallyFromResults(results pkg.Spill[m.TermResult]) (map[m.Kind]m.KindTally, error) {
	tally := map[m.Kind]m.KindTally{}

	err := results.Range(func(_ uint64, result m.TermResult) error {
		entry := tally[result.Kind]
		entry.Terms++

		switch result.Status {
		case m.TermError:
			entry.Errors++
		case m.TermOK, m.TermSkipped:
			// Only failed terms count against a kind.
		}

		tally[result.Kind] = entry

		return nil
	})
	if err != nil {
		return nil, err
	}

	return tally, nil
}

// summarize condenses a finished report into its history line.
func summarize(report m.RunReport, reportPath m.Path) m.RunSummary {
	kinds := ""

	for _, kind := range m.Kinds() {
		if _, ok := report.Tally[kind]; !ok {
			continue
		}

		if kinds != "" {
			kinds += ","
		}

		kinds += string(kind)
	}

	terms := 0
	for _, entry := range report.Tally {
		terms += entry.Terms
	}

	return m.RunSummary{
		RunID:     report.RunID,
		StartedAt: report.StartedAt,
		Kinds:     kinds,
		Jobs:      report.Jobs,
		Terms:     terms,
		Failures:  report.Failures(),
		Elapsed:   report.Elapsed(),
		Report:    reportPath,
	}
}
