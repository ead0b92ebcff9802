package core

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"goldcheck/internal/types"
)

// Report is the role-grouped projection of a result set. Groups appear
// in first-seen role order; the summary always carries all five status
// keys.
type Report struct {
	Groups  []types.RoleGroup
	Summary types.Summary
}

// BuildReport groups results by role, preserving first-seen role order
// and per-role check order, and computes the status summary. Results
// without a role land in an "unknown" bucket.
func BuildReport(results []types.CheckResult) Report {
	report := Report{Summary: types.NewSummary()}
	index := make(map[string]int)

	for _, r := range results {
		roleName := string(r.Role)
		if roleName == "" {
			roleName = "unknown"
		}

		i, seen := index[roleName]
		if !seen {
			i = len(report.Groups)
			index[roleName] = i
			report.Groups = append(report.Groups, types.RoleGroup{Role: roleName})
		}
		report.Groups[i].Results = append(report.Groups[i].Results, r)

		if _, ok := report.Summary[r.Status]; ok {
			report.Summary[r.Status]++
		}
	}

	return report
}

// WriteJSON writes results as an indented JSON array of flat records.
// The projection is lossless: every CheckResult field appears, with a
// null actual_value when the backend produced nothing.
func WriteJSON(w io.Writer, results []types.CheckResult) error {
	if results == nil {
		results = []types.CheckResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// csvHeader is the column order of the CSV projection.
var csvHeader = []string{"Role", "Config File", "Stanza", "Setting", "Expected Value", "Actual Value", "Status"}

// WriteCSV writes results as a header row plus one row per result.
// Absent actual values render as empty cells.
func WriteCSV(w io.Writer, results []types.CheckResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range results {
		actual := ""
		if r.ActualValue != nil {
			actual = *r.ActualValue
		}
		row := []string{
			string(r.Role),
			r.ConfigFile,
			r.Stanza,
			r.Setting,
			r.ExpectedValue,
			actual,
			string(r.Status),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
