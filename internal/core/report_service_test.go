package core

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"goldcheck/internal/types"
)

func sampleResults() []types.CheckResult {
	return []types.CheckResult{
		{Role: types.RoleIndexer, ConfigFile: "server.conf", Stanza: "general", Setting: "serverName", ExpectedValue: "idx-01", ActualValue: strPtr("idx-01"), Status: types.StatusOK},
		{Role: types.RoleSearchHead, ConfigFile: "web.conf", Stanza: "settings", Setting: "enableSplunkWebSSL", ExpectedValue: "true", ActualValue: strPtr("false"), Status: types.StatusMismatch},
		{Role: types.RoleIndexer, ConfigFile: "server.conf", Stanza: "clustering", Setting: "mode", ExpectedValue: "peer", Status: types.StatusMissing},
		{ConfigFile: "limits.conf", Stanza: "search", Setting: "max_rt_search_multiplier", ExpectedValue: "1", Status: types.StatusError},
	}
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(sampleResults())

	// First-seen role order, unlabeled results in an "unknown" bucket.
	wantRoles := []string{"indexer", "search-head", "unknown"}
	if len(report.Groups) != len(wantRoles) {
		t.Fatalf("got %d groups, want %d", len(report.Groups), len(wantRoles))
	}
	for i, want := range wantRoles {
		if report.Groups[i].Role != want {
			t.Errorf("group[%d].Role = %s, want %s", i, report.Groups[i].Role, want)
		}
	}

	if len(report.Groups[0].Results) != 2 {
		t.Errorf("indexer group has %d results, want 2", len(report.Groups[0].Results))
	}

	// Summary carries every status key even at zero.
	if len(report.Summary) != len(types.AllStatuses) {
		t.Errorf("summary has %d keys, want %d", len(report.Summary), len(types.AllStatuses))
	}
	if report.Summary[types.StatusOK] != 1 || report.Summary[types.StatusMismatch] != 1 ||
		report.Summary[types.StatusMissing] != 1 || report.Summary[types.StatusError] != 1 ||
		report.Summary[types.StatusUnknown] != 0 {
		t.Errorf("unexpected summary: %+v", report.Summary)
	}
	if report.Summary.Total() != 4 {
		t.Errorf("summary total = %d, want 4", report.Summary.Total())
	}
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport(nil)

	if len(report.Groups) != 0 {
		t.Errorf("got %d groups for empty input, want 0", len(report.Groups))
	}
	if report.Summary.Total() != 0 {
		t.Errorf("summary total = %d, want 0", report.Summary.Total())
	}
	if len(report.Summary) != len(types.AllStatuses) {
		t.Errorf("summary must keep all status keys, got %+v", report.Summary)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 4 {
		t.Fatalf("got %d records, want 4", len(decoded))
	}

	first := decoded[0]
	for _, key := range []string{"role", "config_file", "stanza", "setting", "expected_value", "actual_value", "status"} {
		if _, ok := first[key]; !ok {
			t.Errorf("record missing field %q: %v", key, first)
		}
	}

	// Absent actual values serialize as null.
	if decoded[2]["actual_value"] != nil {
		t.Errorf("missing actual_value should be null, got %v", decoded[2]["actual_value"])
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("empty results must serialize as [], got %q", got)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleResults()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(records) != 5 {
		t.Fatalf("got %d rows, want header + 4", len(records))
	}

	wantHeader := []string{"Role", "Config File", "Stanza", "Setting", "Expected Value", "Actual Value", "Status"}
	for i, col := range wantHeader {
		if records[0][i] != col {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
		}
	}

	// Absent actual values render as empty cells.
	if records[3][5] != "" {
		t.Errorf("missing actual value cell = %q, want empty", records[3][5])
	}
	if records[1][6] != string(types.StatusOK) {
		t.Errorf("status cell = %q, want %s", records[1][6], types.StatusOK)
	}
}
