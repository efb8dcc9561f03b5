// File: render_test.go
// Title: Rendering Tests
// Description: Tests plain, JSON and table output of results and profile
//              listings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02

package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/msto63/commons/internal/profile"
	"github.com/msto63/commons/utils/versionx"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatPlain, false},
		{"plain", FormatPlain, false},
		{"JSON", FormatJSON, false},
		{" table ", FormatTable, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v; wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func splitResult() *profile.Result {
	return &profile.Result{
		Profile:   "statements",
		Operation: profile.OpSplit,
		Items:     []profile.Item{{Offset: 0, Value: "a;"}, {Offset: 2, Value: "b\n"}, {Offset: 4, Value: "c"}},
	}
}

func scanResult() *profile.Result {
	return &profile.Result{
		Operation: profile.OpScan,
		Items:     []profile.Item{{Offset: 1, Value: ","}, {Offset: 5, Value: ","}},
	}
}

func TestResultPlain(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatPlain).Result(splitResult()); err != nil {
		t.Fatalf("Result() returned error: %v", err)
	}
	want := "\"a;\"\n\"b\\n\"\n\"c\"\n"
	if buf.String() != want {
		t.Errorf("plain output = %q; want %q", buf.String(), want)
	}

	buf.Reset()
	if err := New(&buf, FormatPlain).Result(scanResult()); err != nil {
		t.Fatalf("Result() returned error: %v", err)
	}
	if buf.String() != "1\n5\n" {
		t.Errorf("plain scan output = %q", buf.String())
	}
}

func TestResultJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatJSON).WithRunID("run-1").Result(splitResult()); err != nil {
		t.Fatalf("Result() returned error: %v", err)
	}

	var doc resultDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if doc.RunID != "run-1" || doc.Profile != "statements" || doc.Operation != "split" {
		t.Errorf("unexpected document header %+v", doc)
	}
	if !reflect.DeepEqual(doc.Segments, []string{"a;", "b\n", "c"}) {
		t.Errorf("segments = %q", doc.Segments)
	}
	if !reflect.DeepEqual(doc.Offsets, []int{0, 2, 4}) {
		t.Errorf("offsets = %v", doc.Offsets)
	}
}

func TestResultJSONScanOmitsSegments(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatJSON).Result(scanResult()); err != nil {
		t.Fatalf("Result() returned error: %v", err)
	}
	if strings.Contains(buf.String(), "segments") {
		t.Errorf("scan output should not contain segments: %s", buf.String())
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if fmt.Sprint(raw["offsets"]) != "[1 5]" {
		t.Errorf("offsets = %v", raw["offsets"])
	}
}

func TestResultJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	res := &profile.Result{Operation: profile.OpRetain, Items: []profile.Item{}}
	if err := New(&buf, FormatJSON).Result(res); err != nil {
		t.Fatalf("Result() returned error: %v", err)
	}
	if !strings.Contains(buf.String(), `"segments": []`) || !strings.Contains(buf.String(), `"offsets": []`) {
		t.Errorf("empty result should render empty arrays: %s", buf.String())
	}
}

func TestResultTable(t *testing.T) {
	var buf bytes.Buffer
	if err := New(&buf, FormatTable).Result(splitResult()); err != nil {
		t.Fatalf("Result() returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"statements (split)", "OFFSET", "VALUE", `"a;"`, `"b\n"`, `"c"`} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestResultTableTruncatesLongValues(t *testing.T) {
	var buf bytes.Buffer
	res := &profile.Result{
		Operation: profile.OpChop,
		Items:     []profile.Item{{Offset: 0, Value: strings.Repeat("x", 200)}},
	}
	if err := New(&buf, FormatTable).Result(res); err != nil {
		t.Fatalf("Result() returned error: %v", err)
	}
	if strings.Contains(buf.String(), strings.Repeat("x", MaxCellWidth+1)) {
		t.Errorf("value cell was not truncated:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "200") {
		t.Errorf("length column should report the full length:\n%s", buf.String())
	}
}

func testProfiles() ([]profile.Profile, map[string]error) {
	list := []profile.Profile{
		{Name: "csv", Operation: "retain", Pattern: ","},
		{Name: "future", Operation: "scan", Needle: ",", MinVersion: versionx.MustNew(42)},
	}
	failures := map[string]error{"future": fmt.Errorf("requires version 42")}
	return list, failures
}

func TestProfilesPlain(t *testing.T) {
	var buf bytes.Buffer
	list, failures := testProfiles()
	if err := New(&buf, FormatPlain).Profiles(list, failures); err != nil {
		t.Fatalf("Profiles() returned error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if lines[0] != "csv\tretain\tpattern=\",\"" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "\tinvalid: requires version 42") {
		t.Errorf("line 1 = %q", lines[1])
	}
	if !strings.Contains(lines[1], `min_version="42"`) {
		t.Errorf("line 1 should list min_version: %q", lines[1])
	}
}

func TestProfilesJSON(t *testing.T) {
	var buf bytes.Buffer
	list, failures := testProfiles()
	if err := New(&buf, FormatJSON).Profiles(list, failures); err != nil {
		t.Fatalf("Profiles() returned error: %v", err)
	}
	var docs []profileDocument
	if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(docs) != 2 || !docs[0].Valid || docs[1].Valid {
		t.Errorf("unexpected documents %+v", docs)
	}
	if docs[1].Error != "requires version 42" {
		t.Errorf("error = %q", docs[1].Error)
	}
}

func TestProfilesTable(t *testing.T) {
	var buf bytes.Buffer
	list, failures := testProfiles()
	if err := New(&buf, FormatTable).Profiles(list, failures); err != nil {
		t.Fatalf("Profiles() returned error: %v", err)
	}
	for _, want := range []string{"PROFILE", "csv", "future", "ok", "invalid"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("table output missing %q:\n%s", want, buf.String())
		}
	}
}
