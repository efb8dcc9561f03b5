// File: render.go
// Title: Result Rendering
// Description: Writes segmentation results and profile listings as plain
//              lines, JSON documents or lipgloss tables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.2.0: Initial implementation

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	mdwerror "github.com/msto63/commons/core/error"
	"github.com/msto63/commons/internal/profile"
	"github.com/msto63/commons/utils/stringx"
)

// Format selects the output representation
type Format string

const (
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// MaxCellWidth bounds the rune width of a value cell in table output
const MaxCellWidth = 60

// ParseFormat parses an output format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPlain, "":
		return FormatPlain, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatTable:
		return FormatTable, nil
	default:
		return "", mdwerror.New(fmt.Sprintf("unknown output format %q", s)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("render.ParseFormat").
			WithDetail("valid", []string{"plain", "json", "table"})
	}
}

// Renderer writes results in one format
type Renderer struct {
	out    io.Writer
	format Format
	runID  string
}

// New creates a renderer writing to out
func New(out io.Writer, format Format) *Renderer {
	return &Renderer{out: out, format: format}
}

// WithRunID includes the run id in JSON documents
func (r *Renderer) WithRunID(id string) *Renderer {
	r.runID = id
	return r
}

// resultDocument is the JSON shape of a result. Scan results carry only
// offsets, the others carry segments and their offsets.
type resultDocument struct {
	RunID     string   `json:"run_id,omitempty"`
	Profile   string   `json:"profile,omitempty"`
	Operation string   `json:"operation"`
	Segments  []string `json:"segments,omitempty"`
	Offsets   []int    `json:"offsets"`
}

// Result writes a segmentation result
func (r *Renderer) Result(res *profile.Result) error {
	switch r.format {
	case FormatJSON:
		doc := resultDocument{
			RunID:     r.runID,
			Profile:   res.Profile,
			Operation: string(res.Operation),
			Offsets:   res.Offsets(),
		}
		if res.Operation != profile.OpScan {
			doc.Segments = res.Values()
			if doc.Segments == nil {
				doc.Segments = []string{}
			}
		}
		return r.writeJSON(doc)

	case FormatTable:
		return r.resultTable(res)

	default:
		var b strings.Builder
		for _, item := range res.Items {
			if res.Operation == profile.OpScan {
				b.WriteString(strconv.Itoa(item.Offset))
			} else {
				b.WriteString(strconv.Quote(item.Value))
			}
			b.WriteByte('\n')
		}
		_, err := io.WriteString(r.out, b.String())
		return err
	}
}

func (r *Renderer) resultTable(res *profile.Result) error {
	rows := make([][]string, len(res.Items))
	for i, item := range res.Items {
		rows[i] = []string{
			strconv.Itoa(i),
			strconv.Itoa(item.Offset),
			strconv.Itoa(len(item.Value)),
			stringx.Truncate(strconv.Quote(item.Value), MaxCellWidth, "…"),
		}
	}

	// retain and chop results alternate gap and match
	alternating := res.Operation == profile.OpRetain || res.Operation == profile.OpChop

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(BorderStyle).
		Headers("#", "OFFSET", "LEN", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col < 3:
				return NumberStyle
			case alternating && row%2 == 1:
				return MatchStyle
			default:
				return CellStyle
			}
		})

	title := string(res.Operation)
	if res.Profile != "" {
		title = res.Profile + " (" + title + ")"
	}
	_, err := fmt.Fprintf(r.out, "%s\n%s\n", TitleStyle.Render(title), t.String())
	return err
}

// profileDocument is the JSON shape of a profile listing entry
type profileDocument struct {
	Name        string   `json:"name"`
	Operation   string   `json:"operation"`
	Description string   `json:"description,omitempty"`
	Settings    []string `json:"settings"`
	Valid       bool     `json:"valid"`
	Error       string   `json:"error,omitempty"`
}

// Profiles writes a listing of profiles with their validation status
func (r *Renderer) Profiles(list []profile.Profile, failures map[string]error) error {
	docs := make([]profileDocument, len(list))
	for i, p := range list {
		docs[i] = profileDocument{
			Name:        p.Name,
			Operation:   p.Operation,
			Description: p.Description,
			Settings:    settings(p),
			Valid:       failures[p.Name] == nil,
		}
		if err := failures[p.Name]; err != nil {
			docs[i].Error = err.Error()
		}
	}

	switch r.format {
	case FormatJSON:
		return r.writeJSON(docs)

	case FormatTable:
		rows := make([][]string, len(docs))
		for i, d := range docs {
			status := StatusOKStyle.Render("ok")
			if !d.Valid {
				status = StatusErrorStyle.Render("invalid")
			}
			rows[i] = []string{d.Name, d.Operation, strings.Join(d.Settings, " "), status}
		}
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(BorderStyle).
			Headers("PROFILE", "OPERATION", "SETTINGS", "STATUS").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return HeaderStyle
				}
				return CellStyle
			})
		_, err := fmt.Fprintln(r.out, t.String())
		return err

	default:
		var b strings.Builder
		for _, d := range docs {
			fmt.Fprintf(&b, "%s\t%s\t%s", d.Name, d.Operation, strings.Join(d.Settings, " "))
			if !d.Valid {
				fmt.Fprintf(&b, "\tinvalid: %s", d.Error)
			}
			b.WriteByte('\n')
		}
		_, err := io.WriteString(r.out, b.String())
		return err
	}
}

// settings lists the non-empty operation settings of a profile
func settings(p profile.Profile) []string {
	var result []string
	add := func(key, value string) {
		if value != "" {
			result = append(result, key+"="+strconv.Quote(value))
		}
	}
	add("needle", p.Needle)
	add("start", p.Start)
	add("end", p.End)
	add("escape", p.Escape)
	add("pattern", p.Pattern)
	for _, d := range p.Delimiters {
		add("delimiter", d)
	}
	if len(p.MinVersion.Components()) > 0 {
		add("min_version", p.MinVersion.String())
	}
	if result == nil {
		result = []string{}
	}
	return result
}

func (r *Renderer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
