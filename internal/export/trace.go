package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

var ErrUnknownFormat = errors.New("export: unknown format")

type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatCSV:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

type StepRecord struct {
	Seq         int      `json:"seq"`
	Kind        string   `json:"kind"`
	Description string   `json:"description"`
	Values      []int    `json:"values"`
	Highlights  []string `json:"highlights"`
	Terminal    bool     `json:"terminal,omitempty"`
}

type TraceData struct {
	Algorithm string             `json:"algorithm"`
	Size      int                `json:"size"`
	Input     []int              `json:"input"`
	Steps     []StepRecord       `json:"steps"`
	Metrics   map[string]float64 `json:"metrics"`
}

func NewTrace(alg sorting.Algorithm, input []int, steps []sorting.Step) TraceData {
	data := TraceData{
		Algorithm: string(alg),
		Size:      len(input),
		Input:     input,
		Steps:     make([]StepRecord, len(steps)),
		Metrics:   metrics.Collect(steps).Values(),
	}
	for i, s := range steps {
		hl := make([]string, len(s.Highlights))
		for j, c := range s.Highlights {
			hl[j] = c.String()
		}
		data.Steps[i] = StepRecord{
			Seq:         s.Seq,
			Kind:        s.Kind.String(),
			Description: s.Description,
			Values:      s.Values,
			Highlights:  hl,
			Terminal:    s.Terminal,
		}
	}
	return data
}

func WriteJSON(w io.Writer, data TraceData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteCSV writes one row per step: seq, kind, terminal, description, then
// one value column and one highlight column per index.
func WriteCSV(w io.Writer, data TraceData) error {
	cw := csv.NewWriter(w)

	header := []string{"seq", "kind", "terminal", "description"}
	for i := 0; i < data.Size; i++ {
		header = append(header, fmt.Sprintf("v%d", i))
	}
	for i := 0; i < data.Size; i++ {
		header = append(header, fmt.Sprintf("h%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, s := range data.Steps {
		row := []string{
			strconv.Itoa(s.Seq),
			s.Kind,
			strconv.FormatBool(s.Terminal),
			s.Description,
		}
		for _, v := range s.Values {
			row = append(row, strconv.Itoa(v))
		}
		row = append(row, s.Highlights...)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Write dispatches on format. An empty path writes to stdout.
func Write(path string, format Format, data TraceData) error {
	var out io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case FormatJSON:
		return WriteJSON(out, data)
	case FormatCSV:
		return WriteCSV(out, data)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}
