package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// document is the top-level YAML shape of a batch file.
type document struct {
	Items []Item `yaml:"items"`
}

// Load decodes a batch document from r. The stream must hold exactly one
// YAML document; a second one after "---" is ErrDecode. Items without an id
// get "#<n>", their 1-based position.
func Load(r io.Reader) ([]Item, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Load: %w", ErrEmpty)
		}

		return nil, fmt.Errorf("Load: %w: %w", ErrDecode, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("Load: %w: %w", ErrDecode, err)
		}

		return nil, fmt.Errorf("Load: %w: trailing document at line %d", ErrDecode, extra.Line)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("Load: %w", ErrEmpty)
	}
	for i := range doc.Items {
		if doc.Items[i].ID == "" {
			doc.Items[i].ID = "#" + strconv.Itoa(i+1)
		}
	}

	return doc.Items, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	items, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}

	return items, nil
}

// reportEntry is one outcome in the YAML report. Numeric fields are
// omitted for failed items.
type reportEntry struct {
	ID         string   `yaml:"id"`
	Branch     string   `yaml:"branch"`
	Distance   *float64 `yaml:"distance,omitempty"`
	Euclid     *float64 `yaml:"euclid,omitempty"`
	Correction *float64 `yaml:"correction,omitempty"`
	Radicand   *float64 `yaml:"radicand,omitempty"`
	Kind       string   `yaml:"kind"`
	Error      string   `yaml:"error,omitempty"`
}

// report is the top-level YAML shape written by WriteReport.
type report struct {
	Total   int            `yaml:"total"`
	OK      int            `yaml:"ok"`
	Failed  int            `yaml:"failed"`
	ByKind  map[string]int `yaml:"by_kind,omitempty"`
	Results []reportEntry  `yaml:"results"`
}

// WriteReport encodes outcomes and their Summary as YAML to w.
func WriteReport(w io.Writer, outcomes []Outcome) error {
	s := Summarize(outcomes)
	rep := report{
		Total:   s.Total,
		OK:      s.OK,
		Failed:  s.Failed,
		ByKind:  s.ByKind,
		Results: make([]reportEntry, 0, len(outcomes)),
	}
	for _, oc := range outcomes {
		e := reportEntry{ID: oc.Item.ID, Branch: branchName(oc.Item.Branch), Kind: Kind(oc.Err)}
		if oc.Err != nil {
			e.Error = oc.Err.Error()
		} else {
			res := oc.Result
			e.Distance, e.Euclid = &res.Distance, &res.Euclid
			e.Correction, e.Radicand = &res.Correction, &res.Radicand
		}
		rep.Results = append(rep.Results, e)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("WriteReport: %w", err)
	}

	return enc.Close()
}

// branchName normalises an item branch for the report; unparseable names
// are echoed unchanged.
func branchName(s string) string {
	it := Item{Branch: s}
	in, err := it.Input()
	if err != nil {
		return s
	}

	return in.Branch.String()
}
