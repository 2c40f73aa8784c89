// Package input loads row data and layout configuration for the CLI.
// Datasets arrive as CSV, TSV, JSON, or YAML; blank lines (CSV/TSV) and
// top-level nesting (JSON/YAML) mark row-group boundaries.
package input

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/textgrid/pkg/textgrid"
)

// Format identifies a dataset encoding.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatTSV  Format = "tsv"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatTSV:
		return FormatTSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want csv, tsv, json, or yaml)", name)
}

// Dataset is parsed row data ready for table assembly. Columns holds the
// column names discovered in keyed input (JSON/YAML objects); it is empty
// for positional input (CSV/TSV), where the caller decides whether the
// first row is a header.
type Dataset struct {
	Columns []string
	Groups  []textgrid.RowGroup
}

// ReadDataset parses r according to format.
func ReadDataset(r io.Reader, format Format) (Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Dataset{}, fmt.Errorf("read input: %w", err)
	}
	switch format {
	case FormatCSV:
		return readSeparated(string(data), ',')
	case FormatTSV:
		return readSeparated(string(data), '\t')
	case FormatJSON:
		var root any
		if err := json.Unmarshal(data, &root); err != nil {
			return Dataset{}, fmt.Errorf("invalid JSON: %w", err)
		}
		return datasetFromTree(root)
	case FormatYAML:
		var root any
		if err := yaml.Unmarshal(data, &root); err != nil {
			return Dataset{}, fmt.Errorf("invalid YAML: %w", err)
		}
		return datasetFromTree(root)
	}
	return Dataset{}, fmt.Errorf("unknown format %q", format)
}

// readSeparated parses delimiter-separated text. Blank lines separate row
// groups; the csv reader itself skips empty lines, so grouping is done by
// splitting the raw text first.
func readSeparated(text string, comma rune) (Dataset, error) {
	var groups []textgrid.RowGroup
	for _, chunk := range splitOnBlankLines(text) {
		rd := csv.NewReader(strings.NewReader(chunk))
		rd.Comma = comma
		rd.FieldsPerRecord = -1
		rows, err := rd.ReadAll()
		if err != nil {
			return Dataset{}, fmt.Errorf("parse rows: %w", err)
		}
		if len(rows) == 0 {
			continue
		}
		group := make(textgrid.RowGroup, len(rows))
		copy(group, rows)
		groups = append(groups, group)
	}
	return Dataset{Groups: groups}, nil
}

func splitOnBlankLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var chunks []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			chunks = append(chunks, strings.Join(cur, "\n"))
			cur = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return chunks
}

// datasetFromTree converts parsed JSON/YAML into row groups.
// Accepted shapes:
//   - array of objects: one group, columns from the sorted union of keys
//   - array of arrays of objects: one group per inner array
//   - array of arrays of scalars: one group of positional rows
func datasetFromTree(root any) (Dataset, error) {
	list, ok := root.([]any)
	if !ok {
		return Dataset{}, fmt.Errorf("top-level value must be an array, got %T", root)
	}
	if len(list) == 0 {
		return Dataset{}, nil
	}

	switch list[0].(type) {
	case map[string]any:
		cols, group, err := objectGroup(list)
		if err != nil {
			return Dataset{}, err
		}
		return Dataset{Columns: cols, Groups: []textgrid.RowGroup{group}}, nil

	case []any:
		return nestedGroups(list)

	default:
		return Dataset{}, fmt.Errorf("unsupported row type %T", list[0])
	}
}

func nestedGroups(list []any) (Dataset, error) {
	// Peek at the first non-empty inner array to decide between
	// grouped objects and positional rows.
	for _, item := range list {
		inner, ok := item.([]any)
		if !ok {
			return Dataset{}, fmt.Errorf("mixed top-level array: expected nested arrays, got %T", item)
		}
		if len(inner) == 0 {
			continue
		}
		if _, isObj := inner[0].(map[string]any); isObj {
			return groupedObjectDataset(list)
		}
		return positionalDataset(list)
	}
	return Dataset{}, nil
}

func groupedObjectDataset(list []any) (Dataset, error) {
	// Column set is the sorted union of keys across all groups so every
	// group shares one column order.
	keySet := map[string]struct{}{}
	for _, item := range list {
		inner, ok := item.([]any)
		if !ok {
			return Dataset{}, fmt.Errorf("mixed top-level array: expected nested arrays, got %T", item)
		}
		for _, row := range inner {
			obj, ok := row.(map[string]any)
			if !ok {
				return Dataset{}, fmt.Errorf("mixed group: expected objects, got %T", row)
			}
			for k := range obj {
				keySet[k] = struct{}{}
			}
		}
	}
	cols := make([]string, 0, len(keySet))
	for k := range keySet {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	groups := make([]textgrid.RowGroup, 0, len(list))
	for _, item := range list {
		inner := item.([]any) // validated above
		group := make(textgrid.RowGroup, 0, len(inner))
		for _, row := range inner {
			group = append(group, objectRow(row.(map[string]any), cols))
		}
		groups = append(groups, group)
	}
	return Dataset{Columns: cols, Groups: groups}, nil
}

func positionalDataset(list []any) (Dataset, error) {
	group := make(textgrid.RowGroup, 0, len(list))
	for _, item := range list {
		inner, ok := item.([]any)
		if !ok {
			return Dataset{}, fmt.Errorf("mixed top-level array: expected nested arrays, got %T", item)
		}
		row := make([]string, len(inner))
		for i, cell := range inner {
			row[i] = Stringify(cell)
		}
		group = append(group, row)
	}
	return Dataset{Groups: []textgrid.RowGroup{group}}, nil
}

func objectGroup(list []any) ([]string, textgrid.RowGroup, error) {
	keySet := map[string]struct{}{}
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, nil, fmt.Errorf("mixed top-level array: expected objects, got %T", item)
		}
		for k := range obj {
			keySet[k] = struct{}{}
		}
	}
	cols := make([]string, 0, len(keySet))
	for k := range keySet {
		cols = append(cols, k)
	}
	sort.Strings(cols)

	group := make(textgrid.RowGroup, 0, len(list))
	for _, item := range list {
		group = append(group, objectRow(item.(map[string]any), cols))
	}
	return cols, group, nil
}

func objectRow(obj map[string]any, cols []string) []string {
	row := make([]string, len(cols))
	for i, col := range cols {
		if v, ok := obj[col]; ok {
			row[i] = Stringify(v)
		}
	}
	return row
}

// Stringify renders a decoded value as a single table cell. Scalars print
// plainly; nested maps and slices collapse to compact JSON so rows stay
// one line tall.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return flattenControlChars(t)
	case bool, int, int64, float64:
		return fmt.Sprint(t)
	case map[string]any, []any:
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", t)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() { //nolint:exhaustive // only containers need JSON marshaling
		case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		}
		return fmt.Sprint(v)
	}
}

// flattenControlChars keeps cell content single-line.
func flattenControlChars(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", " ")
	return s
}
