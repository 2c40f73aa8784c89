package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/textgrid/pkg/textgrid"
)

// LayoutFile is the on-disk per-column layout schema, accepted as TOML or
// YAML. A minimal file:
//
//	[[columns]]
//	align = "right"
//	marker = "."
//
//	[[columns]]
//	width = 8
//	cut_mark = "~"
type LayoutFile struct {
	Columns []ColumnConfig `toml:"columns" yaml:"columns"`
}

// ColumnConfig configures one column. A nil Width means the column expands
// to its widest cell. Marker enables alignment on the Occurrence-th hit of
// its first rune. HeaderAlign and HeaderCut override the header cell only.
type ColumnConfig struct {
	Width      *int    `toml:"width" yaml:"width"`
	Align      string  `toml:"align" yaml:"align"`
	Marker     string  `toml:"marker" yaml:"marker"`
	Occurrence int     `toml:"occurrence" yaml:"occurrence"`
	CutMark    *string `toml:"cut_mark" yaml:"cut_mark"`

	HeaderAlign string  `toml:"header_align" yaml:"header_align"`
	HeaderCut   *string `toml:"header_cut" yaml:"header_cut"`
}

// LoadLayoutFile reads and parses a layout file, choosing the decoder from
// the file extension (.toml vs .yaml/.yml; anything else tries TOML first).
func LoadLayoutFile(path string) (LayoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutFile{}, fmt.Errorf("load layout: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseLayoutYAML(data)
	case ".toml":
		return parseLayoutTOML(data)
	default:
		lf, err := parseLayoutTOML(data)
		if err == nil {
			return lf, nil
		}
		return parseLayoutYAML(data)
	}
}

func parseLayoutTOML(data []byte) (LayoutFile, error) {
	var lf LayoutFile
	if err := toml.Unmarshal(data, &lf); err != nil {
		return LayoutFile{}, fmt.Errorf("invalid TOML layout: %w", err)
	}
	return lf, nil
}

func parseLayoutYAML(data []byte) (LayoutFile, error) {
	var lf LayoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return LayoutFile{}, fmt.Errorf("invalid YAML layout: %w", err)
	}
	return lf, nil
}

// Specs converts the file into per-column layout specs plus header
// overrides. Overrides is nil when no column customizes its header.
func (lf LayoutFile) Specs() ([]textgrid.LayoutSpec, []textgrid.HeaderSpec, error) {
	specs := make([]textgrid.LayoutSpec, len(lf.Columns))
	overrides := make([]textgrid.HeaderSpec, len(lf.Columns))
	anyOverride := false
	for i, col := range lf.Columns {
		spec, err := col.spec()
		if err != nil {
			return nil, nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		specs[i] = spec

		over, ok, err := col.headerSpec()
		if err != nil {
			return nil, nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		overrides[i] = over
		anyOverride = anyOverride || ok
	}
	if !anyOverride {
		overrides = nil
	}
	return specs, overrides, nil
}

func (c ColumnConfig) spec() (textgrid.LayoutSpec, error) {
	spec := textgrid.DefaultSpec()

	if c.Width != nil {
		if *c.Width < 0 {
			return spec, fmt.Errorf("width must be >= 0, got %d", *c.Width)
		}
		spec.Length = textgrid.Fixed(*c.Width)
	}

	pos, err := parsePosition(c.Align, textgrid.Left)
	if err != nil {
		return spec, err
	}
	spec.Position = pos

	if c.Marker != "" {
		r, size := utf8.DecodeRuneInString(c.Marker)
		if size != len(c.Marker) {
			return spec, fmt.Errorf("marker must be a single character, got %q", c.Marker)
		}
		if c.Occurrence < 0 {
			return spec, fmt.Errorf("occurrence must be >= 0, got %d", c.Occurrence)
		}
		spec.Align = textgrid.AlignAt(r, c.Occurrence)
	} else if c.Occurrence != 0 {
		return spec, fmt.Errorf("occurrence requires a marker")
	}

	if c.CutMark != nil {
		spec.CutMark = cutMarkFor(*c.CutMark)
	}
	return spec, nil
}

func (c ColumnConfig) headerSpec() (textgrid.HeaderSpec, bool, error) {
	var over textgrid.HeaderSpec
	set := false
	if c.HeaderAlign != "" {
		pos, err := parsePosition(c.HeaderAlign, textgrid.Left)
		if err != nil {
			return over, false, fmt.Errorf("header_align: %w", err)
		}
		over.Position = pos
		set = true
	}
	if c.HeaderCut != nil {
		cm := cutMarkFor(*c.HeaderCut)
		over.CutMark = &cm
		set = true
	}
	return over, set, nil
}

// cutMarkFor builds a cut mark from a user string, measuring its display
// width so wide glyphs and multi-rune markers count correctly.
func cutMarkFor(mark string) textgrid.CutMark {
	return textgrid.CutMark{Mark: mark, Width: runewidth.StringWidth(mark)}
}

func parsePosition(name string, fallback textgrid.Position) (textgrid.Position, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return fallback, nil
	case "left":
		return textgrid.Left, nil
	case "right":
		return textgrid.Right, nil
	case "center", "centre":
		return textgrid.Center, nil
	}
	return fallback, fmt.Errorf("unknown alignment %q (want left, right, or center)", name)
}
