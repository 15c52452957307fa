// Package diffview renders data trees as YAML text and computes
// line-oriented change previews between two trees.  The catalog CLI
// uses it to show what a pending diff would change before saving.
package diffview

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/crateful/wirecat/ir"
)

// Render returns the YAML text form of a tree.
func Render(y *ir.Node) (string, error) {
	out, err := yaml.Marshal(ir.ToAny(y))
	if err != nil {
		return "", fmt.Errorf("render tree: %w", err)
	}
	return string(out), nil
}

// Line is one line of a change preview.
type Line struct {
	Op   Op
	Text string
}

type Op int

const (
	Keep Op = iota
	Del
	Ins
)

func (op Op) prefix() string {
	switch op {
	case Del:
		return "- "
	case Ins:
		return "+ "
	default:
		return "  "
	}
}

// Lines computes a line diff between the YAML forms of two trees.
func Lines(from, to *ir.Node) ([]Line, error) {
	fromText, err := Render(from)
	if err != nil {
		return nil, err
	}
	toText, err := Render(to)
	if err != nil {
		return nil, err
	}
	dmp := diffmatchpatch.New()
	a, b, lineIndex := dmp.DiffLinesToChars(fromText, toText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineIndex)

	var res []Line
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Del
		case diffmatchpatch.DiffInsert:
			op = Ins
		default:
			op = Keep
		}
		for _, text := range strings.SplitAfter(d.Text, "\n") {
			if text == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(text, "\n")})
		}
	}
	return res, nil
}

// Changed reports whether the two trees render differently.
func Changed(from, to *ir.Node) bool {
	return !ir.Equal(from, to)
}

var (
	delColor = color.New(color.FgRed)
	insColor = color.New(color.FgGreen)
)

// Write writes a change preview to w, one prefixed line per rendered
// line.  With colorize set, deletions print red and insertions green.
func Write(w io.Writer, from, to *ir.Node, colorize bool) error {
	lines, err := Lines(from, to)
	if err != nil {
		return err
	}
	for _, line := range lines {
		text := line.Op.prefix() + line.Text
		if colorize {
			switch line.Op {
			case Del:
				text = delColor.Sprint(text)
			case Ins:
				text = insColor.Sprint(text)
			}
		}
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}
