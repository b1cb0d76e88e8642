// Package enrichment parses and validates enrichment files: batches of
// pattern summaries exported for a single category and edited by hand
// before they are merged back into the corpus.
//
// Parsing builds a typed File and collects ParseError values. Validation
// runs on the parsed File and never re-reads the source text, so the two
// kinds of problem stay separate.
package enrichment

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/pthm/scenariolint/internal/model"
)

// File is a parsed enrichment file.
type File struct {
	Path     string
	Header   Header
	Sections []Section
	Errors   []ParseError
}

// Header is the three-line preamble of an enrichment file.
type Header struct {
	Category   string
	SourceFile string
	// Declared is the scenario count stated by the header; -1 when the
	// header line was missing or unreadable.
	Declared int
}

// Section is the enrichment for one unit.
type Section struct {
	ID    string
	Title string
	Line  int
	// Block is nil when the section has no readable enrichment block.
	Block     *Block
	BlockLine int
}

// Block is the structured enrichment data of a section.
type Block struct {
	CategoryBreakdown []model.CategoryBreakdown `yaml:"category_breakdown"`
	OverallInsight    string                    `yaml:"overall_insight"`
	KeyPatterns       []model.KeyPattern        `yaml:"key_patterns"`
}

// Summary returns the block as the pattern summary it will become.
func (b *Block) Summary() *model.PatternSummary {
	return &model.PatternSummary{
		CategoryBreakdown: b.CategoryBreakdown,
		OverallInsight:    b.OverallInsight,
		KeyPatterns:       b.KeyPatterns,
	}
}

// ParseError is a problem reading the file's structure.
type ParseError struct {
	Line int
	Msg  string
}

func (e ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

const headerLines = 3

var headerFields = [headerLines]string{"Category", "Source file", "Scenarios included"}

// sectionID matches the back-ticked unit identifier in a section heading.
var sectionID = regexp.MustCompile("`([A-Za-z]+-[0-9A-Za-z-]+)`")

// ParseFile reads and parses an enrichment file. Only the read itself can
// fail; structural problems are recorded on the File.
func ParseFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading enrichment file: %w", err)
	}
	return Parse(path, content), nil
}

// Parse parses the content of an enrichment file.
func Parse(path string, content []byte) *File {
	f := &File{Path: path, Header: Header{Declared: -1}}
	f.parseHeader(content)
	f.parseBody(content)
	return f
}

func (f *File) errorf(line int, format string, args ...any) {
	f.Errors = append(f.Errors, ParseError{Line: line, Msg: fmt.Sprintf(format, args...)})
}

func (f *File) parseHeader(content []byte) {
	lines := strings.SplitN(string(content), "\n", headerLines+1)
	for i, name := range headerFields {
		lineNo := i + 1
		if i >= len(lines) {
			f.errorf(lineNo, "missing header line %q", "# "+name+":")
			continue
		}
		value, ok := headerValue(lines[i], name)
		if !ok {
			f.errorf(lineNo, "expected header line %q", "# "+name+": ...")
			continue
		}
		switch i {
		case 0:
			f.Header.Category = value
		case 1:
			f.Header.SourceFile = value
		case 2:
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				f.errorf(lineNo, "scenario count %q is not a number", value)
				continue
			}
			f.Header.Declared = n
		}
	}
}

func headerValue(line, name string) (string, bool) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, "#")
	if !ok {
		return "", false
	}
	rest, ok = strings.CutPrefix(strings.TrimSpace(rest), name+":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(rest), true
}

// parseBody walks the markdown document. A heading that carries a
// back-ticked identifier opens a section; any other heading closes it. The
// first fenced code block inside a section is its enrichment block.
func (f *File) parseBody(content []byte) {
	doc := goldmark.New().Parser().Parse(text.NewReader(content))

	var current *Section
	closeSection := func() {
		if current != nil {
			if current.Block == nil && current.BlockLine == 0 {
				f.errorf(current.Line, "section `%s` has no enrichment block", current.ID)
			}
			f.Sections = append(f.Sections, *current)
			current = nil
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			closeSection()
			title := inlineText(node, content)
			line := lineOf(node, content)
			if line <= headerLines {
				return ast.WalkSkipChildren, nil
			}
			m := sectionID.FindStringSubmatch(headingSource(node, content))
			if m == nil {
				return ast.WalkSkipChildren, nil
			}
			current = &Section{ID: m[1], Title: strings.TrimSpace(title), Line: line}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			if current == nil || current.BlockLine != 0 {
				return ast.WalkSkipChildren, nil
			}
			current.BlockLine = lineOf(node, content)
			if current.BlockLine == 0 {
				// An empty fence has no content lines to locate.
				current.BlockLine = current.Line + 1
			}
			block, err := decodeBlock(rawLines(node, content))
			if err != nil {
				f.errorf(current.BlockLine, "section `%s`: %v", current.ID, err)
				return ast.WalkSkipChildren, nil
			}
			current.Block = block
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	closeSection()
}

var errEmptyBlock = errors.New("enrichment block is empty")

func decodeBlock(raw []byte) (*Block, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var b Block
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errEmptyBlock
		}
		return nil, fmt.Errorf("invalid enrichment block: %w", err)
	}
	return &b, nil
}

// lineOf returns the 1-based line of the node's first content line, or 0.
func lineOf(n ast.Node, source []byte) int {
	if n.Lines().Len() == 0 {
		return 0
	}
	seg := n.Lines().At(0)
	return bytes.Count(source[:seg.Start], []byte("\n")) + 1
}

func rawLines(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

// headingSource returns the raw heading text, back-ticks included.
func headingSource(n ast.Node, source []byte) string {
	return string(rawLines(n, source))
}

// inlineText concatenates the text content of n's inline children.
func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.WriteString(inlineText(c, source))
	}
	return sb.String()
}
