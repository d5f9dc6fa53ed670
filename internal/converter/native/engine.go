// Package native renders the text of .docx documents to PDF in-process. It
// is a fallback for hosts without LibreOffice: layout, images and tables are
// not preserved.
package native

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/doc_converter/internal/domain"
)

const (
	documentPart = "word/document.xml"

	lineWidth  = 95
	lineHeight = 5.0
	gapHeight  = 3.0
	fontSize   = 10
	margin     = 15
)

type Engine struct{}

func New() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string {
	return "native"
}

func (e *Engine) Supports(format domain.Format) bool {
	return format == domain.FormatPDF
}

func (e *Engine) Convert(ctx context.Context, data []byte, format domain.Format) ([]byte, error) {
	if !e.Supports(format) {
		return nil, fmt.Errorf("%w: native engine cannot produce %q", domain.ErrConversionFailed, format)
	}

	paragraphs, err := Paragraphs(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConversionFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m := maroto.New(config.NewBuilder().
		WithLeftMargin(margin).
		WithTopMargin(margin).
		WithRightMargin(margin).
		Build())

	m.AddRows(rows(paragraphs)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func rows(paragraphs []string) []core.Row {
	style := props.Text{Size: fontSize}

	var rs []core.Row
	for _, p := range paragraphs {
		if strings.TrimSpace(p) == "" {
			rs = append(rs, row.New(gapHeight))
			continue
		}

		for _, line := range wrap(p, lineWidth) {
			rs = append(rs, text.NewRow(lineHeight, line, style))
		}
	}

	return rs
}

// Paragraphs extracts the plain text of every w:p element of a .docx
// payload. Line breaks inside a paragraph start a new entry.
func Paragraphs(data []byte) ([]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("not a docx archive: %w", err)
	}

	f, err := zr.Open(documentPart)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", documentPart, err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)

	var (
		paragraphs []string
		current    strings.Builder
		inPara     bool
		inText     bool
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				current.Reset()
			case "t":
				inText = true
			case "tab":
				current.WriteString("    ")
			case "br", "cr":
				if inPara {
					paragraphs = append(paragraphs, current.String())
					current.Reset()
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
				inPara = false
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

// wrap splits s into lines of at most width runes, breaking on spaces when
// possible.
func wrap(s string, width int) []string {
	var lines []string

	for _, word := range strings.Fields(s) {
		for utf8.RuneCountInString(word) > width {
			r := []rune(word)
			lines = appendWord(lines, string(r[:width]), width)
			word = string(r[width:])
		}
		lines = appendWord(lines, word, width)
	}

	return lines
}

func appendWord(lines []string, word string, width int) []string {
	if len(lines) == 0 {
		return append(lines, word)
	}

	last := lines[len(lines)-1]
	if utf8.RuneCountInString(last)+1+utf8.RuneCountInString(word) > width {
		return append(lines, word)
	}

	lines[len(lines)-1] = last + " " + word
	return lines
}
