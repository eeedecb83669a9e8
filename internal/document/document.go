// Package document extracts plain text from the file formats the CLI accepts.
package document

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText is returned when a document contains no extractable text
var ErrNoText = errors.New("no extractable text found")

// Document is the text extracted from a file
type Document struct {
	Text string
	// Pages and SkippedPages are only set for PDF input. A page is skipped
	// when it has no content stream or its text cannot be decoded.
	Pages        int
	SkippedPages int
}

// Read extracts the text of the file at path. PDF and DOCX files are
// decoded by extension; anything else is read as UTF-8 text.
func Read(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return readPDF(path)
	case ".docx":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		text, err := docxText(raw)
		if err != nil {
			return nil, err
		}
		return &Document{Text: text}, nil
	default:
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return &Document{Text: string(raw)}, nil
	}
}

// ReadFile returns only the text of the file at path
func ReadFile(path string) (string, error) {
	doc, err := Read(path)
	if err != nil {
		return "", err
	}
	return doc.Text, nil
}

func readPDF(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	return collectPages(filepath.Base(path), r.NumPage(), func(i int) (string, bool, error) {
		p := r.Page(i)
		if p.V.IsNull() {
			return "", false, nil
		}
		text, err := p.GetPlainText(nil)
		return text, true, err
	})
}

// pageFunc returns the plain text of page i (1-based). ok is false for
// pages without a content stream.
type pageFunc func(i int) (text string, ok bool, err error)

// collectPages joins the text of pages 1..n. Unreadable pages are counted
// rather than failing the whole file; when nothing could be read the first
// page error is returned alongside ErrNoText.
func collectPages(name string, n int, page pageFunc) (*Document, error) {
	doc := &Document{Pages: n}
	texts := make([]string, 0, n)
	var firstErr error

	for i := 1; i <= n; i++ {
		text, ok, err := page(i)
		switch {
		case err != nil:
			doc.SkippedPages++
			if firstErr == nil {
				firstErr = fmt.Errorf("page %d: %w", i, err)
			}
		case !ok:
			doc.SkippedPages++
		default:
			texts = append(texts, text)
		}
	}

	doc.Text = tidyLines(strings.Join(texts, "\n"))
	if doc.Text != "" {
		return doc, nil
	}
	if firstErr != nil {
		return nil, fmt.Errorf("pdf %s: %w (%d of %d pages unreadable): %w",
			name, ErrNoText, doc.SkippedPages, n, firstErr)
	}
	return nil, fmt.Errorf("pdf %s: %w", name, ErrNoText)
}

// docxText returns the paragraphs of word/document.xml, one per line
func docxText(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	body, err := zr.Open("word/document.xml")
	if errors.Is(err, fs.ErrNotExist) {
		return "", errors.New("word/document.xml not found")
	}
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer body.Close()

	paras, err := paragraphs(xml.NewDecoder(body))
	if err != nil {
		return "", fmt.Errorf("decode document.xml: %w", err)
	}
	if text := tidyLines(strings.Join(paras, "\n")); text != "" {
		return text, nil
	}
	return "", fmt.Errorf("docx: %w", ErrNoText)
}

// paragraphs walks WordprocessingML and returns the text of each w:p.
// Tabs and breaks inside a run become spaces.
func paragraphs(dec *xml.Decoder) ([]string, error) {
	var (
		paras  []string
		cur    strings.Builder
		inText bool
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return paras, nil
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab", "br":
				cur.WriteByte(' ')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paras = append(paras, cur.String())
				cur.Reset()
			}
		case xml.CharData:
			if inText {
				cur.Write(t)
			}
		}
	}
}

// tidyLines collapses whitespace within each line and drops blank lines
func tidyLines(text string) string {
	var kept []string
	for line := range strings.Lines(text) {
		if fields := strings.Fields(line); len(fields) > 0 {
			kept = append(kept, strings.Join(fields, " "))
		}
	}
	return strings.Join(kept, "\n")
}
