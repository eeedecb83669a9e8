package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>The Battle of Waterloo</w:t></w:r><w:r><w:t xml:space="preserve"> was fought in 1815.</w:t></w:r></w:p>
    <w:p><w:r><w:t>It ended   the war.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func writeDOCX(t *testing.T, path string, files map[string]string) {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
}

func TestReadFilePlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.txt")
	require.NoError(t, os.WriteFile(path, []byte("Line one.\n\n  Line   two."), 0o600))

	text, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Line one.\n\n  Line   two.", text, "plain text is passed through untouched")
}

func TestReadFileDOCX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "essay.docx")
	writeDOCX(t, path, map[string]string{"word/document.xml": documentXML})

	text, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "The Battle of Waterloo was fought in 1815.\nIt ended the war.", text)
}

func TestReadFileDOCXErrors(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.docx")
	writeDOCX(t, missing, map[string]string{"word/styles.xml": "<styles/>"})
	_, err := ReadFile(missing)
	assert.ErrorContains(t, err, "word/document.xml not found")

	empty := filepath.Join(dir, "empty.docx")
	writeDOCX(t, empty, map[string]string{"word/document.xml": `<w:document xmlns:w="x"><w:body/></w:document>`})
	_, err = ReadFile(empty)
	assert.ErrorIs(t, err, ErrNoText)

	notZip := filepath.Join(dir, "broken.docx")
	require.NoError(t, os.WriteFile(notZip, []byte("not a zip"), 0o600))
	_, err = ReadFile(notZip)
	assert.ErrorContains(t, err, "open docx zip")
}

func TestReadFileInvalidPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paper.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text pretending to be a pdf"), 0o600))

	_, err := ReadFile(path)
	assert.ErrorContains(t, err, "open pdf")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadPlainTextReportsNoPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# Notes"), 0o600))

	doc, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, &Document{Text: "# Notes"}, doc)
}

func TestReadFileDOCXTabsAndBreaks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.docx")
	writeDOCX(t, path, map[string]string{"word/document.xml": `<w:document xmlns:w="x"><w:body>` +
		`<w:p><w:r><w:t>Name</w:t><w:tab/><w:t>Year</w:t><w:br/><w:t>Waterloo</w:t></w:r></w:p>` +
		`<w:p/>` +
		`<w:p><w:r><w:t>  </w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>End</w:t></w:r></w:p>` +
		`</w:body></w:document>`})

	text, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Name Year Waterloo\nEnd", text, "empty paragraphs are dropped")
}

// fakePages serves page texts by index. A page missing from texts has no
// content stream and a page listed in errs fails to decode.
type fakePages struct {
	texts map[int]string
	errs  map[int]error
}

func (f fakePages) page(i int) (string, bool, error) {
	if err, ok := f.errs[i]; ok {
		return "", true, err
	}
	text, ok := f.texts[i]
	return text, ok, nil
}

func TestCollectPages(t *testing.T) {
	errFont := errors.New("malformed font")

	t.Run("all pages readable", func(t *testing.T) {
		pages := fakePages{texts: map[int]string{1: "First  page.", 2: "\n\nSecond page.\n"}}
		doc, err := collectPages("paper.pdf", 2, pages.page)
		require.NoError(t, err)
		assert.Equal(t, &Document{Text: "First page.\nSecond page.", Pages: 2}, doc)
	})

	t.Run("unreadable pages are counted", func(t *testing.T) {
		pages := fakePages{
			texts: map[int]string{1: "Intro.", 4: "Conclusion."},
			errs:  map[int]error{2: errFont},
		}
		doc, err := collectPages("paper.pdf", 4, pages.page)
		require.NoError(t, err)
		assert.Equal(t, "Intro.\nConclusion.", doc.Text)
		assert.Equal(t, 4, doc.Pages)
		assert.Equal(t, 2, doc.SkippedPages, "page 2 failed and page 3 has no content")
	})

	t.Run("first page error is wrapped when nothing was read", func(t *testing.T) {
		pages := fakePages{errs: map[int]error{2: errFont, 3: errors.New("bad stream")}}
		_, err := collectPages("scan.pdf", 3, pages.page)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoText)
		assert.ErrorIs(t, err, errFont)
		assert.EqualError(t, err,
			"pdf scan.pdf: no extractable text found (3 of 3 pages unreadable): page 2: malformed font")
	})

	t.Run("blank pages without errors", func(t *testing.T) {
		pages := fakePages{texts: map[int]string{1: "   \n\t"}}
		_, err := collectPages("blank.pdf", 1, pages.page)
		assert.ErrorIs(t, err, ErrNoText)
		assert.EqualError(t, err, "pdf blank.pdf: no extractable text found")
	})
}
