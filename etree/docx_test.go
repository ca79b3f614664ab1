package etree_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/salience"
	"github.com/fwojciec/salience/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p>
  <w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr>
  <w:r><w:rPr><w:b/></w:rPr><w:t>Acme</w:t></w:r>
  <w:r><w:t xml:space="preserve"> Cloud</w:t></w:r>
</w:p>
<w:p><w:r><w:t>Price</w:t><w:tab/><w:t>$9</w:t></w:r></w:p>
<w:p/>
<w:tbl>
  <w:tr><w:tc><w:p><w:r><w:t>Secure storage</w:t></w:r></w:p></w:tc></w:tr>
</w:tbl>
<w:p><w:r><w:t>Line one</w:t><w:br/><w:t>Line two</w:t></w:r></w:p>
<w:sectPr/>
</w:body>
</w:document>`

func writeDocx(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range parts {
		part, err := w.Create(name)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return path
}

func TestDocxExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("joins paragraphs with newlines", func(t *testing.T) {
		t.Parallel()

		path := writeDocx(t, map[string]string{"word/document.xml": documentXML})

		text, err := etree.NewDocxExtractor().ExtractText(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "Acme Cloud\nPrice\t$9\n\nSecure storage\nLine one\nLine two", text)
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewDocxExtractor().ExtractText(context.Background(), filepath.Join(t.TempDir(), "missing.docx"))

		require.Error(t, err)
		assert.Equal(t, salience.ENOTFOUND, salience.ErrorCode(err))
	})

	t.Run("returns EINVALID for non-archive file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "fake.docx")
		require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

		_, err := etree.NewDocxExtractor().ExtractText(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, salience.EINVALID, salience.ErrorCode(err))
	})

	t.Run("returns EINVALID for legacy binary doc", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "legacy.doc")
		ole := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0, 0, 0, 0}
		require.NoError(t, os.WriteFile(path, ole, 0644))

		_, err := etree.NewDocxExtractor().ExtractText(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, salience.EINVALID, salience.ErrorCode(err))
		assert.Contains(t, salience.ErrorMessage(err), "not a docx archive")
	})

	t.Run("returns EINVALID when document part is missing", func(t *testing.T) {
		t.Parallel()

		path := writeDocx(t, map[string]string{"word/styles.xml": "<w:styles/>"})

		_, err := etree.NewDocxExtractor().ExtractText(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, salience.EINVALID, salience.ErrorCode(err))
	})

	t.Run("returns EINVALID for malformed XML", func(t *testing.T) {
		t.Parallel()

		path := writeDocx(t, map[string]string{"word/document.xml": "<w:document><w:body attr=></w:body></w:document>"})

		_, err := etree.NewDocxExtractor().ExtractText(context.Background(), path)

		require.Error(t, err)
		assert.Equal(t, salience.EINVALID, salience.ErrorCode(err))
	})
}
