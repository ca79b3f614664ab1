// Package etree extracts text from Office Open XML documents using etree.
package etree

import (
	"archive/zip"
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/salience"
)

// documentPart is the archive entry holding the main document body.
const documentPart = "word/document.xml"

// Ensure DocxExtractor implements salience.TextExtractor at compile time.
var _ salience.TextExtractor = (*DocxExtractor)(nil)

// DocxExtractor extracts the text of .docx files. Each paragraph becomes a
// line, in document order. Paragraphs inside tables and text boxes are
// included.
type DocxExtractor struct{}

// NewDocxExtractor creates a new DocxExtractor.
func NewDocxExtractor() *DocxExtractor {
	return &DocxExtractor{}
}

// ExtractText returns the text of the .docx file at path.
func (e *DocxExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	archive, err := zip.OpenReader(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", salience.Errorf(salience.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return "", salience.Errorf(salience.EINVALID, "not a docx archive: %s: %v", path, err)
	}
	defer archive.Close()

	part, err := archive.Open(documentPart)
	if err != nil {
		return "", salience.Errorf(salience.EINVALID, "docx has no %s: %s", documentPart, path)
	}
	defer part.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(part); err != nil {
		return "", salience.Errorf(salience.EINVALID, "parsing %s: %v", documentPart, err)
	}

	body := doc.FindElement("//w:body")
	if body == nil {
		return "", salience.Errorf(salience.EINVALID, "docx has no document body: %s", path)
	}

	var paragraphs []string
	collectParagraphs(body, &paragraphs)

	return strings.Join(paragraphs, "\n"), nil
}

// collectParagraphs appends the text of every w:p below el in document
// order.
func collectParagraphs(el *etree.Element, out *[]string) {
	for _, child := range el.ChildElements() {
		if child.Space == "w" && child.Tag == "p" {
			appendParagraph(child, out)
			continue
		}
		collectParagraphs(child, out)
	}
}

// appendParagraph appends the text of p followed by the paragraphs nested
// in it, such as the content of text boxes.
func appendParagraph(p *etree.Element, out *[]string) {
	var sb strings.Builder
	var nested []string
	writeRuns(p, &sb, &nested)
	*out = append(*out, sb.String())
	*out = append(*out, nested...)
}

func writeRuns(el *etree.Element, sb *strings.Builder, nested *[]string) {
	for _, child := range el.ChildElements() {
		if child.Space != "w" {
			writeRuns(child, sb, nested)
			continue
		}
		switch child.Tag {
		case "t":
			sb.WriteString(child.Text())
		case "tab":
			sb.WriteByte('\t')
		case "br", "cr":
			sb.WriteByte('\n')
		case "pPr", "rPr", "instrText", "delText":
			// Formatting, field codes and tracked deletions are not content.
		case "p":
			appendParagraph(child, nested)
		case "txbxContent":
			collectParagraphs(child, nested)
		default:
			writeRuns(child, sb, nested)
		}
	}
}
