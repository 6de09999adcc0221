// Package docx extracts structured paragraph text from DOCX files.
// A DOCX is a ZIP archive; the body text lives in word/document.xml.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/custodia-labs/regcheck-cli/internal/core/domain"
)

// Extract parses raw DOCX bytes into ordered paragraphs.
// Paragraphs that are empty after trimming are dropped so anchors point at
// real content. Returns ErrInvalidInput for bytes that are not a DOCX.
func Extract(raw []byte) ([]domain.Paragraph, error) {
	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return extractParagraphs(reader)
}

// extractParagraphs reads word/document.xml from the archive.
func extractParagraphs(reader *zip.Reader) ([]domain.Paragraph, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, domain.ErrInvalidInput
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, domain.ErrInvalidInput
		}

		return parseDocumentXML(content), nil
	}
	return nil, nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraphXML `xml:"p"`
	} `xml:"body"`
}

type paragraphXML struct {
	Runs []runXML `xml:"r"`
}

type runXML struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML flattens paragraph runs into paragraph text.
func parseDocumentXML(content []byte) []domain.Paragraph {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil
	}

	var paragraphs []domain.Paragraph
	for _, para := range doc.Body.Paragraphs {
		var b strings.Builder
		for _, run := range para.Runs {
			for _, text := range run.Text {
				b.WriteString(text.Content)
			}
		}
		text := strings.TrimSpace(b.String())
		if text == "" {
			continue
		}
		paragraphs = append(paragraphs, domain.Paragraph{
			Index: len(paragraphs),
			Text:  text,
		})
	}
	return paragraphs
}

// coreXML represents the structure of docProps/core.xml.
type coreXML struct {
	Title string `xml:"title"`
}

// Title returns the document title from docProps/core.xml, or "" when the
// archive carries none.
func Title(raw []byte) string {
	reader, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return ""
	}
	for _, file := range reader.File {
		if file.Name != "docProps/core.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			break
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			break
		}

		var core coreXML
		if err := xml.Unmarshal(content, &core); err == nil {
			return strings.TrimSpace(core.Title)
		}
		break
	}
	return ""
}
