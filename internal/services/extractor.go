package services

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type ExtractorService interface {
	ExtractText(filename, contentType string, data []byte) (string, error)
}

type extractorService struct{}

func NewExtractorService() ExtractorService {
	return &extractorService{}
}

// ExtractText turns an uploaded resume into plain text. The document type is
// taken from the filename extension, falling back to the declared content
// type when the extension says nothing.
func (e *extractorService) ExtractText(filename, contentType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: uploaded file is empty", ErrExtraction)
	}

	var (
		text string
		err  error
	)

	switch resolveDocumentType(filename, contentType) {
	case "pdf":
		text, err = extractPDFText(data)
	case "docx":
		text, err = extractDocxText(data)
	case "txt":
		text = string(data)
	default:
		return "", fmt.Errorf("%w: unsupported file type %q", ErrExtraction, filepath.Ext(filename))
	}

	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	text = CleanText(text)
	if text == "" {
		return "", fmt.Errorf("%w: no text content found in document", ErrExtraction)
	}

	return text, nil
}

func resolveDocumentType(filename, contentType string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "pdf"
	case ".docx":
		return "docx"
	case ".txt":
		return "txt"
	}

	switch contentType {
	case "application/pdf":
		return "pdf"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return "docx"
	case "text/plain":
		return "txt"
	}

	return ""
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %v", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages and keep whatever the rest yields
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %v", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// CleanText normalizes extracted text: trims every line and drops the empty
// ones.
func CleanText(text string) string {
	text = strings.TrimSpace(text)

	lines := strings.Split(text, "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
