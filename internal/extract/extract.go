package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// ErrNoText signals that no text could be derived from the file. Callers
// treat it as "analysis unavailable", never as a fatal failure.
var ErrNoText = errors.New("no text available")

// File reads the file at path and returns its best-effort plain text.
// The source file is never mutated or moved; a single attempt is made.
func File(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrNoText, filepath.Base(path), err)
	}
	return Bytes(data, strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")))
}

// Bytes extracts text from an in-memory payload based on the extension
// (lowercase, without dot).
func Bytes(data []byte, ext string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrNoText)
	}

	var (
		text string
		err  error
	)
	switch ext {
	case "pdf":
		text, err = extractPDF(data)
	case "docx":
		text, err = extractDOCX(data)
	case "txt":
		text = string(data)
	case "rtf":
		text = stripRTF(string(data))
	default:
		return "", fmt.Errorf("%w: unsupported format %q", ErrNoText, ext)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoText, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: extracted text empty", ErrNoText)
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	readerAt := bytes.NewReader(data)
	zr, err := zip.NewReader(readerAt, int64(len(data)))
	if err != nil {
		return "", err
	}

	var docFile *zip.File
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		if name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", errors.New("document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	return stripDocxXML(string(raw)), nil
}

func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

// stripRTF drops RTF control words and groups, keeping the visible text.
// Best effort: complex documents degrade to whatever readable runs remain.
func stripRTF(raw string) string {
	var buf strings.Builder
	i := 0
	for i < len(raw) {
		ch := raw[i]
		switch ch {
		case '\\':
			i++
			// \'" hex escape
			if i < len(raw) && raw[i] == '\'' {
				i += 3
				continue
			}
			// control word: letters then optional numeric parameter
			start := i
			for i < len(raw) && unicode.IsLetter(rune(raw[i])) {
				i++
			}
			word := raw[start:i]
			for i < len(raw) && (raw[i] == '-' || unicode.IsDigit(rune(raw[i]))) {
				i++
			}
			if i < len(raw) && raw[i] == ' ' {
				i++
			}
			if word == "par" || word == "line" {
				buf.WriteByte('\n')
			}
		case '{', '}':
			i++
		case '\r', '\n':
			i++
		default:
			buf.WriteByte(ch)
			i++
		}
	}
	return buf.String()
}
