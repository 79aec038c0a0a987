// Package loader reads HR source files into documents for indexing.
package loader

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/xuri/excelize/v2"

	"hrdesk/internal/domain"
)

// Load reads a single file into a document. The file extension selects the
// extraction strategy; unsupported extensions return an error.
func Load(path string) (domain.Document, error) {
	var content string
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		content, err = loadText(path)
	case ".pdf":
		content, err = loadPDF(path)
	case ".xlsx", ".xls":
		content, err = loadSpreadsheet(path)
	default:
		return domain.Document{}, fmt.Errorf("unsupported document type: %s", path)
	}
	if err != nil {
		return domain.Document{}, fmt.Errorf("loading %s: %w", path, err)
	}
	return domain.Document{
		ID:      hashString(path),
		Path:    path,
		Source:  filepath.Base(path),
		Content: content,
	}, nil
}

// LoadDirs walks the given directories and loads every supported file.
// Unsupported files are skipped silently; unreadable supported files fail.
func LoadDirs(dirs []string) ([]domain.Document, error) {
	var documents []domain.Document
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !supported(path) {
				return nil
			}
			doc, err := Load(path)
			if err != nil {
				return err
			}
			documents = append(documents, doc)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return documents, nil
}

func supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md", ".pdf", ".xlsx", ".xls":
		return true
	}
	return false
}

func loadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func loadPDF(path string) (string, error) {
	f, rdr, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := rdr.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, b); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// loadSpreadsheet flattens every row into a "header: value | header: value"
// line so tabular data (holiday calendars, org charts) stays searchable as
// plain text.
func loadSpreadsheet(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var sb strings.Builder
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", err
		}
		if len(rows) == 0 {
			continue
		}
		header := rows[0]
		for _, row := range rows[1:] {
			var cells []string
			for i, cell := range row {
				if cell == "" {
					continue
				}
				name := fmt.Sprintf("col%d", i+1)
				if i < len(header) && header[i] != "" {
					name = header[i]
				}
				cells = append(cells, name+": "+cell)
			}
			if len(cells) > 0 {
				sb.WriteString(strings.Join(cells, " | "))
				sb.WriteString("\n")
			}
		}
	}
	return sb.String(), nil
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
