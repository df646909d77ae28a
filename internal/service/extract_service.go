package service

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExtractService pulls plain text out of uploaded pitch deck files.
// Supported formats: .pdf (via go-fitz) and .pptx (zipped slide XML).
type ExtractService struct {
	logger *zap.Logger
}

func NewExtractService(logger *zap.Logger) *ExtractService {
	return &ExtractService{logger: logger}
}

// SupportedExtension reports whether the file extension can be processed.
func (s *ExtractService) SupportedExtension(fileName string) bool {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf", ".pptx":
		return true
	}
	return false
}

// ExtractText extracts text from a deck file on disk.
func (s *ExtractService) ExtractText(ctx context.Context, filePath string) (string, error) {
	var text string
	var err error

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".pdf":
		text, err = s.extractTextFromPDF(filePath)
	case ".pptx":
		text, err = s.extractTextFromPPTX(filePath)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(sanitizeUTF8(text))
	if text == "" {
		return "", ErrNoTextExtracted
	}

	s.logger.Info("Text extraction completed",
		zap.String("file", filePath),
		zap.Int("text_length", len(text)),
	)

	return text, nil
}

// ExtractFromReader spools the uploaded content to a temporary file and
// extracts from there; both go-fitz and archive/zip need a seekable file.
func (s *ExtractService) ExtractFromReader(ctx context.Context, reader io.Reader, fileName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !s.SupportedExtension(fileName) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	tmpPath := filepath.Join(os.TempDir(), "deck-"+uuid.New().String()+ext)
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmpFile, reader); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to spool upload: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to flush temp file: %w", err)
	}

	return s.ExtractText(ctx, tmpPath)
}

// extractTextFromPDF extracts text from all pages using go-fitz. Pages that
// fail to decode are skipped with a warning rather than aborting the whole
// document.
func (s *ExtractService) extractTextFromPDF(pdfPath string) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var textBuilder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.String("file", pdfPath),
				zap.Error(err),
			)
			continue
		}
		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n")
		}
	}

	return textBuilder.String(), nil
}

// slideXML mirrors the fragment of the PresentationML schema we care
// about: every <a:t> element holds one text run.
type slideXML struct {
	Texts []string `xml:"cSld>spTree>sp>txBody>p>r>t"`
}

// extractTextFromPPTX reads slide text out of the pptx zip container.
// Slides are processed in numeric order and each run is prefixed with its
// slide number, matching the PDF page layout of the output.
func (s *ExtractService) extractTextFromPPTX(pptxPath string) (string, error) {
	archive, err := zip.OpenReader(pptxPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PPTX: %w", err)
	}
	defer archive.Close()

	type slideFile struct {
		num  int
		file *zip.File
	}
	var slides []slideFile
	for _, f := range archive.File {
		name := f.Name
		if !strings.HasPrefix(name, "ppt/slides/slide") || !strings.HasSuffix(name, ".xml") {
			continue
		}
		numStr := strings.TrimSuffix(strings.TrimPrefix(name, "ppt/slides/slide"), ".xml")
		num, err := strconv.Atoi(numStr)
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{num: num, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var runs []string
	for _, slide := range slides {
		rc, err := slide.file.Open()
		if err != nil {
			s.logger.Warn("Failed to open slide",
				zap.Int("slide", slide.num),
				zap.Error(err),
			)
			continue
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}

		var parsed slideXML
		if err := xml.Unmarshal(data, &parsed); err != nil {
			s.logger.Warn("Failed to parse slide XML",
				zap.Int("slide", slide.num),
				zap.Error(err),
			)
			continue
		}

		for _, t := range parsed.Texts {
			if strings.TrimSpace(t) == "" {
				continue
			}
			runs = append(runs, fmt.Sprintf("[Slide %d] %s", slide.num, t))
		}
	}

	return strings.Join(runs, "\n"), nil
}
