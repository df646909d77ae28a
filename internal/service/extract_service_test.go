package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const slideTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"
       xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
  <p:cSld>
    <p:spTree>
      <p:sp>
        <p:txBody>
          <a:p><a:r><a:t>%TEXT%</a:t></a:r></a:p>
        </p:txBody>
      </p:sp>
    </p:spTree>
  </p:cSld>
</p:sld>`

// writeTestPPTX builds a minimal pptx container with one text run per
// slide, in the given order of zip entries.
func writeTestPPTX(t *testing.T, slides map[string]string) string {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, text := range slides {
		f, err := w.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write([]byte(strings.ReplaceAll(slideTemplate, "%TEXT%", text))); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractTextFromPPTX(t *testing.T) {
	svc := NewExtractService(zap.NewNop())
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide2.xml": "Market size is $10B",
		"ppt/slides/slide1.xml": "Acme Robotics pitch",
		"ppt/slides/slide3.xml": "Raising $5M seed",
	})

	text, err := svc.ExtractText(context.Background(), path)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}

	want := "[Slide 1] Acme Robotics pitch\n[Slide 2] Market size is $10B\n[Slide 3] Raising $5M seed"
	if text != want {
		t.Errorf("extracted text:\n%s\nwant:\n%s", text, want)
	}
}

func TestExtractTextFromPPTXSortsSlidesNumerically(t *testing.T) {
	svc := NewExtractService(zap.NewNop())
	// slide10 must sort after slide2, not between slide1 and slide2.
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide10.xml": "tenth",
		"ppt/slides/slide1.xml":  "first",
		"ppt/slides/slide2.xml":  "second",
	})

	text, err := svc.ExtractText(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	want := "[Slide 1] first\n[Slide 2] second\n[Slide 10] tenth"
	if text != want {
		t.Errorf("extracted text:\n%s\nwant:\n%s", text, want)
	}
}

func TestExtractTextFromPPTXIgnoresNonSlideEntries(t *testing.T) {
	svc := NewExtractService(zap.NewNop())
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide1.xml":                   "real slide",
		"ppt/notesSlides/notesSlide1.xml":         "speaker notes",
		"ppt/slides/_rels/slide1.xml.rels":        "rels",
		"ppt/slideMasters/slideMaster1.xml":       "master",
		"ppt/slides/slideLayout.xml":              "not numbered",
		"docProps/app.xml":                        "props",
		"ppt/slides/slide1.xml.bak/extra/bad.xml": "junk",
	})

	text, err := svc.ExtractText(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if text != "[Slide 1] real slide" {
		t.Errorf("extracted text = %q, want only the numbered slide run", text)
	}
}

func TestExtractTextEmptyDeck(t *testing.T) {
	svc := NewExtractService(zap.NewNop())
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide1.xml": "   ",
	})

	_, err := svc.ExtractText(context.Background(), path)
	if !errors.Is(err, ErrNoTextExtracted) {
		t.Errorf("ExtractText error = %v, want ErrNoTextExtracted", err)
	}
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	svc := NewExtractService(zap.NewNop())

	_, err := svc.ExtractText(context.Background(), "deck.docx")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ExtractText error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractFromReaderUnsupportedFormat(t *testing.T) {
	svc := NewExtractService(zap.NewNop())

	_, err := svc.ExtractFromReader(context.Background(), strings.NewReader("data"), "deck.txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ExtractFromReader error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestExtractFromReaderSpoolsPPTX(t *testing.T) {
	svc := NewExtractService(zap.NewNop())
	path := writeTestPPTX(t, map[string]string{
		"ppt/slides/slide1.xml": "uploaded deck",
	})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	text, err := svc.ExtractFromReader(context.Background(), bytes.NewReader(data), "upload.pptx")
	if err != nil {
		t.Fatalf("ExtractFromReader failed: %v", err)
	}
	if text != "[Slide 1] uploaded deck" {
		t.Errorf("extracted text = %q", text)
	}
}

func TestSupportedExtension(t *testing.T) {
	svc := NewExtractService(zap.NewNop())
	tests := []struct {
		fileName string
		want     bool
	}{
		{"deck.pdf", true},
		{"deck.PDF", true},
		{"deck.pptx", true},
		{"deck.PPTX", true},
		{"deck.ppt", false},
		{"deck.docx", false},
		{"deck", false},
	}
	for _, tt := range tests {
		if got := svc.SupportedExtension(tt.fileName); got != tt.want {
			t.Errorf("SupportedExtension(%q) = %v, want %v", tt.fileName, got, tt.want)
		}
	}
}

func TestSanitizeUTF8(t *testing.T) {
	valid := "Revenue grew 3x at café µservices"
	if got := sanitizeUTF8(valid); got != valid {
		t.Errorf("valid string modified: %q", got)
	}

	broken := "abc\xff\xfedef"
	if got := sanitizeUTF8(broken); got != "abcdef" {
		t.Errorf("sanitizeUTF8(%q) = %q, want abcdef", broken, got)
	}
}
