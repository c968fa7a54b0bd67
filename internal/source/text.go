package source

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultPDFTimeout bounds a single pdftotext invocation.
const DefaultPDFTimeout = 2 * time.Minute

// PDFOptions configures PDF text extraction.
type PDFOptions struct {
	// Tool forces the external pdftotext executable. Empty reads the file in process
	// and falls back to "pdftotext" on PATH when that yields no text.
	Tool    string
	Timeout time.Duration
}

// ReadPDFText extracts the text of every page of a PDF.
func ReadPDFText(ctx context.Context, path string, opts PDFOptions) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("pdf path required")
	}
	if tool := strings.TrimSpace(opts.Tool); tool != "" {
		return runPdftotext(ctx, tool, path, opts.Timeout)
	}

	text, err := readPDFPages(ctx, path)
	if err == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}
	if _, lookErr := exec.LookPath("pdftotext"); lookErr != nil {
		if err != nil {
			return "", err
		}
		return text, nil
	}
	return runPdftotext(ctx, "pdftotext", path, opts.Timeout)
}

func runPdftotext(ctx context.Context, tool, path string, timeout time.Duration) (string, error) {
	resolved, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH: %w", tool, err)
	}
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "quizdeck_pdftotext_*")
	if err != nil {
		return "", fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	outPath := filepath.Join(tmpDir, "out.txt")
	cmd := exec.CommandContext(callCtx, resolved, "-enc", "UTF-8", "-q", path, outPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if s := strings.TrimSpace(stderr.String()); s != "" {
			return "", fmt.Errorf("pdftotext: %w; stderr=%s", err, s)
		}
		return "", fmt.Errorf("pdftotext: %w", err)
	}

	b, err := os.ReadFile(outPath)
	if err != nil {
		return "", fmt.Errorf("read pdftotext output: %w", err)
	}
	return string(b), nil
}

// ReadText loads an already-extracted text file.
func ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read text: %w", err)
	}
	return string(b), nil
}

// SplitLines splits extracted text into lines. Form feeds between pages count as breaks.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\f", "\n")
	return strings.Split(text, "\n")
}
