package source

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"quizdeck/internal/extract"
	"quizdeck/internal/signal"
)

const documentPart = "word/document.xml"

type docxDocument struct {
	Body struct {
		Paragraphs []docxParagraph `xml:"p"`
	} `xml:"body"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Props *docxRunProps `xml:"rPr"`
	Texts []string      `xml:"t"`
}

type docxRunProps struct {
	Bold      *docxValue   `xml:"b"`
	Highlight *docxValue   `xml:"highlight"`
	Shading   *docxShading `xml:"shd"`
}

type docxValue struct {
	Val string `xml:"val,attr"`
}

type docxShading struct {
	Val   string `xml:"val,attr"`
	Fill  string `xml:"fill,attr"`
	Color string `xml:"color,attr"`
}

// ReadDocument loads the body paragraphs of a docx file.
func ReadDocument(path string) ([]extract.Paragraph, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer rc.Close()

	body, err := readZipFile(rc.File, documentPart)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return ParseDocumentXML(body)
}

// ParseDocumentXML decodes a WordprocessingML main document part. Only top-level body
// paragraphs and their direct runs are returned; tables and hyperlinks are skipped.
func ParseDocumentXML(data []byte) ([]extract.Paragraph, error) {
	var doc docxDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse document xml: %w", err)
	}
	out := make([]extract.Paragraph, 0, len(doc.Body.Paragraphs))
	for _, para := range doc.Body.Paragraphs {
		runs := make([]extract.Run, 0, len(para.Runs))
		for _, run := range para.Runs {
			runs = append(runs, convertRun(run))
		}
		out = append(out, extract.Paragraph{Runs: runs})
	}
	return out, nil
}

func convertRun(run docxRun) extract.Run {
	out := extract.Run{Text: strings.Join(run.Texts, "")}
	if run.Props == nil {
		return out
	}
	out.Bold = run.Props.Bold != nil && toggleOn(run.Props.Bold.Val)
	if run.Props.Highlight != nil {
		out.Format.Highlight = run.Props.Highlight.Val
	}
	if shd := run.Props.Shading; shd != nil {
		out.Format.Shading = &signal.Shading{Val: shd.Val, Fill: shd.Fill, Color: shd.Color}
	}
	return out
}

// toggleOn interprets an OOXML on/off property value; an absent value means on.
func toggleOn(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "0", "false", "off":
		return false
	default:
		return true
	}
}

func readZipFile(files []*zip.File, target string) ([]byte, error) {
	for _, f := range files {
		if f == nil {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(f.Name), target) {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", target)
}
