package usecase

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"cv-amplify/internal/domain"
	"cv-amplify/pkg/ai/formatters"
)

const (
	// ArtifactName is the fixed filename of the exported document.
	ArtifactName = "resume.pdf"
	// ContentWidthMM is the text width on an A4 page with 15 mm side margins.
	ContentWidthMM = 180.0

	pageWidthMM = 210.0
)

// Renderer converts an HTML document into PDF bytes.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Verifier checks that rendered bytes are a readable PDF and reports its
// page count.
type Verifier interface {
	Verify(pdf []byte) (int, error)
}

// ExportArtifact is a finished document. It is only returned when every
// stage succeeded.
type ExportArtifact struct {
	Name   string
	Source string
	Pages  []Page
	Data   []byte
}

//go:embed templates/export.html
var templatesFS embed.FS

var exportTpl = template.Must(template.ParseFS(templatesFS, "templates/export.html"))

// Exporter is the export adapter: source text, layout, render, verify.
type Exporter struct {
	layout   PageLayout
	style    MonospaceLayout
	renderer Renderer
	verifier Verifier
	labels   formatters.Labels
}

// NewExporter wires the stages. The page stylesheet follows layout's metrics
// when it is a MonospaceLayout and DefaultLayout otherwise.
func NewExporter(layout PageLayout, r Renderer, v Verifier) *Exporter {
	style := DefaultLayout()
	if m, ok := layout.(MonospaceLayout); ok {
		style = m
	}
	return &Exporter{layout: layout, style: style, renderer: r, verifier: v, labels: formatters.DefaultLabels()}
}

// SourceText picks the export text: the generated narrative verbatim when
// there is one, otherwise a plain block built from the filter narrative and
// the raw draft fields.
func SourceText(draft domain.ResumeDraft, filters domain.FilterSelection, result *domain.GenerationResult, labels formatters.Labels) string {
	if result != nil && result.Narrative != "" {
		return result.Narrative
	}
	var sb strings.Builder
	sb.WriteString(domain.Describe(filters))
	sb.WriteString("\n\n")
	for _, f := range domain.Fields {
		sb.WriteString(labels.For(f))
		sb.WriteString(": ")
		sb.WriteString(draft.Get(f))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Export builds the PDF. Failures come back as *domain.ExportFailure and no
// artifact is returned.
func (e *Exporter) Export(ctx context.Context, draft domain.ResumeDraft, filters domain.FilterSelection, result *domain.GenerationResult) (*ExportArtifact, error) {
	src := SourceText(draft, filters, result, e.labels)

	pages, err := e.layout.Layout(src, ContentWidthMM)
	if err != nil {
		return nil, &domain.ExportFailure{Stage: "layout", Cause: err}
	}

	html, err := e.pageHTML(pages)
	if err != nil {
		return nil, &domain.ExportFailure{Stage: "template", Cause: err}
	}

	data, err := e.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, &domain.ExportFailure{Stage: "render", Cause: err}
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		return nil, &domain.ExportFailure{Stage: "render", Cause: fmt.Errorf("invalid PDF output (len=%d)", len(data))}
	}

	if e.verifier != nil {
		n, err := e.verifier.Verify(data)
		if err != nil {
			return nil, &domain.ExportFailure{Stage: "verify", Cause: err}
		}
		if n < 1 {
			return nil, &domain.ExportFailure{Stage: "verify", Cause: errors.New("document has no pages")}
		}
	}

	return &ExportArtifact{Name: ArtifactName, Source: src, Pages: pages, Data: data}, nil
}

func (e *Exporter) pageHTML(pages []Page) (string, error) {
	var buf bytes.Buffer
	err := exportTpl.Execute(&buf, map[string]interface{}{
		"Title":          strings.TrimSuffix(ArtifactName, ".pdf"),
		"Pages":          pages,
		"FontSizePt":     e.style.FontSizePt,
		"LineHeightMM":   e.style.LineHeightMM,
		"MarginTopMM":    e.style.MarginTopMM,
		"MarginBottomMM": e.style.MarginBottomMM,
		"MarginSideMM":   (pageWidthMM - ContentWidthMM) / 2,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
