package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cv-amplify/internal/domain"
	"cv-amplify/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDraft(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "draft.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDraftFile(t *testing.T) {
	path := writeDraft(t, `
fullName: Jordan Lee
skills: Go, SQL
experience: |
  Acme • Engineer • 2021 - 2024
  - Shipped search
filters:
  tone: confident
`)
	df, err := loadDraftFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Lee", df.FullName)
	assert.Equal(t, "Go, SQL", df.Skills)
	assert.Equal(t, "Acme • Engineer • 2021 - 2024\n- Shipped search\n", df.Experience)
	assert.Equal(t, "confident", df.Filters.Tone)

	_, err = loadDraftFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	_, err = loadDraftFile(writeDraft(t, "fullName: [unclosed"))
	assert.Error(t, err)
}

func TestApplySelections(t *testing.T) {
	df := &draftFile{}
	df.Filters.Tone = "confident"
	df.Filters.Focus = "engineering"

	s := usecase.NewStudio(usecase.NewTemplateGenerator())
	require.NoError(t, applySelections(s, df, "elegant", "", ""))
	f := s.State().Filters
	assert.Equal(t, domain.ToneElegant, f.Tone)
	assert.Equal(t, domain.FocusEngineering, f.Focus)
	assert.Equal(t, domain.HighlightImpact, f.Highlight)

	err := applySelections(s, &draftFile{}, "", "", "sparkle")
	var unk *domain.UnknownOptionError
	assert.True(t, errors.As(err, &unk))
}

func TestDriveStudio_PreviewAndImprove(t *testing.T) {
	s := usecase.NewStudio(usecase.NewTemplateGenerator())
	s.SetDraft(domain.ResumeDraft{FullName: "Jordan Lee"})

	var out bytes.Buffer
	require.NoError(t, driveStudio(context.Background(), &out, s, true, ""))
	assert.Contains(t, out.String(), "Jordan Lee")
	assert.Contains(t, out.String(), usecase.MockBanner)
}

func TestDriveStudio_EmptyDraft(t *testing.T) {
	s := usecase.NewStudio(usecase.NewTemplateGenerator())
	var out bytes.Buffer
	err := driveStudio(context.Background(), &out, s, true, "")
	require.Error(t, err)
	assert.Contains(t, out.String(), domain.MsgEmptyDraft)
}

type stubRenderer struct{}

func (stubRenderer) RenderHTMLToPDF(context.Context, string) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

func TestDriveStudio_Export(t *testing.T) {
	exp := usecase.NewExporter(usecase.DefaultLayout(), stubRenderer{}, nil)
	s := usecase.NewStudio(usecase.NewTemplateGenerator(), usecase.WithExporter(exp))
	s.SetDraft(domain.ResumeDraft{Headline: "Engineer"})

	path := filepath.Join(t.TempDir(), "resume.pdf")
	var out bytes.Buffer
	require.NoError(t, driveStudio(context.Background(), &out, s, false, path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 stub", string(b))
	assert.Contains(t, out.String(), "Exported resume.pdf")
}

func TestPrintCatalog(t *testing.T) {
	var out bytes.Buffer
	printCatalog(&out, domain.DefaultFilters())
	s := out.String()
	assert.Contains(t, s, "tone:")
	assert.Contains(t, s, "* energetic")
	assert.Contains(t, s, "Creative Persona")
}
