package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cv-amplify/internal/config"
	"cv-amplify/internal/domain"
	"cv-amplify/internal/logger"
	"cv-amplify/internal/usecase"
	"cv-amplify/pkg/ai"
	"cv-amplify/pkg/ai/formatters"
	infra "cv-amplify/pkg/infrastructure"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	studioDraft     string
	studioTone      string
	studioFocus     string
	studioHighlight string
	studioImprove   bool
	studioRemote    string
	studioOut       string
)

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Preview, improve and export a draft from a YAML file",
	Long:  "Loads a draft, prints the live preview, optionally runs a generation (in process or against --remote) and exports the result to a PDF.",
	RunE:  runStudio,
}

func init() {
	studioCmd.Flags().StringVarP(&studioDraft, "draft", "d", "", "Draft YAML file (required)")
	studioCmd.Flags().StringVar(&studioTone, "tone", "", "Tone option id")
	studioCmd.Flags().StringVar(&studioFocus, "focus", "", "Focus option id")
	studioCmd.Flags().StringVar(&studioHighlight, "highlight", "", "Highlight option id")
	studioCmd.Flags().BoolVar(&studioImprove, "improve", false, "Run a generation before exporting")
	studioCmd.Flags().StringVar(&studioRemote, "remote", "", "Generation service base URL (default: in process)")
	studioCmd.Flags().StringVarP(&studioOut, "out", "o", "", "Write the exported PDF to this path")

	if err := studioCmd.MarkFlagRequired("draft"); err != nil {
		panic(fmt.Sprintf("failed to mark draft flag as required: %v", err))
	}
	rootCmd.AddCommand(studioCmd)
}

// draftFile is the on-disk draft: the six fields plus optional filter ids.
type draftFile struct {
	domain.ResumeDraft `yaml:",inline"`
	Filters            struct {
		Tone      string `yaml:"tone"`
		Focus     string `yaml:"focus"`
		Highlight string `yaml:"highlight"`
	} `yaml:"filters"`
}

func loadDraftFile(path string) (*draftFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}
	var df draftFile
	if err := yaml.Unmarshal(b, &df); err != nil {
		return nil, fmt.Errorf("parse draft %s: %w", path, err)
	}
	return &df, nil
}

// applySelections applies file filters first and flag overrides second.
func applySelections(s *usecase.Studio, df *draftFile, tone, focus, highlight string) error {
	for _, pass := range [][3]string{
		{df.Filters.Tone, df.Filters.Focus, df.Filters.Highlight},
		{tone, focus, highlight},
	} {
		for i, axis := range domain.Axes {
			if pass[i] == "" {
				continue
			}
			if err := s.Select(axis, pass[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func runStudio(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.InitWithWriter(cfg.Logger, cmd.ErrOrStderr())

	df, err := loadDraftFile(studioDraft)
	if err != nil {
		return err
	}

	var gen usecase.Generator = usecase.NewTemplateGenerator()
	remote := studioRemote
	if remote == "" {
		remote = cfg.Generation.ServiceURL
	}
	if remote != "" {
		gen = ai.NewClientWithURL(remote)
	}

	exporter := usecase.NewExporter(usecase.DefaultLayout(), infra.NewChromedpRenderer(cfg.Export.ChromePath), infra.NewPDFVerifier())
	studio := usecase.NewStudio(gen,
		usecase.WithGenerateTimeout(cfg.Generation.Timeout),
		usecase.WithExporter(exporter),
		usecase.WithLogger(logger.Component("studio")),
	)
	studio.SetDraft(df.ResumeDraft)
	if err := applySelections(studio, df, studioTone, studioFocus, studioHighlight); err != nil {
		return fmt.Errorf("invalid filter selection: %w", err)
	}

	return driveStudio(cmd.Context(), cmd.OutOrStdout(), studio, studioImprove, studioOut)
}

func driveStudio(ctx context.Context, w io.Writer, studio *usecase.Studio, improve bool, out string) error {
	labels := formatters.DefaultLabels()
	fmt.Fprintln(w, studio.Preview().Text(labels))

	if improve {
		if err := studio.Generate(ctx); err != nil {
			fmt.Fprintln(w, studio.State().Error)
			return err
		}
		fmt.Fprintln(w, studio.State().Narrative)
	}

	if out == "" {
		return nil
	}
	art, err := studio.Export(ctx)
	if err != nil {
		fmt.Fprintln(w, studio.State().ExportError)
		return err
	}
	if err := os.WriteFile(out, art.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(w, "Exported %s (%d pages) to %s\n", art.Name, len(art.Pages), out)
	return nil
}
