package export

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/avancod/equityengine/internal/model"
	"github.com/avancod/equityengine/internal/render"
)

// Orchestrator drives one export: validate the model, render the artifact
// in memory, hand the bytes to the saver. Each call is tagged with a fresh
// run ID so log lines from concurrent exports can be told apart.
type Orchestrator struct {
	saver  Saver
	logger *slog.Logger
}

// NewOrchestrator creates an Orchestrator writing through the given saver.
// A nil logger falls back to slog.Default.
func NewOrchestrator(saver Saver, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{saver: saver, logger: logger}
}

// ExportDocument renders and saves the PDF artifact.
func (o *Orchestrator) ExportDocument(m *model.Report) error {
	return o.export(m, render.NewDocumentRenderer(), "pdf")
}

// ExportWorkbook renders and saves the XLSX artifact.
func (o *Orchestrator) ExportWorkbook(m *model.Report) error {
	return o.export(m, render.NewWorkbookRenderer(), "xlsx")
}

// ExportMarkdown renders and saves the markdown artifact.
func (o *Orchestrator) ExportMarkdown(m *model.Report) error {
	return o.export(m, render.NewMarkdownRenderer(), "markdown")
}

func (o *Orchestrator) export(m *model.Report, r render.Renderer, format string) error {
	if m == nil || m.Results == nil {
		return ErrMissingResults
	}

	log := o.logger.With(
		slog.String("run_id", uuid.NewString()),
		slog.String("format", format),
		slog.String("filename", r.Filename()),
	)
	log.Info("export started")

	data, err := r.Render(m)
	if err != nil {
		log.Error("render failed", slog.Any("error", err))
		return &RenderError{Format: format, Err: err}
	}

	if err := o.saver.Save(data, r.Filename(), r.MIMEType()); err != nil {
		log.Error("save failed", slog.Any("error", err))
		return &SaveError{Format: format, Filename: r.Filename(), Err: err}
	}

	log.Info("export complete", slog.Int("bytes", len(data)))
	return nil
}
