package pipeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/pterm/pterm"

	"github.com/forgeworks/glyphgen/logger"
)

// Emitter receives pipeline progress events. Implementations decide the
// surface: pretty terminal output, JSON lines, or nothing at all.
type Emitter interface {
	// EmitStage announces a stage starting
	EmitStage(stage string, message string)

	// EmitComplete announces a successful run with summary fields
	EmitComplete(summary map[string]interface{})

	// EmitError announces a failed stage
	EmitError(stage string, err error)
}

// CLIEmitter prints progress to the terminal using pterm. What it shows is
// gated by the logger's output categories, so -v controls stage chatter
// without touching the final status or errors.
type CLIEmitter struct {
	verbosity int
}

// NewCLIEmitter creates a terminal progress emitter.
func NewCLIEmitter(verbosity int) *CLIEmitter {
	return &CLIEmitter{verbosity: verbosity}
}

func (e *CLIEmitter) EmitStage(stage string, message string) {
	if !logger.ShouldOutput(e.verbosity, logger.OutputStageProgress) {
		return
	}
	pterm.Printf("%s %s\n", pterm.LightCyan("["+stage+"]"), message)
}

func (e *CLIEmitter) EmitComplete(summary map[string]interface{}) {
	pterm.Success.Println("pipeline complete")
	if logger.ShouldOutput(e.verbosity, logger.OutputCatalogSummary) {
		for key, value := range summary {
			pterm.Printf("  %s: %v\n", key, value)
		}
	}
}

func (e *CLIEmitter) EmitError(stage string, err error) {
	pterm.Error.Printf("%s failed: %v\n", stage, err)
}

// progressEvent is one JSON line emitted by JSONEmitter.
type progressEvent struct {
	Type      string                 `json:"type"` // "stage", "complete", "error"
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// JSONEmitter writes one JSON event per line, for machine consumption.
type JSONEmitter struct {
	encoder *json.Encoder
}

// NewJSONEmitter creates a JSON progress emitter writing to w.
func NewJSONEmitter(w io.Writer) *JSONEmitter {
	return &JSONEmitter{encoder: json.NewEncoder(w)}
}

func (e *JSONEmitter) emit(eventType string, data map[string]interface{}) {
	_ = e.encoder.Encode(progressEvent{
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}

func (e *JSONEmitter) EmitStage(stage string, message string) {
	e.emit("stage", map[string]interface{}{"stage": stage, "message": message})
}

func (e *JSONEmitter) EmitComplete(summary map[string]interface{}) {
	e.emit("complete", summary)
}

func (e *JSONEmitter) EmitError(stage string, err error) {
	e.emit("error", map[string]interface{}{"stage": stage, "error": err.Error()})
}

// quietEmitter drops everything. Used when no emitter is supplied.
type quietEmitter struct{}

func (quietEmitter) EmitStage(string, string)            {}
func (quietEmitter) EmitComplete(map[string]interface{}) {}
func (quietEmitter) EmitError(string, error)             {}
