package logging

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

// InitLogger installs the process-wide handler. Called once from main,
// before any analyzer loads, so startup failures are already structured.
func InitLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stdout)))
}

// NewHandler builds the tint handler used for all service logging.
func NewHandler(w io.Writer) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})
}
