package gen

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) {
	if outDir == "" || filename == "" {
		return
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		Logger().Warn("cannot create directory for unformatted output", zap.Error(err))
		return
	}

	// Keep it a .go file so editors can syntax highlight, but avoid colliding with
	// real output.
	debugName := strings.TrimSuffix(filename, ".go") + ".unformatted.go"
	p := filepath.Join(outDir, debugName)

	if err := os.WriteFile(p, content, filePerm); err != nil {
		Logger().Warn("cannot write unformatted output", zap.String("path", p), zap.Error(err))
		return
	}

	Logger().Info("wrote unformatted output", zap.String("path", p))
}
