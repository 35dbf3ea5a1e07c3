package app

import (
	"log/slog"
	"mime"
)

// Some minimal container images ship without /etc/mime.types; the embedded
// stylesheet must still be served as text/css or nosniff browsers drop it.
func init() {
	ensureMimeType(".css", "text/css; charset=utf-8")
}

func ensureMimeType(ext, typ string) {
	if mime.TypeByExtension(ext) != "" {
		return
	}
	if err := mime.AddExtensionType(ext, typ); err != nil {
		slog.Default().Warn("register mime type", slog.String("ext", ext), slog.Any("error", err))
	}
}
