// Package log provides credential-safe logging for sitecheck.
//
// Site manifests and deploy environments may carry hosting credentials
// (CDN tokens, registrar API keys, FTP passwords). The RedactHandler wraps
// a standard slog.Handler and masks any attribute whose key or value looks
// like credential material before the record is written.
//
// Typical usage:
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
