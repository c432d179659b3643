// Package output renders definitions as JSON and delivers them to the
// console or an output directory.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ralt/patchstarter/internal/models"
	"github.com/ralt/patchstarter/internal/signer"
	"github.com/ralt/patchstarter/internal/utils"
	"github.com/sirupsen/logrus"
)

const indent = "    "

// Render encodes doc as pretty-printed JSON without a trailing newline
func Render(doc interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Writer delivers rendered documents
type Writer struct {
	console   io.Writer
	outputDir string
	gzip      bool
	signer    signer.Signer
}

// NewWriter creates a writer. An empty outputDir prints to console.
// Gzip and signing sidecars apply to file output only; s may be nil.
func NewWriter(console io.Writer, outputDir string, gzip bool, s signer.Signer) *Writer {
	return &Writer{
		console:   console,
		outputDir: outputDir,
		gzip:      gzip,
		signer:    s,
	}
}

// Write renders doc and either prints it or saves it as fileName inside
// the output directory. It returns the saved path, or "" for console output.
func (w *Writer) Write(doc interface{}, fileName string) (string, error) {
	data, err := Render(doc)
	if err != nil {
		return "", &models.PatchError{
			Type: models.ErrOutputWrite,
			Err:  fmt.Errorf("failed to encode document: %w", err),
		}
	}

	if w.outputDir == "" {
		if w.gzip || w.signer != nil {
			logrus.Warn("Compression and signing only apply when an output directory is set")
		}
		if _, err := fmt.Fprintf(w.console, "%s\n", data); err != nil {
			return "", &models.PatchError{Type: models.ErrOutputWrite, Err: err}
		}
		return "", nil
	}

	path := filepath.Join(w.outputDir, fileName)
	files := []pendingFile{{path: path, data: data}}

	// Sidecars are produced before anything touches the disk
	if w.gzip {
		compressed, err := utils.GzipCompress(fileName, data)
		if err != nil {
			return "", &models.PatchError{
				Type: models.ErrOutputWrite,
				Path: path + ".gz",
				Err:  fmt.Errorf("failed to compress: %w", err),
			}
		}
		files = append(files, pendingFile{path: path + ".gz", data: compressed})
	}

	if w.signer != nil {
		sig, err := w.signer.SignDetached(data)
		if err != nil {
			return "", &models.PatchError{Type: models.ErrSigning, Path: path, Err: err}
		}
		files = append(files, pendingFile{path: path + ".asc", data: sig})
	}

	if err := utils.EnsureDir(w.outputDir); err != nil {
		return "", &models.PatchError{
			Type: models.ErrOutputWrite,
			Path: w.outputDir,
			Err:  fmt.Errorf("failed to create output directory: %w", err),
		}
	}

	if err := writeAll(files); err != nil {
		return "", err
	}

	logrus.Infof("Saved patch definition to %s", path)
	for _, f := range files[1:] {
		logrus.Debugf("Wrote %s (%d bytes)", f.path, len(f.data))
	}

	return path, nil
}

type pendingFile struct {
	path string
	data []byte
}

// writeAll writes every file or none: on failure the files already
// written by this call are removed again.
func writeAll(files []pendingFile) error {
	for i, f := range files {
		if err := utils.WriteFileAtomic(f.path, f.data, 0644); err != nil {
			for _, written := range files[:i] {
				if rmErr := os.Remove(written.path); rmErr != nil {
					logrus.Warnf("Failed to remove %s: %v", written.path, rmErr)
				}
			}
			return &models.PatchError{Type: models.ErrOutputWrite, Path: f.path, Err: err}
		}
	}
	return nil
}
