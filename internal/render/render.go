// Package render serializes the graph payload into a self-contained
// interactive HTML document.
package render

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ycchou/corrnet/internal/graph"
)

//go:embed template.html
var templateHTML string

var tmpl = template.Must(template.New("network").Parse(templateHTML))

type page struct {
	Title string
	Nodes template.JS
	Links template.JS
}

// Document renders the HTML artifact with the payload embedded as JSON.
func Document(title string, nodes []graph.PayloadNode, links []graph.PayloadLink) ([]byte, error) {
	nodesJSON, err := marshalJS(nodes)
	if err != nil {
		return nil, fmt.Errorf("encode nodes: %w", err)
	}
	linksJSON, err := marshalJS(links)
	if err != nil {
		return nil, fmt.Errorf("encode links: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page{Title: title, Nodes: nodesJSON, Links: linksJSON}); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return buf.Bytes(), nil
}

// marshalJS encodes v with HTML escaping on, so an identifier containing
// "</script>" or similar cannot break out of the embedding script block.
func marshalJS(v any) (template.JS, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(true)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return template.JS(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// DefaultTitle builds the document title from the central gene and the
// filter threshold.
func DefaultTitle(central string, threshold float64) string {
	return fmt.Sprintf("Gene Association Network Centered on %s (PCC >= %g)", central, threshold)
}

// Write writes the document, creating the parent directory if needed.
func Write(path string, doc []byte) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// OpenBrowser opens the file in the platform default viewer.
func OpenBrowser(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", abs)
	case "linux":
		cmd = exec.Command("xdg-open", abs)
	default:
		// Windows or other
		cmd = exec.Command("cmd", "/c", "start", abs)
	}
	return cmd.Start()
}
