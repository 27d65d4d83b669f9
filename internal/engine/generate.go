package engine

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/encoding/ianaindex"
	"gopkg.in/yaml.v3"

	"modelgen/internal/registry"
)

// CodeGenerator is the reference implementation of the engine boundary. It
// resolves the input document, derives the root model name, and emits a
// minimal module. The real code generation templates live downstream.
type CodeGenerator struct {
	Stdin  io.Reader
	Stdout io.Writer

	// now is swappable so tests can pin the file-header timestamp.
	now func() time.Time
}

// New returns a generator reading from and writing to the process streams.
func New() *CodeGenerator {
	return &CodeGenerator{Stdin: os.Stdin, Stdout: os.Stdout, now: time.Now}
}

// Generate reads the schema document, names the root model, and writes the
// generated module to the configured output.
func (g *CodeGenerator) Generate(ctx context.Context, in Inputs) error {
	cfg := in.Config

	data, sourceName, err := g.readInput(ctx, in)
	if err != nil {
		return err
	}

	rootName := cfg.String(registry.ClassName)
	if rootName == "" {
		rootName = documentTitle(data, cfg.String(registry.InputFileType))
	}
	if rootName == "" {
		rootName = nameFromSource(sourceName)
	}
	if alias, ok := in.Aliases[rootName]; ok {
		rootName = alias
	}
	if !validClassName(rootName) {
		return &InvalidClassNameError{Name: rootName}
	}

	var out strings.Builder
	out.WriteString("# generated by modelgen\n")
	if !cfg.Bool(registry.DisableTimestamp) {
		fmt.Fprintf(&out, "# timestamp: %s\n", g.now().UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(&out, "# source: %s\n\n", sourceName)
	fmt.Fprintf(&out, "class %s(%s):\n    ...\n", rootName, cfg.String(registry.BaseClass))

	encoded, err := encodeOutput(out.String(), cfg.String(registry.Encoding))
	if err != nil {
		return err
	}
	return g.writeOutput(cfg.String(registry.Output), encoded)
}

// readInput resolves the document bytes from the remote URL, the input
// path, or standard input, in that order of applicability.
func (g *CodeGenerator) readInput(ctx context.Context, in Inputs) ([]byte, string, error) {
	if req, ok := in.RemoteRequest(); ok {
		data, err := g.fetch(ctx, req)
		if err != nil {
			return nil, "", err
		}
		return data, req.URL.String(), nil
	}

	if path := in.Config.String(registry.Input); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("read input: %w", err)
		}
		return data, path, nil
	}

	data, err := io.ReadAll(g.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("read stdin: %w", err)
	}
	return data, "<stdin>", nil
}

// fetch retrieves a remote document using the request descriptor the core
// prepared.
func (g *CodeGenerator) fetch(ctx context.Context, req Request) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for _, h := range req.Headers {
		httpReq.Header.Set(h.Name, h.Value)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	if req.IgnoreTLS {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // #nosec G402 -- user-requested via --http-ignore-tls
		}
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", req.URL.String(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", req.URL.String(), resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func (g *CodeGenerator) writeOutput(path string, content []byte) error {
	if path == "" {
		_, err := g.Stdout.Write(content)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return os.WriteFile(path, content, 0o644)
}

// encodeOutput converts the generated module from UTF-8 to the configured
// output encoding, looked up by its IANA name.
func encodeOutput(content, name string) ([]byte, error) {
	if name == "" || strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		return []byte(content), nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding: %s", name)
	}
	encoded, err := enc.NewEncoder().Bytes([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("encode output as %s: %w", name, err)
	}
	return encoded, nil
}

// documentTitle pulls the schema title out of a JSON or YAML document.
func documentTitle(data []byte, fileType string) string {
	var doc map[string]any
	switch fileType {
	case "yaml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return ""
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			// auto falls back to YAML, which also parses JSON supersets
			if fileType != "auto" || yaml.Unmarshal(data, &doc) != nil {
				return ""
			}
		}
	}
	title, _ := doc["title"].(string)
	return title
}

// nameFromSource derives a fallback model name from the input location.
func nameFromSource(source string) string {
	base := filepath.Base(source)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "<stdin>" || base == "." {
		return "Model"
	}
	return base
}

// validClassName reports whether name is a usable identifier for the root
// generated type.
func validClassName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}
