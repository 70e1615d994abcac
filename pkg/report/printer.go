package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

const (
	FormatText     = "text"
	FormatYAML     = "yaml"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Formats lists the accepted output formats
var Formats = []string{FormatText, FormatYAML, FormatMarkdown, FormatHTML}

// Options configures a Printer
type Options struct {
	Format string
	Width  int
	Fill   string
}

// Printer writes section banners and structured dumps. Text and yaml go
// straight to the writer; markdown renders banners as headings and dumps
// as fenced JSON; html collects that markdown and renders it on Flush.
type Printer struct {
	w    io.Writer
	opts Options
	doc  bytes.Buffer
	err  error
}

// NewPrinter creates a Printer for one of Formats. Zero width and empty
// fill take the defaults.
func NewPrinter(w io.Writer, opts Options) (*Printer, error) {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if !slices.Contains(Formats, opts.Format) {
		return nil, fmt.Errorf("unsupported output format %q", opts.Format)
	}
	if opts.Width == 0 {
		opts.Width = DefaultWidth
	}
	if opts.Fill == "" {
		opts.Fill = DefaultFill
	}
	return &Printer{w: w, opts: opts}, nil
}

func (p *Printer) out() io.Writer {
	if p.opts.Format == FormatHTML {
		return &p.doc
	}
	return p.w
}

func (p *Printer) write(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.out(), format, args...)
}

// Section prints a banner. A write error is kept and returned by Flush.
func (p *Printer) Section(text string) {
	switch p.opts.Format {
	case FormatMarkdown, FormatHTML:
		p.write("## %s\n\n", text)
	default:
		p.write("%s\n", Banner(text, p.opts.Fill, p.opts.Width))
	}
}

// Dump prints v. Field names follow the json tags in every format.
func (p *Printer) Dump(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %T: %w", v, err)
	}

	switch p.opts.Format {
	case FormatYAML:
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("failed to encode %T: %w", v, err)
		}
		out, err := yaml.Marshal(generic)
		if err != nil {
			return fmt.Errorf("failed to encode %T as yaml: %w", v, err)
		}
		p.write("%s", out)
	case FormatMarkdown, FormatHTML:
		p.write("```json\n%s\n```\n\n", data)
	default:
		p.write("%s\n", data)
	}
	return p.err
}

// Flush renders the collected html document and returns the first write error.
func (p *Printer) Flush() error {
	if p.err != nil {
		return p.err
	}
	if p.opts.Format != FormatHTML {
		return nil
	}
	if err := goldmark.Convert(p.doc.Bytes(), p.w); err != nil {
		return fmt.Errorf("failed to render html: %w", err)
	}
	p.doc.Reset()
	return nil
}
