package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/xbacktrace/translate"
)

// Format is an output format for a report.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_TEXT = Format(0) // text
	FORMAT_JSON = Format(1) // json
	FORMAT_YAML = Format(2) // yaml
)

// ParseFormat looks up a format by name.
func ParseFormat(name string) (format Format, err error) {
	for format = range FORMAT_YAML + 1 {
		if strings.EqualFold(format.String(), name) {
			return
		}
	}

	format = FORMAT_TEXT
	err = ErrFormat(name)
	return
}

// Write renders the report in a format.
func (rpt *Report) Write(w io.Writer, format Format) (err error) {
	switch format {
	case FORMAT_TEXT:
		err = rpt.WriteText(w)
	case FORMAT_JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(rpt.document())
	case FORMAT_YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(rpt.document())
		if err == nil {
			err = enc.Close()
		}
	default:
		err = ErrFormat(format.String())
	}

	return
}

// WriteText renders the report for a console.
func (rpt *Report) WriteText(w io.Writer) (err error) {
	var text strings.Builder

	switch rpt.Kind {
	case KIND_EXCEPTION:
		translate.Fprintf(&text, "Exception '%v' (%v)", rpt.Cause, rpt.Cause.Description())
		if rpt.Context != nil {
			fmt.Fprintf(&text, " pc=0x%08x, excvaddr=0x%08x\n", rpt.Context.PC, rpt.Context.EXCVADDR)
			text.WriteString(rpt.Context.String())
		} else {
			text.WriteString("\n")
		}
	case KIND_PANIC:
		if len(rpt.Message) != 0 {
			translate.Fprintf(&text, "Panic: %v\n", rpt.Message)
		} else {
			translate.Fprintf(&text, "Panic\n")
		}
	}

	text.WriteString("\n")
	translate.Fprintf(&text, "Backtrace:\n")
	for _, address := range rpt.Backtrace.All() {
		fmt.Fprintf(&text, "0x%08x\n", address)
	}
	translate.Fprintf(&text, "(end: %v)\n", rpt.Backtrace.Stop)

	_, err = io.WriteString(w, text.String())

	return
}

// register is a single named register value in a document.
type register struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// document is the machine readable rendering of a report.
type document struct {
	Kind        string     `json:"kind" yaml:"kind"`
	Message     string     `json:"message,omitempty" yaml:"message,omitempty"`
	Cause       string     `json:"cause" yaml:"cause"`
	Description string     `json:"description" yaml:"description"`
	Registers   []register `json:"registers,omitempty" yaml:"registers,omitempty"`
	Backtrace   []string   `json:"backtrace" yaml:"backtrace"`
	Stop        string     `json:"stop" yaml:"stop"`
}

func hex32(value uint32) string {
	return fmt.Sprintf("0x%08x", value)
}

func (rpt *Report) document() (doc document) {
	doc = document{
		Kind:        rpt.Kind.String(),
		Message:     rpt.Message,
		Cause:       rpt.Cause.String(),
		Description: rpt.Cause.Description(),
		Backtrace:   []string{},
		Stop:        rpt.Backtrace.Stop.String(),
	}

	if rpt.Context != nil {
		for reg, value := range rpt.Context.Registers() {
			doc.Registers = append(doc.Registers, register{Name: reg.String(), Value: hex32(value)})
		}
	}

	for _, address := range rpt.Backtrace.All() {
		doc.Backtrace = append(doc.Backtrace, hex32(address))
	}

	return
}
