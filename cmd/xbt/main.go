// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/ezrec/xbacktrace/backtrace"
	"github.com/ezrec/xbacktrace/dump"
	"github.com/ezrec/xbacktrace/memmap"
	"github.com/ezrec/xbacktrace/report"
)

// segmentList collects repeated -mem arguments.
type segmentList []string

func (sl *segmentList) String() string {
	return strings.Join(*sl, ",")
}

func (sl *segmentList) Set(value string) error {
	*sl = append(*sl, value)
	return nil
}

// loadCapture reads a .xbt container, or a capture directory.
func loadCapture(capture string, verbose bool) (img *dump.Image, err error) {
	img = &dump.Image{Verbose: verbose}

	st, err := os.Stat(capture)
	if err != nil {
		return
	}

	if st.IsDir() {
		err = img.UnmarshalFS(os.DirFS(capture))
		return
	}

	inf, err := os.Open(capture)
	if err != nil {
		return
	}
	defer inf.Close()

	err = img.Unmarshal(inf)

	return
}

// loadRaw builds a capture from a binary trap frame and base:file segments.
func loadRaw(regsFile string, segments []string, verbose bool) (img *dump.Image, err error) {
	img = &dump.Image{Verbose: verbose}

	data, err := os.ReadFile(regsFile)
	if err != nil {
		return
	}

	err = img.Context.UnmarshalBinary(data)
	if err != nil {
		return
	}

	for _, arg := range segments {
		var base uint32
		var path string
		base, path, err = dump.ParseSegment(arg)
		if err != nil {
			return
		}

		data, err = os.ReadFile(path)
		if err != nil {
			return
		}

		err = img.AddSegment(base, data)
		if err != nil {
			return
		}
	}

	return
}

// saveCapture writes the capture as a .xbt container.
func saveCapture(img *dump.Image, save string) (err error) {
	ouf, err := os.Create(save)
	if err != nil {
		return
	}

	err = img.Marshal(ouf)
	cerr := ouf.Close()
	if err == nil {
		err = cerr
	}

	return
}

// loadPredicate selects the RAM plausibility check.
func loadPredicate(chip string, mapFile string, expr string) (valid backtrace.Predicate, err error) {
	switch {
	case len(expr) != 0:
		var pred *memmap.Expr
		pred, err = memmap.Compile(expr)
		if err != nil {
			return
		}
		valid = pred.Contains
	case len(mapFile) != 0:
		var inf *os.File
		inf, err = os.Open(mapFile)
		if err != nil {
			return
		}
		defer inf.Close()

		var m *memmap.Map
		m, err = memmap.Load(inf)
		if err != nil {
			return
		}
		valid = m.Contains
	default:
		var m *memmap.Map
		m, err = memmap.Chip(chip)
		if err != nil {
			return
		}
		valid = m.Contains
	}

	return
}

// writeReport renders the report to a file, or to stdout for "-".
func writeReport(rpt *report.Report, output string, format report.Format) (err error) {
	if output == "-" {
		return rpt.Write(os.Stdout, format)
	}

	ouf, err := os.Create(output)
	if err != nil {
		return
	}

	err = rpt.Write(ouf, format)
	cerr := ouf.Close()
	if err == nil {
		err = cerr
	}

	return
}

// buildReport walks the capture. A non-zero sp overrides the saved A1, and a
// non-negative suppress overrides the default for the report kind.
func buildReport(img *dump.Image, valid backtrace.Predicate, panicMessage string, sp uint32, suppress int) (rpt report.Report) {
	walker := backtrace.NewWalker(img, valid)

	start := img.Context.A1
	if sp != 0 {
		start = sp
	}

	if len(panicMessage) != 0 {
		rpt = report.Panic(panicMessage, start, walker)
	} else {
		rpt = report.Exception(&img.Context, walker)
		if start != img.Context.A1 {
			rpt.Backtrace = walker.Walk(start, report.EXCEPTION_SUPPRESS)
		}
	}

	if suppress >= 0 {
		rpt.Backtrace = walker.Walk(start, suppress)
	}

	return
}

func main() {
	var chip string
	var mapFile string
	var expr string
	var regsFile string
	var segments segmentList
	var panicMessage string
	var sp uint64
	var suppress int
	var format string
	var output string
	var save string
	var verbose bool

	flag.StringVar(&chip, "chip", "esp32", "Built-in memory map (esp32, esp32s2, esp32s3)")
	flag.StringVar(&mapFile, "map", "", ".toml memory map to use")
	flag.StringVar(&expr, "expr", "", "Starlark RAM predicate over 'addr'")
	flag.StringVar(&regsFile, "regs", "", "Binary trap frame, instead of a capture")
	flag.Var(&segments, "mem", "base:file memory segment for -regs (repeatable)")
	flag.StringVar(&panicMessage, "panic", "", "Report a panic with this message, instead of an exception")
	flag.Uint64Var(&sp, "sp", 0, "Stack pointer to walk from (default: saved A1)")
	flag.IntVar(&suppress, "suppress", -1, "Frames to suppress (default: 0 for exceptions, 1 for panics)")
	flag.StringVar(&format, "format", "text", "Output format (text, json, yaml)")
	flag.StringVar(&output, "o", "-", "Report output")
	flag.StringVar(&save, "s", "", "Save the capture as a .xbt container")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	var img *dump.Image
	var err error
	if len(regsFile) != 0 {
		if flag.NArg() != 0 {
			log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
		}
		img, err = loadRaw(regsFile, segments, verbose)
		if err != nil {
			log.Fatalf("%v: %v", regsFile, err)
		}
	} else {
		if flag.NArg() != 1 || len(segments) != 0 {
			log.Fatalf("%v: expected one capture file or directory, or -regs", os.Args[0])
		}
		img, err = loadCapture(flag.Arg(0), verbose)
		if err != nil {
			log.Fatalf("%v: %v", flag.Arg(0), err)
		}
	}

	if len(save) != 0 {
		err = saveCapture(img, save)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
	}

	valid, err := loadPredicate(chip, mapFile, expr)
	if err != nil {
		log.Fatalf("memory map: %v (chips: %v)", err, memmap.Chips())
	}

	outputFormat, err := report.ParseFormat(format)
	if err != nil {
		log.Fatal(err)
	}

	rpt := buildReport(img, valid, panicMessage, uint32(sp), suppress)

	if verbose {
		log.Printf("xbt: walk stopped: %v", rpt.Backtrace.Stop)
	}

	err = writeReport(&rpt, output, outputFormat)
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}
}
