// Package main provides a command-line utility to inspect PLY files.
// It prints each file's header summary and can dump the rows of one element
// as ASCII body lines.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/scigolib/ply"
)

type options struct {
	headerOnly bool
	dump       string
	limit      int
	stack      bool
	jobs       int
	verbose    bool
}

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("plyinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.BoolVar(&o.headerOnly, "header", false, "Parse the header only")
	fs.StringVar(&o.dump, "dump", "", "Element whose rows are printed")
	fs.IntVar(&o.limit, "limit", 10, "Maximum rows printed by -dump (0 prints all)")
	fs.BoolVar(&o.stack, "stack", false, "Print the stack trace of parse failures")
	fs.IntVar(&o.jobs, "j", runtime.GOMAXPROCS(0), "Number of files parsed concurrently")
	fs.BoolVar(&o.verbose, "v", false, "Log parser progress to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	files := fs.Args()
	if len(files) < 1 {
		fmt.Fprintln(stderr, "Usage: plyinfo [flags] <file.ply>...")
		fmt.Fprintln(stderr, "Flags:")
		fs.PrintDefaults()
		return 2
	}
	if o.jobs < 1 {
		fmt.Fprintf(stderr, "Invalid -j: %d\n", o.jobs)
		return 2
	}
	if o.limit < 0 {
		fmt.Fprintf(stderr, "Invalid -limit: %d\n", o.limit)
		return 2
	}

	opts := []ply.Option{ply.WithHeaderOnly(o.headerOnly)}
	if o.verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, ply.WithLogger(logger))
	}

	// Each file renders into its own buffer; output keeps argument order.
	outputs := make([]bytes.Buffer, len(files))
	failed := make([]bool, len(files))

	var g errgroup.Group
	g.SetLimit(o.jobs)
	for i, path := range files {
		g.Go(func() error {
			failed[i] = !describe(&outputs[i], path, o, opts)
			return nil
		})
	}
	_ = g.Wait()

	status := 0
	for i := range files {
		w := stdout
		if failed[i] {
			w = stderr
			status = 1
		}
		if _, err := outputs[i].WriteTo(w); err != nil {
			log.Printf("Failed to write output: %v", err)
			return 1
		}
	}
	return status
}

// describe parses path and writes its summary to w.
// It reports whether the file was parsed.
func describe(w io.Writer, path string, o options, opts []ply.Option) bool {
	r, err := ply.ReadFile(path, opts...)
	if err != nil {
		fmt.Fprintf(w, "%s: FAILED\n%s\n", path, ply.Report(err, o.stack))
		return false
	}

	fmt.Fprintf(w, "%s: %s %s, %d elements, state %s\n",
		path, r.Format(), r.Version(), r.ElementCount(), r.State())
	for _, c := range r.Comments() {
		fmt.Fprintf(w, "comment %s\n", c)
	}
	for _, info := range r.ObjInfo() {
		fmt.Fprintf(w, "obj_info %s\n", info)
	}
	if err := r.WriteHeaderInfo(w); err != nil {
		fmt.Fprintf(w, "writing header summary: %v\n", err)
		return false
	}

	if o.dump == "" || o.headerOnly {
		return true
	}
	el, err := r.ElementByName(o.dump)
	if err != nil {
		fmt.Fprintf(w, "%s\n", ply.Report(err, false))
		return false
	}
	if err := dumpRows(w, el, o.limit); err != nil {
		fmt.Fprintf(w, "%s\n", ply.Report(err, false))
		return false
	}
	return true
}

// dumpRows prints up to limit rows of el as ASCII body lines.
func dumpRows(w io.Writer, el *ply.Element, limit int) error {
	rows := el.Count()
	if limit > 0 {
		rows = min(rows, limit)
	}

	if el.IsList() {
		list, err := el.List("")
		if err != nil {
			return err
		}
		for _, row := range list.Rows[:rows] {
			fmt.Fprintln(w, formatRow(strconv.Itoa(row.Len()), row))
		}
	} else {
		cols := make([]ply.Column, el.PropertyCount())
		for i, name := range el.PropertyNames() {
			col, err := el.Column(name)
			if err != nil {
				return err
			}
			cols[i] = col
		}
		toks := make([]string, len(cols))
		for row := range rows {
			for i, col := range cols {
				toks[i] = col.FormatValue(row)
			}
			fmt.Fprintln(w, strings.Join(toks, " "))
		}
	}

	if rows < el.Count() {
		fmt.Fprintf(w, "... %d more rows\n", el.Count()-rows)
	}
	return nil
}

func formatRow(prefix string, col ply.Column) string {
	toks := make([]string, 0, col.Len()+1)
	toks = append(toks, prefix)
	for i := range col.Len() {
		toks = append(toks, col.FormatValue(i))
	}
	return strings.Join(toks, " ")
}
