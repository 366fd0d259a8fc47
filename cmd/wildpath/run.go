package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/tobbstr/wildpath"
	"github.com/tobbstr/wildpath/wpath"
)

// fallback is what get prints when a path resolves nothing.
type fallback struct {
	value any
	set   bool
}

// defaultFallback decodes the -d value in the input format. A value that does not
// decode is taken as a plain string; "-d null" is a null default.
func (cfg *GetConfig) defaultFallback() fallback {
	if !cfg.HasDefault {
		return fallback{}
	}
	v, err := cfg.decode(strings.NewReader(cfg.Default))
	if err != nil {
		return fallback{value: cfg.Default, set: true}
	}
	return fallback{value: v, set: true}
}

// eachInput decodes every named file, "-" being in, and hands the documents
// to fn in order. Without files it reads in.
func eachInput(in io.Reader, files []string, decode func(io.Reader) (any, error), fn func(name string, doc any) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		doc, err := decodeInput(in, name, decode)
		if err != nil {
			return err
		}
		if err := fn(name, doc); err != nil {
			return err
		}
	}
	return nil
}

func decodeInput(in io.Reader, name string, decode func(io.Reader) (any, error)) (any, error) {
	r := in
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", name, err)
		}
		defer f.Close()
		r = f
	}
	doc, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", name, err)
	}
	return doc, nil
}

func getDoc(cfg *MainConfig, w io.Writer, name, path string, def fallback, doc any) error {
	res, ok := wildpath.Lookup(doc, path)
	theLog.Debug("get", "file", name, "path", path, "found", ok)
	if !ok {
		if def.set {
			res = def.value
		} else {
			res = wildpath.Get(doc, path)
		}
	}
	return cfg.encode(w, res)
}

func pickDoc(cfg *MainConfig, w io.Writer, name string, paths []string, doc any) error {
	res := wildpath.Pick(doc, paths...)
	theLog.Debug("pick", "file", name, "paths", paths, "keys", len(res))
	return cfg.encode(w, res)
}

func expandDoc(cfg *ExpandConfig, w io.Writer, name, path string, doc any) error {
	paths := wildpath.Expand(doc, path)
	theLog.Debug("expand", "file", name, "path", path, "count", len(paths))
	idx := color.New(color.FgCyan)
	if cfg.useColor(w) {
		idx.EnableColor()
	} else {
		idx.DisableColor()
	}
	for _, p := range paths {
		var line string
		if cfg.GJSON {
			line = p.GJSON()
		} else {
			line = colorIndexes(p, idx)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// colorIndexes formats p like Path.String with index segments colored by c.
func colorIndexes(p wpath.Path, c *color.Color) string {
	var buf strings.Builder
	for i, seg := range p {
		s := wpath.Path{seg}.String()
		if _, ok := wpath.Index(seg); ok {
			buf.WriteString(c.Sprint(s))
			continue
		}
		if i > 0 && !strings.HasPrefix(s, "[") {
			buf.WriteByte('.')
		}
		buf.WriteString(s)
	}
	return buf.String()
}

func tokenizePaths(cfg *TokenizeConfig, w io.Writer, paths []string) error {
	wild := color.New(color.FgMagenta, color.Bold)
	if cfg.useColor(w) {
		wild.EnableColor()
	} else {
		wild.DisableColor()
	}
	var buf bytes.Buffer
	for _, path := range paths {
		var (
			p   wpath.Path
			err error
		)
		if cfg.Lax {
			p = wpath.Tokenize(path)
		} else if p, err = wpath.Parse(path); err != nil {
			return err
		}
		buf.Reset()
		for i, seg := range p {
			if i > 0 {
				buf.WriteByte(' ')
			}
			if wpath.IsWildcard(seg) {
				buf.WriteString(wild.Sprint(seg))
				continue
			}
			buf.WriteString(strconv.Quote(seg))
		}
		buf.WriteByte('\n')
		if _, err := w.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}
