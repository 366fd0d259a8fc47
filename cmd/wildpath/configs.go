package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type format int

const (
	jsonFormat format = iota
	yamlFormat
)

func (f format) String() string {
	if f == yamlFormat {
		return "yaml"
	}
	return "json"
}

func parseFormat(v string) (format, error) {
	switch strings.ToLower(v) {
	case "json", "j":
		return jsonFormat, nil
	case "yaml", "yml", "y":
		return yamlFormat, nil
	default:
		return jsonFormat, fmt.Errorf("unknown format %q", v)
	}
}

type MainConfig struct {
	Color   bool `cli:"name=color desc='output with color'"`
	Dump    bool `cli:"name=dump desc='dump results as Go values'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log what each command resolves'"`

	InFormat, OutFormat format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp *format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := parseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// useColor reports whether output to w is colored: always with -color,
// otherwise only on a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	// Default is the raw -d value; HasDefault tells an unset -d from "-d ''".
	Default    string
	HasDefault bool

	Get *cli.Command
}

func (cfg *GetConfig) defaultOpt(_ *cli.Context, a string) (any, error) {
	cfg.Default = a
	cfg.HasDefault = true
	return a, nil
}

type PickConfig struct {
	*MainConfig

	Paths []string

	Pick *cli.Command
}

func (cfg *PickConfig) pathOpt(_ *cli.Context, a string) (any, error) {
	if a == "" {
		return nil, fmt.Errorf("%w: empty path", cli.ErrUsage)
	}
	cfg.Paths = append(cfg.Paths, a)
	return a, nil
}

type ExpandConfig struct {
	*MainConfig

	GJSON bool `cli:"name=gjson desc='print paths in gjson syntax'"`

	Expand *cli.Command
}

type TokenizeConfig struct {
	*MainConfig

	Lax bool `cli:"name=lax desc='recover from malformed paths instead of failing'"`

	Tokenize *cli.Command
}
