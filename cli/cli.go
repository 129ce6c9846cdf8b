// Package cli implements the dedup command: a uniq-like filter built on
// the dedup library, reading positional values, line streams or JSON
// arrays and writing the distinct values in first-occurrence order.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/donkeywon/dedup"
	"github.com/donkeywon/dedup/buildinfo"
	"github.com/donkeywon/dedup/errs"
	"github.com/donkeywon/dedup/log"
	"github.com/donkeywon/dedup/stream"
	"github.com/donkeywon/dedup/util"
	"github.com/donkeywon/dedup/util/bufferpool"
	"github.com/donkeywon/dedup/util/jsons"
	"github.com/donkeywon/dedup/util/vtil"
	"github.com/donkeywon/dedup/util/yamls"

	flags "github.com/jessevdk/go-flags"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Options struct {
	Inputs      []string `short:"i" long:"input" value-name:"FILE" description:"Read lines from FILE instead of stdin, may repeat, - means stdin"`
	Compress    string   `short:"z" long:"compress" choice:"nop" choice:"gzip" choice:"snappy" choice:"zstd" choice:"lz4" default:"nop" description:"Input compression"`
	JSON        bool     `short:"j" long:"json" description:"Treat input as a JSON document holding an array"`
	Path        string   `short:"p" long:"path" value-name:"PATH" description:"Path of the array inside the JSON input"`
	Output      string   `short:"o" long:"output" choice:"text" choice:"json" choice:"yaml" default:"text" description:"Output format"`
	ByHash      bool     `long:"by-hash" description:"Track 64-bit line hashes instead of the lines themselves, a hash collision may drop a distinct line"`
	KeepBlank   bool     `long:"keep-blank" description:"Pass blank lines through without deduplicating"`
	MaxLineSize int      `long:"max-line-size" value-name:"N" default:"1048576" description:"Max input line size in bytes"`
	LogLevel    string   `long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"info" description:"Log level"`
	LogPath     string   `long:"log-path" value-name:"PATH" default:"stderr" description:"Log output, comma-separated paths, stdout or stderr"`
	Version     bool     `short:"V" long:"version" description:"Print version and exit"`

	Args struct {
		Values []string `positional-arg-name:"value" description:"Values to deduplicate in place of stdin"`
	} `positional-args:"yes"`
}

// Parse parses command line arguments into Options.
func Parse(args []string) (*Options, error) {
	opts := &Options{}
	p := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Usage = "[OPTIONS] [value...]"
	if _, err := p.ParseArgs(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// IsHelp reports whether err is the help pseudo-error whose message is the
// rendered usage text.
func IsHelp(err error) bool {
	var ferr *flags.Error
	return errors.As(err, &ferr) && ferr.Type == flags.ErrHelp
}

// Run executes the command described by opts. Failures are logged before
// being returned.
func Run(opts *Options, stdin io.Reader, stdout io.Writer) error {
	if opts.Version {
		fmt.Fprintln(stdout, buildinfo.String())
		return nil
	}

	if err := opts.validate(); err != nil {
		return err
	}

	zl, err := buildLogger(opts)
	if err != nil {
		return err
	}
	defer func() {
		_ = zl.Sync()
	}()

	a := &app{
		opts:   opts,
		stdin:  stdin,
		stdout: stdout,
		l:      log.NewLogger(zl),
	}

	a.l.Debug("parsed options", "opts", opts)
	if err = a.run(); err != nil {
		a.l.Error("dedup fail", err)
	}
	return err
}

func (o *Options) validate() error {
	if len(o.Args.Values) > 0 && len(o.Inputs) > 0 {
		return errs.New("positional values and --input are mutually exclusive")
	}
	if o.JSON && len(o.Args.Values) > 0 {
		return errs.New("--json reads from --input or stdin, not positional values")
	}
	if o.JSON && len(o.Inputs) > 1 {
		return errs.New("--json accepts a single input")
	}
	if !o.JSON && o.Path != "" {
		return errs.New("--path requires --json")
	}
	if err := vtil.Var(o.MaxLineSize, "gt=0"); err != nil {
		return errs.Wrap(err, "invalid max line size")
	}
	return nil
}

func buildLogger(opts *Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(opts.LogLevel)
	if err != nil {
		return nil, errs.Wrap(err, "invalid log level")
	}

	lc := log.NewCfg()
	lc.Filepath = opts.LogPath
	lc.Level = level
	zl, err := lc.Build()
	if err != nil {
		return nil, errs.Wrap(err, "build logger fail")
	}
	return zl, nil
}

type app struct {
	opts   *Options
	stdin  io.Reader
	stdout io.Writer
	l      log.Logger
}

func (a *app) run() error {
	switch {
	case a.opts.JSON:
		return a.runJSON()
	case len(a.opts.Args.Values) > 0:
		return a.runValues()
	default:
		return a.runLines()
	}
}

func (a *app) runValues() error {
	uniq := dedup.Dedup(a.opts.Args.Values)
	a.l.Info("dedup values done", "values", len(a.opts.Args.Values), "unique", len(uniq))
	return a.emitStrings(uniq)
}

func (a *app) runLines() error {
	cfg := stream.NewCfg()
	cfg.MaxLineSize = a.opts.MaxLineSize
	cfg.ByHash = a.opts.ByHash
	cfg.KeepBlank = a.opts.KeepBlank

	d, err := stream.NewDeduper(cfg)
	if err != nil {
		return err
	}

	readers, closers, err := a.openInputs()
	if err != nil {
		return err
	}
	defer closeAll(closers)

	start := time.Now()

	if a.opts.Output == OutputText {
		bw := bufio.NewWriter(a.stdout)
		stats, err := d.Dedup(bw, readers...)
		if err != nil {
			return err
		}
		if err = bw.Flush(); err != nil {
			return errs.Wrap(err, "write output fail")
		}
		a.logStats(stats, start)
		return nil
	}

	buf := bufferpool.GetBuffer()
	defer buf.Free()
	stats, err := d.Dedup(buf, readers...)
	if err != nil {
		return err
	}
	a.logStats(stats, start)

	lines := buf.Lines()
	if lines == nil {
		// encode an empty input as an empty sequence, not null
		lines = []string{}
	}
	return a.encode(lines)
}

func (a *app) logStats(stats stream.Stats, start time.Time) {
	a.l.Info("dedup lines done", "lines", stats.Lines, "written", stats.Written, "cost", time.Since(start))
}

func (a *app) runJSON() error {
	data, err := a.readJSONInput()
	if err != nil {
		return err
	}
	if !gjson.ValidBytes(data) {
		return errs.New("invalid json input")
	}

	doc := gjson.ParseBytes(data)
	if a.opts.Path != "" {
		doc = doc.Get(a.opts.Path)
		if !doc.Exists() {
			return errs.Errorf("nothing found at path %q", a.opts.Path)
		}
	}
	if !doc.IsArray() {
		return errs.New("json input is not an array")
	}

	elems := doc.Array()
	uniq := dedup.DedupBy(elems, func(r gjson.Result) string { return r.Raw })
	a.l.Info("dedup json done", "values", len(elems), "unique", len(uniq))

	if a.opts.Output == OutputText {
		ss := make([]string, 0, len(uniq))
		for _, r := range uniq {
			ss = append(ss, r.String())
		}
		return a.printLines(ss)
	}

	vals := make([]any, 0, len(uniq))
	for _, r := range uniq {
		vals = append(vals, r.Value())
	}
	return a.encode(vals)
}

func (a *app) readJSONInput() ([]byte, error) {
	var src io.Reader = a.stdin
	if len(a.opts.Inputs) == 1 && a.opts.Inputs[0] != "-" {
		fp := a.opts.Inputs[0]
		if !util.FileExist(fp) {
			return nil, errs.Errorf("input file not exists: %s", fp)
		}
		f, err := os.Open(fp)
		if err != nil {
			return nil, errs.Wrapf(err, "open input file fail: %s", fp)
		}
		defer f.Close()
		src = f
	}

	r, err := stream.WrapReader(src, stream.CompressType(a.opts.Compress))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.Wrap(err, "read json input fail")
	}
	return data, nil
}

// openInputs opens every input as a decompressing reader. On error the
// already opened files are closed before returning.
func (a *app) openInputs() ([]io.Reader, []io.Closer, error) {
	typ := stream.CompressType(a.opts.Compress)

	if len(a.opts.Inputs) == 0 {
		r, err := stream.WrapReader(a.stdin, typ)
		if err != nil {
			return nil, nil, err
		}
		return []io.Reader{r}, []io.Closer{r}, nil
	}

	var (
		readers []io.Reader
		closers []io.Closer
	)
	for _, fp := range a.opts.Inputs {
		src := a.stdin
		if fp != "-" {
			if !util.FileExist(fp) {
				closeAll(closers)
				return nil, nil, errs.Errorf("input file not exists: %s", fp)
			}
			f, err := os.Open(fp)
			if err != nil {
				closeAll(closers)
				return nil, nil, errs.Wrapf(err, "open input file fail: %s", fp)
			}
			closers = append(closers, f)
			src = f
		}

		r, err := stream.WrapReader(src, typ)
		if err != nil {
			closeAll(closers)
			return nil, nil, err
		}
		closers = append(closers, r)
		readers = append(readers, r)
	}
	return readers, closers, nil
}

func closeAll(cs []io.Closer) {
	for i := len(cs) - 1; i >= 0; i-- {
		_ = cs[i].Close()
	}
}

func (a *app) emitStrings(values []string) error {
	if a.opts.Output == OutputText {
		return a.printLines(values)
	}
	return a.encode(values)
}

func (a *app) printLines(values []string) error {
	bw := bufio.NewWriter(a.stdout)
	for _, v := range values {
		fmt.Fprintln(bw, v)
	}
	if err := bw.Flush(); err != nil {
		return errs.Wrap(err, "write output fail")
	}
	return nil
}

func (a *app) encode(vals any) error {
	switch a.opts.Output {
	case OutputJSON:
		if err := jsons.NewEncoder(a.stdout).Encode(vals); err != nil {
			return errs.Wrap(err, "encode json output fail")
		}
	case OutputYAML:
		if err := yamls.NewEncoder(a.stdout).Encode(vals); err != nil {
			return errs.Wrap(err, "encode yaml output fail")
		}
	}
	return nil
}
