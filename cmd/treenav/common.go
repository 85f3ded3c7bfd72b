package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dshills/treenav/internal/app"
	"github.com/dshills/treenav/internal/config"
	"github.com/dshills/treenav/internal/engine"
	"github.com/dshills/treenav/internal/engine/cursor"
)

// errInvalidSelection reports a malformed or out of range --select value.
var errInvalidSelection = errors.New("invalid selection")

// newApp loads the configuration named by the global flags and builds the
// application. Logs go to the command's error stream.
func newApp(cmd *cobra.Command) (*app.Application, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	lc := app.DefaultLoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	lc.Level = app.ParseLogLevel(cfg.Log.Level)
	lc.Format = cfg.Log.Format
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		lc.Level = app.LogLevelDebug
	}
	logger := app.NewLogger(lc)
	app.SetLogger(logger)

	return app.New(cfg, app.Options{Logger: logger})
}

// openFile opens file in application with the --select, --primary and
// --lang flags applied.
func openFile(cmd *cobra.Command, application *app.Application, file string) (*engine.Document, error) {
	lang, _ := cmd.Flags().GetString("lang")
	doc, err := application.Documents().Open(file, lang)
	if err != nil {
		return nil, err
	}

	spec, _ := cmd.Flags().GetString("select")
	primary, _ := cmd.Flags().GetInt("primary")
	sel, err := parseSelection(spec, primary, doc.Text().Len())
	if err != nil {
		return nil, err
	}
	doc.SetSelection(sel)
	return doc, nil
}

func addDocumentFlags(cmd *cobra.Command) {
	cmd.Flags().String("lang", "", "language (default: detected from the file extension)")
	cmd.Flags().StringP("select", "s", "0", "selection as anchor:head[,anchor:head...]; a bare offset is a cursor")
	cmd.Flags().Int("primary", 0, "index of the primary range")
}

// parseSelection parses "a:h,a:h" with offsets no greater than max.
func parseSelection(spec string, primary int, max cursor.ByteOffset) (cursor.Selection, error) {
	parts := strings.Split(spec, ",")
	ranges := make([]cursor.Range, 0, len(parts))
	for _, part := range parts {
		r, err := parseRange(strings.TrimSpace(part), max)
		if err != nil {
			return cursor.Selection{}, err
		}
		ranges = append(ranges, r)
	}
	if primary < 0 || primary >= len(ranges) {
		return cursor.Selection{}, errors.Wrapf(errInvalidSelection, "primary %d of %d ranges", primary, len(ranges))
	}
	return cursor.NewSelection(ranges, primary), nil
}

func parseRange(s string, max cursor.ByteOffset) (cursor.Range, error) {
	anchorStr, headStr, found := strings.Cut(s, ":")
	if !found {
		headStr = anchorStr
	}

	anchor, err := parseOffset(anchorStr, max)
	if err != nil {
		return cursor.Range{}, err
	}
	head, err := parseOffset(headStr, max)
	if err != nil {
		return cursor.Range{}, err
	}
	return cursor.NewRange(anchor, head), nil
}

func parseOffset(s string, max cursor.ByteOffset) (cursor.ByteOffset, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(errInvalidSelection, "offset %q", s)
	}
	if n > max {
		return 0, errors.Wrapf(errInvalidSelection, "offset %d past end of text (%d)", n, max)
	}
	return n, nil
}

// rangeOutput is the JSON form of one selection range.
type rangeOutput struct {
	Anchor  cursor.ByteOffset `json:"anchor"`
	Head    cursor.ByteOffset `json:"head"`
	Primary bool              `json:"primary"`
}

func rangesOutput(sel cursor.Selection) []rangeOutput {
	out := make([]rangeOutput, sel.Len())
	for i, r := range sel.Ranges() {
		out[i] = rangeOutput{Anchor: r.Anchor, Head: r.Head, Primary: i == sel.PrimaryIndex()}
	}
	return out
}

// writeSelection prints one range per line as anchor:head, marking the
// primary with an asterisk.
func writeSelection(w io.Writer, sel cursor.Selection) {
	for i, r := range sel.Ranges() {
		if i == sel.PrimaryIndex() {
			fprintf(w, "%d:%d *\n", r.Anchor, r.Head)
		} else {
			fprintf(w, "%d:%d\n", r.Anchor, r.Head)
		}
	}
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text", "json":
		return format, nil
	default:
		return "", errors.Errorf("unknown format %q (want text or json)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fprintf writes to a command stream; write errors there are not actionable.
func fprintf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
