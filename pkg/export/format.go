package export

import (
	"context"
	"io"
	"slices"
	"strings"

	"github.com/matzehuels/blocks/pkg/errors"
)

// Supported output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// Formats lists every format accepted by [Write].
var Formats = []string{FormatJSON, FormatDOT, FormatSVG, FormatPNG}

// ParseFormats splits a comma-separated format list, lower-cases and
// de-duplicates it. An empty list yields json.
func ParseFormats(s string) ([]string, error) {
	var out []string
	for f := range strings.SplitSeq(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" {
			continue
		}
		if !slices.Contains(Formats, f) {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want one of %s)", f, strings.Join(Formats, ", "))
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		out = []string{FormatJSON}
	}
	return out, nil
}

// Write renders s in format and writes it to w.
func Write(ctx context.Context, w io.Writer, s Snapshot, format string, opts Options) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		return WriteJSON(s, w)
	case FormatDOT:
		_, err = io.WriteString(w, ToDOT(s, opts))
		return err
	case FormatSVG:
		data, err = RenderSVG(ctx, ToDOT(s, opts))
	case FormatPNG:
		data, err = RenderPNG(ctx, ToDOT(s, opts))
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
