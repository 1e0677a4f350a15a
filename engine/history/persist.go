package history

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/stylize/core"
)

// TimestampLayout is the layout of timestamps in the history file. Times
// are written in local time without zone, like ISO-8601 local date-times.
const TimestampLayout = "2006-01-02T15:04:05.999999999"

// Older files may hold timestamps with minute precision only.
var timestampLayouts = []string{TimestampLayout, "2006-01-02T15:04"}

func escape(text string) string {
	return strings.ReplaceAll(text, "\n", `\n`)
}

func unescape(text string) string {
	return strings.ReplaceAll(text, `\n`, "\n")
}

// Encode writes entries to w, one per line and in the given order.
func Encode(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		ts := e.Timestamp.Local().Format(TimestampLayout)
		if _, err := fmt.Fprintf(bw, "%d|%s|%s\n", e.ID, ts, escape(e.Text)); err != nil {
			return core.WrapError(err, core.EIO, "cannot write history entry %d", e.ID)
		}
	}
	if err := bw.Flush(); err != nil {
		return core.WrapError(err, core.EIO, "cannot write history")
	}
	return nil
}

// Decode reads entries from r. Lines which cannot be parsed, or which hold
// no text, are skipped; for every skipped line an error of kind
// core.EINVALID is returned. A read error ends decoding and is returned as
// an error of kind core.EIO. Lines are not limited in length.
func Decode(r io.Reader) ([]Entry, []error) {
	var entries []Entry
	var errs []error
	br := bufio.NewReader(r)
	lineno := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			tracer().Errorf("reading history: %v", err)
			errs = append(errs, core.WrapError(err, core.EIO, "cannot read history"))
			break
		}
		if line != "" {
			lineno++
		}
		if line = strings.TrimRight(line, "\r\n"); strings.TrimSpace(line) != "" {
			if e, lerr := decodeLine(line); lerr != nil {
				tracer().Errorf("history line %d skipped: %v", lineno, lerr)
				errs = append(errs, core.WrapError(lerr, core.EINVALID,
					"malformed history line %d", lineno))
			} else {
				entries = append(entries, e)
			}
		}
		if err == io.EOF {
			break
		}
	}
	return entries, errs
}

// decodeLine splits at the first two '|'; the text may contain more of them.
func decodeLine(line string) (Entry, error) {
	parts := strings.SplitN(line, "|", 3)
	if len(parts) != 3 {
		return Entry{}, fmt.Errorf("expected 3 fields, have %d", len(parts))
	}
	id, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("id: %w", err)
	}
	ts, err := parseTimestamp(parts[1])
	if err != nil {
		return Entry{}, err
	}
	text := strings.TrimSpace(unescape(parts[2]))
	if text == "" {
		return Entry{}, errors.New("empty text")
	}
	return Entry{ID: id, Timestamp: ts, Text: text}, nil
}

func parseTimestamp(s string) (t time.Time, err error) {
	for _, layout := range timestampLayouts {
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return t, fmt.Errorf("timestamp: %w", err)
}
