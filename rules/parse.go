package rules

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedRule is returned for any rule line that does not parse
var ErrMalformedRule = errors.New("malformed move rule")

// ParseRule parses one "dr,dc[:tag]" entry
// Text after '#' is a comment; tag is blank (either), "capture" or "non_capture"
func ParseRule(line string) (Rule, bool, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return Rule{}, false, nil
	}

	coords, tagStr, _ := strings.Cut(line, ":")
	drStr, dcStr, ok := strings.Cut(coords, ",")
	if !ok {
		return Rule{}, false, errors.Wrapf(ErrMalformedRule, "%q: expected dr,dc", line)
	}
	dr, err := strconv.Atoi(strings.TrimSpace(drStr))
	if err != nil {
		return Rule{}, false, errors.Wrapf(ErrMalformedRule, "%q: bad row offset", line)
	}
	dc, err := strconv.Atoi(strings.TrimSpace(dcStr))
	if err != nil {
		return Rule{}, false, errors.Wrapf(ErrMalformedRule, "%q: bad column offset", line)
	}

	var tag Tag
	switch strings.TrimSpace(tagStr) {
	case "", "either":
		tag = TagEither
	case "capture":
		tag = TagCapture
	case "non_capture":
		tag = TagNonCapture
	default:
		return Rule{}, false, errors.Wrapf(ErrMalformedRule, "%q: unknown tag %q", line, strings.TrimSpace(tagStr))
	}

	return Rule{Offset: Offset{DR: dr, DC: dc}, Tag: tag}, true, nil
}

// ParseLines builds a table from rule lines; blank and comment lines are skipped
func ParseLines(lines []string, rows, cols int) (*Table, error) {
	rules := make([]Rule, 0, len(lines))
	for i, line := range lines {
		r, ok, err := ParseRule(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		if ok {
			rules = append(rules, r)
		}
	}
	return NewTable(rows, cols, rules), nil
}

// Parse reads a moves file
func Parse(r io.Reader, rows, cols int) (*Table, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read moves")
	}
	return ParseLines(lines, rows, cols)
}
