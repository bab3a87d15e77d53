// SPDX-License-Identifier: MIT

package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Alexsandra-Z/system-analysis-2025/ranking"
)

var (
	// ErrMalformed is returned when input is not a sequence of identifiers or
	// identifier lists, or when the ranking it describes is inconsistent.
	ErrMalformed = errors.New("codec: malformed ranking")

	// ErrUnknownFormat is returned for an output format other than json or yaml.
	ErrUnknownFormat = errors.New("codec: unknown format")
)

// Format names an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a case-insensitive format name; "yml" is an alias of yaml.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// trailingSep matches a separator directly before a closing bracket or brace.
var trailingSep = regexp.MustCompile(`,\s*([\]\}])`)

// Parse decodes a loose-JSON ranking.
// Stage 1 (Relax): strip trailing separators.
// Stage 2 (Decode): JSON with numbers kept verbatim.
// Stage 3 (Build): shape check, then ranking.New.
func Parse(s string) (ranking.Ranking, error) {
	relaxed := trailingSep.ReplaceAllString(s, "$1")

	dec := json.NewDecoder(strings.NewReader(relaxed))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after ranking", ErrMalformed)
	}

	return build(raw)
}

// ParseYAML decodes a ranking written as a YAML sequence, flow or block style.
func ParseYAML(s string) (ranking.Ranking, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(s), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return build(raw)
}

// FromValue builds a ranking from an already decoded value, such as a field of
// a JSON request body. Strings are parsed as loose JSON.
func FromValue(v any) (ranking.Ranking, error) {
	if s, ok := v.(string); ok {
		return Parse(s)
	}

	return build(v)
}

// build converts a decoded document into a validated ranking.
func build(raw any) (ranking.Ranking, error) {
	top, ok := raw.([]any)
	if !ok {
		if raw == nil {
			return ranking.Ranking{}, nil
		}
		return nil, fmt.Errorf("%w: top level must be a sequence, got %T", ErrMalformed, raw)
	}

	levels := make([]ranking.Level, len(top))
	for i, el := range top {
		if inner, ok := el.([]any); ok {
			lv := make(ranking.Level, len(inner))
			for j, x := range inner {
				id, err := objectID(x)
				if err != nil {
					return nil, fmt.Errorf("%w: level %d item %d: %v", ErrMalformed, i, j, err)
				}
				lv[j] = id
			}
			levels[i] = lv
			continue
		}
		id, err := objectID(el)
		if err != nil {
			return nil, fmt.Errorf("%w: level %d: %v", ErrMalformed, i, err)
		}
		levels[i] = ranking.Level{id}
	}

	r, err := ranking.New(levels...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return r, nil
}

// objectID accepts integers and integral floats from either decoder.
func objectID(v any) (ranking.ObjectID, error) {
	switch x := v.(type) {
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return fromInt64(n)
		}
		f, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("not a number: %s", x)
		}
		return fromFloat(f)
	case int:
		return ranking.ObjectID(x), nil
	case int64:
		return fromInt64(x)
	case uint64:
		if x > math.MaxInt32 {
			return 0, fmt.Errorf("identifier %d out of range", x)
		}
		return ranking.ObjectID(x), nil
	case float64:
		return fromFloat(x)
	case nil:
		return 0, errors.New("null identifier")
	default:
		return 0, fmt.Errorf("unexpected %T", v)
	}
}

func fromInt64(n int64) (ranking.ObjectID, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("identifier %d out of range", n)
	}

	return ranking.ObjectID(n), nil
}

func fromFloat(f float64) (ranking.ObjectID, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("identifier %v is not an integer", f)
	}

	return fromInt64(int64(f))
}

// Render converts r into its output shape: a single-member level becomes an
// int, a tied level a sorted []int. An empty ranking renders as an empty slice.
func Render(r ranking.Ranking) []any {
	out := make([]any, len(r))
	for i, lv := range r {
		if len(lv) == 1 {
			out[i] = int(lv[0])
			continue
		}
		ids := make([]int, len(lv))
		for j, id := range lv {
			ids[j] = int(id)
		}
		out[i] = ids
	}

	return out
}

// Encode writes r in the given format without a trailing newline.
func Encode(r ranking.Ranking, f Format) (string, error) {
	switch f {
	case FormatJSON:
		b, err := json.Marshal(Render(r))
		if err != nil {
			return "", fmt.Errorf("codec: encode json: %w", err)
		}
		return string(b), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		if err := enc.Encode(flowNode(r)); err != nil {
			return "", fmt.Errorf("codec: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return "", fmt.Errorf("codec: encode yaml: %w", err)
		}
		return strings.TrimRight(buf.String(), "\n"), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// flowNode builds a flow-style YAML sequence for r.
func flowNode(r ranking.Ranking) *yaml.Node {
	root := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, lv := range r {
		if len(lv) == 1 {
			root.Content = append(root.Content, intNode(lv[0]))
			continue
		}
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, id := range lv {
			seq.Content = append(seq.Content, intNode(id))
		}
		root.Content = append(root.Content, seq)
	}

	return root
}

func intNode(id ranking.ObjectID) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(int(id))}
}
