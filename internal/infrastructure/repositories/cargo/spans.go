package cargo

import (
	"bytes"

	"github.com/pelletier/go-toml/v2/unstable"
)

// valueKind is the lexical form of a string value.
type valueKind int

const (
	kindBasicString valueKind = iota
	kindLiteralString
	kindMultilineString
)

// arrayTableSuffix marks [[array]] tables so their keys never collide with
// plain tables of the same name.
const arrayTableSuffix = "[]"

var utf8BOM = []byte("\xef\xbb\xbf") //nolint:gochecknoglobals // constant byte sequence

// valueSpan locates the raw bytes of one string value in the manifest.
// Values nested in arrays are not recorded.
type valueSpan struct {
	path       []string
	start, end int
	kind       valueKind
}

// stringSpans walks the top-level expressions of src and returns the byte
// range of every string value reachable through tables, dotted keys and
// inline tables.
func stringSpans(src []byte) ([]valueSpan, error) {
	offset := 0
	if bytes.HasPrefix(src, utf8BOM) {
		offset = len(utf8BOM)
	}

	var parser unstable.Parser
	parser.Reset(src[offset:])

	var table []string
	var spans []valueSpan
	for parser.NextExpression() {
		expr := parser.Expression()
		switch expr.Kind {
		case unstable.Table:
			table = keyPath(expr.Key())
		case unstable.ArrayTable:
			table = keyPath(expr.Key())
			table[len(table)-1] += arrayTableSuffix
		case unstable.KeyValue:
			spans = collectSpans(&parser, spans, join(table, keyPath(expr.Key())), expr.Value(), offset)
		default:
		}
	}
	if err := parser.Error(); err != nil {
		return nil, err
	}
	return spans, nil
}

func collectSpans(
	parser *unstable.Parser,
	spans []valueSpan,
	path []string,
	value *unstable.Node,
	offset int,
) []valueSpan {
	switch value.Kind {
	case unstable.String:
		start := offset + int(value.Raw.Offset)
		spans = append(spans, valueSpan{
			path:  path,
			start: start,
			end:   start + int(value.Raw.Length),
			kind:  stringKind(parser.Raw(value.Raw)),
		})
	case unstable.InlineTable:
		children := value.Children()
		for children.Next() {
			kv := children.Node()
			spans = collectSpans(parser, spans, join(path, keyPath(kv.Key())), kv.Value(), offset)
		}
	default:
	}
	return spans
}

func keyPath(it unstable.Iterator) []string {
	var path []string
	for it.Next() {
		path = append(path, string(it.Node().Data))
	}
	return path
}

func stringKind(raw []byte) valueKind {
	switch {
	case bytes.HasPrefix(raw, []byte(`"""`)), bytes.HasPrefix(raw, []byte(`'''`)):
		return kindMultilineString
	case bytes.HasPrefix(raw, []byte(`'`)):
		return kindLiteralString
	default:
		return kindBasicString
	}
}

// join returns a new slice holding a followed by b.
func join(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
