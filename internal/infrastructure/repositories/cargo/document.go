package cargo

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

const (
	manifestName = "Cargo.toml"
	versionKey   = "version"
	packageKey   = "package"
)

// dependencyTable is the key path of the shared workspace dependencies.
var dependencyTable = []string{"workspace", "dependencies"} //nolint:gochecknoglobals // constant key path

// Document is a workspace manifest kept as its original bytes. Values are
// decoded with BurntSushi/toml; the go-toml AST only locates the raw byte
// range of each string so edits splice nothing but the replaced version.
type Document struct {
	raw     []byte
	spans   []valueSpan
	entries []entities.DependencyEntry
}

// Parse validates data as TOML and indexes its workspace dependencies.
func Parse(data []byte) (*Document, error) {
	var decoded map[string]any
	if _, err := toml.Decode(string(data), &decoded); err != nil {
		return nil, err
	}

	spans, err := stringSpans(data)
	if err != nil {
		return nil, err
	}

	return &Document{
		raw:     bytes.Clone(data),
		spans:   spans,
		entries: dependencyEntries(decoded, spans),
	}, nil
}

// Dependencies lists the workspace dependency entries in file order.
func (d *Document) Dependencies() []entities.DependencyEntry {
	result := make([]entities.DependencyEntry, len(d.entries))
	copy(result, d.entries)
	return result
}

// SetVersion replaces the version value of entry, keeping its quoting style.
func (d *Document) SetVersion(entry entities.DependencyEntry, version string) error {
	span, ok := d.versionSpan(entry)
	if !ok {
		return fmt.Errorf("no version value found for dependency %q", entry.Name)
	}

	replacement := quoteLike(d.raw[span.start:span.end], span.kind, version)

	raw := make([]byte, 0, len(d.raw)-(span.end-span.start)+len(replacement))
	raw = append(raw, d.raw[:span.start]...)
	raw = append(raw, replacement...)
	raw = append(raw, d.raw[span.end:]...)

	spans, err := stringSpans(raw)
	if err != nil {
		return fmt.Errorf("rewritten manifest is invalid: %w", err)
	}

	d.raw = raw
	d.spans = spans
	for i := range d.entries {
		if d.entries[i].Name == entry.Name {
			d.entries[i].Version = version
		}
	}
	return nil
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	return bytes.Clone(d.raw)
}

func (d *Document) versionSpan(entry entities.DependencyEntry) (valueSpan, bool) {
	var want []string
	switch entry.Shape {
	case entities.ShapeBare:
		want = join(dependencyTable, []string{entry.Name})
	case entities.ShapeTable:
		want = join(dependencyTable, []string{entry.Name, versionKey})
	default:
		return valueSpan{}, false
	}

	for _, span := range d.spans {
		if equalPath(span.path, want) {
			return span, true
		}
	}
	return valueSpan{}, false
}

// dependencyEntries orders the decoded dependency table by the first
// appearance of each name in the file.
func dependencyEntries(decoded map[string]any, spans []valueSpan) []entities.DependencyEntry {
	table := lookupTable(decoded, dependencyTable...)
	if len(table) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(table))
	names := make([]string, 0, len(table))
	for _, span := range spans {
		if len(span.path) <= len(dependencyTable) || !equalPath(span.path[:len(dependencyTable)], dependencyTable) {
			continue
		}
		name := span.path[len(dependencyTable)]
		if _, ok := table[name]; ok && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	// sub-tables only declaring nested tables have no direct span
	var rest []string
	for name := range table {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	names = append(names, rest...)

	entries := make([]entities.DependencyEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, newDependencyEntry(name, table[name]))
	}
	return entries
}

func newDependencyEntry(name string, value any) entities.DependencyEntry {
	entry := entities.DependencyEntry{Name: name, Shape: entities.ShapeUnknown}

	switch v := value.(type) {
	case string:
		entry.Shape = entities.ShapeBare
		entry.Version = v
	case map[string]any:
		if alias, ok := v[packageKey].(string); ok {
			entry.Package = alias
		}
		if version, ok := v[versionKey].(string); ok {
			entry.Shape = entities.ShapeTable
			entry.Version = version
		}
	}

	return entry
}

func lookupTable(decoded map[string]any, path ...string) map[string]any {
	current := decoded
	for _, key := range path {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

func equalPath(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// quoteLike renders version as a TOML string, keeping a literal string
// literal when the new value can be expressed that way.
func quoteLike(original []byte, kind valueKind, version string) []byte {
	if kind == kindLiteralString && bytes.HasPrefix(original, []byte("'")) &&
		!strings.ContainsAny(version, "'\r\n") {
		return []byte("'" + version + "'")
	}
	return []byte(quoteBasic(version))
}

func quoteBasic(value string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\u%04X`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
