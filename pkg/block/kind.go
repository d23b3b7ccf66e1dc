// Package block classifies physical Markdown lines into block kinds.
package block

import "fmt"

// Kind is the block classification of a line or paragraph.
type Kind int

// Line and paragraph kinds. Empty and TableDelimiter exist only on lines;
// Table exists only on paragraphs.
const (
	Text Kind = iota
	Code
	Bullet
	Numbered
	Quote
	Header
	HorizontalRule
	Empty
	TableDelimiter
	Table
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [...]string{
	Text:           "text",
	Code:           "code",
	Bullet:         "bullet",
	Numbered:       "numbered",
	Quote:          "quote",
	Header:         "header",
	HorizontalRule: "hrule",
	Empty:          "empty",
	TableDelimiter: "table-delimiter",
	Table:          "table",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown block kind %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// StartsBlock reports whether a line of this kind always begins a new
// paragraph. These kinds carry their marker only on the first line of a block.
func (k Kind) StartsBlock() bool {
	switch k {
	case Bullet, Numbered, Header, Code, HorizontalRule, Quote:
		return true
	case Text, Empty, TableDelimiter, Table:
		return false
	}
	return false
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}
