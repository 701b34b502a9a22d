package value

import (
	"fmt"
	"strconv"
	"strings"
)

// indentStep is the per-level indentation of Pretty.
const indentStep = "  "

func (v Signed) String() string { return strconv.FormatInt(int64(v), 10) }

func (v Unsigned) String() string { return strconv.FormatUint(uint64(v), 10) }

func (v Text) String() string { return strconv.Quote(string(v)) }

func (v Symbol) String() string { return string(v) }

func (v Address) String() string { return v.Encoded }

func (v Flags) String() string {
	var set []string
	for i, name := range v.Names {
		if name != "" && v.Raw&(0x80>>uint(i)) != 0 {
			set = append(set, name)
		}
	}
	return fmt.Sprintf("0x%02x (%s)", v.Raw, strings.Join(set, "|"))
}

func (v Object) String() string {
	var b strings.Builder
	b.WriteString("{ ")
	for _, nv := range v {
		fmt.Fprintf(&b, "%s: %s, ", nv.Name, nv.Val)
	}
	b.WriteString("}")
	return b.String()
}

func (v Bytes) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d B [", len(v))

	show := v
	if len(show) > 16 {
		show = show[:16]
	}
	for _, c := range show {
		fmt.Fprintf(&b, " %02x", c)
	}
	if len(v) > 16 {
		b.WriteString(" ...")
	}

	b.WriteString(" ]")
	return b.String()
}

func (v Payload) String() string {
	if v.Err != nil {
		return fmt.Sprintf("<<%s>>", v.Err)
	}
	return fmt.Sprintf("(%s)", v.Val)
}

// Pretty renders v as a multi-line form with two spaces of indentation per
// nesting level. Object children each get their own line; a successful
// payload is rendered inline behind a "->" marker, a failed one behind an
// error marker without further indentation.
func Pretty(v Val, indent int) string {
	switch n := v.(type) {
	case Object:
		var b strings.Builder
		b.WriteString("\n")
		prefix := strings.Repeat(indentStep, indent)
		for _, nv := range n {
			fmt.Fprintf(&b, "%s%s: %s\n", prefix, nv.Name, Pretty(nv.Val, indent+1))
		}
		return b.String()

	case Payload:
		if n.Err != nil {
			return fmt.Sprintf("<< Error: %s >>", n.Err)
		}
		return "-> " + Pretty(n.Val, indent+1)

	default:
		return v.String()
	}
}
