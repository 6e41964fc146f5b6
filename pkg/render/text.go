package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"
)

const defaultFontFamily = "system-ui, sans-serif"

// EscapeXML escapes a string for use as SVG text or attribute content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// renderLabel writes a centered, possibly multi-line label. Lines advance by
// the same factor the sizing heuristic reserved for them, so text stays
// inside the measured box.
func renderLabel(buf *bytes.Buffer, cx, cy float64, text string, size float64, fill, family string) {
	lines := strings.Split(text, "\n")
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="middle">`,
		cx, cy, family, size, fill)
	if len(lines) == 1 {
		buf.WriteString(EscapeXML(lines[0]))
	} else {
		advance := size * 1.5
		startY := cy - advance*float64(len(lines)-1)/2
		for i, line := range lines {
			fmt.Fprintf(buf, `<tspan x="%.1f" y="%.1f">%s</tspan>`,
				cx, startY+advance*float64(i), EscapeXML(line))
		}
	}
	buf.WriteString("</text>\n")
}
