package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/theoremus-urban-solutions/venuefinder/utils"
)

// BuildText renders a response as tab-separated lines: a header line, then
// one line per venue (id, floor, aliases) or route (name, style).
func (rb *responseBuilder) BuildText(res *Response) []byte {
	var buf bytes.Buffer
	buf.WriteString(header(res))
	buf.WriteByte('\n')
	for _, v := range res.Venues {
		fmt.Fprintf(&buf, "%s\t%s\t%s\n", v.ID, v.Floor, strings.Join(v.Aliases, "; "))
	}
	for _, r := range res.Routes {
		fmt.Fprintf(&buf, "%s\t%s\n", r.Name, r.Style)
	}
	return buf.Bytes()
}

func header(res *Response) string {
	var b strings.Builder
	b.WriteString(res.Call)
	if res.Query != "" {
		fmt.Fprintf(&b, " %q", res.Query)
	}
	if w := res.Window; w != nil {
		fmt.Fprintf(&b, " %s %s-%s", utils.DayName(w.Day), utils.FormatHour(w.Time), utils.FormatHour(w.End()))
	}
	noun := "results"
	if res.Count == 1 {
		noun = "result"
	}
	fmt.Fprintf(&b, ": %d %s", res.Count, noun)
	return b.String()
}
