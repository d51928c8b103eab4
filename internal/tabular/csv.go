package tabular

import "strings"

// Record is any row variant that can render its CSV cells.
type Record interface {
	Fields() []string
}

// ToCSV renders rows under the given header: one comma-joined line per row,
// each terminated by a single newline.
//
// Cells are not quoted or escaped. Tickers, statuses and formatted numbers
// never contain commas; free-text columns are not exported. If that changes,
// this needs to move to RFC 4180 quoting as a deliberate format change for
// downstream consumers.
func ToCSV[T Record](rows []T, header []string) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')
	for _, r := range rows {
		b.WriteString(strings.Join(r.Fields(), ","))
		b.WriteByte('\n')
	}
	return b.String()
}
