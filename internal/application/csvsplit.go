package application

import "strings"

// SplitRecord splits one line of review CSV into fields. A comma is a
// delimiter only when the rest of the line after it holds an even number
// of double quotes, so commas inside a quoted span stay in their field.
// Quotes are kept in the fields. Trailing empty fields are dropped.
func SplitRecord(line string) []string {
	quotesAfter := strings.Count(line, `"`)

	var fields []string
	start := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			quotesAfter--
		case ',':
			if quotesAfter%2 == 0 {
				fields = append(fields, line[start:i])
				start = i + 1
			}
		}
	}
	fields = append(fields, line[start:])

	for len(fields) > 0 && fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	return fields
}
