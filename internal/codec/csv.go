package codec

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/keboola/go-utils/pkg/orderedmap"
	"github.com/spf13/cast"

	"datashell/internal/datatype"
	"datashell/internal/format"
)

// CSV converts object <-> string<text/csv>. The first record is the header;
// every further record becomes an ordered map keyed by it.
func CSV(opts Options) *StringCodec {
	comma := opts.CSVComma
	if comma == 0 {
		comma = ','
	}

	return &StringCodec{
		Name:  "csv",
		Value: datatype.Object(),
		Text:  datatype.String(format.CSV),
		Stringify: func(v any) (string, error) {
			return encodeCSV(v, comma)
		},
		Parse: func(s string) (any, error) {
			return decodeCSV(s, comma, opts.CSVNumbers)
		},
	}
}

func decodeCSV(s string, comma rune, numbers NumberPolicy) (any, error) {
	r := csv.NewReader(strings.NewReader(s))
	r.Comma = comma
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]any, 0, max(len(records)-1, 0))
	if len(records) == 0 {
		return rows, nil
	}

	header := records[0]
	for _, record := range records[1:] {
		row := orderedmap.New()

		for i, name := range header {
			cell := ""
			if i < len(record) {
				cell = record[i]
			}

			row.Set(name, typedCell(cell, numbers))
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func typedCell(cell string, numbers NumberPolicy) any {
	if numbers != NumbersSniff {
		return cell
	}

	if i, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return i
	}

	if f, err := strconv.ParseFloat(cell, 64); err == nil {
		return f
	}

	return cell
}

func encodeCSV(v any, comma rune) (string, error) {
	var rows []any

	switch x := Ordered(v).(type) {
	case []any:
		rows = x
	case *orderedmap.OrderedMap:
		rows = []any{x}
	default:
		return "", fmt.Errorf("csv: expected an array of records, got %T", v)
	}

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	w.Comma = comma

	header := csvHeader(rows)
	if len(header) > 0 {
		if err := w.Write(header); err != nil {
			return "", err
		}
	}

	for i, row := range rows {
		var record []string

		switch r := row.(type) {
		case *orderedmap.OrderedMap:
			record = make([]string, len(header))
			for j, name := range header {
				val, _ := r.Get(name)

				cell, err := cellString(val)
				if err != nil {
					return "", err
				}

				record[j] = cell
			}
		case []any:
			record = make([]string, len(r))
			for j, val := range r {
				cell, err := cellString(val)
				if err != nil {
					return "", err
				}

				record[j] = cell
			}
		default:
			return "", fmt.Errorf("csv: row %d: expected a record or an array, got %T", i, row)
		}

		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// csvHeader is the union of record keys in first-seen order.
func csvHeader(rows []any) []string {
	var header []string

	seen := map[string]bool{}

	for _, row := range rows {
		r, ok := row.(*orderedmap.OrderedMap)
		if !ok {
			continue
		}

		for _, k := range r.Keys() {
			if !seen[k] {
				seen[k] = true
				header = append(header, k)
			}
		}
	}

	return header
}

// cellString renders scalars with cast and nested values as compact JSON.
func cellString(v any) (string, error) {
	switch v.(type) {
	case nil:
		return "", nil
	case *orderedmap.OrderedMap, []any:
		return EncodeJSON(v, 0)
	default:
		return cast.ToStringE(v)
	}
}
