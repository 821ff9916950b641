package tablestate

import (
	"cmp"
	"fmt"
	"reflect"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FormatValue renders an accessor value as plain text for filtering and default cells.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(time.DateOnly)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// comparator orders accessor values. Strings use English collation, ignoring case,
// so "apple" and "Banana" sort the way a reader expects.
type comparator struct {
	coll *collate.Collator
}

func newComparator() *comparator {
	return &comparator{coll: collate.New(language.English, collate.IgnoreCase, collate.Numeric)}
}

// compare returns -1, 0 or 1. Values of different kinds compare by their text form.
func (c *comparator) compare(a, b any) int {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return c.coll.CompareString(av, bv)
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv)
		}
	case bool:
		if bv, ok := b.(bool); ok {
			switch {
			case av == bv:
				return 0
			case !av:
				return -1
			default:
				return 1
			}
		}
	}

	if af, ok := numeric(a); ok {
		if bf, ok := numeric(b); ok {
			return cmp.Compare(af, bf)
		}
	}
	return c.coll.CompareString(FormatValue(a), FormatValue(b))
}

func numeric(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
