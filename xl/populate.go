package xl

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// populateColumn maps one struct field to a sheet column.
type populateColumn struct {
	header string
	column int
	index  []int // reflect field index path
}

// PopulateCache remembers the column layout of struct types across
// Populate calls. It is safe for concurrent use. The zero value is ready
// to use.
type PopulateCache struct {
	m sync.Map // reflect.Type -> []populateColumn
}

func (pc *PopulateCache) columns(t reflect.Type) ([]populateColumn, error) {
	if pc == nil {
		return columnsOf(t)
	}
	if v, ok := pc.m.Load(t); ok {
		return v.([]populateColumn), nil
	}
	cols, err := columnsOf(t)
	if err != nil {
		return nil, err
	}
	v, _ := pc.m.LoadOrStore(t, cols)
	return v.([]populateColumn), nil
}

// Populate writes a bold header row followed by one row per element of
// data. T must be a struct or a pointer to a struct; every exported field
// becomes a column.
//
// The column of a field is controlled by its xlsx tag:
//
//	Name  string `xlsx:"Full Name"`  // header text
//	Price int    `xlsx:"Price,col=0"` // fixed zero-based column
//	Notes string `xlsx:"-"`           // skipped
//
// Fields without a fixed column are placed after the highest fixed column
// in declaration order. A nil cache computes the layout on every call.
func Populate[T any](s *Sheet, data []T, cache *PopulateCache) error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %s is not a struct", ErrUnsupportedType, t)
	}

	cols, err := cache.columns(t)
	if err != nil {
		return err
	}

	for _, col := range cols {
		err := s.SetAt(0, col.column, NewText(col.header).SetBold(true))
		if err != nil {
			return err
		}
	}

	for i, item := range data {
		v := reflect.ValueOf(item)
		for v.Kind() == reflect.Pointer {
			v = v.Elem()
		}
		if !v.IsValid() {
			continue
		}
		for _, col := range cols {
			f, err := v.FieldByIndexErr(col.index)
			if err != nil {
				// nil embedded pointer
				continue
			}
			c, err := cellFromValue(f)
			if err != nil {
				return fmt.Errorf("row %d, field %s: %w", i, col.header, err)
			}
			if c == nil {
				continue
			}
			err = s.SetAt(i+1, col.column, c)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// FromData creates a sheet named name and populates it with data.
func FromData[T any](name string, data []T, cache *PopulateCache) (*Sheet, error) {
	s, err := NewSheet(name)
	if err != nil {
		return nil, err
	}
	err = Populate(s, data, cache)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func columnsOf(t reflect.Type) ([]populateColumn, error) {
	var cols []populateColumn
	used := map[int]bool{}
	maxCol := -1

	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := f.Tag.Get("xlsx")
		if tag == "-" {
			continue
		}

		col := populateColumn{header: f.Name, column: -1, index: f.Index}
		name, opts, _ := strings.Cut(tag, ",")
		if name != "" {
			col.header = name
		}
		for _, opt := range strings.Split(opts, ",") {
			v, ok := strings.CutPrefix(opt, "col=")
			if !ok {
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: field %s.%s has column %q", ErrOutOfRange, t, f.Name, v)
			}
			if used[n] {
				return nil, fmt.Errorf("%w: %s column %d", ErrDuplicateColumnIndex, t, n)
			}
			used[n] = true
			col.column = n
			maxCol = max(maxCol, n)
		}
		cols = append(cols, col)
	}

	for i := range cols {
		if cols[i].column < 0 {
			maxCol++
			cols[i].column = maxCol
		}
	}
	return cols, nil
}

var (
	timeType    = reflect.TypeOf((*time.Time)(nil)).Elem()
	decimalType = reflect.TypeOf((*decimal.Decimal)(nil)).Elem()
)

// cellFromValue converts a field value into a cell. Nil pointers and
// interfaces yield no cell.
func cellFromValue(v reflect.Value) (*Cell, error) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}

	if v.CanInterface() {
		switch v.Type() {
		case timeType:
			return NewDate(v.Interface().(time.Time)), nil
		case decimalType:
			return NewNumber(v.Interface().(decimal.Decimal)), nil
		}
	}

	switch v.Kind() {
	case reflect.String:
		return NewText(v.String()), nil
	case reflect.Bool:
		return NewText(strconv.FormatBool(v.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NewInt(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NewNumber(decimal.NewFromUint64(v.Uint())).SetFormat(FormatNumberNoDecimalPlaces), nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %v has no cell representation", ErrOutOfRange, f)
		}
		return NewFloat(f), nil
	}

	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return NewText(s.String()), nil
		}
	}
	return nil, fmt.Errorf("%w: field of type %s", ErrUnsupportedType, v.Type())
}
