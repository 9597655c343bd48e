package dropoff

import (
	"fmt"
	"strconv"
)

// ListFlag collects every occurrence of a repeatable command line flag.
type ListFlag[T any] struct {
	Values []T
	parse  func(string) (T, error)
}

func (f *ListFlag[T]) String() string {
	return fmt.Sprintf("%v", f.Values)
}

func (f *ListFlag[T]) Set(value string) error {
	val, err := f.parse(value)
	if err != nil {
		return err
	}
	f.Values = append(f.Values, val)
	return nil
}

func StringList() *ListFlag[string] {
	return &ListFlag[string]{parse: func(s string) (string, error) { return s, nil }}
}

func IntList() *ListFlag[int] {
	return &ListFlag[int]{parse: strconv.Atoi}
}

func FloatList() *ListFlag[float64] {
	return &ListFlag[float64]{parse: func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }}
}
