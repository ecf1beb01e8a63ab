package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// StringList is stored as a JSON array in a text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (l *StringList) Scan(src any) error {
	out, err := scanJSONStrings(src)
	if err != nil {
		return err
	}
	*l = out
	return nil
}

// DateList holds calendar dates in YYYY-MM-DD form, order preserved.
type DateList []string

func ParseDateList(values []string) (DateList, error) {
	out := make(DateList, 0, len(values))
	for _, v := range values {
		if _, err := time.Parse(DateLayout, v); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, v)
		}
		out = append(out, v)
	}
	return out, nil
}

func (l DateList) Value() (driver.Value, error) {
	return StringList(l).Value()
}

func (l *DateList) Scan(src any) error {
	out, err := scanJSONStrings(src)
	if err != nil {
		return err
	}
	*l = DateList(out)
	return nil
}

func scanJSONStrings(src any) ([]string, error) {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return []string{}, nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return nil, fmt.Errorf("unsupported list column type %T", src)
	}
	if len(raw) == 0 {
		return []string{}, nil
	}
	out := []string{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode list column: %w", err)
	}
	return out, nil
}
