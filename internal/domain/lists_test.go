package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestStringListValueAndScanKeepOrder(t *testing.T) {
	in := StringList{"first aid", "cooking", "driving"}
	v, err := in.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != `["first aid","cooking","driving"]` {
		t.Fatalf("unexpected encoding %v", v)
	}
	var out StringList
	if err := out.Scan([]byte(v.(string))); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("expected %v, got %v", in, out)
	}
}

func TestListScanEmptyValues(t *testing.T) {
	for _, src := range []any{nil, "", []byte{}} {
		var out StringList
		if err := out.Scan(src); err != nil {
			t.Fatalf("scan %#v: %v", src, err)
		}
		if out == nil || len(out) != 0 {
			t.Fatalf("expected empty non-nil list for %#v, got %#v", src, out)
		}
	}
	var nilList StringList
	if v, _ := nilList.Value(); v != "[]" {
		t.Fatalf("expected [] for nil list, got %v", v)
	}
}

func TestListScanRejectsUnsupportedInput(t *testing.T) {
	var out DateList
	if err := out.Scan(12); err == nil {
		t.Fatal("expected error for int source")
	}
	if err := out.Scan("not-json"); err == nil {
		t.Fatal("expected error for malformed json")
	}
}

func TestParseDateList(t *testing.T) {
	got, err := ParseDateList([]string{"2024-07-15", "2024-01-02"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, DateList{"2024-07-15", "2024-01-02"}) {
		t.Fatalf("unexpected dates %v", got)
	}

	for _, bad := range []string{"2024-13-01", "07/15/2024", "2024-7-5", ""} {
		if _, err := ParseDateList([]string{bad}); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate for %q, got %v", bad, err)
		}
	}
}
