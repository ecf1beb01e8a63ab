package common

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestWriteCIResult(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCIResult(&buf, "migrate up", []string{"tables: 5"}, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	var got CIResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.OK || got.Title != "migrate up" || len(got.Details) != 1 || got.Error != "" {
		t.Fatalf("unexpected result %+v", got)
	}

	buf.Reset()
	if err := WriteCIResult(&buf, "migrate status", nil, errors.New("db ping: refused")); err != nil {
		t.Fatalf("write: %v", err)
	}
	got = CIResult{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.OK || got.Error != "db ping: refused" {
		t.Fatalf("unexpected failure result %+v", got)
	}
	if bytes.Contains(buf.Bytes(), []byte(`"details"`)) {
		t.Fatalf("empty details should be omitted: %s", buf.String())
	}
}
