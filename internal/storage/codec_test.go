package storage

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"lottogen/internal/model"
)

func TestEncodeArchiveNilIsEmptyArray(t *testing.T) {
	data, err := EncodeArchive(nil)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if data != "[]" {
		t.Fatalf("unexpected payload: %s", data)
	}
}

func TestEncodeArchiveFieldNames(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	data, err := EncodeArchive([]model.Combination{{Numbers: []int{3, 12, 19}, Bonus: 5, Timestamp: ts, ID: 42}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `[{"numbers":[3,12,19],"bonus":5,"timestamp":"2024-05-01T10:00:00Z","id":42}]`
	if data != want {
		t.Fatalf("unexpected payload:\n got %s\nwant %s", data, want)
	}
}

func TestDecodeArchiveBrowserPayload(t *testing.T) {
	payload := `[{"numbers":[3,12,19,27,41,48],"bonus":5,"timestamp":"2024-05-01T10:00:00.123Z","id":1714557600123}]`
	combinations, err := DecodeArchive(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(combinations) != 1 {
		t.Fatalf("unexpected length: %d", len(combinations))
	}
	got := combinations[0]
	if !reflect.DeepEqual(got.Numbers, []int{3, 12, 19, 27, 41, 48}) || got.Bonus != 5 || got.ID != 1714557600123 {
		t.Fatalf("unexpected combination: %+v", got)
	}
	if got.Timestamp.Nanosecond() != 123_000_000 {
		t.Fatalf("unexpected timestamp: %s", got.Timestamp)
	}
}

func TestDecodeArchiveNullIsEmpty(t *testing.T) {
	combinations, err := DecodeArchive("null")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if combinations == nil || len(combinations) != 0 {
		t.Fatalf("expected empty archive, got %#v", combinations)
	}
}

func TestDecodeArchiveRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"unsorted":  `[{"numbers":[5,3],"bonus":1,"timestamp":"2024-05-01T10:00:00Z","id":1}]`,
		"duplicate": `[{"numbers":[3,3],"bonus":1,"timestamp":"2024-05-01T10:00:00Z","id":1}]`,
		"empty":     `[{"numbers":[],"bonus":1,"timestamp":"2024-05-01T10:00:00Z","id":1}]`,
		"zero":      `[{"numbers":[0,3],"bonus":1,"timestamp":"2024-05-01T10:00:00Z","id":1}]`,
		"bonus":     `[{"numbers":[1,3],"bonus":0,"timestamp":"2024-05-01T10:00:00Z","id":1}]`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeArchive(payload)
			if !errors.Is(err, ErrMalformedArchive) {
				t.Fatalf("expected ErrMalformedArchive, got %v", err)
			}
		})
	}
}

func TestDecodeArchiveRejectsInvalidJSON(t *testing.T) {
	if _, err := DecodeArchive("{not json"); err == nil {
		t.Fatal("expected json error")
	}
}
