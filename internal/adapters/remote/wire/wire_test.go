package wire

import (
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/storesync/internal/domain"
)

func TestUnwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "bare array", body: `[1,2]`, want: `[1,2]`},
		{name: "bare object", body: `{"id":1}`, want: `{"id":1}`},
		{name: "data envelope", body: `{"data":{"id":1}}`, want: `{"id":1}`},
		{name: "data is one of several keys", body: `{"data":1,"id":2}`, want: `{"data":1,"id":2}`},
		{name: "empty", body: ``, wantErr: true},
		{name: "null", body: `null`, wantErr: true},
		{name: "null envelope", body: `{"data":null}`, wantErr: true},
		{name: "malformed object", body: `{"data":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Unwrap("thing", []byte(tt.body))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrDecode) {
					t.Errorf("Unwrap() error = %v, want ErrDecode", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unwrap() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Unwrap() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDecode_TypeMismatchNamesField(t *testing.T) {
	t.Parallel()

	var v struct {
		ID int64 `json:"id"`
	}
	err := Decode("order", []byte(`{"id":"abc"}`), &v)

	var de *domain.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Decode() error = %v, want *domain.DecodeError", err)
	}
	if de.Entity != "order" {
		t.Errorf("Entity = %q, want order", de.Entity)
	}
	if de.Field != "ID" {
		t.Errorf("Field = %q, want ID", de.Field)
	}
}

func TestDecode_SyntaxError(t *testing.T) {
	t.Parallel()

	var v []int
	if err := Decode("refund", []byte(`[1,2`), &v); !errors.Is(err, domain.ErrDecode) {
		t.Errorf("Decode() error = %v, want ErrDecode", err)
	}
}

func TestGMTTime(t *testing.T) {
	t.Parallel()

	var v struct {
		At GMTTime `json:"at"`
	}
	if err := json.Unmarshal([]byte(`{"at":"2019-02-15T10:30:00"}`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := time.Date(2019, 2, 15, 10, 30, 0, 0, time.UTC)
	if !v.At.Equal(want) {
		t.Errorf("At = %v, want %v", v.At.Time, want)
	}

	for _, raw := range []string{`{"at":""}`, `{"at":null}`, `{}`} {
		v.At = GMTTime{}
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			t.Errorf("Unmarshal(%s) error = %v", raw, err)
		}
		if !v.At.IsZero() {
			t.Errorf("Unmarshal(%s) = %v, want zero", raw, v.At.Time)
		}
	}

	if err := json.Unmarshal([]byte(`{"at":"15/02/2019"}`), &v); err == nil {
		t.Error("Unmarshal() accepted a malformed timestamp")
	}
}

func TestDay_MarshalRoundTrip(t *testing.T) {
	t.Parallel()

	d := Day{Time: time.Date(2019, 4, 3, 0, 0, 0, 0, time.UTC)}
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `"2019-04-03"` {
		t.Errorf("Marshal() = %s, want \"2019-04-03\"", b)
	}

	var back Day
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", back.Time, d.Time)
	}
}

func TestMillis(t *testing.T) {
	t.Parallel()

	var m Millis
	if err := json.Unmarshal([]byte(`1550246400000`), &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := time.Date(2019, 2, 15, 16, 0, 0, 0, time.UTC)
	if !m.Equal(want) {
		t.Errorf("Millis = %v, want %v", m.Time, want)
	}
}

func TestDecimal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
	}{
		{raw: `"12.50"`, want: "12.5"},
		{raw: `12.5`, want: "12.5"},
		{raw: `""`, want: "0"},
		{raw: `null`, want: "0"},
		{raw: `"-3"`, want: "-3"},
	}

	for _, tt := range tests {
		var d Decimal
		if err := json.Unmarshal([]byte(tt.raw), &d); err != nil {
			t.Errorf("Unmarshal(%s) error = %v", tt.raw, err)
			continue
		}
		if !d.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("Unmarshal(%s) = %s, want %s", tt.raw, d.String(), tt.want)
		}
	}

	var d Decimal
	if err := json.Unmarshal([]byte(`"abc"`), &d); err == nil {
		t.Error("Unmarshal() accepted a non-numeric string")
	}
}
