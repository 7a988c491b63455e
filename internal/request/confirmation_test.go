package request

import (
	"net/url"
	"testing"

	"github.com/nordicsun/gooodmorning/internal/checkin"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   int
		wantOK bool
	}{
		{name: "empty", value: "", want: 0, wantOK: false},
		{name: "zero", value: "0", want: 0, wantOK: true},
		{name: "trimmed", value: " 4 ", want: 4, wantOK: true},
		{name: "negative", value: "-1", want: 0, wantOK: false},
		{name: "word", value: "two", want: 0, wantOK: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := ParseCount(test.value)
			if got != test.want || ok != test.wantOK {
				t.Fatalf("ParseCount(%q) = %d, %t, want %d, %t", test.value, got, ok, test.want, test.wantOK)
			}
		})
	}
}

func TestConfirmationFromQueryRoundTrip(t *testing.T) {
	want := checkin.ConfirmationPayload{Room: "204", Entitled: 2, Entered: 1}

	got, ok := ConfirmationFromQuery(want.Query())
	if !ok {
		t.Fatalf("expected room to be present")
	}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestConfirmationFromQueryMissingRoom(t *testing.T) {
	got, ok := ConfirmationFromQuery(url.Values{"entitled": {"x"}, "entered": {"3"}})
	if ok {
		t.Fatalf("expected missing room to be reported")
	}
	if got.Entitled != 0 || got.Entered != 3 {
		t.Fatalf("unexpected payload: %+v", got)
	}
}
