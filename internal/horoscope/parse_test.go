package horoscope

import (
	"errors"
	"testing"
)

func TestParse_Daily(t *testing.T) {
	resp := &Response{
		StatusCode: 200,
		Body:       `{"data":{"date":"Oct 17, 2026","horoscope_data":"Today is a good day."},"status":200,"success":true}`,
	}

	res, err := Parse(resp, Request{Sign: Libra})
	if err != nil {
		t.Fatalf("Parse() returned unexpected error: %v", err)
	}
	if res.Text != "Today is a good day." {
		t.Errorf("Text = %q, want %q", res.Text, "Today is a good day.")
	}
	if res.Sign != Libra {
		t.Errorf("Sign = %q, want libra", res.Sign)
	}
	if res.Period != Daily {
		t.Errorf("Period = %q, want daily", res.Period)
	}
	if res.Date != "Oct 17, 2026" {
		t.Errorf("Date = %q, want %q", res.Date, "Oct 17, 2026")
	}
	if res.Translated() {
		t.Error("Translated() = true for a freshly parsed result")
	}
}

func TestParse_WeeklyAndMonthlyDates(t *testing.T) {
	tests := []struct {
		name   string
		period Period
		body   string
		date   string
	}{
		{"weekly", Weekly, `{"data":{"week":"Oct 12 - Oct 18, 2026","horoscope_data":"A week."}}`, "Oct 12 - Oct 18, 2026"},
		{"monthly", Monthly, `{"data":{"month":"October 2026","horoscope_data":"A month."}}`, "October 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(&Response{StatusCode: 200, Body: tt.body}, Request{Sign: Leo, Period: tt.period})
			if err != nil {
				t.Fatalf("Parse() returned unexpected error: %v", err)
			}
			if res.Date != tt.date {
				t.Errorf("Date = %q, want %q", res.Date, tt.date)
			}
			if res.Period != tt.period {
				t.Errorf("Period = %q, want %q", res.Period, tt.period)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"data":`},
		{"missing data", `{"status":200}`},
		{"missing horoscope_data", `{"data":{"date":"Oct 17, 2026"}}`},
		{"wrong type", `{"data":{"horoscope_data":42}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(&Response{StatusCode: 200, Body: tt.body}, Request{Sign: Libra})
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}

			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("error %T is not a *FetchError", err)
			}
			if fetchErr.Type != ErrorTypeValidation {
				t.Errorf("Type = %q, want %q", fetchErr.Type, ErrorTypeValidation)
			}
		})
	}
}

func TestParse_NonOK(t *testing.T) {
	_, err := Parse(&Response{StatusCode: 404}, Request{Sign: Libra})
	if err == nil {
		t.Fatal("Parse() expected error for 404, got nil")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Type != ErrorTypeClient {
		t.Errorf("Parse() error = %v, want client FetchError", err)
	}
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		code int
		want ErrorType
	}{
		{404, ErrorTypeClient},
		{429, ErrorTypeClient},
		{500, ErrorTypeServer},
		{503, ErrorTypeServer},
		{302, ErrorTypeUnknown},
	}

	for _, tt := range tests {
		if got := ClassifyStatus(tt.code); got.Type != tt.want {
			t.Errorf("ClassifyStatus(%d).Type = %q, want %q", tt.code, got.Type, tt.want)
		}
	}
}

func TestFetchError_Error(t *testing.T) {
	err := &FetchError{Type: ErrorTypeServer, StatusCode: 500, Message: "server returned an error"}
	want := "server error (status 500): server returned an error"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	cause := errors.New("connection refused")
	netErr := newNetworkError(cause)
	if !errors.Is(netErr, cause) {
		t.Error("errors.Is(netErr, cause) = false, want true")
	}
}
