package horoscope

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Result is a parsed horoscope, optionally carrying its translation.
type Result struct {
	Sign   Sign
	Period Period
	// Date is whatever label the API attached: a day, a week range or a month.
	Date string
	Text string
	// TranslatedText is set only when translation succeeded.
	TranslatedText string
}

// Translated reports whether r carries a translation.
func (r *Result) Translated() bool {
	return r.TranslatedText != ""
}

// Parse extracts data.horoscope_data from a 200 response.
func Parse(resp *Response, req Request) (*Result, error) {
	if !resp.OK() {
		return nil, ClassifyStatus(resp.StatusCode)
	}
	if !gjson.Valid(resp.Body) {
		return nil, newValidationError("response body is not valid JSON", nil)
	}

	text := gjson.Get(resp.Body, "data.horoscope_data")
	if !text.Exists() {
		return nil, newValidationError("data.horoscope_data missing from response", nil)
	}
	if text.Type != gjson.String {
		return nil, newValidationError(fmt.Sprintf("data.horoscope_data is %s, want string", text.Type), nil)
	}

	period := req.Period
	if period == "" {
		period = Daily
	}

	date := gjson.Get(resp.Body, "data.date").String()
	if date == "" {
		date = gjson.Get(resp.Body, "data.week").String()
	}
	if date == "" {
		date = gjson.Get(resp.Body, "data.month").String()
	}

	return &Result{
		Sign:   req.Sign,
		Period: period,
		Date:   date,
		Text:   text.String(),
	}, nil
}
