package validator

import (
	"testing"

	api "github.com/trendlens/insight-api/api/v1alpha1"
)

func TestAnalyzeRequestValidators(t *testing.T) {
	tests := []struct {
		name       string
		form       api.AnalyzeRequest
		shouldFail bool
	}{
		{
			name: "valid product url",
			form: api.AnalyzeRequest{Url: "https://www.meesho.com/premium-tshirt/p/1"},
		},
		{
			name: "domain marker anywhere in the value",
			form: api.AnalyzeRequest{Url: "meesho.com/p/1"},
		},
		{
			name:       "missing url",
			form:       api.AnalyzeRequest{},
			shouldFail: true,
		},
		{
			name:       "url without the domain marker",
			form:       api.AnalyzeRequest{Url: "https://example.com/not-meesho"},
			shouldFail: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			v := NewValidator()
			v.Register(NewAnalyzeValidationRules()...)

			err := v.Struct(test.form)
			if test.shouldFail && err == nil {
				t.Errorf("expected validation of %q to fail", test.form.Url)
			}
			if !test.shouldFail && err != nil {
				t.Errorf("expected validation of %q to pass, got %v", test.form.Url, err)
			}
		})
	}
}
