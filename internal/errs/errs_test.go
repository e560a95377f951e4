package errs

import (
	stderrs "errors"
	"fmt"
	"testing"
)

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	e1 := New(CodeValidation, "bad window")
	if CodeOf(e1) != CodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(CodeQuery, "bad query %d", 12)
	if got := e2.Error(); got != "bad query 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	src := stderrs.New("root")
	e3 := Wrap(src, CodeUnavailable, "fetch failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if got := e3.Error(); got != "fetch failed: root" {
		t.Fatalf("Wrap().Error = %q", got)
	}

	// code survives fmt wrapping
	e4 := fmt.Errorf("outer: %w", Wrapf(src, CodeGateway, "bad gateway"))
	if CodeOf(e4) != CodeGateway {
		t.Fatalf("CodeOf through %%w = %v", CodeOf(e4))
	}

	if CodeOf(src) != CodeUnknown {
		t.Fatalf("CodeOf(foreign) = %v, want unknown", CodeOf(src))
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		code Code
		want bool
	}{
		{CodeUnavailable, true},
		{CodeGateway, true},
		{CodeUnauthorized, false},
		{CodeForbidden, false},
		{CodeNotFound, false},
		{CodeRateLimited, false},
		{CodeInvalidArgument, false},
		{CodeValidation, false},
		{CodeQuery, false},
		{CodeUnknown, false},
	}
	for _, c := range cases {
		if got := Retryable(New(c.code, "x")); got != c.want {
			t.Fatalf("Retryable(%v) = %v, want %v", c.code, got, c.want)
		}
	}
	if Retryable(nil) {
		t.Fatal("Retryable(nil) = true")
	}
	if !IsGateway(New(CodeGateway, "x")) || IsGateway(New(CodeUnavailable, "x")) {
		t.Fatal("IsGateway misclassified")
	}
}

func TestFromHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		want   Code
	}{
		{401, CodeUnauthorized},
		{403, CodeForbidden},
		{404, CodeNotFound},
		{429, CodeRateLimited},
		{422, CodeInvalidArgument},
		{502, CodeGateway},
		{503, CodeGateway},
		{504, CodeGateway},
		{500, CodeUnavailable},
		{200, CodeUnknown},
	}
	for _, c := range cases {
		if got := FromHTTPStatus(c.status); got != c.want {
			t.Fatalf("FromHTTPStatus(%d) = %v, want %v", c.status, got, c.want)
		}
	}
}
