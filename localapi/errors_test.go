package localapi

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorKindStrings(t *testing.T) {
	cases := map[ErrorKind]string{
		KindGeneric:      "generic",
		KindBadRequest:   "bad_request",
		KindUnauthorized: "unauthorized",
		KindNotFound:     "not_found",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}

func TestKindForStatus(t *testing.T) {
	cases := map[int]ErrorKind{
		400: KindBadRequest,
		401: KindUnauthorized,
		403: KindUnauthorized,
		404: KindNotFound,
		500: KindGeneric,
	}
	for status, want := range cases {
		if got := kindForStatus(status); got != want {
			t.Errorf("kindForStatus(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("boom")

	if !errors.Is(&ConfigError{Path: "/p", Message: "m", Err: cause}, cause) {
		t.Error("ConfigError does not unwrap its cause")
	}
	if !errors.Is(&RequestError{Method: "GET", Path: "/p", Err: cause}, cause) {
		t.Error("RequestError does not unwrap its cause")
	}
	if !errors.Is(&DecodeError{Body: []byte("raw"), Err: cause}, cause) {
		t.Error("DecodeError does not unwrap its cause")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 404, Kind: KindNotFound, Message: "no match for IP"}
	if !strings.Contains(err.Error(), "no match for IP") {
		t.Errorf("daemon message missing from %q", err.Error())
	}

	bare := &APIError{StatusCode: 500, Kind: KindGeneric}
	if !strings.Contains(bare.Error(), "500") {
		t.Errorf("status missing from %q", bare.Error())
	}
}

func TestTrimBody(t *testing.T) {
	if got := trimBody([]byte("first line\nsecond line")); got != "first line" {
		t.Errorf("trimBody = %q", got)
	}
	long := strings.Repeat("x", 500)
	if got := trimBody([]byte(long)); len(got) != 200 {
		t.Errorf("trimBody did not cap length, got %d", len(got))
	}
}
