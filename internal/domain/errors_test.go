package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_UnwrapAndCode(t *testing.T) {
	cause := errors.New("boom")
	err := ErrDBUnavailable(cause)

	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped")
	}
	if Code(err) != "db_unavailable" {
		t.Fatalf("expected code db_unavailable, got %q", Code(err))
	}
	if Code(fmt.Errorf("plain")) != "non_domain_error" {
		t.Fatalf("expected non_domain_error for plain errors")
	}
	if Code(nil) != "" {
		t.Fatalf("expected empty code for nil")
	}
}

func TestError_IsMatchesWrappedCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", ErrBlogNotFound())
	if !Is(err, "blog_not_found") {
		t.Fatalf("expected Is to match wrapped domain code")
	}
	if Is(err, "user_not_found") {
		t.Fatalf("expected Is to reject other codes")
	}
}

func TestErrValidation_CarriesAllSources(t *testing.T) {
	src := []ErrorSource{
		{Path: "title", Message: "title is required"},
		{Path: "content", Message: "content must be at least 10 characters"},
	}
	err := ErrValidation(src)
	if len(err.Sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(err.Sources))
	}
	if err.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %s", err.Kind)
	}
}
