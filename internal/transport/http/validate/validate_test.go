package validate

import (
	"errors"
	"testing"

	"github.com/baechuer/blog-api/internal/domain"
	"github.com/baechuer/blog-api/internal/transport/http/dto"
)

func sourcesOf(t *testing.T, err error) []domain.ErrorSource {
	t.Helper()
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected domain error, got %v", err)
	}
	return de.Sources
}

func TestStruct_ValidPasses(t *testing.T) {
	t.Parallel()

	err := Struct(dto.RegisterRequest{
		Name:     "Alice Smith",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
}

func TestStruct_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	err := Struct(dto.RegisterRequest{
		Name:     "Al", // too short
		Email:    "not-an-email",
		Password: "123", // too short
	})
	if domain.Code(err) != "validation_error" {
		t.Fatalf("expected validation_error, got %v", err)
	}

	sources := sourcesOf(t, err)
	if len(sources) != 3 {
		t.Fatalf("expected all 3 violations reported, got %+v", sources)
	}

	paths := map[string]bool{}
	for _, s := range sources {
		paths[s.Path] = true
		if s.Message == "" {
			t.Fatalf("violation %q missing message", s.Path)
		}
	}
	for _, want := range []string{"name", "email", "password"} {
		if !paths[want] {
			t.Fatalf("missing violation for %q in %+v", want, sources)
		}
	}
}

func TestStruct_PathsUseJSONTags(t *testing.T) {
	t.Parallel()

	err := Struct(dto.LoginRequest{Email: "bad", Password: "x"})
	sources := sourcesOf(t, err)
	if len(sources) != 1 || sources[0].Path != "email" {
		t.Fatalf("expected json tag path, got %+v", sources)
	}
}

func TestStruct_OptionalPatchFields(t *testing.T) {
	t.Parallel()

	// Absent fields are fine.
	if err := Struct(dto.UpdateBlogRequest{}); err != nil {
		t.Fatalf("empty patch must validate: %v", err)
	}

	// Present fields still honor their bounds.
	empty := ""
	err := Struct(dto.UpdateBlogRequest{Title: &empty})
	if domain.Code(err) != "validation_error" {
		t.Fatalf("expected validation_error for empty title, got %v", err)
	}
}
