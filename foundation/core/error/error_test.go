// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, classification and
//              snippet rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-17 v0.2.0: Syntax/semantic classification and rendering

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("boom")

	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestNewSyntax(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantToken string
		wantEOF   bool
	}{
		{name: "token", token: ";", wantToken: ";"},
		{name: "end of input", token: "", wantToken: "EOF", wantEOF: true},
		{name: "identifier spelled EOF", token: "EOF", wantToken: "EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSyntax("unexpected token", tt.token, 3, 7)
			if !IsSyntax(err) {
				t.Fatalf("IsSyntax() = false for %v", err)
			}
			if err.Token() != tt.wantToken {
				t.Errorf("Token() = %q, want %q", err.Token(), tt.wantToken)
			}
			if err.AtEOF() != tt.wantEOF {
				t.Errorf("AtEOF() = %v, want %v", err.AtEOF(), tt.wantEOF)
			}
			if Wrap(err, "parse failed").AtEOF() != tt.wantEOF {
				t.Error("Wrap() dropped the end of input flag")
			}
			if err.Line() != 3 || err.Column() != 7 {
				t.Errorf("position = %d:%d, want 3:7", err.Line(), err.Column())
			}
			if err.Severity() != SeverityHigh {
				t.Errorf("Severity() = %v, want high", err.Severity())
			}
		})
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := NewSemantic("division by zero").WithDetail("operator", "/")
	wrapped := Wrap(base, "evaluating statement")

	if wrapped.Code() != CodeSemantic {
		t.Errorf("wrapped code = %v, want %v", wrapped.Code(), CodeSemantic)
	}
	if wrapped.Details()["operator"] != "/" {
		t.Errorf("details not preserved: %v", wrapped.Details())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should find the wrapped cause")
	}
	if got := wrapped.Error(); got != "evaluating statement: division by zero" {
		t.Errorf("Error() = %q", got)
	}

	std := Wrap(errors.New("disk full"), "write journal")
	if std.Code() != CodeUnknown {
		t.Errorf("std wrap code = %v, want %v", std.Code(), CodeUnknown)
	}
}

func TestClassificationThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("run main.sbml: %w", NewSemantic("undefined name"))

	if !IsSemantic(err) {
		t.Error("IsSemantic should see through fmt.Errorf wrapping")
	}
	if IsSyntax(err) {
		t.Error("IsSyntax should be false for a semantic error")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("plain errors should report CodeUnknown")
	}
}

func TestCodeExitStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeSyntax, 1},
		{CodeSemantic, 1},
		{CodeInterrupted, 130},
		{CodeConfigError, 2},
		{CodeNotFound, 2},
	}
	for _, tt := range tests {
		if got := tt.code.ExitStatus(); got != tt.want {
			t.Errorf("%s.ExitStatus() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := NewSyntax("expected ';'", "}", 2, 5).WithOperation("parser.parseStatement")

	data, mErr := json.Marshal(err)
	if mErr != nil {
		t.Fatalf("Marshal: %v", mErr)
	}

	var decoded map[string]interface{}
	if uErr := json.Unmarshal(data, &decoded); uErr != nil {
		t.Fatalf("Unmarshal: %v", uErr)
	}
	if decoded["code"] != "SYNTAX" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["token"] != "}" {
		t.Errorf("token = %v", decoded["token"])
	}
	if decoded["line"] != float64(2) {
		t.Errorf("line = %v", decoded["line"])
	}
}

func TestRender(t *testing.T) {
	source := "{\n  x = 1 +;\n  print(x);\n}"
	err := NewSyntax("unexpected token", ";", 2, 10)

	out := Render(err, source)

	if !strings.HasPrefix(out, "SYNTAX ERROR at 2:10") {
		t.Errorf("unexpected header: %q", out)
	}
	if !strings.Contains(out, "   2 |   x = 1 +;") {
		t.Errorf("missing offending line: %q", out)
	}
	if !strings.Contains(out, "     |          ^") {
		t.Errorf("caret misplaced: %q", out)
	}

	plain := Render(NewSemantic("division by zero"), source)
	if plain != "SEMANTIC ERROR: division by zero\n" {
		t.Errorf("Render without position = %q", plain)
	}
}
