package failure

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/giuseppedipinto/io-functions-admin/internal/logging"
)

func newCaptureLogger() (logging.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil))), &buf
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name      string
		f         *Failure
		wantKind  Kind
		wantError string
	}{
		{"invalid input", InvalidInput("bad fiscal code"), KindInvalidInput, "INVALID_INPUT_FAILURE: bad fiscal code"},
		{"query", Query("findMessages", errors.New("timeout")), KindQuery, "QUERY_FAILURE (findMessages): timeout"},
		{"blob", BlobCreation(errors.New("put: 500")), KindBlobCreation, "BLOB_FAILURE: put: 500"},
		{"delete", DocumentDelete(errors.New("conn reset")), KindDocumentDelete, "DELETE_FAILURE: conn reset"},
		{"user not found", UserNotFound(), KindUserNotFound, "USER_NOT_FOUND_FAILURE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.f.Kind != tc.wantKind {
				t.Fatalf("kind = %q, want %q", tc.f.Kind, tc.wantKind)
			}
			if got := tc.f.Error(); got != tc.wantError {
				t.Fatalf("Error() = %q, want %q", got, tc.wantError)
			}
		})
	}
}

func TestLog_CoversEveryKind(t *testing.T) {
	tests := []struct {
		f    *Failure
		want []string
	}{
		{InvalidInput("decode error"), []string{"invalid activity input", "reason=\"decode error\""}},
		{Query("profileVersions", errors.New("boom")), []string{"live-store query failed", "query=profileVersions", "reason=boom"}},
		{BlobCreation(errors.New("denied")), []string{"archive write failed", "reason=denied"}},
		{DocumentDelete(errors.New("gone")), []string{"live-store delete failed", "reason=gone"}},
		{UserNotFound(), []string{"user not found"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.f.Kind), func(t *testing.T) {
			log, buf := newCaptureLogger()
			Log(context.Background(), log, tc.f)
			out := buf.String()
			if !strings.Contains(out, "level=ERROR") {
				t.Fatalf("expected ERROR level, got:\n%s", out)
			}
			for _, want := range tc.want {
				if !strings.Contains(out, want) {
					t.Fatalf("expected %q in output:\n%s", want, out)
				}
			}
		})
	}
}

func TestLog_PanicsOnUnknownKind(t *testing.T) {
	log, _ := newCaptureLogger()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for unknown failure kind")
		}
		if !strings.Contains(r.(string), "unhandled failure kind") {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()

	Log(context.Background(), log, &Failure{Kind: Kind("SOMETHING_ELSE")})
}
