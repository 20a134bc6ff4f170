package database

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)

	if _, ok, err := db.GetSetting(ctx, "mosqueFormData"); err != nil || ok {
		t.Fatalf("expected missing setting, got ok=%v err=%v", ok, err)
	}
	if err := db.SetSetting(ctx, "mosqueFormData", `{"imam":"A"}`); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	if err := db.SetSetting(ctx, "mosqueFormData", `{"imam":"B"}`); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	got, ok, err := db.GetSetting(ctx, "mosqueFormData")
	if err != nil || !ok {
		t.Fatalf("GetSetting failed: ok=%v err=%v", ok, err)
	}
	if got != `{"imam":"B"}` {
		t.Fatalf("GetSetting = %q, want overwritten value", got)
	}

	if err := db.DeleteSetting(ctx, "mosqueFormData"); err != nil {
		t.Fatalf("DeleteSetting failed: %v", err)
	}
	if _, ok, _ := db.GetSetting(ctx, "mosqueFormData"); ok {
		t.Fatalf("expected setting to be gone after delete")
	}
	if err := db.DeleteSetting(ctx, "never-set"); err != nil {
		t.Fatalf("DeleteSetting of a missing key failed: %v", err)
	}
}

func TestSettingsNullValue(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if _, err := db.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, NULL)", "empty"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if _, ok, err := db.GetSetting(ctx, "empty"); err != nil || ok {
		t.Fatalf("NULL value should read as missing, got ok=%v err=%v", ok, err)
	}
}

func TestSettingErrorsAreWrapped(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	err := db.SetSetting(ctx, "k", "v")
	if err == nil {
		t.Fatalf("expected error on closed database")
	}
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Op != "set" || opErr.Key != "k" {
		t.Fatalf("expected set OpError for key k, got %v", err)
	}
	if !strings.Contains(err.Error(), `set setting "k"`) {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestOpErrorMessages(t *testing.T) {
	var nilErr *OpError
	if nilErr.Error() != "" {
		t.Fatalf("nil OpError should render empty")
	}
	base := errors.New("disk full")
	err := &OpError{Op: "open", Resource: "database", Err: base}
	if err.Error() != "open database: disk full" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected Unwrap to expose the cause")
	}
	if wrapSettingErr("get", "k", nil) != nil {
		t.Fatalf("wrapSettingErr(nil) should be nil")
	}
}
