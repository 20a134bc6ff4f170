package profile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/akyairhashvil/takvim/internal/database"
	"github.com/akyairhashvil/takvim/internal/models"
)

func openDB(t *testing.T) *database.Database {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

func TestLoadMissingProfile(t *testing.T) {
	db := openDB(t)
	p, found := Load(context.Background(), db)
	if found {
		t.Fatalf("expected no stored profile")
	}
	if p != (models.MosqueProfile{}) {
		t.Fatalf("expected empty defaults, got %+v", p)
	}
}

func TestSaveLoadDelete(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	want := models.MosqueProfile{
		Imam:              "Hoxhë Ramadan",
		MosqueName:        "Xhamia e Re",
		Location:          "Paris, Francë",
		AnnouncementTitle: "Iftar",
		AnnouncementBody:  "Iftar i përbashkët të shtunën",
		ShowIqamah:        true,
	}
	if err := Save(ctx, db, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, found := Load(ctx, db)
	if !found || got != want {
		t.Fatalf("Load() = %+v, %v; want %+v", got, found, want)
	}
	if err := Delete(ctx, db); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, found := Load(ctx, db); found {
		t.Fatalf("expected profile to be gone after Delete")
	}
}

func TestLoadCorruptProfileFallsBack(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	if err := db.SetSetting(ctx, config.ProfileKey, "{not json"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	p, found := Load(ctx, db)
	if found {
		t.Fatalf("corrupt profile must not count as found")
	}
	if p != (models.MosqueProfile{}) {
		t.Fatalf("expected empty defaults, got %+v", p)
	}
}

func TestDecodeUsesFormKeys(t *testing.T) {
	p, err := Decode(`{"imam":"A","mosqueName":"B","location":"C","showIqamah":true}`)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if p.Imam != "A" || p.MosqueName != "B" || p.Location != "C" || !p.ShowIqamah {
		t.Fatalf("Decode() = %+v", p)
	}
	if _, err := Decode("[]"); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

type failingRepo struct{ err error }

func (f failingRepo) GetSetting(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingRepo) SetSetting(context.Context, string, string) error        { return f.err }
func (f failingRepo) DeleteSetting(context.Context, string) error             { return f.err }

func TestRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	repo := failingRepo{err: errors.New("unreachable")}
	if _, found := Load(ctx, repo); found {
		t.Fatalf("expected defaults when the repository fails")
	}
	if err := Save(ctx, repo, models.MosqueProfile{Imam: "A"}); err == nil {
		t.Fatalf("expected Save to report repository errors")
	}
	if err := Delete(ctx, repo); err == nil {
		t.Fatalf("expected Delete to report repository errors")
	}
}
