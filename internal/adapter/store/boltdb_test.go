package store

import (
	"path/filepath"
	"strings"
	"testing"

	"csmap/config"
	"csmap/internal/domain"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "outline.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleOutline(path string) domain.FileOutline {
	return domain.FileOutline{
		Path:      path,
		ModTime:   1700000000,
		Namespace: "Demo",
		ClassName: "Person",
		Inherits:  []string{"BaseClass", "IPerson"},
		Usings:    []string{"using System;\n"},
		Members: []domain.Declaration{
			{Kind: "method", Name: "Describe", Signature: "string Describe(int depth)", StartLine: 8, EndLine: 12},
		},
	}
}

func TestBoltStore_PutAndGetOutline(t *testing.T) {
	s := newTestStore(t)

	if err := s.PutOutline(sampleOutline("/src/Person.cs")); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := s.GetOutline("/src/Person.cs")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ClassName != "Person" || got.Namespace != "Demo" {
		t.Errorf("unexpected outline %+v", got)
	}
	if len(got.Members) != 1 || got.Members[0].Name != "Describe" {
		t.Errorf("unexpected members %+v", got.Members)
	}
}

func TestBoltStore_GetMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetOutline("/src/Nope.cs")
	if err == nil {
		t.Fatal("expected an error for a missing outline")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestBoltStore_PutOverwrites(t *testing.T) {
	s := newTestStore(t)

	o := sampleOutline("/src/Person.cs")
	if err := s.PutOutline(o); err != nil {
		t.Fatal(err)
	}
	o.ClassName = "Renamed"
	if err := s.PutOutline(o); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetOutline("/src/Person.cs")
	if err != nil {
		t.Fatal(err)
	}
	if got.ClassName != "Renamed" {
		t.Errorf("expected overwrite, got %q", got.ClassName)
	}
}

func TestBoltStore_DeleteOutline(t *testing.T) {
	s := newTestStore(t)

	if err := s.PutOutline(sampleOutline("/src/Person.cs")); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteOutline("/src/Person.cs"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := s.GetOutline("/src/Person.cs"); err == nil {
		t.Error("expected deleted outline to be gone")
	}
}

func TestBoltStore_ListOutlines(t *testing.T) {
	s := newTestStore(t)

	for _, p := range []string{"/src/A.cs", "/src/B.cs", "/src/C.cs"} {
		if err := s.PutOutline(sampleOutline(p)); err != nil {
			t.Fatal(err)
		}
	}

	outlines, err := s.ListOutlines()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(outlines) != 3 {
		t.Errorf("expected 3 outlines, got %d", len(outlines))
	}
}

func TestBoltStore_Stats(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalFiles != 0 || stats.TotalMembers != 0 {
		t.Errorf("expected zero stats on a fresh store, got %+v", stats)
	}

	if err := s.UpdateStats(domain.Stats{TotalFiles: 4, TotalMembers: 17}); err != nil {
		t.Fatal(err)
	}
	stats, err = s.GetStats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalFiles != 4 || stats.TotalMembers != 17 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestBoltStore_Clear(t *testing.T) {
	s := newTestStore(t)

	if err := s.PutOutline(sampleOutline("/src/A.cs")); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}

	outlines, err := s.ListOutlines()
	if err != nil {
		t.Fatal(err)
	}
	if len(outlines) != 0 {
		t.Errorf("expected empty store after clear, got %d", len(outlines))
	}
}

func TestSchema_FreshDatabaseNeedsNoRebuild(t *testing.T) {
	s := newTestStore(t)
	cfg := config.DefaultConfig()

	check, err := s.CheckSchema(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if check.NeedsRebuild {
		t.Errorf("fresh database should not need a rebuild: %s", check.Reason)
	}
}

func TestSchema_MarkThenCheck(t *testing.T) {
	s := newTestStore(t)
	cfg := config.DefaultConfig()

	if err := s.MarkSchema(cfg); err != nil {
		t.Fatal(err)
	}
	check, err := s.CheckSchema(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if check.NeedsRebuild {
		t.Errorf("unchanged config should not need a rebuild: %s", check.Reason)
	}
}

func TestSchema_ConfigChangeForcesRebuild(t *testing.T) {
	s := newTestStore(t)
	cfg := config.DefaultConfig()

	if err := s.MarkSchema(cfg); err != nil {
		t.Fatal(err)
	}

	changed := config.DefaultConfig()
	changed.Scan.Modifier = "internal"
	check, err := s.CheckSchema(changed)
	if err != nil {
		t.Fatal(err)
	}
	if !check.NeedsRebuild {
		t.Error("modifier change should force a rebuild")
	}
}

func TestSchema_VersionMismatchForcesRebuild(t *testing.T) {
	s := newTestStore(t)
	cfg := config.DefaultConfig()

	if err := s.SetSchemaInfo(&SchemaInfo{Version: CurrentSchemaVersion + 1, ConfigHash: ComputeConfigHash(cfg)}); err != nil {
		t.Fatal(err)
	}
	check, err := s.CheckSchema(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !check.NeedsRebuild {
		t.Error("schema version mismatch should force a rebuild")
	}
}

func TestComputeConfigHash_Stable(t *testing.T) {
	a := ComputeConfigHash(config.DefaultConfig())
	b := ComputeConfigHash(config.DefaultConfig())
	if a != b {
		t.Errorf("hash should be deterministic: %q vs %q", a, b)
	}

	changed := config.DefaultConfig()
	changed.Scan.Includes = []string{"src/**/*.cs"}
	if ComputeConfigHash(changed) == a {
		t.Error("include change should change the hash")
	}
}
