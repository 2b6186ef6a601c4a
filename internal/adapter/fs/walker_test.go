package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalker_IncludesOnlyCSharpByDefault(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Person.cs", "public class Person { }")
	writeFile(t, root, "notes.txt", "not source")
	writeFile(t, root, "sub/Other.cs", "public class Other { }")

	w := NewWalker(nil, nil)
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(files), files)
	}
	for _, f := range files {
		if !strings.HasSuffix(f.Path, ".cs") {
			t.Errorf("non-C# file walked: %s", f.Path)
		}
		if f.ModTime == 0 {
			t.Errorf("expected a mod time for %s", f.Path)
		}
	}
}

func TestWalker_ExcludePatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Person.cs", "public class Person { }")
	writeFile(t, root, "bin/Generated.cs", "public class Generated { }")
	writeFile(t, root, "src/obj/Temp.cs", "public class Temp { }")

	w := NewWalker(nil, []string{"**/bin/**", "**/obj/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %+v", len(files), files)
	}
	if !strings.HasSuffix(files[0].Path, "Person.cs") {
		t.Errorf("unexpected file %s", files[0].Path)
	}
}

func TestWalker_CustomIncludes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/Model.cs", "public class Model { }")
	writeFile(t, root, "tests/ModelTest.cs", "public class ModelTest { }")

	w := NewWalker([]string{"src/**/*.cs"}, nil)
	files, err := w.Walk(root)
	if err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	if len(files) != 1 || !strings.HasSuffix(files[0].Path, filepath.Join("src", "Model.cs")) {
		t.Errorf("expected only src files, got %+v", files)
	}
}

func TestReader_ReadFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "Person.cs", "public class Person { }")

	content, err := Reader{}.ReadFile(filepath.Join(root, "Person.cs"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if content != "public class Person { }" {
		t.Errorf("unexpected content %q", content)
	}
}

func TestReader_Missing(t *testing.T) {
	if _, err := (Reader{}).ReadFile(filepath.Join(t.TempDir(), "nope.cs")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
