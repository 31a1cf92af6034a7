package workspace

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsSourceFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"modMain.bas", true},
		{"CThing.cls", true},
		{"frmMain.FRM", true},
		{"ctlGrid.ctl", true},
		{"report.vbp", false},
		{"readme.txt", false},
		{"main.go", false},
	}
	for _, tt := range tests {
		if got := IsSourceFile(tt.path); got != tt.want {
			t.Errorf("IsSourceFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestUpdateFile(t *testing.T) {
	w := New(".")

	info := w.UpdateFile("mod.bas", []byte("x = 1\n"))
	if len(info.Failures) != 0 {
		t.Errorf("failures = %v", info.Failures)
	}
	if info.Tree == nil || info.Tree.Text() != "x = 1\n" {
		t.Error("tree missing or not lossless")
	}

	info = w.UpdateFile("mod.bas", []byte("x = \n"))
	if len(info.Failures) != 1 {
		t.Errorf("failures = %v", info.Failures)
	}
	if got := w.GetFile("mod.bas"); got != info {
		t.Error("GetFile returned a stale entry")
	}
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "modMain.bas", "Option Explicit\n")
	writeFile(t, dir, "sub/CThing.cls", "Public Sub Go()\nEnd Sub\n")
	writeFile(t, dir, "notes.txt", "not code")

	w := New(dir)
	if err := w.ScanAll(); err != nil {
		t.Fatal(err)
	}

	files := w.Files()
	if len(files) != 2 {
		t.Fatalf("tracked %d files, want 2", len(files))
	}
	if w.FailureCount() != 0 {
		t.Errorf("failure count = %d", w.FailureCount())
	}
}

func TestScanProject(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "modReport.bas", "x = \n")
	writeFile(t, dir, "frmMain.frm", "Option Explicit\n")
	vbp := writeFile(t, dir, "report.vbp",
		"Type=Exe\nModule=modReport; modReport.bas\nForm=frmMain.frm\nForm=missing.frm\nName=\"Report\"\n")

	w := New(dir)
	proj, err := w.ScanProject(vbp)
	if err != nil {
		t.Fatal(err)
	}
	if proj.Name != "Report" {
		t.Errorf("project name = %q", proj.Name)
	}
	if w.Project() != proj {
		t.Error("project not retained")
	}

	// The missing form is skipped, the two real files are tracked.
	if files := w.Files(); len(files) != 2 {
		t.Fatalf("tracked %d files, want 2", len(files))
	}
	if w.FailureCount() != 1 {
		t.Errorf("failure count = %d", w.FailureCount())
	}

	info := w.GetFile(filepath.Join(dir, "modReport.bas"))
	if info == nil || len(info.Failures) != 1 {
		t.Fatalf("modReport.bas info = %+v", info)
	}
}

func TestRemoveFile(t *testing.T) {
	w := New(".")
	w.UpdateFile("a.bas", []byte("x = 1"))
	w.RemoveFile("a.bas")
	if w.GetFile("a.bas") != nil {
		t.Error("file still tracked after removal")
	}
	if len(w.Files()) != 0 {
		t.Error("Files still lists the removed entry")
	}
}

func TestFilesSorted(t *testing.T) {
	w := New(".")
	w.UpdateFile("b.bas", []byte(""))
	w.UpdateFile("a.bas", []byte(""))
	w.UpdateFile("c.bas", []byte(""))

	files := w.Files()
	if len(files) != 3 {
		t.Fatalf("tracked %d files", len(files))
	}
	if files[0].Path != "a.bas" || files[2].Path != "c.bas" {
		t.Errorf("files out of order: %s, %s, %s", files[0].Path, files[1].Path, files[2].Path)
	}
}

func TestFileWatcherScan(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "modMain.bas", "x = 1\n")

	w := New(dir)
	fw := NewFileWatcher(w)
	var updates []string
	fw.OnUpdate = func(info *FileInfo) { updates = append(updates, info.Path) }
	var removed []string
	fw.OnRemove = func(path string) { removed = append(removed, path) }

	fw.scan()
	if w.GetFile(path) == nil {
		t.Fatal("new file not tracked")
	}
	if len(updates) != 1 || updates[0] != path {
		t.Fatalf("updates = %v", updates)
	}

	// Unchanged files are not reparsed.
	fw.scan()
	if len(updates) != 1 {
		t.Errorf("updates after idle scan = %v", updates)
	}

	// A newer modification time triggers a reparse.
	if err := os.WriteFile(path, []byte("x = \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}
	fw.scan()
	if len(updates) != 2 {
		t.Fatalf("updates after edit = %v", updates)
	}
	if info := w.GetFile(path); info == nil || len(info.Failures) != 1 {
		t.Errorf("edited file info = %+v", info)
	}

	// A deleted file is dropped from the workspace.
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	fw.scan()
	if w.GetFile(path) != nil {
		t.Error("deleted file still tracked")
	}
	if len(removed) != 1 || removed[0] != path {
		t.Errorf("removed = %v", removed)
	}
}

func TestFileWatcherStartStop(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "modMain.bas", "Option Explicit\n")

	w := New(dir)
	fw := NewFileWatcher(w)
	seen := make(chan string, 1)
	fw.OnUpdate = func(info *FileInfo) {
		select {
		case seen <- info.Path:
		default:
		}
	}

	fw.Start()
	defer fw.Stop()

	select {
	case <-seen:
	case <-time.After(5 * time.Second):
		t.Fatal("initial scan never reported the source file")
	}
}

func TestFailureToDiagnostic(t *testing.T) {
	w := New(".")
	info := w.UpdateFile("mod.bas", []byte("x = \n"))
	if len(info.Failures) != 1 {
		t.Fatalf("failures = %v", info.Failures)
	}

	d := failureToDiagnostic(info.Failures[0])
	if d.Message == "" {
		t.Error("empty diagnostic message")
	}
	if d.Severity == nil || *d.Severity != 1 {
		t.Errorf("severity = %v, want error", d.Severity)
	}
	// Parser positions are 1-based, LSP positions 0-based.
	if d.Range.Start.Line != 0 {
		t.Errorf("line = %d, want 0", d.Range.Start.Line)
	}
}

func TestUriToPath(t *testing.T) {
	path, err := uriToPath("file:///home/dev/mod.bas")
	if err != nil {
		t.Fatal(err)
	}
	if path != "/home/dev/mod.bas" {
		t.Errorf("path = %q", path)
	}

	path, err = uriToPath("mod.bas")
	if err != nil || path != "mod.bas" {
		t.Errorf("path = %q, err = %v", path, err)
	}
}
