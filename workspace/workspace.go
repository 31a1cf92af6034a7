// Package workspace tracks a set of VB6 source files and keeps a parsed
// tree with its failures for each of them. The LSP server and the check
// command are built on top of it.
package workspace

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/vbx/vb6/parser"
	"github.com/dhamidi/vbx/vb6/project"
)

var log = commonlog.GetLogger("vbx.workspace")

type Workspace struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
	project *project.Project
}

type FileInfo struct {
	Path     string
	Content  []byte
	Tree     *parser.Tree
	Failures []parser.Failure
}

func New(rootDir string) *Workspace {
	return &Workspace{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

// IsSourceFile reports whether path names a VB6 source file by
// extension.
func IsSourceFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bas", ".cls", ".frm", ".ctl", ".dob":
		return true
	}
	return false
}

// ScanAll walks the root directory and parses every VB6 source file.
func (w *Workspace) ScanAll() error {
	return filepath.Walk(w.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != w.rootDir {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSourceFile(path) {
			w.ScanFile(path)
		}
		return nil
	})
}

// ScanProject loads a .vbp file and parses every source it names.
// Sources the project names but the disk does not have are logged and
// skipped; legacy trees are rarely complete.
func (w *Workspace) ScanProject(vbpPath string) (*project.Project, error) {
	proj, err := project.LoadFrom(vbpPath)
	if err != nil {
		return nil, err
	}
	for _, path := range proj.SourceFiles() {
		if err := w.ScanFile(path); err != nil {
			log.Warningf("skipping %s: %s", path, err.Error())
		}
	}
	w.mu.Lock()
	w.project = proj
	w.mu.Unlock()
	return proj, nil
}

// Project returns the project loaded by ScanProject, or nil.
func (w *Workspace) Project() *project.Project {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.project
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile reparses the file with the given content and stores the
// result. Parsing never fails: malformed source yields a tree plus
// failures.
func (w *Workspace) UpdateFile(path string, content []byte) *FileInfo {
	tree, failures := parser.ParseText(filepath.Base(path), string(content))
	info := &FileInfo{
		Path:     path,
		Content:  content,
		Tree:     tree,
		Failures: failures,
	}
	w.mu.Lock()
	w.files[path] = info
	w.mu.Unlock()
	return info
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Files returns the tracked files in path order.
func (w *Workspace) Files() []*FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	out := make([]*FileInfo, 0, len(paths))
	for _, path := range paths {
		out = append(out, w.files[path])
	}
	return out
}

// FailureCount returns the total number of parse failures across all
// tracked files.
func (w *Workspace) FailureCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	total := 0
	for _, f := range w.files {
		total += len(f.Failures)
	}
	return total
}
