// Package project reads VB6 project files (.vbp). A project file is a
// list of Key=Value lines naming the modules, classes, and forms that
// make up a program, plus compiler settings and version information.
package project

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Type is the compile target of a project.
type Type string

const (
	TypeExe     Type = "Exe"
	TypeOleDll  Type = "OleDll"
	TypeOleExe  Type = "OleExe"
	TypeControl Type = "Control"
)

// FileReference names one source file of the project. Modules and
// classes carry both a logical name and a path; forms only a path.
type FileReference struct {
	Name string
	Path string
}

// VersionInfo holds the VERSIONINFO resource fields of the project.
type VersionInfo struct {
	Major         int
	Minor         int
	Revision      int
	AutoIncrement bool

	CompanyName     string
	FileDescription string
	Copyright       string
	Trademark       string
	ProductName     string
	Comments        string
}

// Project is the parsed content of a .vbp file.
type Project struct {
	Type Type

	References       []string
	Objects          []string
	Modules          []FileReference
	Classes          []FileReference
	Forms            []string
	Designers        []string
	UserControls     []string
	UserDocuments    []string
	RelatedDocuments []string
	PropertyPages    []string

	Startup     string
	IconForm    string
	Title       string
	Name        string
	Description string
	ExeName32   string
	Path32      string
	ResFile32   string
	HelpFile    string
	CommandLine string
	CondComp    string

	Version VersionInfo

	CompilationType    int
	OptimizationType   int
	StartMode          int
	ThreadPerObject    int
	MaxNumberOfThreads int

	FavorPentiumPro   bool
	CodeViewDebugInfo bool
	NoAliasing        bool
	BoundsCheck       bool
	OverflowCheck     bool
	FlPointCheck      bool
	FDIVCheck         bool
	UnroundedFP       bool
	Unattended        bool
	Retained          bool
	ServerSupport     bool

	// RootDir is the directory the project file was loaded from. It is
	// empty for projects parsed from a plain reader.
	RootDir string
}

// Load reads the project file in the current directory, if there is
// exactly one.
func Load() (*Project, error) {
	matches, err := filepath.Glob("*.vbp")
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no .vbp file in the current directory")
	case 1:
		return LoadFrom(matches[0])
	}
	return nil, fmt.Errorf("multiple .vbp files: %s", strings.Join(matches, ", "))
}

// LoadFrom reads and parses the named project file.
func LoadFrom(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open project file: %w", err)
	}
	defer f.Close()

	proj, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	proj.RootDir = filepath.Dir(path)
	return proj, nil
}

// Parse reads a .vbp from r. Unknown keys are ignored; keys that name
// lists (Module, Class, Form, Reference, Object, ...) append.
func Parse(r io.Reader) (*Project, error) {
	proj := &Project{Type: TypeExe}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		proj.apply(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	return proj, nil
}

func (p *Project) apply(key, value string) {
	switch key {
	case "Type":
		p.Type = Type(value)
	case "Reference":
		p.References = append(p.References, value)
	case "Object":
		p.Objects = append(p.Objects, value)
	case "Module":
		p.Modules = append(p.Modules, splitReference(value))
	case "Class":
		p.Classes = append(p.Classes, splitReference(value))
	case "Form":
		p.Forms = append(p.Forms, value)
	case "Designer":
		p.Designers = append(p.Designers, value)
	case "UserControl":
		p.UserControls = append(p.UserControls, value)
	case "UserDocument":
		p.UserDocuments = append(p.UserDocuments, value)
	case "RelatedDoc":
		p.RelatedDocuments = append(p.RelatedDocuments, value)
	case "PropertyPage":
		p.PropertyPages = append(p.PropertyPages, value)
	case "Startup":
		p.Startup = unquote(value)
	case "IconForm":
		p.IconForm = unquote(value)
	case "Title":
		p.Title = unquote(value)
	case "Name":
		p.Name = unquote(value)
	case "Description":
		p.Description = unquote(value)
	case "ExeName32":
		p.ExeName32 = unquote(value)
	case "Path32":
		p.Path32 = unquote(value)
	case "ResFile32":
		p.ResFile32 = unquote(value)
	case "HelpFile":
		p.HelpFile = unquote(value)
	case "Command32":
		p.CommandLine = unquote(value)
	case "CondComp":
		p.CondComp = unquote(value)
	case "MajorVer":
		p.Version.Major = intValue(value)
	case "MinorVer":
		p.Version.Minor = intValue(value)
	case "RevisionVer":
		p.Version.Revision = intValue(value)
	case "AutoIncrementVer":
		p.Version.AutoIncrement = boolValue(value)
	case "VersionCompanyName":
		p.Version.CompanyName = unquote(value)
	case "VersionFileDescription":
		p.Version.FileDescription = unquote(value)
	case "VersionLegalCopyright":
		p.Version.Copyright = unquote(value)
	case "VersionLegalTrademarks":
		p.Version.Trademark = unquote(value)
	case "VersionProductName":
		p.Version.ProductName = unquote(value)
	case "VersionComments":
		p.Version.Comments = unquote(value)
	case "CompilationType":
		p.CompilationType = intValue(value)
	case "OptimizationType":
		p.OptimizationType = intValue(value)
	case "StartMode":
		p.StartMode = intValue(value)
	case "ThreadPerObject":
		p.ThreadPerObject = intValue(value)
	case "MaxNumberOfThreads":
		p.MaxNumberOfThreads = intValue(value)
	case "FavorPentiumPro(tm)":
		p.FavorPentiumPro = boolValue(value)
	case "CodeViewDebugInfo":
		p.CodeViewDebugInfo = boolValue(value)
	case "NoAliasing":
		p.NoAliasing = boolValue(value)
	case "BoundsCheck":
		p.BoundsCheck = boolValue(value)
	case "OverflowCheck":
		p.OverflowCheck = boolValue(value)
	case "FlPointCheck":
		p.FlPointCheck = boolValue(value)
	case "FDIVCheck":
		p.FDIVCheck = boolValue(value)
	case "UnroundedFP":
		p.UnroundedFP = boolValue(value)
	case "Unattended":
		p.Unattended = boolValue(value)
	case "Retained":
		p.Retained = boolValue(value)
	case "ServerSupportFiles":
		p.ServerSupport = boolValue(value)
	}
}

// SourceFiles returns the path of every VB6 source file the project
// names, relative to RootDir when set.
func (p *Project) SourceFiles() []string {
	var out []string
	add := func(path string) {
		if path == "" {
			return
		}
		path = filepath.FromSlash(strings.ReplaceAll(path, `\`, "/"))
		if p.RootDir != "" {
			path = filepath.Join(p.RootDir, path)
		}
		out = append(out, path)
	}
	for _, m := range p.Modules {
		add(m.Path)
	}
	for _, c := range p.Classes {
		add(c.Path)
	}
	for _, f := range p.Forms {
		add(f)
	}
	for _, u := range p.UserControls {
		add(u)
	}
	for _, d := range p.UserDocuments {
		add(d)
	}
	return out
}

// splitReference parses a `Name; Path` pair. A value without a
// semicolon is a bare path whose name is the file name stem.
func splitReference(value string) FileReference {
	name, path, found := strings.Cut(value, ";")
	if !found {
		path = strings.TrimSpace(value)
		base := filepath.Base(strings.ReplaceAll(path, `\`, "/"))
		return FileReference{
			Name: strings.TrimSuffix(base, filepath.Ext(base)),
			Path: path,
		}
	}
	return FileReference{
		Name: strings.TrimSpace(name),
		Path: strings.TrimSpace(path),
	}
}

func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}

func intValue(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return n
}

// boolValue reads a VB6 boolean setting: 0 is false, -1 (or any other
// non-zero value) is true.
func boolValue(value string) bool {
	return intValue(value) != 0
}
