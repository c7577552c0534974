package codebase

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/uxmlls/uxml/lint"
	"github.com/dhamidi/uxmlls/uxml/parser"
)

var log = commonlog.GetLogger("uxmlls.codebase")

// Codebase holds the latest analysis of every known UXML document. It is
// safe for concurrent use; each update replaces a document's FileInfo.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

// FileInfo is one analyzed snapshot of a document. It is never mutated
// after Analyze returns.
type FileInfo struct {
	Path     string
	Content  string
	Parsed   *parser.Parser
	Warnings []lint.Warning

	lines *lineIndex
}

// Analyze parses content and runs the lint pass unless path is pre-encoded.
func Analyze(path, content string) *FileInfo {
	p := parser.Parse(content, parser.WithFile(path))
	return &FileInfo{
		Path:     path,
		Content:  content,
		Parsed:   p,
		Warnings: lint.File(path, p.Program()),
		lines:    newLineIndex(content),
	}
}

func (f *FileInfo) Program() *parser.Program {
	return f.Parsed.Program()
}

func (f *FileInfo) Errors() []*parser.Error {
	return f.Parsed.Errors()
}

// IsUXMLFile reports whether path names a UXML document, pre-encoded or not.
func IsUXMLFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".uxml" || ext == lint.PreEncodedSuffix
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll analyzes every UXML file below the root directory, skipping
// hidden directories. Unreadable files are logged and skipped.
func (c *Codebase) ScanAll() error {
	return c.ScanDir(c.rootDir)
}

func (c *Codebase) ScanDir(dir string) error {
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warningf("scan %s: %s", path, err)
			return nil
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsUXMLFile(path) {
			return nil
		}
		if _, err := c.ScanFile(path); err != nil {
			log.Warning(err.Error())
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	return nil
}

// ScanFile reads path from disk and updates its analysis.
func (c *Codebase) ScanFile(path string) (*FileInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return c.UpdateFile(path, content), nil
}

// UpdateFile replaces the analysis of path with one of content.
func (c *Codebase) UpdateFile(path string, content []byte) *FileInfo {
	info := Analyze(path, string(content))
	if info.Program() == nil {
		log.Infof("%s: no tree: %s", path, info.Errors()[0].Message)
	} else {
		log.Debugf("%s: %d errors, %d warnings", path, len(info.Errors()), len(info.Warnings))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = info
	return info
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns every known document ordered by path.
func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	files := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		files = append(files, f)
	}
	c.mu.RUnlock()

	sort.Slice(files, func(i, j int) bool {
		return files[i].Path < files[j].Path
	})
	return files
}
