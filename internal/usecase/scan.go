package usecase

import (
	"fmt"

	"csmap/internal/adapter/document"
	"csmap/internal/adapter/rewrite"
	"csmap/internal/adapter/scanner"
	"csmap/internal/domain"
	"csmap/internal/port"
)

// ScanUseCase walks a directory tree and keeps the outline store in
// step with the C# sources on disk.
type ScanUseCase struct {
	store    port.OutlineStore
	walker   port.FileWalker
	reader   port.FileReader
	modifier string
}

// NewScanUseCase creates a new scan use case.
func NewScanUseCase(
	store port.OutlineStore,
	walker port.FileWalker,
	reader port.FileReader,
	modifier string,
) *ScanUseCase {
	return &ScanUseCase{
		store:    store,
		walker:   walker,
		reader:   reader,
		modifier: modifier,
	}
}

// ScanResult contains the results of a scan operation.
type ScanResult struct {
	FilesScanned int
	FilesSkipped int
	FilesDeleted int
	Members      int
	Errors       []string
}

// ProgressFunc reports scan progress: files processed so far out of
// total, and the file just handled.
type ProgressFunc func(processed, total int, path string)

// Scan walks root, re-outlining files whose mod-time changed and
// dropping outlines for files that disappeared. Per-file failures are
// collected, never fatal. progress, when non-nil, is called once per
// walked file.
func (u *ScanUseCase) Scan(root string, progress ProgressFunc) (*ScanResult, error) {
	result := &ScanResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	existing, err := u.store.ListOutlines()
	if err != nil {
		return nil, fmt.Errorf("failed to list outlines: %w", err)
	}
	existingByPath := make(map[string]domain.FileOutline, len(existing))
	for _, o := range existing {
		existingByPath[o.Path] = o
	}

	seen := make(map[string]bool, len(files))
	for i, file := range files {
		seen[file.Path] = true
		if progress != nil {
			progress(i+1, len(files), file.Path)
		}

		if prev, ok := existingByPath[file.Path]; ok && prev.ModTime == file.ModTime {
			result.FilesSkipped++
			result.Members += len(prev.Members)
			continue
		}

		outline, err := u.OutlineFile(file.Path, file.ModTime)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Path, err))
			continue
		}
		if err := u.store.PutOutline(outline); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file.Path, err))
			continue
		}
		result.FilesScanned++
		result.Members += len(outline.Members)
	}

	for path := range existingByPath {
		if seen[path] {
			continue
		}
		if err := u.store.DeleteOutline(path); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		result.FilesDeleted++
	}

	stats := domain.Stats{
		TotalFiles:   result.FilesScanned + result.FilesSkipped,
		TotalMembers: result.Members,
	}
	if err := u.store.UpdateStats(stats); err != nil {
		return nil, fmt.Errorf("failed to update stats: %w", err)
	}

	return result, nil
}

// OutlineFile reads one file and extracts its outline.
func (u *ScanUseCase) OutlineFile(path string, modTime int64) (domain.FileOutline, error) {
	content, err := u.reader.ReadFile(path)
	if err != nil {
		return domain.FileOutline{}, err
	}
	outline := OutlineText(content, u.modifier)
	outline.Path = path
	outline.ModTime = modTime
	return outline, nil
}

// OutlineText extracts every structural fact csmap knows about from
// raw source text: namespace, type name, base list, using-block, and
// member declarations.
func OutlineText(content, modifier string) domain.FileOutline {
	doc := document.NewSnapshot(content)

	outline := domain.FileOutline{
		Members: scanner.Outline(doc, modifier),
		Usings:  rewrite.UsingStatements(doc),
	}
	if ns, err := scanner.Namespace(content); err == nil {
		outline.Namespace = ns
	}
	if cls, err := scanner.ClassName(content); err == nil {
		outline.ClassName = cls
	}
	outline.Inherits = scanner.InheritedNames(content, true)
	return outline
}
