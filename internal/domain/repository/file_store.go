package repository

import "io"

// FileStore abstracts the on-disk uploads tree. Paths returned and accepted
// are relative to the store root (e.g. "documents/3f2a….pdf").
type FileStore interface {
	// Save writes src under the entity subdirectory with a generated name
	// that keeps the original extension, returning the relative path and
	// the number of bytes written.
	Save(entity, originalName string, src io.Reader) (string, int64, error)

	// AbsPath resolves a stored relative path for streaming, rejecting
	// paths that escape the store root or do not exist.
	AbsPath(relPath string) (string, error)

	// Remove deletes one stored file.
	Remove(relPath string) error
}
