// Package fsutil provides file system helpers for goaoc: reading puzzle
// inputs with their content hash and writing files atomically.
package fsutil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")

	// ErrNoStdin is returned when "-" is requested but no reader was given.
	ErrNoStdin = errors.New("standard input is not available")
)

// FileInfo describes input content as it was read.
type FileInfo struct {
	// Path is the path the content was read from, or "-" for stdin.
	Path string

	// Size is the content size in bytes.
	Size int64

	// Hash is the SHA-256 hash of the content.
	Hash [32]byte
}

// HashString returns the hex-encoded content hash.
func (f *FileInfo) HashString() string {
	if f == nil {
		return ""
	}
	return hex.EncodeToString(f.Hash[:])
}

func newFileInfo(path string, content []byte) *FileInfo {
	return &FileInfo{
		Path: path,
		Size: int64(len(content)),
		Hash: sha256.Sum256(content),
	}
}

// ReadFile reads a file and returns its content along with metadata.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	return content, newFileInfo(path, content), nil
}

// ReadInput reads puzzle input from path, or from stdin when path is "-".
func ReadInput(ctx context.Context, path string, stdin io.Reader) ([]byte, *FileInfo, error) {
	if path != StdinPath {
		return ReadFile(ctx, path)
	}

	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read stdin: %w", ctx.Err())
	default:
	}

	if stdin == nil {
		return nil, nil, ErrNoStdin
	}

	content, err := io.ReadAll(stdin)
	if err != nil {
		return nil, nil, fmt.Errorf("read stdin: %w", err)
	}

	return content, newFileInfo(StdinPath, content), nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}
