package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-onboarding/internal/shared/apperror"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrFileRequired = apperror.New(apperror.CodeValidation, "No file uploaded", http.StatusBadRequest)
	ErrFileTooLarge = apperror.New(apperror.CodeValidation, "File too large", http.StatusBadRequest)
	ErrFileType     = apperror.New(
		apperror.CodeValidation,
		"Invalid file type. Only JPEG, PNG, PDF, DOC, and DOCX are allowed.",
		http.StatusBadRequest,
	)
	ErrFileNotFound = apperror.New(apperror.CodeNotFound, "File not found on server", http.StatusNotFound)
)

var DefaultAllowedTypes = []string{
	"image/jpeg",
	"image/png",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// StoredFile describes a file written by FileStorage.
type StoredFile struct {
	Filename         string
	OriginalFilename string
	Path             string
	MimeType         string
	Size             int64
}

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type FileStorage interface {
	Save(ctx context.Context, subdir, originalName string, src io.Reader, size int64) (StoredFile, error)
	Open(path string) (*os.File, error)
	Remove(path string) error
	PathFor(subdir, filename string) string
}

type LocalStorage struct {
	root    string
	maxSize int64
	allowed map[string]struct{}
}

func NewLocalStorage(root string, maxSize int64, allowedTypes []string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if len(allowedTypes) == 0 {
		allowedTypes = DefaultAllowedTypes
	}
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return &LocalStorage{root: root, maxSize: maxSize, allowed: allowed}, nil
}

func (s *LocalStorage) Save(ctx context.Context, subdir, originalName string, src io.Reader, size int64) (StoredFile, error) {
	if src == nil {
		return StoredFile{}, ErrFileRequired
	}
	if s.maxSize > 0 && size > s.maxSize {
		return StoredFile{}, ErrFileTooLarge
	}

	// Sniff dari isi file, bukan dari ekstensi/header client.
	head := make([]byte, 3072)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return StoredFile{}, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return StoredFile{}, ErrFileRequired
	}

	mtype := mimetype.Detect(head)
	if !s.isAllowed(mtype) {
		return StoredFile{}, ErrFileType
	}

	dir := filepath.Join(s.root, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return StoredFile{}, fmt.Errorf("create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = mtype.Extension()
	}
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	path := filepath.Join(dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return StoredFile{}, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	reader := io.MultiReader(bytes.NewReader(head), src)
	if s.maxSize > 0 {
		reader = io.LimitReader(reader, s.maxSize+1)
	}
	written, err := io.Copy(dst, reader)
	if err != nil {
		_ = os.Remove(path)
		return StoredFile{}, fmt.Errorf("write file: %w", err)
	}
	if s.maxSize > 0 && written > s.maxSize {
		_ = os.Remove(path)
		return StoredFile{}, ErrFileTooLarge
	}

	return StoredFile{
		Filename:         name,
		OriginalFilename: filepath.Base(originalName),
		Path:             path,
		MimeType:         mtype.String(),
		Size:             written,
	}, nil
}

func (s *LocalStorage) Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	return f, err
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *LocalStorage) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// PathFor returns the on-disk path of a file previously written by Save.
func (s *LocalStorage) PathFor(subdir, filename string) string {
	return filepath.Join(s.root, subdir, filepath.Base(filename))
}

func (s *LocalStorage) isAllowed(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if _, ok := s.allowed[m.String()]; ok {
			return true
		}
	}
	return false
}
