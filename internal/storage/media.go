package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlogImageDir is the media-root subdirectory (and URL prefix) for blog
// images.
const BlogImageDir = "blog_images"

// MediaStore writes uploaded files under a local media root and builds the
// absolute URLs they are served from.
type MediaStore struct {
	root    string
	baseURL string
}

func NewMediaStore(root, baseURL string) (*MediaStore, error) {
	if err := os.MkdirAll(filepath.Join(root, BlogImageDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &MediaStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Root returns the media root directory for static serving.
func (s *MediaStore) Root() string {
	return s.root
}

// SaveBlogImage stores the uploaded file under a random name, keeping the
// original extension, and returns the media-root relative path.
func (s *MediaStore) SaveBlogImage(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	rel := path.Join(BlogImageDir, uuid.New().String()+ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	return rel, nil
}

// Remove deletes a stored file; a missing file is not an error.
func (s *MediaStore) Remove(rel string) error {
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URL returns the absolute URL for a media-root relative path.
func (s *MediaStore) URL(rel string) string {
	if rel == "" {
		return ""
	}
	return s.baseURL + "/" + rel
}
