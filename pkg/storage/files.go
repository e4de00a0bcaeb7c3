package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"goppo-soppo/pkg/utils"

	"go.uber.org/zap"
)

// Directories uploaded media lives in, relative to the upload root.
// Rows reference files by these web paths.
const (
	DirWriters    = "uploads/writers"
	DirThumbnails = "uploads/thumbnails"
	DirPlaylists  = "uploads/playlists"
	DirAudio      = "audio"
)

const maxImageSize = 5 << 20 // 5MB

var imageExtensions = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true, ".webp": true,
}

var audioExtensions = map[string]bool{
	".mp3": true, ".m4a": true, ".wav": true, ".ogg": true, ".aac": true,
}

// FileStore saves uploaded media under a local root directory.
type FileStore struct {
	root string
	log  *zap.Logger
}

func NewFileStore(root string, log *zap.Logger) (*FileStore, error) {
	for _, dir := range []string{DirWriters, DirThumbnails, DirPlaylists, DirAudio} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
		}
	}
	return &FileStore{root: root, log: log.With(zap.String("component", "filestore"))}, nil
}

// SaveImage stores an uploaded image and returns its web path, e.g.
// "/uploads/writers/writer-20250301-150405-0042.png".
func (fs *FileStore) SaveImage(file multipart.File, header *multipart.FileHeader, dir, prefix string) (string, error) {
	if header.Size > maxImageSize {
		return "", fmt.Errorf("image too large (max 5MB)")
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("only image files are allowed")
	}

	return fs.save(file, dir, prefix, ext)
}

// SaveAudio stores an uploaded audio file and returns its web path.
func (fs *FileStore) SaveAudio(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !audioExtensions[ext] {
		return "", fmt.Errorf("only audio files are allowed")
	}

	return fs.save(file, DirAudio, "audio", ext)
}

func (fs *FileStore) save(file multipart.File, dir, prefix, ext string) (string, error) {
	name := utils.GenerateUploadName(prefix, ext)
	dst := filepath.Join(fs.root, dir, name)

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	fs.log.Info("File stored", zap.String("path", dst))
	return "/" + dir + "/" + name, nil
}

// Remove deletes a previously stored file by its web path. Best effort:
// callers log failures instead of failing the request.
func (fs *FileStore) Remove(webPath string) error {
	rel := strings.TrimPrefix(webPath, "/")
	if rel == "" || strings.Contains(rel, "..") {
		return fmt.Errorf("invalid file path %q", webPath)
	}
	return os.Remove(filepath.Join(fs.root, rel))
}
