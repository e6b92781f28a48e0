package docsource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// NewFSSource 以 basePath 为根目录构建文件系统文档源，整站复用一份实例。
func NewFSSource(basePath string) (Source, error) {
	if basePath == "" {
		return nil, errors.New("docs path required")
	}

	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve docs path: %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create docs path: %w", err)
	}

	return &fsSource{basePath: abs}, nil
}

// fsSource 将 docs 相对键映射到 basePath 下的文件，只读，不持有句柄。
type fsSource struct {
	basePath string
}

func (s *fsSource) Stat(ctx context.Context, key string) (time.Time, error) {
	if err := ctx.Err(); err != nil {
		return time.Time{}, err
	}

	filePath, err := s.docPath(key)
	if err != nil {
		return time.Time{}, err
	}

	info, err := os.Stat(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, ErrNotFound
		}
		return time.Time{}, err
	}
	if info.IsDir() {
		return time.Time{}, ErrNotFound
	}

	return info.ModTime(), nil
}

func (s *fsSource) Read(ctx context.Context, key string) (string, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return "", time.Time{}, err
	}

	filePath, err := s.docPath(key)
	if err != nil {
		return "", time.Time{}, err
	}

	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", time.Time{}, ErrNotFound
		}
		return "", time.Time{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", time.Time{}, err
	}
	if info.IsDir() {
		return "", time.Time{}, ErrNotFound
	}

	var buf bytes.Buffer
	if _, err := copyWithContext(ctx, &buf, f); err != nil {
		return "", time.Time{}, err
	}

	// 版本号取自同一个打开句柄的 Stat，保证与读到的正文一致。
	return buf.String(), info.ModTime(), nil
}

// docPath 清洗相对键并拒绝越出 basePath 的路径。
func (s *fsSource) docPath(key string) (string, error) {
	rel := strings.TrimSpace(key)
	if rel == "" {
		return "", errors.New("document key required")
	}
	rel = path.Clean("/" + rel)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return "", errors.New("document key required")
	}

	filePath := filepath.Join(s.basePath, filepath.FromSlash(rel))
	if !strings.HasPrefix(filePath, s.basePath+string(filepath.Separator)) {
		return "", errors.New("invalid document path")
	}
	return filePath, nil
}

func copyWithContext(ctx context.Context, dst io.Writer, src io.Reader) (int64, error) {
	var copied int64
	buf := make([]byte, 32*1024)
	for {
		if err := ctx.Err(); err != nil {
			return copied, err
		}
		n, err := src.Read(buf)
		if n > 0 {
			w, wErr := dst.Write(buf[:n])
			copied += int64(w)
			if wErr != nil {
				return copied, wErr
			}
			if w < n {
				return copied, io.ErrShortWrite
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return copied, nil
			}
			return copied, err
		}
	}
}
