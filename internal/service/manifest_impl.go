package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/compozy/autotag/internal/domain"
	"github.com/spf13/afero"
)

// manifestService is the implementation of the ManifestService interface.
type manifestService struct {
	fs afero.Fs
}

// NewManifestService creates a new ManifestService reading from fs.
func NewManifestService(fs afero.Fs) ManifestService {
	return &manifestService{fs: fs}
}

// Locate returns the highest priority manifest in dir: Cargo.toml, then package.json, then pyproject.toml.
func (s *manifestService) Locate(ctx context.Context, dir string) (domain.ManifestLocation, error) {
	if err := ctx.Err(); err != nil {
		return domain.ManifestLocation{}, err
	}
	if err := s.checkDir(dir); err != nil {
		return domain.ManifestLocation{}, err
	}
	for _, format := range domain.ManifestFormats {
		path := filepath.Join(dir, format.Filename())
		info, err := s.fs.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return domain.ManifestLocation{}, fmt.Errorf("failed to check %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		return domain.ManifestLocation{Format: format, Path: path}, nil
	}
	return domain.ManifestLocation{}, fmt.Errorf("%w: no Cargo.toml, package.json or pyproject.toml in %s",
		domain.ErrManifestNotFound, dir)
}

// checkDir reports ErrManifestNotFound unless dir is an existing directory.
func (s *manifestService) checkDir(dir string) error {
	info, err := s.fs.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s does not exist", domain.ErrManifestNotFound, dir)
		}
		return fmt.Errorf("failed to check %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", domain.ErrManifestNotFound, dir)
	}
	return nil
}

// Discover locates the manifest of root and, when recursive, of every package directory below it.
func (s *manifestService) Discover(
	ctx context.Context,
	root string,
	recursive bool,
) ([]domain.ManifestLocation, error) {
	if !recursive {
		loc, err := s.Locate(ctx, root)
		if err != nil {
			return nil, err
		}
		return []domain.ManifestLocation{loc}, nil
	}
	if err := s.checkDir(root); err != nil {
		return nil, err
	}
	var found []domain.ManifestLocation
	err := afero.Walk(s.fs, root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && skippedDirs[info.Name()] {
			return filepath.SkipDir
		}
		loc, err := s.Locate(ctx, path)
		if errors.Is(err, domain.ErrManifestNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		found = append(found, loc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: no supported manifest under %s", domain.ErrManifestNotFound, root)
	}
	return found, nil
}

// Parse reads the manifest at loc with the parser for its format.
func (s *manifestService) Parse(ctx context.Context, loc domain.ManifestLocation) (*domain.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, loc.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrManifestNotFound, loc.Path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", loc.Path, err)
	}
	if _, ok := formatFields[loc.Format]; !ok {
		return nil, fmt.Errorf("unsupported manifest format %q", loc.Format)
	}
	doc, err := decodeDocument(loc.Format, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrManifestMalformed, loc.Path, err)
	}
	return buildManifest(loc, doc)
}
