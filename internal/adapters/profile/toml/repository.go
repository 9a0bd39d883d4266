// Package toml persists the local profile (last-used identity) under the
// user's config directory.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/greendaybank/greenday-cli/internal/domain"
	"github.com/greendaybank/greenday-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	profilePathKey  = "profile.path"
	profileFileMode = 0o600
	profileDirMode  = 0o700
	configDirName   = ".greenday"
	profileFileName = "profile.toml"
	tempFilePattern = ".profile-*.toml.tmp"

	currentSchemaVersion = 1
)

type fileSchema struct {
	Version int           `toml:"version"`
	Profile profileSchema `toml:"profile"`
}

type profileSchema struct {
	LastUser  string `toml:"last_user"`
	UpdatedAt string `toml:"updated_at,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported profile schema version %d (current %d)", s.Version, currentSchemaVersion)
	}
	return nil
}

type Repository struct {
	profilePath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProfileRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDirName, profileFileName)
	cfg.SetDefault(profilePathKey, defaultPath)

	profilePath := cfg.GetString(profilePathKey)
	if profilePath == "" {
		return nil, errors.New("profile path is empty")
	}
	profilePath, err = normalizePath(profilePath)
	if err != nil {
		return nil, err
	}

	return &Repository{profilePath: profilePath, mu: lockForPath(profilePath)}, nil
}

// Load returns the stored profile; a missing file yields a zero profile.
func (r *Repository) Load(ctx context.Context) (ports.Profile, error) {
	if err := ctx.Err(); err != nil {
		return ports.Profile{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return ports.Profile{}, err
	}

	return ports.Profile{
		LastUser:  domain.Identity(file.Profile.LastUser),
		UpdatedAt: parseTime(file.Profile.UpdatedAt),
	}, nil
}

func (r *Repository) Save(ctx context.Context, profile ports.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := fileSchema{
		Version: currentSchemaVersion,
		Profile: profileSchema{
			LastUser:  profile.LastUser.String(),
			UpdatedAt: formatTime(profile.UpdatedAt),
		},
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.profilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read profile file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode profile file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.profilePath), profileDirMode); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode profile file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.profilePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp profile file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp profile file: %w", err)
	}

	if err := tempFile.Chmod(profileFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp profile file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp profile file: %w", err)
	}

	if err := os.Rename(tempName, r.profilePath); err != nil {
		return fmt.Errorf("replace profile file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.profilePath, profileFileMode); err != nil {
		return fmt.Errorf("chmod profile file: %w", err)
	}

	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve profile path: %w", err)
	}
	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(time.RFC3339)
}
