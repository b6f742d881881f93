package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// FileName is the profile file stored inside the .devcontainer directory.
const FileName = ".conf"

var (
	// ErrNotConfigured means no profile file exists yet.
	ErrNotConfigured = errors.New("no profile found, run `devcon configure` first")
	// ErrInvalid means the profile file exists but lacks required fields.
	ErrInvalid = errors.New("profile is missing required fields")
)

// Profile is the persisted record of which container to match against and
// how to connect to it. It is written wholesale by the configure wizard and
// read-only for the connect flow.
type Profile struct {
	Name          string // devcontainer display name, used as the match pattern
	RemoteUser    string
	UserID        int
	GroupID       int
	Image         string
	ContainerName string // custom docker container name, optional
	Waypipe       bool
}

// Load reads the profile from <dir>/.conf. The file is plain KEY=VALUE
// lines, parsed through viper's env format.
func Load(dir string) (*Profile, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w (looked for %s)", ErrNotConfigured, path)
		}
		return nil, fmt.Errorf("failed to stat profile: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.SetDefault("REMOTE_USER", "vscode")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	p := &Profile{
		Name:          v.GetString("CONTAINER_NAME"),
		RemoteUser:    v.GetString("REMOTE_USER"),
		UserID:        v.GetInt("USER_ID"),
		GroupID:       v.GetInt("GROUP_ID"),
		Image:         v.GetString("IMAGE"),
		ContainerName: v.GetString("CUSTOM_DOCKER_CONTAINER_NAME"),
		Waypipe:       v.GetBool("WAYPIPE"),
	}

	if p.Name == "" {
		return nil, fmt.Errorf("%w: CONTAINER_NAME is empty in %s", ErrInvalid, path)
	}

	return p, nil
}

// Save writes the profile to <dir>/.conf, replacing any previous content.
// Viper only reads env files, so the write side renders the format directly.
func (p *Profile) Save(dir string) error {
	if p.Name == "" {
		return fmt.Errorf("%w: container name is empty", ErrInvalid)
	}

	uid, gid := "", ""
	if p.UserID > 0 {
		uid = fmt.Sprintf("%d", p.UserID)
	}
	if p.GroupID > 0 {
		gid = fmt.Sprintf("%d", p.GroupID)
	}

	content := fmt.Sprintf(`# Devcontainer connection profile
# Generated by devcon configure - do not edit manually

REMOTE_USER=%s
USER_ID=%s
GROUP_ID=%s

CONTAINER_NAME=%s
IMAGE=%s
CUSTOM_DOCKER_CONTAINER_NAME=%s
WAYPIPE=%t
`, p.RemoteUser, uid, gid, p.Name, p.Image, p.ContainerName, p.Waypipe)

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write profile %s: %w", path, err)
	}
	return nil
}
