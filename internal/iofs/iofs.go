package iofs

import (
	_ "embed"
	"io"
	"os"
	"path/filepath"

	"github.com/gnames/gnsys"
	"github.com/gnames/watchseed/pkg/config"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := gnsys.MakeDir(dir); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	// Check if config file already exists
	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// Write embedded config.yaml to the config directory
	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// DirExists is true when path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileExists is true when path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile reads the whole file.
func ReadFile(path string) ([]byte, error) {
	res, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}
	return res, nil
}

// WriteFile writes data next to path under a temporary name and renames it
// into place, so readers never see a partial file. Missing parent
// directories are created.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := touchDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return WriteFileError(path, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return WriteFileError(path, err)
	}
	if err = tmp.Close(); err != nil {
		return WriteFileError(path, err)
	}
	if err = os.Chmod(tmpPath, 0644); err != nil {
		return WriteFileError(path, err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}

// CopyFile copies src to dst, creating the parent directory of dst.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return ReadFileError(src, err)
	}
	defer in.Close()

	if err = touchDir(filepath.Dir(dst)); err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return CopyFileError(dst, err)
	}
	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return CopyFileError(dst, err)
	}
	if err = out.Close(); err != nil {
		return CopyFileError(dst, err)
	}
	return nil
}

// CopyResult describes where a seed was copied.
type CopyResult struct {
	Copied  []string
	Skipped []string
}

// CopySeed copies the seed into the front-end sources and, when the build
// directory exists, into the front-end build. The sources copy is
// required, the build copy is optional.
func CopySeed(src, public, dist string) (CopyResult, error) {
	var res CopyResult
	if !FileExists(src) {
		return res, SeedNotFoundError(src)
	}

	if err := CopyFile(src, public); err != nil {
		return res, err
	}
	res.Copied = append(res.Copied, public)

	if !DirExists(filepath.Dir(dist)) {
		res.Skipped = append(res.Skipped, dist)
		return res, nil
	}
	if err := CopyFile(src, dist); err != nil {
		return res, err
	}
	res.Copied = append(res.Copied, dist)
	return res, nil
}
