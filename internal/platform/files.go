package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// PNGExtension is matched case-insensitively against file names
const PNGExtension = ".png"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// commandRunner is replaced in tests
var commandRunner = func(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if dirPath == "" {
		return errors.New("directory path is empty")
	}
	info, err := os.Stat(dirPath)
	switch {
	case os.IsNotExist(err):
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	case err != nil:
		return err
	case !info.IsDir():
		return fmt.Errorf("not a directory: %s", dirPath)
	}
	return nil
}

// IsPNGName reports whether name ends in .png, ignoring case
func IsPNGName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), PNGExtension)
}

// ListPNGFiles returns the paths of regular entries in dir (non-recursive)
// whose names end in .png. Paths are sorted by name for stable output.
func ListPNGFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsPNGName(entry.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// CopyFile copies src into dstDir under the same base name, keeping the bytes,
// permission bits and modification time. An existing file is overwritten.
func CopyFile(src, dstDir string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("not a regular file: %s", src)
	}

	dst := filepath.Join(dstDir, filepath.Base(src))
	if same, _ := sameFile(src, dst); same {
		return dst, nil
	}

	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", dst, err)
	}

	// O_CREATE honours umask and keeps the old mode of an existing file
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("failed to set mode on %s: %w", dst, err)
	}
	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return "", fmt.Errorf("failed to set times on %s: %w", dst, err)
	}
	return dst, nil
}

func sameFile(a, b string) (bool, error) {
	ia, err := os.Stat(a)
	if err != nil {
		return false, err
	}
	ib, err := os.Stat(b)
	if err != nil {
		return false, err
	}
	return os.SameFile(ia, ib), nil
}

// OpenFolderInManager opens the directory in the system file manager
func OpenFolderInManager(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("directory does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return commandRunner(OpenCommand, absPath)
	case OSWindows:
		return commandRunner(ExplorerCommand, absPath)
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open first, then the common file managers
func openFolderLinux(dir string) error {
	if err := commandRunner(XDGOpenCommand, dir); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return commandRunner(fm, dir)
		}
	}

	return fmt.Errorf("no suitable file manager found")
}

// GetHomePicturesDir returns the standard Pictures directory for the user
func GetHomePicturesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Pictures"), nil
}

// BrowseStartDir picks where a folder dialog opens: current when it is an
// existing directory, otherwise the Pictures directory, otherwise "".
func BrowseStartDir(current string) string {
	candidates := []string{strings.TrimSpace(current)}
	if pictures, err := GetHomePicturesDir(); err == nil {
		candidates = append(candidates, pictures)
	}

	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(dir); err == nil {
				return abs
			}
			return dir
		}
	}
	return ""
}
