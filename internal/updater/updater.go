// Package updater checks GitHub Releases for a newer sdd-chat build
// and can replace the running binary in place.
//
// The check is best effort: network failures surface as "no update"
// rather than errors, so callers can run it in the background during
// long-lived commands. Replacement is atomic: the new binary lands in
// a temp file next to the executable and is renamed over it.
package updater

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

const repo = "sddchat/sdd-chat"

// Overridable in tests.
var (
	releaseEndpoint = "https://api.github.com/repos/" + repo + "/releases/latest"
	httpClient      = &http.Client{Timeout: 10 * time.Second}
)

// Release describes the latest published release.
type Release struct {
	Version string // without the leading "v"
	URL     string // release page
	assets  map[string]string
}

type releasePayload struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
	Assets  []struct {
		Name               string `json:"name"`
		BrowserDownloadURL string `json:"browser_download_url"`
	} `json:"assets"`
}

// CheckLatest queries the release feed and reports whether a newer
// version than current exists. A "dev" build never updates.
func CheckLatest(current string) (*Release, bool) {
	rel, err := fetchLatest(current)
	if err != nil {
		return nil, false
	}
	return rel, versionLess(trimV(current), rel.Version)
}

func fetchLatest(current string) (*Release, error) {
	req, err := http.NewRequest(http.MethodGet, releaseEndpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "sdd-chat/"+current)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("release feed returned %d", resp.StatusCode)
	}

	var payload releasePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing release feed: %w", err)
	}

	rel := &Release{
		Version: trimV(payload.TagName),
		URL:     payload.HTMLURL,
		assets:  make(map[string]string, len(payload.Assets)),
	}
	for _, a := range payload.Assets {
		rel.assets[a.Name] = a.BrowserDownloadURL
	}
	return rel, nil
}

// Apply downloads the release asset for this OS/arch and swaps it in
// for the running executable.
func Apply(current string) error {
	rel, err := fetchLatest(current)
	if err != nil {
		return err
	}
	if !versionLess(trimV(current), rel.Version) {
		return fmt.Errorf("already at latest version (%s)", current)
	}

	name := assetName(rel.Version)
	url, ok := rel.assets[name]
	if !ok {
		return fmt.Errorf("no release asset for %s/%s (wanted %s)", runtime.GOOS, runtime.GOARCH, name)
	}

	resp, err := httpClient.Get(url)
	if err != nil {
		return fmt.Errorf("downloading release: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned %d", resp.StatusCode)
	}

	binary, err := binaryFromTarGz(resp.Body)
	if err != nil {
		return err
	}
	return swapExecutable(binary)
}

// assetName matches the release archive naming scheme.
func assetName(version string) string {
	return fmt.Sprintf("sdd-chat_%s_%s_%s.tar.gz", version, runtime.GOOS, runtime.GOARCH)
}

// binaryFromTarGz scans a tar.gz stream for the sdd-chat binary.
func binaryFromTarGz(r io.Reader) ([]byte, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("sdd-chat binary not found in archive")
		}
		if err != nil {
			return nil, fmt.Errorf("reading archive: %w", err)
		}
		base := filepath.Base(hdr.Name)
		if base == "sdd-chat" || base == "sdd-chat.exe" {
			return io.ReadAll(tr)
		}
	}
}

// swapExecutable writes the new binary next to the current one and
// renames it into place.
func swapExecutable(binary []byte) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locating executable: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return fmt.Errorf("resolving executable path: %w", err)
	}

	staged := exe + ".new"
	if err := os.WriteFile(staged, binary, 0o755); err != nil {
		return fmt.Errorf("staging new binary: %w", err)
	}

	// Windows cannot rename over a running binary; park the old one.
	if runtime.GOOS == "windows" {
		backup := exe + ".old"
		os.Remove(backup)
		if err := os.Rename(exe, backup); err != nil {
			os.Remove(staged)
			return fmt.Errorf("moving current binary aside: %w", err)
		}
	}

	if err := os.Rename(staged, exe); err != nil {
		os.Remove(staged)
		return fmt.Errorf("installing new binary: %w", err)
	}
	return nil
}

func trimV(v string) string {
	return strings.TrimPrefix(v, "v")
}

// versionLess reports whether a is an older version than b. Dev and
// empty versions never compare as older, so dev builds stay put.
func versionLess(a, b string) bool {
	if a == "" || b == "" || a == "dev" {
		return false
	}

	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < 3; i++ {
		av, bv := 0, 0
		if i < len(as) {
			av = leadingInt(as[i])
		}
		if i < len(bs) {
			bv = leadingInt(bs[i])
		}
		if av != bv {
			return av < bv
		}
	}
	return false
}

// leadingInt parses the leading digit run of s, so "3-rc1" reads as 3.
func leadingInt(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, _ := strconv.Atoi(s[:i])
	return n
}
