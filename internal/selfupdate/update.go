package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

const (
	binaryName     = "tagdrill"
	checksumsAsset = "checksums.txt"
)

// releaseAssets maps GOOS/GOARCH to the archive published for that platform.
var releaseAssets = map[string]string{
	"darwin/amd64":  "tagdrill_Darwin_all.tar.gz",
	"darwin/arm64":  "tagdrill_Darwin_all.tar.gz",
	"linux/amd64":   "tagdrill_Linux_x86_64.tar.gz",
	"linux/arm64":   "tagdrill_Linux_arm64.tar.gz",
	"linux/386":     "tagdrill_Linux_i386.tar.gz",
	"windows/amd64": "tagdrill_Windows_x86_64.zip",
	"windows/arm64": "tagdrill_Windows_arm64.zip",
}

func assetFor(goos, goarch string) (string, error) {
	name, ok := releaseAssets[goos+"/"+goarch]
	if !ok {
		return "", fmt.Errorf("no release build for %s/%s", goos, goarch)
	}
	return name, nil
}

// Update replaces the running binary with the latest release: one release
// lookup yields the tag and the asset URLs, then the platform archive is
// downloaded, checked against checksums.txt, unpacked, and staged into
// place. Progress is reported through report as short human-readable lines.
func (c *Checker) Update(ctx context.Context, currentVersion string, report func(string)) error {
	if currentVersion == "(devel)" {
		return ErrDevBuild
	}

	report("Looking up the latest release...")
	rel, err := c.latestRelease(ctx)
	if err != nil {
		return err
	}
	newer, err := isNewer(rel.TagName, currentVersion)
	if err != nil {
		return err
	}
	if !newer {
		return ErrAlreadyLatest
	}

	asset, err := assetFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}
	archiveURL := rel.assetURL(asset)
	sumsURL := rel.assetURL(checksumsAsset)
	if archiveURL == "" || sumsURL == "" {
		return fmt.Errorf("release %s does not publish %s and %s", rel.TagName, asset, checksumsAsset)
	}

	report(fmt.Sprintf("Downloading %s %s...", rel.TagName, asset))
	archive, err := c.fetch(ctx, archiveURL)
	if err != nil {
		return fmt.Errorf("download %s: %w", asset, err)
	}
	sums, err := c.fetch(ctx, sumsURL)
	if err != nil {
		return fmt.Errorf("download %s: %w", checksumsAsset, err)
	}

	report("Verifying checksum...")
	want, err := checksumFor(sums, asset)
	if err != nil {
		return err
	}
	if got := sha256.Sum256(archive); hex.EncodeToString(got[:]) != want {
		return fmt.Errorf("%w for %s", ErrChecksum, asset)
	}

	binary, err := binaryFromArchive(archive, strings.HasSuffix(asset, ".zip"))
	if err != nil {
		return fmt.Errorf("unpack %s: %w", asset, err)
	}

	target, err := c.execPath()
	if err != nil {
		return err
	}
	report(fmt.Sprintf("Installing to %s...", target))
	if err := install(target, binary); err != nil {
		return err
	}

	report(fmt.Sprintf("Updated to %s.", rel.TagName))
	return nil
}

func (c *Checker) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// checksumFor scans a checksums.txt ("<hex>  <name>" per line) for the
// named asset's sha256.
func checksumFor(sums []byte, asset string) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(sums))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 2 && fields[1] == asset {
			return fields[0], nil
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("%s not listed in %s", asset, checksumsAsset)
}

// binaryFromArchive pulls the tagdrill executable out of a release archive.
// Windows releases are zips holding tagdrill.exe; everything else ships a
// tar.gz holding tagdrill.
func binaryFromArchive(archive []byte, zipped bool) ([]byte, error) {
	if zipped {
		return fromZip(archive, binaryName+".exe")
	}
	return fromTarGz(archive, binaryName)
}

func fromZip(archive []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, err
	}
	for _, f := range zr.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("%s missing from archive", name)
}

func fromTarGz(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil, fmt.Errorf("%s missing from archive", name)
		}
		if err != nil {
			return nil, err
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
}

// install stages the new binary beside the old one and renames it into
// place, so a failed write never clobbers a working install. The old
// binary's permissions carry over.
func install(target string, binary []byte) error {
	info, err := os.Stat(target)
	if err != nil {
		return err
	}

	staged := target + ".next"
	if err := os.WriteFile(staged, binary, 0o755); err != nil {
		return err
	}
	if err := os.Chmod(staged, info.Mode().Perm()); err != nil {
		_ = os.Remove(staged)
		return err
	}
	if err := os.Rename(staged, target); err != nil {
		_ = os.Remove(staged)
		return err
	}
	return nil
}
