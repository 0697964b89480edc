package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
)

// AssetVersions holds content hashes of static files, computed once at startup
// and used as ETags for cache validation.
type AssetVersions struct {
	versions map[string]string
}

// NewAssetVersions hashes each named file under dir. Files that cannot be
// read are skipped with a warning and get no version.
func NewAssetVersions(dir string, files ...string) *AssetVersions {
	av := &AssetVersions{versions: make(map[string]string, len(files))}
	for _, file := range files {
		if version := computeFileHash(filepath.Join(dir, file)); version != "" {
			av.versions[file] = version
		}
	}
	log.Printf("[INFO] Asset versions initialized: %d of %d files", len(av.versions), len(files))
	return av
}

// Version returns the hash for file, or "" if it is unknown
func (av *AssetVersions) Version(file string) string {
	if av == nil {
		return ""
	}
	return av.versions[file]
}

// ETag returns a strong entity tag for file, or "" if it is unknown
func (av *AssetVersions) ETag(file string) string {
	version := av.Version(file)
	if version == "" {
		return ""
	}
	return `"` + version + `"`
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	// Return first 8 chars of the hash for brevity
	return hex.EncodeToString(hash.Sum(nil))[:8]
}
