package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"csmap/config"
)

// CurrentSchemaVersion is incremented on breaking changes to the
// storage format; an older or newer database forces a rebuild.
const CurrentSchemaVersion = 1

var (
	keySchemaVersion = []byte("schema_version")
	keyConfigHash    = []byte("config_hash")
)

// SchemaInfo stores schema version and configuration hash.
type SchemaInfo struct {
	Version    int    `json:"version"`
	ConfigHash string `json:"config_hash"`
}

// GetSchemaInfo retrieves the current schema info from the database.
func (s *BoltStore) GetSchemaInfo() (*SchemaInfo, error) {
	var info SchemaInfo
	err := s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)
		if b == nil {
			return nil
		}

		if data := b.Get(keySchemaVersion); data != nil {
			if err := json.Unmarshal(data, &info.Version); err != nil {
				info.Version = 0
			}
		}
		if data := b.Get(keyConfigHash); data != nil {
			info.ConfigHash = string(data)
		}
		return nil
	})
	return &info, err
}

// SetSchemaInfo stores the schema info in the database.
func (s *BoltStore) SetSchemaInfo(info *SchemaInfo) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketStats)

		data, err := json.Marshal(info.Version)
		if err != nil {
			return err
		}
		if err := b.Put(keySchemaVersion, data); err != nil {
			return err
		}
		return b.Put(keyConfigHash, []byte(info.ConfigHash))
	})
}

// ComputeConfigHash hashes the scan-relevant configuration. A changed
// hash means previously stored outlines were extracted under different
// rules and the index should be rebuilt.
func ComputeConfigHash(cfg *config.Config) string {
	relevant := struct {
		Includes []string `json:"includes"`
		Excludes []string `json:"excludes"`
		Modifier string   `json:"modifier"`
	}{
		Includes: cfg.Scan.Includes,
		Excludes: cfg.Scan.Excludes,
		Modifier: cfg.Scan.Modifier,
	}

	data, _ := json.Marshal(relevant)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:8])
}

// RebuildCheck describes whether the store can be used as-is.
type RebuildCheck struct {
	NeedsRebuild bool
	Reason       string
}

// CheckSchema decides whether the database must be cleared before the
// next scan.
func (s *BoltStore) CheckSchema(cfg *config.Config) (*RebuildCheck, error) {
	info, err := s.GetSchemaInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to get schema info: %w", err)
	}

	check := &RebuildCheck{}
	switch {
	case info.Version == 0:
		// fresh database, nothing to rebuild
	case info.Version != CurrentSchemaVersion:
		check.NeedsRebuild = true
		check.Reason = fmt.Sprintf("schema v%d does not match v%d", info.Version, CurrentSchemaVersion)
	case info.ConfigHash != "" && info.ConfigHash != ComputeConfigHash(cfg):
		check.NeedsRebuild = true
		check.Reason = "scan configuration changed"
	}
	return check, nil
}

// MarkSchema records the current schema version and config hash after
// a successful scan.
func (s *BoltStore) MarkSchema(cfg *config.Config) error {
	return s.SetSchemaInfo(&SchemaInfo{
		Version:    CurrentSchemaVersion,
		ConfigHash: ComputeConfigHash(cfg),
	})
}
