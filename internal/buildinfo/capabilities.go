package buildinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/magiconair/properties"
	"go.uber.org/zap"
)

// DriverCapabilityRecord remembers the capabilities of each driver used
// during a run.
type DriverCapabilityRecord interface {
	Register(driver string, capabilities Properties) error
	Drivers() []string
	DriverCapabilities() map[string]Properties
}

// MemoryCapabilityRecord keeps capabilities in memory.
type MemoryCapabilityRecord struct {
	mu      sync.RWMutex
	drivers map[string]Properties
}

// NewMemoryCapabilityRecord returns an empty record.
func NewMemoryCapabilityRecord() *MemoryCapabilityRecord {
	return &MemoryCapabilityRecord{drivers: make(map[string]Properties)}
}

// Register stores a copy of capabilities for driver.
func (r *MemoryCapabilityRecord) Register(driver string, capabilities Properties) error {
	driver, err := driverName(driver)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers[driver] = copyProperties(capabilities)
	return nil
}

// Drivers returns the sorted driver names.
func (r *MemoryCapabilityRecord) Drivers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedDrivers(r.drivers)
}

// DriverCapabilities returns a copy of every driver's capabilities.
func (r *MemoryCapabilityRecord) DriverCapabilities() map[string]Properties {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]Properties, len(r.drivers))
	for driver, capabilities := range r.drivers {
		out[driver] = copyProperties(capabilities)
	}
	return out
}

const (
	capabilityFilePrefix = "browser-"
	capabilityFileSuffix = ".properties"
)

// DirCapabilityRecord persists capabilities as browser-<driver>.properties
// files so that separate test processes share one record.
type DirCapabilityRecord struct {
	dir    string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewDirCapabilityRecord stores capability files under dir.
func NewDirCapabilityRecord(dir string, logger *zap.Logger) *DirCapabilityRecord {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirCapabilityRecord{dir: dir, logger: logger}
}

// Register writes the capability file for driver.
func (r *DirCapabilityRecord) Register(driver string, capabilities Properties) error {
	driver, err := driverName(driver)
	if err != nil {
		return err
	}
	props := properties.NewProperties()
	props.DisableExpansion = true
	keys := make([]string, 0, len(capabilities))
	for key := range capabilities {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, _, err := props.Set(key, capabilities[key]); err != nil {
			return fmt.Errorf("capability %s for %s: %w", key, driver, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create capability dir: %w", err)
	}
	path := filepath.Join(r.dir, capabilityFilePrefix+driver+capabilityFileSuffix)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write capabilities for %s: %w", driver, err)
	}
	if _, err := props.Write(file, properties.UTF8); err != nil {
		_ = file.Close()
		return fmt.Errorf("write capabilities for %s: %w", driver, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("write capabilities for %s: %w", driver, err)
	}
	return nil
}

// Drivers lists the drivers with a capability file.
func (r *DirCapabilityRecord) Drivers() []string {
	return sortedDrivers(r.DriverCapabilities())
}

// DriverCapabilities reads every capability file. Files that cannot be
// read are logged and left out.
func (r *DirCapabilityRecord) DriverCapabilities() map[string]Properties {
	out, err := r.Load()
	if err != nil {
		r.logger.Warn("some capability files could not be read", zap.String("dir", r.dir), zap.Error(err))
	}
	return out
}

// Load reads every capability file, returning what could be read along
// with an aggregated error for the files that could not.
func (r *DirCapabilityRecord) Load() (map[string]Properties, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Properties)
	matches, err := filepath.Glob(filepath.Join(r.dir, capabilityFilePrefix+"*"+capabilityFileSuffix))
	if err != nil {
		return out, fmt.Errorf("list capability files: %w", err)
	}
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	var errs *multierror.Error
	for _, path := range matches {
		props, err := loader.LoadFile(path)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		values := make(Properties, props.Len())
		for _, key := range props.Keys() {
			values[key], _ = props.Get(key)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(path), capabilityFilePrefix), capabilityFileSuffix)
		out[name] = values
	}
	return out, errs.ErrorOrNil()
}

// driverName trims name and rejects values that cannot be used as a
// capability file name.
func driverName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("driver name is required")
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", fmt.Errorf("invalid driver name %q", name)
	}
	return name, nil
}

func copyProperties(in Properties) Properties {
	out := make(Properties, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func sortedDrivers(drivers map[string]Properties) []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
