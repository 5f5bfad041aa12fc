// Package buildinfo assembles the build and environment properties shown
// in test reports.
package buildinfo

import (
	"strings"

	"go.uber.org/zap"

	"bddreport/internal/env"
	"bddreport/internal/inflect"
)

// DefaultDriver is reported when webdriver.driver is unset.
const DefaultDriver = "firefox"

const apiKeyMask = "XXXXXXXXXXXXXXXX"

// Provider builds BuildProperties from the configured variables and the
// driver capabilities recorded during the run.
type Provider struct {
	vars         env.Variables
	capabilities DriverCapabilityRecord
	logger       *zap.Logger
	// osInfo is swapped in tests.
	osInfo func() (string, string)
}

// NewProvider returns a provider. A nil record behaves as an empty one.
func NewProvider(vars env.Variables, capabilities DriverCapabilityRecord, logger *zap.Logger) *Provider {
	if capabilities == nil {
		capabilities = NewMemoryCapabilityRecord()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{vars: vars, capabilities: capabilities, logger: logger, osInfo: operatingSystem}
}

// BuildProperties collects the general properties, then the driver list
// and per-driver capabilities.
func (p *Provider) BuildProperties() BuildProperties {
	general := newOrderedProperties()
	general.put("Default Driver", env.ValueOr(p.vars, env.Driver, DefaultDriver))
	name, version := p.osInfo()
	general.put("Operating System", name+" version "+version)
	p.addRemoteDriverProperties(general)
	p.addSaucelabsProperties(general)
	p.addCustomProperties(general)

	return BuildProperties{
		General:            general.items,
		Drivers:            p.capabilities.Drivers(),
		DriverCapabilities: p.capabilities.DriverCapabilities(),
	}
}

func (p *Provider) addRemoteDriverProperties(props *orderedProperties) {
	if !env.IsDefined(p.vars, env.RemoteDriver) {
		return
	}
	props.put("Remote driver", env.Value(p.vars, env.RemoteDriver))
	p.putIfDefined(props, "Remote browser version", env.RemoteBrowserVersion)
	p.putIfDefined(props, "Remote OS", env.RemoteOS)
}

func (p *Provider) addSaucelabsProperties(props *orderedProperties) {
	if !env.IsDefined(p.vars, env.SaucelabsURL) {
		return
	}
	props.put("Saucelabs URL", MaskAPIKey(env.Value(p.vars, env.SaucelabsURL)))
	p.putIfDefined(props, "Saucelabs user", env.SaucelabsUserID)
	p.putIfDefined(props, "Saucelabs target platform", env.SaucelabsTargetPlatform)
	p.putIfDefined(props, "Saucelabs driver version", env.SaucelabsDriverVersion)
	p.putIfDefined(props, "Remote OS", env.RemoteOS)
}

func (p *Provider) putIfDefined(props *orderedProperties, label, key string) {
	if value := env.Value(p.vars, key); value != "" {
		props.put(label, value)
	}
}

// addCustomProperties evaluates every sysinfo.* property. An expression
// that fails or yields nothing is reported verbatim.
func (p *Provider) addCustomProperties(props *orderedProperties) {
	for _, key := range env.KeysWithPrefix(p.vars, env.SysInfoPrefix) {
		expression, _ := p.vars.Property(key)
		value, err := evaluate(expression, p.vars)
		if err != nil {
			p.logger.Warn("sysinfo expression fell back to raw text", zap.String("key", key), zap.Error(err))
			value = strings.TrimSpace(expression)
		}
		props.put(HumanizedLabel(strings.TrimPrefix(key, env.SysInfoPrefix)), value)
	}
}

// HumanizedLabel turns "build.number" into "Build number".
func HumanizedLabel(key string) string {
	return inflect.Capitalize(strings.ReplaceAll(key, ".", " "))
}

// MaskAPIKey hides the credentials between the scheme and the "@" of a
// Saucelabs URL. URLs without credentials are returned unchanged.
func MaskAPIKey(url string) string {
	start := strings.Index(url, ":")
	end := strings.Index(url, "@")
	if start < 0 || end < 0 || start+3 > end {
		return url
	}
	return url[:start+3] + apiKeyMask + url[end:]
}
