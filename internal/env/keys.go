package env

// Property keys read by the providers.
const (
	Driver                  = "webdriver.driver"
	RemoteDriver            = "webdriver.remote.driver"
	RemoteBrowserVersion    = "webdriver.remote.browser.version"
	RemoteOS                = "webdriver.remote.os"
	SaucelabsURL            = "saucelabs.url"
	SaucelabsUserID         = "saucelabs.user.id"
	SaucelabsTargetPlatform = "saucelabs.target.platform"
	SaucelabsDriverVersion  = "saucelabs.driver.version"
	FeatureFileLanguage     = "feature.file.language"
	RequirementTypes        = "serenity.requirement.types"
	RequirementsDir         = "serenity.requirements.dir"
	RequirementsBaseDir     = "serenity.requirements.base.dir"
	OutputDirectory         = "serenity.outputDirectory"
	SysInfoPrefix           = "sysinfo."
)

// DefaultPropertiesFile is read from the repo root when present.
const DefaultPropertiesFile = "serenity.properties"

const (
	currentPropertyPrefix = "serenity."
	legacyPropertyPrefix  = "thucydides."
)
