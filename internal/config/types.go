package config

// Config is the .bddreport/config.yml document.
type Config struct {
	Version         int               `yaml:"version" validate:"required,eq=1"`
	OutputDir       string            `yaml:"output_dir" validate:"required"`
	FeatureLanguage string            `yaml:"feature_language"`
	Requirements    RequirementsSpec  `yaml:"requirements"`
	Driver          DriverSpec        `yaml:"driver"`
	PropertiesFiles []string          `yaml:"properties_files" validate:"dive,required"`
	EnvFiles        []string          `yaml:"env_files" validate:"dive,required"`
	TagSources      []string          `yaml:"tag_sources" validate:"dive,required"`
	Properties      map[string]string `yaml:"properties" validate:"dive,keys,required,endkeys"`
}

// RequirementsSpec configures the requirements tree.
type RequirementsSpec struct {
	Dir   string   `yaml:"dir"`
	Types []string `yaml:"types" validate:"omitempty,unique,dive,required"`
}

// DriverSpec configures the web driver described in build info.
type DriverSpec struct {
	Name            string `yaml:"name"`
	CapabilitiesDir string `yaml:"capabilities_dir"`
}
