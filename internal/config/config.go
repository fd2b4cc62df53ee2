package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config holds the complete application configuration. Values come from
// envconfig defaults, then REPORTGEN_* environment variables, then an
// optional YAML config file; CLI flags override the paths last.
type Config struct {
	Input   InputConfig   `yaml:"input" envconfig:"INPUT"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Columns ColumnSets    `yaml:"columns"`
}

// InputConfig describes the source workbook.
type InputConfig struct {
	ExcelPath string `yaml:"excel_path" envconfig:"EXCEL_PATH" default:"SOEN321_static_analysis.xlsx" validate:"required"`
}

// OutputConfig describes where derived artifacts are written.
type OutputConfig struct {
	HTMLPath  string `yaml:"html_path" envconfig:"HTML_PATH" default:"SOEN321_static_analysis.html" validate:"required"`
	ExcelPath string `yaml:"excel_path" envconfig:"EXCEL_PATH" default:"SOEN321_static_analysis_out.xlsx" validate:"required"`
	PlotsDir  string `yaml:"plots_dir" envconfig:"PLOTS_DIR" default:"plots" validate:"required"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/reportgen.log"`
}

// Load builds the configuration from environment variables and, when present,
// the YAML config file named by REPORTGEN_CONFIG_FILE (default
// "reportgen.yaml").
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("REPORTGEN", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	configFile := os.Getenv("REPORTGEN_CONFIG_FILE")
	if configFile == "" {
		configFile = "reportgen.yaml"
	}
	if _, err := os.Stat(configFile); err == nil {
		if err := cfg.applyFile(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
	}

	if len(cfg.Columns.YesNo) == 0 && len(cfg.Columns.Gradient) == 0 && len(cfg.Columns.Scores) == 0 {
		cfg.Columns = DefaultColumnSets()
	}
	cfg.Columns.fillLabels()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyFile overlays values from a YAML file onto the config. Only fields set
// in the file replace environment-derived values.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var overlay Config
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	if overlay.Input.ExcelPath != "" {
		c.Input.ExcelPath = overlay.Input.ExcelPath
	}
	if overlay.Output.HTMLPath != "" {
		c.Output.HTMLPath = overlay.Output.HTMLPath
	}
	if overlay.Output.ExcelPath != "" {
		c.Output.ExcelPath = overlay.Output.ExcelPath
	}
	if overlay.Output.PlotsDir != "" {
		c.Output.PlotsDir = overlay.Output.PlotsDir
	}
	if overlay.Logging.Level != "" {
		c.Logging.Level = overlay.Logging.Level
	}
	if overlay.Logging.Format != "" {
		c.Logging.Format = overlay.Logging.Format
	}
	if overlay.Logging.Output != "" {
		c.Logging.Output = overlay.Logging.Output
	}
	if overlay.Logging.FilePath != "" {
		c.Logging.FilePath = overlay.Logging.FilePath
	}
	if len(overlay.Columns.YesNo) > 0 || len(overlay.Columns.Gradient) > 0 ||
		len(overlay.Columns.Scores) > 0 {
		c.Columns = overlay.Columns
	}
	return nil
}

// Validate checks the configuration using struct tags.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}
