package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	RunModeConsole = "console"
	RunModeWindow  = "window"
)

const (
	defaultWindowWidth  = 1200
	defaultWindowHeight = 800
	defaultWindowTitle  = "Collision 2D"
	defaultViewScale    = 60.0
	defaultLogLevel     = "info"
)

type Config struct {
	config *viper.Viper
}

// ScenarioConfig is one entry of the scenarios list in the config file.
// Which shape fields are read depends on Kind.
type ScenarioConfig struct {
	Name    string         `mapstructure:"name"`
	Kind    string         `mapstructure:"kind"`
	Ray     *RayConfig     `mapstructure:"ray"`
	Point   *PointConfig   `mapstructure:"point"`
	Circles []CircleConfig `mapstructure:"circles"`
	Boxes   []BoxConfig    `mapstructure:"boxes"`
}

type PointConfig struct {
	X float64 `mapstructure:"x"`
	Y float64 `mapstructure:"y"`
}

type RayConfig struct {
	Origin    PointConfig `mapstructure:"origin"`
	Direction PointConfig `mapstructure:"direction"`
}

type CircleConfig struct {
	Center PointConfig `mapstructure:"center"`
	Radius float64     `mapstructure:"radius"`
}

type BoxConfig struct {
	Min PointConfig `mapstructure:"min"`
	Max PointConfig `mapstructure:"max"`
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

// LoadFile reads a config file at an explicit path. Environment variables
// still take precedence over the file.
func LoadFile(path string) (*Config, error) {
	viperConfig := viper.New()
	viperConfig.SetConfigFile(path)
	if err := viperConfig.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	viperConfig.AutomaticEnv()

	return &Config{config: viperConfig}, nil
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}
	if windowWidth <= 0 {
		windowWidth = defaultWindowWidth
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}
	if windowHeight <= 0 {
		windowHeight = defaultWindowHeight
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}
	if len(windowTitle) == 0 {
		windowTitle = defaultWindowTitle
	}

	return windowTitle
}

// GetViewScale is the number of screen pixels per world unit in the viewer.
func (c *Config) GetViewScale() float64 {
	viewScale := c.config.GetFloat64("VIEW_SCALE")
	if viewScale == 0 {
		viewScale = c.config.GetFloat64("view.scale")
	}
	if viewScale <= 0 {
		viewScale = defaultViewScale
	}

	return viewScale
}

func (c *Config) GetRunMode() string {
	runMode := c.config.GetString("RUN_MODE")
	if len(runMode) == 0 {
		runMode = c.config.GetString("run.mode")
	}
	if len(runMode) == 0 {
		runMode = RunModeConsole
	}

	return runMode
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}
	if len(logLevel) == 0 {
		logLevel = defaultLogLevel
	}

	return logLevel
}

// GetScenarios decodes the optional scenarios list. A missing list is not an error.
func (c *Config) GetScenarios() ([]ScenarioConfig, error) {
	var scenarios []ScenarioConfig
	if !c.config.IsSet("scenarios") {
		return scenarios, nil
	}
	if err := c.config.UnmarshalKey("scenarios", &scenarios); err != nil {
		return nil, fmt.Errorf("failed to decode scenarios: %w", err)
	}

	return scenarios, nil
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
