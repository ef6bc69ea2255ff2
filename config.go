package vktriangle

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds everything the bootstrap needs to start.
type Config struct {
	App struct {
		Name          string `mapstructure:"name"`
		Version       string `mapstructure:"version"`
		EngineName    string `mapstructure:"engine_name"`
		EngineVersion string `mapstructure:"engine_version"`
		APIVersion    string `mapstructure:"api_version"`
	} `mapstructure:"app"`

	Window struct {
		Width  int    `mapstructure:"width"`
		Height int    `mapstructure:"height"`
		Title  string `mapstructure:"title"`
	} `mapstructure:"window"`

	// Diagnostics enables validation layers and the debug messenger. It is
	// not read from config files; it comes from the build.
	Diagnostics bool `mapstructure:"-"`

	ValidationLayers []string `mapstructure:"validation_layers"`

	// Portability enables the portability enumeration extension and flag,
	// needed for MoltenVK on macOS.
	Portability bool `mapstructure:"portability"`

	Log LogConfig `mapstructure:"log"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Hello World Triangle")
	v.SetDefault("app.version", DefaultAppVersion.String())
	v.SetDefault("app.engine_name", "No Engine")
	v.SetDefault("app.engine_version", DefaultEngineVersion.String())
	v.SetDefault("app.api_version", DefaultAPIVersion.String())

	v.SetDefault("window.width", 800)
	v.SetDefault("window.height", 600)
	v.SetDefault("window.title", "Vulcan Test")

	v.SetDefault("validation_layers", []string{KhronosValidationLayer})
	v.SetDefault("portability", runtime.GOOS == "darwin")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.outputs", []string{"stderr"})
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadConfig reads an optional config file and VKTRIANGLE_* environment
// variables on top of the defaults. An empty path skips the file.
func LoadConfig(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("VKTRIANGLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	cfg.Diagnostics = DiagnosticsEnabled
	return &cfg, nil
}

// Validate rejects configurations the bootstrap cannot start with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Title == "" {
		return errors.New("window title must not be empty")
	}
	if _, err := c.AppInfo(); err != nil {
		return err
	}
	if c.Diagnostics && len(c.ValidationLayers) == 0 {
		return errors.New("diagnostics enabled without validation layers")
	}
	return nil
}

// AppInfo converts the app section into the descriptor handed to the driver.
func (c *Config) AppInfo() (AppInfo, error) {
	info := AppInfo{
		Name:       c.App.Name,
		EngineName: c.App.EngineName,
	}
	for _, f := range []struct {
		dst  *Version
		src  string
		name string
	}{
		{&info.Version, c.App.Version, "app.version"},
		{&info.EngineVersion, c.App.EngineVersion, "app.engine_version"},
		{&info.APIVersion, c.App.APIVersion, "app.api_version"},
	} {
		ver, err := ParseVersion(f.src)
		if err != nil {
			return AppInfo{}, errors.Wrap(err, f.name)
		}
		*f.dst = ver
	}
	return info, nil
}
