package ridership

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port           int   `yaml:"port" validate:"gt=0"`
	MaxUploadBytes int64 `yaml:"maxUploadBytes" validate:"gte=0"`
}

type DataConfig struct {
	EventsPath  string `yaml:"eventsPath" validate:"omitempty"`
	HistoryPath string `yaml:"historyPath" validate:"omitempty"`
}

type ModelsConfig struct {
	Dir        string `yaml:"dir" validate:"omitempty"`
	RuntimeLib string `yaml:"runtimeLib" validate:"omitempty"`
	Default    string `yaml:"default"`
	// ExpectedFeatures is the literal, ordered column list the trained
	// models were fitted on. Empty means the pipeline's full feature set.
	ExpectedFeatures []string `yaml:"expectedFeatures"`
}

type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Data   DataConfig   `yaml:"data"`
	Models ModelsConfig `yaml:"models"`
}

var Config AppConfig

func LoadAppConfig() error {
	paths := []string{"config.yml", "./deploy/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	Config = cfg
	applyConfigDefaults(&Config)
	return nil
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16190
	}
	if cfg.Server.MaxUploadBytes == 0 {
		cfg.Server.MaxUploadBytes = 10 << 20
	}
	if cfg.Models.Default == "" {
		cfg.Models.Default = "XGBoost"
	}
	if len(cfg.Models.ExpectedFeatures) == 0 {
		cfg.Models.ExpectedFeatures = FeatureColumns()
	}
}
