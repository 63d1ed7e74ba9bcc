package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Sixteen1-6/ParkingLot/internal/domain"
)

// yamlConfig is the on-disk shape of the config file.
type yamlConfig struct {
	Report struct {
		Port *int `yaml:"port"`
	} `yaml:"report"`
	Client struct {
		Timeout     string `yaml:"timeout"`
		DialTimeout string `yaml:"dial_timeout"`
	} `yaml:"client"`
}

// Load reads the config file at path and overlays it on the defaults. A
// missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindValidation,
			Path: path,
			Err:  err,
		}
	}

	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindValidation,
			Path: path,
			Err:  err,
		}
	}

	if dto.Report.Port != nil {
		cfg.Report.Port = *dto.Report.Port
	}
	if dto.Client.Timeout != "" {
		d, err := time.ParseDuration(dto.Client.Timeout)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindValidation,
				Path: path,
				Err:  err,
			}
		}
		cfg.Client.Timeout = d
	}
	if dto.Client.DialTimeout != "" {
		d, err := time.ParseDuration(dto.Client.DialTimeout)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindValidation,
				Path: path,
				Err:  err,
			}
		}
		cfg.Client.DialTimeout = d
	}

	return cfg, nil
}
