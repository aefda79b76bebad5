package env

import (
	"campus_market/internal/config"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlFile - структура config.yaml
type yamlFile struct {
	Games struct {
		MinStake      int `yaml:"min_stake"`
		MaxStake      int `yaml:"max_stake"`
		MaxBingoCalls int `yaml:"max_bingo_calls"`
	} `yaml:"games"`
	Pricing struct {
		CommissionRate float64 `yaml:"commission_rate"`
	} `yaml:"pricing"`
}

type gamesConfig struct {
	minStake      int
	maxStake      int
	maxBingoCalls int
}

type pricingConfig struct {
	commissionRate float64
}

// NewGamesConfigFromYAML читает лимиты ставок из YAML файла
func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	f, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	if f.Games.MinStake <= 0 || f.Games.MaxStake < f.Games.MinStake {
		return nil, errors.New("invalid stake limits in games config")
	}
	if f.Games.MaxBingoCalls <= 0 {
		return nil, errors.New("invalid max bingo calls in games config")
	}

	return &gamesConfig{
		minStake:      f.Games.MinStake,
		maxStake:      f.Games.MaxStake,
		maxBingoCalls: f.Games.MaxBingoCalls,
	}, nil
}

// NewPricingConfigFromYAML читает комиссию площадки из YAML файла
func NewPricingConfigFromYAML(path string) (config.PricingConfig, error) {
	f, err := readYAML(path)
	if err != nil {
		return nil, err
	}

	if f.Pricing.CommissionRate < 0 || f.Pricing.CommissionRate >= 1 {
		return nil, errors.New("invalid commission rate in pricing config")
	}

	return &pricingConfig{
		commissionRate: f.Pricing.CommissionRate,
	}, nil
}

func readYAML(path string) (*yamlFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &f, nil
}

func (cfg *gamesConfig) MinStake() int {
	return cfg.minStake
}

func (cfg *gamesConfig) MaxStake() int {
	return cfg.maxStake
}

func (cfg *gamesConfig) MaxBingoCalls() int {
	return cfg.maxBingoCalls
}

func (cfg *pricingConfig) CommissionRate() float64 {
	return cfg.commissionRate
}
