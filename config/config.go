package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/moyu-x/file-organizer/internal"
	"github.com/moyu-x/file-organizer/pkg/category"
)

// CategoryConfig 配置文件中的一个分类，按列表顺序匹配
type CategoryConfig struct {
	Name       string   `mapstructure:"name"`
	Extensions []string `mapstructure:"extensions"`
}

type Config struct {
	Logging struct {
		Level string `mapstructure:"level"`
		File  string `mapstructure:"file"`
	} `mapstructure:"logging"`
	Conflict struct {
		MaxAttempts int `mapstructure:"max_attempts"`
	} `mapstructure:"conflict"`
	Categories []CategoryConfig `mapstructure:"categories"`

	// File 实际读取的配置文件，未找到时为空
	File string `mapstructure:"-"`
}

// Load 读取配置
// cfgFile 非空时只读取该文件；否则依次在 $HOME/.file-organizer、当前目录、/etc/file-organizer 查找 config.yaml
// 未找到配置文件时使用默认值
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(internal.DefaultConfigName)
		v.SetConfigType("yaml")

		v.AddConfigPath("$HOME/" + internal.DefaultConfigDir)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/file-organizer")
	}

	v.SetEnvPrefix("ORGANIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", internal.DefaultLogFile)
	v.SetDefault("conflict.max_attempts", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Conflict.MaxAttempts < 0 {
		return fmt.Errorf("conflict.max_attempts 不能为负数: %d", c.Conflict.MaxAttempts)
	}
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("第 %d 个分类缺少名称", i+1)
		}
		if strings.ContainsAny(cat.Name, `/\`) {
			return fmt.Errorf("分类名称不能包含路径分隔符: %s", cat.Name)
		}
		if name := strings.TrimSpace(cat.Name); name == "." || name == ".." {
			return fmt.Errorf("分类名称不能为 %s", name)
		}
	}
	return nil
}

// Table 返回配置的分类表，未配置时返回内置分类表
func (c *Config) Table() *category.Table {
	if len(c.Categories) == 0 {
		return category.DefaultTable()
	}

	cats := make([]category.Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		cats = append(cats, category.Category{
			Name:       strings.TrimSpace(cat.Name),
			Extensions: cat.Extensions,
		})
	}
	return category.NewTable(cats...)
}
