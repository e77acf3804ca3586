//go:build !tinygo

// Package config loads host settings from planespotter.{yaml,json}, the
// environment and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"planespotter/app"
	"planespotter/hal"
	"planespotter/spotter/aircraft"
	"planespotter/spotter/menu"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// DisplayConfig is the emulated panel size.
type DisplayConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// MapConfig sets the initial view.
type MapConfig struct {
	CenterLat float64 `mapstructure:"centerLat"`
	CenterLon float64 `mapstructure:"centerLon"`
	Zoom      int     `mapstructure:"zoom"`
	Height    int     `mapstructure:"height"`
	Color     string  `mapstructure:"color"`
}

// TouchConfig is the raw range of the resistive panel.
type TouchConfig struct {
	MinX int `mapstructure:"minX"`
	MinY int `mapstructure:"minY"`
	MaxX int `mapstructure:"maxX"`
	MaxY int `mapstructure:"maxY"`
}

type AssetsConfig struct {
	Dir         string `mapstructure:"dir"`
	Silhouettes string `mapstructure:"silhouettes"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type RenderConfig struct {
	HighlightEmergency bool `mapstructure:"highlightEmergency"`
}

type SimConfig struct {
	Aircraft     int `mapstructure:"aircraft"`
	HistoryEvery int `mapstructure:"historyEvery"`
}

// Config mirrors the file layout.
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Map     MapConfig     `mapstructure:"map"`
	Touch   TouchConfig   `mapstructure:"touch"`
	Assets  AssetsConfig  `mapstructure:"assets"`
	Log     LogConfig     `mapstructure:"log"`
	Render  RenderConfig  `mapstructure:"render"`
	Sim     SimConfig     `mapstructure:"sim"`
}

func setDefaults(v *viper.Viper) {
	d := app.DefaultConfig()

	v.SetDefault("display.width", 480)
	v.SetDefault("display.height", 320)

	v.SetDefault("map.centerLat", d.Center.Lat)
	v.SetDefault("map.centerLon", d.Center.Lon)
	v.SetDefault("map.zoom", d.Zoom)
	v.SetDefault("map.height", d.MapHeight)
	v.SetDefault("map.color", hexColor(d.MapColor))

	v.SetDefault("touch.minX", d.Touch.MinX)
	v.SetDefault("touch.minY", d.Touch.MinY)
	v.SetDefault("touch.maxX", d.Touch.MaxX)
	v.SetDefault("touch.maxY", d.Touch.MaxY)

	v.SetDefault("assets.dir", "./assets")
	v.SetDefault("assets.silhouettes", d.SilhouetteDir)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("render.highlightEmergency", d.HighlightEmergency)

	v.SetDefault("sim.aircraft", d.SimAircraft)
	v.SetDefault("sim.historyEvery", d.HistoryEvery)
}

// Load reads path, or planespotter.{yaml,json} from the working directory
// when path is empty. A missing default file is not an error; a missing
// explicit file is. PLANESPOTTER_* environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("planespotter")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("planespotter")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	if _, err := parseColor(cfg.Map.Color); err != nil {
		return nil, fmt.Errorf("map.color: %w", err)
	}
	return &cfg, nil
}

// App converts the file settings into the application config.
func (c *Config) App() app.Config {
	a := app.DefaultConfig()
	a.MapHeight = c.Map.Height
	a.Center = aircraft.Coordinates{Lat: c.Map.CenterLat, Lon: c.Map.CenterLon}
	a.Zoom = c.Map.Zoom
	a.Touch = menu.Calibration{MinX: c.Touch.MinX, MinY: c.Touch.MinY, MaxX: c.Touch.MaxX, MaxY: c.Touch.MaxY}
	a.SilhouetteDir = c.Assets.Silhouettes
	a.HighlightEmergency = c.Render.HighlightEmergency
	if col, err := parseColor(c.Map.Color); err == nil {
		a.MapColor = col
	}
	a.SimAircraft = c.Sim.Aircraft
	a.HistoryEvery = c.Sim.HistoryEvery
	return a
}

// Host converts the file settings into host HAL options.
func (c *Config) Host() hal.HostOptions {
	return hal.HostOptions{
		Width:     c.Display.Width,
		Height:    c.Display.Height,
		AssetsDir: c.Assets.Dir,
		LogLevel:  c.Log.Level,
		LogFile:   c.Log.File,
		TouchMinX: c.Touch.MinX,
		TouchMinY: c.Touch.MinY,
		TouchMaxX: c.Touch.MaxX,
		TouchMaxY: c.Touch.MaxY,
	}
}

// parseColor accepts #rrggbb and the short #rgb form.
func parseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

func hexColor(c color.RGBA) string {
	col, _ := colorful.MakeColor(c)
	return col.Hex()
}
