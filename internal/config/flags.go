package config

import "flag"

func init() {
	defineFlags(flag.CommandLine)
}

// defineFlags registers the config override flags on fs.
func defineFlags(fs *flag.FlagSet) {
	fs.String("config", "", "Path to config file")
	fs.Bool("debug", false, "Enable debug logging")
	fs.Int("depth", 0, "Octree max depth")
	fs.Int("density", 0, "Voxel grid density target")
	fs.Int("workers", 0, "Parallel voxel fill workers")
	fs.Float64("speed", 0, "Path speed in units per second")
	fs.Bool("smooth", false, "Use smoothstep easing between waypoints")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag command-line arguments.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return configPath(flag.CommandLine)
}

func configPath(fs *flag.FlagSet) string {
	if f := fs.Lookup("config"); f != nil {
		return f.Value.String()
	}
	return ""
}

// applyFlagSet applies the flags that were set explicitly, so zero values
// such as -depth 0 or -speed 0 still override the file.
func applyFlagSet(cfg *Config, fs *flag.FlagSet) {
	fs.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch v := getter.Get().(type) {
		case bool:
			switch f.Name {
			case "debug":
				if v {
					cfg.Logging.Level = "debug"
				}
			case "smooth":
				if v {
					cfg.Path.Easing = EasingSmoothstep
				} else {
					cfg.Path.Easing = EasingLinear
				}
			}
		case int:
			switch f.Name {
			case "depth":
				cfg.Octree.MaxDepth = v
			case "density":
				cfg.Voxel.Density = v
			case "workers":
				cfg.Voxel.Workers = v
			}
		case float64:
			if f.Name == "speed" {
				cfg.Path.Speed = float32(v)
			}
		}
	})
}
