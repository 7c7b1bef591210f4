// Package config handles simulation configuration loading and management.
package config

// Config holds all simulation settings.
type Config struct {
	Octree  OctreeConfig  `yaml:"octree"`
	Voxel   VoxelConfig   `yaml:"voxel"`
	IK      IKConfig      `yaml:"ik"`
	Path    PathConfig    `yaml:"path"`
	Logging LoggingConfig `yaml:"logging"`
}

// OctreeConfig holds spatial index settings.
type OctreeConfig struct {
	MaxDepth int `yaml:"max_depth"`
}

// VoxelConfig holds density grid settings.
type VoxelConfig struct {
	Density int `yaml:"density"` // Target voxels per side of an equivalent cube
	Workers int `yaml:"workers"` // Parallel fill workers; 0 or 1 fills serially
}

// IKConfig holds two-bone solver settings.
type IKConfig struct {
	RootBone   string     `yaml:"root_bone"`
	MiddleBone string     `yaml:"middle_bone"`
	EndBone    string     `yaml:"end_bone"`
	Epsilon    float32    `yaml:"epsilon"`
	Up         [3]float32 `yaml:"up"`
}

// PathConfig holds path controller settings.
type PathConfig struct {
	Speed     float32      `yaml:"speed"`  // World units per second
	Easing    string       `yaml:"easing"` // "linear" or "smoothstep"
	Playing   bool         `yaml:"playing"`
	Keyframes [][3]float32 `yaml:"keyframes"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Easing names accepted in PathConfig.Easing.
const (
	EasingLinear     = "linear"
	EasingSmoothstep = "smoothstep"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Octree: OctreeConfig{
			MaxDepth: 8,
		},
		Voxel: VoxelConfig{
			Density: 88,
			Workers: 0,
		},
		IK: IKConfig{
			RootBone:   "Shoulder",
			MiddleBone: "Elbow",
			EndBone:    "Effector",
			Epsilon:    0.01,
			Up:         [3]float32{0, 1, 0},
		},
		Path: PathConfig{
			Speed:   0.333,
			Easing:  EasingLinear,
			Playing: true,
			Keyframes: [][3]float32{
				{1.2, 0.8, 0.3},
				{0.8, 1.4, 0.5},
				{0.2, 1.2, 0.8},
				{-0.3, 0.9, 0.4},
				{0.1, 0.6, -0.2},
				{0.9, 0.7, 0.1},
			},
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
