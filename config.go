package skyisles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type CameraConfig struct {
	Position     [3]float32 `yaml:"position"`
	Target       [3]float32 `yaml:"target"`
	FovY         float32    `yaml:"fov_y"`
	Near         float32    `yaml:"near"`
	Far          float32    `yaml:"far"`
	MoveSpeed    float32    `yaml:"move_speed"`
	OrbitSpeed   float32    `yaml:"orbit_sensitivity"`
	MinDistance  float32    `yaml:"min_distance"`
	MaxDistance  float32    `yaml:"max_distance"`
	InitialFocus [3]float32 `yaml:"focus"`
}

type EditorConfig struct {
	IslandBaseLevel float32 `yaml:"island_base_level"`
	GroundLevel     float32 `yaml:"ground_level"`
	GroundSize      float32 `yaml:"ground_size"`
	TreeClearance   float32 `yaml:"tree_clearance"`
	RockClearance   float32 `yaml:"rock_clearance"`
	TreeMinSpacing  float32 `yaml:"tree_min_spacing"`
	GridCellSize    float32 `yaml:"grid_cell_size"`
}

type PaletteConfig struct {
	Grass     uint32 `yaml:"grass"`
	Earth     uint32 `yaml:"earth"`
	Crystal   uint32 `yaml:"crystal"`
	Trunk     uint32 `yaml:"trunk"`
	Leaves    uint32 `yaml:"leaves"`
	Rock      uint32 `yaml:"rock"`
	Cloud     uint32 `yaml:"cloud"`
	Ghost     uint32 `yaml:"ghost"`
	Blocked   uint32 `yaml:"blocked"`
	Highlight uint32 `yaml:"highlight"`
}

type AnimationConfig struct {
	BobSpeedMin   float32 `yaml:"bob_speed_min"`
	BobSpeedMax   float32 `yaml:"bob_speed_max"`
	BobAmountMin  float32 `yaml:"bob_amount_min"`
	BobAmountMax  float32 `yaml:"bob_amount_max"`
	SwaySpeedMin  float32 `yaml:"sway_speed_min"`
	SwaySpeedMax  float32 `yaml:"sway_speed_max"`
	SwayAmountMin float32 `yaml:"sway_amount_min"`
	SwayAmountMax float32 `yaml:"sway_amount_max"`
	CloudWrapX    float32 `yaml:"cloud_wrap_x"`
	SunOrbitSpeed float32 `yaml:"sun_orbit_speed"`
	SunOrbitRange float32 `yaml:"sun_orbit_radius"`
}

type SeedConfig struct {
	RandomSeed     uint64 `yaml:"random_seed"`
	InitialIsland  bool   `yaml:"initial_island"`
	InitialTrees   int    `yaml:"initial_trees"`
	Clouds         int    `yaml:"clouds"`
	IslandCrystals bool   `yaml:"island_crystals"`
}

type Config struct {
	Debug     bool            `yaml:"debug"`
	Window    WindowConfig    `yaml:"window"`
	Camera    CameraConfig    `yaml:"camera"`
	Editor    EditorConfig    `yaml:"editor"`
	Palette   PaletteConfig   `yaml:"palette"`
	Animation AnimationConfig `yaml:"animation"`
	Seed      SeedConfig      `yaml:"seed"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Sky Islands"},
		Camera: CameraConfig{
			Position:    [3]float32{0, 8, 20},
			Target:      [3]float32{0, 0, 0},
			FovY:        75,
			Near:        0.1,
			Far:         1000,
			MoveSpeed:   12,
			OrbitSpeed:  0.007,
			MinDistance: 5,
			MaxDistance: 100,
			// Orbit point from the original controls.
			InitialFocus: [3]float32{0, 2, 0},
		},
		Editor: EditorConfig{
			IslandBaseLevel: 0,
			GroundLevel:     -0.1,
			GroundSize:      200,
			TreeClearance:   0.75,
			RockClearance:   0.25,
			TreeMinSpacing:  1.5,
			GridCellSize:    10,
		},
		Palette: PaletteConfig{
			Grass:     0x66BB6A,
			Earth:     0x8D6E63,
			Crystal:   0xAFEEEE,
			Trunk:     0x795548,
			Leaves:    0x4CAF50,
			Rock:      0x9E9E9E,
			Cloud:     0xFFFFFF,
			Ghost:     0xFFA500,
			Blocked:   0xFF0000,
			Highlight: 0xFF3366,
		},
		Animation: AnimationConfig{
			BobSpeedMin:   0.4,
			BobSpeedMax:   0.6,
			BobAmountMin:  0.15,
			BobAmountMax:  0.25,
			SwaySpeedMin:  0.2,
			SwaySpeedMax:  0.7,
			SwayAmountMin: 0.02,
			SwayAmountMax: 0.07,
			CloudWrapX:    60,
			SunOrbitSpeed: 0.2,
			SunOrbitRange: 20,
		},
		Seed: SeedConfig{
			RandomSeed:    1,
			InitialIsland: true,
			InitialTrees:  2,
			Clouds:        5,
		},
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Editor.TreeMinSpacing < 0 {
		errs = append(errs, fmt.Errorf("editor.tree_min_spacing must not be negative, got %v", c.Editor.TreeMinSpacing))
	}
	if c.Editor.TreeClearance < 0 || c.Editor.RockClearance < 0 {
		errs = append(errs, errors.New("editor clearances must not be negative"))
	}
	if c.Editor.GridCellSize <= 0 {
		errs = append(errs, fmt.Errorf("editor.grid_cell_size must be positive, got %v", c.Editor.GridCellSize))
	}
	if c.Editor.GroundSize <= 0 {
		errs = append(errs, fmt.Errorf("editor.ground_size must be positive, got %v", c.Editor.GroundSize))
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov_y must be in (0, 180), got %v", c.Camera.FovY))
	}
	if c.Camera.MinDistance > c.Camera.MaxDistance {
		errs = append(errs, errors.New("camera.min_distance exceeds camera.max_distance"))
	}
	if c.Seed.InitialTrees < 0 || c.Seed.Clouds < 0 {
		errs = append(errs, errors.New("seed counts must not be negative"))
	}
	return errors.Join(errs...)
}

// ConfigWatcher reloads a config file whenever it is written and publishes the result.
// It never touches editor state; consumers drain Updates on the frame thread.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Config
	done    chan struct{}
	logger  Logger
}

// WatchConfig watches the directory holding path so editors that replace the file
// on save are still seen.
func WatchConfig(path string, logger Logger) (*ConfigWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	cw := &ConfigWatcher{
		path:    filepath.Clean(path),
		watcher: w,
		updates: make(chan Config, 1),
		done:    make(chan struct{}),
		logger:  logger,
	}
	go cw.loop()
	return cw, nil
}

func (cw *ConfigWatcher) Updates() <-chan Config { return cw.updates }

func (cw *ConfigWatcher) Close() error {
	err := cw.watcher.Close()
	<-cw.done
	return err
}

func (cw *ConfigWatcher) loop() {
	defer close(cw.done)
	for {
		select {
		case ev, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != cw.path || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := LoadConfig(cw.path)
			if err != nil {
				cw.logger.Warnf("config reload rejected: %v", err)
				continue
			}
			cw.publish(cfg)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Errorf("config watcher: %v", err)
		}
	}
}

// publish keeps only the newest pending config.
func (cw *ConfigWatcher) publish(cfg Config) {
	select {
	case <-cw.updates:
	default:
	}
	cw.updates <- cfg
}
