package config

// SceneConfig holds the identifiers the generated fragments share with the
// hand-maintained scene they are pasted into.
type SceneConfig struct {
	// Parent paths
	RootParent    string // Existing node the city container hangs from
	CityContainer string // Container node created under RootParent
	HookContainer string // Container node for hook targets, under the city container

	// Generated resource ids
	SizePrefix  string // Prefix of the per-size id ("city_01")
	MeshPrefix  string // Prefix of BoxMesh ids ("bm_city_01")
	ShapePrefix string // Prefix of BoxShape3D ids ("bs_city_01")

	// Resources that already exist in the target scene
	CheckpointScene         string // ExtResource id of the checkpoint trigger scene
	PlatformScript          string // ExtResource id of the moving platform script
	PlatformPhysicsMaterial string
	PlatformMesh            string
	PlatformShape           string
	HookMesh                string
	HookShape               string
	HookMaterial            string // Palette key used to highlight hook targets

	// Godot group the grapple raycast filters on
	HookGroup string
}

// CollisionConfig contains the physics layer bits written on generated bodies.
type CollisionConfig struct {
	WorldLayer int // Buildings, decorations and moving platforms
	HookLayer  int // Hook targets
	HookMask   int
}

// CheckpointConfig controls checkpoint trigger placement and reporting.
type CheckpointConfig struct {
	NodeNameFormat string  // fmt verb applied to the checkpoint number
	TriggerMargin  float64 // Trigger height above the rooftop, local to the building
	SpawnLift      float64 // Respawn height above the rooftop, in world space
}

// PlatformConfig mirrors the runtime MovingPlatform script timing. Only lint and
// preview sample it; generated nodes carry the endpoints alone.
type PlatformConfig struct {
	LegDuration float32 // Seconds from one endpoint to the other
	LegDelay    float32 // Seconds held at each endpoint before moving
	SampleRate  float32 // Samples per second when sweeping a path
}

// GrappleConfig mirrors the player's grapple raycast.
type GrappleConfig struct {
	MaxRaycastDistance float64
}

// OutputConfig names the files written by the commands.
type OutputConfig struct {
	SubResourcesFile string
	NodesFile        string
	PreviewFile      string
}

// PreviewConfig controls the top-down preview image.
type PreviewConfig struct {
	PixelsPerUnit float64
	Margin        int // Pixels of empty border around the layout bounds
	LabelSize     float64
	HookPixels    int // Side of the square drawn for a hook target
}

// HistoryConfig controls the checkpoint history kept between runs.
type HistoryConfig struct {
	AppName string
	ItemKey string
}

// LintConfig contains tolerances for the layout checks.
type LintConfig struct {
	SpaceScale float64 // resolv space units per world unit
	CellSize   int     // resolv space cell size, in world units
	Tolerance  float64 // Contact depth below which boxes count as touching, not overlapping
}

// Config groups every generator setting.
type Config struct {
	Scene      SceneConfig
	Collision  CollisionConfig
	Checkpoint CheckpointConfig
	Platform   PlatformConfig
	Grapple    GrappleConfig
	Output     OutputConfig
	Preview    PreviewConfig
	History    HistoryConfig
	Lint       LintConfig
}

// Default returns the configuration matching the rooftop city scene.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			RootParent:    "Floors",
			CityContainer: "City",
			HookContainer: "HookTargets",

			SizePrefix:  "city_",
			MeshPrefix:  "bm_",
			ShapePrefix: "bs_",

			CheckpointScene:         "3_3wy1v",
			PlatformScript:          "2_c651c",
			PlatformPhysicsMaterial: "PhysicsMaterial_3wy1v",
			PlatformMesh:            "BoxMesh_kfbq2",
			PlatformShape:           "BoxShape3D_4dugh",
			HookMesh:                "BoxMesh_pjrb6",
			HookShape:               "BoxShape3D_xwkvk",
			HookMaterial:            "mat_f",

			HookGroup: "Hookable",
		},

		Collision: CollisionConfig{
			WorldLayer: 2,
			HookLayer:  4,
			HookMask:   3, // World geometry and player
		},

		Checkpoint: CheckpointConfig{
			NodeNameFormat: "Checkpoint%03d",
			TriggerMargin:  0.5,
			SpawnLift:      1.0,
		},

		Platform: PlatformConfig{
			LegDuration: 4.0,
			LegDelay:    0.5,
			SampleRate:  10,
		},

		Grapple: GrappleConfig{
			MaxRaycastDistance: 200.0,
		},

		Output: OutputConfig{
			SubResourcesFile: "city_subresources.txt",
			NodesFile:        "city_nodes.txt",
			PreviewFile:      "city_preview.png",
		},

		Preview: PreviewConfig{
			PixelsPerUnit: 4,
			Margin:        24,
			LabelSize:     11,
			HookPixels:    5,
		},

		History: HistoryConfig{
			AppName: "citygen",
			ItemKey: "checkpoints",
		},

		Lint: LintConfig{
			SpaceScale: 16,
			CellSize:   4,
			Tolerance:  1e-6,
		},
	}
}

// CityParent is the node path every generated building hangs from.
func (c *Config) CityParent() string {
	return c.Scene.RootParent + "/" + c.Scene.CityContainer
}

// HookParent is the node path every generated hook target hangs from.
func (c *Config) HookParent() string {
	return c.CityParent() + "/" + c.Scene.HookContainer
}
