package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds top-level window configuration
type Config struct {
	Width  int
	Height int
}

// PlayerConfig contains all locomotion-related tuning values
type PlayerConfig struct {
	// Horizontal movement (units per second)
	WalkSpeed   float64
	SprintSpeed float64

	// Momentum smoothing (per-frame factors)
	MomentumLerp  float64 // Blend toward desired direction while steering
	MomentumDecay float64 // Multiplier applied each frame while coasting

	// Facing rotation smoothing (per-frame factors)
	TurnLerpSteering float64 // While a direction is held
	TurnLerpCoasting float64 // While drifting on residual momentum

	// Classifier speed thresholds (units per second)
	WalkThreshold   float64
	SprintThreshold float64

	// Vertical motion
	Gravity         float64 // Negative, units per second squared
	JumpForce       float64
	DoubleJumpForce float64
	JumpCooldown    float64 // Seconds before jump re-arms
	RollDuration    float64 // Aerial roll length in seconds

	GroundLevel float64
}

// SlideConfig contains slide tuning values
type SlideConfig struct {
	Speed      float64 // Momentum magnitude the slide overrides to
	MaxTime    float64 // Seconds until the slide times out
	Cooldown   float64 // Seconds before slide re-arms
	CancelKeep float64 // Momentum fraction kept when the key is released early
	EndKeep    float64 // Momentum fraction kept when the slide times out
}

// DashConfig contains dash and air-dash tuning values
type DashConfig struct {
	Force          float64 // Momentum magnitude the dash overwrites to
	Duration       float64 // Seconds the dash drives momentum
	KeepAfter      float64 // Momentum fraction kept when the dash ends
	GroundCooldown float64 // Seconds before a ground dash re-arms
	AirCooldown    float64 // Seconds before an air dash re-arms
	GroundLift     float64 // Vertical impulse for a grounded dash
	AirLift        float64 // Vertical impulse for an air dash
}

// CameraConfig contains the orbit camera tuning values
type CameraConfig struct {
	Distance  float64 // Orbit radius behind the character
	Height    float64 // Eye height above the character origin
	TurnSpeed float64 // Radians per second while a camera key is held
	FocalLen  float64 // Projection focal length in pixels
}

// AnimConfig contains procedural animation tuning values
type AnimConfig struct {
	// Gait (walking / sprinting)
	WalkFrequency   float64 // Swing cycles per second of phase time
	WalkSwing       float64 // Thigh swing amplitude in radians
	SprintFrequency float64
	SprintSwing     float64
	SprintLean      float64 // Forward torso lean while sprinting
	ShinLag         float64 // Phase offset between thigh and shin
	ArmSwingScale   float64 // Arm swing relative to thigh swing

	// Idle breathing
	BreathRate   float64
	BreathAmount float64

	// Aerial
	JumpTuck    float64 // Thigh tuck while airborne
	JumpArmLift float64 // Arm raise while airborne
	RollCurl    float64 // Full-body curl amplitude during the aerial roll

	// Slide / dash lean
	SlideLean        float64
	SlideRecoverFrac float64 // Final fraction of the slide spent blending upright
	DashLean         float64

	// Attack arm recovery window in seconds
	ArmRecovery float64
}

// RigConfig describes the stick-figure skeleton drawn by the renderer and
// the weapon socket presets.
type RigConfig struct {
	HipHeight     float64
	HipWidth      float64
	TorsoLen      float64
	ShoulderWidth float64
	ArmLen        float64
	ThighLen      float64
	ShinLen       float64
	HeadSize      float64
	WeaponLen     float64

	// Socket-local offsets from their parent joint
	HandSocketOffset [3]float64
	BackSocketOffset [3]float64
	// Socket-local base rotations (radians, XYZ)
	HandSocketRot [3]float64
	BackSocketRot [3]float64
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	StartWithOverlay bool // Show the debug overlay from startup
}

var C *Config
var Player PlayerConfig
var Slide SlideConfig
var Dash DashConfig
var Camera CameraConfig
var Anim AnimConfig
var Rig RigConfig
var Debug DebugConfig

// Default is the ECS layer all entities and renderers live on.
const Default = ecs.LayerDefault

var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	DarkGrey     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Player = PlayerConfig{
		WalkSpeed:   4.0,
		SprintSpeed: 8.5,

		MomentumLerp:  0.2,
		MomentumDecay: 0.9,

		TurnLerpSteering: 0.25,
		TurnLerpCoasting: 0.08,

		WalkThreshold:   0.25,
		SprintThreshold: 5.0,

		Gravity:         -22.0,
		JumpForce:       8.0,
		DoubleJumpForce: 9.0,
		JumpCooldown:    0.35,
		RollDuration:    0.5,

		GroundLevel: 0.0,
	}

	Slide = SlideConfig{
		Speed:      11.0,
		MaxTime:    0.65,
		Cooldown:   1.0,
		CancelKeep: 0.7,
		EndKeep:    0.5,
	}

	Dash = DashConfig{
		Force:          14.0,
		Duration:       0.22,
		KeepAfter:      0.65,
		GroundCooldown: 0.8,
		AirCooldown:    1.2,
		GroundLift:     1.5,
		AirLift:        3.0,
	}

	Camera = CameraConfig{
		Distance:  6.5,
		Height:    2.6,
		TurnSpeed: 2.2,
		FocalLen:  420.0,
	}

	Anim = AnimConfig{
		WalkFrequency:   2.2,
		WalkSwing:       0.55,
		SprintFrequency: 3.4,
		SprintSwing:     0.95,
		SprintLean:      0.35,
		ShinLag:         0.8,
		ArmSwingScale:   0.7,

		BreathRate:   1.1,
		BreathAmount: 0.04,

		JumpTuck:    0.6,
		JumpArmLift: 1.2,
		RollCurl:    1.4,

		SlideLean:        0.9,
		SlideRecoverFrac: 0.25,
		DashLean:         0.45,

		ArmRecovery: 0.15,
	}

	Rig = RigConfig{
		HipHeight:     0.95,
		HipWidth:      0.32,
		TorsoLen:      0.62,
		ShoulderWidth: 0.46,
		ArmLen:        0.58,
		ThighLen:      0.48,
		ShinLen:       0.47,
		HeadSize:      0.22,
		WeaponLen:     0.85,

		HandSocketOffset: [3]float64{0, -0.05, 0},
		BackSocketOffset: [3]float64{0, 0.1, -0.18},
		HandSocketRot:    [3]float64{0.35, 0, 0},
		BackSocketRot:    [3]float64{0, 0, 2.2},
	}

	Debug = DebugConfig{
		StartWithOverlay: false,
	}

	initCombat()
}
