package constants

import "time"

// Eat Sound Timing
const (
	EatSoundDuration           = 300 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 250 * time.Millisecond
	EatSoundOvertoneRelease    = 100 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 400 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
)

// AudioBufferDuration is the speaker buffer length passed to speaker.Init
const AudioBufferDuration = 100 * time.Millisecond
