package toast

import (
	"fmt"
	"strings"
)

// Audio identifies the audio cue attached to a composed notification. The
// zero value is AudioDefault, so a request that never mentions audio plays
// the default sound.
type Audio int

const (
	AudioDefault Audio = iota
	AudioSilent
	AudioIM
	AudioMail
	AudioReminder
	AudioSMS
	AudioLoopingAlarm
	AudioLoopingAlarm2
	AudioLoopingAlarm3
	AudioLoopingAlarm4
	AudioLoopingAlarm5
	AudioLoopingAlarm6
	AudioLoopingAlarm7
	AudioLoopingAlarm8
	AudioLoopingAlarm9
	AudioLoopingAlarm10
	AudioLoopingCall
	AudioLoopingCall2
	AudioLoopingCall3
	AudioLoopingCall4
	AudioLoopingCall5
	AudioLoopingCall6
	AudioLoopingCall7
	AudioLoopingCall8
	AudioLoopingCall9
	AudioLoopingCall10
)

var audioNames = [...]string{
	AudioDefault:        "Default",
	AudioSilent:         "Silent",
	AudioIM:             "IM",
	AudioMail:           "Mail",
	AudioReminder:       "Reminder",
	AudioSMS:            "SMS",
	AudioLoopingAlarm:   "LoopingAlarm",
	AudioLoopingAlarm2:  "LoopingAlarm2",
	AudioLoopingAlarm3:  "LoopingAlarm3",
	AudioLoopingAlarm4:  "LoopingAlarm4",
	AudioLoopingAlarm5:  "LoopingAlarm5",
	AudioLoopingAlarm6:  "LoopingAlarm6",
	AudioLoopingAlarm7:  "LoopingAlarm7",
	AudioLoopingAlarm8:  "LoopingAlarm8",
	AudioLoopingAlarm9:  "LoopingAlarm9",
	AudioLoopingAlarm10: "LoopingAlarm10",
	AudioLoopingCall:    "LoopingCall",
	AudioLoopingCall2:   "LoopingCall2",
	AudioLoopingCall3:   "LoopingCall3",
	AudioLoopingCall4:   "LoopingCall4",
	AudioLoopingCall5:   "LoopingCall5",
	AudioLoopingCall6:   "LoopingCall6",
	AudioLoopingCall7:   "LoopingCall7",
	AudioLoopingCall8:   "LoopingCall8",
	AudioLoopingCall9:   "LoopingCall9",
	AudioLoopingCall10:  "LoopingCall10",
}

// String returns the canonical name of the audio kind.
func (a Audio) String() string {
	if a >= 0 && int(a) < len(audioNames) {
		return audioNames[a]
	}
	return "Default"
}

// ParseAudio resolves a case-insensitive audio name. The empty string
// resolves to AudioDefault.
func ParseAudio(s string) (Audio, error) {
	if s == "" {
		return AudioDefault, nil
	}
	for i, name := range audioNames {
		if strings.EqualFold(s, name) {
			return Audio(i), nil
		}
	}
	return AudioDefault, fmt.Errorf("unknown audio kind: %q", s)
}

// SoundClass partitions the audio kinds by how they are rendered. The
// class, not the individual kind, decides the audio element's shape.
type SoundClass int

const (
	// SoundShort plays once when the notification appears.
	SoundShort SoundClass = iota
	// SoundSilent suppresses audio entirely.
	SoundSilent
	// SoundLong repeats for the lifetime of a long-duration notification.
	SoundLong
)

// Class returns the sound class of the audio kind. Classification is total:
// silent is its own class, the five event sounds are short, and every
// looping kind is long.
func (a Audio) Class() SoundClass {
	switch {
	case a == AudioSilent:
		return SoundSilent
	case a >= AudioLoopingAlarm && a <= AudioLoopingCall10:
		return SoundLong
	default:
		return SoundShort
	}
}

// Source returns the platform sound event URI for the audio kind, or the
// empty string for the silent kind, which carries no source.
func (a Audio) Source() string {
	if a == AudioSilent {
		return ""
	}
	return "ms-winsoundevent:Notification." + eventToken(a.String())
}

// eventToken rewrites a camel-cased audio name into the dotted form the
// sound event scheme uses, for example LoopingAlarm2 to Looping.Alarm2.
func eventToken(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			prev := rune(name[i-1])
			if prev >= 'a' && prev <= 'z' {
				b.WriteByte('.')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
