package notes

import (
	"net/url"
	"path"
)

// Source describes where a Sound gets its audio from.
//
// The set of variants is closed: Asset, File, URL and System.
type Source interface {
	// Name is a human readable identifier used when reporting errors.
	Name() string
	source()
}

// Asset is a named audio asset, looked up in the configured asset
// directories regardless of extension.
type Asset struct {
	AssetName string
}

func (a Asset) Name() string { return a.AssetName }
func (Asset) source()        {}

// File is an audio file with a known extension.
type File struct {
	FileName string
	Type     AudioType
}

func (f File) Name() string {
	if f.Type == AudioTypeOther {
		return f.FileName
	}
	return f.FileName + "." + string(f.Type)
}

func (File) source() {}

// URL is an audio resource addressed by an absolute URL.
type URL struct {
	URL string
}

func (u URL) Name() string {
	parsed, err := url.Parse(u.URL)
	if err != nil || parsed.Path == "" {
		return u.URL
	}
	return path.Base(parsed.Path)
}

func (URL) source() {}

// System is a predefined system sound.
type System struct {
	Sound SystemSound
}

func (s System) Name() string { return s.Sound.String() }
func (System) source()        {}

// AudioType is an audio file extension.
type AudioType string

const (
	AudioTypeMOV   AudioType = "mov"
	AudioTypeQT    AudioType = "qt"
	AudioTypeMP4   AudioType = "mp4"
	AudioTypeM4V   AudioType = "m4v"
	AudioTypeM4A   AudioType = "m4a"
	AudioTypeCAF   AudioType = "caf"
	AudioTypeWAV   AudioType = "wav"
	AudioTypeWAVE  AudioType = "wave"
	AudioTypeBWF   AudioType = "bwf"
	AudioTypeAIF   AudioType = "aif"
	AudioTypeAIFF  AudioType = "aiff"
	AudioTypeAIFC  AudioType = "aifc"
	AudioTypeCDDA  AudioType = "cdda"
	AudioTypeAMR   AudioType = "amr"
	AudioTypeMP3   AudioType = "mp3"
	AudioTypeAU    AudioType = "au"
	AudioTypeSND   AudioType = "snd"
	AudioTypeAC3   AudioType = "ac3"
	AudioTypeEAC3  AudioType = "eac3"
	AudioTypeOther AudioType = ""
)

// Container groups extensions that share one container format, the way
// wav, wave and bwf are all RIFF wave files.
func (t AudioType) Container() AudioType {
	switch t {
	case AudioTypeMOV, AudioTypeQT:
		return AudioTypeMOV
	case AudioTypeWAV, AudioTypeWAVE, AudioTypeBWF:
		return AudioTypeWAV
	case AudioTypeAIF, AudioTypeAIFF:
		return AudioTypeAIFF
	case AudioTypeAIFC, AudioTypeCDDA:
		return AudioTypeAIFC
	case AudioTypeAU, AudioTypeSND:
		return AudioTypeAU
	default:
		return t
	}
}

// ParseAudioType maps a file extension, with or without the leading dot, to
// an AudioType. Unknown extensions map to AudioTypeOther.
func ParseAudioType(ext string) AudioType {
	if len(ext) > 0 && ext[0] == '.' {
		ext = ext[1:]
	}
	for _, t := range audioTypes {
		if string(t) == ext {
			return t
		}
	}
	return AudioTypeOther
}

var audioTypes = []AudioType{
	AudioTypeMOV, AudioTypeQT, AudioTypeMP4, AudioTypeM4V, AudioTypeM4A,
	AudioTypeCAF, AudioTypeWAV, AudioTypeWAVE, AudioTypeBWF, AudioTypeAIF,
	AudioTypeAIFF, AudioTypeAIFC, AudioTypeCDDA, AudioTypeAMR, AudioTypeMP3,
	AudioTypeAU, AudioTypeSND, AudioTypeAC3, AudioTypeEAC3,
}
