package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// JLPT levels accepted by the content endpoints.
var JLPTLevels = []string{"N5", "N4", "N3", "N2", "N1"}

// Upload MIME prefixes.
const (
	MimeImage       = "image/"
	MimeAudio       = "audio/"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedImageExtensions = []string{".png", ".jpg", ".jpeg", ".svg", ".webp"}
	AllowedAudioExtensions = []string{".mp3", ".ogg", ".wav", ".m4a"}
)
