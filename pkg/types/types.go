package types

// Candidate is one raw search result handed over by the search provider.
type Candidate struct {
	Name         string `json:"name"`
	SizeBytes    int64  `json:"size_bytes"`
	SizeText     string `json:"size,omitempty"`         // "1.45 GB" as shown by the provider
	DownloadPath string `json:"download_path,omitempty"` // provider-relative, opaque here
}

type Resolution string

const (
	Res1080p Resolution = "1080p"
	Res720p  Resolution = "720p"
	ResNone  Resolution = "none"
)

type Codec string

const (
	CodecX265  Codec = "x265"
	CodecX264  Codec = "x264"
	CodecOther Codec = "other"
)

// Ranked is a candidate together with its quality classification.
type Ranked struct {
	Candidate
	Resolution Resolution `json:"resolution"`
	Codec      Codec      `json:"codec"`
	Reject     string     `json:"reject,omitempty"` // empty for survivors
}
