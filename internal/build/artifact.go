package build

import (
	"encoding/json"

	apperrors "github.com/kalix127/inspira-ui/pkg/errors"
)

// Artifact is one fully rendered output file, held in memory until the
// publish step writes the whole set.
type Artifact struct {
	Path string
	Data []byte
}

// JSONArtifact serializes v with two-space indentation and the trailing CRLF
// every generated file carries.
func JSONArtifact(path string, v any) (Artifact, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Artifact{}, apperrors.NewRenderError(path, err)
	}
	return Artifact{Path: path, Data: Seal(data)}, nil
}

// Seal appends the trailing CRLF convention to a serialized payload.
func Seal(data []byte) []byte {
	return append(data, '\r', '\n')
}
