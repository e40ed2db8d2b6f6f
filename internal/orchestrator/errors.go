package orchestrator

import "errors"

var (
	// ErrMissingArtifact means there is no local build output to attach.
	ErrMissingArtifact = errors.New("build artifact not found")
	// ErrUploadFailed means the platform rejected the asset upload.
	ErrUploadFailed = errors.New("asset upload failed")
)
