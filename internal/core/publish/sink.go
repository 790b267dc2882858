package publish

import (
	"context"
	"os"

	"github.com/pkg/errors"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/snapshot"
)

const (
	ImageObject    = "Thumbnail.png"
	SnapshotObject = "schedule.json"
)

// Artifacts are the outputs of one run, already written locally.
type Artifacts struct {
	ImagePath string
	Snapshot  *snapshot.ScheduleSnapshot

	image  []byte
	body   []byte
	digest uint64
}

func NewArtifacts(imagePath string, snap *snapshot.ScheduleSnapshot) (*Artifacts, error) {
	image, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rendered image %s", imagePath)
	}
	body, err := snap.Encode()
	if err != nil {
		return nil, err
	}
	digest, err := snap.Digest()
	if err != nil {
		return nil, err
	}
	return &Artifacts{
		ImagePath: imagePath,
		Snapshot:  snap,
		image:     image,
		body:      body,
		digest:    digest,
	}, nil
}

// Sink receives the artifacts of a run.
type Sink interface {
	Name() string
	Publish(ctx context.Context, a *Artifacts) error
}

var (
	_ Sink           = (*S3Sink)(nil)
	_ Sink           = (*RedisSink)(nil)
	_ Sink           = (*NatsSink)(nil)
	_ changeReporter = (*RedisSink)(nil)
)
