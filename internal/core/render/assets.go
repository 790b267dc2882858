package render

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/gamebearonline-web/spl3-X-Bot/internal/app/appconfig"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/core/feed"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/cache"
	"github.com/gamebearonline-web/spl3-X-Bot/internal/pkg/spl3err"
)

// Icon names resolved in the icon directory.
const (
	IconBigRun = "bigrun"
)

func RuleIcon(key string) string { return "rule/" + key }
func BossIcon(id string) string { return "boss/" + id }
func StageIcon(name string) string { return "stage/" + name }
func WeaponIcon(name string) string { return "weapon/" + name }

// Assets resolves images by URL or by icon name. Fetched bytes are cached
// by source for the lifetime of the run so that a thumbnail shared by
// several slots is only downloaded once.
type Assets struct {
	HTTP *feed.Repo

	bytes   *cache.Memory[[]byte]
	iconDir string
}

func NewImageCache() *cache.Memory[[]byte] {
	return cache.NewMemory[[]byte]("images")
}

func NewAssets(conf *appconfig.Config, httpRepo *feed.Repo, imageCache *cache.Memory[[]byte]) *Assets {
	return &Assets{
		HTTP:    httpRepo,
		bytes:   imageCache,
		iconDir: conf.IconDir,
	}
}

// URL fetches and decodes the image at u.
func (a *Assets) URL(ctx context.Context, u string) (image.Image, error) {
	if u == "" {
		return nil, spl3err.ErrAssetNotFound.Msg("empty image url")
	}
	b, err := a.bytes.MutexGetSet(u, func() ([]byte, error) {
		return a.HTTP.Get(ctx, u)
	})
	if err != nil {
		return nil, errors.Wrap(spl3err.ErrAssetNotFound.Msg("image %s", u), err.Error())
	}
	return decode(b)
}

// Icon loads a named icon from the icon directory. Names may omit the
// extension; ".png" is tried first.
func (a *Assets) Icon(name string) (image.Image, error) {
	if name == "" || strings.Contains(name, "..") {
		return nil, spl3err.ErrAssetNotFound.Msg("invalid icon name %q", name)
	}
	for _, candidate := range []string{name + ".png", name} {
		path := filepath.Join(a.iconDir, filepath.FromSlash(candidate))
		b, err := a.bytes.MutexGetSet("file:"+path, func() ([]byte, error) {
			return os.ReadFile(path)
		})
		if err != nil {
			continue
		}
		return decode(b)
	}
	return nil, spl3err.ErrAssetNotFound.Msg("icon %q not found in %s", name, a.iconDir)
}

// Resolve prefers u and falls back to the named icon.
func (a *Assets) Resolve(ctx context.Context, u, name string) (image.Image, error) {
	if u != "" {
		img, err := a.URL(ctx, u)
		if err == nil || name == "" {
			return img, err
		}
	}
	return a.Icon(name)
}

func decode(b []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrap(spl3err.ErrAssetNotFound.Msg("undecodable image"), err.Error())
	}
	return img, nil
}

// paste scales src into box on dst, compositing over what is already there.
func paste(dst draw.Image, box Rect, src image.Image) {
	draw.CatmullRom.Scale(dst, box.Rectangle(), src, src.Bounds(), draw.Over, nil)
}
